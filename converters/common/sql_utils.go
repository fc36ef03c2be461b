package common

import (
	"regexp"
	"strings"
)

const (
	InsertPrefix       = "INSERT INTO"
	ContinuationPrefix = "("
	CommentMarker      = "--"
	DumpMarker         = "Dumping data for table"
)

// ControlPrefixes lists the MySQL session statements that have no ClickHouse meaning.
// They are matched against the raw line, in order.
var ControlPrefixes = []string{
	"SET ",
	"USE ",
	"LOCK ",
	"UNLOCK ",
	"COMMIT",
}

var (
	markerTable = regexp.MustCompile("table\\s+`?(\\w+)`?")
	insertTable = regexp.MustCompile("^INSERT INTO (?:`?\\w+`?\\.)?`?(\\w+)`?")
)

// IsControlLine reports whether line starts with one of ControlPrefixes.
func IsControlLine(line string) bool {
	for _, prefix := range ControlPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

// IsComment reports whether the trimmed line starts with the SQL comment marker.
func IsComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), CommentMarker)
}

// IsBlank reports whether line holds nothing but whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// IsDumpMarker reports whether line is a mysqldump "Dumping data for table" comment.
func IsDumpMarker(line string) bool {
	return IsComment(line) && strings.Contains(line, DumpMarker)
}

// MarkerTable extracts the bare table name from a dump marker line.
// ok is false when the marker names no identifier.
func MarkerTable(line string) (table string, ok bool) {
	m := markerTable.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// QualifyInsert rewrites the table reference of an INSERT line to namespace.table.
// Quoting and any existing qualifier are dropped so the namespace appears exactly once.
// Lines that are not INSERT statements are returned unchanged.
func QualifyInsert(line, namespace string) string {
	loc := insertTable.FindStringSubmatchIndex(line)
	if loc == nil {
		return line
	}
	table := line[loc[2]:loc[3]]

	var builder strings.Builder
	builder.Grow(len(line) + len(namespace) + 1)
	builder.WriteString(InsertPrefix)
	builder.WriteByte(' ')
	if namespace != "" {
		builder.WriteString(namespace)
		builder.WriteByte('.')
	}
	builder.WriteString(table)
	builder.WriteString(line[loc[1]:])
	return builder.String()
}
