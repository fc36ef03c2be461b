package converters

// LineKind classifies a dump line.
type LineKind int

const (
	KindUnmatched LineKind = iota
	KindControl
	KindMarker
	KindInsert
	KindContinuation
	KindComment
	KindBlank
)

var kindNames = [...]string{
	KindUnmatched:    "unmatched",
	KindControl:      "control",
	KindMarker:       "marker",
	KindInsert:       "insert",
	KindContinuation: "continuation",
	KindComment:      "comment",
	KindBlank:        "blank",
}

func (k LineKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Stats counts what happened to the lines of one conversion.
type Stats struct {
	Read        int // lines consumed from input
	Emitted     int // lines written, header excluded
	Dropped     int // control, excluded and unmatched lines
	Excluded    int // insert/continuation lines of excluded tables
	Transformed int // lines passed through a table transformer
	Unmatched   int // lines matching no known kind
	Tables      int // dump markers naming a table
}
