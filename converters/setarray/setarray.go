// Package setarray rewrites the film.special_features MySQL SET column into a
// ClickHouse Array(String) literal.
package setarray

import (
	"regexp"
	"strings"

	"github.com/darianmavgo/mkclickhouse/converters"
	"github.com/darianmavgo/mkclickhouse/converters/common"
)

const Name = "set_to_array"

// RatingCodes are the film.rating enum members. The rating literal precedes
// special_features and anchors the match.
var RatingCodes = []string{"G", "PG", "PG-13", "R", "NC-17"}

var (
	// special_features is unquoted NULL; the next column is last_update.
	nullFeatures = regexp.MustCompile(`,NULL,'(\d{4}-\d{2}-\d{2})`)
	features     = regexp.MustCompile(`'(` + alternation(RatingCodes) + `)','([^']*?)','(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})'\)`)
)

func init() {
	converters.Register(Name, common.TransformFunc(Transform))
}

func alternation(codes []string) string {
	quoted := make([]string, len(codes))
	for i, c := range codes {
		quoted[i] = regexp.QuoteMeta(c)
	}
	return strings.Join(quoted, "|")
}

// Transform converts every special_features value on a film insert or continuation line.
func Transform(line string) string {
	line = nullFeatures.ReplaceAllString(line, ",[],'${1}")
	return features.ReplaceAllStringFunc(line, func(m string) string {
		sub := features.FindStringSubmatch(m)
		rating, raw, timestamp := sub[1], sub[2], sub[3]

		var builder strings.Builder
		builder.Grow(len(m) + 8)
		builder.WriteByte('\'')
		builder.WriteString(rating)
		builder.WriteString("',")
		builder.WriteString(SpecialFeatures(raw))
		builder.WriteString(",'")
		builder.WriteString(timestamp)
		builder.WriteString("')")
		return builder.String()
	})
}

// SpecialFeatures renders a comma-joined SET value as an array literal, keeping member order.
// An empty value or NULL yields [].
func SpecialFeatures(raw string) string {
	if raw == "" || raw == "NULL" {
		return "[]"
	}
	members := strings.Split(raw, ",")
	for i, m := range members {
		members[i] = "'" + strings.TrimSpace(m) + "'"
	}
	return "[" + strings.Join(members, ",") + "]"
}
