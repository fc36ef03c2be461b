// Package blob drops the staff.picture BLOB column, which ClickHouse's staff table does not carry.
package blob

import (
	"regexp"

	"github.com/darianmavgo/mkclickhouse/converters"
	"github.com/darianmavgo/mkclickhouse/converters/common"
)

const Name = "strip_blob"

var (
	hexLiteral = regexp.MustCompile(`,0x[0-9A-Fa-f]+,`)
	// picture is NULL: address_id (numeric) before it, email (quoted) after it.
	nullPicture = regexp.MustCompile(`(\d),NULL,'`)
)

func init() {
	converters.Register(Name, common.TransformFunc(Transform))
}

// Transform removes the picture value and one of its surrounding commas.
func Transform(line string) string {
	line = hexLiteral.ReplaceAllString(line, ",")
	return nullPicture.ReplaceAllString(line, "${1},'")
}
