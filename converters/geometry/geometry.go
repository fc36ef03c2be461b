// Package geometry strips the version-gated GEOMETRY literal mysqldump writes for address.location.
package geometry

import (
	"regexp"

	"github.com/darianmavgo/mkclickhouse/converters"
	"github.com/darianmavgo/mkclickhouse/converters/common"
)

const Name = "strip_geometry"

var hintedGeometry = regexp.MustCompile(`/\*!\d+ 0x[0-9A-Fa-f]+,\*/`)

func init() {
	converters.Register(Name, common.TransformFunc(Transform))
}

// Transform deletes every /*!NNNNN 0x...,*/ block, leaving the rest of the tuple as is.
func Transform(line string) string {
	return hintedGeometry.ReplaceAllString(line, "")
}
