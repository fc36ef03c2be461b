package all

import (
	// Import all the transformers so they register themselves
	_ "github.com/darianmavgo/mkclickhouse/converters/blob"
	_ "github.com/darianmavgo/mkclickhouse/converters/geometry"
	_ "github.com/darianmavgo/mkclickhouse/converters/setarray"
)
