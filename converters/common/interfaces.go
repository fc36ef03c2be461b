package common

import "io"

// Transformer rewrites a single insert or continuation line belonging to one table.
// Implementations must be idempotent: feeding a transformed line back in returns it unchanged.
type Transformer interface {
	Transform(line string) string
}

// TransformFunc adapts an ordinary function to the Transformer interface.
type TransformFunc func(line string) string

// Transform implements Transformer
func (f TransformFunc) Transform(line string) string {
	return f(line)
}

// StreamConverter defines the interface for converting a dump stream to SQL output
type StreamConverter interface {
	ConvertToSQL(reader io.Reader, writer io.Writer) error
}
