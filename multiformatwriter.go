package barcode

import (
	"fmt"

	"github.com/craig-b/ZXing.Encoders/bitutil"
)

// MultiFormatWriter dispatches Encode to the Writer registered for the
// requested format.
type MultiFormatWriter struct{}

// NewMultiFormatWriter creates a new multi-format writer.
func NewMultiFormatWriter() *MultiFormatWriter {
	return &MultiFormatWriter{}
}

// writerFactory builds a fresh Writer for a format.
type writerFactory func() Writer

var writerFactories = map[Format]writerFactory{}

// RegisterWriter registers a writer factory for the given format. Each
// symbology package calls this from an init func so that importing the
// package is enough to make its format available through Encode.
func RegisterWriter(format Format, factory writerFactory) {
	writerFactories[format] = factory
}

// Encode dispatches to the Writer registered for format.
func (w *MultiFormatWriter) Encode(contents string, format Format, width, height int, opts *EncodeOptions) (*bitutil.BitMatrix, error) {
	factory, ok := writerFactories[format]
	if !ok {
		return nil, fmt.Errorf("no writer registered for format %s: %w", format, ErrBadInput)
	}
	writer := factory()
	return writer.Encode(contents, format, width, height, opts)
}

// Encode is a top-level convenience function equivalent to
// NewMultiFormatWriter().Encode(...). Callers must import the package for
// each format they intend to use so its writer registers itself.
func Encode(contents string, format Format, width, height int, opts *EncodeOptions) (*bitutil.BitMatrix, error) {
	w := NewMultiFormatWriter()
	return w.Encode(contents, format, width, height, opts)
}
