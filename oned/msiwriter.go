package oned

import (
	"fmt"

	barcode "github.com/craig-b/ZXing.Encoders"
	"github.com/craig-b/ZXing.Encoders/bitutil"
	"github.com/craig-b/ZXing.Encoders/errs"
)

// msiStartPattern and msiEndPattern frame the digit stream: a narrow
// bar/space pair to start, then a wide bar, narrow space, narrow bar to stop.
var msiStartPattern = []int{1, 1}
var msiEndPattern = []int{2, 1, 1}

// msiBitPatterns gives the two-element bar/space pattern for a single binary
// digit: 0 is a narrow bar with a wide space, 1 is a wide bar with a narrow
// space. Each decimal digit contributes four bits, most-significant first.
var msiBitPatterns = [2][]int{
	{1, 2},
	{2, 1},
}

// MSIWriter encodes MSI barcodes: digits only, no checksum.
type MSIWriter struct{}

// NewMSIWriter creates a new MSI writer.
func NewMSIWriter() *MSIWriter {
	return &MSIWriter{}
}

// Encode encodes the given contents into an MSI barcode BitMatrix.
func (w *MSIWriter) Encode(contents string, format barcode.Format, width, height int, opts *barcode.EncodeOptions) (*bitutil.BitMatrix, error) {
	if format != barcode.FormatMSI {
		return nil, fmt.Errorf("msi writer only handles MSI, got %s: %w", format, errs.BadInput)
	}
	code, err := w.encode(contents)
	if err != nil {
		return nil, err
	}
	return RenderOneDCode(code, width, height)
}

func (w *MSIWriter) encode(contents string) ([]bool, error) {
	if len(contents) == 0 {
		return nil, fmt.Errorf("contents must not be empty: %w", errs.BadInput)
	}
	if err := CheckNumeric(contents); err != nil {
		return nil, err
	}

	// start (2 modules) + four 3-module bits per digit + end (4 modules)
	codeWidth := 2 + len(contents)*4*3 + 4
	result := make([]bool, codeWidth)
	pos := AppendPattern(result, 0, msiStartPattern, true)

	for i := 0; i < len(contents); i++ {
		digit := contents[i] - '0'
		for bit := 3; bit >= 0; bit-- {
			pos += AppendPattern(result, pos, msiBitPatterns[(digit>>bit)&1], true)
		}
	}

	AppendPattern(result, pos, msiEndPattern, true)
	return result, nil
}
