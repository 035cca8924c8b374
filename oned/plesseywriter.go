package oned

import (
	"fmt"

	barcode "github.com/craig-b/ZXing.Encoders"
	"github.com/craig-b/ZXing.Encoders/bitutil"
	"github.com/craig-b/ZXing.Encoders/errs"
)

// plesseyCRCPolynomial is the 9-bit (degree-8) generator polynomial
// "111101001" used for the Plessey check character.
const plesseyCRCPolynomial = 0x1E9

const plesseyCRCBits = 8

var plesseyStartPattern = []int{1, 2, 1, 2}
var plesseyEndPattern = []int{2, 1, 1, 2, 1}

// plesseyBitPatterns mirrors msiBitPatterns with the bar/space widths
// swapped: Plessey's 0 is a wide bar, its 1 a narrow one.
var plesseyBitPatterns = [2][]int{
	{2, 1},
	{1, 2},
}

// PlesseyWriter encodes Plessey barcodes: digits only, with an appended
// 8-bit CRC check character.
type PlesseyWriter struct{}

// NewPlesseyWriter creates a new Plessey writer.
func NewPlesseyWriter() *PlesseyWriter {
	return &PlesseyWriter{}
}

// Encode encodes the given contents into a Plessey barcode BitMatrix.
func (w *PlesseyWriter) Encode(contents string, format barcode.Format, width, height int, opts *barcode.EncodeOptions) (*bitutil.BitMatrix, error) {
	if format != barcode.FormatPlessey {
		return nil, fmt.Errorf("plessey writer only handles PLESSEY, got %s: %w", format, errs.BadInput)
	}
	code, err := w.encode(contents)
	if err != nil {
		return nil, err
	}
	return RenderOneDCode(code, width, height)
}

func (w *PlesseyWriter) encode(contents string) ([]bool, error) {
	if len(contents) == 0 {
		return nil, fmt.Errorf("contents must not be empty: %w", errs.BadInput)
	}
	if err := CheckNumeric(contents); err != nil {
		return nil, err
	}

	// Plessey sends each decimal digit as a 4-bit nibble, least-significant
	// bit first.
	bits := make([]int, 0, len(contents)*4)
	for i := 0; i < len(contents); i++ {
		digit := contents[i] - '0'
		for bit := 0; bit < 4; bit++ {
			bits = append(bits, int((digit>>bit)&1))
		}
	}

	check := plesseyCRC(bits)

	// start (6 modules) + one 3-module pattern per data and CRC bit + end (7 modules)
	codeWidth := 6 + (len(bits)+plesseyCRCBits)*3 + 7
	result := make([]bool, codeWidth)
	pos := AppendPattern(result, 0, plesseyStartPattern, true)

	for _, bit := range bits {
		pos += AppendPattern(result, pos, plesseyBitPatterns[bit], true)
	}
	for i := plesseyCRCBits - 1; i >= 0; i-- {
		pos += AppendPattern(result, pos, plesseyBitPatterns[(check>>i)&1], true)
	}

	AppendPattern(result, pos, plesseyEndPattern, true)
	return result, nil
}

// plesseyCRC computes the 8-bit CRC remainder of the given bit stream
// (most-significant bit processed first) against plesseyCRCPolynomial,
// as if plesseyCRCBits zero bits were appended to the message.
func plesseyCRC(bits []int) int {
	reg := 0
	process := func(bit int) {
		reg = (reg << 1) | bit
		if reg&(1<<plesseyCRCBits) != 0 {
			reg ^= plesseyCRCPolynomial
		}
	}
	for _, bit := range bits {
		process(bit)
	}
	for i := 0; i < plesseyCRCBits; i++ {
		process(0)
	}
	return reg & ((1 << plesseyCRCBits) - 1)
}
