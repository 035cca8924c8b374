package bitutil

import (
	"fmt"
	"strings"

	"github.com/craig-b/ZXing.Encoders/errs"
)

// BitMatrix represents a 2D matrix of bits.
// x is the column position, y is the row position. The origin is at the top-left.
type BitMatrix struct {
	width   int
	height  int
	rowSize int
	data    []uint32
}

// NewBitMatrix creates a new square BitMatrix with the given dimension. It
// reports ErrBadInput if dimension is less than 1.
func NewBitMatrix(dimension int) (*BitMatrix, error) {
	return NewBitMatrixWithSize(dimension, dimension)
}

// NewBitMatrixWithSize creates a new BitMatrix with the given width and
// height. It reports ErrBadInput if either is less than 1.
func NewBitMatrixWithSize(width, height int) (*BitMatrix, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("bitmatrix: dimensions %dx%d must be at least 1x1: %w", width, height, errs.BadInput)
	}
	rowSize := (width + 31) / 32
	return &BitMatrix{
		width:   width,
		height:  height,
		rowSize: rowSize,
		data:    make([]uint32, rowSize*height),
	}, nil
}

// newBitMatrixFromData creates a BitMatrix from existing data.
func newBitMatrixFromData(width, height, rowSize int, data []uint32) *BitMatrix {
	return &BitMatrix{width: width, height: height, rowSize: rowSize, data: data}
}

// ParseBoolMatrix creates a BitMatrix from a 2D boolean array, used by tests
// that want to build a fixture without going through ParseStringMatrix.
func ParseBoolMatrix(image [][]bool) (*BitMatrix, error) {
	height := len(image)
	if height == 0 {
		return nil, fmt.Errorf("bitmatrix: empty image: %w", errs.BadInput)
	}
	width := len(image[0])
	bm, err := NewBitMatrixWithSize(width, height)
	if err != nil {
		return nil, err
	}
	for i := 0; i < height; i++ {
		if len(image[i]) != width {
			return nil, fmt.Errorf("bitmatrix: row %d has length %d, want %d: %w", i, len(image[i]), width, errs.BadInput)
		}
		for j := 0; j < width; j++ {
			if image[i][j] {
				bm.Set(j, i)
			}
		}
	}
	return bm, nil
}

// ParseStringMatrix creates a BitMatrix from a textual rendering such as the
// one String/StringWithChars produce. setStr and unsetStr are the tokens
// used for a set and an unset module; lineSeparator delimits rows. Spaces,
// tabs and carriage returns that are not part of a token are skipped. It
// reports ErrBadInput if rows have inconsistent lengths or the text contains
// any other token that is neither setStr nor unsetStr.
func ParseStringMatrix(repr, setStr, unsetStr, lineSeparator string) (*BitMatrix, error) {
	rows := strings.Split(repr, lineSeparator)
	// Trailing separator produces a trailing empty row; drop it.
	if len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	var bts []bool
	rowLength := -1
	for _, line := range rows {
		lineBits, err := parseStringMatrixLine(line, setStr, unsetStr)
		if err != nil {
			return nil, err
		}
		if len(lineBits) == 0 {
			continue
		}
		if rowLength == -1 {
			rowLength = len(lineBits)
		} else if len(lineBits) != rowLength {
			return nil, fmt.Errorf("bitmatrix: row lengths do not match (%d != %d): %w", len(lineBits), rowLength, errs.BadInput)
		}
		bts = append(bts, lineBits...)
	}
	if rowLength <= 0 {
		return nil, fmt.Errorf("bitmatrix: no rows found: %w", errs.BadInput)
	}
	matrix, err := NewBitMatrixWithSize(rowLength, len(bts)/rowLength)
	if err != nil {
		return nil, err
	}
	for i, b := range bts {
		if b {
			matrix.Set(i%rowLength, i/rowLength)
		}
	}
	return matrix, nil
}

func parseStringMatrixLine(line, setStr, unsetStr string) ([]bool, error) {
	var bts []bool
	pos := 0
	for pos < len(line) {
		switch {
		case len(line) >= pos+len(setStr) && line[pos:pos+len(setStr)] == setStr:
			pos += len(setStr)
			bts = append(bts, true)
		case len(line) >= pos+len(unsetStr) && line[pos:pos+len(unsetStr)] == unsetStr:
			pos += len(unsetStr)
			bts = append(bts, false)
		case line[pos] == ' ' || line[pos] == '\t' || line[pos] == '\r':
			pos++
		default:
			return nil, fmt.Errorf("bitmatrix: illegal character at %q: %w", line[pos:], errs.BadInput)
		}
	}
	return bts, nil
}

// Get returns true if the bit at (x, y) is set.
func (bm *BitMatrix) Get(x, y int) bool {
	offset := y*bm.rowSize + x/32
	return (bm.data[offset]>>uint(x&0x1f))&1 != 0
}

// Set sets the bit at (x, y).
func (bm *BitMatrix) Set(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] |= 1 << uint(x&0x1f)
}

// Unset clears the bit at (x, y).
func (bm *BitMatrix) Unset(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] &^= 1 << uint(x&0x1f)
}

// Flip flips the bit at (x, y).
func (bm *BitMatrix) Flip(x, y int) {
	offset := y*bm.rowSize + x/32
	bm.data[offset] ^= 1 << uint(x&0x1f)
}

// Xor flips bits in this matrix where mask has bits set. It reports
// ErrBadInput if the two matrices' dimensions differ.
func (bm *BitMatrix) Xor(mask *BitMatrix) error {
	if bm.width != mask.width || bm.height != mask.height || bm.rowSize != mask.rowSize {
		return fmt.Errorf("bitmatrix: dimensions do not match (%dx%d != %dx%d): %w", bm.width, bm.height, mask.width, mask.height, errs.BadInput)
	}
	rowArray := NewBitArray(bm.width)
	for y := 0; y < bm.height; y++ {
		offset := y * bm.rowSize
		row := mask.Row(y, rowArray).BitData()
		for x := 0; x < bm.rowSize; x++ {
			bm.data[offset+x] ^= row[x]
		}
	}
	return nil
}

// Clear clears all bits.
func (bm *BitMatrix) Clear() {
	for i := range bm.data {
		bm.data[i] = 0
	}
}

// SetRegion sets a rectangular region of bits. It reports ErrBadInput if the
// region has a non-positive extent or runs outside the matrix.
func (bm *BitMatrix) SetRegion(left, top, width, height int) error {
	if top < 0 || left < 0 {
		return fmt.Errorf("bitmatrix: left=%d top=%d must be nonnegative: %w", left, top, errs.BadInput)
	}
	if height < 1 || width < 1 {
		return fmt.Errorf("bitmatrix: width=%d height=%d must be at least 1: %w", width, height, errs.BadInput)
	}
	right := left + width
	bottom := top + height
	if bottom > bm.height || right > bm.width {
		return fmt.Errorf("bitmatrix: region [%d,%d,%d,%d] does not fit in %dx%d: %w", left, top, width, height, bm.width, bm.height, errs.BadInput)
	}
	for y := top; y < bottom; y++ {
		offset := y * bm.rowSize
		for x := left; x < right; x++ {
			bm.data[offset+x/32] |= 1 << uint(x&0x1f)
		}
	}
	return nil
}

// Row returns a row as a BitArray. If row is nil or too small, a new one is allocated.
func (bm *BitMatrix) Row(y int, row *BitArray) *BitArray {
	if row == nil || row.Size() < bm.width {
		row = NewBitArray(bm.width)
	} else {
		row.Clear()
	}
	offset := y * bm.rowSize
	for x := 0; x < bm.rowSize; x++ {
		row.SetBulk(x*32, bm.data[offset+x])
	}
	return row
}

// SetRow sets the row at y from the given BitArray.
func (bm *BitMatrix) SetRow(y int, row *BitArray) {
	copy(bm.data[y*bm.rowSize:], row.BitData()[:bm.rowSize])
}

// Rotate180 rotates the matrix 180 degrees in place.
func (bm *BitMatrix) Rotate180() {
	topRow := NewBitArray(bm.width)
	bottomRow := NewBitArray(bm.width)
	maxHeight := (bm.height + 1) / 2
	for i := 0; i < maxHeight; i++ {
		topRow = bm.Row(i, topRow)
		bottomRowIndex := bm.height - 1 - i
		bottomRow = bm.Row(bottomRowIndex, bottomRow)
		topRow.Reverse()
		bottomRow.Reverse()
		bm.SetRow(i, bottomRow)
		bm.SetRow(bottomRowIndex, topRow)
	}
}

// Width returns the width.
func (bm *BitMatrix) Width() int { return bm.width }

// Height returns the height.
func (bm *BitMatrix) Height() int { return bm.height }

// RowSize returns the row size in uint32 units.
func (bm *BitMatrix) RowSize() int { return bm.rowSize }

// Clone returns a deep copy of the BitMatrix.
func (bm *BitMatrix) Clone() *BitMatrix {
	d := make([]uint32, len(bm.data))
	copy(d, bm.data)
	return newBitMatrixFromData(bm.width, bm.height, bm.rowSize, d)
}

// String returns a string representation using "1" for set and "0" for unset.
func (bm *BitMatrix) String() string {
	return bm.StringWithChars("1", "0")
}

// StringWithChars returns a string representation using the given set/unset
// strings, one row per line. This is the textual form ParseStringMatrix
// parses back.
func (bm *BitMatrix) StringWithChars(setString, unsetString string) string {
	var sb strings.Builder
	sb.Grow(bm.height * (bm.width + 1))
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.Get(x, y) {
				sb.WriteString(setString)
			} else {
				sb.WriteString(unsetString)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Equals returns true if two BitMatrices are equal.
func (bm *BitMatrix) Equals(other *BitMatrix) bool {
	if bm.width != other.width || bm.height != other.height || bm.rowSize != other.rowSize {
		return false
	}
	for i := range bm.data {
		if bm.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
