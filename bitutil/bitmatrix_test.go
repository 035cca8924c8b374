package bitutil

import (
	"errors"
	"testing"

	"github.com/craig-b/ZXing.Encoders/errs"
)

func mustMatrix(t *testing.T, width, height int) *BitMatrix {
	t.Helper()
	bm, err := NewBitMatrixWithSize(width, height)
	if err != nil {
		t.Fatalf("NewBitMatrixWithSize(%d, %d): %v", width, height, err)
	}
	return bm
}

func TestBitMatrixGetSet(t *testing.T) {
	bm := mustMatrix(t, 10, 10)
	bm.Set(3, 5)
	if !bm.Get(3, 5) {
		t.Error("bit (3,5) should be set")
	}
	if bm.Get(5, 3) {
		t.Error("bit (5,3) should not be set")
	}
}

func TestBitMatrixFlip(t *testing.T) {
	bm := mustMatrix(t, 4, 4)
	bm.Flip(1, 2)
	if !bm.Get(1, 2) {
		t.Error("bit should be set after flip")
	}
	bm.Flip(1, 2)
	if bm.Get(1, 2) {
		t.Error("bit should be unset after double flip")
	}
}

func TestBitMatrixUnset(t *testing.T) {
	bm := mustMatrix(t, 4, 4)
	bm.Set(2, 3)
	bm.Unset(2, 3)
	if bm.Get(2, 3) {
		t.Error("bit should be unset")
	}
}

func TestBitMatrixSetRegion(t *testing.T) {
	bm := mustMatrix(t, 8, 8)
	if err := bm.SetRegion(2, 2, 4, 4); err != nil {
		t.Fatalf("SetRegion: %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			expected := x >= 2 && x < 6 && y >= 2 && y < 6
			if bm.Get(x, y) != expected {
				t.Errorf("(%d,%d) = %v, want %v", x, y, bm.Get(x, y), expected)
			}
		}
	}
}

func TestBitMatrixSetRegionRejectsOutOfBounds(t *testing.T) {
	bm := mustMatrix(t, 8, 8)
	if err := bm.SetRegion(6, 6, 4, 4); !errors.Is(err, errs.BadInput) {
		t.Errorf("SetRegion out of bounds error = %v, want ErrBadInput", err)
	}
	if err := bm.SetRegion(-1, 0, 2, 2); !errors.Is(err, errs.BadInput) {
		t.Errorf("SetRegion negative origin error = %v, want ErrBadInput", err)
	}
}

func TestBitMatrixRow(t *testing.T) {
	bm := mustMatrix(t, 8, 4)
	bm.Set(3, 2)
	bm.Set(5, 2)
	row := bm.Row(2, nil)
	if !row.Get(3) || !row.Get(5) {
		t.Error("row should have bits 3 and 5 set")
	}
	if row.Get(4) {
		t.Error("row bit 4 should not be set")
	}
}

func TestBitMatrixRotate180(t *testing.T) {
	bm := mustMatrix(t, 4, 4)
	bm.Set(0, 0)
	bm.Rotate180()
	if !bm.Get(3, 3) {
		t.Error("(3,3) should be set after 180 rotation")
	}
	if bm.Get(0, 0) {
		t.Error("(0,0) should be unset after 180 rotation")
	}
}

func TestBitMatrixClone(t *testing.T) {
	bm := mustMatrix(t, 8, 8)
	bm.Set(1, 1)
	clone := bm.Clone()
	clone.Set(2, 2)
	if bm.Get(2, 2) {
		t.Error("modifying clone should not affect original")
	}
}

func TestBitMatrixEquals(t *testing.T) {
	a := mustMatrix(t, 4, 4)
	b := mustMatrix(t, 4, 4)
	a.Set(1, 2)
	b.Set(1, 2)
	if !a.Equals(b) {
		t.Error("equal matrices should be equal")
	}
	b.Set(3, 3)
	if a.Equals(b) {
		t.Error("different matrices should not be equal")
	}
}

func TestBitMatrixStringRoundTrip(t *testing.T) {
	bm := mustMatrix(t, 3, 2)
	bm.Set(0, 0)
	bm.Set(2, 1)
	repr := bm.StringWithChars("X", ".")

	parsed, err := ParseStringMatrix(repr, "X", ".", "\n")
	if err != nil {
		t.Fatalf("ParseStringMatrix: %v", err)
	}
	if !bm.Equals(parsed) {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", bm, parsed)
	}
}

func TestParseStringMatrixRejectsRaggedRows(t *testing.T) {
	_, err := ParseStringMatrix("X.\nX..\n", "X", ".", "\n")
	if !errors.Is(err, errs.BadInput) {
		t.Errorf("ragged rows error = %v, want ErrBadInput", err)
	}
}

func TestNewBitMatrixRejectsNonPositiveSize(t *testing.T) {
	if _, err := NewBitMatrixWithSize(0, 5); !errors.Is(err, errs.BadInput) {
		t.Errorf("width=0 error = %v, want ErrBadInput", err)
	}
	if _, err := NewBitMatrixWithSize(5, -1); !errors.Is(err, errs.BadInput) {
		t.Errorf("height=-1 error = %v, want ErrBadInput", err)
	}
}
