package bitutil

import (
	"errors"
	"testing"

	"github.com/craig-b/ZXing.Encoders/errs"
)

func TestBitArrayGetSet(t *testing.T) {
	ba := NewBitArray(33)
	for i := 0; i < 33; i++ {
		if ba.Get(i) {
			t.Errorf("bit %d should not be set", i)
		}
	}
	ba.Set(0)
	ba.Set(31)
	ba.Set(32)
	if !ba.Get(0) || !ba.Get(31) || !ba.Get(32) {
		t.Error("bits should be set")
	}
	if ba.Get(1) || ba.Get(30) {
		t.Error("bits should not be set")
	}
}

func TestBitArrayFlip(t *testing.T) {
	ba := NewBitArray(8)
	ba.Flip(3)
	if !ba.Get(3) {
		t.Error("bit 3 should be set after flip")
	}
	ba.Flip(3)
	if ba.Get(3) {
		t.Error("bit 3 should be unset after double flip")
	}
}

func TestBitArrayGetNextSet(t *testing.T) {
	ba := NewBitArray(64)
	ba.Set(10)
	ba.Set(40)
	if got := ba.GetNextSet(0); got != 10 {
		t.Errorf("GetNextSet(0) = %d, want 10", got)
	}
	if got := ba.GetNextSet(10); got != 10 {
		t.Errorf("GetNextSet(10) = %d, want 10", got)
	}
	if got := ba.GetNextSet(11); got != 40 {
		t.Errorf("GetNextSet(11) = %d, want 40", got)
	}
	if got := ba.GetNextSet(41); got != 64 {
		t.Errorf("GetNextSet(41) = %d, want 64", got)
	}
}

func TestBitArrayGetNextUnset(t *testing.T) {
	ba := NewBitArray(8)
	if err := ba.SetRange(0, 8); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	ba.Flip(3) // unset bit 3
	if got := ba.GetNextUnset(0); got != 3 {
		t.Errorf("GetNextUnset(0) = %d, want 3", got)
	}
}

func TestBitArrayAppendBit(t *testing.T) {
	ba := &BitArray{}
	ba.AppendBit(true)
	ba.AppendBit(false)
	ba.AppendBit(true)
	if ba.Size() != 3 {
		t.Errorf("size = %d, want 3", ba.Size())
	}
	if !ba.Get(0) || ba.Get(1) || !ba.Get(2) {
		t.Error("incorrect bits after append")
	}
}

func TestBitArrayAppendBits(t *testing.T) {
	ba := &BitArray{}
	if err := ba.AppendBits(0x1E, 6); err != nil { // 011110
		t.Fatalf("AppendBits: %v", err)
	}
	if ba.Size() != 6 {
		t.Fatalf("size = %d, want 6", ba.Size())
	}
	expected := []bool{false, true, true, true, true, false}
	for i, exp := range expected {
		if ba.Get(i) != exp {
			t.Errorf("bit %d = %v, want %v", i, ba.Get(i), exp)
		}
	}
}

func TestBitArrayAppendBitsRejectsOutOfRange(t *testing.T) {
	ba := &BitArray{}
	if err := ba.AppendBits(0, 33); !errors.Is(err, errs.BadInput) {
		t.Errorf("AppendBits(_, 33) error = %v, want ErrBadInput", err)
	}
	if err := ba.AppendBits(0, -1); !errors.Is(err, errs.BadInput) {
		t.Errorf("AppendBits(_, -1) error = %v, want ErrBadInput", err)
	}
}

func TestBitArrayXor(t *testing.T) {
	a := NewBitArray(8)
	b := NewBitArray(8)
	a.Set(0)
	a.Set(2)
	b.Set(1)
	b.Set(2)
	if err := a.Xor(b); err != nil {
		t.Fatalf("Xor: %v", err)
	}
	if !a.Get(0) || !a.Get(1) || a.Get(2) {
		t.Error("XOR result incorrect")
	}
}

func TestBitArrayXorRejectsSizeMismatch(t *testing.T) {
	a := NewBitArray(8)
	b := NewBitArray(9)
	if err := a.Xor(b); !errors.Is(err, errs.BadInput) {
		t.Errorf("Xor size mismatch error = %v, want ErrBadInput", err)
	}
}

func TestBitArrayReverse(t *testing.T) {
	ba := NewBitArray(8)
	ba.Set(0) // bit 0
	ba.Set(2) // bit 2
	ba.Reverse()
	if !ba.Get(5) || !ba.Get(7) {
		t.Error("reversed bits incorrect")
	}
	if ba.Get(0) || ba.Get(2) {
		t.Error("original positions should be unset")
	}
}

func TestBitArrayClone(t *testing.T) {
	ba := NewBitArray(16)
	ba.Set(5)
	clone := ba.Clone()
	clone.Set(10)
	if ba.Get(10) {
		t.Error("modifying clone should not affect original")
	}
	if !clone.Get(5) || !clone.Get(10) {
		t.Error("clone should have both bits set")
	}
}

func TestBitArrayIsRange(t *testing.T) {
	ba := NewBitArray(16)
	if err := ba.SetRange(4, 12); err != nil {
		t.Fatalf("SetRange: %v", err)
	}
	allSet, err := ba.IsRange(4, 12, true)
	if err != nil || !allSet {
		t.Errorf("range [4,12) should be all set, err=%v", err)
	}
	allUnset, err := ba.IsRange(0, 4, false)
	if err != nil || !allUnset {
		t.Errorf("range [0,4) should be all unset, err=%v", err)
	}
	notAllSet, err := ba.IsRange(0, 8, true)
	if err != nil || notAllSet {
		t.Error("range [0,8) should not be all set")
	}
}

func TestBitArraySetRangeRejectsInvalidRange(t *testing.T) {
	ba := NewBitArray(8)
	if err := ba.SetRange(5, 2); !errors.Is(err, errs.BadInput) {
		t.Errorf("SetRange(5, 2) error = %v, want ErrBadInput", err)
	}
	if err := ba.SetRange(0, 9); !errors.Is(err, errs.BadInput) {
		t.Errorf("SetRange(0, 9) error = %v, want ErrBadInput", err)
	}
}
