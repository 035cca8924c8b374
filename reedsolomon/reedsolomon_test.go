package reedsolomon

import (
	"errors"
	"testing"

	"github.com/craig-b/ZXing.Encoders/errs"
)

func TestEncodeAppendsECBytes(t *testing.T) {
	field := QRCodeField256

	dataSize := 10
	ecSize := 7
	toEncode := make([]int, dataSize+ecSize)
	for i := 0; i < dataSize; i++ {
		toEncode[i] = i + 1
	}

	enc := NewEncoder(field)
	if err := enc.Encode(toEncode, ecSize); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	for i := 0; i < dataSize; i++ {
		if toEncode[i] != i+1 {
			t.Errorf("data[%d] = %d, want %d", i, toEncode[i], i+1)
		}
	}

	allZero := true
	for i := dataSize; i < len(toEncode); i++ {
		if toEncode[i] != 0 {
			allZero = false
		}
	}
	if allZero {
		t.Error("EC codewords should not all be zero for nonzero data")
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	field := QRCodeField256
	dataSize, ecSize := 5, 4

	build := func() []int {
		toEncode := make([]int, dataSize+ecSize)
		for i := 0; i < dataSize; i++ {
			toEncode[i] = (i + 1) * 10
		}
		if err := NewEncoder(field).Encode(toEncode, ecSize); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		return toEncode
	}

	a := build()
	b := build()
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("non-deterministic encode at %d: %d != %d", i, a[i], b[i])
		}
	}
}

func TestEncodeRejectsNonPositiveECBytes(t *testing.T) {
	field := QRCodeField256
	toEncode := make([]int, 10)
	if err := NewEncoder(field).Encode(toEncode, 0); !errors.Is(err, errs.BadInput) {
		t.Errorf("ecBytes=0 error = %v, want ErrBadInput", err)
	}
	if err := NewEncoder(field).Encode(toEncode, -1); !errors.Is(err, errs.BadInput) {
		t.Errorf("ecBytes=-1 error = %v, want ErrBadInput", err)
	}
}

func TestEncodeRejectsNoDataBytes(t *testing.T) {
	field := QRCodeField256
	toEncode := make([]int, 4)
	if err := NewEncoder(field).Encode(toEncode, 4); !errors.Is(err, errs.BadInput) {
		t.Errorf("zero data bytes error = %v, want ErrBadInput", err)
	}
}

func TestEncodeRejectsECBytesExceedingFieldSize(t *testing.T) {
	field := QRCodeField256
	toEncode := make([]int, field.Size()+10)
	if err := NewEncoder(field).Encode(toEncode, field.Size()); !errors.Is(err, errs.BadInput) {
		t.Errorf("ecBytes == field size error = %v, want ErrBadInput", err)
	}
}

func TestGaloisFieldBasics(t *testing.T) {
	field := QRCodeField256
	if field.Size() != 256 {
		t.Errorf("size = %d, want 256", field.Size())
	}
	if field.GeneratorBase() != 0 {
		t.Errorf("generatorBase = %d, want 0", field.GeneratorBase())
	}

	for a := 1; a < 256; a++ {
		inv := field.Inverse(a)
		product := field.Multiply(a, inv)
		if product != 1 {
			t.Errorf("a=%d: a*inv(a) = %d, want 1", a, product)
		}
	}

	if AddOrSubtract(42, 42) != 0 {
		t.Error("a XOR a should be 0")
	}

	if field.Multiply(0, 100) != 0 || field.Multiply(100, 0) != 0 {
		t.Error("multiply by 0 should be 0")
	}
}

func TestGenericGFPoly(t *testing.T) {
	field := QRCodeField256

	zero := field.Zero()
	if !zero.IsZero() {
		t.Error("zero should be zero")
	}

	one := field.One()
	if one.IsZero() {
		t.Error("one should not be zero")
	}
	if one.Degree() != 0 {
		t.Errorf("one degree = %d, want 0", one.Degree())
	}

	// p(x) = 2x + 3
	p := newGenericGFPoly(field, []int{2, 3})
	if p.EvaluateAt(0) != 3 {
		t.Errorf("p(0) = %d, want 3", p.EvaluateAt(0))
	}

	doubled := p.MultiplyScalar(1)
	if doubled != p {
		t.Error("multiply by 1 should return same polynomial")
	}
}

func TestDivideSatisfiesEuclideanIdentity(t *testing.T) {
	field := QRCodeField256
	p := newGenericGFPoly(field, []int{1, 0, 1, 1, 0}) // arbitrary nonzero poly
	d := newGenericGFPoly(field, []int{1, 1})          // x + 1

	qr := p.Divide(d)
	recombined := qr[0].MultiplyPoly(d).AddOrSubtractPoly(qr[1])

	pCoeff := p.Coefficients()
	rCoeff := recombined.Coefficients()
	if len(pCoeff) != len(rCoeff) {
		t.Fatalf("length mismatch: %v vs %v", pCoeff, rCoeff)
	}
	for i := range pCoeff {
		if pCoeff[i] != rCoeff[i] {
			t.Errorf("p != q*d+r at %d: %v vs %v", i, pCoeff, rCoeff)
		}
	}
}
