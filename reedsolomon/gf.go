// Package reedsolomon implements Reed-Solomon error-correction coding over
// a generic Galois field, used to compute the error-correction codewords
// for a QR Code symbol.
package reedsolomon

import "fmt"

// GenericGF represents a Galois field GF(2^k) for Reed-Solomon coding:
// a primitive polynomial, the field size, and the generator base exponent.
type GenericGF struct {
	expTable      []int
	logTable      []int
	zero          *GenericGFPoly
	one           *GenericGFPoly
	size          int
	primitive     int
	generatorBase int
}

// QRCodeField256 is GF(256) with primitive polynomial x^8+x^4+x^3+x^2+1, the
// field every QR Code error-correction codeword is drawn from.
var QRCodeField256 = NewGenericGF(0x011D, 256, 0)

// NewGenericGF builds GF(size) from the given primitive polynomial, filling
// the log/exp tables once at construction so Multiply, Log, and Inverse are
// simple table lookups afterward.
func NewGenericGF(primitive, size, generatorBase int) *GenericGF {
	gf := &GenericGF{
		primitive:     primitive,
		size:          size,
		generatorBase: generatorBase,
		expTable:      make([]int, size),
		logTable:      make([]int, size),
	}

	x := 1
	for i := 0; i < size; i++ {
		gf.expTable[i] = x
		x *= 2
		if x >= size {
			x ^= primitive
			x &= size - 1
		}
	}
	for i := 0; i < size-1; i++ {
		gf.logTable[gf.expTable[i]] = i
	}

	gf.zero = newGenericGFPoly(gf, []int{0})
	gf.one = newGenericGFPoly(gf, []int{1})

	return gf
}

// Zero returns the zero polynomial over this field.
func (gf *GenericGF) Zero() *GenericGFPoly { return gf.zero }

// One returns the multiplicative identity polynomial over this field.
func (gf *GenericGF) One() *GenericGFPoly { return gf.one }

// BuildMonomial returns coefficient * x^degree.
//
// degree is always derived from a polynomial's own Degree() by callers in
// this package, so it is never negative in practice; entry-point validation
// in Encoder.Encode is what guarantees that. A negative degree here would
// mean a defect in this package, not bad caller input, so it panics rather
// than returning an error.
func (gf *GenericGF) BuildMonomial(degree, coefficient int) *GenericGFPoly {
	if degree < 0 {
		panic("reedsolomon: negative degree")
	}
	if coefficient == 0 {
		return gf.zero
	}
	coefficients := make([]int, degree+1)
	coefficients[0] = coefficient
	return newGenericGFPoly(gf, coefficients)
}

// AddOrSubtract computes a XOR b (addition and subtraction coincide in GF(2^n)).
func AddOrSubtract(a, b int) int {
	return a ^ b
}

// Exp returns 2^a in this field.
func (gf *GenericGF) Exp(a int) int {
	return gf.expTable[a]
}

// Log returns log2(a) in this field. a is always a nonzero coefficient
// already guarded by a Multiply or IsZero check in every caller, so this
// panics rather than returning an error: log(0) reaching here is a defect
// in this package.
func (gf *GenericGF) Log(a int) int {
	if a == 0 {
		panic("reedsolomon: log(0)")
	}
	return gf.logTable[a]
}

// Inverse returns the multiplicative inverse of a. As with Log, a == 0
// reaching here is a defect in this package, not bad caller input.
func (gf *GenericGF) Inverse(a int) int {
	if a == 0 {
		panic("reedsolomon: inverse(0)")
	}
	return gf.expTable[gf.size-gf.logTable[a]-1]
}

// Multiply returns a * b in this field.
func (gf *GenericGF) Multiply(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	return gf.expTable[(gf.logTable[a]+gf.logTable[b])%(gf.size-1)]
}

// Size returns the number of elements in the field.
func (gf *GenericGF) Size() int { return gf.size }

// GeneratorBase returns the generator base exponent.
func (gf *GenericGF) GeneratorBase() int { return gf.generatorBase }

// String returns a human-readable representation of the field.
func (gf *GenericGF) String() string {
	return fmt.Sprintf("GF(0x%x,%d)", gf.primitive, gf.size)
}
