package reedsolomon

import (
	"fmt"

	"github.com/craig-b/ZXing.Encoders/errs"
)

// Encoder performs Reed-Solomon encoding over a single GenericGF, caching
// generator polynomials by degree so repeated calls at the same ecBytes
// count do not rebuild them.
type Encoder struct {
	field            *GenericGF
	cachedGenerators []*GenericGFPoly
}

// NewEncoder creates a new Encoder for the given field.
func NewEncoder(field *GenericGF) *Encoder {
	e := &Encoder{
		field:            field,
		cachedGenerators: make([]*GenericGFPoly, 1),
	}
	e.cachedGenerators[0] = newGenericGFPoly(field, []int{1})
	return e
}

func (e *Encoder) buildGenerator(degree int) *GenericGFPoly {
	if degree < len(e.cachedGenerators) {
		return e.cachedGenerators[degree]
	}
	lastGenerator := e.cachedGenerators[len(e.cachedGenerators)-1]
	for d := len(e.cachedGenerators); d <= degree; d++ {
		nextGenerator := lastGenerator.MultiplyPoly(
			newGenericGFPoly(e.field, []int{1, e.field.Exp(d - 1 + e.field.GeneratorBase())}))
		e.cachedGenerators = append(e.cachedGenerators, nextGenerator)
		lastGenerator = nextGenerator
	}
	return e.cachedGenerators[degree]
}

// Encode appends ecBytes error-correction codewords to the data in
// toEncode, in place. toEncode must have space for data + ecBytes values.
//
// It reports ErrBadInput if ecBytes is not positive, if toEncode has no
// data bytes ahead of the EC region, or if ecBytes is not less than the
// field size.
func (e *Encoder) Encode(toEncode []int, ecBytes int) error {
	if ecBytes <= 0 {
		return fmt.Errorf("reedsolomon: ecBytes must be positive, got %d: %w", ecBytes, errs.BadInput)
	}
	if ecBytes >= e.field.Size() {
		return fmt.Errorf("reedsolomon: ecBytes %d exceeds field size %d: %w", ecBytes, e.field.Size(), errs.BadInput)
	}
	dataBytes := len(toEncode) - ecBytes
	if dataBytes <= 0 {
		return fmt.Errorf("reedsolomon: no data bytes provided (len=%d, ecBytes=%d): %w", len(toEncode), ecBytes, errs.BadInput)
	}
	generator := e.buildGenerator(ecBytes)
	infoCoefficients := make([]int, dataBytes)
	copy(infoCoefficients, toEncode[:dataBytes])
	info := newGenericGFPoly(e.field, infoCoefficients)
	info = info.MultiplyByMonomial(ecBytes, 1)
	remainder := info.Divide(generator)[1]
	coefficients := remainder.Coefficients()
	numZero := ecBytes - len(coefficients)
	for i := 0; i < numZero; i++ {
		toEncode[dataBytes+i] = 0
	}
	copy(toEncode[dataBytes+numZero:], coefficients)
	return nil
}
