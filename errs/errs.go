// Package errs holds the sentinel errors shared by every package in this
// module. It has no dependencies so that leaf packages (bitutil,
// reedsolomon) and the root barcode package can both wrap the same four
// sentinels without an import cycle.
package errs

import "errors"

var (
	// BadInput marks content that cannot be represented in the requested
	// symbology, a length outside the symbology's bounds, a negative
	// requested dimension, or a format mismatched to its encoder.
	BadInput = errors.New("bad input")

	// Overflow marks data that does not fit: no QR version large enough at
	// the requested error-correction level, or a 1-D symbol that would
	// exceed its module budget.
	Overflow = errors.New("data does not fit in symbol")

	// ChecksumMismatch marks a caller-supplied check digit that disagrees
	// with the value computed from the rest of the content.
	ChecksumMismatch = errors.New("checksum mismatch")

	// InternalInvariant marks a condition that must never occur for valid
	// input and valid internal state. Seeing it indicates a defect in this
	// module, not bad input.
	InternalInvariant = errors.New("internal invariant violated")
)
