package barcode

import "github.com/craig-b/ZXing.Encoders/errs"

// Every error returned by this module wraps exactly one of these four
// sentinels, so callers can classify a failure with errors.Is without
// parsing message text. They are the same sentinels every subpackage
// (bitutil, reedsolomon, oned, qrcode) wraps its own errors around.
var (
	// ErrBadInput marks content that cannot be represented in the requested
	// symbology: disallowed characters, a length outside the symbology's
	// bounds, negative requested dimensions, or a Format mismatched to the
	// encoder that was asked to handle it.
	ErrBadInput = errs.BadInput

	// ErrOverflow marks data that does not fit: no QR version large enough
	// at the requested error-correction level, or a 1-D symbol that would
	// exceed its module budget.
	ErrOverflow = errs.Overflow

	// ErrChecksumMismatch marks a caller-supplied check digit that disagrees
	// with the value this package computes from the rest of the content.
	ErrChecksumMismatch = errs.ChecksumMismatch

	// ErrInternalInvariant marks a condition that must never occur for valid
	// input and valid internal state, such as a mask-pattern search that
	// produced no candidate, or a bit stream that left data unconsumed.
	// Seeing this error indicates a defect in this package, not bad input.
	ErrInternalInvariant = errs.InternalInvariant
)
