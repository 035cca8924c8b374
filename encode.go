package barcode

import "github.com/craig-b/ZXing.Encoders/bitutil"

// EncodeOptions carries the optional hints an encoder may consult. A nil
// *EncodeOptions, or a zero value for an individual field, means "use the
// encoder's default for that setting". QRMaskPattern is the exception: its
// zero value pins mask pattern 0.
type EncodeOptions struct {
	// ErrorCorrection selects the QR error-correction level: "L", "M", "Q"
	// or "H". Ignored by every 1-D encoder.
	ErrorCorrection string

	// CharacterSet names the character set used to turn the input string
	// into bytes for QR BYTE-mode segments, e.g. "UTF-8", "ISO-8859-1" or
	// "Shift_JIS". An empty value lets the encoder choose.
	CharacterSet string

	// DisableECI suppresses the ECI designator that would otherwise be
	// emitted ahead of a non-default character set.
	DisableECI bool

	// GS1Format marks contents as GS1-formatted application data. QR gets
	// an FNC1-in-first-position header; CODE 128 gets a leading FNC1.
	GS1Format bool

	// Margin overrides the QR quiet zone width, in modules, on every side of
	// the symbol. A nil Margin uses the encoder's default. The 1-D writers
	// do not read Margin; they always use a 10-module quiet zone.
	Margin *int

	// QRVersion forces a specific QR version (1-40). Zero lets the encoder
	// choose the smallest version that fits the content.
	QRVersion int

	// QRMaskPattern forces a specific QR mask pattern (0-7), so the zero
	// value pins mask 0. A negative value lets the encoder search for the
	// lowest-penalty mask.
	QRMaskPattern int

	// ForceCodeSet forces CODE 128 to encode every symbol in one code set
	// ("A", "B" or "C") instead of choosing code sets automatically.
	ForceCodeSet string
}

// Writer encodes content into the bit matrix of a single barcode format.
type Writer interface {
	// Encode renders contents as format into a BitMatrix at least width by
	// height modules. Implementations return ErrBadInput if format does not
	// match the writer, if contents cannot be represented in the
	// symbology, or if width or height is negative.
	Encode(contents string, format Format, width, height int, opts *EncodeOptions) (*bitutil.BitMatrix, error)
}
