package qrcode

import (
	"fmt"

	barcode "github.com/craig-b/ZXing.Encoders"
	"github.com/craig-b/ZXing.Encoders/bitutil"
)

const defaultQuietZoneSize = 4

// Writer encodes QR Code symbols.
type Writer struct{}

// NewWriter creates a new QR Code Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Encode renders contents as a QR Code BitMatrix at least width by height
// modules.
func (w *Writer) Encode(contents string, format barcode.Format, width, height int, opts *barcode.EncodeOptions) (*bitutil.BitMatrix, error) {
	if contents == "" {
		return nil, fmt.Errorf("qrcode: contents must not be empty: %w", barcode.ErrBadInput)
	}
	if format != barcode.FormatQRCode {
		return nil, fmt.Errorf("qrcode: writer only handles %s, got %s: %w", barcode.FormatQRCode, format, barcode.ErrBadInput)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("qrcode: requested dimensions %dx%d must be nonnegative: %w", width, height, barcode.ErrBadInput)
	}

	ecLevel := ECLevelL
	quietZone := defaultQuietZoneSize
	qrVersion := 0
	maskPattern := -1
	params := Params{}

	if opts != nil {
		if opts.ErrorCorrection != "" {
			switch opts.ErrorCorrection {
			case "L":
				ecLevel = ECLevelL
			case "M":
				ecLevel = ECLevelM
			case "Q":
				ecLevel = ECLevelQ
			case "H":
				ecLevel = ECLevelH
			default:
				return nil, fmt.Errorf("qrcode: unknown error correction level %q: %w", opts.ErrorCorrection, barcode.ErrBadInput)
			}
		}
		if opts.Margin != nil {
			quietZone = *opts.Margin
		}
		if opts.QRVersion > 0 {
			qrVersion = opts.QRVersion
		}
		if opts.QRMaskPattern >= 0 && opts.QRMaskPattern <= 7 {
			maskPattern = opts.QRMaskPattern
		}
		params.CharacterSet = opts.CharacterSet
		params.DisableECI = opts.DisableECI
		params.GS1Format = opts.GS1Format
	}

	code, err := EncodeWithParams(contents, ecLevel, qrVersion, maskPattern, params)
	if err != nil {
		return nil, err
	}
	return RenderResult(code, width, height, quietZone)
}
