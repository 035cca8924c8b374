package charset

import (
	"fmt"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// EncodeString converts s, a Go string holding UTF-8 text, into the bytes
// of the named character set for use as a QR Code BYTE-mode payload. An
// empty name or "ISO-8859-1" takes s a rune at a time and returns its raw
// Latin-1 byte value; "UTF-8" passes s's own encoding through unchanged.
func EncodeString(s, name string) ([]byte, error) {
	switch name {
	case "", "ISO-8859-1", "ISO8859_1":
		return encodeLatin1(s)
	case "UTF-8", "UTF8":
		return []byte(s), nil
	case "Shift_JIS", "SJIS":
		encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(s))
		if err != nil {
			return nil, fmt.Errorf("charset: encode as Shift_JIS: %w", err)
		}
		return encoded, nil
	case "GB18030", "GB2312", "GBK", "EUC_CN":
		encoded, _, err := transform.Bytes(simplifiedchinese.GBK.NewEncoder(), []byte(s))
		if err != nil {
			return nil, fmt.Errorf("charset: encode as GBK: %w", err)
		}
		return encoded, nil
	default:
		return nil, fmt.Errorf("charset: unsupported character set %q", name)
	}
}

// EncodeShiftJIS is EncodeString specialized for QR Kanji-mode segmentation,
// which always needs the Shift_JIS byte pairs regardless of the caller's
// requested BYTE-mode character set.
func EncodeShiftJIS(s string) ([]byte, error) {
	return EncodeString(s, "Shift_JIS")
}

func encodeLatin1(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xFF {
			return nil, fmt.Errorf("charset: %q has no ISO-8859-1 representation", r)
		}
		out = append(out, byte(r))
	}
	return out, nil
}
