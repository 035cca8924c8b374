package qrcode

import (
	"fmt"

	"github.com/craig-b/ZXing.Encoders/charset"
	"github.com/craig-b/ZXing.Encoders/errs"
)

// Mode identifies how a segment of a QR Code's data is encoded.
type Mode int

const (
	ModeTerminator         Mode = 0x00
	ModeNumeric            Mode = 0x01
	ModeAlphanumeric       Mode = 0x02
	ModeStructuredAppend   Mode = 0x03
	ModeByte               Mode = 0x04
	ModeFNC1FirstPosition  Mode = 0x05
	ModeECI                Mode = 0x07
	ModeKanji              Mode = 0x08
	ModeFNC1SecondPosition Mode = 0x09
	ModeHanzi              Mode = 0x0D
)

// characterCountBits holds, per mode, the character-count-indicator width
// for version brackets [1-9, 10-26, 27-40].
var characterCountBits = map[Mode][3]int{
	ModeTerminator:         {0, 0, 0},
	ModeNumeric:            {10, 12, 14},
	ModeAlphanumeric:       {9, 11, 13},
	ModeStructuredAppend:   {0, 0, 0},
	ModeByte:               {8, 16, 16},
	ModeECI:                {0, 0, 0},
	ModeKanji:              {8, 10, 12},
	ModeFNC1FirstPosition:  {0, 0, 0},
	ModeFNC1SecondPosition: {0, 0, 0},
	ModeHanzi:              {8, 10, 12},
}

// CharacterCountBits returns the number of bits used to encode the
// character count for this mode in the given version.
func (m Mode) CharacterCountBits(version *Version) int {
	number := version.Number
	var offset int
	switch {
	case number <= 9:
		offset = 0
	case number <= 26:
		offset = 1
	default:
		offset = 2
	}
	return characterCountBits[m][offset]
}

// Bits returns the 4-bit mode indicator.
func (m Mode) Bits() int {
	return int(m)
}

// chooseMode scans content once and picks the narrowest mode that can
// represent it: KANJI if the caller signaled Shift_JIS and every character
// falls in the Shift_JIS double-byte Kanji ranges, else NUMERIC if every
// character is a digit, ALPHANUMERIC if every character is in the
// 45-symbol alphanumeric set, BYTE otherwise.
func chooseMode(content string, preferKanji bool) Mode {
	if preferKanji && isOnlyShiftJISKanji(content) {
		return ModeKanji
	}

	hasNumeric := false
	hasAlphanumeric := false
	for _, c := range content {
		switch {
		case c >= '0' && c <= '9':
			hasNumeric = true
		case alphanumericCode(int(c)) != -1:
			hasAlphanumeric = true
		default:
			return ModeByte
		}
	}
	if hasAlphanumeric {
		return ModeAlphanumeric
	}
	if hasNumeric {
		return ModeNumeric
	}
	return ModeByte
}

// isOnlyShiftJISKanji reports whether content, transcoded to Shift_JIS,
// consists entirely of double-byte characters in the standard Kanji ranges
// 0x8140-0x9FFC or 0xE040-0xEBBF.
func isOnlyShiftJISKanji(content string) bool {
	if content == "" {
		return false
	}
	encoded, err := charset.EncodeShiftJIS(content)
	if err != nil || len(encoded)%2 != 0 {
		return false
	}
	for i := 0; i < len(encoded); i += 2 {
		c := (int(encoded[i]) << 8) | int(encoded[i+1])
		if !((c >= 0x8140 && c <= 0x9FFC) || (c >= 0xE040 && c <= 0xEBBF)) {
			return false
		}
	}
	return true
}

var errUnsupportedMode = fmt.Errorf("qrcode: unsupported mode: %w", errs.InternalInvariant)
