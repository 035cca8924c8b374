package oned

// codabarAlphabet lists every character Codabar can encode, in the same
// order as codabarCharacterEncodings: digits, six punctuation characters,
// then the four start/stop characters A-D.
const codabarAlphabet = "0123456789-$:/.+ABCD"

// codabarCharacterEncodings gives each character's 7-element bar/space
// pattern (4 bars, 3 spaces) as a 7-bit value, MSB first.
var codabarCharacterEncodings = [20]int{
	0x003, // 0
	0x006, // 1
	0x009, // 2
	0x060, // 3
	0x012, // 4
	0x042, // 5
	0x021, // 6
	0x024, // 7
	0x030, // 8
	0x048, // 9
	0x00c, // -
	0x018, // $
	0x045, // :
	0x051, // /
	0x054, // .
	0x015, // +
	0x01a, // A
	0x029, // B
	0x00b, // C
	0x00e, // D
}

// codabarStartEndEncoding lists the standard (non-alternate) start/stop
// characters, the last four entries of codabarAlphabet.
var codabarStartEndEncoding = [4]byte{'A', 'B', 'C', 'D'}

func codabarArrayContains(array []byte, key byte) bool {
	for _, c := range array {
		if c == key {
			return true
		}
	}
	return false
}
