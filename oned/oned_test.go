package oned

import (
	"errors"
	"strings"
	"testing"

	barcode "github.com/craig-b/ZXing.Encoders"
	"github.com/craig-b/ZXing.Encoders/errs"
)

func boolsToBits(code []bool) string {
	var b strings.Builder
	for _, v := range code {
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// coreBits trims the quiet-zone zeros a fixture string carries on either
// side, leaving only the symbol itself (which always starts and ends on a
// bar for every format exercised here).
func coreBits(s string) string {
	first := strings.IndexByte(s, '1')
	last := strings.LastIndexByte(s, '1')
	return s[first : last+1]
}

// --- EAN-13 ---

func TestEAN13EncodeContentsMatchesFixture(t *testing.T) {
	want := coreBits("00001010001011010011101100110010011011110100111010101011001101101100100001010111001001110100010010100000")
	writer := NewEAN13Writer()
	for _, contents := range []string{"5901234123457", "590123412345"} {
		t.Run(contents, func(t *testing.T) {
			code, err := writer.EncodeContents(contents)
			if err != nil {
				t.Fatalf("EncodeContents: %v", err)
			}
			if got := boolsToBits(code); got != want {
				t.Errorf("got  %s\nwant %s", got, want)
			}
		})
	}
}

// --- EAN-8 ---

func TestEAN8EncodeContentsMatchesFixture(t *testing.T) {
	want := coreBits("0000001010001011010111101111010110111010101001110111001010001001011100101000000")
	writer := NewEAN8Writer()
	for _, contents := range []string{"96385074", "9638507"} {
		t.Run(contents, func(t *testing.T) {
			code, err := writer.EncodeContents(contents)
			if err != nil {
				t.Fatalf("EncodeContents: %v", err)
			}
			if got := boolsToBits(code); got != want {
				t.Errorf("got  %s\nwant %s", got, want)
			}
		})
	}
}

// --- UPC-E ---

func TestUPCEEncodeContentsMatchesFixture(t *testing.T) {
	tests := []struct {
		contents string
		want     string
	}{
		{"05096893", "0000000000010101110010100111000101101011110110111001011101010100000000000"},
		{"12345670", "0000000000010100100110111101010001101110010000101001000101010100000000000"},
	}
	writer := NewUPCEWriter()
	for _, tc := range tests {
		t.Run(tc.contents, func(t *testing.T) {
			code, err := writer.EncodeContents(tc.contents)
			if err != nil {
				t.Fatalf("EncodeContents: %v", err)
			}
			want := coreBits(tc.want)
			if got := boolsToBits(code); got != want {
				t.Errorf("got  %s\nwant %s", got, want)
			}
		})
	}
}

// --- UPC-A ---

func TestUPCAWriterDelegatesToEAN13(t *testing.T) {
	upca := NewUPCAWriter()
	ean13 := NewEAN13Writer()

	got, err := upca.Encode("01234567890", barcode.FormatUPCA, 100, 50, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want, err := ean13.Encode("001234567890", barcode.FormatEAN13, 100, 50, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("dimensions differ: got %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
}

// --- CODABAR ---

func TestCodabarEncodeMatchesFixture(t *testing.T) {
	want := coreBits("00000" +
		"1001001011" + "0110101001" + "0101011001" + "0110101001" +
		"0101001101" + "0110010101" + "01101101011" + "01001001011" +
		"00000")
	writer := NewCodabarWriter()
	code, err := writer.encode("B515-3/B")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := boolsToBits(code); got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
}

func TestCodabarAlternateGuardsMatchStandardOnes(t *testing.T) {
	writer := NewCodabarWriter()
	alt, err := writer.encode("T123T")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	std, err := writer.encode("A123A")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if boolsToBits(alt) != boolsToBits(std) {
		t.Errorf("T123T and A123A encode differently")
	}
}

func TestCodabarAlternatesColorSevenTimesPerCharacter(t *testing.T) {
	writer := NewCodabarWriter()
	code, err := writer.encode("A1B")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	transitions := 0
	for i := 1; i < len(code); i++ {
		if code[i] != code[i-1] {
			transitions++
		}
	}
	// Each character is 7 alternating elements that begin and end with a
	// bar, and characters are joined by one narrow space: 3*7 + 2 = 23 runs,
	// so 22 color changes.
	if transitions != 22 {
		t.Fatalf("color transitions = %d, want 22", transitions)
	}
}

// --- CODE 39 ---

func TestCode39EncodeRoundTripsThroughAppendPattern(t *testing.T) {
	writer := NewCode39Writer()
	code, err := writer.encode("HELLO")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !code[0] {
		t.Error("expected Code 39 output to begin with a bar")
	}
	if !code[len(code)-1] {
		t.Error("expected Code 39 output to end with a bar")
	}
}

func TestCode39RejectsOverlongContent(t *testing.T) {
	long := strings.Repeat("A", 81)
	_, err := NewCode39Writer().encode(long)
	if !errors.Is(err, errs.BadInput) {
		t.Errorf("error = %v, want ErrBadInput", err)
	}
}

func TestCode39ExtendedModeHandlesLowercase(t *testing.T) {
	code, err := NewCode39Writer().encode("abc")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(code) == 0 {
		t.Fatal("expected non-empty extended-mode encoding")
	}
}

// --- CODE 93 ---

func TestCode93EncodeProducesExpectedModuleCount(t *testing.T) {
	contents := "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	code, err := NewCode93Writer().encode(contents)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// length + start/stop + 2 checksum chars, each 9 modules, plus one
	// termination bar.
	want := (len(contents)+2+2)*9 + 1
	if len(code) != want {
		t.Errorf("module count = %d, want %d", len(code), want)
	}
	if !code[len(code)-1] {
		t.Error("expected Code 93 output to end with the termination bar")
	}
}

// --- CODE 128 ---

func TestCode128FNC3PrefixProducesExpectedSegments(t *testing.T) {
	code, err := encodeCode128Fast("ó123", -1)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	segment := func(pattern []int) string {
		buf := make([]bool, 0, 16)
		target := make([]bool, 20)
		pos := AppendPattern(target, 0, pattern, true)
		buf = append(buf, target[:pos]...)
		return boolsToBits(buf)
	}

	startB := segment(Code128Patterns[code128StartB])
	fnc3 := segment(Code128Patterns[code128FNC3])
	stop := segment(Code128Patterns[code128Stop])

	got := boolsToBits(code)
	if !strings.HasPrefix(got, startB+fnc3) {
		t.Errorf("expected encoding to start with startB+FNC3, got %s", got)
	}
	if !strings.HasSuffix(got, stop) {
		t.Errorf("expected encoding to end with the stop pattern, got %s", got)
	}
}

func TestCode128RejectsNonASCII(t *testing.T) {
	_, err := NewCode128Writer().Encode("café", barcode.FormatCode128, 100, 50, nil)
	if !errors.Is(err, errs.BadInput) {
		t.Errorf("error = %v, want ErrBadInput", err)
	}
}

func TestCode128ForcedCodeSetHonored(t *testing.T) {
	opts := &barcode.EncodeOptions{ForceCodeSet: "C"}
	_, err := NewCode128Writer().Encode("1234", barcode.FormatCode128, 100, 50, opts)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, err = NewCode128Writer().Encode("ABCD", barcode.FormatCode128, 100, 50, opts)
	if !errors.Is(err, errs.BadInput) {
		t.Errorf("error = %v, want ErrBadInput for letters forced into code set C", err)
	}
}

func TestCode128GS1FormatPrependsFNC1(t *testing.T) {
	plain, err := encodeCode128Fast("1234", -1)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	withFNC1, err := encodeCode128Fast(string(Code128EscapeFNC1)+"1234", -1)
	if err != nil {
		t.Fatalf("encode with FNC1 prefix: %v", err)
	}
	if len(withFNC1) <= len(plain) {
		t.Errorf("expected FNC1-prefixed encoding to be longer than %d modules, got %d", len(plain), len(withFNC1))
	}

	result, err := NewCode128Writer().Encode("1234", barcode.FormatCode128, 1, 1, &barcode.EncodeOptions{GS1Format: true})
	if err != nil {
		t.Fatalf("Writer.Encode with GS1Format: %v", err)
	}
	if want := len(withFNC1) + 2*defaultOneDMargin; result.Width() != want {
		t.Errorf("Writer.Encode(GS1Format) width = %d, want %d", result.Width(), want)
	}
}

// --- ITF ---

func TestITFRejectsOddLength(t *testing.T) {
	_, err := NewITFWriter().Encode("12345", barcode.FormatITF, 200, 50, nil)
	if !errors.Is(err, errs.BadInput) {
		t.Errorf("error = %v, want ErrBadInput", err)
	}
}

func TestITFRejectsNonDigits(t *testing.T) {
	_, err := NewITFWriter().Encode("12a4", barcode.FormatITF, 200, 50, nil)
	if !errors.Is(err, errs.BadInput) {
		t.Errorf("error = %v, want ErrBadInput", err)
	}
}

func TestITFBeginsAndEndsWithABar(t *testing.T) {
	writer := NewITFWriter()
	code, err := writer.encode("1234567890")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !code[0] || !code[len(code)-1] {
		t.Error("expected ITF output to begin and end with a bar")
	}
}

// --- MSI ---

func TestMSIEncodeHasNoChecksumOverhead(t *testing.T) {
	writer := NewMSIWriter()
	code, err := writer.encode("1234")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// start (2 modules) + 4 digits * 4 bits * 3 modules + end (4 modules)
	want := 2 + 4*4*3 + 4
	if len(code) != want {
		t.Errorf("module count = %d, want %d", len(code), want)
	}
}

func TestMSIRejectsNonDigits(t *testing.T) {
	_, err := NewMSIWriter().Encode("12a4", barcode.FormatMSI, 100, 50, nil)
	if !errors.Is(err, errs.BadInput) {
		t.Errorf("error = %v, want ErrBadInput", err)
	}
}

// --- Plessey ---

func TestPlesseyAppendsCRCCheckCharacter(t *testing.T) {
	writer := NewPlesseyWriter()
	code, err := writer.encode("1234")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	// start (6 modules) + (4 digits * 4 bits + CRC bits) * 3 modules + end (7 modules)
	want := 6 + (4*4+plesseyCRCBits)*3 + 7
	if len(code) != want {
		t.Errorf("module count = %d, want %d", len(code), want)
	}
}

func TestPlesseyCRCIsDeterministic(t *testing.T) {
	a := plesseyCRC([]int{1, 0, 1, 1, 0, 0, 1, 0})
	b := plesseyCRC([]int{1, 0, 1, 1, 0, 0, 1, 0})
	if a != b {
		t.Errorf("CRC not deterministic: %d != %d", a, b)
	}
	if plesseyCRC([]int{1, 0, 1, 1, 0, 0, 1, 0}) == plesseyCRC([]int{0, 0, 1, 1, 0, 0, 1, 0}) {
		t.Error("expected differing bit streams to produce differing CRCs")
	}
}

func TestPlesseyRejectsNonDigits(t *testing.T) {
	_, err := NewPlesseyWriter().Encode("12a4", barcode.FormatPlessey, 100, 50, nil)
	if !errors.Is(err, errs.BadInput) {
		t.Errorf("error = %v, want ErrBadInput", err)
	}
}

// --- UPC/EAN checksum ---

func TestUPCEANChecksum(t *testing.T) {
	tests := []struct {
		input string
		check int
	}{
		{"590123412345", 7},
		{"1234567890", 5},
	}
	for _, tc := range tests {
		got := GetStandardUPCEANChecksum(tc.input)
		if got != tc.check {
			t.Errorf("GetStandardUPCEANChecksum(%q) = %d, want %d", tc.input, got, tc.check)
		}
	}
}

func TestCheckStandardUPCEANChecksum(t *testing.T) {
	if !CheckStandardUPCEANChecksum("5901234123457") {
		t.Error("expected checksum to pass for 5901234123457")
	}
	if CheckStandardUPCEANChecksum("5901234123456") {
		t.Error("expected checksum to fail for 5901234123456")
	}
}

func TestConvertUPCEtoUPCA(t *testing.T) {
	tests := []struct {
		upce string
		upca string
	}{
		{"01234565", "012345000065"},
		{"01200003", "012000000003"},
	}
	for _, tc := range tests {
		got := ConvertUPCEtoUPCA(tc.upce)
		if got != tc.upca {
			t.Errorf("ConvertUPCEtoUPCA(%q) = %q, want %q", tc.upce, got, tc.upca)
		}
	}
}

// --- Writer format validation ---

func TestWriterFormatValidation(t *testing.T) {
	_, err := NewCode39Writer().Encode("TEST", barcode.FormatCode128, 100, 50, nil)
	if !errors.Is(err, errs.BadInput) {
		t.Error("expected ErrBadInput for wrong format on Code39Writer")
	}

	_, err = NewCode128Writer().Encode("TEST", barcode.FormatCode39, 100, 50, nil)
	if !errors.Is(err, errs.BadInput) {
		t.Error("expected ErrBadInput for wrong format on Code128Writer")
	}

	_, err = NewEAN13Writer().Encode("5901234123457", barcode.FormatCode39, 100, 50, nil)
	if !errors.Is(err, errs.BadInput) {
		t.Error("expected ErrBadInput for wrong format on EAN13Writer")
	}

	_, err = NewEAN8Writer().Encode("96385074", barcode.FormatCode39, 100, 50, nil)
	if !errors.Is(err, errs.BadInput) {
		t.Error("expected ErrBadInput for wrong format on EAN8Writer")
	}
}

// --- Non-digit rejection across numeric-only symbologies ---

func TestNonDigitInputRejectedAcrossNumericSymbologies(t *testing.T) {
	if _, err := NewEAN13Writer().EncodeContents("59012341234X"); !errors.Is(err, errs.BadInput) {
		t.Errorf("EAN-13: error = %v, want ErrBadInput", err)
	}
	if _, err := NewEAN8Writer().EncodeContents("963850X"); !errors.Is(err, errs.BadInput) {
		t.Errorf("EAN-8: error = %v, want ErrBadInput", err)
	}
	if _, err := NewITFWriter().Encode("12x4", barcode.FormatITF, 100, 50, nil); !errors.Is(err, errs.BadInput) {
		t.Errorf("ITF: error = %v, want ErrBadInput", err)
	}
	if _, err := NewMSIWriter().Encode("12x4", barcode.FormatMSI, 100, 50, nil); !errors.Is(err, errs.BadInput) {
		t.Errorf("MSI: error = %v, want ErrBadInput", err)
	}
}

// --- RenderOneDCode quiet zone ---

func TestRenderOneDCodeAppliesQuietZone(t *testing.T) {
	code := []bool{true, false, true}
	matrix, err := RenderOneDCode(code, 0, 0)
	if err != nil {
		t.Fatalf("RenderOneDCode: %v", err)
	}
	if matrix.Width() < len(code)+2*defaultOneDMargin {
		t.Errorf("width %d too small for quiet zone", matrix.Width())
	}
}
