package charset

import "testing"

func TestEncodeStringDefaultIsLatin1(t *testing.T) {
	got, err := EncodeString("AZ09", "")
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	want := []byte{'A', 'Z', '0', '9'}
	if string(got) != string(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEncodeStringUTF8PassesThrough(t *testing.T) {
	got, err := EncodeString("café", "UTF-8")
	if err != nil {
		t.Fatalf("EncodeString: %v", err)
	}
	if string(got) != "café" {
		t.Errorf("got %q, want %q", got, "café")
	}
}

func TestEncodeStringRejectsUnsupportedCharset(t *testing.T) {
	_, err := EncodeString("hi", "not-a-charset")
	if err == nil {
		t.Fatal("expected an error for an unsupported character set")
	}
}

func TestEncodeShiftJISProducesEvenByteCount(t *testing.T) {
	got, err := EncodeShiftJIS("日本")
	if err != nil {
		t.Fatalf("EncodeShiftJIS: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("len(got) = %d, want 4", len(got))
	}
	wantHigh := []byte{0x93, 0x96}
	if got[0] != wantHigh[0] || got[2] != wantHigh[1] {
		t.Errorf("got %x, want lead bytes 0x93, 0x96", got)
	}
}

func TestGetECIByNameKnownEncoding(t *testing.T) {
	if eci := GetECIByName("UTF-8"); eci == nil || eci.Value != 26 {
		t.Errorf("GetECIByName(UTF-8) = %v, want value 26", eci)
	}
}
