package maxp

import "testing"

func be32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func be16(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func TestReadMaxpV05(t *testing.T) {
	var buf []byte
	buf = append(buf, be32(0x00005000)...)
	buf = append(buf, be16(42)...)

	info, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if info.NumGlyphs != 42 {
		t.Errorf("NumGlyphs = %d, want 42", info.NumGlyphs)
	}
	if info.MaxPoints != 0 || info.MaxContours != 0 {
		t.Errorf("v0.5 resource fields = (%d,%d), want zero", info.MaxPoints, info.MaxContours)
	}
}

func TestReadMaxpV1(t *testing.T) {
	var buf []byte
	buf = append(buf, be32(0x00010000)...)
	buf = append(buf, be16(10)...) // numGlyphs
	for i := 0; i < 13; i++ {
		buf = append(buf, be16(uint16(i+1))...)
	}

	info, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if info.NumGlyphs != 10 {
		t.Errorf("NumGlyphs = %d, want 10", info.NumGlyphs)
	}
	if info.MaxPoints != 1 || info.MaxComponentDepth != 13 {
		t.Errorf("MaxPoints/MaxComponentDepth = %d/%d, want 1/13", info.MaxPoints, info.MaxComponentDepth)
	}
}

func TestReadMaxpUnsupportedVersion(t *testing.T) {
	var buf []byte
	buf = append(buf, be32(0x00020000)...)
	buf = append(buf, be16(0)...)
	if _, err := Read(buf); err == nil {
		t.Fatal("Read with unknown version err = nil, want error")
	}
}

func TestReadMaxpTruncated(t *testing.T) {
	if _, err := Read([]byte{0, 0, 0x50}); err == nil {
		t.Fatal("Read on truncated buffer err = nil, want error")
	}
}
