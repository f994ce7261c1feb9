package head

import "testing"

func be32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func be16(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func validHeadBytes(indexToLocFormat int16) []byte {
	var buf []byte
	buf = append(buf, be32(wantVersion)...)
	buf = append(buf, be32(0x00010000)...) // fontRevision = 1.0
	buf = append(buf, be32(0)...)          // checkSumAdjustment
	buf = append(buf, be32(magicNumber)...)
	buf = append(buf, be16(0x0003)...)        // flags (bold+italic bits irrelevant here)
	buf = append(buf, be16(1000)...)          // unitsPerEm
	buf = append(buf, make([]byte, 8)...)     // created
	buf = append(buf, make([]byte, 8)...)     // modified
	buf = append(buf, be16(0x10000 - 10)...)       // xMin = -10
	buf = append(buf, be16(0x10000 - 20)...)       // yMin = -20
	buf = append(buf, be16(uint16(int16(800)))...) // xMax
	buf = append(buf, be16(uint16(int16(900)))...) // yMax
	buf = append(buf, be16(0x0001)...)             // macStyle: bold
	buf = append(buf, be16(9)...)                   // lowestRecPPEM
	buf = append(buf, be16(0)...)                   // fontDirectionHint
	buf = append(buf, be16(uint16(indexToLocFormat))...)
	buf = append(buf, be16(0)...) // glyphDataFormat
	return buf
}

func TestReadHead(t *testing.T) {
	info, err := Read(validHeadBytes(1))
	if err != nil {
		t.Fatal(err)
	}
	if info.UnitsPerEm != 1000 {
		t.Errorf("UnitsPerEm = %d, want 1000", info.UnitsPerEm)
	}
	if info.XMin != -10 || info.YMin != -20 || info.XMax != 800 || info.YMax != 900 {
		t.Errorf("bbox = (%d,%d,%d,%d), want (-10,-20,800,900)", info.XMin, info.YMin, info.XMax, info.YMax)
	}
	if !info.IsBold() {
		t.Error("IsBold() = false, want true")
	}
	if info.IsItalic() {
		t.Error("IsItalic() = true, want false")
	}
	if !info.HasLongOffsets {
		t.Error("HasLongOffsets = false, want true")
	}
}

func TestReadHeadShortOffsets(t *testing.T) {
	info, err := Read(validHeadBytes(0))
	if err != nil {
		t.Fatal(err)
	}
	if info.HasLongOffsets {
		t.Error("HasLongOffsets = true, want false")
	}
}

func TestReadHeadBadMagic(t *testing.T) {
	buf := validHeadBytes(0)
	// Magic number sits right after version (4 bytes) + fontRevision (4) +
	// checkSumAdjustment (4).
	copy(buf[12:16], be32(0))
	if _, err := Read(buf); err == nil {
		t.Fatal("Read with bad magic err = nil, want error")
	}
}

func TestReadHeadBadVersion(t *testing.T) {
	buf := validHeadBytes(0)
	copy(buf[0:4], be32(0x00020000))
	if _, err := Read(buf); err == nil {
		t.Fatal("Read with bad version err = nil, want error")
	}
}

func TestReadHeadTruncated(t *testing.T) {
	buf := validHeadBytes(0)
	if _, err := Read(buf[:20]); err == nil {
		t.Fatal("Read on truncated buffer err = nil, want error")
	}
}
