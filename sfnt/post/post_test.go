package post

import "testing"

func be32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func be16(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func headerBytes(version uint32) []byte {
	var buf []byte
	buf = append(buf, be32(version)...)
	buf = append(buf, be32(0)...)                 // italicAngle = 0.0
	buf = append(buf, be16(0x10000 - 100)...)       // underlinePosition = -100
	buf = append(buf, be16(50)...)                  // underlineThickness
	buf = append(buf, be32(1)...)                   // isFixedPitch
	buf = append(buf, make([]byte, 16)...)          // minMemType42 etc.
	return buf
}

func TestReadPostV1ImpliesMacNames(t *testing.T) {
	info, err := Read(headerBytes(0x00010000))
	if err != nil {
		t.Fatal(err)
	}
	if info.GlyphNames != nil {
		t.Errorf("GlyphNames = %v, want nil (v1.0 implies the standard set, not decoded explicitly)", info.GlyphNames)
	}
	if !info.IsFixedPitch {
		t.Error("IsFixedPitch = false, want true")
	}
	if info.UnderlinePosition != -100 || info.UnderlineThickness != 50 {
		t.Errorf("underline = (%d,%d), want (-100,50)", info.UnderlinePosition, info.UnderlineThickness)
	}
}

func TestReadPostV3NoNames(t *testing.T) {
	info, err := Read(headerBytes(0x00030000))
	if err != nil {
		t.Fatal(err)
	}
	if info.GlyphNames != nil {
		t.Errorf("GlyphNames = %v, want nil", info.GlyphNames)
	}
}

func TestReadPostV2Names(t *testing.T) {
	buf := headerBytes(0x00020000)
	buf = append(buf, be16(4)...) // numGlyphs
	buf = append(buf, be16(0)...) // glyph0 -> standard set, not recorded here
	buf = append(buf, be16(36)...) // glyph1 -> standard set, not recorded here
	buf = append(buf, be16(258)...) // glyph2 -> still within the standard range
	buf = append(buf, be16(259)...) // glyph3 -> first custom name
	// Pascal strings; index 0 is unreachable since nameIndex must exceed 258.
	for _, s := range []string{"unused", "custom"} {
		buf = append(buf, byte(len(s)))
		buf = append(buf, []byte(s)...)
	}

	info, err := Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(info.GlyphNames) != 4 {
		t.Fatalf("len(GlyphNames) = %d, want 4", len(info.GlyphNames))
	}
	if info.NameForGlyph(0) != "" {
		t.Errorf("NameForGlyph(0) = %q, want empty (standard glyph name, not a custom one)", info.NameForGlyph(0))
	}
	if info.NameForGlyph(1) != "" {
		t.Errorf("NameForGlyph(1) = %q, want empty (standard glyph name, not a custom one)", info.NameForGlyph(1))
	}
	if info.NameForGlyph(2) != "" {
		t.Errorf("NameForGlyph(2) = %q, want empty (index 258 is still within the standard range)", info.NameForGlyph(2))
	}
	if info.NameForGlyph(3) != "custom" {
		t.Errorf("NameForGlyph(3) = %q, want custom", info.NameForGlyph(3))
	}
	if info.NameForGlyph(99) != "" {
		t.Errorf("NameForGlyph(99) = %q, want empty for out-of-range gid", info.NameForGlyph(99))
	}
}

func TestReadPostUnsupportedVersion(t *testing.T) {
	if _, err := Read(headerBytes(0x00025000)); err == nil {
		t.Fatal("Read with v2.5 err = nil, want UnsupportedFormatError")
	}
}

func TestReadPostTruncated(t *testing.T) {
	if _, err := Read(headerBytes(0x00010000)[:10]); err == nil {
		t.Fatal("Read on truncated buffer err = nil, want error")
	}
}
