package hmtx

import "testing"

func be16(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func TestReadHmtxExplicitAndTrailing(t *testing.T) {
	// 2 long metrics, 3 total glyphs: glyph 2 only carries an LSB and
	// inherits glyph 1's advance width.
	var buf []byte
	buf = append(buf, be16(500)...)                 // glyph0 advance
	buf = append(buf, be16(uint16(int16(10)))...)   // glyph0 lsb
	buf = append(buf, be16(600)...)                 // glyph1 advance
	buf = append(buf, be16(uint16(int16(20)))...)   // glyph1 lsb
	buf = append(buf, be16(0x10000 - 5)...)         // glyph2 lsb only (-5)

	table, err := Read(buf, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if table.NumGlyphs() != 3 {
		t.Fatalf("NumGlyphs() = %d, want 3", table.NumGlyphs())
	}
	if m := table.Metric(0); m.AdvanceWidth != 500 || m.LeftSideBearing != 10 {
		t.Errorf("Metric(0) = %+v, want {500 10}", m)
	}
	if m := table.Metric(2); m.AdvanceWidth != 600 || m.LeftSideBearing != -5 {
		t.Errorf("Metric(2) = %+v, want {600 -5}", m)
	}
}

func TestReadHmtxOutOfRangeClamps(t *testing.T) {
	var buf []byte
	buf = append(buf, be16(500)...)
	buf = append(buf, be16(0)...)
	table, err := Read(buf, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m := table.Metric(50); m.AdvanceWidth != 500 {
		t.Errorf("Metric(50) = %+v, want advance 500 (clamped to last glyph)", m)
	}
	if m := table.Metric(-1); m.AdvanceWidth != 500 {
		t.Errorf("Metric(-1) = %+v, want advance 500 (clamped to first glyph)", m)
	}
}

func TestReadHmtxEmpty(t *testing.T) {
	table, err := Read(nil, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if m := table.Metric(0); m != (Metric{}) {
		t.Errorf("Metric(0) on empty table = %+v, want zero value", m)
	}
}

func TestReadHmtxTruncated(t *testing.T) {
	if _, err := Read([]byte{0x01}, 1, 1); err == nil {
		t.Fatal("Read on truncated buffer err = nil, want error")
	}
}
