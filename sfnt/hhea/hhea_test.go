package hhea

import "testing"

func be32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func be16(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func validHheaBytes(numOfLongHorMetrics uint16) []byte {
	var buf []byte
	buf = append(buf, be32(0x00010000)...) // version
	buf = append(buf, be16(uint16(int16(900)))...)  // ascent
	buf = append(buf, be16(0x10000 - 200)...)       // descent = -200
	buf = append(buf, be16(0)...)                   // lineGap
	buf = append(buf, be16(1200)...)                // advanceWidthMax
	buf = append(buf, be16(0x10000 - 50)...)        // minLeftSideBearing = -50
	buf = append(buf, be16(0x10000 - 60)...)        // minRightSideBearing = -60
	buf = append(buf, be16(1100)...)                // xMaxExtent
	buf = append(buf, be16(1)...)                   // caretSlopeRise
	buf = append(buf, be16(0)...)                   // caretSlopeRun
	buf = append(buf, be16(0)...)                   // caretOffset
	buf = append(buf, make([]byte, 8)...)           // reserved x4
	buf = append(buf, be16(0)...)                   // metricDataFormat
	buf = append(buf, be16(numOfLongHorMetrics)...)
	return buf
}

func TestReadHhea(t *testing.T) {
	info, err := Read(validHheaBytes(3))
	if err != nil {
		t.Fatal(err)
	}
	if info.Ascent != 900 || info.Descent != -200 {
		t.Errorf("Ascent/Descent = %d/%d, want 900/-200", info.Ascent, info.Descent)
	}
	if info.NumOfLongHorMetrics != 3 {
		t.Errorf("NumOfLongHorMetrics = %d, want 3", info.NumOfLongHorMetrics)
	}
}

func TestReadHheaBadVersion(t *testing.T) {
	buf := validHheaBytes(1)
	copy(buf[0:4], be32(0x00020000))
	if _, err := Read(buf); err == nil {
		t.Fatal("Read with bad version err = nil, want error")
	}
}

func TestReadHheaTruncated(t *testing.T) {
	buf := validHheaBytes(1)
	if _, err := Read(buf[:10]); err == nil {
		t.Fatal("Read on truncated buffer err = nil, want error")
	}
}
