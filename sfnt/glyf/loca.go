package glyf

import (
	"github.com/aslpavel/icon-viewer/sfnt/sfnterr"
	"github.com/aslpavel/icon-viewer/sfnt/sfntio"
)

// ReadLoca decodes the "loca" table into byte offsets into the "glyf" table.
// The returned slice has numGlyphs+1 entries; glyph gid's data spans
// offsets[gid]:offsets[gid+1].
func ReadLoca(buf []byte, longOffsets bool, numGlyphs int) ([]uint32, error) {
	r := sfntio.NewReader(buf)
	n := numGlyphs + 1
	offs := make([]uint32, n)

	var prev uint32
	for i := 0; i < n; i++ {
		var pos uint32
		if longOffsets {
			v, err := r.U32()
			if err != nil {
				return nil, err
			}
			pos = v
		} else {
			v, err := r.U16()
			if err != nil {
				return nil, err
			}
			pos = uint32(v) * 2
		}
		if pos < prev {
			return nil, &sfnterr.MalformedError{SubSystem: "sfnt/glyf", Reason: "loca offsets not monotonic"}
		}
		offs[i] = pos
		prev = pos
	}
	return offs, nil
}
