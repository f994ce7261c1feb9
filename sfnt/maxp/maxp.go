// Package maxp decodes the "maxp" table, which records the glyph count and,
// for TrueType outlines, the resource limits a renderer must budget for.
package maxp

import (
	"github.com/aslpavel/icon-viewer/sfnt/sfnterr"
	"github.com/aslpavel/icon-viewer/sfnt/sfntio"
)

// Info is the decoded content of the maxp table. The fields past NumGlyphs
// are zero for version 0.5 (CFF-flavored) tables.
type Info struct {
	NumGlyphs             uint16
	MaxPoints             uint16
	MaxContours           uint16
	MaxCompositePoints    uint16
	MaxCompositeContours  uint16
	MaxZones              uint16
	MaxTwilightPoints     uint16
	MaxStorage            uint16
	MaxFunctionDefs       uint16
	MaxInstructionDefs    uint16
	MaxStackElements      uint16
	MaxSizeOfInstructions uint16
	MaxComponentElements  uint16
	MaxComponentDepth     uint16
}

// Read decodes a maxp table from buf.
func Read(buf []byte) (*Info, error) {
	r := sfntio.NewReader(buf)

	version, err := r.U32()
	if err != nil {
		return nil, err
	}
	numGlyphs, err := r.U16()
	if err != nil {
		return nil, err
	}
	info := &Info{NumGlyphs: numGlyphs}

	switch version {
	case 0x00005000:
		return info, nil
	case 0x00010000:
		fields := []*uint16{
			&info.MaxPoints, &info.MaxContours,
			&info.MaxCompositePoints, &info.MaxCompositeContours,
			&info.MaxZones, &info.MaxTwilightPoints,
			&info.MaxStorage, &info.MaxFunctionDefs, &info.MaxInstructionDefs,
			&info.MaxStackElements, &info.MaxSizeOfInstructions,
			&info.MaxComponentElements, &info.MaxComponentDepth,
		}
		for _, f := range fields {
			v, err := r.U16()
			if err != nil {
				return nil, err
			}
			*f = v
		}
		return info, nil
	default:
		return nil, &sfnterr.UnsupportedFormatError{SubSystem: "sfnt/maxp", Feature: "table version"}
	}
}
