// Package hhea decodes the "hhea" table: the handful of font-wide vertical
// metrics needed to lay out a line of horizontal text, plus the one field
// hmtx depends on to know how many long metric records it holds.
package hhea

import (
	"github.com/aslpavel/icon-viewer/sfnt/sfnterr"
	"github.com/aslpavel/icon-viewer/sfnt/sfntio"
)

// Info is the decoded content of the hhea table.
type Info struct {
	Ascent              int16
	Descent             int16
	LineGap             int16
	AdvanceWidthMax     uint16
	MinLeftSideBearing  int16
	MinRightSideBearing int16
	XMaxExtent          int16
	CaretSlopeRise      int16
	CaretSlopeRun       int16
	CaretOffset         int16
	NumOfLongHorMetrics uint16
}

// Read decodes an hhea table from buf.
func Read(buf []byte) (*Info, error) {
	r := sfntio.NewReader(buf)

	version, err := r.U32()
	if err != nil {
		return nil, err
	}
	if version != 0x00010000 {
		return nil, &sfnterr.UnsupportedFormatError{SubSystem: "sfnt/hhea", Feature: "table version"}
	}

	info := &Info{}
	if info.Ascent, err = r.I16(); err != nil {
		return nil, err
	}
	if info.Descent, err = r.I16(); err != nil {
		return nil, err
	}
	if info.LineGap, err = r.I16(); err != nil {
		return nil, err
	}
	if info.AdvanceWidthMax, err = r.U16(); err != nil {
		return nil, err
	}
	if info.MinLeftSideBearing, err = r.I16(); err != nil {
		return nil, err
	}
	if info.MinRightSideBearing, err = r.I16(); err != nil {
		return nil, err
	}
	if info.XMaxExtent, err = r.I16(); err != nil {
		return nil, err
	}
	if info.CaretSlopeRise, err = r.I16(); err != nil {
		return nil, err
	}
	if info.CaretSlopeRun, err = r.I16(); err != nil {
		return nil, err
	}
	if info.CaretOffset, err = r.I16(); err != nil {
		return nil, err
	}
	r.Advance(8) // reserved x4
	r.Advance(2) // metricDataFormat
	if info.NumOfLongHorMetrics, err = r.U16(); err != nil {
		return nil, err
	}

	return info, nil
}
