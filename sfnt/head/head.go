// Package head decodes the "head" table, which carries the font's design
// grid size, bounding box and a handful of layout-affecting flags.
package head

import (
	"time"

	"github.com/aslpavel/icon-viewer/sfnt/sfnterr"
	"github.com/aslpavel/icon-viewer/sfnt/sfntio"
)

const (
	wantVersion = 0x00010000
	magicNumber = 0x5F0F3CF5
)

// Info is the decoded content of the head table.
type Info struct {
	FontRevision   Version
	Created        time.Time
	Modified       time.Time
	UnitsPerEm     uint16
	XMin, YMin     int16
	XMax, YMax     int16
	MacStyle       uint16
	LowestRecPPEM  uint16
	HasLongOffsets bool // loca uses 32-bit offsets when true, 16-bit halved offsets otherwise
}

// IsBold reports the bold bit of MacStyle.
func (info *Info) IsBold() bool { return info.MacStyle&(1<<0) != 0 }

// IsItalic reports the italic bit of MacStyle.
func (info *Info) IsItalic() bool { return info.MacStyle&(1<<1) != 0 }

// Version is a font revision number in 16.16 fixed point.
type Version float64

// Read decodes a head table from buf.
func Read(buf []byte) (*Info, error) {
	r := sfntio.NewReader(buf)

	version, err := r.U32()
	if err != nil {
		return nil, err
	}
	if version != wantVersion {
		return nil, &sfnterr.UnsupportedFormatError{SubSystem: "sfnt/head", Feature: "table version"}
	}

	fontRevision, err := r.Fixed()
	if err != nil {
		return nil, err
	}
	r.Advance(4) // checkSumAdjustment

	magic, err := r.U32()
	if err != nil {
		return nil, err
	}
	if magic != magicNumber {
		return nil, &sfnterr.MalformedError{SubSystem: "sfnt/head", Reason: "bad magic number"}
	}

	r.Advance(2) // flags

	unitsPerEm, err := r.U16()
	if err != nil {
		return nil, err
	}
	created, err := r.LongDate()
	if err != nil {
		return nil, err
	}
	modified, err := r.LongDate()
	if err != nil {
		return nil, err
	}
	xMin, err := r.I16()
	if err != nil {
		return nil, err
	}
	yMin, err := r.I16()
	if err != nil {
		return nil, err
	}
	xMax, err := r.I16()
	if err != nil {
		return nil, err
	}
	yMax, err := r.I16()
	if err != nil {
		return nil, err
	}
	macStyle, err := r.U16()
	if err != nil {
		return nil, err
	}
	lowestRecPPEM, err := r.U16()
	if err != nil {
		return nil, err
	}
	r.Advance(2) // fontDirectionHint

	indexToLocFormat, err := r.I16()
	if err != nil {
		return nil, err
	}

	return &Info{
		FontRevision:   Version(fontRevision),
		Created:        created,
		Modified:       modified,
		UnitsPerEm:     unitsPerEm,
		XMin:           xMin,
		YMin:           yMin,
		XMax:           xMax,
		YMax:           yMax,
		MacStyle:       macStyle,
		LowestRecPPEM:  lowestRecPPEM,
		HasLongOffsets: indexToLocFormat != 0,
	}, nil
}
