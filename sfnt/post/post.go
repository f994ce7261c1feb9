// Package post decodes the "post" table. The header fields are decoded for
// versions 1.0, 2.0 and 3.0, and glyph names only from the version 2.0
// glyph-name array; version 2.5 and any other version are reported as
// unsupported rather than guessed at.
package post

import (
	"github.com/aslpavel/icon-viewer/sfnt/sfnterr"
	"github.com/aslpavel/icon-viewer/sfnt/sfntio"
)

// standardMacGlyphCount is the number of glyph name slots reserved for the
// standard Macintosh glyph set; a version 2.0 name index at or below this
// names one of those, not a custom name carried in this table.
const standardMacGlyphCount = 258

// Info is the decoded content of the post table.
type Info struct {
	ItalicAngle        float64
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       bool
	// GlyphNames maps glyph ID to its custom (non-standard) name, present
	// only for version 2.0 tables. A glyph named from the standard
	// Macintosh glyph set has an empty entry here.
	GlyphNames []string
}

// NameForGlyph returns the name recorded for gid, or "" if the table carries
// no names or gid is out of range.
func (info *Info) NameForGlyph(gid int) string {
	if gid < 0 || gid >= len(info.GlyphNames) {
		return ""
	}
	return info.GlyphNames[gid]
}

// Read decodes a post table from buf.
func Read(buf []byte) (*Info, error) {
	r := sfntio.NewReader(buf)

	version, err := r.U32()
	if err != nil {
		return nil, err
	}

	italicAngle, err := r.Fixed()
	if err != nil {
		return nil, err
	}
	underlinePosition, err := r.I16()
	if err != nil {
		return nil, err
	}
	underlineThickness, err := r.I16()
	if err != nil {
		return nil, err
	}
	isFixedPitch, err := r.U32()
	if err != nil {
		return nil, err
	}
	r.Advance(16) // minMemType42, maxMemType42, minMemType1, maxMemType1

	info := &Info{
		ItalicAngle:        italicAngle,
		UnderlinePosition:  underlinePosition,
		UnderlineThickness: underlineThickness,
		IsFixedPitch:       isFixedPitch != 0,
	}

	switch version {
	case 0x00010000, 0x00030000:
		// version 1.0 implies the standard Macintosh glyph set verbatim;
		// version 3.0 carries no names at all. Neither needs more bytes.
		return info, nil
	case 0x00020000:
		if err := readV2Names(r, info); err != nil {
			return nil, err
		}
		return info, nil
	default:
		return nil, &sfnterr.UnsupportedFormatError{SubSystem: "sfnt/post", Feature: "table version"}
	}
}

func readV2Names(r *sfntio.Reader, info *Info) error {
	numGlyphs, err := r.U16()
	if err != nil {
		return err
	}
	indices := make([]uint16, numGlyphs)
	for i := range indices {
		idx, err := r.U16()
		if err != nil {
			return err
		}
		indices[i] = idx
	}

	var pascalNames []string
	for r.Tell() < r.Len() {
		n, err := r.U8()
		if err != nil {
			return err
		}
		s, err := r.String(int(n))
		if err != nil {
			return err
		}
		pascalNames = append(pascalNames, s)
	}

	info.GlyphNames = make([]string, numGlyphs)
	for gid, idx := range indices {
		// Indices at or below 258 name a standard Macintosh glyph; this
		// entity records non-standard names only, so those are left unset.
		if int(idx) <= standardMacGlyphCount {
			continue
		}
		if pi := int(idx) - standardMacGlyphCount; pi < len(pascalNames) {
			info.GlyphNames[gid] = pascalNames[pi]
		}
	}
	return nil
}
