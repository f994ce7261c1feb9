// Package icon projects a single glyph of an SFNT font into a normalized
// 100x100 SVG document, the shape consumers of an icon font actually want:
// one path, centered and scaled to a fixed viewport, independent of the
// font's own design grid.
package icon

import (
	"fmt"
	"strings"

	"github.com/aslpavel/icon-viewer/geom"
	"github.com/aslpavel/icon-viewer/outline"
	"github.com/aslpavel/icon-viewer/sfnt"
)

// viewport is the side length, in SVG user units, of the square every icon
// is normalized into.
const viewport = 100.0

// Icon is a single glyph of a Font, addressed by the Unicode code point it
// maps to.
type Icon struct {
	font *sfnt.Font
	gid  int
}

// New resolves r against font's cmap and returns the Icon for the glyph it
// maps to. A code point with no mapping resolves to glyph 0 (.notdef),
// matching how a renderer would fall back.
func New(font *sfnt.Font, r rune) (*Icon, error) {
	gid, err := font.GlyphIndex(r)
	if err != nil {
		return nil, err
	}
	return &Icon{font: font, gid: gid}, nil
}

// NewFromGlyphID returns the Icon for glyph gid directly, bypassing cmap
// lookup.
func NewFromGlyphID(font *sfnt.Font, gid int) *Icon {
	return &Icon{font: font, gid: gid}
}

// PathOptions configures the precision of the emitted path data; the
// transform that normalizes the glyph into the viewport is always computed
// fresh from the glyph's own bounding box and is not configurable.
type PathOptions struct {
	Relative  bool
	Precision int
}

// DefaultPathOptions matches the precision used by ToSVGString.
var DefaultPathOptions = PathOptions{Relative: false, Precision: 2}

// normalizeTransform returns the transform that maps box, the glyph's own
// bounding box in font design units, into a centered square of side
// viewport, flipping Y since font space is Y-up and SVG space is Y-down.
func normalizeTransform(box outline.BBox) geom.Transform {
	width, height := box.Width(), box.Height()
	scale := viewport / width
	if height > width {
		scale = viewport / height
	}
	cx := (box.Min.X + box.Max.X) / 2
	cy := (box.Min.Y + box.Max.Y) / 2
	return geom.Identity.
		Translate(viewport/2, viewport/2).
		Scale(scale, -scale).
		Translate(-cx, -cy)
}

// Path returns the glyph's outline as SVG path data, normalized into the
// viewport, along with whether the glyph has any outline at all.
func (icon *Icon) Path(opts PathOptions) (path string, ok bool, err error) {
	box, ok, err := icon.font.GlyphBBox(icon.gid)
	if err != nil {
		return "", false, err
	}
	if !ok || box.Width() <= 0 || box.Height() <= 0 {
		return "", false, nil
	}

	xf := normalizeTransform(box)
	builder := outline.NewSVGPathBuilder(outline.SVGPathOptions{
		Relative:  opts.Relative,
		Precision: opts.Precision,
		Transform: &xf,
	})
	if err := icon.font.GlyphOutline(icon.gid, builder); err != nil {
		return "", false, err
	}
	return builder.String(), true, nil
}

// ToSVGString renders the icon as a complete, self-contained SVG document
// with a 100x100 viewBox. A glyph with no outline (e.g. the space glyph,
// or a code point with no cmap entry that falls back to .notdef when
// .notdef is itself empty) renders to "".
func (icon *Icon) ToSVGString() (string, error) {
	path, ok, err := icon.Path(DefaultPathOptions)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g">`, viewport, viewport)
	fmt.Fprintf(&b, `<path d="%s"/>`, path)
	b.WriteString(`</svg>`)
	return b.String(), nil
}
