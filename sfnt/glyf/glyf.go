// Package glyf decodes the "glyf" table: per-glyph outline data, as either
// a simple glyph (its own contours) or a composite glyph (a set of other
// glyphs placed through affine transforms). It also drives the outline
// state machine that turns a simple glyph's point stream into move/line/
// quad/close calls on an outline.Sink, and the recursive composite walk
// that does the same by delegating to component glyphs.
package glyf

import (
	"github.com/aslpavel/icon-viewer/geom"
	"github.com/aslpavel/icon-viewer/outline"
	"github.com/aslpavel/icon-viewer/sfnt/sfnterr"
	"github.com/aslpavel/icon-viewer/sfnt/sfntio"
)

// Point is one point of a simple glyph's outline, in font design units.
type Point struct {
	X, Y    float64
	OnCurve bool
}

// Contour is one closed loop of a simple glyph.
type Contour []Point

// SimpleGlyph holds the decoded contours of a non-composite glyph.
type SimpleGlyph struct {
	Contours []Contour
}

// Component is one element of a composite glyph: another glyph placed
// through an affine transform.
type Component struct {
	GlyphIndex uint16
	Transform  geom.Transform
}

// CompositeGlyph holds the decoded components of a composite glyph.
type CompositeGlyph struct {
	Components []Component
}

// Kind distinguishes the three shapes a decoded glyph can take.
type Kind int

const (
	KindEmpty Kind = iota
	KindSimple
	KindComposite
)

// Glyph is a decoded entry of the glyf table.
type Glyph struct {
	Kind                   Kind
	XMin, YMin, XMax, YMax int16
	Simple                 *SimpleGlyph
	Composite              *CompositeGlyph
}

// Decode parses the glyph description in buf. An empty buf (as loca
// produces for glyphs with no outline, e.g. the space glyph) decodes to a
// KindEmpty glyph.
func Decode(buf []byte) (*Glyph, error) {
	if len(buf) == 0 {
		return &Glyph{Kind: KindEmpty}, nil
	}

	r := sfntio.NewReader(buf)
	numberOfContours, err := r.I16()
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

	g := &Glyph{XMin: xMin, YMin: yMin, XMax: xMax, YMax: yMax}

	if numberOfContours >= 0 {
		simple, err := decodeSimple(r, int(numberOfContours))
		if err != nil {
			return nil, err
		}
		g.Kind = KindSimple
		g.Simple = simple
	} else {
		composite, err := decodeComposite(r)
		if err != nil {
			return nil, err
		}
		g.Kind = KindComposite
		g.Composite = composite
	}
	return g, nil
}

const (
	flagOnCurve      = 0x01
	flagXShort       = 0x02
	flagYShort       = 0x04
	flagRepeat       = 0x08
	flagXSameOrPos   = 0x10
	flagYSameOrPos   = 0x20
)

func decodeSimple(r *sfntio.Reader, numContours int) (*SimpleGlyph, error) {
	endPts := make([]uint16, numContours)
	for i := range endPts {
		v, err := r.U16()
		if err != nil {
			return nil, err
		}
		endPts[i] = v
	}

	numPoints := 0
	if numContours > 0 {
		numPoints = int(endPts[numContours-1]) + 1
	}

	instructionLength, err := r.U16()
	if err != nil {
		return nil, err
	}
	r.Advance(int(instructionLength))

	flags := make([]byte, numPoints)
	for i := 0; i < numPoints; {
		f, err := r.U8()
		if err != nil {
			return nil, err
		}
		flags[i] = f
		i++
		if f&flagRepeat != 0 {
			count, err := r.U8()
			if err != nil {
				return nil, err
			}
			for ; count > 0 && i < numPoints; count-- {
				flags[i] = f
				i++
			}
		}
	}

	xs := make([]float64, numPoints)
	var x float64
	for i, f := range flags {
		switch {
		case f&flagXShort != 0:
			d, err := r.U8()
			if err != nil {
				return nil, err
			}
			if f&flagXSameOrPos != 0 {
				x += float64(d)
			} else {
				x -= float64(d)
			}
		case f&flagXSameOrPos == 0:
			d, err := r.I16()
			if err != nil {
				return nil, err
			}
			x += float64(d)
		}
		xs[i] = x
	}

	ys := make([]float64, numPoints)
	var y float64
	for i, f := range flags {
		switch {
		case f&flagYShort != 0:
			d, err := r.U8()
			if err != nil {
				return nil, err
			}
			if f&flagYSameOrPos != 0 {
				y += float64(d)
			} else {
				y -= float64(d)
			}
		case f&flagYSameOrPos == 0:
			d, err := r.I16()
			if err != nil {
				return nil, err
			}
			y += float64(d)
		}
		ys[i] = y
	}

	contours := make([]Contour, numContours)
	start := 0
	for i := 0; i < numContours; i++ {
		end := int(endPts[i]) + 1
		if end < start {
			return nil, &sfnterr.MalformedError{SubSystem: "sfnt/glyf", Reason: "contour end before start"}
		}
		c := make(Contour, end-start)
		for j := start; j < end; j++ {
			c[j-start] = Point{X: xs[j], Y: ys[j], OnCurve: flags[j]&flagOnCurve != 0}
		}
		contours[i] = c
		start = end
	}

	return &SimpleGlyph{Contours: contours}, nil
}

// WalkSimple drives sink through every contour of g, reconstructing the
// quadratic Bezier segments implied by TrueType's on-curve/off-curve point
// encoding: two consecutive off-curve points imply an on-curve point
// midway between them.
func WalkSimple(g *SimpleGlyph, sink outline.Sink) {
	for _, c := range g.Contours {
		walkContour(c, sink)
	}
}

// walkContour reconstructs one contour's Bezier segments following the same
// two-consecutive-off-curve-points-imply-a-midpoint rule as
// golang-freetype's drawContour, and drives sink with the result.
func walkContour(c Contour, sink outline.Sink) {
	if len(c) == 0 {
		return
	}

	pt := func(p Point) geom.Point { return geom.Point{X: p.X, Y: p.Y} }

	first, last := c[0], c[len(c)-1]
	var start geom.Point
	var rest []Point
	switch {
	case first.OnCurve:
		start = pt(first)
		rest = c[1:]
	case last.OnCurve:
		start = pt(last)
		rest = c[:len(c)-1]
	default:
		start = geom.Point{X: (first.X + last.X) / 2, Y: (first.Y + last.Y) / 2}
		rest = c
	}

	sink.MoveTo(start)
	q0, on0 := start, true
	for _, p := range rest {
		q := pt(p)
		on := p.OnCurve
		switch {
		case on && on0:
			sink.LineTo(q)
		case on && !on0:
			sink.QuadTo(q0, q)
		case !on && on0:
			// wait for the next point to know whether this is a genuine
			// control point or needs a synthetic on-curve midpoint
		default:
			mid := geom.Point{X: (q0.X + q.X) / 2, Y: (q0.Y + q.Y) / 2}
			sink.QuadTo(q0, mid)
		}
		q0, on0 = q, on
	}

	// A straight edge back to start is already implied by Close(); only emit
	// an explicit closing command when the edge into start needs curvature.
	if !on0 {
		sink.QuadTo(q0, start)
	}
	sink.Close()
}
