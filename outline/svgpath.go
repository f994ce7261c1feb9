package outline

import (
	"math"
	"strconv"
	"strings"

	"github.com/aslpavel/icon-viewer/geom"
)

// SVGPathOptions configures an SVGPathBuilder.
type SVGPathOptions struct {
	// Relative selects lowercase, delta-encoded commands instead of
	// uppercase absolute ones.
	Relative bool
	// Precision is the number of decimal digits used for every emitted
	// coordinate.
	Precision int
	// Transform is applied to every point before it is formatted. A nil
	// Transform is equivalent to geom.Identity.
	Transform *geom.Transform
}

// SVGPathBuilder is a Sink that renders the outline it receives as the "d"
// attribute of an SVG <path> element.
type SVGPathBuilder struct {
	opts SVGPathOptions
	xf   geom.Transform
	sb   strings.Builder

	cur     geom.Point
	start   geom.Point // start of the current subpath, where Close returns to
	started bool
}

// NewSVGPathBuilder returns a builder configured by opts.
func NewSVGPathBuilder(opts SVGPathOptions) *SVGPathBuilder {
	xf := geom.Identity
	if opts.Transform != nil {
		xf = *opts.Transform
	}
	return &SVGPathBuilder{opts: opts, xf: xf}
}

// String returns the path built so far.
func (b *SVGPathBuilder) String() string {
	return b.sb.String()
}

func (b *SVGPathBuilder) letter(abs, rel byte) string {
	if b.opts.Relative {
		return string(rel)
	}
	return string(abs)
}

// emit writes cmd followed by the given absolute points. Each point is
// written as an (x, y) pair; in relative mode the pair is the delta from
// ref, and ref is updated to the point itself between successive pairs of
// the same command (so control points chain off each other, not off the
// command's start point).
func (b *SVGPathBuilder) emit(cmd string, ref geom.Point, points ...geom.Point) {
	b.sb.WriteString(cmd)
	first := true
	for _, p := range points {
		out := p
		if b.opts.Relative {
			out = p.Sub(ref)
		}
		b.writeNum(out.X, first)
		first = false
		b.writeNum(out.Y, false)
		ref = p
	}
}

func (b *SVGPathBuilder) writeNum(v float64, first bool) {
	s := formatCoord(v, b.opts.Precision)
	if !first && s[0] != '-' {
		b.sb.WriteByte(',')
	}
	b.sb.WriteString(s)
}

func formatCoord(v float64, precision int) string {
	scale := math.Pow10(precision)
	rounded := math.Round(v*scale) / scale
	if rounded == 0 {
		rounded = 0 // normalize -0 to 0
	}
	return strconv.FormatFloat(rounded, 'f', precision, 64)
}

func (b *SVGPathBuilder) MoveTo(p geom.Point) {
	p = b.xf.Apply(p)
	ref := geom.Point{}
	if b.started {
		ref = b.cur
	}
	b.emit(b.letter('M', 'm'), ref, p)
	b.cur = p
	b.start = p
	b.started = true
}

func (b *SVGPathBuilder) LineTo(p geom.Point) {
	p = b.xf.Apply(p)
	b.emit(b.letter('L', 'l'), b.cur, p)
	b.cur = p
}

func (b *SVGPathBuilder) QuadTo(ctrl, p geom.Point) {
	ctrl, p = b.xf.Apply(ctrl), b.xf.Apply(p)
	b.emit(b.letter('Q', 'q'), b.cur, ctrl, p)
	b.cur = p
}

func (b *SVGPathBuilder) CubicTo(ctrl1, ctrl2, p geom.Point) {
	ctrl1, ctrl2, p = b.xf.Apply(ctrl1), b.xf.Apply(ctrl2), b.xf.Apply(p)
	b.emit(b.letter('C', 'c'), b.cur, ctrl1, ctrl2, p)
	b.cur = p
}

func (b *SVGPathBuilder) Close() {
	b.sb.WriteString("Z")
	b.cur = b.start
}

// Tee returns a Sink that forwards every call to each of sinks in order,
// for driving an outline walk through two sinks (e.g. an SVGPathBuilder
// and a BBoxBuilder) in a single pass.
func Tee(sinks ...Sink) Sink {
	return teeSink(sinks)
}

type teeSink []Sink

func (t teeSink) MoveTo(p geom.Point) {
	for _, s := range t {
		s.MoveTo(p)
	}
}

func (t teeSink) LineTo(p geom.Point) {
	for _, s := range t {
		s.LineTo(p)
	}
}

func (t teeSink) QuadTo(ctrl, p geom.Point) {
	for _, s := range t {
		s.QuadTo(ctrl, p)
	}
}

func (t teeSink) CubicTo(ctrl1, ctrl2, p geom.Point) {
	for _, s := range t {
		s.CubicTo(ctrl1, ctrl2, p)
	}
}

func (t teeSink) Close() {
	for _, s := range t {
		s.Close()
	}
}
