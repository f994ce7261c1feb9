package glyf

import (
	"log"

	"github.com/aslpavel/icon-viewer/geom"
	"github.com/aslpavel/icon-viewer/outline"
	"github.com/aslpavel/icon-viewer/sfnt/sfnterr"
)

// maxCompositeDepth bounds composite-glyph recursion. TrueType has no
// legitimate use for deep component nesting; this also backstops the cycle
// guard below against any cycle that somehow slips past it.
const maxCompositeDepth = 16

// Table is the decoded glyf+loca pair, letting glyphs be fetched and walked
// by glyph ID.
type Table struct {
	data   []byte
	loca   []uint32
	logger *log.Logger
}

// NewTable builds a Table from the raw glyf table bytes and the loca
// offsets decoded by ReadLoca.
func NewTable(glyfData []byte, loca []uint32) *Table {
	return &Table{data: glyfData, loca: loca, logger: log.Default()}
}

// SetLogger redirects the diagnostics emitted for a composite component
// that fails to decode or walk; that component is skipped rather than
// aborting the whole glyph. The default logs to log.Default().
func (t *Table) SetLogger(l *log.Logger) {
	t.logger = l
}

// NumGlyphs returns the number of glyphs the table's loca offsets cover.
func (t *Table) NumGlyphs() int {
	if len(t.loca) == 0 {
		return 0
	}
	return len(t.loca) - 1
}

// Glyph decodes glyph gid.
func (t *Table) Glyph(gid int) (*Glyph, error) {
	if gid < 0 || gid+1 >= len(t.loca) {
		return nil, &sfnterr.MalformedError{SubSystem: "sfnt/glyf", Reason: "glyph ID out of range"}
	}
	start, end := t.loca[gid], t.loca[gid+1]
	if int(end) > len(t.data) || end < start {
		return nil, &sfnterr.TruncatedError{SubSystem: "sfnt/glyf", Reason: "glyph data out of range"}
	}
	return Decode(t.data[start:end])
}

// WalkGlyph drives sink through the outline of glyph gid, recursively
// resolving composite components. Each component's own transform is
// composed with the transform accumulated from its ancestors before its
// points are walked, so nested composites scale and translate correctly.
// A component referencing a glyph already on the current path is skipped
// rather than followed, guarding against a cyclic composite definition
// that would otherwise recurse forever.
func (t *Table) WalkGlyph(gid int, sink outline.Sink) error {
	return t.walk(gid, geom.Identity, map[int]bool{}, 0, sink)
}

func (t *Table) walk(gid int, xf geom.Transform, visited map[int]bool, depth int, sink outline.Sink) error {
	if visited[gid] || depth > maxCompositeDepth {
		return nil
	}
	visited[gid] = true
	defer delete(visited, gid)

	g, err := t.Glyph(gid)
	if err != nil {
		return err
	}

	switch g.Kind {
	case KindEmpty:
		return nil
	case KindSimple:
		WalkSimple(g.Simple, transformingSink{xf: xf, next: sink})
		return nil
	case KindComposite:
		for _, comp := range g.Composite.Components {
			childXf := xf.Compose(comp.Transform)
			if err := t.walk(int(comp.GlyphIndex), childXf, visited, depth+1, sink); err != nil {
				t.logger.Printf("sfnt/glyf: skipping component glyph %d of composite glyph %d: %v", comp.GlyphIndex, gid, err)
				continue
			}
		}
		return nil
	default:
		return nil
	}
}

// transformingSink maps every point it receives through xf before handing
// it on, so WalkSimple can stay ignorant of the composite transform stack.
type transformingSink struct {
	xf   geom.Transform
	next outline.Sink
}

func (s transformingSink) MoveTo(p geom.Point) { s.next.MoveTo(s.xf.Apply(p)) }
func (s transformingSink) LineTo(p geom.Point) { s.next.LineTo(s.xf.Apply(p)) }
func (s transformingSink) QuadTo(ctrl, p geom.Point) {
	s.next.QuadTo(s.xf.Apply(ctrl), s.xf.Apply(p))
}
func (s transformingSink) CubicTo(ctrl1, ctrl2, p geom.Point) {
	s.next.CubicTo(s.xf.Apply(ctrl1), s.xf.Apply(ctrl2), s.xf.Apply(p))
}
func (s transformingSink) Close() { s.next.Close() }
