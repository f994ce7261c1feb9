// Package outline defines the consumer interface for decoded glyph
// outlines and the two production sinks: an SVG path emitter and a
// bounding-box accumulator.
//
// The state machine in sfnt that walks a glyph's point stream (see
// golang-freetype/freetype/truetype/glyph.go's loadSimple/drawContour for
// the algorithm this is grounded on) drives a Sink with move/line/quad/
// cubic/close calls; every contour it emits satisfies one Move, zero or
// more Line/Quad/Cubic, then one Close.
package outline

import "github.com/aslpavel/icon-viewer/geom"

// Sink consumes an outline as a stream of drawing commands.
type Sink interface {
	MoveTo(p geom.Point)
	LineTo(p geom.Point)
	QuadTo(ctrl, p geom.Point)
	CubicTo(ctrl1, ctrl2, p geom.Point)
	Close()
}

// CommandOp names an outline command.
type CommandOp int

const (
	OpMove CommandOp = iota
	OpLine
	OpQuad
	OpCubic
	OpClose
)

func (op CommandOp) String() string {
	switch op {
	case OpMove:
		return "move"
	case OpLine:
		return "line"
	case OpQuad:
		return "quad"
	case OpCubic:
		return "cubic"
	case OpClose:
		return "close"
	default:
		return "unknown"
	}
}

// Command is one recorded outline operation, as produced by CommandLogSink.
type Command struct {
	Op     CommandOp
	Points [3]geom.Point // meaning depends on Op: Move/Line use Points[0]; Quad uses [0] ctrl, [1] end; Cubic uses [0],[1] ctrl, [2] end
}

// CommandLogSink records every call it receives verbatim, for tests that
// assert outline well-formedness without parsing SVG path strings back out.
type CommandLogSink struct {
	Commands []Command
}

func (s *CommandLogSink) MoveTo(p geom.Point) {
	s.Commands = append(s.Commands, Command{Op: OpMove, Points: [3]geom.Point{p}})
}

func (s *CommandLogSink) LineTo(p geom.Point) {
	s.Commands = append(s.Commands, Command{Op: OpLine, Points: [3]geom.Point{p}})
}

func (s *CommandLogSink) QuadTo(ctrl, p geom.Point) {
	s.Commands = append(s.Commands, Command{Op: OpQuad, Points: [3]geom.Point{ctrl, p}})
}

func (s *CommandLogSink) CubicTo(ctrl1, ctrl2, p geom.Point) {
	s.Commands = append(s.Commands, Command{Op: OpCubic, Points: [3]geom.Point{ctrl1, ctrl2, p}})
}

func (s *CommandLogSink) Close() {
	s.Commands = append(s.Commands, Command{Op: OpClose})
}
