package outline

import "github.com/aslpavel/icon-viewer/geom"

// BBox is an axis-aligned bounding rectangle.
type BBox struct {
	Min, Max geom.Point
}

// Width returns Max.X - Min.X.
func (b BBox) Width() float64 { return b.Max.X - b.Min.X }

// Height returns Max.Y - Min.Y.
func (b BBox) Height() float64 { return b.Max.Y - b.Min.Y }

// BBoxBuilder is a Sink that accumulates the bounding box of every point it
// is offered, including off-curve control points, matching spec's
// requirement that quad/cubic control points participate in the bbox the
// same way on-curve points do.
type BBoxBuilder struct {
	box BBox
	set bool
}

// Extend grows the running bounding box to also cover p. It never shrinks
// the box.
func (b *BBoxBuilder) Extend(p geom.Point) {
	if !b.set {
		b.box = BBox{Min: p, Max: p}
		b.set = true
		return
	}
	if p.X < b.box.Min.X {
		b.box.Min.X = p.X
	}
	if p.Y < b.box.Min.Y {
		b.box.Min.Y = p.Y
	}
	if p.X > b.box.Max.X {
		b.box.Max.X = p.X
	}
	if p.Y > b.box.Max.Y {
		b.box.Max.Y = p.Y
	}
}

// BBox returns the accumulated bounding box, or (BBox{}, false) if no point
// was ever offered.
func (b *BBoxBuilder) BBox() (BBox, bool) {
	return b.box, b.set
}

func (b *BBoxBuilder) MoveTo(p geom.Point) { b.Extend(p) }
func (b *BBoxBuilder) LineTo(p geom.Point) { b.Extend(p) }

func (b *BBoxBuilder) QuadTo(ctrl, p geom.Point) {
	b.Extend(ctrl)
	b.Extend(p)
}

func (b *BBoxBuilder) CubicTo(ctrl1, ctrl2, p geom.Point) {
	b.Extend(ctrl1)
	b.Extend(ctrl2)
	b.Extend(p)
}

func (b *BBoxBuilder) Close() {}
