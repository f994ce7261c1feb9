// Package geom holds the 2D point and affine-transform primitives shared by
// the outline decoder and the SVG renderer.
package geom

import "math"

// Point is a point in 2D space.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Lerp returns the point on the line between p and q at parameter t, i.e.
// p*(1-t) + q*t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X*(1-t) + q.X*t,
		Y: p.Y*(1-t) + q.Y*t,
	}
}

// Transform is a 2x3 affine transform
//
//	| M00 M01 M02 |
//	| M10 M11 M12 |
//
// applied to a point (x, y) as (M00*x + M01*y + M02, M10*x + M11*y + M12).
//
// The fields correspond one to one to seehuhn.de/go/geom's matrix.Matrix
// ([6]float64 of xx, xy, yx, yy, dx, dy), though not in the same order:
// M00=xx, M01=yx, M02=dx, M10=xy, M11=yy, M12=dy.
type Transform struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
}

// Identity is the transform that leaves every point unchanged.
var Identity = Transform{
	M00: 1, M01: 0, M02: 0,
	M10: 0, M11: 1, M12: 0,
}

// Translate returns self composed with a translation by (tx, ty), i.e.
// self.Compose(Translate).
func (t Transform) Translate(tx, ty float64) Transform {
	return t.Compose(Transform{
		M00: 1, M01: 0, M02: tx,
		M10: 0, M11: 1, M12: ty,
	})
}

// Scale returns self composed with a scale by (sx, sy).
func (t Transform) Scale(sx, sy float64) Transform {
	return t.Compose(Transform{
		M00: sx, M01: 0, M02: 0,
		M10: 0, M11: sy, M12: 0,
	})
}

// Rotate returns self composed with a rotation by theta radians.
func (t Transform) Rotate(theta float64) Transform {
	s, c := math.Sincos(theta)
	return t.Compose(Transform{
		M00: c, M01: -s, M02: 0,
		M10: s, M11: c, M12: 0,
	})
}

// Compose returns the transform t ∘ other: other is applied first, in its
// own local space, and t is applied to the result. This is the convention
// used to accumulate composite-glyph transforms (parent.Compose(component))
// and to build up a transform from the identity outward, e.g.
// Identity.Compose(translate).Compose(scale) translates the already-scaled
// point.
func (t Transform) Compose(other Transform) Transform {
	return Transform{
		M00: t.M00*other.M00 + t.M01*other.M10,
		M01: t.M00*other.M01 + t.M01*other.M11,
		M02: t.M00*other.M02 + t.M01*other.M12 + t.M02,
		M10: t.M10*other.M00 + t.M11*other.M10,
		M11: t.M10*other.M01 + t.M11*other.M11,
		M12: t.M10*other.M02 + t.M11*other.M12 + t.M12,
	}
}

// Apply maps p through the transform.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.M00*p.X + t.M01*p.Y + t.M02,
		Y: t.M10*p.X + t.M11*p.Y + t.M12,
	}
}
