package geom

import (
	"math"
	"testing"
)

func TestLerp(t *testing.T) {
	p := Point{X: 0, Y: 0}
	q := Point{X: 10, Y: 20}

	cases := []struct {
		t    float64
		want Point
	}{
		{0, Point{0, 0}},
		{1, Point{10, 20}},
		{0.5, Point{5, 10}},
	}
	for _, c := range cases {
		got := p.Lerp(q, c.t)
		if got != c.want {
			t.Errorf("Lerp(%v, %v, %g) = %v, want %v", p, q, c.t, got, c.want)
		}
	}
}

func closeEnough(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestTransformApply(t *testing.T) {
	p := Point{X: 3, Y: 4}

	if got := Identity.Apply(p); got != p {
		t.Errorf("Identity.Apply(%v) = %v, want %v", p, got, p)
	}

	translated := Identity.Translate(1, 2).Apply(p)
	if want := (Point{4, 6}); !closeEnough(translated, want) {
		t.Errorf("Translate(1,2).Apply(%v) = %v, want %v", p, translated, want)
	}

	scaled := Identity.Scale(2, 3).Apply(p)
	if want := (Point{6, 12}); !closeEnough(scaled, want) {
		t.Errorf("Scale(2,3).Apply(%v) = %v, want %v", p, scaled, want)
	}
}

func TestTransformComposeOrder(t *testing.T) {
	// Scale first, then translate: matches building up a transform from
	// the identity outward via chained calls.
	xf := Identity.Translate(100, 100).Scale(2, 2)
	got := xf.Apply(Point{X: 1, Y: 1})
	want := Point{X: 102, Y: 102} // (1*2, 1*2) + (100, 100)
	if !closeEnough(got, want) {
		t.Errorf("Translate(100,100).Scale(2,2).Apply({1,1}) = %v, want %v", got, want)
	}
}

func TestTransformComposeAssociativity(t *testing.T) {
	a := Identity.Translate(5, -3).Rotate(math.Pi / 6)
	b := Identity.Scale(1.5, 0.5)
	p := Point{X: 7, Y: -2}

	composed := a.Compose(b)
	direct := a.Apply(b.Apply(p))
	if got := composed.Apply(p); !closeEnough(got, direct) {
		t.Errorf("a.Compose(b).Apply(p) = %v, want %v", got, direct)
	}
}

func TestTransformRotateRoundTrip(t *testing.T) {
	p := Point{X: 1, Y: 0}
	xf := Identity.Rotate(math.Pi / 2)
	got := xf.Apply(p)
	want := Point{X: 0, Y: 1}
	if !closeEnough(got, want) {
		t.Errorf("Rotate(pi/2).Apply({1,0}) = %v, want %v", got, want)
	}
}
