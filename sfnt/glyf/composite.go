package glyf

import (
	"github.com/aslpavel/icon-viewer/geom"
	"github.com/aslpavel/icon-viewer/sfnt/sfntio"
)

// Composite component flags, as laid out in the glyf table's composite
// glyph description.
const (
	compArg1And2AreWords   = 0x0001
	compArgsAreXYValues    = 0x0002
	compWeHaveAScale       = 0x0008
	compMoreComponents     = 0x0020
	compWeHaveAnXAndYScale = 0x0040
	compWeHaveATwoByTwo    = 0x0080
	compWeHaveInstructions = 0x0100
)

func decodeComposite(r *sfntio.Reader) (*CompositeGlyph, error) {
	var components []Component

	for {
		flags, err := r.U16()
		if err != nil {
			return nil, err
		}
		glyphIndex, err := r.U16()
		if err != nil {
			return nil, err
		}

		var dx, dy float64
		if flags&compArg1And2AreWords != 0 {
			a1, err := r.I16()
			if err != nil {
				return nil, err
			}
			a2, err := r.I16()
			if err != nil {
				return nil, err
			}
			dx, dy = float64(a1), float64(a2)
		} else {
			a1, err := r.I8()
			if err != nil {
				return nil, err
			}
			a2, err := r.I8()
			if err != nil {
				return nil, err
			}
			dx, dy = float64(a1), float64(a2)
		}
		// When ARGS_ARE_XY_VALUES is clear, arg1/arg2 are point indices for
		// point matching rather than an offset; point matching needs the
		// component glyphs' own contours to resolve and is out of scope,
		// so such components are placed unmoved relative to their parent.
		if flags&compArgsAreXYValues == 0 {
			dx, dy = 0, 0
		}

		xf := geom.Identity
		switch {
		case flags&compWeHaveAScale != 0:
			scale, err := r.F2Dot14()
			if err != nil {
				return nil, err
			}
			xf = xf.Scale(scale, scale)
		case flags&compWeHaveAnXAndYScale != 0:
			sx, err := r.F2Dot14()
			if err != nil {
				return nil, err
			}
			sy, err := r.F2Dot14()
			if err != nil {
				return nil, err
			}
			xf = xf.Scale(sx, sy)
		case flags&compWeHaveATwoByTwo != 0:
			xx, err := r.F2Dot14()
			if err != nil {
				return nil, err
			}
			xy, err := r.F2Dot14()
			if err != nil {
				return nil, err
			}
			yx, err := r.F2Dot14()
			if err != nil {
				return nil, err
			}
			yy, err := r.F2Dot14()
			if err != nil {
				return nil, err
			}
			xf = geom.Transform{M00: xx, M01: yx, M10: xy, M11: yy}
		}
		xf.M02, xf.M12 = dx, dy

		components = append(components, Component{GlyphIndex: glyphIndex, Transform: xf})

		if flags&compMoreComponents == 0 {
			if flags&compWeHaveInstructions != 0 {
				instrLen, err := r.U16()
				if err == nil {
					r.Advance(int(instrLen))
				}
			}
			break
		}
	}

	return &CompositeGlyph{Components: components}, nil
}
