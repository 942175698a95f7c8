package plane

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Fit returns the transform that maps src into the center of dst, scaled
// uniformly to be as large as possible. aspect is the width of one unit of
// dst relative to its height; terminal cells, for example, are about twice
// as tall as they are wide, which calls for an aspect of 0.5.
//
// A src without area maps onto the center of dst.
func Fit(src, dst Rect, aspect float64) Affine {
	sw, sh := src.Width(), src.Height()
	dw, dh := dst.Width()*aspect, dst.Height()
	var s float64
	switch {
	case sw > 0 && sh > 0:
		s = min(dw/sw, dh/sh)
	case sw > 0:
		s = dw / sw
	case sh > 0:
		s = dh / sh
	}
	c := src.Center()
	d := dst.Center()
	return Translate(Vec2(c).Negate()).
		ThenScale(s/aspect, s).
		ThenTranslate(Vec2(d))
}
