package grasp

// Affine is a 2D affine matrix in [a, b, c, d, tx, ty] layout:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// Sources use one to map device coordinates into content space when the
// gesture surface is scaled or letterboxed.
type Affine [6]float64

// IdentityAffine returns the identity matrix.
func IdentityAffine() Affine {
	return Affine{1, 0, 0, 1, 0, 0}
}

// TranslateScaleAffine returns the matrix that scales by (sx, sy) and then
// translates by (tx, ty), the common letterbox/viewport mapping.
func TranslateScaleAffine(tx, ty, sx, sy float64) Affine {
	return Affine{sx, 0, 0, sy, tx, ty}
}

// Mul returns m * other (other applied first).
func (m Affine) Mul(other Affine) Affine {
	return Affine{
		m[0]*other[0] + m[2]*other[1],
		m[1]*other[0] + m[3]*other[1],
		m[0]*other[2] + m[2]*other[3],
		m[1]*other[2] + m[3]*other[3],
		m[0]*other[4] + m[2]*other[5] + m[4],
		m[1]*other[4] + m[3]*other[5] + m[5],
	}
}

// Invert computes the inverse matrix. Returns the identity if m is singular
// (determinant ≈ 0).
func (m Affine) Invert() Affine {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityAffine()
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Affine{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// Apply transforms the point (x, y) by m.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
