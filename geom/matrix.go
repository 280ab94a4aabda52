package geom

import (
	"errors"
	"math"
)

// ErrSingularMatrix indicates Inverse was asked to invert a matrix whose
// determinant is (numerically) zero.
var ErrSingularMatrix = errors.New("geom: matrix is singular, cannot invert")

// Matrix is a 3x3 affine transform stored in the standard 2-D CSS/SVG
// layout:
//
//	| a  c  e |   | x |   | a*x + c*y + e |
//	| b  d  f | * | y | = | b*x + d*y + f |
//	| 0  0  1 |   | 1 |   |       1       |
//
// The zero value is the degenerate all-zero matrix, not the identity; use
// Identity() to construct a usable Matrix. Mutating methods (the Pre*/Post*
// family) modify the receiver in place and also return it, so calls chain:
// m.PostTranslate(dx, dy).PostScale(sx, sy).
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1, E: 0, F: 0}
}

// Translate returns a pure translation matrix.
func Translate(dx, dy float64) Matrix {
	return Matrix{A: 1, B: 0, C: 0, D: 1, E: dx, F: dy}
}

// Scale returns a pure scale matrix about the origin.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, B: 0, C: 0, D: sy, E: 0, F: 0}
}

// Rotate returns a pure rotation matrix about the origin, theta in radians.
func Rotate(theta float64) Matrix {
	s, c := math.Sincos(theta)
	return Matrix{A: c, B: s, C: -s, D: c, E: 0, F: 0}
}

// Skew returns a pure skew matrix, angles in radians.
func Skew(thetaX, thetaY float64) Matrix {
	return Matrix{A: 1, B: math.Tan(thetaY), C: math.Tan(thetaX), D: 1, E: 0, F: 0}
}

// multiply returns m1 * m2 (apply m2 first, then m1), matching this
// package's row-vector-on-the-right convention above.
func multiply(m1, m2 Matrix) Matrix {
	return Matrix{
		A: m1.A*m2.A + m1.C*m2.B,
		B: m1.B*m2.A + m1.D*m2.B,
		C: m1.A*m2.C + m1.C*m2.D,
		D: m1.B*m2.C + m1.D*m2.D,
		E: m1.A*m2.E + m1.C*m2.F + m1.E,
		F: m1.B*m2.E + m1.D*m2.F + m1.F,
	}
}

// PreCat sets m = other * m: other is applied after m's existing transform
// when used on a point (m is the "inner" transform).
func (m *Matrix) PreCat(other Matrix) *Matrix {
	*m = multiply(other, *m)
	return m
}

// PostCat sets m = m * other: other is applied before m's existing
// transform when used on a point (m is the "outer" transform).
func (m *Matrix) PostCat(other Matrix) *Matrix {
	*m = multiply(*m, other)
	return m
}

// PreTranslate, PostTranslate, PreScale, PostScale, PreRotate, PostRotate,
// PreSkew, PostSkew compose the named elementary transform before/after m.
func (m *Matrix) PreTranslate(dx, dy float64) *Matrix { return m.PreCat(Translate(dx, dy)) }
func (m *Matrix) PostTranslate(dx, dy float64) *Matrix { return m.PostCat(Translate(dx, dy)) }
func (m *Matrix) PreScale(sx, sy float64) *Matrix { return m.PreCat(Scale(sx, sy)) }
func (m *Matrix) PostScale(sx, sy float64) *Matrix { return m.PostCat(Scale(sx, sy)) }
func (m *Matrix) PreRotate(theta float64) *Matrix { return m.PreCat(Rotate(theta)) }
func (m *Matrix) PostRotate(theta float64) *Matrix { return m.PostCat(Rotate(theta)) }
func (m *Matrix) PreSkew(tx, ty float64) *Matrix { return m.PreCat(Skew(tx, ty)) }
func (m *Matrix) PostSkew(tx, ty float64) *Matrix { return m.PostCat(Skew(tx, ty)) }

// Determinant returns ad - bc.
func (m Matrix) Determinant() float64 { return m.A*m.D - m.B*m.C }

// Inverse returns the matrix M such that M*m == Identity(). Returns
// ErrSingularMatrix if the determinant is within 1e-12 of zero.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 {
		return Matrix{}, ErrSingularMatrix
	}
	invDet := 1 / det
	return Matrix{
		A: m.D * invDet,
		B: -m.B * invDet,
		C: -m.C * invDet,
		D: m.A * invDet,
		E: (m.C*m.F - m.D*m.E) * invDet,
		F: (m.B*m.E - m.A*m.F) * invDet,
	}, nil
}

// Apply transforms p by m.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// ApplyVector transforms p as a vector (ignores translation), useful for
// transforming deltas/normals rather than positions.
func (m Matrix) ApplyVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y,
		Y: m.B*p.X + m.D*p.Y,
	}
}

// Equal reports exact componentwise equality.
func (m Matrix) Equal(o Matrix) bool {
	return m.A == o.A && m.B == o.B && m.C == o.C && m.D == o.D && m.E == o.E && m.F == o.F
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Matrix) IsIdentity() bool { return m.Equal(Identity()) }
