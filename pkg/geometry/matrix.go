package geometry

import "github.com/pkg/errors"

// ErrSingularMatrix is returned by Inverse when |det| is exactly zero.
var ErrSingularMatrix = errors.New("geometry: singular matrix")

// ErrNotImplemented names the "unsupported dimension" failure of §4.C. Only
// Matrix2 and Matrix3 exist, so no function in this package returns it.
var ErrNotImplemented = errors.New("geometry: operation not implemented for this dimension")

// Matrix2 stores its two rows as Vector2.
type Matrix2 struct{ Row0, Row1 Vector2 }

// MulVector returns M*v.
func (m Matrix2) MulVector(v Vector2) Vector2 {
	return Vector2{Dot2(m.Row0, v), Dot2(m.Row1, v)}
}

// Mul returns M*n (matrix product).
func (m Matrix2) Mul(n Matrix2) Matrix2 {
	col0 := Vector2{n.Row0.X, n.Row1.X}
	col1 := Vector2{n.Row0.Y, n.Row1.Y}
	return Matrix2{
		Row0: Vector2{Dot2(m.Row0, col0), Dot2(m.Row0, col1)},
		Row1: Vector2{Dot2(m.Row1, col0), Dot2(m.Row1, col1)},
	}
}

// Transpose returns the transpose of m.
func (m Matrix2) Transpose() Matrix2 {
	return Matrix2{
		Row0: Vector2{m.Row0.X, m.Row1.X},
		Row1: Vector2{m.Row0.Y, m.Row1.Y},
	}
}

// Determinant returns det(m).
func (m Matrix2) Determinant() float64 {
	return m.Row0.X*m.Row1.Y - m.Row0.Y*m.Row1.X
}

// Inverse returns the matrix inverse via cofactor expansion, failing with
// ErrSingularMatrix if the determinant is exactly zero.
func (m Matrix2) Inverse() (Matrix2, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix2{}, ErrSingularMatrix
	}
	invDet := 1 / det
	return Matrix2{
		Row0: Vector2{m.Row1.Y * invDet, -m.Row0.Y * invDet},
		Row1: Vector2{-m.Row1.X * invDet, m.Row0.X * invDet},
	}, nil
}

// Matrix3 stores its three rows as Vector3.
type Matrix3 struct{ Row0, Row1, Row2 Vector3 }

// MulVector returns M*v.
func (m Matrix3) MulVector(v Vector3) Vector3 {
	return Vector3{Dot3(m.Row0, v), Dot3(m.Row1, v), Dot3(m.Row2, v)}
}

// Mul returns M*n (matrix product).
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	col := func(i int) Vector3 {
		switch i {
		case 0:
			return Vector3{n.Row0.X, n.Row1.X, n.Row2.X}
		case 1:
			return Vector3{n.Row0.Y, n.Row1.Y, n.Row2.Y}
		default:
			return Vector3{n.Row0.Z, n.Row1.Z, n.Row2.Z}
		}
	}
	c0, c1, c2 := col(0), col(1), col(2)
	row := func(r Vector3) Vector3 { return Vector3{Dot3(r, c0), Dot3(r, c1), Dot3(r, c2)} }
	return Matrix3{Row0: row(m.Row0), Row1: row(m.Row1), Row2: row(m.Row2)}
}

// Transpose returns the transpose of m.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		Row0: Vector3{m.Row0.X, m.Row1.X, m.Row2.X},
		Row1: Vector3{m.Row0.Y, m.Row1.Y, m.Row2.Y},
		Row2: Vector3{m.Row0.Z, m.Row1.Z, m.Row2.Z},
	}
}

// Determinant returns det(m) via cofactor expansion along the first row.
func (m Matrix3) Determinant() float64 {
	a, b, c := m.Row0.X, m.Row0.Y, m.Row0.Z
	d, e, f := m.Row1.X, m.Row1.Y, m.Row1.Z
	g, h, i := m.Row2.X, m.Row2.Y, m.Row2.Z
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Inverse returns the matrix inverse via cofactor expansion, failing with
// ErrSingularMatrix if the determinant is exactly zero.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3{}, ErrSingularMatrix
	}
	a, b, c := m.Row0.X, m.Row0.Y, m.Row0.Z
	d, e, f := m.Row1.X, m.Row1.Y, m.Row1.Z
	g, h, i := m.Row2.X, m.Row2.Y, m.Row2.Z

	invDet := 1 / det
	// Cofactor matrix, transposed (adjugate), scaled by 1/det.
	return Matrix3{
		Row0: Vector3{
			X: (e*i - f*h) * invDet,
			Y: (c*h - b*i) * invDet,
			Z: (b*f - c*e) * invDet,
		},
		Row1: Vector3{
			X: (f*g - d*i) * invDet,
			Y: (a*i - c*g) * invDet,
			Z: (c*d - a*f) * invDet,
		},
		Row2: Vector3{
			X: (d*h - e*g) * invDet,
			Y: (b*g - a*h) * invDet,
			Z: (a*e - b*d) * invDet,
		},
	}, nil
}
