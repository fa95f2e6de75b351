package geometry

// SignedTriangleArea2 returns the signed area of the triangle (a, b, c) in
// the plane: positive for counter-clockwise winding.
func SignedTriangleArea2(a, b, c Point2) float64 {
	return 0.5 * Cross2(b.Sub(a), c.Sub(a))
}

// TriangleArea2 returns the unsigned area of the triangle (a, b, c).
func TriangleArea2(a, b, c Point2) float64 {
	area := SignedTriangleArea2(a, b, c)
	if area < 0 {
		return -area
	}
	return area
}

// OrientedTriangleArea3 returns the area of triangle (a, b, c) in space
// (not projected), signed by up: positive when the triangle's (b-a)x(c-a)
// normal points in the same half-space as up, negative otherwise.
func OrientedTriangleArea3(a, b, c Point3, up Vector3) float64 {
	n := Cross3(b.Sub(a), c.Sub(a))
	area := 0.5 * Length3(n)
	if Dot3(n, up) < 0 {
		return -area
	}
	return area
}

// TriangleArea3 returns the unsigned area of the triangle (a, b, c) in
// space.
func TriangleArea3(a, b, c Point3) float64 {
	return 0.5 * Length3(Cross3(b.Sub(a), c.Sub(a)))
}

// SignedTetrahedronVolume returns det(b-a, c-a, d-a)/6, positive for a
// positively-oriented tetrahedron.
func SignedTetrahedronVolume(a, b, c, d Point3) float64 {
	m := Matrix3{Row0: b.Sub(a), Row1: c.Sub(a), Row2: d.Sub(a)}
	return m.Determinant() / 6
}

// TetrahedronVolume returns the unsigned volume of tetrahedron (a,b,c,d).
func TetrahedronVolume(a, b, c, d Point3) float64 {
	v := SignedTetrahedronVolume(a, b, c, d)
	if v < 0 {
		return -v
	}
	return v
}
