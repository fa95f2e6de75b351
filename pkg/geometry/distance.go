package geometry

import "math"

// PointSegmentDistance3 returns the distance from p to the closest point
// on segment s, and that closest point.
func PointSegmentDistance3(p Point3, s Segment3Owner) (dist float64, closest Point3) {
	dir := s.P1.Sub(s.P0)
	lenSq := Dot3(dir, dir)
	if lenSq == 0 {
		return p.Distance(s.P0), s.P0
	}
	t := Dot3(p.Sub(s.P0), dir) / lenSq
	t = clamp01(t)
	closest = s.P0.Add(dir.Scale(t))
	return p.Distance(closest), closest
}

// PointSegmentDistance2 returns the distance from p to the closest point
// on segment s, and that closest point, in the plane.
func PointSegmentDistance2(p Point2, s Segment2Owner) (dist float64, closest Point2) {
	dir := s.P1.Sub(s.P0)
	lenSq := Dot2(dir, dir)
	if lenSq == 0 {
		return p.Distance(s.P0), s.P0
	}
	t := Dot2(p.Sub(s.P0), dir) / lenSq
	t = clamp01(t)
	closest = s.P0.Add(dir.Scale(t))
	return p.Distance(closest), closest
}

// PointTriangleDistance3 returns the distance from p to the closest point
// on triangle t (including its interior), and that closest point.
func PointTriangleDistance3(p Point3, t Triangle3Owner) (dist float64, closest Point3) {
	u, v, w := barycentric(t, p)
	if inTriangleBary(u, v, w) {
		plane, err := NewPlaneFromTriangle(t)
		if err == nil {
			d := plane.SignedDistance(p)
			proj := p.Sub(plane.Normal.Scale(d))
			return math.Abs(d), proj
		}
	}
	// Outside the triangle (or degenerate): fall back to the minimum
	// distance to the three boundary edges.
	edges := [3]Segment3Owner{{t.P0, t.P1}, {t.P1, t.P2}, {t.P2, t.P0}}
	best := math.Inf(1)
	for _, e := range edges {
		d, c := PointSegmentDistance3(p, e)
		if d < best {
			best = d
			closest = c
		}
	}
	return best, closest
}

// PointPlaneDistance returns the unsigned distance from p to the plane and
// the orthogonal projection of p onto the plane.
func PointPlaneDistance(p Point3, pl Plane) (dist float64, closest Point3) {
	d := pl.SignedDistance(p)
	return math.Abs(d), p.Sub(pl.Normal.Scale(d))
}

// PointSphereDistance returns the distance from p to the closest point on
// the sphere's surface.
func PointSphereDistance(p Point3, s Sphere) (dist float64, closest Point3) {
	v := p.Sub(s.Center)
	l := Length3(v)
	if l == 0 {
		return s.Radius, s.Center.Add(Point3{X: s.Radius})
	}
	closest = s.Center.Add(v.Scale(s.Radius / l))
	return math.Abs(l - s.Radius), closest
}

// PointTetrahedronDistance returns 0 and p itself if p is inside the
// tetrahedron (all four signed face volumes agree in sign), otherwise the
// minimum distance to the four triangular faces.
func PointTetrahedronDistance(p Point3, t Tetrahedron) (dist float64, closest Point3) {
	faces := [4][3]Point3{
		{t.P0, t.P1, t.P2},
		{t.P0, t.P1, t.P3},
		{t.P0, t.P2, t.P3},
		{t.P1, t.P2, t.P3},
	}
	opposite := [4]Point3{t.P3, t.P2, t.P1, t.P0}

	inside := true
	for i, f := range faces {
		vol := SignedTetrahedronVolume(f[0], f[1], f[2], p)
		volRef := SignedTetrahedronVolume(f[0], f[1], f[2], opposite[i])
		if vol == 0 {
			continue
		}
		if (vol > 0) != (volRef > 0) {
			inside = false
			break
		}
	}
	if inside {
		return 0, p
	}

	best := math.Inf(1)
	for _, f := range faces {
		d, c := PointTriangleDistance3(p, Triangle3Owner{f[0], f[1], f[2]})
		if d < best {
			best = d
			closest = c
		}
	}
	return best, closest
}
