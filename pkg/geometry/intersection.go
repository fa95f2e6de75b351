package geometry

import (
	"math"

	"github.com/geode-kernel/geode"
)

// IntersectionType classifies the outcome of an intersection query.
type IntersectionType int

const (
	// IntersectionNone means the two primitives do not meet.
	IntersectionNone IntersectionType = iota
	// IntersectionIntersect means a result was computed and passed its
	// sanity check.
	IntersectionIntersect
	// IntersectionParallel means the primitives are parallel (or
	// coincident) and no unique intersection point exists.
	IntersectionParallel
	// IntersectionIncorrect means the chosen numerical method produced an
	// algebraic solution that failed the point-in-primitive sanity check
	// (e.g. a segment/triangle intersection point outside the triangle).
	IntersectionIncorrect
)

// CorrectnessInfo carries the sanity-check pair the spec calls "first/
// second sanity pair": the computed point compared against a clamped or
// recomputed reference, letting callers see how far an Incorrect result
// missed by.
type CorrectnessInfo[T any] struct {
	First  T
	Second T
}

// IntersectionResult is the uniform return shape for every intersection
// query in this package.
type IntersectionResult[T any] struct {
	Type        IntersectionType
	Result      *T
	Correctness *CorrectnessInfo[T]
}

func none[T any]() IntersectionResult[T] { return IntersectionResult[T]{Type: IntersectionNone} }

func parallel[T any]() IntersectionResult[T] { return IntersectionResult[T]{Type: IntersectionParallel} }

func ok[T any](v T) IntersectionResult[T] {
	r := v
	return IntersectionResult[T]{Type: IntersectionIntersect, Result: &r}
}

func incorrect[T any](computed, reference T) IntersectionResult[T] {
	r := computed
	return IntersectionResult[T]{
		Type:        IntersectionIncorrect,
		Result:      &r,
		Correctness: &CorrectnessInfo[T]{First: computed, Second: reference},
	}
}

// LinePlaneIntersection intersects an infinite line with a plane.
func LinePlaneIntersection(l InfiniteLine3, p Plane) IntersectionResult[Point3] {
	denom := Dot3(l.Direction, p.Normal)
	if math.Abs(denom) <= geode.GlobalEpsilon {
		return parallel[Point3]()
	}
	t := Dot3(p.Origin.Sub(l.Origin), p.Normal) / denom
	pt := l.Origin.Add(l.Direction.Scale(t))
	return ok(pt)
}

// SegmentPlaneIntersection intersects a segment with a plane; the
// algebraic intersection point of the carrying line is sanity-checked
// against the segment's parametric range [0,1].
func SegmentPlaneIntersection(s Segment3Owner, p Plane) IntersectionResult[Point3] {
	dir := s.P1.Sub(s.P0)
	denom := Dot3(dir, p.Normal)
	if math.Abs(denom) <= geode.GlobalEpsilon {
		return parallel[Point3]()
	}
	t := Dot3(p.Origin.Sub(s.P0), p.Normal) / denom
	pt := s.P0.Add(dir.Scale(t))
	if t < -geode.GlobalEpsilon || t > 1+geode.GlobalEpsilon {
		clamped := t
		if clamped < 0 {
			clamped = 0
		} else if clamped > 1 {
			clamped = 1
		}
		ref := s.P0.Add(dir.Scale(clamped))
		return incorrect(pt, ref)
	}
	return ok(pt)
}

// SpherePoints is the result payload for line/segment-sphere
// intersections: zero, one (tangent) or two points.
type SpherePoints struct {
	Points []Point3
}

func lineSphereRoots(origin, dir Point3, sph Sphere) (t0, t1 float64, ok bool) {
	oc := origin.Sub(sph.Center)
	a := Dot3(dir, dir)
	b := 2 * Dot3(oc, dir)
	c := Dot3(oc, oc) - sph.Radius*sph.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	return (-b - sq) / (2 * a), (-b + sq) / (2 * a), true
}

// LineSphereIntersection intersects an infinite line with a sphere.
func LineSphereIntersection(l InfiniteLine3, sph Sphere) IntersectionResult[SpherePoints] {
	t0, t1, found := lineSphereRoots(l.Origin, l.Direction, sph)
	if !found {
		return none[SpherePoints]()
	}
	pts := []Point3{l.Origin.Add(l.Direction.Scale(t0))}
	if math.Abs(t1-t0) > geode.GlobalEpsilon {
		pts = append(pts, l.Origin.Add(l.Direction.Scale(t1)))
	}
	return ok(SpherePoints{Points: pts})
}

// SegmentSphereIntersection intersects a segment with a sphere, keeping
// only roots within the segment's parametric range.
func SegmentSphereIntersection(s Segment3Owner, sph Sphere) IntersectionResult[SpherePoints] {
	dir := s.P1.Sub(s.P0)
	t0, t1, found := lineSphereRoots(s.P0, dir, sph)
	if !found {
		return none[SpherePoints]()
	}
	var pts []Point3
	for _, t := range []float64{t0, t1} {
		if t >= -geode.GlobalEpsilon && t <= 1+geode.GlobalEpsilon {
			pts = append(pts, s.P0.Add(dir.Scale(t)))
		}
	}
	if len(pts) == 0 {
		return none[SpherePoints]()
	}
	if len(pts) == 2 && pts[0].InexactEqual(pts[1]) {
		pts = pts[:1]
	}
	return ok(SpherePoints{Points: pts})
}

// barycentric returns the barycentric weights (u, v, w) of p projected
// onto triangle t's plane; a degenerate triangle yields (-1, -1, -1).
func barycentric(t Triangle3Owner, p Point3) (u, v, w float64) {
	v0 := t.P1.Sub(t.P0)
	v1 := t.P2.Sub(t.P0)
	v2 := p.Sub(t.P0)
	d00 := Dot3(v0, v0)
	d01 := Dot3(v0, v1)
	d11 := Dot3(v1, v1)
	d20 := Dot3(v2, v0)
	d21 := Dot3(v2, v1)
	denom := d00*d11 - d01*d01
	if denom == 0 {
		return -1, -1, -1
	}
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return u, v, w
}

func inTriangleBary(u, v, w float64) bool {
	const e = 1e-9
	return u >= -e && v >= -e && w >= -e
}

// LineTriangleIntersection intersects an infinite line with the plane
// carrying a triangle, then sanity-checks the point against the triangle
// using barycentric coordinates.
func LineTriangleIntersection(l InfiniteLine3, t Triangle3Owner) IntersectionResult[Point3] {
	plane, err := NewPlaneFromTriangle(t)
	if err != nil {
		return none[Point3]()
	}
	res := LinePlaneIntersection(l, plane)
	if res.Type != IntersectionIntersect {
		return IntersectionResult[Point3]{Type: res.Type}
	}
	u, v, w := barycentric(t, *res.Result)
	if inTriangleBary(u, v, w) {
		return ok(*res.Result)
	}
	clampedU, clampedV, clampedW := clampBary(u, v, w)
	ref := t.P0.Scale(clampedU).Add(t.P1.Scale(clampedV)).Add(t.P2.Scale(clampedW))
	return incorrect(*res.Result, ref)
}

// SegmentTriangleIntersection intersects a segment with a triangle,
// sanity-checking both the segment parametric range and the triangle
// barycentric range.
func SegmentTriangleIntersection(s Segment3Owner, t Triangle3Owner) IntersectionResult[Point3] {
	plane, err := NewPlaneFromTriangle(t)
	if err != nil {
		return none[Point3]()
	}
	res := SegmentPlaneIntersection(s, plane)
	if res.Type == IntersectionParallel || res.Type == IntersectionNone {
		return IntersectionResult[Point3]{Type: res.Type}
	}
	u, v, w := barycentric(t, *res.Result)
	if res.Type == IntersectionIntersect && inTriangleBary(u, v, w) {
		return ok(*res.Result)
	}
	clampedU, clampedV, clampedW := clampBary(u, v, w)
	ref := t.P0.Scale(clampedU).Add(t.P1.Scale(clampedV)).Add(t.P2.Scale(clampedW))
	return incorrect(*res.Result, ref)
}

func clampBary(u, v, w float64) (float64, float64, float64) {
	if u < 0 {
		u = 0
	}
	if v < 0 {
		v = 0
	}
	if w < 0 {
		w = 0
	}
	sum := u + v + w
	if sum == 0 {
		return 1, 0, 0
	}
	return u / sum, v / sum, w / sum
}

// Line2Line2Intersection intersects two 2D infinite lines.
func Line2Line2Intersection(a, b InfiniteLine2) IntersectionResult[Point2] {
	denom := Cross2(a.Direction, b.Direction)
	if math.Abs(denom) <= geode.GlobalEpsilon {
		return parallel[Point2]()
	}
	d := b.Origin.Sub(a.Origin)
	t := Cross2(d, b.Direction) / denom
	return ok(a.Origin.Add(a.Direction.Scale(t)))
}

// Segment2Segment2Intersection intersects two 2D segments, sanity-checking
// both parametric ranges against [0,1].
func Segment2Segment2Intersection(a, b Segment2Owner) IntersectionResult[Point2] {
	d1 := a.P1.Sub(a.P0)
	d2 := b.P1.Sub(b.P0)
	denom := Cross2(d1, d2)
	if math.Abs(denom) <= geode.GlobalEpsilon {
		return parallel[Point2]()
	}
	diff := b.P0.Sub(a.P0)
	t := Cross2(diff, d2) / denom
	u := Cross2(diff, d1) / denom
	pt := a.P0.Add(d1.Scale(t))
	if t < -geode.GlobalEpsilon || t > 1+geode.GlobalEpsilon || u < -geode.GlobalEpsilon || u > 1+geode.GlobalEpsilon {
		ct, cu := clamp01(t), clamp01(u)
		ref := a.P0.Add(d1.Scale(ct))
		_ = cu
		return incorrect(pt, ref)
	}
	return ok(pt)
}

// Segment2Line2Intersection intersects a 2D segment with an infinite line,
// sanity-checking the segment's parametric range.
func Segment2Line2Intersection(s Segment2Owner, l InfiniteLine2) IntersectionResult[Point2] {
	d1 := s.P1.Sub(s.P0)
	denom := Cross2(d1, l.Direction)
	if math.Abs(denom) <= geode.GlobalEpsilon {
		return parallel[Point2]()
	}
	diff := l.Origin.Sub(s.P0)
	t := Cross2(diff, l.Direction) / denom
	pt := s.P0.Add(d1.Scale(t))
	if t < -geode.GlobalEpsilon || t > 1+geode.GlobalEpsilon {
		ref := s.P0.Add(d1.Scale(clamp01(t)))
		return incorrect(pt, ref)
	}
	return ok(pt)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// CylinderPoints is the result payload for line/segment-cylinder
// intersections.
type CylinderPoints struct {
	Points []Point3
}

func lineCylinderRoots(origin, dir Point3, cyl Cylinder) (t0, t1 float64, found bool) {
	axisDir := cyl.Axis.Direction
	dp := dir.Sub(axisDir.Scale(Dot3(dir, axisDir)))
	oc := origin.Sub(cyl.Axis.Origin)
	ocp := oc.Sub(axisDir.Scale(Dot3(oc, axisDir)))

	a := Dot3(dp, dp)
	if a <= geode.GlobalEpsilon*geode.GlobalEpsilon {
		return 0, 0, false // direction parallel to axis: no finite intersection (or infinite, treated as none)
	}
	b := 2 * Dot3(dp, ocp)
	c := Dot3(ocp, ocp) - cyl.Radius*cyl.Radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	return (-b - sq) / (2 * a), (-b + sq) / (2 * a), true
}

// LineCylinderIntersection intersects an infinite line with an infinite
// circular cylinder.
func LineCylinderIntersection(l InfiniteLine3, cyl Cylinder) IntersectionResult[CylinderPoints] {
	t0, t1, found := lineCylinderRoots(l.Origin, l.Direction, cyl)
	if !found {
		return none[CylinderPoints]()
	}
	pts := []Point3{l.Origin.Add(l.Direction.Scale(t0))}
	if math.Abs(t1-t0) > geode.GlobalEpsilon {
		pts = append(pts, l.Origin.Add(l.Direction.Scale(t1)))
	}
	return ok(CylinderPoints{Points: pts})
}

// SegmentCylinderIntersection intersects a segment with an infinite
// circular cylinder, keeping only roots within the segment's parametric
// range.
func SegmentCylinderIntersection(s Segment3Owner, cyl Cylinder) IntersectionResult[CylinderPoints] {
	dir := s.P1.Sub(s.P0)
	t0, t1, found := lineCylinderRoots(s.P0, dir, cyl)
	if !found {
		return none[CylinderPoints]()
	}
	var pts []Point3
	for _, t := range []float64{t0, t1} {
		if t >= -geode.GlobalEpsilon && t <= 1+geode.GlobalEpsilon {
			pts = append(pts, s.P0.Add(dir.Scale(t)))
		}
	}
	if len(pts) == 0 {
		return none[CylinderPoints]()
	}
	return ok(CylinderPoints{Points: pts})
}

// PlanePlaneIntersection intersects two planes, returning the infinite
// line of intersection. Parallel (or coincident) planes report
// IntersectionParallel.
func PlanePlaneIntersection(a, b Plane) IntersectionResult[InfiniteLine3] {
	dir := Cross3(a.Normal, b.Normal)
	l := Length3(dir)
	if l <= geode.GlobalEpsilon {
		return parallel[InfiniteLine3]()
	}
	dir = dir.Div(l)

	// Solve for a point on both planes using the standard two-plane
	// linear system, choosing the component of dir with greatest
	// magnitude to avoid a near-singular 2x2 solve.
	n1, n2 := a.Normal, b.Normal
	d1 := Dot3(n1, a.Origin)
	d2 := Dot3(n2, b.Origin)

	absX, absY, absZ := math.Abs(dir.X), math.Abs(dir.Y), math.Abs(dir.Z)
	var point Point3
	switch {
	case absZ >= absX && absZ >= absY:
		m := Matrix2{Row0: Vector2{n1.X, n1.Y}, Row1: Vector2{n2.X, n2.Y}}
		inv, err := m.Inverse()
		if err != nil {
			return parallel[InfiniteLine3]()
		}
		sol := inv.MulVector(Vector2{d1, d2})
		point = Point3{X: sol.X, Y: sol.Y, Z: 0}
	case absY >= absX:
		m := Matrix2{Row0: Vector2{n1.X, n1.Z}, Row1: Vector2{n2.X, n2.Z}}
		inv, err := m.Inverse()
		if err != nil {
			return parallel[InfiniteLine3]()
		}
		sol := inv.MulVector(Vector2{d1, d2})
		point = Point3{X: sol.X, Y: 0, Z: sol.Y}
	default:
		m := Matrix2{Row0: Vector2{n1.Y, n1.Z}, Row1: Vector2{n2.Y, n2.Z}}
		inv, err := m.Inverse()
		if err != nil {
			return parallel[InfiniteLine3]()
		}
		sol := inv.MulVector(Vector2{d1, d2})
		point = Point3{X: 0, Y: sol.X, Z: sol.Y}
	}
	return ok(InfiniteLine3{Origin: point, Direction: dir})
}

// PlaneCircleIntersection intersects a circle's supporting plane with
// another plane: the two planes meet in a line (or are parallel), and the
// result is Intersect iff that line passes within Radius of Center.
func PlaneCircleIntersection(p Plane, c Circle) IntersectionResult[SpherePoints] {
	lineRes := PlanePlaneIntersection(c.Plane, p)
	if lineRes.Type != IntersectionIntersect {
		return IntersectionResult[SpherePoints]{Type: lineRes.Type}
	}
	line := *lineRes.Result
	v := c.Center.Sub(line.Origin)
	proj := Dot3(v, line.Direction)
	closest := line.Origin.Add(line.Direction.Scale(proj))
	d := closest.Distance(c.Center)
	if d > c.Radius+geode.GlobalEpsilon {
		return none[SpherePoints]()
	}
	half := math.Sqrt(math.Max(0, c.Radius*c.Radius-d*d))
	pts := []Point3{closest.Sub(line.Direction.Scale(half)), closest.Add(line.Direction.Scale(half))}
	if half <= geode.GlobalEpsilon {
		pts = pts[:1]
	}
	return ok(SpherePoints{Points: pts})
}

// TriangleCircleIntersection intersects a triangle with a circle: the
// triangle's plane is intersected with the circle, and of the resulting
// chord endpoints only those lying inside the triangle are kept. The chord
// is not clipped against the triangle's edges; if no endpoint lies inside
// the triangle the result is IntersectionIncorrect.
func TriangleCircleIntersection(t Triangle3Owner, c Circle) IntersectionResult[SpherePoints] {
	trianglePlane, err := NewPlaneFromTriangle(t)
	if err != nil {
		return none[SpherePoints]()
	}
	chord := PlaneCircleIntersection(trianglePlane, c)
	if chord.Type != IntersectionIntersect {
		return IntersectionResult[SpherePoints]{Type: chord.Type}
	}
	var inside []Point3
	for _, p := range chord.Result.Points {
		u, v, w := barycentric(t, p)
		if inTriangleBary(u, v, w) {
			inside = append(inside, p)
		}
	}
	if len(inside) == 0 {
		return incorrect(*chord.Result, SpherePoints{})
	}
	return ok(SpherePoints{Points: inside})
}
