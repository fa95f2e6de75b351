package geometry

import (
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool { return math.Abs(a-b) <= eps }

func TestPointArithmetic(t *testing.T) {
	p := Point3{1, 2, 3}
	q := Point3{4, 5, 6}
	if got := p.Add(q); got != (Point3{5, 7, 9}) {
		t.Fatalf("Add: got %v", got)
	}
	if got := q.Sub(p); got != (Point3{3, 3, 3}) {
		t.Fatalf("Sub: got %v", got)
	}
	if got := p.Scale(2); got != (Point3{2, 4, 6}) {
		t.Fatalf("Scale: got %v", got)
	}
}

func TestPointInexactEqual(t *testing.T) {
	p := Point3{0, 0, 0}
	q := Point3{1e-10, 0, 0}
	if !p.InexactEqual(q) {
		t.Fatalf("expected points within epsilon to be inexact-equal")
	}
	r := Point3{1, 0, 0}
	if p.InexactEqual(r) {
		t.Fatalf("expected distant points to not be inexact-equal")
	}
}

func TestVectorOps(t *testing.T) {
	v := Vector3{3, 4, 0}
	if got := Length3(v); got != 5 {
		t.Fatalf("Length3: got %v", got)
	}
	n := Normalize3(v)
	if !almostEqual(Length3(n), 1, 1e-12) {
		t.Fatalf("Normalize3 did not produce unit length: %v", Length3(n))
	}
	x := Vector3{1, 0, 0}
	y := Vector3{0, 1, 0}
	z := Cross3(x, y)
	if z != (Vector3{0, 0, 1}) {
		t.Fatalf("Cross3: got %v", z)
	}
}

func TestMatrix3DeterminantAndInverse(t *testing.T) {
	m := Matrix3{
		Row0: Vector3{2, 0, 0},
		Row1: Vector3{0, 2, 0},
		Row2: Vector3{0, 0, 2},
	}
	if got := m.Determinant(); got != 8 {
		t.Fatalf("Determinant: got %v", got)
	}
	inv, err := m.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := m.Mul(inv)
	want := Matrix3{Row0: Vector3{1, 0, 0}, Row1: Vector3{0, 1, 0}, Row2: Vector3{0, 0, 1}}
	if !almostEqual(id.Row0.X, want.Row0.X, 1e-9) || !almostEqual(id.Row1.Y, want.Row1.Y, 1e-9) || !almostEqual(id.Row2.Z, want.Row2.Z, 1e-9) {
		t.Fatalf("M*M^-1 != I: got %+v", id)
	}
}

func TestMatrix3SingularFails(t *testing.T) {
	m := Matrix3{} // all zero: determinant 0
	_, err := m.Inverse()
	if err != ErrSingularMatrix {
		t.Fatalf("expected ErrSingularMatrix, got %v", err)
	}
}

func TestSignedTetrahedronVolume(t *testing.T) {
	a := Point3{0, 0, 0}
	b := Point3{1, 0, 0}
	c := Point3{0, 1, 0}
	d := Point3{0, 0, 1}
	vol := SignedTetrahedronVolume(a, b, c, d)
	if !almostEqual(vol, 1.0/6.0, 1e-12) {
		t.Fatalf("expected volume 1/6, got %v", vol)
	}
	// Swapping two vertices flips orientation.
	neg := SignedTetrahedronVolume(a, c, b, d)
	if !almostEqual(neg, -1.0/6.0, 1e-12) {
		t.Fatalf("expected volume -1/6, got %v", neg)
	}
}

func TestSignedTriangleArea2(t *testing.T) {
	a := Point2{0, 0}
	b := Point2{1, 0}
	c := Point2{0, 1}
	area := SignedTriangleArea2(a, b, c)
	if !almostEqual(area, 0.5, 1e-12) {
		t.Fatalf("expected CCW area 0.5, got %v", area)
	}
	areaCW := SignedTriangleArea2(a, c, b)
	if !almostEqual(areaCW, -0.5, 1e-12) {
		t.Fatalf("expected CW area -0.5, got %v", areaCW)
	}
}

func TestLinePlaneIntersection(t *testing.T) {
	line := InfiniteLine3{Origin: Point3{0, 0, -5}, Direction: Vector3{0, 0, 1}}
	plane := Plane{Origin: Point3{0, 0, 0}, Normal: Vector3{0, 0, 1}}
	res := LinePlaneIntersection(line, plane)
	if res.Type != IntersectionIntersect {
		t.Fatalf("expected intersect, got %v", res.Type)
	}
	if !res.Result.InexactEqual(Point3{0, 0, 0}) {
		t.Fatalf("expected origin, got %v", *res.Result)
	}
}

func TestLinePlaneParallel(t *testing.T) {
	line := InfiniteLine3{Origin: Point3{0, 0, 1}, Direction: Vector3{1, 0, 0}}
	plane := Plane{Origin: Point3{0, 0, 0}, Normal: Vector3{0, 0, 1}}
	res := LinePlaneIntersection(line, plane)
	if res.Type != IntersectionParallel {
		t.Fatalf("expected parallel, got %v", res.Type)
	}
}

func TestSegmentTriangleIntersectionInside(t *testing.T) {
	tri := Triangle3Owner{Point3{0, 0, 0}, Point3{2, 0, 0}, Point3{0, 2, 0}}
	seg := Segment3Owner{Point3{0.3, 0.3, -1}, Point3{0.3, 0.3, 1}}
	res := SegmentTriangleIntersection(seg, tri)
	if res.Type != IntersectionIntersect {
		t.Fatalf("expected intersect, got %v", res.Type)
	}
	if !res.Result.InexactEqual(Point3{0.3, 0.3, 0}) {
		t.Fatalf("unexpected point %v", *res.Result)
	}
}

func TestSegmentTriangleIntersectionOutsideTriangleIsIncorrect(t *testing.T) {
	tri := Triangle3Owner{Point3{0, 0, 0}, Point3{1, 0, 0}, Point3{0, 1, 0}}
	seg := Segment3Owner{Point3{5, 5, -1}, Point3{5, 5, 1}}
	res := SegmentTriangleIntersection(seg, tri)
	if res.Type != IntersectionIncorrect {
		t.Fatalf("expected incorrect, got %v", res.Type)
	}
}

func TestSegment2Segment2Intersection(t *testing.T) {
	a := Segment2Owner{Point2{0, 0}, Point2{2, 2}}
	b := Segment2Owner{Point2{0, 2}, Point2{2, 0}}
	res := Segment2Segment2Intersection(a, b)
	if res.Type != IntersectionIntersect {
		t.Fatalf("expected intersect, got %v", res.Type)
	}
	if !res.Result.InexactEqual(Point2{1, 1}) {
		t.Fatalf("expected (1,1), got %v", *res.Result)
	}
}

func TestLineSphereIntersectionTwoPoints(t *testing.T) {
	line := InfiniteLine3{Origin: Point3{-5, 0, 0}, Direction: Vector3{1, 0, 0}}
	sph := Sphere{Center: Point3{0, 0, 0}, Radius: 2}
	res := LineSphereIntersection(line, sph)
	if res.Type != IntersectionIntersect {
		t.Fatalf("expected intersect, got %v", res.Type)
	}
	if len(res.Result.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(res.Result.Points))
	}
}

func TestPointSegmentDistance3(t *testing.T) {
	s := Segment3Owner{Point3{0, 0, 0}, Point3{10, 0, 0}}
	d, c := PointSegmentDistance3(Point3{5, 3, 0}, s)
	if !almostEqual(d, 3, 1e-12) {
		t.Fatalf("expected distance 3, got %v", d)
	}
	if !c.InexactEqual(Point3{5, 0, 0}) {
		t.Fatalf("expected closest point (5,0,0), got %v", c)
	}
}

func TestPlanePlaneIntersection(t *testing.T) {
	a := Plane{Origin: Point3{0, 0, 0}, Normal: Vector3{0, 0, 1}}
	b := Plane{Origin: Point3{0, 0, 0}, Normal: Vector3{1, 0, 0}}
	res := PlanePlaneIntersection(a, b)
	if res.Type != IntersectionIntersect {
		t.Fatalf("expected intersect, got %v", res.Type)
	}
	// The intersection line should run along Y.
	if math.Abs(res.Result.Direction.X) > 1e-9 || math.Abs(res.Result.Direction.Z) > 1e-9 {
		t.Fatalf("expected direction along Y, got %v", res.Result.Direction)
	}
}

func TestPlanePlaneParallel(t *testing.T) {
	a := Plane{Origin: Point3{0, 0, 0}, Normal: Vector3{0, 0, 1}}
	b := Plane{Origin: Point3{0, 0, 5}, Normal: Vector3{0, 0, 1}}
	res := PlanePlaneIntersection(a, b)
	if res.Type != IntersectionParallel {
		t.Fatalf("expected parallel, got %v", res.Type)
	}
}

func TestRadialSortThreeAround120Degrees(t *testing.T) {
	// Three points at 0, 120, 240 degrees around the Z axis.
	pts := []Point3{
		{1, 0, 0},
		{math.Cos(4 * math.Pi / 3), math.Sin(4 * math.Pi / 3), 0}, // 240deg
		{math.Cos(2 * math.Pi / 3), math.Sin(2 * math.Pi / 3), 0}, // 120deg
	}
	order := RadialSort(Point3{0, 0, 0}, Vector3{0, 0, 1}, pts)
	// Expect angular order 0 (idx0), 120 (idx2), 240 (idx1).
	want := []int{0, 2, 1}
	for i, v := range want {
		if order[i] != v {
			t.Fatalf("position %d: got %d want %d (order=%v)", i, order[i], v, order)
		}
	}
}
