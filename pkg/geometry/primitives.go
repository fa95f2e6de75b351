package geometry

import (
	"math"

	"github.com/geode-kernel/geode"
	"github.com/pkg/errors"
)

// ErrDegenerateGeometry is returned when a primitive is constructed from
// degenerate input (a segment shorter than GLOBAL_EPSILON, a zero-area
// triangle where one is required), per §7. A singular matrix is reported
// as ErrSingularMatrix instead.
var ErrDegenerateGeometry = errors.New("geometry: degenerate geometry")

// Segment2Owner owns its two endpoints. The "Owner" vs. borrowing split
// mirrors the spec's OwnerX vs. X variants: Owner types copy their points
// in, non-owning *Ref types hold pointers into externally-owned storage so
// hot mesh-query loops can build primitives without allocation or copy.
type Segment2Owner struct{ P0, P1 Point2 }

// Segment2Ref borrows its endpoints from external storage (e.g. a mesh's
// point array) without copying.
type Segment2Ref struct{ P0, P1 *Point2 }

// Vertex returns the i-th endpoint (0 or 1).
func (s Segment2Owner) Vertex(i int) Point2 {
	if i == 0 {
		return s.P0
	}
	return s.P1
}

// Vertex returns the i-th endpoint (0 or 1).
func (s Segment2Ref) Vertex(i int) Point2 {
	if i == 0 {
		return *s.P0
	}
	return *s.P1
}

// Length returns the Euclidean length of the segment.
func (s Segment2Owner) Length() float64 { return s.P0.Distance(s.P1) }

// Direction returns the normalized direction from P0 to P1.
func (s Segment2Owner) Direction() Vector2 { return Normalize2(s.P1.Sub(s.P0)) }

// Segment3Owner owns its two endpoints in 3D.
type Segment3Owner struct{ P0, P1 Point3 }

// Segment3Ref borrows its endpoints from external storage.
type Segment3Ref struct{ P0, P1 *Point3 }

// Vertex returns the i-th endpoint (0 or 1).
func (s Segment3Owner) Vertex(i int) Point3 {
	if i == 0 {
		return s.P0
	}
	return s.P1
}

// Vertex returns the i-th endpoint (0 or 1).
func (s Segment3Ref) Vertex(i int) Point3 {
	if i == 0 {
		return *s.P0
	}
	return *s.P1
}

// Length returns the Euclidean length of the segment.
func (s Segment3Owner) Length() float64 { return s.P0.Distance(s.P1) }

// Direction returns the normalized direction from P0 to P1.
func (s Segment3Owner) Direction() Vector3 { return Normalize3(s.P1.Sub(s.P0)) }

// InfiniteLine2 is a 2D line given by an origin and a normalized direction.
// Construction asserts the generating segment had length > GLOBAL_EPSILON,
// per §3: "lines store a normalized direction and assert segment length >
// GLOBAL_EPSILON".
type InfiniteLine2 struct {
	Origin    Point2
	Direction Vector2 // always unit length
}

// NewInfiniteLine2FromSegment builds the line through a segment's
// endpoints, normalizing the direction. Returns ErrDegenerateGeometry if
// the segment is shorter than GLOBAL_EPSILON.
func NewInfiniteLine2FromSegment(s Segment2Owner) (InfiniteLine2, error) {
	if s.Length() <= geode.GlobalEpsilon {
		return InfiniteLine2{}, errors.Wrap(ErrDegenerateGeometry, "segment length below GLOBAL_EPSILON")
	}
	return InfiniteLine2{Origin: s.P0, Direction: s.Direction()}, nil
}

// InfiniteLine3 is a 3D line given by an origin and a normalized direction.
type InfiniteLine3 struct {
	Origin    Point3
	Direction Vector3 // always unit length
}

// NewInfiniteLine3FromSegment builds the line through a segment's
// endpoints, normalizing the direction.
func NewInfiniteLine3FromSegment(s Segment3Owner) (InfiniteLine3, error) {
	if s.Length() <= geode.GlobalEpsilon {
		return InfiniteLine3{}, errors.Wrap(ErrDegenerateGeometry, "segment length below GLOBAL_EPSILON")
	}
	return InfiniteLine3{Origin: s.P0, Direction: s.Direction()}, nil
}

// Ray3 is a 3D half-line: an origin plus a normalized direction, valid
// only for non-negative parameter values.
type Ray3 struct {
	Origin    Point3
	Direction Vector3
}

// PointAt returns Origin + t*Direction.
func (r Ray3) PointAt(t float64) Point3 { return r.Origin.Add(r.Direction.Scale(t)) }

// Triangle2Owner owns its three vertices in the plane.
type Triangle2Owner struct{ P0, P1, P2 Point2 }

// Vertex returns the i-th vertex (0, 1 or 2).
func (t Triangle2Owner) Vertex(i int) Point2 {
	switch i {
	case 0:
		return t.P0
	case 1:
		return t.P1
	default:
		return t.P2
	}
}

// Triangle3Owner owns its three vertices in space.
type Triangle3Owner struct{ P0, P1, P2 Point3 }

// Vertex returns the i-th vertex (0, 1 or 2).
func (t Triangle3Owner) Vertex(i int) Point3 {
	switch i {
	case 0:
		return t.P0
	case 1:
		return t.P1
	default:
		return t.P2
	}
}

// Normal returns the (unnormalized) face normal (P1-P0) x (P2-P0).
func (t Triangle3Owner) Normal() Vector3 {
	return Cross3(t.P1.Sub(t.P0), t.P2.Sub(t.P0))
}

// Tetrahedron owns its four vertices.
type Tetrahedron struct{ P0, P1, P2, P3 Point3 }

// Vertex returns the i-th vertex (0..3).
func (t Tetrahedron) Vertex(i int) Point3 {
	switch i {
	case 0:
		return t.P0
	case 1:
		return t.P1
	case 2:
		return t.P2
	default:
		return t.P3
	}
}

// Plane is given by a point on the plane and a unit normal.
type Plane struct {
	Origin Point3
	Normal Vector3 // unit length
}

// NewPlaneFromTriangle builds a plane through a triangle's vertices. The
// normal is normalized; a zero-area triangle yields ErrDegenerateGeometry.
func NewPlaneFromTriangle(t Triangle3Owner) (Plane, error) {
	n := t.Normal()
	l := Length3(n)
	if l <= geode.GlobalEpsilon {
		return Plane{}, errors.Wrap(ErrDegenerateGeometry, "zero-area triangle cannot define a plane")
	}
	return Plane{Origin: t.P0, Normal: n.Div(l)}, nil
}

// SignedDistance returns the signed distance from p to the plane, positive
// on the side the normal points to.
func (pl Plane) SignedDistance(p Point3) float64 {
	return Dot3(p.Sub(pl.Origin), pl.Normal)
}

// Sphere is given by a center and a radius.
type Sphere struct {
	Center Point3
	Radius float64
}

// Circle is a planar circle: a plane plus a center (on that plane) and a
// radius.
type Circle struct {
	Plane  Plane
	Center Point3
	Radius float64
}

// Cylinder is an infinite circular cylinder given by its axis (origin +
// direction) and radius.
type Cylinder struct {
	Axis   InfiniteLine3
	Radius float64
}

// DistanceToAxis returns the distance from p to the cylinder's axis line.
func (c Cylinder) DistanceToAxis(p Point3) float64 {
	v := p.Sub(c.Axis.Origin)
	proj := Dot3(v, c.Axis.Direction)
	perp := v.Sub(c.Axis.Direction.Scale(proj))
	return Length3(perp)
}

// roundTiny clamps values that are within GLOBAL_EPSILON of zero to exactly
// zero. Nothing in this package calls it.
func roundTiny(x float64) float64 {
	if math.Abs(x) < geode.GlobalEpsilon {
		return 0
	}
	return x
}
