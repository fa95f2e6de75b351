// Package geometry implements the value types and the distance,
// intersection and mensuration primitives the mesh and model layers need:
// Point2/Point3, Vector2/Vector3, Segment, Triangle, Tetrahedron, Plane,
// Sphere, Circle, Cylinder and SquareMatrix2/3.
//
// Go has no const-generic array length, so the spec's Point<D> template is
// expressed as two concrete types, Point2 and Point3, following the
// teacher's own Vector3 value type (pkg/graph/types.go) rather than a
// generic [D]float64 abstraction.
package geometry

import (
	"math"

	"github.com/geode-kernel/geode"
)

// Point2 is a point (or, interchangeably, a free vector) in the plane.
type Point2 struct {
	X, Y float64
}

// Point3 is a point (or free vector) in space.
type Point3 struct {
	X, Y, Z float64
}

// Add returns p+q.
func (p Point2) Add(q Point2) Point2 { return Point2{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point2) Sub(q Point2) Point2 { return Point2{p.X - q.X, p.Y - q.Y} }

// Scale returns p*s.
func (p Point2) Scale(s float64) Point2 { return Point2{p.X * s, p.Y * s} }

// Div returns p/s.
func (p Point2) Div(s float64) Point2 { return Point2{p.X / s, p.Y / s} }

// Coord returns the i-th coordinate (0=X, 1=Y).
func (p Point2) Coord(i int) float64 {
	if i == 0 {
		return p.X
	}
	return p.Y
}

// Equal is bitwise equality on coordinates.
func (p Point2) Equal(q Point2) bool { return p.X == q.X && p.Y == q.Y }

// Less is the lexicographic order (X, then Y).
func (p Point2) Less(q Point2) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// SquaredDistance returns the squared Euclidean distance to q.
func (p Point2) SquaredDistance(q Point2) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance to q.
func (p Point2) Distance(q Point2) float64 { return math.Sqrt(p.SquaredDistance(q)) }

// InexactEqual reports whether p and q are within GLOBAL_EPSILON of each
// other, compared on squared distance per the spec's "inexact equality
// (squared distance <= GLOBAL_EPSILON^2)".
func (p Point2) InexactEqual(q Point2) bool {
	return p.SquaredDistance(q) <= geode.GlobalEpsilon*geode.GlobalEpsilon
}

// Add returns p+q.
func (p Point3) Add(q Point3) Point3 { return Point3{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }

// Sub returns p-q.
func (p Point3) Sub(q Point3) Point3 { return Point3{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

// Scale returns p*s.
func (p Point3) Scale(s float64) Point3 { return Point3{p.X * s, p.Y * s, p.Z * s} }

// Div returns p/s.
func (p Point3) Div(s float64) Point3 { return Point3{p.X / s, p.Y / s, p.Z / s} }

// Coord returns the i-th coordinate (0=X, 1=Y, 2=Z).
func (p Point3) Coord(i int) float64 {
	switch i {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// Equal is bitwise equality on coordinates.
func (p Point3) Equal(q Point3) bool { return p.X == q.X && p.Y == q.Y && p.Z == q.Z }

// Less is the lexicographic order (X, then Y, then Z).
func (p Point3) Less(q Point3) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

// SquaredDistance returns the squared Euclidean distance to q.
func (p Point3) SquaredDistance(q Point3) float64 {
	dx, dy, dz := p.X-q.X, p.Y-q.Y, p.Z-q.Z
	return dx*dx + dy*dy + dz*dz
}

// Distance returns the Euclidean distance to q.
func (p Point3) Distance(q Point3) float64 { return math.Sqrt(p.SquaredDistance(q)) }

// InexactEqual reports whether p and q are within GLOBAL_EPSILON of each
// other (squared-distance comparison).
func (p Point3) InexactEqual(q Point3) bool {
	return p.SquaredDistance(q) <= geode.GlobalEpsilon*geode.GlobalEpsilon
}

// Barycenter2 returns the centroid of a non-empty set of 2D points.
func Barycenter2(pts []Point2) Point2 {
	var sum Point2
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(pts)))
}

// Barycenter3 returns the centroid of a non-empty set of 3D points.
func Barycenter3(pts []Point3) Point3 {
	var sum Point3
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(pts)))
}
