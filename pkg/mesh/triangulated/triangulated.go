// Package triangulated specializes pkg/mesh's SurfaceMesh to fixed
// arity-3 polygons, exposing an O(1) Triangle(i) view the way the spec's
// §4.E specializations call out ("fix arity and expose direct
// accessors"), grounded on original_source's geode_triangulated_surface.cpp.
package triangulated

import (
	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/mesh"
)

// Surface3 is a SurfaceMesh3 in which every polygon is a triangle.
type Surface3 struct {
	*mesh.SurfaceMesh3
}

// NewSurface3 creates an empty triangulated surface.
func NewSurface3() *Surface3 {
	return &Surface3{SurfaceMesh3: mesh.NewSurfaceMesh3()}
}

// CreateTriangle appends a triangle (v0, v1, v2) and returns its index.
func (s *Surface3) CreateTriangle(v0, v1, v2 basic.Index) (basic.Index, error) {
	return s.CreatePolygon([]basic.Index{v0, v1, v2})
}

// Triangle returns the geometric triangle backing polygon t.
func (s *Surface3) Triangle(t basic.Index) (geometry.Triangle3Owner, error) {
	if s.NbPolygonVertices(t) != 3 {
		return geometry.Triangle3Owner{}, errors.Errorf("triangulated: polygon %d is not a triangle", t)
	}
	return geometry.Triangle3Owner{
		P0: s.Point(s.PolygonVertex(t, 0)),
		P1: s.Point(s.PolygonVertex(t, 1)),
		P2: s.Point(s.PolygonVertex(t, 2)),
	}, nil
}

// TriangleArea returns the area of triangle t.
func (s *Surface3) TriangleArea(t basic.Index) float64 {
	tri, err := s.Triangle(t)
	if err != nil {
		return 0
	}
	return geometry.TriangleArea3(tri.P0, tri.P1, tri.P2)
}

// Surface2 is the 2D counterpart of Surface3.
type Surface2 struct {
	*mesh.SurfaceMesh2
}

// NewSurface2 creates an empty triangulated 2D surface.
func NewSurface2() *Surface2 {
	return &Surface2{SurfaceMesh2: mesh.NewSurfaceMesh2()}
}

// CreateTriangle appends a triangle (v0, v1, v2) and returns its index.
func (s *Surface2) CreateTriangle(v0, v1, v2 basic.Index) (basic.Index, error) {
	return s.CreatePolygon([]basic.Index{v0, v1, v2})
}

// TriangleArea returns the unsigned area of triangle t.
func (s *Surface2) TriangleArea(t basic.Index) float64 {
	if s.NbPolygonVertices(t) != 3 {
		return 0
	}
	a := s.Point(s.PolygonVertex(t, 0))
	b := s.Point(s.PolygonVertex(t, 1))
	c := s.Point(s.PolygonVertex(t, 2))
	return geometry.TriangleArea2(a, b, c)
}
