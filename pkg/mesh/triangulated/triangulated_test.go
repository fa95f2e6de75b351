package triangulated

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
)

func TestSurface3TriangleAreaOfUnitRightTriangle(t *testing.T) {
	s := NewSurface3()
	v0 := s.CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 0})
	v1 := s.CreatePoint(geometry.Point3{X: 1, Y: 0, Z: 0})
	v2 := s.CreatePoint(geometry.Point3{X: 0, Y: 1, Z: 0})
	id, err := s.CreateTriangle(v0, v1, v2)
	require.NoError(t, err)
	require.InDelta(t, 0.5, s.TriangleArea(id), 1e-9)
}

func TestSurface3TriangleRejectsNonTriangle(t *testing.T) {
	s := NewSurface3()
	v0 := s.CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 0})
	v1 := s.CreatePoint(geometry.Point3{X: 1, Y: 0, Z: 0})
	v2 := s.CreatePoint(geometry.Point3{X: 1, Y: 1, Z: 0})
	v3 := s.CreatePoint(geometry.Point3{X: 0, Y: 1, Z: 0})
	id, err := s.CreatePolygon([]basic.Index{v0, v1, v2, v3})
	require.NoError(t, err)
	_, err = s.Triangle(id)
	require.Error(t, err)
}

func TestSurface2TriangleArea(t *testing.T) {
	s := NewSurface2()
	v0 := s.CreatePoint(geometry.Point2{X: 0, Y: 0})
	v1 := s.CreatePoint(geometry.Point2{X: 2, Y: 0})
	v2 := s.CreatePoint(geometry.Point2{X: 0, Y: 2})
	id, err := s.CreateTriangle(v0, v1, v2)
	require.NoError(t, err)
	require.InDelta(t, 2.0, s.TriangleArea(id), 1e-9)
}
