package meshhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/mesh"
)

// mesh3TwoSeparateTriangles builds two triangles that share an edge in
// position only: each triangle references its own pair of vertices at the
// shared edge's coordinates, so the mesh carries duplicate coincident
// vertices the way two independently authored triangles imported into one
// mesh typically would.
func mesh3TwoSeparateTriangles(t *testing.T) *mesh.SurfaceMesh3 {
	s := mesh.NewSurfaceMesh3()
	v0 := s.CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 0})
	v1 := s.CreatePoint(geometry.Point3{X: 1, Y: 0, Z: 0})
	v2 := s.CreatePoint(geometry.Point3{X: 0, Y: 1, Z: 0})
	_, err := s.CreatePolygon([]basic.Index{v0, v1, v2})
	require.NoError(t, err)

	v3 := s.CreatePoint(geometry.Point3{X: 1, Y: 0, Z: 0}) // duplicate of v1
	v4 := s.CreatePoint(geometry.Point3{X: 0, Y: 1, Z: 0}) // duplicate of v2
	v5 := s.CreatePoint(geometry.Point3{X: 1, Y: 1, Z: 0})
	_, err = s.CreatePolygon([]basic.Index{v3, v5, v4})
	require.NoError(t, err)
	return s
}
