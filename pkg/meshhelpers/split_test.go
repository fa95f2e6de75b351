package meshhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/mesh"
)

func TestSplitAlongSolidFacetsDuplicatesVertexAcrossCutFace(t *testing.T) {
	s := mesh.NewSolidMesh3()
	pts := []geometry.Point3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1},
	}
	v := make([]basic.Index, len(pts))
	for i, p := range pts {
		v[i] = s.CreatePoint(p)
	}
	_, err := s.CreatePolyhedron([][]basic.Index{
		{v[0], v[2], v[1]}, {v[0], v[1], v[3]}, {v[0], v[3], v[2]}, {v[1], v[2], v[3]},
	})
	require.NoError(t, err)
	sharedFacetLocal := 3
	_, err = s.CreatePolyhedron([][]basic.Index{
		{v[1], v[2], v[3]}, {v[1], v[3], v[4]}, {v[1], v[4], v[2]}, {v[2], v[4], v[3]},
	})
	require.NoError(t, err)
	require.NoError(t, s.ComputePolyhedronAdjacencies())

	cutFacet := s.PolyhedronFacet(0, sharedFacetLocal)
	before := s.NbVertices()
	mapping, err := SplitAlongSolidFacets(s, []basic.Index{cutFacet})
	require.NoError(t, err)
	require.NotEmpty(t, mapping.VertexSplits)
	require.Greater(t, s.NbVertices(), before)
}

func TestSplitAlongSolidFacetsNoCutIsNoOp(t *testing.T) {
	s := mesh.NewSolidMesh3()
	v0 := s.CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 0})
	v1 := s.CreatePoint(geometry.Point3{X: 1, Y: 0, Z: 0})
	v2 := s.CreatePoint(geometry.Point3{X: 0, Y: 1, Z: 0})
	v3 := s.CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 1})
	_, err := s.CreatePolyhedron([][]basic.Index{
		{v0, v2, v1}, {v0, v1, v3}, {v0, v3, v2}, {v1, v2, v3},
	})
	require.NoError(t, err)

	before := s.NbVertices()
	mapping, err := SplitAlongSolidFacets(s, nil)
	require.NoError(t, err)
	require.Empty(t, mapping.VertexSplits)
	require.Equal(t, before, s.NbVertices())
}
