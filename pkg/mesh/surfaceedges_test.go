package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
)

func twoTriangleSurface(t *testing.T) *SurfaceMesh3 {
	s := NewSurfaceMesh3()
	v := make([]basic.Index, 4)
	pts := []geometry.Point3{{X: 0}, {X: 1}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	for i, p := range pts {
		v[i] = s.CreatePoint(p)
	}
	_, err := s.CreatePolygon([]basic.Index{v[0], v[1], v[2]})
	require.NoError(t, err)
	_, err = s.CreatePolygon([]basic.Index{v[0], v[2], v[3]})
	require.NoError(t, err)
	return s
}

func TestRebuildSurfaceEdgesSharedDiagonalHasRefCountTwo(t *testing.T) {
	s := twoTriangleSurface(t)
	edges := RebuildSurfaceEdges3(s)
	require.Equal(t, 5, edges.NbEdges())

	var sharedCount, borderCount int
	for i := 0; i < edges.NbEdges(); i++ {
		if edges.RefCount(basic.Index(i)) == 2 {
			sharedCount++
		} else {
			borderCount++
		}
	}
	require.Equal(t, 1, sharedCount)
	require.Equal(t, 4, borderCount)
}

func TestSurfaceEdgesCleanCompactsZeroRefCount(t *testing.T) {
	edges := NewSurfaceEdges()
	edges.AddEdge(0, 1)
	edges.AddEdge(1, 2)
	edges.RemoveEdge(0, 1)
	oldToNew := edges.Clean()
	require.Equal(t, basic.NoID, oldToNew[0])
	require.Equal(t, 1, edges.NbEdges())
}

func twoTetSolid(t *testing.T) *SolidMesh3 {
	s := NewSolidMesh3()
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
	_, err = s.CreatePolyhedron([][]basic.Index{
		{v[1], v[2], v[3]}, {v[1], v[3], v[4]}, {v[1], v[4], v[2]}, {v[2], v[4], v[3]},
	})
	require.NoError(t, err)
	require.NoError(t, s.ComputePolyhedronAdjacencies())
	return s
}

func TestSolidMeshSharedFacetAdjacency(t *testing.T) {
	s := twoTetSolid(t)
	require.Equal(t, 7, s.NbFacets())
	require.Equal(t, basic.Index(1), s.PolyhedronAdjacent(0, 3))
	require.Equal(t, basic.Index(0), s.PolyhedronAdjacent(1, 0))
}

func TestRebuildSolidEdgesAndFacetsView(t *testing.T) {
	s := twoTetSolid(t)
	edges := RebuildSolidEdges(s)
	require.Greater(t, edges.NbEdges(), 0)

	facets := NewSolidFacetsView(s)
	require.Equal(t, s.NbFacets(), facets.NbFacets())
	require.Equal(t, 2, facets.RefCount(s.PolyhedronFacet(0, 3)))
}

func TestSolidMeshDeletePolyhedronCleansUnusedFacets(t *testing.T) {
	s := twoTetSolid(t)
	_, err := s.DeletePolyhedra([]bool{false, true})
	require.NoError(t, err)
	require.Equal(t, 1, s.NbPolyhedra())

	removed, err := s.CleanUnusedFacets()
	require.NoError(t, err)
	require.Equal(t, 4, s.NbFacets())
	require.NotEqual(t, basic.NoID, removed[s.PolyhedronFacet(0, 0)])
}

func TestPolyhedronVolumeOfUnitCornerTetrahedron(t *testing.T) {
	s := NewSolidMesh3()
	v := []basic.Index{
		s.CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 0}),
		s.CreatePoint(geometry.Point3{X: 1, Y: 0, Z: 0}),
		s.CreatePoint(geometry.Point3{X: 0, Y: 1, Z: 0}),
		s.CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 1}),
	}
	_, err := s.CreatePolyhedron([][]basic.Index{
		{v[0], v[2], v[1]}, {v[0], v[1], v[3]}, {v[0], v[3], v[2]}, {v[1], v[2], v[3]},
	})
	require.NoError(t, err)
	require.InDelta(t, 1.0/6.0, s.PolyhedronVolume(0), 1e-9)
}
