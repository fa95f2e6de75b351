package meshhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/mesh/grid"
)

func TestGridToTetrahedralSolidPreservesVolume(t *testing.T) {
	g := grid.NewGrid3(geometry.Point3{}, [3]int{2, 1, 1}, [3]float64{1, 1, 1},
		[3]geometry.Vector3{{X: 1}, {Y: 1}, {Z: 1}})
	solid, err := GridToTetrahedralSolid(g)
	require.NoError(t, err)
	require.Equal(t, g.NbCells()*6, solid.NbPolyhedra())

	total := 0.0
	for p := 0; p < solid.NbPolyhedra(); p++ {
		total += solid.PolyhedronVolume(basic.Index(p))
	}
	require.InDelta(t, 2.0, total, 1e-9)
}

func TestGridToDensifiedTetrahedralSolidAddsCenterVertices(t *testing.T) {
	g := grid.NewGrid3(geometry.Point3{}, [3]int{2, 1, 1}, [3]float64{1, 1, 1},
		[3]geometry.Vector3{{X: 1}, {Y: 1}, {Z: 1}})
	solid, err := GridToDensifiedTetrahedralSolid(g, []basic.Index{0})
	require.NoError(t, err)
	// cell 0 densified into 12 tets (6 faces x 2), cell 1 plain split into 6.
	require.Equal(t, 18, solid.NbPolyhedra())
	require.Equal(t, g.NbGridVertices()+1, solid.NbVertices())
}

func TestRemoveVertexDuplicationSurface3MergesCoincidentVertices(t *testing.T) {
	s := mesh3TwoSeparateTriangles(t)
	removed, err := RemoveVertexDuplicationSurface3(s, 1e-9)
	require.NoError(t, err)
	require.Less(t, s.NbVertices(), len(removed))
}
