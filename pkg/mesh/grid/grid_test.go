package grid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
)

func unitGrid3() *Grid3 {
	return NewGrid3(
		geometry.Point3{},
		[3]int{2, 2, 2},
		[3]float64{1, 1, 1},
		[3]geometry.Vector3{{X: 1}, {Y: 1}, {Z: 1}},
	)
}

func TestGrid3VertexAndCellCounts(t *testing.T) {
	g := unitGrid3()
	require.Equal(t, 8, g.NbCells())
	require.Equal(t, 27, g.NbGridVertices())
}

func TestGrid3CellVertexPositions(t *testing.T) {
	g := unitGrid3()
	cell := g.CellIndex([3]int{1, 1, 1})
	corner0 := g.VertexPoint(g.CellVertex(cell, 0))
	corner7 := g.VertexPoint(g.CellVertex(cell, 7))
	require.Equal(t, geometry.Point3{X: 1, Y: 1, Z: 1}, corner0)
	require.Equal(t, geometry.Point3{X: 2, Y: 2, Z: 2}, corner7)
}

func TestGrid3CellAdjacentAtBorder(t *testing.T) {
	g := unitGrid3()
	cell := g.CellIndex([3]int{0, 0, 0})
	require.Equal(t, basic.NoID, g.CellAdjacent(cell, 0, -1))
	require.Equal(t, g.CellIndex([3]int{1, 0, 0}), g.CellAdjacent(cell, 0, 1))
}

func TestCoordinateSystemMapsInteriorPointToLocalFrame(t *testing.T) {
	g := unitGrid3()
	cell := g.CellIndex([3]int{1, 0, 0})
	cs := g.CoordinateSystem(cell)
	local, err := cs.Coordinates(geometry.Point3{X: 1.5, Y: 0.25, Z: 0.75})
	require.NoError(t, err)
	require.InDelta(t, 0.5, local.X, 1e-9)
	require.InDelta(t, 0.25, local.Y, 1e-9)
	require.InDelta(t, 0.75, local.Z, 1e-9)
}

func TestLightGrid3HasNoStoredAdjacency(t *testing.T) {
	g := NewLightGrid3(geometry.Point3{}, [3]int{3, 3, 3}, [3]float64{1, 1, 1},
		[3]geometry.Vector3{{X: 1}, {Y: 1}, {Z: 1}})
	cell := g.CellIndex([3]int{1, 1, 1})
	require.Equal(t, g.CellIndex([3]int{2, 1, 1}), g.CellAdjacent(cell, 0, 1))
	require.Equal(t, basic.NoID, g.CellAdjacent(g.CellIndex([3]int{0, 0, 0}), 1, -1))
}
