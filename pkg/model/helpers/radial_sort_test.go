package modelhelpers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	modelhelpers "github.com/geode-kernel/geode/pkg/model/helpers"
	"github.com/geode-kernel/geode/pkg/model"
)

// buildFanBRep builds a line along the Z axis bordered by three half-plane
// surfaces (the X+, Y+ and the diagonal X=Y, X<0 half-planes) fanned around it,
// each surface sharing the line's two endpoints as unique vertices.
func buildFanBRep(t *testing.T) (*model.BRep, *model.Line3, []basic.UUID) {
	t.Helper()
	brep := model.NewBRep()
	b := model.NewBRepBuilder(brep)

	line := b.CreateLine("axis")
	lv0 := line.Mesh().CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 0})
	lv1 := line.Mesh().CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 1})
	_, err := line.Mesh().CreateEdge(lv0, lv1)
	require.NoError(t, err)

	uBottom := brep.VertexIdentifier().CreateUniqueVertex()
	uTop := brep.VertexIdentifier().CreateUniqueVertex()
	brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: line.ComponentID().UUID, Vertex: lv0}, uBottom)
	brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: line.ComponentID().UUID, Vertex: lv1}, uTop)

	dirs := []geometry.Point3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: -1, Y: -1, Z: 0},
	}
	surfaceUUIDs := make([]basic.UUID, len(dirs))
	for i, dir := range dirs {
		surface := b.CreateSurface("s")
		sm := surface.Mesh()
		v0 := sm.CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 0})
		v1 := sm.CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 1})
		v2 := sm.CreatePoint(dir)
		_, err := sm.CreatePolygon([]basic.Index{v0, v1, v2})
		require.NoError(t, err)

		brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: surface.ComponentID().UUID, Vertex: v0}, uBottom)
		brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: surface.ComponentID().UUID, Vertex: v1}, uTop)

		require.NoError(t, b.AddSurfaceLineBoundary(surface, line))
		surfaceUUIDs[i] = surface.ComponentID().UUID
	}

	return brep, line, surfaceUUIDs
}

func TestSurfaceRadialSortOrdersSurfacesAroundLine(t *testing.T) {
	brep, line, surfaceUUIDs := buildFanBRep(t)

	sorted, err := modelhelpers.SurfaceRadialSort(brep, line)
	require.NoError(t, err)
	require.Len(t, sorted.Sides, 3)

	// X+ (angle 0) must lead the order; Y+ (90deg) and the diagonal
	// through (-1,-1,0) (225deg) follow in increasing angle.
	require.Equal(t, surfaceUUIDs[0], sorted.Sides[0].Surface)
	require.Equal(t, surfaceUUIDs[1], sorted.Sides[1].Surface)
	require.Equal(t, surfaceUUIDs[2], sorted.Sides[2].Surface)
}

func TestSurfaceRadialSortEmptyWhenNoSurfacesBoundLine(t *testing.T) {
	brep := model.NewBRep()
	b := model.NewBRepBuilder(brep)
	line := b.CreateLine("isolated")
	v0 := line.Mesh().CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 0})
	v1 := line.Mesh().CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 1})
	_, err := line.Mesh().CreateEdge(v0, v1)
	require.NoError(t, err)

	sorted, err := modelhelpers.SurfaceRadialSort(brep, line)
	require.NoError(t, err)
	require.Empty(t, sorted.Sides)
}

func TestSurfaceRadialSortErrorsOnEmptyLine(t *testing.T) {
	brep := model.NewBRep()
	b := model.NewBRepBuilder(brep)
	line := b.CreateLine("empty")

	_, err := modelhelpers.SurfaceRadialSort(brep, line)
	require.Error(t, err)
}
