package modelhelpers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	modelhelpers "github.com/geode-kernel/geode/pkg/model/helpers"
	"github.com/geode-kernel/geode/pkg/model"
)

func buildTriangleBRep(t *testing.T) (*model.BRep, *model.Surface3) {
	t.Helper()
	brep := model.NewBRep()
	b := model.NewBRepBuilder(brep)

	corner0 := b.CreateCorner("c0")
	corner1 := b.CreateCorner("c1")
	corner2 := b.CreateCorner("c2")
	corner0.Mesh().CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 0})
	corner1.Mesh().CreatePoint(geometry.Point3{X: 1, Y: 0, Z: 0})
	corner2.Mesh().CreatePoint(geometry.Point3{X: 0, Y: 1, Z: 0})

	surface := b.CreateSurface("s0")
	v0 := surface.Mesh().CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 0})
	v1 := surface.Mesh().CreatePoint(geometry.Point3{X: 1, Y: 0, Z: 0})
	v2 := surface.Mesh().CreatePoint(geometry.Point3{X: 0, Y: 1, Z: 0})
	_, err := surface.Mesh().CreatePolygon([]basic.Index{v0, v1, v2})
	require.NoError(t, err)

	u0 := brep.VertexIdentifier().CreateUniqueVertex()
	u1 := brep.VertexIdentifier().CreateUniqueVertex()
	u2 := brep.VertexIdentifier().CreateUniqueVertex()
	brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: corner0.ComponentID().UUID, Vertex: 0}, u0)
	brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: corner1.ComponentID().UUID, Vertex: 0}, u1)
	brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: corner2.ComponentID().UUID, Vertex: 0}, u2)
	brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: surface.ComponentID().UUID, Vertex: v0}, u0)
	brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: surface.ComponentID().UUID, Vertex: v1}, u1)
	brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: surface.ComponentID().UUID, Vertex: v2}, u2)

	return brep, surface
}

func TestBRepPolygonUniqueVerticesRoundTrips(t *testing.T) {
	brep, surface := buildTriangleBRep(t)
	loop := modelhelpers.BRepPolygonUniqueVertices(brep, surface, 0)
	require.Len(t, loop, 3)

	hits := modelhelpers.FindBRepComponentMeshPolygons(brep, loop)
	require.Equal(t, []basic.Index{0}, hits[surface.ComponentID().UUID])
}

func TestFindBRepComponentMeshPolygonsMatchesRotationAndReflection(t *testing.T) {
	brep, surface := buildTriangleBRep(t)
	loop := modelhelpers.BRepPolygonUniqueVertices(brep, surface, 0)

	rotated := []basic.Index{loop[1], loop[2], loop[0]}
	require.Equal(t, []basic.Index{0}, modelhelpers.FindBRepComponentMeshPolygons(brep, rotated)[surface.ComponentID().UUID])

	reflected := []basic.Index{loop[0], loop[2], loop[1]}
	require.Equal(t, []basic.Index{0}, modelhelpers.FindBRepComponentMeshPolygons(brep, reflected)[surface.ComponentID().UUID])
}

func TestFindBRepComponentMeshPolygonsNoMatch(t *testing.T) {
	brep, _ := buildTriangleBRep(t)
	hits := modelhelpers.FindBRepComponentMeshPolygons(brep, []basic.Index{99, 98, 97})
	require.Empty(t, hits)
}

func TestSectionEdgeUniqueVerticesMatchesBothOrientations(t *testing.T) {
	section := model.NewSection()
	b := model.NewSectionBuilder(section)
	line := b.CreateLine("l0")
	v0 := line.Mesh().CreatePoint(geometry.Point2{X: 0, Y: 0})
	v1 := line.Mesh().CreatePoint(geometry.Point2{X: 1, Y: 0})
	_, err := line.Mesh().CreateEdge(v0, v1)
	require.NoError(t, err)

	u0 := section.VertexIdentifier().CreateUniqueVertex()
	u1 := section.VertexIdentifier().CreateUniqueVertex()
	section.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: line.ComponentID().UUID, Vertex: v0}, u0)
	section.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: line.ComponentID().UUID, Vertex: v1}, u1)

	forward := modelhelpers.SectionEdgeUniqueVertices(section, line, 0)
	require.Equal(t, [2]basic.Index{u0, u1}, forward)

	hits := modelhelpers.FindSectionComponentMeshEdges(section, [2]basic.Index{u1, u0})
	require.Equal(t, []basic.Index{0}, hits[line.ComponentID().UUID])
}

func TestFindBlockPolyhedraMatchesFacetLoop(t *testing.T) {
	brep := model.NewBRep()
	b := model.NewBRepBuilder(brep)
	block := b.CreateBlock("block0")
	m := block.Mesh()
	v0 := m.CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 0})
	v1 := m.CreatePoint(geometry.Point3{X: 1, Y: 0, Z: 0})
	v2 := m.CreatePoint(geometry.Point3{X: 0, Y: 1, Z: 0})
	v3 := m.CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 1})
	_, err := m.CreatePolyhedron([][]basic.Index{
		{v0, v2, v1},
		{v0, v1, v3},
		{v1, v2, v3},
		{v2, v0, v3},
	})
	require.NoError(t, err)

	first := brep.VertexIdentifier().CreateUniqueVertices(4)
	for i, v := range []basic.Index{v0, v1, v2, v3} {
		brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: block.ComponentID().UUID, Vertex: v}, first+basic.Index(i))
	}

	loop := modelhelpers.BlockPolyhedronFacetUniqueVertices(brep, block, 0)
	hits := modelhelpers.FindBlockPolyhedra(brep, loop)
	require.Equal(t, []basic.Index{0}, hits[block.ComponentID().UUID])
}
