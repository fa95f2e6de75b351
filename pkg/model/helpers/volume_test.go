package modelhelpers_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	modelhelpers "github.com/geode-kernel/geode/pkg/model/helpers"
	"github.com/geode-kernel/geode/pkg/model"
)

func TestBlockVolumeSumsPolyhedronVolumes(t *testing.T) {
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

	vol, err := modelhelpers.BlockVolume(brep, block)
	require.NoError(t, err)
	require.InDelta(t, 1.0/6.0, vol, 1e-9)
}

func TestBlockVolumeFansUnmeshedBlockFromBoundarySurfaces(t *testing.T) {
	brep := model.NewBRep()
	b := model.NewBRepBuilder(brep)
	block := b.CreateBlock("block0")

	pts := []geometry.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	faces := [][3]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {2, 0, 3}}
	for _, face := range faces {
		surface := b.CreateSurface("face")
		sm := surface.Mesh()
		verts := make([]basic.Index, 3)
		for i, pi := range face {
			verts[i] = sm.CreatePoint(pts[pi])
		}
		_, err := sm.CreatePolygon(verts)
		require.NoError(t, err)
		require.NoError(t, b.AddBlockSurfaceBoundary(block, surface))
	}

	vol, err := modelhelpers.BlockVolume(brep, block)
	require.NoError(t, err)
	require.True(t, math.Abs(vol-1.0/6.0) < 1e-6)
}

// TestBlockVolumeOrientationPropagationCorrectsFlippedSurface builds the
// same tetrahedron as TestBlockVolumeFansUnmeshedBlockFromBoundarySurfaces,
// but wires each face's shared edges as Line components registered in the
// VertexIdentifier, and gives one face a winding reversed relative to its
// neighbors. A naive fan (no orientation propagation) would sum that
// face's contribution with the wrong sign; BlockVolume must still recover
// the true volume by detecting the flip through the shared Line traversal
// directions.
func TestBlockVolumeOrientationPropagationCorrectsFlippedSurface(t *testing.T) {
	brep := model.NewBRep()
	b := model.NewBRepBuilder(brep)
	block := b.CreateBlock("block0")

	pts := []geometry.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
	globalUnique := brep.VertexIdentifier().CreateUniqueVertices(4)

	type edgeKey struct{ a, b int }
	lineOf := make(map[edgeKey]*model.Line3)
	edgeLine := func(a, b int) *model.Line3 {
		key := edgeKey{a, b}
		if a > b {
			key = edgeKey{b, a}
		}
		if l, ok := lineOf[key]; ok {
			return l
		}
		line := b.CreateLine("e")
		lv0 := line.Mesh().CreatePoint(pts[key.a])
		lv1 := line.Mesh().CreatePoint(pts[key.b])
		_, err := line.Mesh().CreateEdge(lv0, lv1)
		require.NoError(t, err)
		brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: line.ComponentID().UUID, Vertex: lv0}, globalUnique+basic.Index(key.a))
		brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: line.ComponentID().UUID, Vertex: lv1}, globalUnique+basic.Index(key.b))
		lineOf[key] = line
		return line
	}

	// Consistent outward winding; face index 2 ({1,2,3}) is deliberately
	// stored reversed ({1,3,2}) to exercise the orientation fix.
	faces := [][3]int{{0, 2, 1}, {0, 1, 3}, {1, 3, 2}, {2, 0, 3}}
	for _, face := range faces {
		surface := b.CreateSurface("face")
		sm := surface.Mesh()
		verts := make([]basic.Index, 3)
		for i, pi := range face {
			verts[i] = sm.CreatePoint(pts[pi])
			brep.VertexIdentifier().SetUniqueVertex(model.ComponentMeshVertex{Component: surface.ComponentID().UUID, Vertex: verts[i]}, globalUnique+basic.Index(pi))
		}
		_, err := sm.CreatePolygon(verts)
		require.NoError(t, err)
		require.NoError(t, b.AddBlockSurfaceBoundary(block, surface))

		for k := 0; k < 3; k++ {
			line := edgeLine(face[k], face[(k+1)%3])
			require.NoError(t, b.AddSurfaceLineBoundary(surface, line))
		}
	}

	vol, err := modelhelpers.BlockVolume(brep, block)
	require.NoError(t, err)
	require.InDelta(t, 1.0/6.0, vol, 1e-9)
}

func TestBlockVolumeErrorsWithoutPolyhedraOrSurfaces(t *testing.T) {
	brep := model.NewBRep()
	b := model.NewBRepBuilder(brep)
	block := b.CreateBlock("empty")

	_, err := modelhelpers.BlockVolume(brep, block)
	require.Error(t, err)
}
