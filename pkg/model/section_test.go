package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
)

func TestSectionBuilderCreatesAndLooksUpComponents(t *testing.T) {
	s := NewSection()
	b := NewSectionBuilder(s)

	corner := b.CreateCorner("c0")
	line := b.CreateLine("l0")
	surface := b.CreateSurface("s0")

	require.Equal(t, 1, s.NbCorners())
	require.Equal(t, 1, s.NbLines())
	require.Equal(t, 1, s.NbSurfaces())
	require.Same(t, corner, s.Corner(corner.ComponentID().UUID))
	require.Same(t, line, s.Line(line.ComponentID().UUID))
	require.Same(t, surface, s.Surface(surface.ComponentID().UUID))
}

func TestSectionBuilderBoundaryDimensionIsEnforced(t *testing.T) {
	s := NewSection()
	b := NewSectionBuilder(s)
	line := b.CreateLine("l0")
	corner := b.CreateCorner("c0")
	surface := b.CreateSurface("s0")

	require.NoError(t, b.AddLineCornerBoundary(line, corner))
	require.NoError(t, b.AddSurfaceLineBoundary(surface, line))

	require.Equal(t, []basic.UUID{corner.ComponentID().UUID}, s.Relationships().Boundaries(line.ComponentID().UUID))
	require.Equal(t, []basic.UUID{surface.ComponentID().UUID}, s.Relationships().Incidences(line.ComponentID().UUID))
}

func TestSectionBuilderWrongCollectionItemTypeFails(t *testing.T) {
	s := NewSection()
	b := NewSectionBuilder(s)
	lines := b.CreateCollection("lines", ComponentLine)
	corner := b.CreateCorner("c0")

	err := b.AddCollectionItem(lines, corner)
	require.Error(t, err)
}

func TestSectionBuilderModelBoundaryGroupsLines(t *testing.T) {
	s := NewSection()
	b := NewSectionBuilder(s)
	boundary := b.CreateModelBoundary("outline")
	l0 := b.CreateLine("l0")
	l1 := b.CreateLine("l1")
	b.AddBoundaryItem(boundary, l0)
	b.AddBoundaryItem(boundary, l1)

	items := s.Relationships().Items(boundary.ComponentID().UUID)
	require.ElementsMatch(t, []basic.UUID{l0.ComponentID().UUID, l1.ComponentID().UUID}, items)
}

func TestSectionBuilderReplaceCornerMeshPropagatesVertexIdentifier(t *testing.T) {
	s := NewSection()
	b := NewSectionBuilder(s)
	corner := b.CreateCorner("c0")
	corner.Mesh().CreatePoint(geometry.Point2{X: 1, Y: 2})
	u := s.VertexIdentifier().CreateUniqueVertex()
	cmv := ComponentMeshVertex{Component: corner.ComponentID().UUID, Vertex: 0}
	s.VertexIdentifier().SetUniqueVertex(cmv, u)

	b.ReplaceCornerMesh(corner, corner.Mesh(), []basic.Index{basic.NoID})

	require.True(t, s.VertexIdentifier().IsUniqueVertexIsolated(u))
}

func TestSectionBuilderDeleteCornerCascades(t *testing.T) {
	s := NewSection()
	b := NewSectionBuilder(s)
	line := b.CreateLine("l0")
	corner := b.CreateCorner("c0")
	require.NoError(t, b.AddLineCornerBoundary(line, corner))

	b.DeleteCorner(corner.ComponentID().UUID)

	require.Nil(t, s.Corner(corner.ComponentID().UUID))
	require.Empty(t, s.Relationships().Boundaries(line.ComponentID().UUID))
}
