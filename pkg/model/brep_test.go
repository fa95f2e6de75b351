package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
)

func TestCheckBoundaryDimensionRules(t *testing.T) {
	require.NoError(t, checkBoundaryDimension(ComponentLine, ComponentCorner))
	require.NoError(t, checkBoundaryDimension(ComponentSurface, ComponentLine))
	require.NoError(t, checkBoundaryDimension(ComponentBlock, ComponentSurface))
	require.Error(t, checkBoundaryDimension(ComponentSurface, ComponentCorner))
	require.Error(t, checkBoundaryDimension(ComponentBlock, ComponentModelBoundary))
}

func TestCheckEmbeddingDimensionRules(t *testing.T) {
	require.NoError(t, checkEmbeddingDimension(ComponentLine, ComponentSurface))
	require.NoError(t, checkEmbeddingDimension(ComponentSurface, ComponentBlock))
	require.NoError(t, checkEmbeddingDimension(ComponentLine, ComponentBlock))
	require.Error(t, checkEmbeddingDimension(ComponentSurface, ComponentLine))
}

func TestBRepBuilderCreatesBlockAndBoundary(t *testing.T) {
	brep := NewBRep()
	b := NewBRepBuilder(brep)

	block := b.CreateBlock("b0")
	surface := b.CreateSurface("s0")

	require.NoError(t, b.AddBlockSurfaceBoundary(block, surface))
	require.Equal(t, []basic.UUID{surface.ComponentID().UUID}, brep.Relationships().Boundaries(block.ComponentID().UUID))
	require.Equal(t, 1, brep.NbBlocks())
}

func TestBRepModelBoundaryGroupsSurfaces(t *testing.T) {
	brep := NewBRep()
	b := NewBRepBuilder(brep)
	boundary := b.CreateModelBoundary("shell")
	s0 := b.CreateSurface("s0")
	s1 := b.CreateSurface("s1")
	b.AddBoundaryItem(boundary, s0)
	b.AddBoundaryItem(boundary, s1)

	require.ElementsMatch(t, []basic.UUID{s0.ComponentID().UUID, s1.ComponentID().UUID},
		brep.Relationships().Items(boundary.ComponentID().UUID))
}

func TestBRepBuilderDeleteBlockCascades(t *testing.T) {
	brep := NewBRep()
	b := NewBRepBuilder(brep)
	block := b.CreateBlock("b0")
	surface := b.CreateSurface("s0")
	require.NoError(t, b.AddBlockSurfaceBoundary(block, surface))

	b.DeleteBlock(block.ComponentID().UUID)

	require.Nil(t, brep.Block(block.ComponentID().UUID))
	require.Empty(t, brep.Relationships().Incidences(surface.ComponentID().UUID))
}
