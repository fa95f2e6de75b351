package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
)

func TestRelationshipsBoundaryIncidenceIsSymmetric(t *testing.T) {
	r := NewRelationships()
	line, corner := basic.NewUUID(), basic.NewUUID()
	r.AddBoundaryIncidence(line, corner)

	require.Equal(t, []basic.UUID{corner}, r.Boundaries(line))
	require.Equal(t, []basic.UUID{line}, r.Incidences(corner))
	require.Equal(t, 2, r.NbRelations())
}

func TestRelationshipsInternalEmbeddingIsSymmetric(t *testing.T) {
	r := NewRelationships()
	line, surface := basic.NewUUID(), basic.NewUUID()
	r.AddInternalEmbedding(line, surface)

	require.Equal(t, []basic.UUID{surface}, r.Embeddings(line))
	require.Equal(t, []basic.UUID{line}, r.Internals(surface))
}

func TestRelationshipsItemAndCollectionsContaining(t *testing.T) {
	r := NewRelationships()
	boundary, surface := basic.NewUUID(), basic.NewUUID()
	r.AddItem(boundary, surface)

	require.Equal(t, []basic.UUID{surface}, r.Items(boundary))
	require.Equal(t, []basic.UUID{boundary}, r.CollectionsContaining(surface))
}

func TestRelationshipsRemoveComponentDropsAllItsEdges(t *testing.T) {
	r := NewRelationships()
	line, cornerA, cornerB := basic.NewUUID(), basic.NewUUID(), basic.NewUUID()
	r.AddBoundaryIncidence(line, cornerA)
	r.AddBoundaryIncidence(line, cornerB)
	require.Equal(t, 4, r.NbRelations())

	r.RemoveComponent(cornerA)
	require.Equal(t, 2, r.NbRelations())
	require.Equal(t, []basic.UUID{cornerB}, r.Boundaries(line))
	require.Empty(t, r.Incidences(cornerA))
}

func TestRelationshipsInsertionOrderPreserved(t *testing.T) {
	r := NewRelationships()
	line := basic.NewUUID()
	var corners []basic.UUID
	for i := 0; i < 5; i++ {
		c := basic.NewUUID()
		corners = append(corners, c)
		r.AddBoundaryIncidence(line, c)
	}
	require.Equal(t, corners, r.Boundaries(line))
}
