package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
)

func TestVertexIdentifierSetAndQuery(t *testing.T) {
	vi := NewVertexIdentifier()
	comp := basic.NewUUID()
	vi.Register(comp)

	u := vi.CreateUniqueVertex()
	cmv := ComponentMeshVertex{Component: comp, Vertex: 0}
	vi.SetUniqueVertex(cmv, u)

	require.Equal(t, u, vi.UniqueVertex(cmv))
	require.Equal(t, []ComponentMeshVertex{cmv}, vi.ComponentMeshVertices(u))
	require.False(t, vi.IsUniqueVertexIsolated(u))
}

func TestVertexIdentifierSetMovesFromPreviousUnique(t *testing.T) {
	vi := NewVertexIdentifier()
	comp := basic.NewUUID()
	vi.Register(comp)
	u0 := vi.CreateUniqueVertex()
	u1 := vi.CreateUniqueVertex()
	cmv := ComponentMeshVertex{Component: comp, Vertex: 0}

	vi.SetUniqueVertex(cmv, u0)
	vi.SetUniqueVertex(cmv, u1)

	require.True(t, vi.IsUniqueVertexIsolated(u0))
	require.Equal(t, u1, vi.UniqueVertex(cmv))
}

func TestVertexIdentifierUnregisterRemovesContributions(t *testing.T) {
	vi := NewVertexIdentifier()
	comp := basic.NewUUID()
	vi.Register(comp)
	u := vi.CreateUniqueVertex()
	cmv := ComponentMeshVertex{Component: comp, Vertex: 0}
	vi.SetUniqueVertex(cmv, u)

	vi.Unregister(comp)

	require.True(t, vi.IsUniqueVertexIsolated(u))
	require.Equal(t, basic.NoID, vi.UniqueVertex(cmv))
}

func TestVertexIdentifierUpdateUniqueVerticesPropagatesPermutation(t *testing.T) {
	vi := NewVertexIdentifier()
	comp := basic.NewUUID()
	vi.Register(comp)
	u0 := vi.CreateUniqueVertex()
	u1 := vi.CreateUniqueVertex()
	vi.SetUniqueVertex(ComponentMeshVertex{Component: comp, Vertex: 0}, u0)
	vi.SetUniqueVertex(ComponentMeshVertex{Component: comp, Vertex: 1}, u1)

	// vertex 0 deleted, vertex 1 becomes vertex 0.
	vi.UpdateUniqueVertices(comp, []basic.Index{basic.NoID, 0})

	require.Equal(t, u1, vi.UniqueVertex(ComponentMeshVertex{Component: comp, Vertex: 0}))
	require.Equal(t, basic.NoID, vi.UniqueVertex(ComponentMeshVertex{Component: comp, Vertex: 1}))
	require.True(t, vi.IsUniqueVertexIsolated(u0))
}

func TestVertexIdentifierDeleteIsolatedVerticesCompacts(t *testing.T) {
	vi := NewVertexIdentifier()
	comp := basic.NewUUID()
	vi.Register(comp)
	u0 := vi.CreateUniqueVertex() // left isolated
	u1 := vi.CreateUniqueVertex()
	vi.SetUniqueVertex(ComponentMeshVertex{Component: comp, Vertex: 5}, u1)

	old2new := vi.DeleteIsolatedVertices()

	require.Equal(t, basic.NoID, old2new[u0])
	require.Equal(t, basic.Index(0), old2new[u1])
	require.Equal(t, 1, vi.NbUniqueVertices())
	require.Equal(t, basic.Index(0), vi.UniqueVertex(ComponentMeshVertex{Component: comp, Vertex: 5}))
}
