package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tinylib/msgp/msgp"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
)

func TestUUIDEncodeDecodeRoundTrips(t *testing.T) {
	u := basic.NewUUID()
	var buf bytes.Buffer
	w := msgp.NewWriter(&buf)
	require.NoError(t, u.EncodeMsg(w))
	require.NoError(t, w.Flush())

	var decoded basic.UUID
	r := msgp.NewReader(&buf)
	require.NoError(t, decoded.DecodeMsg(r))
	require.Equal(t, u, decoded)
}

func TestPoint3EncodeDecodeRoundTrips(t *testing.T) {
	p := geometry.Point3{X: 1.5, Y: -2.25, Z: 3}
	var buf bytes.Buffer
	w := msgp.NewWriter(&buf)
	require.NoError(t, p.EncodeMsg(w))
	require.NoError(t, w.Flush())

	var decoded geometry.Point3
	r := msgp.NewReader(&buf)
	require.NoError(t, decoded.DecodeMsg(r))
	require.Equal(t, p, decoded)
}

func TestVertexIdentifierEncodeDecodeRoundTrips(t *testing.T) {
	vi := NewVertexIdentifier()
	compA := basic.NewUUID()
	compB := basic.NewUUID()
	vi.Register(compA)
	vi.Register(compB)

	u0 := vi.CreateUniqueVertex()
	u1 := vi.CreateUniqueVertex()
	vi.CreateUniqueVertex() // u2 stays isolated
	vi.SetUniqueVertex(ComponentMeshVertex{Component: compA, Vertex: 0}, u0)
	vi.SetUniqueVertex(ComponentMeshVertex{Component: compB, Vertex: 0}, u0)
	vi.SetUniqueVertex(ComponentMeshVertex{Component: compA, Vertex: 1}, u1)

	var buf bytes.Buffer
	require.NoError(t, basic.EncodeRecord(&buf, VertexIdentifierSerializationVersion, vi.EncodeMsg))

	reloaded := NewVertexIdentifier()
	require.NoError(t, basic.DecodeRecord(&buf, VertexIdentifierVersions, reloaded.DecodeMsg))

	require.Equal(t, vi.NbUniqueVertices(), reloaded.NbUniqueVertices())
	require.Equal(t, u0, reloaded.UniqueVertex(ComponentMeshVertex{Component: compA, Vertex: 0}))
	require.Equal(t, u0, reloaded.UniqueVertex(ComponentMeshVertex{Component: compB, Vertex: 0}))
	require.Equal(t, u1, reloaded.UniqueVertex(ComponentMeshVertex{Component: compA, Vertex: 1}))
	require.True(t, reloaded.IsUniqueVertexIsolated(2))
	require.ElementsMatch(t, []ComponentMeshVertex{
		{Component: compA, Vertex: 0},
		{Component: compB, Vertex: 0},
	}, reloaded.ComponentMeshVertices(u0))
}
