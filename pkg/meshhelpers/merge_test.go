package meshhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/mesh"
)

func TestVertexMerger3DeduplicatesColocatedPoints(t *testing.T) {
	a := mesh.NewPointSet3()
	a.CreatePoint(geometry.Point3{X: 0, Y: 0, Z: 0})
	a.CreatePoint(geometry.Point3{X: 1, Y: 0, Z: 0})

	b := mesh.NewPointSet3()
	b.CreatePoint(geometry.Point3{X: 1, Y: 0, Z: 0})
	b.CreatePoint(geometry.Point3{X: 2, Y: 0, Z: 0})

	out, result := VertexMerger3([]*mesh.PointSet3{a, b}, 1e-9)
	require.Equal(t, 3, out.NbVertices())
	require.Equal(t, result.InputVertexMapping[0][1], result.InputVertexMapping[1][0])
}

func TestSurfaceMerger3DropsDuplicatePolygonAndRecomputesAdjacency(t *testing.T) {
	tri := func(offset float64) *mesh.SurfaceMesh3 {
		s := mesh.NewSurfaceMesh3()
		v0 := s.CreatePoint(geometry.Point3{X: offset + 0, Y: 0})
		v1 := s.CreatePoint(geometry.Point3{X: offset + 1, Y: 0})
		v2 := s.CreatePoint(geometry.Point3{X: offset + 0, Y: 1})
		_, err := s.CreatePolygon([]basic.Index{v0, v1, v2})
		require.NoError(t, err)
		return s
	}
	a := tri(0)
	b := tri(0) // identical triangle, same coordinates
	out, _, err := SurfaceMerger3([]*mesh.SurfaceMesh3{a, b}, 1e-9)
	require.NoError(t, err)
	require.Equal(t, 3, out.NbVertices())
	require.Equal(t, 1, out.NbPolygons())
}

func TestSolidMerger3MergesSharedFace(t *testing.T) {
	makeTet := func(v [4]geometry.Point3) *mesh.SolidMesh3 {
		s := mesh.NewSolidMesh3()
		idx := make([]basic.Index, 4)
		for i, p := range v {
			idx[i] = s.CreatePoint(p)
		}
		_, err := s.CreatePolyhedron([][]basic.Index{
			{idx[0], idx[2], idx[1]}, {idx[0], idx[1], idx[3]},
			{idx[0], idx[3], idx[2]}, {idx[1], idx[2], idx[3]},
		})
		require.NoError(t, err)
		return s
	}
	p := [5]geometry.Point3{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1}, {X: 1, Y: 1, Z: 1},
	}
	t1 := makeTet([4]geometry.Point3{p[0], p[1], p[2], p[3]})
	t2 := makeTet([4]geometry.Point3{p[1], p[2], p[3], p[4]})

	out, _, err := SolidMerger3([]*mesh.SolidMesh3{t1, t2}, 1e-9)
	require.NoError(t, err)
	require.Equal(t, 5, out.NbVertices())
	require.Equal(t, 2, out.NbPolyhedra())
	require.NoError(t, out.ComputePolyhedronAdjacencies())
}
