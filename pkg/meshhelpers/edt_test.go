package meshhelpers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/mesh/grid"
)

func TestEuclideanDistanceTransformSeedIsZero(t *testing.T) {
	g := grid.NewGrid3(geometry.Point3{}, [3]int{4, 4, 1}, [3]float64{1, 1, 1},
		[3]geometry.Vector3{{X: 1}, {Y: 1}, {Z: 1}})
	seed := g.CellIndex([3]int{0, 0, 0})

	dist, err := EuclideanDistanceTransform(g, []basic.Index{seed}, EDTExactL2)
	require.NoError(t, err)
	require.Equal(t, 0.0, dist.Value(int(seed)))

	far := g.CellIndex([3]int{3, 3, 0})
	require.Greater(t, dist.Value(int(far)), 0.0)
	require.False(t, math.IsInf(dist.Value(int(far)), 1))
}

func TestEuclideanDistanceTransformExactSquaredMatchesAxisAlignedDistance(t *testing.T) {
	g := grid.NewGrid3(geometry.Point3{}, [3]int{4, 1, 1}, [3]float64{1, 1, 1},
		[3]geometry.Vector3{{X: 1}, {Y: 1}, {Z: 1}})
	seed := g.CellIndex([3]int{0, 0, 0})
	target := g.CellIndex([3]int{3, 0, 0})

	dist, err := EuclideanDistanceTransform(g, []basic.Index{seed}, EDTExactSquared)
	require.NoError(t, err)
	require.InDelta(t, 9.0, dist.Value(int(target)), 1e-9)
}

func TestEuclideanDistanceTransformApproximatedStaysFinite(t *testing.T) {
	g := grid.NewGrid3(geometry.Point3{}, [3]int{3, 3, 3}, [3]float64{1, 1, 1},
		[3]geometry.Vector3{{X: 1}, {Y: 1}, {Z: 1}})
	seed := g.CellIndex([3]int{0, 0, 0})
	dist, err := EuclideanDistanceTransform(g, []basic.Index{seed}, EDTApproximatedL1)
	require.NoError(t, err)
	for c := 0; c < g.NbCells(); c++ {
		require.False(t, math.IsInf(dist.Value(c), 1), "cell %d never converged", c)
	}
}
