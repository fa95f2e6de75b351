package meshhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/mesh/grid"
)

func TestRegularGridScalarFunctionTrilinearInterpolation(t *testing.T) {
	g := grid.NewGrid3(geometry.Point3{}, [3]int{1, 1, 1}, [3]float64{1, 1, 1},
		[3]geometry.Vector3{{X: 1}, {Y: 1}, {Z: 1}})
	f := NewRegularGridScalarFunction3(g)
	for v := 0; v < g.NbGridVertices(); v++ {
		p := g.VertexPoint(basic.Index(v))
		f.SetValue(basic.Index(v), p.X)
	}
	value, err := f.Evaluate(geometry.Point3{X: 0.5, Y: 0.5, Z: 0.5})
	require.NoError(t, err)
	require.InDelta(t, 0.5, value, 1e-9)
}

func TestRegularGridScalarFunctionOutsideGridErrors(t *testing.T) {
	g := grid.NewGrid3(geometry.Point3{}, [3]int{1, 1, 1}, [3]float64{1, 1, 1},
		[3]geometry.Vector3{{X: 1}, {Y: 1}, {Z: 1}})
	f := NewRegularGridScalarFunction3(g)
	_, err := f.Evaluate(geometry.Point3{X: 5, Y: 5, Z: 5})
	require.Error(t, err)
}

func TestRegularGridPointFunctionInterpolatesCoordinates(t *testing.T) {
	g := grid.NewGrid3(geometry.Point3{}, [3]int{1, 1, 1}, [3]float64{1, 1, 1},
		[3]geometry.Vector3{{X: 1}, {Y: 1}, {Z: 1}})
	f := NewRegularGridPointFunction3(g)
	for v := 0; v < g.NbGridVertices(); v++ {
		p := g.VertexPoint(basic.Index(v))
		f.SetValue(basic.Index(v), p)
	}
	value, err := f.Evaluate(geometry.Point3{X: 0.25, Y: 0.75, Z: 0.5})
	require.NoError(t, err)
	require.InDelta(t, 0.25, value.X, 1e-9)
	require.InDelta(t, 0.75, value.Y, 1e-9)
	require.InDelta(t, 0.5, value.Z, 1e-9)
}
