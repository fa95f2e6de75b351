package meshhelpers

import (
	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/mesh/grid"
)

// trilinearWeights evaluates the eight tensor-product trilinear shape
// functions at local parametric coordinates t (each component expected
// in [0,1] for a query inside the cell).
func trilinearWeights(t geometry.Point3) [8]float64 {
	x, y, z := t.X, t.Y, t.Z
	var w [8]float64
	for k := 0; k < 8; k++ {
		sx, sy, sz := 1-x, 1-y, 1-z
		if k&1 != 0 {
			sx = x
		}
		if k&2 != 0 {
			sy = y
		}
		if k&4 != 0 {
			sz = z
		}
		w[k] = sx * sy * sz
	}
	return w
}

// locateCell3 finds the cell of g containing p, by scanning its
// coordinate systems; returns the cell id and the local parametric
// coordinates of p within it.
func locateCell3(g *grid.Grid3, p geometry.Point3) (basic.Index, geometry.Point3, error) {
	for c := 0; c < g.NbCells(); c++ {
		cs := g.CoordinateSystem(basic.Index(c))
		local, err := cs.Coordinates(p)
		if err != nil {
			continue
		}
		if local.X >= -1e-9 && local.X <= 1+1e-9 &&
			local.Y >= -1e-9 && local.Y <= 1+1e-9 &&
			local.Z >= -1e-9 && local.Z <= 1+1e-9 {
			return basic.Index(c), local, nil
		}
	}
	return basic.NoID, geometry.Point3{}, errors.New("meshhelpers: point is outside every grid cell")
}

// RegularGridScalarFunction3 stores one scalar value per grid vertex and
// answers trilinear-interpolated queries at arbitrary points, per §4.F.
type RegularGridScalarFunction3 struct {
	grid   *grid.Grid3
	values []float64
}

// NewRegularGridScalarFunction3 creates a function over g with one value
// per grid vertex, all initialized to zero.
func NewRegularGridScalarFunction3(g *grid.Grid3) *RegularGridScalarFunction3 {
	return &RegularGridScalarFunction3{grid: g, values: make([]float64, g.NbGridVertices())}
}

// SetValue sets the value carried by grid vertex v.
func (f *RegularGridScalarFunction3) SetValue(v basic.Index, val float64) { f.values[v] = val }

// Value returns the value carried by grid vertex v.
func (f *RegularGridScalarFunction3) Value(v basic.Index) float64 { return f.values[v] }

// Evaluate locates the cell containing p and trilinearly interpolates the
// values at its eight corners.
func (f *RegularGridScalarFunction3) Evaluate(p geometry.Point3) (float64, error) {
	cell, local, err := locateCell3(f.grid, p)
	if err != nil {
		return 0, err
	}
	weights := trilinearWeights(local)
	sum := 0.0
	for k := 0; k < 8; k++ {
		sum += weights[k] * f.values[f.grid.CellVertex(cell, k)]
	}
	return sum, nil
}

// RegularGridPointFunction3 stores one Point3 per grid vertex and answers
// vector-valued trilinear-interpolated queries, per §4.F's
// RegularGridPointFunction<D,P>.
type RegularGridPointFunction3 struct {
	grid   *grid.Grid3
	values []geometry.Point3
}

// NewRegularGridPointFunction3 creates a point-valued function over g.
func NewRegularGridPointFunction3(g *grid.Grid3) *RegularGridPointFunction3 {
	return &RegularGridPointFunction3{grid: g, values: make([]geometry.Point3, g.NbGridVertices())}
}

// SetValue sets the point carried by grid vertex v.
func (f *RegularGridPointFunction3) SetValue(v basic.Index, val geometry.Point3) { f.values[v] = val }

// Value returns the point carried by grid vertex v.
func (f *RegularGridPointFunction3) Value(v basic.Index) geometry.Point3 { return f.values[v] }

// Evaluate locates the cell containing p and trilinearly interpolates the
// point values at its eight corners via a weighted sum.
func (f *RegularGridPointFunction3) Evaluate(p geometry.Point3) (geometry.Point3, error) {
	cell, local, err := locateCell3(f.grid, p)
	if err != nil {
		return geometry.Point3{}, err
	}
	weights := trilinearWeights(local)
	var sum geometry.Point3
	for k := 0; k < 8; k++ {
		sum = sum.Add(f.values[f.grid.CellVertex(cell, k)].Scale(weights[k]))
	}
	return sum, nil
}
