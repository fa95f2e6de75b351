package meshhelpers

import (
	"math"

	"github.com/geode-kernel/geode/pkg/attribute"
	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/mesh/grid"
)

// EDTVariant selects which of §4.F's three Euclidean-distance-transform
// flavours to compute.
type EDTVariant int

const (
	// EDTApproximatedL1 propagates d[new] = min(d[new], d[prev] + step).
	EDTApproximatedL1 EDTVariant = iota
	// EDTExactSquared computes exact squared distances by separable
	// per-axis 1D passes.
	EDTExactSquared
	// EDTExactL2 is EDTExactSquared followed by an element-wise sqrt.
	EDTExactL2
)

const edtAttributeName = "distance"

// EuclideanDistanceTransform assigns a "distance" cell attribute on g:
// seeds (cells in seedCells) start at distance 0, and every other cell's
// distance is computed by per-axis 1D passes over every row of cells, per
// §4.F. Rows along orthogonal axes are independent; each row is swept
// sequentially here (the spec's thread-pool dispatch is a scheduling
// optimization, not an observable semantic, so this single-threaded
// sweep produces identical results).
func EuclideanDistanceTransform(g *grid.Grid3, seedCells []basic.Index, variant EDTVariant) (*attribute.DenseAttribute[float64], error) {
	n := g.NbCells()
	inf := math.Inf(1)
	dist, err := attribute.FindOrCreateDense[float64](g.CellAttributeManager(), edtAttributeName, inf, attribute.Properties{Interpolable: true})
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		dist.SetValue(i, inf)
	}
	seedSet := make(map[basic.Index]bool, len(seedCells))
	for _, s := range seedCells {
		seedSet[s] = true
		dist.SetValue(int(s), 0)
	}

	switch variant {
	case EDTApproximatedL1:
		runApproximatedSweeps(g, dist)
	case EDTExactSquared:
		runExactSquaredSweeps(g, dist, seedSet)
	case EDTExactL2:
		runExactSquaredSweeps(g, dist, seedSet)
		for i := 0; i < n; i++ {
			dist.SetValue(i, math.Sqrt(dist.Value(i)))
		}
	}
	return dist, nil
}

// runApproximatedSweeps implements the Manhattan-like approximated
// variant: repeated forward/backward passes along each axis propagate
// d[new] = min(d[new], d[prev] + cellLength[axis]) until no value
// changes.
func runApproximatedSweeps(g *grid.Grid3, dist *attribute.DenseAttribute[float64]) {
	changed := true
	for pass := 0; changed && pass < 3*(g.NbCellsInDirection(0)+g.NbCellsInDirection(1)+g.NbCellsInDirection(2)); pass++ {
		changed = false
		for axis := 0; axis < 3; axis++ {
			step := g.CellLength(axis)
			for _, dir := range []int{1, -1} {
				forEachRow(g, axis, func(row []basic.Index) {
					order := row
					if dir < 0 {
						order = reverseCells(row)
					}
					for i := 1; i < len(order); i++ {
						prev, cur := order[i-1], order[i]
						candidate := dist.Value(int(prev)) + step
						if candidate < dist.Value(int(cur)) {
							dist.SetValue(int(cur), candidate)
							changed = true
						}
					}
				})
			}
		}
	}
}

// runExactSquaredSweeps implements the separable exact squared EDT: for
// each axis in turn, every cell of a row takes the minimum, over all
// cells j of that row, of j's value from the previous axis plus the
// squared distance (index difference * cellLength[axis])^2.
func runExactSquaredSweeps(g *grid.Grid3, dist *attribute.DenseAttribute[float64], seeds map[basic.Index]bool) {
	n := g.NbCells()
	squared := make([]float64, n)
	for i := 0; i < n; i++ {
		if seeds[basic.Index(i)] {
			squared[i] = 0
		} else {
			squared[i] = math.Inf(1)
		}
	}
	for axis := 0; axis < 3; axis++ {
		step2 := g.CellLength(axis) * g.CellLength(axis)
		forEachRow(g, axis, func(row []basic.Index) {
			prev := make([]float64, len(row))
			for i, c := range row {
				prev[i] = squared[c]
			}
			for i := range row {
				best := math.Inf(1)
				for j := range row {
					d := float64(i - j)
					if cand := prev[j] + d*d*step2; cand < best {
						best = cand
					}
				}
				squared[row[i]] = best
			}
		})
	}
	for i := 0; i < n; i++ {
		dist.SetValue(i, squared[i])
	}
}

func reverseCells(row []basic.Index) []basic.Index {
	out := make([]basic.Index, len(row))
	for i, v := range row {
		out[len(row)-1-i] = v
	}
	return out
}

// forEachRow invokes f once per 1D row of cells running along axis, in
// increasing-index order along that axis.
func forEachRow(g *grid.Grid3, axis int, f func(row []basic.Index)) {
	other1, other2 := (axis+1)%3, (axis+2)%3
	n := [3]int{g.NbCellsInDirection(0), g.NbCellsInDirection(1), g.NbCellsInDirection(2)}
	for a := 0; a < n[other1]; a++ {
		for b := 0; b < n[other2]; b++ {
			row := make([]basic.Index, n[axis])
			for i := 0; i < n[axis]; i++ {
				ijk := [3]int{}
				ijk[axis] = i
				ijk[other1] = a
				ijk[other2] = b
				row[i] = g.CellIndex(ijk)
			}
			f(row)
		}
	}
}
