package grid

import (
	"github.com/geode-kernel/geode/pkg/attribute"
	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
)

// LightGrid3 is a standalone grid with its own independent attribute
// managers and no adjacency cache: every neighbor query is recomputed
// from index arithmetic on demand, per §4.E ("LightRegularGrid<D> ... no
// adjacency cache is stored"). It does not embed Grid3; the two types
// hold the same fields, and neither stores an adjacency cache.
type LightGrid3 struct {
	origin      geometry.Point3
	cellsNumber [3]int
	cellLength  [3]float64
	direction   [3]geometry.Vector3
	cellAttrs   *attribute.Manager
	vertexAttrs *attribute.Manager
}

// NewLightGrid3 creates a light grid.
func NewLightGrid3(origin geometry.Point3, cellsNumber [3]int, cellLength [3]float64, direction [3]geometry.Vector3) *LightGrid3 {
	g := &LightGrid3{origin: origin, cellsNumber: cellsNumber, cellLength: cellLength, direction: direction,
		cellAttrs: attribute.NewManager(), vertexAttrs: attribute.NewManager()}
	g.cellAttrs.Resize(g.NbCells())
	g.vertexAttrs.Resize(g.NbGridVertices())
	return g
}

// CellAttributeManager exposes the per-cell attribute store.
func (g *LightGrid3) CellAttributeManager() *attribute.Manager { return g.cellAttrs }

// VertexAttributeManager exposes the synthetic per-vertex attribute store.
func (g *LightGrid3) VertexAttributeManager() *attribute.Manager { return g.vertexAttrs }

// NbCells returns the total number of cells.
func (g *LightGrid3) NbCells() int {
	return g.cellsNumber[0] * g.cellsNumber[1] * g.cellsNumber[2]
}

// NbGridVertices returns Π(n[d]+1).
func (g *LightGrid3) NbGridVertices() int {
	return (g.cellsNumber[0] + 1) * (g.cellsNumber[1] + 1) * (g.cellsNumber[2] + 1)
}

// CellIndices unpacks a linear cell id.
func (g *LightGrid3) CellIndices(cell basic.Index) [3]int {
	nx, ny := g.cellsNumber[0], g.cellsNumber[1]
	i := int(cell)
	x := i % nx
	i /= nx
	y := i % ny
	z := i / ny
	return [3]int{x, y, z}
}

// CellIndex packs per-axis indices into a linear cell id, recomputed on
// every call rather than cached (no adjacency cache, by design).
func (g *LightGrid3) CellIndex(ijk [3]int) basic.Index {
	nx, ny := g.cellsNumber[0], g.cellsNumber[1]
	return basic.Index(ijk[0] + nx*(ijk[1]+ny*ijk[2]))
}

// CellAdjacent derives the neighbor across axis/direction purely from
// index arithmetic, with no stored table.
func (g *LightGrid3) CellAdjacent(c basic.Index, axis int, direction int) basic.Index {
	ijk := g.CellIndices(c)
	ijk[axis] += direction
	if ijk[axis] < 0 || ijk[axis] >= g.cellsNumber[axis] {
		return basic.NoID
	}
	return g.CellIndex(ijk)
}

// VertexPoint returns the world-space position of synthetic vertex v,
// derived purely from index arithmetic.
func (g *LightGrid3) VertexPoint(v basic.Index) geometry.Point3 {
	nx, ny := g.cellsNumber[0]+1, g.cellsNumber[1]+1
	i := int(v)
	x := i % nx
	i /= nx
	y := i % ny
	z := i / ny
	p := g.origin
	p = p.Add(g.direction[0].Scale(float64(x) * g.cellLength[0]))
	p = p.Add(g.direction[1].Scale(float64(y) * g.cellLength[1]))
	p = p.Add(g.direction[2].Scale(float64(z) * g.cellLength[2]))
	return p
}

// CellLength returns the step length along axis d.
func (g *LightGrid3) CellLength(d int) float64 { return g.cellLength[d] }

// NbCellsInDirection returns the cell count along axis d.
func (g *LightGrid3) NbCellsInDirection(d int) int { return g.cellsNumber[d] }
