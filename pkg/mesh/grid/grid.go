// Package grid implements the regular grids Grid3 and Grid2 and the 3D
// light regular grid LightGrid3 (there is no 2D light grid): the
// structured mesh specializations whose vertex coordinates are derived
// from cell-index arithmetic rather than stored explicitly, per §4.E.
package grid

import (
	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/attribute"
	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
)

// CoordinateSystem3 is an origin plus three direction vectors, used both
// to place a grid in space and, inverted, to map a world point into a
// cell's local parametric coordinates for interpolation (§4.F's
// RegularGridScalarFunction/RegularGridPointFunction).
type CoordinateSystem3 struct {
	Origin     geometry.Point3
	Directions [3]geometry.Vector3
}

// Coordinates maps world point p into the parametric frame of this
// coordinate system by solving p = Origin + sum(t[i] * Directions[i])
// for t, via Cramer's rule (the directions are assumed independent,
// which holds for an axis-aligned or sheared but non-degenerate grid
// cell).
func (c CoordinateSystem3) Coordinates(p geometry.Point3) (geometry.Point3, error) {
	m := geometry.Matrix3{Row0: c.Directions[0], Row1: c.Directions[1], Row2: c.Directions[2]}
	mt := m.Transpose()
	inv, err := mt.Inverse()
	if err != nil {
		return geometry.Point3{}, errors.Wrap(err, "grid: degenerate coordinate system")
	}
	local := p.Sub(c.Origin)
	return inv.MulVector(local), nil
}

// Grid3 is a structured hexahedral mesh: cells (the primary element) and
// vertices are never stored explicitly; their positions derive from
// origin + sum((index[d]+offset[d]) * step[d] * direction[d]).
type Grid3 struct {
	origin       geometry.Point3
	cellsNumber  [3]int
	cellLength   [3]float64
	direction    [3]geometry.Vector3
	cellAttrs    *attribute.Manager
	vertexAttrs  *attribute.Manager
}

// NewGrid3 creates a grid with cellsNumber[d] cells along each axis, each
// cellLength[d] long, oriented along direction[d] (assumed unit or scaled
// appropriately by the caller), anchored at origin.
func NewGrid3(origin geometry.Point3, cellsNumber [3]int, cellLength [3]float64, direction [3]geometry.Vector3) *Grid3 {
	g := &Grid3{
		origin: origin, cellsNumber: cellsNumber, cellLength: cellLength, direction: direction,
		cellAttrs:   attribute.NewManager(),
		vertexAttrs: attribute.NewManager(),
	}
	g.cellAttrs.Resize(g.NbCells())
	g.vertexAttrs.Resize(g.NbGridVertices())
	return g
}

// CellAttributeManager exposes the per-cell (primary element) attribute
// store.
func (g *Grid3) CellAttributeManager() *attribute.Manager { return g.cellAttrs }

// VertexAttributeManager exposes the synthetic per-vertex attribute
// store, sized Π(cellsNumber[d]+1).
func (g *Grid3) VertexAttributeManager() *attribute.Manager { return g.vertexAttrs }

// NbCellsInDirection returns the cell count along axis d.
func (g *Grid3) NbCellsInDirection(d int) int { return g.cellsNumber[d] }

// CellLength returns the step length along axis d.
func (g *Grid3) CellLength(d int) float64 { return g.cellLength[d] }

// NbCells returns the total number of cells.
func (g *Grid3) NbCells() int {
	return g.cellsNumber[0] * g.cellsNumber[1] * g.cellsNumber[2]
}

// NbGridVertices returns the total number of grid vertices, Π(n[d]+1).
func (g *Grid3) NbGridVertices() int {
	return (g.cellsNumber[0] + 1) * (g.cellsNumber[1] + 1) * (g.cellsNumber[2] + 1)
}

// CellIndices unpacks a linear cell id into its per-axis indices
// (row-major, first axis fastest).
func (g *Grid3) CellIndices(cell basic.Index) [3]int {
	nx, ny := g.cellsNumber[0], g.cellsNumber[1]
	i := int(cell)
	x := i % nx
	i /= nx
	y := i % ny
	z := i / ny
	return [3]int{x, y, z}
}

// CellIndex packs per-axis cell indices into a linear id.
func (g *Grid3) CellIndex(ijk [3]int) basic.Index {
	nx, ny := g.cellsNumber[0], g.cellsNumber[1]
	return basic.Index(ijk[0] + nx*(ijk[1]+ny*ijk[2]))
}

// VertexIndices unpacks a linear synthetic-vertex id into per-axis
// indices.
func (g *Grid3) VertexIndices(v basic.Index) [3]int {
	nx, ny := g.cellsNumber[0]+1, g.cellsNumber[1]+1
	i := int(v)
	x := i % nx
	i /= nx
	y := i % ny
	z := i / ny
	return [3]int{x, y, z}
}

// VertexIndex packs per-axis synthetic-vertex indices into a linear id.
func (g *Grid3) VertexIndex(ijk [3]int) basic.Index {
	nx, ny := g.cellsNumber[0]+1, g.cellsNumber[1]+1
	return basic.Index(ijk[0] + nx*(ijk[1]+ny*ijk[2]))
}

// VertexPoint returns the world-space position of synthetic vertex v.
func (g *Grid3) VertexPoint(v basic.Index) geometry.Point3 {
	ijk := g.VertexIndices(v)
	p := g.origin
	for d := 0; d < 3; d++ {
		p = p.Add(g.direction[d].Scale(float64(ijk[d]) * g.cellLength[d]))
	}
	return p
}

// CellVertex returns the synthetic vertex at local corner k (0..7, binary
// encoded x,y,z offset) of cell c.
func (g *Grid3) CellVertex(c basic.Index, k int) basic.Index {
	ijk := g.CellIndices(c)
	ox, oy, oz := k&1, (k>>1)&1, (k>>2)&1
	return g.VertexIndex([3]int{ijk[0] + ox, ijk[1] + oy, ijk[2] + oz})
}

// CellBarycenter returns the center point of cell c.
func (g *Grid3) CellBarycenter(c basic.Index) geometry.Point3 {
	var sum geometry.Point3
	for k := 0; k < 8; k++ {
		sum = sum.Add(g.VertexPoint(g.CellVertex(c, k)))
	}
	return sum.Div(8)
}

// CellAdjacent returns the neighboring cell across the face in the given
// axis/direction (direction -1 or +1), or basic.NoID at the grid border.
func (g *Grid3) CellAdjacent(c basic.Index, axis int, direction int) basic.Index {
	ijk := g.CellIndices(c)
	ijk[axis] += direction
	if ijk[axis] < 0 || ijk[axis] >= g.cellsNumber[axis] {
		return basic.NoID
	}
	return g.CellIndex(ijk)
}

// CoordinateSystem returns the coordinate system of cell c, anchored at
// its minimum corner, for use by grid interpolation functions.
func (g *Grid3) CoordinateSystem(c basic.Index) CoordinateSystem3 {
	ijk := g.CellIndices(c)
	origin := g.origin
	for d := 0; d < 3; d++ {
		origin = origin.Add(g.direction[d].Scale(float64(ijk[d]) * g.cellLength[d]))
	}
	dirs := [3]geometry.Vector3{
		g.direction[0].Scale(g.cellLength[0]),
		g.direction[1].Scale(g.cellLength[1]),
		g.direction[2].Scale(g.cellLength[2]),
	}
	return CoordinateSystem3{Origin: origin, Directions: dirs}
}

// Grid2 is the 2D counterpart of Grid3.
type Grid2 struct {
	origin      geometry.Point2
	cellsNumber [2]int
	cellLength  [2]float64
	direction   [2]geometry.Vector2
	cellAttrs   *attribute.Manager
	vertexAttrs *attribute.Manager
}

// NewGrid2 creates a 2D grid.
func NewGrid2(origin geometry.Point2, cellsNumber [2]int, cellLength [2]float64, direction [2]geometry.Vector2) *Grid2 {
	g := &Grid2{origin: origin, cellsNumber: cellsNumber, cellLength: cellLength, direction: direction,
		cellAttrs: attribute.NewManager(), vertexAttrs: attribute.NewManager()}
	g.cellAttrs.Resize(g.NbCells())
	g.vertexAttrs.Resize(g.NbGridVertices())
	return g
}

// CellAttributeManager exposes the per-cell attribute store.
func (g *Grid2) CellAttributeManager() *attribute.Manager { return g.cellAttrs }

// VertexAttributeManager exposes the synthetic per-vertex attribute
// store.
func (g *Grid2) VertexAttributeManager() *attribute.Manager { return g.vertexAttrs }

// NbCells returns the total number of cells.
func (g *Grid2) NbCells() int { return g.cellsNumber[0] * g.cellsNumber[1] }

// NbGridVertices returns Π(n[d]+1).
func (g *Grid2) NbGridVertices() int { return (g.cellsNumber[0] + 1) * (g.cellsNumber[1] + 1) }

// CellIndices unpacks a linear cell id.
func (g *Grid2) CellIndices(cell basic.Index) [2]int {
	nx := g.cellsNumber[0]
	i := int(cell)
	return [2]int{i % nx, i / nx}
}

// CellIndex packs per-axis indices.
func (g *Grid2) CellIndex(ij [2]int) basic.Index {
	return basic.Index(ij[0] + g.cellsNumber[0]*ij[1])
}

// VertexIndices unpacks a linear synthetic-vertex id.
func (g *Grid2) VertexIndices(v basic.Index) [2]int {
	nx := g.cellsNumber[0] + 1
	i := int(v)
	return [2]int{i % nx, i / nx}
}

// VertexIndex packs per-axis synthetic-vertex indices.
func (g *Grid2) VertexIndex(ij [2]int) basic.Index {
	return basic.Index(ij[0] + (g.cellsNumber[0]+1)*ij[1])
}

// VertexPoint returns the world-space position of synthetic vertex v.
func (g *Grid2) VertexPoint(v basic.Index) geometry.Point2 {
	ij := g.VertexIndices(v)
	p := g.origin
	for d := 0; d < 2; d++ {
		p = p.Add(g.direction[d].Scale(float64(ij[d]) * g.cellLength[d]))
	}
	return p
}

// CellVertex returns the synthetic vertex at local corner k (0..3) of
// cell c.
func (g *Grid2) CellVertex(c basic.Index, k int) basic.Index {
	ij := g.CellIndices(c)
	ox, oy := k&1, (k>>1)&1
	return g.VertexIndex([2]int{ij[0] + ox, ij[1] + oy})
}

// CellAdjacent returns the neighboring cell across the edge in the given
// axis/direction, or basic.NoID at the grid border.
func (g *Grid2) CellAdjacent(c basic.Index, axis int, direction int) basic.Index {
	ij := g.CellIndices(c)
	ij[axis] += direction
	if ij[axis] < 0 || ij[axis] >= g.cellsNumber[axis] {
		return basic.NoID
	}
	return g.CellIndex(ij)
}
