package mesh

import (
	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/attribute"
	"github.com/geode-kernel/geode/pkg/basic"
)

// EdgedCurve3 is a PointSet3 with edges: each edge references two
// vertices, and carries its own attributes through a second Manager
// (edges are elements in their own right, not vertex data).
type EdgedCurve3 struct {
	*PointSet3
	edgeAttrs    *attribute.Manager
	edgeVertices *attribute.DenseAttribute[[2]basic.Index]
}

// NewEdgedCurve3 creates an empty 3D edged curve.
func NewEdgedCurve3() *EdgedCurve3 {
	edgeAttrs := attribute.NewManager()
	ev, _ := attribute.FindOrCreateDense[[2]basic.Index](edgeAttrs, "edge_vertices", [2]basic.Index{basic.NoID, basic.NoID}, attribute.Properties{})
	return &EdgedCurve3{PointSet3: NewPointSet3(), edgeAttrs: edgeAttrs, edgeVertices: ev}
}

// EdgeAttributeManager exposes the per-edge attribute store.
func (c *EdgedCurve3) EdgeAttributeManager() *attribute.Manager { return c.edgeAttrs }

// NbEdges returns the number of edges.
func (c *EdgedCurve3) NbEdges() int { return c.edgeAttrs.NbElements() }

// CreateEdge appends an edge between v0 and v1 and returns its index.
func (c *EdgedCurve3) CreateEdge(v0, v1 basic.Index) (basic.Index, error) {
	if int(v0) >= c.NbVertices() || int(v1) >= c.NbVertices() {
		return basic.NoID, errors.Wrap(ErrInvalidReference, "edge endpoint out of range")
	}
	e := c.edgeAttrs.NbElements()
	c.edgeAttrs.Resize(e + 1)
	c.edgeVertices.SetValue(e, [2]basic.Index{v0, v1})
	return basic.Index(e), nil
}

// EdgeVertex returns the vertex at position i (0 or 1) of edge e.
func (c *EdgedCurve3) EdgeVertex(e basic.Index, i int) basic.Index {
	return c.edgeVertices.Value(int(e))[i]
}

// EdgeLength returns the Euclidean length of edge e.
func (c *EdgedCurve3) EdgeLength(e basic.Index) float64 {
	p0 := c.Point(c.EdgeVertex(e, 0))
	p1 := c.Point(c.EdgeVertex(e, 1))
	return p0.Distance(p1)
}

// DeleteEdges removes the edges flagged in toDelete, compacting survivors
// in relative order.
func (c *EdgedCurve3) DeleteEdges(toDelete []bool) ([]basic.Index, error) {
	if len(toDelete) != c.NbEdges() {
		return nil, errors.Wrapf(ErrSizeMismatch, "delete mask length %d != %d edges", len(toDelete), c.NbEdges())
	}
	return c.edgeAttrs.DeleteElements(toDelete)
}

// PermuteEdges reorders edges according to perm.
func (c *EdgedCurve3) PermuteEdges(perm []basic.Index) error {
	return c.edgeAttrs.PermuteElements(perm)
}

// ReplaceVertex rewrites every edge endpoint equal to old to point at
// replacement instead.
func (c *EdgedCurve3) ReplaceVertex(old, replacement basic.Index) {
	for e := 0; e < c.NbEdges(); e++ {
		ev := c.edgeVertices.Value(e)
		changed := false
		for i := range ev {
			if ev[i] == old {
				ev[i] = replacement
				changed = true
			}
		}
		if changed {
			c.edgeVertices.SetValue(e, ev)
		}
	}
}

// ReplaceVertices rewrites every edge endpoint v to mapping[v] (the
// batch form, no manifoldness assumption).
func (c *EdgedCurve3) ReplaceVertices(mapping []basic.Index) {
	for e := 0; e < c.NbEdges(); e++ {
		ev := c.edgeVertices.Value(e)
		c.edgeVertices.SetValue(e, [2]basic.Index{mapping[ev[0]], mapping[ev[1]]})
	}
}

// DeleteIsolatedVertices removes every vertex referenced by no edge.
func (c *EdgedCurve3) DeleteIsolatedVertices() ([]basic.Index, error) {
	referenced := make([]bool, c.NbVertices())
	for e := 0; e < c.NbEdges(); e++ {
		ev := c.edgeVertices.Value(e)
		referenced[ev[0]] = true
		referenced[ev[1]] = true
	}
	toDelete := make([]bool, c.NbVertices())
	for i, r := range referenced {
		toDelete[i] = !r
	}
	oldToNew, err := c.DeleteVertices(toDelete)
	if err != nil {
		return nil, err
	}
	for e := 0; e < c.NbEdges(); e++ {
		ev := c.edgeVertices.Value(e)
		c.edgeVertices.SetValue(e, [2]basic.Index{oldToNew[ev[0]], oldToNew[ev[1]]})
	}
	return oldToNew, nil
}

// EdgedCurve2 is the 2D counterpart of EdgedCurve3.
type EdgedCurve2 struct {
	*PointSet2
	edgeAttrs    *attribute.Manager
	edgeVertices *attribute.DenseAttribute[[2]basic.Index]
}

// NewEdgedCurve2 creates an empty 2D edged curve.
func NewEdgedCurve2() *EdgedCurve2 {
	edgeAttrs := attribute.NewManager()
	ev, _ := attribute.FindOrCreateDense[[2]basic.Index](edgeAttrs, "edge_vertices", [2]basic.Index{basic.NoID, basic.NoID}, attribute.Properties{})
	return &EdgedCurve2{PointSet2: NewPointSet2(), edgeAttrs: edgeAttrs, edgeVertices: ev}
}

// EdgeAttributeManager exposes the per-edge attribute store.
func (c *EdgedCurve2) EdgeAttributeManager() *attribute.Manager { return c.edgeAttrs }

// NbEdges returns the number of edges.
func (c *EdgedCurve2) NbEdges() int { return c.edgeAttrs.NbElements() }

// CreateEdge appends an edge between v0 and v1 and returns its index.
func (c *EdgedCurve2) CreateEdge(v0, v1 basic.Index) (basic.Index, error) {
	if int(v0) >= c.NbVertices() || int(v1) >= c.NbVertices() {
		return basic.NoID, errors.Wrap(ErrInvalidReference, "edge endpoint out of range")
	}
	e := c.edgeAttrs.NbElements()
	c.edgeAttrs.Resize(e + 1)
	c.edgeVertices.SetValue(e, [2]basic.Index{v0, v1})
	return basic.Index(e), nil
}

// EdgeVertex returns the vertex at position i (0 or 1) of edge e.
func (c *EdgedCurve2) EdgeVertex(e basic.Index, i int) basic.Index {
	return c.edgeVertices.Value(int(e))[i]
}

// EdgeLength returns the Euclidean length of edge e.
func (c *EdgedCurve2) EdgeLength(e basic.Index) float64 {
	p0 := c.Point(c.EdgeVertex(e, 0))
	p1 := c.Point(c.EdgeVertex(e, 1))
	return p0.Distance(p1)
}

// ReplaceVertex rewrites every edge endpoint equal to old to point at
// replacement instead.
func (c *EdgedCurve2) ReplaceVertex(old, replacement basic.Index) {
	for e := 0; e < c.NbEdges(); e++ {
		ev := c.edgeVertices.Value(e)
		changed := false
		for i := range ev {
			if ev[i] == old {
				ev[i] = replacement
				changed = true
			}
		}
		if changed {
			c.edgeVertices.SetValue(e, ev)
		}
	}
}

// ReplaceVertices rewrites every edge endpoint v to mapping[v].
func (c *EdgedCurve2) ReplaceVertices(mapping []basic.Index) {
	for e := 0; e < c.NbEdges(); e++ {
		ev := c.edgeVertices.Value(e)
		c.edgeVertices.SetValue(e, [2]basic.Index{mapping[ev[0]], mapping[ev[1]]})
	}
}

// DeleteIsolatedVertices removes every vertex referenced by no edge.
func (c *EdgedCurve2) DeleteIsolatedVertices() ([]basic.Index, error) {
	referenced := make([]bool, c.NbVertices())
	for e := 0; e < c.NbEdges(); e++ {
		ev := c.edgeVertices.Value(e)
		referenced[ev[0]] = true
		referenced[ev[1]] = true
	}
	toDelete := make([]bool, c.NbVertices())
	for i, r := range referenced {
		toDelete[i] = !r
	}
	oldToNew, err := c.DeleteVertices(toDelete)
	if err != nil {
		return nil, err
	}
	for e := 0; e < c.NbEdges(); e++ {
		ev := c.edgeVertices.Value(e)
		c.edgeVertices.SetValue(e, [2]basic.Index{oldToNew[ev[0]], oldToNew[ev[1]]})
	}
	return oldToNew, nil
}
