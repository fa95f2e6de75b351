package mesh

import (
	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/attribute"
	"github.com/geode-kernel/geode/pkg/basic"
)

// VertexSet is the base layer every mesh type embeds: a plain collection
// of abstract vertices with an attribute manager, and nothing else. Every
// derived mesh type (PointSet, EdgedCurve, SurfaceMesh, SolidMesh) adds
// its own geometry/topology on top without changing how vertices
// themselves are created, deleted or permuted.
type VertexSet struct {
	attrs *attribute.Manager
}

// NewVertexSet creates an empty vertex set.
func NewVertexSet() *VertexSet {
	return &VertexSet{attrs: attribute.NewManager()}
}

// NbVertices returns the number of vertices.
func (v *VertexSet) NbVertices() int { return v.attrs.NbElements() }

// VertexAttributeManager exposes the per-vertex attribute store.
func (v *VertexSet) VertexAttributeManager() *attribute.Manager { return v.attrs }

// CreateVertex appends one vertex and returns its index.
func (v *VertexSet) CreateVertex() basic.Index {
	n := v.attrs.NbElements()
	v.attrs.Resize(n + 1)
	return basic.Index(n)
}

// CreateVertices appends n vertices and returns their indices in order.
func (v *VertexSet) CreateVertices(n int) []basic.Index {
	start := v.attrs.NbElements()
	v.attrs.Resize(start + n)
	out := make([]basic.Index, n)
	for i := 0; i < n; i++ {
		out[i] = basic.Index(start + i)
	}
	return out
}

// DeleteVertices removes the vertices flagged in toDelete, compacting
// survivors in relative order, and returns the old-to-new index mapping
// (basic.NoID for deleted vertices). Callers owning references into this
// vertex set (edges, polygon corners, polyhedron facets) are responsible
// for rewriting or dropping those references using the returned mapping.
func (v *VertexSet) DeleteVertices(toDelete []bool) ([]basic.Index, error) {
	if len(toDelete) != v.attrs.NbElements() {
		return nil, errors.Wrapf(ErrSizeMismatch, "delete mask length %d != %d vertices", len(toDelete), v.attrs.NbElements())
	}
	return v.attrs.DeleteElements(toDelete)
}

// PermuteVertices reorders vertices according to perm (perm[old] is the
// destination index of vertex old).
func (v *VertexSet) PermuteVertices(perm []basic.Index) error {
	return v.attrs.PermuteElements(perm)
}
