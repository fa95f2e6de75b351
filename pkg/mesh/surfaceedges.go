package mesh

import (
	"github.com/geode-kernel/geode/pkg/attribute"
	"github.com/geode-kernel/geode/pkg/basic"
)

// SurfaceEdges is the derived sub-mesh of a SurfaceMesh3/2: a
// deduplicated table of the surface's edges, keyed by VertexCycle, each
// carrying its own attribute manager and a reference count (how many
// polygon boundary traversals currently use that edge). It is a slave of
// the owning surface: RebuildFromPolygons recomputes the whole table from
// the current polygon list, the pattern the spec calls out for derived
// sub-meshes ("avoid back-pointers ... delegate invalidation/rebuild
// through pure functions").
type SurfaceEdges struct {
	attrs    *attribute.Manager
	vertices [][2]basic.Index
	refCount []int
	index    map[string]basic.Index
}

// NewSurfaceEdges creates an empty edge table.
func NewSurfaceEdges() *SurfaceEdges {
	return &SurfaceEdges{attrs: attribute.NewManager(), index: make(map[string]basic.Index)}
}

// AttributeManager exposes the per-edge attribute store.
func (e *SurfaceEdges) AttributeManager() *attribute.Manager { return e.attrs }

// NbEdges returns the number of distinct edges.
func (e *SurfaceEdges) NbEdges() int { return len(e.vertices) }

// EdgeVertices returns the two vertices of edge i, in canonical order.
func (e *SurfaceEdges) EdgeVertices(i basic.Index) [2]basic.Index { return e.vertices[i] }

// RefCount returns how many polygon half-edges currently reference edge i.
func (e *SurfaceEdges) RefCount(i basic.Index) int { return e.refCount[i] }

// AddEdge registers one traversal of the edge (v0, v1), creating the
// entry on first sight and incrementing its reference count otherwise.
// Returns the edge's stable index.
func (e *SurfaceEdges) AddEdge(v0, v1 basic.Index) basic.Index {
	cycle := NewVertexCycle([]basic.Index{v0, v1})
	key := cycle.Key()
	if idx, ok := e.index[key]; ok {
		e.refCount[idx]++
		return idx
	}
	idx := basic.Index(len(e.vertices))
	verts := cycle.Vertices()
	e.vertices = append(e.vertices, [2]basic.Index{verts[0], verts[1]})
	e.refCount = append(e.refCount, 1)
	e.index[key] = idx
	e.attrs.Resize(len(e.vertices))
	return idx
}

// RemoveEdge decrements the reference count of the edge (v0, v1) if
// present; it does not compact the table (see Clean).
func (e *SurfaceEdges) RemoveEdge(v0, v1 basic.Index) {
	key := NewVertexCycle([]basic.Index{v0, v1}).Key()
	if idx, ok := e.index[key]; ok && e.refCount[idx] > 0 {
		e.refCount[idx]--
	}
}

// Clean deletes every entry whose reference count has dropped to zero,
// compacting survivors, and returns the old-to-new index mapping.
func (e *SurfaceEdges) Clean() []basic.Index {
	toDelete := make([]bool, len(e.vertices))
	for i, c := range e.refCount {
		toDelete[i] = c <= 0
	}
	oldToNew := make([]basic.Index, len(e.vertices))
	var newVerts [][2]basic.Index
	var newCount []int
	next := 0
	for i, del := range toDelete {
		if del {
			oldToNew[i] = basic.NoID
			delete(e.index, NewVertexCycle(e.vertices[i][:]).Key())
			continue
		}
		oldToNew[i] = basic.Index(next)
		newVerts = append(newVerts, e.vertices[i])
		newCount = append(newCount, e.refCount[i])
		next++
	}
	e.vertices = newVerts
	e.refCount = newCount
	mask := make([]bool, len(toDelete))
	copy(mask, toDelete)
	e.attrs.DeleteElements(mask)
	e.index = make(map[string]basic.Index, len(e.vertices))
	for i, v := range e.vertices {
		e.index[NewVertexCycle(v[:]).Key()] = basic.Index(i)
	}
	return oldToNew
}

// RebuildSurfaceEdges3 (re)derives the complete edge table of a 3D
// surface mesh from its current polygon list: every polygon boundary
// edge is registered once per traversal, so a manifold interior edge
// shared by two polygons ends with reference count 2 and a border edge
// ends with reference count 1.
func RebuildSurfaceEdges3(s *SurfaceMesh3) *SurfaceEdges {
	edges := NewSurfaceEdges()
	for p := 0; p < s.NbPolygons(); p++ {
		n := s.NbPolygonVertices(basic.Index(p))
		for i := 0; i < n; i++ {
			v0 := s.PolygonVertex(basic.Index(p), i)
			v1 := s.PolygonVertex(basic.Index(p), (i+1)%n)
			edges.AddEdge(v0, v1)
		}
	}
	return edges
}

// RebuildSurfaceEdges2 is RebuildSurfaceEdges3 for 2D surfaces.
func RebuildSurfaceEdges2(s *SurfaceMesh2) *SurfaceEdges {
	edges := NewSurfaceEdges()
	for p := 0; p < s.NbPolygons(); p++ {
		verts := s.polyVertices[p]
		n := len(verts)
		for i := 0; i < n; i++ {
			edges.AddEdge(verts[i], verts[(i+1)%n])
		}
	}
	return edges
}
