package model

import "github.com/geode-kernel/geode/pkg/basic"

// ComponentMeshVertex identifies a single vertex inside a single
// component's mesh, grounded on original_source's
// model/mixin/core/vertex_identifier.hpp ComponentMeshVertex.
type ComponentMeshVertex struct {
	Component basic.UUID
	Vertex    basic.Index
}

// VertexIdentifier assigns a model-wide unique-vertex id to each
// equivalence class of component-mesh vertices that represent the same
// physical point (spec §3 "Unique vertices", §4.G).
type VertexIdentifier struct {
	registered map[basic.UUID]bool
	members    [][]ComponentMeshVertex // u -> its component mesh vertices
	toUnique   map[ComponentMeshVertex]basic.Index
}

// NewVertexIdentifier creates an empty registry.
func NewVertexIdentifier() *VertexIdentifier {
	return &VertexIdentifier{
		registered: make(map[basic.UUID]bool),
		toUnique:   make(map[ComponentMeshVertex]basic.Index),
	}
}

// Register installs a component so its vertices may be associated with
// unique vertices.
func (vi *VertexIdentifier) Register(component basic.UUID) {
	vi.registered[component] = true
}

// Unregister removes a component and every contribution it made to any
// unique vertex, per spec invariant 2 ("upon deleting a component, all
// its contributions are removed from every u").
func (vi *VertexIdentifier) Unregister(component basic.UUID) {
	delete(vi.registered, component)
	for u, members := range vi.members {
		kept := members[:0:0]
		for _, m := range members {
			if m.Component == component {
				delete(vi.toUnique, m)
				continue
			}
			kept = append(kept, m)
		}
		vi.members[u] = kept
	}
}

// NbUniqueVertices returns the number of unique-vertex slots, including
// isolated ones.
func (vi *VertexIdentifier) NbUniqueVertices() int { return len(vi.members) }

// IsUniqueVertexIsolated reports whether u currently has no component
// mesh vertex associated with it.
func (vi *VertexIdentifier) IsUniqueVertexIsolated(u basic.Index) bool {
	return len(vi.members[u]) == 0
}

// CreateUniqueVertex allocates one empty unique-vertex slot.
func (vi *VertexIdentifier) CreateUniqueVertex() basic.Index {
	u := basic.Index(len(vi.members))
	vi.members = append(vi.members, nil)
	return u
}

// CreateUniqueVertices allocates n empty unique-vertex slots and returns
// the index of the first.
func (vi *VertexIdentifier) CreateUniqueVertices(n int) basic.Index {
	first := basic.Index(len(vi.members))
	for i := 0; i < n; i++ {
		vi.members = append(vi.members, nil)
	}
	return first
}

// UniqueVertex returns the unique vertex associated with cmv, or
// basic.NoID if it has none.
func (vi *VertexIdentifier) UniqueVertex(cmv ComponentMeshVertex) basic.Index {
	if u, ok := vi.toUnique[cmv]; ok {
		return u
	}
	return basic.NoID
}

// ComponentMeshVertices returns every component vertex currently
// associated with u.
func (vi *VertexIdentifier) ComponentMeshVertices(u basic.Index) []ComponentMeshVertex {
	return vi.members[u]
}

// SetUniqueVertex associates cmv with u, removing any previous
// association cmv may have had first.
func (vi *VertexIdentifier) SetUniqueVertex(cmv ComponentMeshVertex, u basic.Index) {
	if old, ok := vi.toUnique[cmv]; ok {
		vi.removeMember(old, cmv)
	}
	vi.members[u] = append(vi.members[u], cmv)
	vi.toUnique[cmv] = u
}

// UnsetUniqueVertex removes cmv's association with u.
func (vi *VertexIdentifier) UnsetUniqueVertex(cmv ComponentMeshVertex, u basic.Index) {
	vi.removeMember(u, cmv)
	delete(vi.toUnique, cmv)
}

func (vi *VertexIdentifier) removeMember(u basic.Index, cmv ComponentMeshVertex) {
	members := vi.members[u]
	for i, m := range members {
		if m == cmv {
			vi.members[u] = append(members[:i], members[i+1:]...)
			return
		}
	}
}

// UpdateUniqueVertices propagates a component mesh's vertex permutation
// or deletion (old2new[i] == basic.NoID for a deleted vertex) to every
// unique vertex that referenced one of component's old indices.
func (vi *VertexIdentifier) UpdateUniqueVertices(component basic.UUID, old2new []basic.Index) {
	type move struct{ u, newIdx basic.Index }
	var moves []move
	for oldIdx, newIdx := range old2new {
		cmv := ComponentMeshVertex{Component: component, Vertex: basic.Index(oldIdx)}
		u, ok := vi.toUnique[cmv]
		if !ok {
			continue
		}
		vi.removeMember(u, cmv)
		delete(vi.toUnique, cmv)
		if newIdx != basic.NoID {
			moves = append(moves, move{u, newIdx})
		}
	}
	for _, m := range moves {
		updated := ComponentMeshVertex{Component: component, Vertex: m.newIdx}
		vi.members[m.u] = append(vi.members[m.u], updated)
		vi.toUnique[updated] = m.u
	}
}

// DeleteIsolatedVertices compacts the unique-vertex id space, dropping
// every slot with no remaining component mesh vertex, and returns the
// old-to-new mapping (basic.NoID for a dropped slot).
func (vi *VertexIdentifier) DeleteIsolatedVertices() []basic.Index {
	old2new := make([]basic.Index, len(vi.members))
	kept := make([][]ComponentMeshVertex, 0, len(vi.members))
	for u, members := range vi.members {
		if len(members) == 0 {
			old2new[u] = basic.NoID
			continue
		}
		newU := basic.Index(len(kept))
		old2new[u] = newU
		kept = append(kept, members)
		for _, m := range members {
			vi.toUnique[m] = newU
		}
	}
	vi.members = kept
	return old2new
}
