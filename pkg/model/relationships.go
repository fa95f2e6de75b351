package model

import "github.com/geode-kernel/geode/pkg/basic"

// RelationType tags one directed edge of the Relationships graph.
type RelationType int

const (
	// RelationBoundary: From is a boundary of To (e.g. a Corner is a
	// boundary of a Line it terminates).
	RelationBoundary RelationType = iota
	// RelationIncidence: From is incident to To; the dual of Boundary,
	// added atomically with its Boundary counterpart.
	RelationIncidence
	// RelationInternal: From lies strictly inside To, a component of
	// higher dimension.
	RelationInternal
	// RelationEmbedding: To embeds From; the dual of Internal, added
	// atomically with its Internal counterpart.
	RelationEmbedding
	// RelationItem: From (a ModelBoundary or Collection) groups To as a
	// member item.
	RelationItem
)

func (t RelationType) String() string {
	switch t {
	case RelationBoundary:
		return "Boundary"
	case RelationIncidence:
		return "Incidence"
	case RelationInternal:
		return "Internal"
	case RelationEmbedding:
		return "Embedding"
	case RelationItem:
		return "Item"
	default:
		return "Unknown"
	}
}

// Relation is one directed, typed edge of a Relationships graph.
type Relation struct {
	From, To basic.UUID
	Type     RelationType
}

// Relationships is the directed labelled graph keyed by component uuids
// described in spec §4.G. Edges are kept in insertion order in a single
// slice; byFrom/byTo index that slice for O(1) adjacency lookups in
// either direction. Removing a component drops every edge touching it.
type Relationships struct {
	relations []Relation
	byFrom    map[basic.UUID][]int
	byTo      map[basic.UUID][]int
}

// NewRelationships creates an empty relationship graph.
func NewRelationships() *Relationships {
	return &Relationships{
		byFrom: make(map[basic.UUID][]int),
		byTo:   make(map[basic.UUID][]int),
	}
}

func (r *Relationships) add(from, to basic.UUID, t RelationType) {
	idx := len(r.relations)
	r.relations = append(r.relations, Relation{From: from, To: to, Type: t})
	r.byFrom[from] = append(r.byFrom[from], idx)
	r.byTo[to] = append(r.byTo[to], idx)
}

// AddBoundaryIncidence records that boundary is a boundary of owner,
// adding the Boundary edge (owner -> boundary) and its dual Incidence
// edge (boundary -> owner) atomically.
func (r *Relationships) AddBoundaryIncidence(owner, boundary basic.UUID) {
	r.add(owner, boundary, RelationBoundary)
	r.add(boundary, owner, RelationIncidence)
}

// AddInternalEmbedding records that internal lies strictly inside
// embedder, adding the Internal edge (internal -> embedder) and its dual
// Embedding edge (embedder -> internal) atomically.
func (r *Relationships) AddInternalEmbedding(internal, embedder basic.UUID) {
	r.add(internal, embedder, RelationInternal)
	r.add(embedder, internal, RelationEmbedding)
}

// AddItem records that collection groups item as a member.
func (r *Relationships) AddItem(collection, item basic.UUID) {
	r.add(collection, item, RelationItem)
}

func filterType(rels []Relation, idxs []int, t RelationType, to bool) []basic.UUID {
	out := make([]basic.UUID, 0, len(idxs))
	for _, i := range idxs {
		if rels[i].Type != t {
			continue
		}
		if to {
			out = append(out, rels[i].To)
		} else {
			out = append(out, rels[i].From)
		}
	}
	return out
}

// Boundaries returns the components that are boundaries of owner, in
// insertion order.
func (r *Relationships) Boundaries(owner basic.UUID) []basic.UUID {
	return filterType(r.relations, r.byFrom[owner], RelationBoundary, true)
}

// Incidences returns the components that boundary is incident to, in
// insertion order.
func (r *Relationships) Incidences(boundary basic.UUID) []basic.UUID {
	return filterType(r.relations, r.byFrom[boundary], RelationIncidence, true)
}

// Internals returns the components that embedder embeds directly.
func (r *Relationships) Internals(embedder basic.UUID) []basic.UUID {
	return filterType(r.relations, r.byFrom[embedder], RelationEmbedding, true)
}

// Embeddings returns the components that internal is embedded in.
func (r *Relationships) Embeddings(internal basic.UUID) []basic.UUID {
	return filterType(r.relations, r.byFrom[internal], RelationInternal, true)
}

// Items returns the components that collection groups, in insertion
// order.
func (r *Relationships) Items(collection basic.UUID) []basic.UUID {
	return filterType(r.relations, r.byFrom[collection], RelationItem, true)
}

// CollectionsContaining returns every collection/boundary that lists
// item as a member.
func (r *Relationships) CollectionsContaining(item basic.UUID) []basic.UUID {
	return filterType(r.relations, r.byTo[item], RelationItem, false)
}

// NbRelations returns the total number of directed edges.
func (r *Relationships) NbRelations() int { return len(r.relations) }

// RemoveComponent deletes every relation touching id, in either
// direction, per spec invariant 2 ("removing a component removes all its
// relations"). The underlying slice is compacted so later iteration
// never observes a tombstoned entry.
func (r *Relationships) RemoveComponent(id basic.UUID) {
	kept := make([]Relation, 0, len(r.relations))
	for _, rel := range r.relations {
		if rel.From == id || rel.To == id {
			continue
		}
		kept = append(kept, rel)
	}
	r.relations = kept
	r.byFrom = make(map[basic.UUID][]int)
	r.byTo = make(map[basic.UUID][]int)
	for i, rel := range r.relations {
		r.byFrom[rel.From] = append(r.byFrom[rel.From], i)
		r.byTo[rel.To] = append(r.byTo[rel.To], i)
	}
}
