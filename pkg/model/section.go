package model

import "github.com/geode-kernel/geode/pkg/basic"

// Section is the 2D model: Corner, Line and Surface components plus the
// ModelBoundary/Collection containers that group them, tied together by
// a Relationships graph and a VertexIdentifier (spec §3 "BRep / Section
// topology"). SectionBuilder is the sole entry point for mutating it.
type Section struct {
	corners     map[basic.UUID]*Corner
	lines       map[basic.UUID]*Line
	surfaces    map[basic.UUID]*Surface
	boundaries  map[basic.UUID]*ModelBoundary
	collections map[basic.UUID]*Collection

	cornerOrder     []basic.UUID
	lineOrder       []basic.UUID
	surfaceOrder    []basic.UUID
	boundaryOrder   []basic.UUID
	collectionOrder []basic.UUID

	relationships    *Relationships
	vertexIdentifier *VertexIdentifier
}

// NewSection creates an empty 2D model.
func NewSection() *Section {
	return &Section{
		corners:          make(map[basic.UUID]*Corner),
		lines:            make(map[basic.UUID]*Line),
		surfaces:         make(map[basic.UUID]*Surface),
		boundaries:       make(map[basic.UUID]*ModelBoundary),
		collections:      make(map[basic.UUID]*Collection),
		relationships:    NewRelationships(),
		vertexIdentifier: NewVertexIdentifier(),
	}
}

func (s *Section) Relationships() *Relationships       { return s.relationships }
func (s *Section) VertexIdentifier() *VertexIdentifier { return s.vertexIdentifier }

func (s *Section) NbCorners() int  { return len(s.corners) }
func (s *Section) NbLines() int    { return len(s.lines) }
func (s *Section) NbSurfaces() int { return len(s.surfaces) }

// Corner returns the corner with the given uuid, or nil if absent.
func (s *Section) Corner(id basic.UUID) *Corner { return s.corners[id] }

// Line returns the line with the given uuid, or nil if absent.
func (s *Section) Line(id basic.UUID) *Line { return s.lines[id] }

// Surface returns the surface with the given uuid, or nil if absent.
func (s *Section) Surface(id basic.UUID) *Surface { return s.surfaces[id] }

// ModelBoundary returns the model boundary with the given uuid, or nil.
func (s *Section) ModelBoundary(id basic.UUID) *ModelBoundary { return s.boundaries[id] }

// Collection returns the collection with the given uuid, or nil.
func (s *Section) Collection(id basic.UUID) *Collection { return s.collections[id] }

// Corners returns every corner in creation order.
func (s *Section) Corners() []*Corner {
	out := make([]*Corner, 0, len(s.cornerOrder))
	for _, id := range s.cornerOrder {
		if c, ok := s.corners[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Lines returns every line in creation order.
func (s *Section) Lines() []*Line {
	out := make([]*Line, 0, len(s.lineOrder))
	for _, id := range s.lineOrder {
		if l, ok := s.lines[id]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Surfaces returns every surface in creation order.
func (s *Section) Surfaces() []*Surface {
	out := make([]*Surface, 0, len(s.surfaceOrder))
	for _, id := range s.surfaceOrder {
		if sf, ok := s.surfaces[id]; ok {
			out = append(out, sf)
		}
	}
	return out
}
