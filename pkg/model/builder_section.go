package model

import (
	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/mesh"
)

// SectionBuilder is the sole entry point for editing a Section (spec
// §4.G: "BRepBuilder/SectionBuilder are the only entry points for
// editing the model").
type SectionBuilder struct {
	model *Section
}

// NewSectionBuilder returns a builder operating on model.
func NewSectionBuilder(model *Section) *SectionBuilder {
	return &SectionBuilder{model: model}
}

// CreateCorner creates a Corner with a fresh default mesh, registering it
// with the model's VertexIdentifier immediately (spec §3 Lifecycle).
func (b *SectionBuilder) CreateCorner(name string) *Corner {
	c := &Corner{id: newComponentID(ComponentCorner), name: name, mesh: mesh.NewPointSet2()}
	b.model.corners[c.id.UUID] = c
	b.model.cornerOrder = append(b.model.cornerOrder, c.id.UUID)
	b.model.vertexIdentifier.Register(c.id.UUID)
	return c
}

// CreateLine creates a Line with a fresh default mesh.
func (b *SectionBuilder) CreateLine(name string) *Line {
	l := &Line{id: newComponentID(ComponentLine), name: name, mesh: mesh.NewEdgedCurve2()}
	b.model.lines[l.id.UUID] = l
	b.model.lineOrder = append(b.model.lineOrder, l.id.UUID)
	b.model.vertexIdentifier.Register(l.id.UUID)
	return l
}

// CreateSurface creates a Surface with a fresh default mesh.
func (b *SectionBuilder) CreateSurface(name string) *Surface {
	s := &Surface{id: newComponentID(ComponentSurface), name: name, mesh: mesh.NewSurfaceMesh2()}
	b.model.surfaces[s.id.UUID] = s
	b.model.surfaceOrder = append(b.model.surfaceOrder, s.id.UUID)
	b.model.vertexIdentifier.Register(s.id.UUID)
	return s
}

// CreateModelBoundary creates an empty ModelBoundary container. Its
// items are added with AddBoundaryItem.
func (b *SectionBuilder) CreateModelBoundary(name string) *ModelBoundary {
	mb := &ModelBoundary{id: newComponentID(ComponentModelBoundary), name: name}
	b.model.boundaries[mb.id.UUID] = mb
	b.model.boundaryOrder = append(b.model.boundaryOrder, mb.id.UUID)
	return mb
}

// CreateCollection creates an empty Collection grouping components of
// itemType.
func (b *SectionBuilder) CreateCollection(name string, itemType ComponentType) *Collection {
	c := &Collection{id: newComponentID(ComponentCollection), name: name, itemType: itemType}
	b.model.collections[c.id.UUID] = c
	b.model.collectionOrder = append(b.model.collectionOrder, c.id.UUID)
	return c
}

// AddLineCornerBoundary records that corner is a boundary of line.
func (b *SectionBuilder) AddLineCornerBoundary(line *Line, corner *Corner) error {
	if err := checkBoundaryDimension(ComponentLine, ComponentCorner); err != nil {
		return err
	}
	b.model.relationships.AddBoundaryIncidence(line.id.UUID, corner.id.UUID)
	return nil
}

// AddSurfaceLineBoundary records that line is a boundary of surface.
func (b *SectionBuilder) AddSurfaceLineBoundary(surface *Surface, line *Line) error {
	if err := checkBoundaryDimension(ComponentSurface, ComponentLine); err != nil {
		return err
	}
	b.model.relationships.AddBoundaryIncidence(surface.id.UUID, line.id.UUID)
	return nil
}

// AddLineInternalToSurface records that line lies strictly inside
// surface without bounding it.
func (b *SectionBuilder) AddLineInternalToSurface(line *Line, surface *Surface) error {
	if err := checkEmbeddingDimension(ComponentLine, ComponentSurface); err != nil {
		return err
	}
	b.model.relationships.AddInternalEmbedding(line.id.UUID, surface.id.UUID)
	return nil
}

// AddBoundaryItem adds line as an item of a Section ModelBoundary (spec
// §3: Section's ModelBoundary groups lines).
func (b *SectionBuilder) AddBoundaryItem(boundary *ModelBoundary, line *Line) {
	b.model.relationships.AddItem(boundary.id.UUID, line.id.UUID)
}

// AddCollectionItem adds component as an item of collection, failing if
// its type does not match the collection's declared item type.
func (b *SectionBuilder) AddCollectionItem(collection *Collection, component Component) error {
	if component.ComponentID().Type != collection.itemType {
		return errors.Wrapf(ErrWrongCollectionItem, "collection %s wants %s, got %s",
			collection.id.UUID, collection.itemType, component.ComponentID().Type)
	}
	b.model.relationships.AddItem(collection.id.UUID, component.ComponentID().UUID)
	return nil
}

// ReplaceCornerMesh swaps c's mesh, propagating the vertex permutation
// through the model's VertexIdentifier so unique-vertex associations
// survive the replacement (spec §4.G).
func (b *SectionBuilder) ReplaceCornerMesh(c *Corner, m *mesh.PointSet2, old2new []basic.Index) {
	c.mesh = m
	b.model.vertexIdentifier.UpdateUniqueVertices(c.id.UUID, old2new)
}

// ReplaceLineMesh swaps l's mesh, propagating the permutation.
func (b *SectionBuilder) ReplaceLineMesh(l *Line, m *mesh.EdgedCurve2, old2new []basic.Index) {
	l.mesh = m
	b.model.vertexIdentifier.UpdateUniqueVertices(l.id.UUID, old2new)
}

// ReplaceSurfaceMesh swaps s's mesh, propagating the permutation.
func (b *SectionBuilder) ReplaceSurfaceMesh(s *Surface, m *mesh.SurfaceMesh2, old2new []basic.Index) {
	s.mesh = m
	b.model.vertexIdentifier.UpdateUniqueVertices(s.id.UUID, old2new)
}

// DeleteCorner removes a corner and cascades its relations and
// VertexIdentifier registration.
func (b *SectionBuilder) DeleteCorner(id basic.UUID) {
	delete(b.model.corners, id)
	b.model.relationships.RemoveComponent(id)
	b.model.vertexIdentifier.Unregister(id)
}

// DeleteLine removes a line and cascades its relations and
// VertexIdentifier registration.
func (b *SectionBuilder) DeleteLine(id basic.UUID) {
	delete(b.model.lines, id)
	b.model.relationships.RemoveComponent(id)
	b.model.vertexIdentifier.Unregister(id)
}

// DeleteSurface removes a surface and cascades its relations and
// VertexIdentifier registration.
func (b *SectionBuilder) DeleteSurface(id basic.UUID) {
	delete(b.model.surfaces, id)
	b.model.relationships.RemoveComponent(id)
	b.model.vertexIdentifier.Unregister(id)
}
