package model

import (
	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/mesh"
)

// BRepBuilder is the sole entry point for editing a BRep.
type BRepBuilder struct {
	model *BRep
}

// NewBRepBuilder returns a builder operating on model.
func NewBRepBuilder(model *BRep) *BRepBuilder {
	return &BRepBuilder{model: model}
}

// CreateCorner creates a Corner3 with a fresh default 3D point mesh.
func (b *BRepBuilder) CreateCorner(name string) *Corner3 {
	c := &Corner3{id: newComponentID(ComponentCorner), name: name, mesh: mesh.NewPointSet3()}
	b.model.corners[c.id.UUID] = c
	b.model.cornerOrder = append(b.model.cornerOrder, c.id.UUID)
	b.model.vertexIdentifier.Register(c.id.UUID)
	return c
}

// CreateLine creates a Line3 with a fresh default 3D edged curve.
func (b *BRepBuilder) CreateLine(name string) *Line3 {
	l := &Line3{id: newComponentID(ComponentLine), name: name, mesh: mesh.NewEdgedCurve3()}
	b.model.lines[l.id.UUID] = l
	b.model.lineOrder = append(b.model.lineOrder, l.id.UUID)
	b.model.vertexIdentifier.Register(l.id.UUID)
	return l
}

// CreateSurface creates a Surface3 with a fresh default 3D surface mesh.
func (b *BRepBuilder) CreateSurface(name string) *Surface3 {
	s := &Surface3{id: newComponentID(ComponentSurface), name: name, mesh: mesh.NewSurfaceMesh3()}
	b.model.surfaces[s.id.UUID] = s
	b.model.surfaceOrder = append(b.model.surfaceOrder, s.id.UUID)
	b.model.vertexIdentifier.Register(s.id.UUID)
	return s
}

// CreateBlock creates a Block with a fresh default SolidMesh3.
func (b *BRepBuilder) CreateBlock(name string) *Block {
	bl := &Block{id: newComponentID(ComponentBlock), name: name, mesh: mesh.NewSolidMesh3()}
	b.model.blocks[bl.id.UUID] = bl
	b.model.blockOrder = append(b.model.blockOrder, bl.id.UUID)
	b.model.vertexIdentifier.Register(bl.id.UUID)
	return bl
}

// CreateModelBoundary creates an empty 3D ModelBoundary, whose items are
// surfaces (spec §3: "a 3D ModelBoundary whose items are surfaces").
func (b *BRepBuilder) CreateModelBoundary(name string) *ModelBoundary {
	mb := &ModelBoundary{id: newComponentID(ComponentModelBoundary), name: name}
	b.model.boundaries[mb.id.UUID] = mb
	b.model.boundaryOrder = append(b.model.boundaryOrder, mb.id.UUID)
	return mb
}

// CreateCollection creates an empty Collection grouping components of
// itemType.
func (b *BRepBuilder) CreateCollection(name string, itemType ComponentType) *Collection {
	c := &Collection{id: newComponentID(ComponentCollection), name: name, itemType: itemType}
	b.model.collections[c.id.UUID] = c
	b.model.collectionOrder = append(b.model.collectionOrder, c.id.UUID)
	return c
}

// AddLineCornerBoundary records that corner is a boundary of line.
func (b *BRepBuilder) AddLineCornerBoundary(line *Line3, corner *Corner3) error {
	if err := checkBoundaryDimension(ComponentLine, ComponentCorner); err != nil {
		return err
	}
	b.model.relationships.AddBoundaryIncidence(line.id.UUID, corner.id.UUID)
	return nil
}

// AddSurfaceLineBoundary records that line is a boundary of surface.
func (b *BRepBuilder) AddSurfaceLineBoundary(surface *Surface3, line *Line3) error {
	if err := checkBoundaryDimension(ComponentSurface, ComponentLine); err != nil {
		return err
	}
	b.model.relationships.AddBoundaryIncidence(surface.id.UUID, line.id.UUID)
	return nil
}

// AddBlockSurfaceBoundary records that surface is a boundary of block.
func (b *BRepBuilder) AddBlockSurfaceBoundary(block *Block, surface *Surface3) error {
	if err := checkBoundaryDimension(ComponentBlock, ComponentSurface); err != nil {
		return err
	}
	b.model.relationships.AddBoundaryIncidence(block.id.UUID, surface.id.UUID)
	return nil
}

// AddSurfaceInternalToBlock records that surface lies strictly inside
// block without bounding it.
func (b *BRepBuilder) AddSurfaceInternalToBlock(surface *Surface3, block *Block) error {
	if err := checkEmbeddingDimension(ComponentSurface, ComponentBlock); err != nil {
		return err
	}
	b.model.relationships.AddInternalEmbedding(surface.id.UUID, block.id.UUID)
	return nil
}

// AddLineInternalToSurface records that line lies strictly inside
// surface.
func (b *BRepBuilder) AddLineInternalToSurface(line *Line3, surface *Surface3) error {
	if err := checkEmbeddingDimension(ComponentLine, ComponentSurface); err != nil {
		return err
	}
	b.model.relationships.AddInternalEmbedding(line.id.UUID, surface.id.UUID)
	return nil
}

// AddBoundaryItem adds surface as an item of a BRep ModelBoundary.
func (b *BRepBuilder) AddBoundaryItem(boundary *ModelBoundary, surface *Surface3) {
	b.model.relationships.AddItem(boundary.id.UUID, surface.id.UUID)
}

// AddCollectionItem adds component as an item of collection, failing if
// its type does not match the collection's declared item type.
func (b *BRepBuilder) AddCollectionItem(collection *Collection, component Component) error {
	if component.ComponentID().Type != collection.itemType {
		return errors.Wrapf(ErrWrongCollectionItem, "collection %s wants %s, got %s",
			collection.id.UUID, collection.itemType, component.ComponentID().Type)
	}
	b.model.relationships.AddItem(collection.id.UUID, component.ComponentID().UUID)
	return nil
}

// ReplaceCornerMesh swaps c's mesh, propagating the vertex permutation
// through the model's VertexIdentifier.
func (b *BRepBuilder) ReplaceCornerMesh(c *Corner3, m *mesh.PointSet3, old2new []basic.Index) {
	c.mesh = m
	b.model.vertexIdentifier.UpdateUniqueVertices(c.id.UUID, old2new)
}

// ReplaceLineMesh swaps l's mesh, propagating the permutation.
func (b *BRepBuilder) ReplaceLineMesh(l *Line3, m *mesh.EdgedCurve3, old2new []basic.Index) {
	l.mesh = m
	b.model.vertexIdentifier.UpdateUniqueVertices(l.id.UUID, old2new)
}

// ReplaceSurfaceMesh swaps s's mesh, propagating the permutation.
func (b *BRepBuilder) ReplaceSurfaceMesh(s *Surface3, m *mesh.SurfaceMesh3, old2new []basic.Index) {
	s.mesh = m
	b.model.vertexIdentifier.UpdateUniqueVertices(s.id.UUID, old2new)
}

// ReplaceBlockMesh swaps block's mesh, propagating the permutation.
func (b *BRepBuilder) ReplaceBlockMesh(block *Block, m *mesh.SolidMesh3, old2new []basic.Index) {
	block.mesh = m
	b.model.vertexIdentifier.UpdateUniqueVertices(block.id.UUID, old2new)
}

// DeleteCorner removes a corner and cascades its relations and
// VertexIdentifier registration.
func (b *BRepBuilder) DeleteCorner(id basic.UUID) {
	delete(b.model.corners, id)
	b.model.relationships.RemoveComponent(id)
	b.model.vertexIdentifier.Unregister(id)
}

// DeleteLine removes a line and cascades its relations and
// VertexIdentifier registration.
func (b *BRepBuilder) DeleteLine(id basic.UUID) {
	delete(b.model.lines, id)
	b.model.relationships.RemoveComponent(id)
	b.model.vertexIdentifier.Unregister(id)
}

// DeleteSurface removes a surface and cascades its relations and
// VertexIdentifier registration.
func (b *BRepBuilder) DeleteSurface(id basic.UUID) {
	delete(b.model.surfaces, id)
	b.model.relationships.RemoveComponent(id)
	b.model.vertexIdentifier.Unregister(id)
}

// DeleteBlock removes a block and cascades its relations and
// VertexIdentifier registration.
func (b *BRepBuilder) DeleteBlock(id basic.UUID) {
	delete(b.model.blocks, id)
	b.model.relationships.RemoveComponent(id)
	b.model.vertexIdentifier.Unregister(id)
}
