package model

import "github.com/geode-kernel/geode/pkg/basic"

// BRep is the 3D model: Corner3/Line3/Surface3/Block components plus the
// ModelBoundary/Collection containers that group them (spec §3, BRep's
// ModelBoundary items are surfaces rather than lines). BRepBuilder is the
// sole entry point for mutating it.
type BRep struct {
	corners     map[basic.UUID]*Corner3
	lines       map[basic.UUID]*Line3
	surfaces    map[basic.UUID]*Surface3
	blocks      map[basic.UUID]*Block
	boundaries  map[basic.UUID]*ModelBoundary
	collections map[basic.UUID]*Collection

	cornerOrder     []basic.UUID
	lineOrder       []basic.UUID
	surfaceOrder    []basic.UUID
	blockOrder      []basic.UUID
	boundaryOrder   []basic.UUID
	collectionOrder []basic.UUID

	relationships    *Relationships
	vertexIdentifier *VertexIdentifier
}

// NewBRep creates an empty 3D model.
func NewBRep() *BRep {
	return &BRep{
		corners:          make(map[basic.UUID]*Corner3),
		lines:            make(map[basic.UUID]*Line3),
		surfaces:         make(map[basic.UUID]*Surface3),
		blocks:           make(map[basic.UUID]*Block),
		boundaries:       make(map[basic.UUID]*ModelBoundary),
		collections:      make(map[basic.UUID]*Collection),
		relationships:    NewRelationships(),
		vertexIdentifier: NewVertexIdentifier(),
	}
}

func (b *BRep) Relationships() *Relationships       { return b.relationships }
func (b *BRep) VertexIdentifier() *VertexIdentifier { return b.vertexIdentifier }

func (b *BRep) NbCorners() int  { return len(b.corners) }
func (b *BRep) NbLines() int    { return len(b.lines) }
func (b *BRep) NbSurfaces() int { return len(b.surfaces) }
func (b *BRep) NbBlocks() int   { return len(b.blocks) }

func (b *BRep) Corner(id basic.UUID) *Corner3              { return b.corners[id] }
func (b *BRep) Line(id basic.UUID) *Line3                  { return b.lines[id] }
func (b *BRep) Surface(id basic.UUID) *Surface3             { return b.surfaces[id] }
func (b *BRep) Block(id basic.UUID) *Block                 { return b.blocks[id] }
func (b *BRep) ModelBoundary(id basic.UUID) *ModelBoundary { return b.boundaries[id] }
func (b *BRep) Collection(id basic.UUID) *Collection       { return b.collections[id] }

// Corners returns every corner in creation order.
func (b *BRep) Corners() []*Corner3 {
	out := make([]*Corner3, 0, len(b.cornerOrder))
	for _, id := range b.cornerOrder {
		if c, ok := b.corners[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Lines returns every line in creation order.
func (b *BRep) Lines() []*Line3 {
	out := make([]*Line3, 0, len(b.lineOrder))
	for _, id := range b.lineOrder {
		if l, ok := b.lines[id]; ok {
			out = append(out, l)
		}
	}
	return out
}

// Surfaces returns every surface in creation order.
func (b *BRep) Surfaces() []*Surface3 {
	out := make([]*Surface3, 0, len(b.surfaceOrder))
	for _, id := range b.surfaceOrder {
		if s, ok := b.surfaces[id]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Blocks returns every block in creation order.
func (b *BRep) Blocks() []*Block {
	out := make([]*Block, 0, len(b.blockOrder))
	for _, id := range b.blockOrder {
		if bl, ok := b.blocks[id]; ok {
			out = append(out, bl)
		}
	}
	return out
}
