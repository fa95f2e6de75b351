// Package model implements the BRep/Section topology layer: named,
// identified geometric components (Corner, Line, Surface, Block), the
// containers that group them (ModelBoundary, Collection), the typed
// Relationships graph between them, and the VertexIdentifier that tracks
// which component-mesh vertices represent the same physical point.
package model

import (
	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/mesh"
)

// ComponentType enumerates the kinds of named component a model can hold.
type ComponentType int

const (
	ComponentCorner ComponentType = iota
	ComponentLine
	ComponentSurface
	ComponentBlock
	ComponentModelBoundary
	ComponentCollection
)

func (t ComponentType) String() string {
	switch t {
	case ComponentCorner:
		return "Corner"
	case ComponentLine:
		return "Line"
	case ComponentSurface:
		return "Surface"
	case ComponentBlock:
		return "Block"
	case ComponentModelBoundary:
		return "ModelBoundary"
	case ComponentCollection:
		return "Collection"
	default:
		return "Unknown"
	}
}

// Dimension returns the topological dimension of a geometry-owning
// component type, or -1 for container types that do not participate in
// the boundary/incidence dimension ladder.
func (t ComponentType) Dimension() int {
	switch t {
	case ComponentCorner:
		return 0
	case ComponentLine:
		return 1
	case ComponentSurface:
		return 2
	case ComponentBlock:
		return 3
	default:
		return -1
	}
}

// ComponentID is a component's stable identity: its type tag plus uuid.
// Relationships and VertexIdentifier key their internal graphs on the
// bare uuid, but builders and callers work with the typed pair so that
// dimension rules can be enforced without a separate type lookup.
type ComponentID struct {
	Type ComponentType
	UUID basic.UUID
}

// Component is satisfied by every named model entity, geometry-owning or
// not (ModelBoundary and Collection have no mesh of their own).
type Component interface {
	ComponentID() ComponentID
	Name() string
}

func newComponentID(t ComponentType) ComponentID {
	return ComponentID{Type: t, UUID: basic.NewUUID()}
}

// Corner is a Section's 0D component: a single-point mesh in 2D (BRep
// uses Corner3).
type Corner struct {
	id   ComponentID
	name string
	mesh *mesh.PointSet2
}

func (c *Corner) ComponentID() ComponentID { return c.id }
func (c *Corner) Name() string             { return c.name }
func (c *Corner) Mesh() *mesh.PointSet2    { return c.mesh }
func (c *Corner) SetMesh(m *mesh.PointSet2) { c.mesh = m }

// Line is a Section's 1D component: an edged curve in 2D (BRep uses
// Line3).
type Line struct {
	id   ComponentID
	name string
	mesh *mesh.EdgedCurve2
}

func (l *Line) ComponentID() ComponentID  { return l.id }
func (l *Line) Name() string              { return l.name }
func (l *Line) Mesh() *mesh.EdgedCurve2   { return l.mesh }
func (l *Line) SetMesh(m *mesh.EdgedCurve2) { l.mesh = m }

// Surface is a Section's 2D component: a polygonal surface mesh in 2D
// (BRep uses Surface3).
type Surface struct {
	id   ComponentID
	name string
	mesh *mesh.SurfaceMesh2
}

func (s *Surface) ComponentID() ComponentID  { return s.id }
func (s *Surface) Name() string              { return s.name }
func (s *Surface) Mesh() *mesh.SurfaceMesh2  { return s.mesh }
func (s *Surface) SetMesh(m *mesh.SurfaceMesh2) { s.mesh = m }

// Block is a BRep-only 3D component: a polyhedral solid mesh.
type Block struct {
	id   ComponentID
	name string
	mesh *mesh.SolidMesh3
}

func (b *Block) ComponentID() ComponentID   { return b.id }
func (b *Block) Name() string               { return b.name }
func (b *Block) Mesh() *mesh.SolidMesh3     { return b.mesh }
func (b *Block) SetMesh(m *mesh.SolidMesh3) { b.mesh = m }

// Corner3 is a BRep's 0D component: a single-point mesh in 3D, the
// BRep counterpart of Section's 2D Corner.
type Corner3 struct {
	id   ComponentID
	name string
	mesh *mesh.PointSet3
}

func (c *Corner3) ComponentID() ComponentID   { return c.id }
func (c *Corner3) Name() string               { return c.name }
func (c *Corner3) Mesh() *mesh.PointSet3      { return c.mesh }
func (c *Corner3) SetMesh(m *mesh.PointSet3)  { c.mesh = m }

// Line3 is a BRep's 1D component: an edged curve in 3D.
type Line3 struct {
	id   ComponentID
	name string
	mesh *mesh.EdgedCurve3
}

func (l *Line3) ComponentID() ComponentID    { return l.id }
func (l *Line3) Name() string                { return l.name }
func (l *Line3) Mesh() *mesh.EdgedCurve3     { return l.mesh }
func (l *Line3) SetMesh(m *mesh.EdgedCurve3) { l.mesh = m }

// Surface3 is a BRep's 2D component: a polygonal surface mesh embedded
// in 3D space.
type Surface3 struct {
	id   ComponentID
	name string
	mesh *mesh.SurfaceMesh3
}

func (s *Surface3) ComponentID() ComponentID    { return s.id }
func (s *Surface3) Name() string                { return s.name }
func (s *Surface3) Mesh() *mesh.SurfaceMesh3    { return s.mesh }
func (s *Surface3) SetMesh(m *mesh.SurfaceMesh3) { s.mesh = m }

// ModelBoundary groups the components that together bound a higher-level
// entity of the model (e.g. the set of surfaces enclosing a volume of
// interest in a BRep, or the set of lines enclosing a region in a
// Section). Membership is recorded as Item relations in Relationships,
// not as a field here, so the same graph powers every *Collection too.
type ModelBoundary struct {
	id   ComponentID
	name string
}

func (m *ModelBoundary) ComponentID() ComponentID { return m.id }
func (m *ModelBoundary) Name() string             { return m.name }

// Collection groups components of a single type for organisational
// purposes (a CornerCollection, LineCollection, SurfaceCollection or
// BlockCollection in spec terms); ItemType records which component type
// its items must have.
type Collection struct {
	id       ComponentID
	name     string
	itemType ComponentType
}

func (c *Collection) ComponentID() ComponentID { return c.id }
func (c *Collection) Name() string             { return c.name }
func (c *Collection) ItemType() ComponentType  { return c.itemType }
