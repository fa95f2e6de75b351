package modelhelpers

import (
	"github.com/dhconnelly/rtreego"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/model"
	"github.com/geode-kernel/geode/pkg/spatial"
)

// SectionLineAABBTrees builds, per line of section, an AABBTree2 over
// its edges' bounding boxes (spec §4.H create_*_aabb_tree).
func SectionLineAABBTrees(section *model.Section) map[basic.UUID]*spatial.AABBTree2 {
	out := make(map[basic.UUID]*spatial.AABBTree2)
	for _, line := range section.Lines() {
		m := line.Mesh()
		boxes := make([]geometry.BoundingBox2, m.NbEdges())
		for e := range boxes {
			box := geometry.EmptyBoundingBox2()
			box = box.Add(m.Point(m.EdgeVertex(basic.Index(e), 0)))
			box = box.Add(m.Point(m.EdgeVertex(basic.Index(e), 1)))
			boxes[e] = box
		}
		out[line.ComponentID().UUID] = spatial.NewAABBTree2(boxes)
	}
	return out
}

// SectionSurfaceAABBTrees builds, per surface of section, an AABBTree2
// over its polygons' bounding boxes.
func SectionSurfaceAABBTrees(section *model.Section) map[basic.UUID]*spatial.AABBTree2 {
	out := make(map[basic.UUID]*spatial.AABBTree2)
	for _, surface := range section.Surfaces() {
		m := surface.Mesh()
		boxes := make([]geometry.BoundingBox2, m.NbPolygons())
		for p := range boxes {
			box := geometry.EmptyBoundingBox2()
			n := m.NbPolygonVertices(basic.Index(p))
			for k := 0; k < n; k++ {
				box = box.Add(m.Point(m.PolygonVertex(basic.Index(p), k)))
			}
			boxes[p] = box
		}
		out[surface.ComponentID().UUID] = spatial.NewAABBTree2(boxes)
	}
	return out
}

// BRepLineAABBTrees builds, per line of brep, an AABBTree3 over its
// edges' bounding boxes.
func BRepLineAABBTrees(brep *model.BRep) map[basic.UUID]*spatial.AABBTree3 {
	out := make(map[basic.UUID]*spatial.AABBTree3)
	for _, line := range brep.Lines() {
		m := line.Mesh()
		boxes := make([]geometry.BoundingBox3, m.NbEdges())
		for e := range boxes {
			box := geometry.EmptyBoundingBox3()
			box = box.Add(m.Point(m.EdgeVertex(basic.Index(e), 0)))
			box = box.Add(m.Point(m.EdgeVertex(basic.Index(e), 1)))
			boxes[e] = box
		}
		out[line.ComponentID().UUID] = spatial.NewAABBTree3(boxes)
	}
	return out
}

// BRepSurfaceAABBTrees builds, per surface of brep, an AABBTree3 over
// its polygons' bounding boxes.
func BRepSurfaceAABBTrees(brep *model.BRep) map[basic.UUID]*spatial.AABBTree3 {
	out := make(map[basic.UUID]*spatial.AABBTree3)
	for _, surface := range brep.Surfaces() {
		m := surface.Mesh()
		boxes := make([]geometry.BoundingBox3, m.NbPolygons())
		for p := range boxes {
			box := geometry.EmptyBoundingBox3()
			n := m.NbPolygonVertices(basic.Index(p))
			for k := 0; k < n; k++ {
				box = box.Add(m.Point(m.PolygonVertex(basic.Index(p), k)))
			}
			boxes[p] = box
		}
		out[surface.ComponentID().UUID] = spatial.NewAABBTree3(boxes)
	}
	return out
}

// BRepBlockAABBTrees builds, per block of brep, an AABBTree3 over its
// polyhedra's bounding boxes.
func BRepBlockAABBTrees(brep *model.BRep) map[basic.UUID]*spatial.AABBTree3 {
	out := make(map[basic.UUID]*spatial.AABBTree3)
	for _, block := range brep.Blocks() {
		m := block.Mesh()
		boxes := make([]geometry.BoundingBox3, m.NbPolyhedra())
		for p := range boxes {
			box := geometry.EmptyBoundingBox3()
			for i := 0; i < m.NbPolyhedronFacets(basic.Index(p)); i++ {
				f := m.PolyhedronFacet(basic.Index(p), i)
				for k := 0; k < m.NbFacetVertices(f); k++ {
					box = box.Add(m.Point(m.FacetVertex(f, k)))
				}
			}
			boxes[p] = box
		}
		out[block.ComponentID().UUID] = spatial.NewAABBTree3(boxes)
	}
	return out
}

// componentBox adapts a component's bounding box to rtreego.Spatial so
// it can live in a ModelAABBTree.
type componentBox struct {
	id   model.ComponentID
	rect *rtreego.Rect
}

func (c *componentBox) Bounds() *rtreego.Rect { return c.rect }

func boxToRect(box geometry.BoundingBox3) (*rtreego.Rect, error) {
	const minExtent = 1e-9
	lengths := []float64{
		box.Max.X - box.Min.X,
		box.Max.Y - box.Min.Y,
		box.Max.Z - box.Min.Z,
	}
	for i, l := range lengths {
		if l < minExtent {
			lengths[i] = minExtent
		}
	}
	return rtreego.NewRect(rtreego.Point{box.Min.X, box.Min.Y, box.Min.Z}, lengths)
}

// ModelAABBTree is a model-wide index over every geometry-owning
// component's bounding box (one entry per component, not per mesh
// element), used to narrow a spatial query down to the handful of
// components worth querying in detail with their own per-component
// AABBTree3/AABBTree2 (spec §4.H create_*_aabb_tree, model-level tree).
// Backed by github.com/dhconnelly/rtreego rather than pkg/spatial's
// array-backed trees: those are built once over a fixed element count,
// while components are added and removed from a model over its
// lifetime, which rtreego's balanced dynamic insertion supports.
type ModelAABBTree struct {
	tree *rtreego.Rtree
}

// NewBRepModelAABBTree builds a ModelAABBTree over every corner, line,
// surface and block of brep.
func NewBRepModelAABBTree(brep *model.BRep) (*ModelAABBTree, error) {
	tree := rtreego.NewTree(3, 25, 50)
	insert := func(id model.ComponentID, box geometry.BoundingBox3) error {
		rect, err := boxToRect(box)
		if err != nil {
			return err
		}
		tree.Insert(&componentBox{id: id, rect: rect})
		return nil
	}
	for _, c := range brep.Corners() {
		if err := insert(c.ComponentID(), c.Mesh().BoundingBox()); err != nil {
			return nil, err
		}
	}
	for _, l := range brep.Lines() {
		if err := insert(l.ComponentID(), l.Mesh().BoundingBox()); err != nil {
			return nil, err
		}
	}
	for _, s := range brep.Surfaces() {
		if err := insert(s.ComponentID(), s.Mesh().BoundingBox()); err != nil {
			return nil, err
		}
	}
	for _, bl := range brep.Blocks() {
		if err := insert(bl.ComponentID(), bl.Mesh().BoundingBox()); err != nil {
			return nil, err
		}
	}
	return &ModelAABBTree{tree: tree}, nil
}

// ComponentsIntersecting returns the ComponentID of every component
// whose bounding box overlaps box.
func (t *ModelAABBTree) ComponentsIntersecting(box geometry.BoundingBox3) ([]model.ComponentID, error) {
	rect, err := boxToRect(box)
	if err != nil {
		return nil, err
	}
	hits := t.tree.SearchIntersect(rect)
	out := make([]model.ComponentID, len(hits))
	for i, h := range hits {
		out[i] = h.(*componentBox).id
	}
	return out, nil
}

// NbComponents returns the number of components indexed.
func (t *ModelAABBTree) NbComponents() int { return t.tree.Size() }
