package model

import (
	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/mesh"
)

// ModelCopyMapping records, per component type, the old uuid -> new uuid
// mapping produced by a whole-model deep copy (spec §4.G).
type ModelCopyMapping struct {
	Corners     map[basic.UUID]basic.UUID
	Lines       map[basic.UUID]basic.UUID
	Surfaces    map[basic.UUID]basic.UUID
	Blocks      map[basic.UUID]basic.UUID
	Boundaries  map[basic.UUID]basic.UUID
	Collections map[basic.UUID]basic.UUID
}

// NewModelCopyMapping creates an empty mapping.
func NewModelCopyMapping() *ModelCopyMapping {
	return &ModelCopyMapping{
		Corners:     make(map[basic.UUID]basic.UUID),
		Lines:       make(map[basic.UUID]basic.UUID),
		Surfaces:    make(map[basic.UUID]basic.UUID),
		Blocks:      make(map[basic.UUID]basic.UUID),
		Boundaries:  make(map[basic.UUID]basic.UUID),
		Collections: make(map[basic.UUID]basic.UUID),
	}
}

func clonePointSet2(src *mesh.PointSet2) *mesh.PointSet2 {
	dst := mesh.NewPointSet2()
	for v := 0; v < src.NbVertices(); v++ {
		dst.CreatePoint(src.Point(basic.Index(v)))
	}
	return dst
}

func cloneEdgedCurve2(src *mesh.EdgedCurve2) *mesh.EdgedCurve2 {
	dst := mesh.NewEdgedCurve2()
	for v := 0; v < src.NbVertices(); v++ {
		dst.CreatePoint(src.Point(basic.Index(v)))
	}
	for e := 0; e < src.NbEdges(); e++ {
		_, _ = dst.CreateEdge(src.EdgeVertex(basic.Index(e), 0), src.EdgeVertex(basic.Index(e), 1))
	}
	return dst
}

func cloneSurfaceMesh2(src *mesh.SurfaceMesh2) *mesh.SurfaceMesh2 {
	dst := mesh.NewSurfaceMesh2()
	for v := 0; v < src.NbVertices(); v++ {
		dst.CreatePoint(src.Point(basic.Index(v)))
	}
	for p := 0; p < src.NbPolygons(); p++ {
		n := src.NbPolygonVertices(basic.Index(p))
		verts := make([]basic.Index, n)
		for k := 0; k < n; k++ {
			verts[k] = src.PolygonVertex(basic.Index(p), k)
		}
		_, _ = dst.CreatePolygon(verts)
	}
	_ = dst.ComputePolygonAdjacencies()
	return dst
}

func clonePointSet3(src *mesh.PointSet3) *mesh.PointSet3 {
	dst := mesh.NewPointSet3()
	for v := 0; v < src.NbVertices(); v++ {
		dst.CreatePoint(src.Point(basic.Index(v)))
	}
	return dst
}

func cloneEdgedCurve3(src *mesh.EdgedCurve3) *mesh.EdgedCurve3 {
	dst := mesh.NewEdgedCurve3()
	for v := 0; v < src.NbVertices(); v++ {
		dst.CreatePoint(src.Point(basic.Index(v)))
	}
	for e := 0; e < src.NbEdges(); e++ {
		_, _ = dst.CreateEdge(src.EdgeVertex(basic.Index(e), 0), src.EdgeVertex(basic.Index(e), 1))
	}
	return dst
}

func cloneSurfaceMesh3(src *mesh.SurfaceMesh3) *mesh.SurfaceMesh3 {
	dst := mesh.NewSurfaceMesh3()
	for v := 0; v < src.NbVertices(); v++ {
		dst.CreatePoint(src.Point(basic.Index(v)))
	}
	for p := 0; p < src.NbPolygons(); p++ {
		n := src.NbPolygonVertices(basic.Index(p))
		verts := make([]basic.Index, n)
		for k := 0; k < n; k++ {
			verts[k] = src.PolygonVertex(basic.Index(p), k)
		}
		_, _ = dst.CreatePolygon(verts)
	}
	_ = dst.ComputePolygonAdjacencies()
	return dst
}

func cloneSolidMesh3(src *mesh.SolidMesh3) *mesh.SolidMesh3 {
	dst := mesh.NewSolidMesh3()
	for v := 0; v < src.NbVertices(); v++ {
		dst.CreatePoint(src.Point(basic.Index(v)))
	}
	for p := 0; p < src.NbPolyhedra(); p++ {
		facets := make([][]basic.Index, src.NbPolyhedronFacets(basic.Index(p)))
		for i := range facets {
			f := src.PolyhedronFacet(basic.Index(p), i)
			n := src.NbFacetVertices(f)
			verts := make([]basic.Index, n)
			for k := 0; k < n; k++ {
				verts[k] = src.FacetVertex(f, k)
			}
			facets[i] = verts
		}
		_, _ = dst.CreatePolyhedron(facets)
	}
	_ = dst.ComputePolyhedronAdjacencies()
	return dst
}

// Copy deep-copies other into b's model, assigning every component a
// fresh uuid and returning the old-to-new mapping for every component
// type. Relations and unique-vertex associations are replayed through
// the new uuids so the copy is fully independent of the source.
func (b *SectionBuilder) Copy(other *Section) *ModelCopyMapping {
	cm := NewModelCopyMapping()

	for _, c := range other.Corners() {
		nc := b.CreateCorner(c.name)
		nc.mesh = clonePointSet2(c.mesh)
		cm.Corners[c.id.UUID] = nc.id.UUID
	}
	for _, l := range other.Lines() {
		nl := b.CreateLine(l.name)
		nl.mesh = cloneEdgedCurve2(l.mesh)
		cm.Lines[l.id.UUID] = nl.id.UUID
	}
	for _, s := range other.Surfaces() {
		ns := b.CreateSurface(s.name)
		ns.mesh = cloneSurfaceMesh2(s.mesh)
		cm.Surfaces[s.id.UUID] = ns.id.UUID
	}
	for _, id := range other.boundaryOrder {
		mb, ok := other.boundaries[id]
		if !ok {
			continue
		}
		nmb := b.CreateModelBoundary(mb.name)
		cm.Boundaries[id] = nmb.id.UUID
	}
	for _, id := range other.collectionOrder {
		col, ok := other.collections[id]
		if !ok {
			continue
		}
		ncol := b.CreateCollection(col.name, col.itemType)
		cm.Collections[id] = ncol.id.UUID
	}

	remap := cm.remapper()
	for _, rel := range other.relationships.relations {
		from, ok1 := remap[rel.From]
		to, ok2 := remap[rel.To]
		if !ok1 || !ok2 {
			continue
		}
		b.model.relationships.add(from, to, rel.Type)
	}
	for u := 0; u < other.vertexIdentifier.NbUniqueVertices(); u++ {
		newU := b.model.vertexIdentifier.CreateUniqueVertex()
		for _, cmv := range other.vertexIdentifier.ComponentMeshVertices(basic.Index(u)) {
			if newComp, ok := remap[cmv.Component]; ok {
				b.model.vertexIdentifier.SetUniqueVertex(ComponentMeshVertex{Component: newComp, Vertex: cmv.Vertex}, newU)
			}
		}
	}
	return cm
}

// Copy deep-copies other into b's model; see SectionBuilder.Copy.
func (b *BRepBuilder) Copy(other *BRep) *ModelCopyMapping {
	cm := NewModelCopyMapping()

	for _, c := range other.Corners() {
		nc := b.CreateCorner(c.name)
		nc.mesh = clonePointSet3(c.mesh)
		cm.Corners[c.id.UUID] = nc.id.UUID
	}
	for _, l := range other.Lines() {
		nl := b.CreateLine(l.name)
		nl.mesh = cloneEdgedCurve3(l.mesh)
		cm.Lines[l.id.UUID] = nl.id.UUID
	}
	for _, s := range other.Surfaces() {
		ns := b.CreateSurface(s.name)
		ns.mesh = cloneSurfaceMesh3(s.mesh)
		cm.Surfaces[s.id.UUID] = ns.id.UUID
	}
	for _, bl := range other.Blocks() {
		nbl := b.CreateBlock(bl.name)
		nbl.mesh = cloneSolidMesh3(bl.mesh)
		cm.Blocks[bl.id.UUID] = nbl.id.UUID
	}
	for _, id := range other.boundaryOrder {
		mb, ok := other.boundaries[id]
		if !ok {
			continue
		}
		nmb := b.CreateModelBoundary(mb.name)
		cm.Boundaries[id] = nmb.id.UUID
	}
	for _, id := range other.collectionOrder {
		col, ok := other.collections[id]
		if !ok {
			continue
		}
		ncol := b.CreateCollection(col.name, col.itemType)
		cm.Collections[id] = ncol.id.UUID
	}

	remap := cm.remapper()
	for _, rel := range other.relationships.relations {
		from, ok1 := remap[rel.From]
		to, ok2 := remap[rel.To]
		if !ok1 || !ok2 {
			continue
		}
		b.model.relationships.add(from, to, rel.Type)
	}
	for u := 0; u < other.vertexIdentifier.NbUniqueVertices(); u++ {
		newU := b.model.vertexIdentifier.CreateUniqueVertex()
		for _, cmv := range other.vertexIdentifier.ComponentMeshVertices(basic.Index(u)) {
			if newComp, ok := remap[cmv.Component]; ok {
				b.model.vertexIdentifier.SetUniqueVertex(ComponentMeshVertex{Component: newComp, Vertex: cmv.Vertex}, newU)
			}
		}
	}
	return cm
}

// remapper flattens every per-type mapping into a single old->new uuid
// lookup, used to replay relations and unique vertices under their new
// identities.
func (cm *ModelCopyMapping) remapper() map[basic.UUID]basic.UUID {
	out := make(map[basic.UUID]basic.UUID)
	for _, m := range []map[basic.UUID]basic.UUID{cm.Corners, cm.Lines, cm.Surfaces, cm.Blocks, cm.Boundaries, cm.Collections} {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
