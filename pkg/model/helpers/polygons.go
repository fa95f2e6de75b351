// Package modelhelpers implements the cross-layer helpers of spec §4.H:
// unique-vertex polygon/edge queries, the radial ordering of surfaces
// around a shared line, block volume, and the AABB trees used to answer
// spatial queries over a whole model.
package modelhelpers

import (
	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/mesh"
	"github.com/geode-kernel/geode/pkg/model"
)

func loopUniqueVertices(vi *model.VertexIdentifier, component basic.UUID, loop []basic.Index) []basic.Index {
	out := make([]basic.Index, len(loop))
	for i, v := range loop {
		out[i] = vi.UniqueVertex(model.ComponentMeshVertex{Component: component, Vertex: v})
	}
	return out
}

// SectionPolygonUniqueVertices returns surface's polygon's vertex loop
// expressed as model-wide unique vertex ids (original_source's
// component_mesh_polygons.hpp polygon_unique_vertices, spec §4.H).
func SectionPolygonUniqueVertices(section *model.Section, surface *model.Surface, polygon basic.Index) []basic.Index {
	m := surface.Mesh()
	n := m.NbPolygonVertices(polygon)
	loop := make([]basic.Index, n)
	for i := 0; i < n; i++ {
		loop[i] = m.PolygonVertex(polygon, i)
	}
	return loopUniqueVertices(section.VertexIdentifier(), surface.ComponentID().UUID, loop)
}

// SectionComponentMeshPolygons maps a surface uuid to the indices of
// every polygon in that surface whose unique-vertex loop is a cyclic
// rotation or reflection of a queried unique-vertex loop.
type SectionComponentMeshPolygons map[basic.UUID][]basic.Index

// FindSectionComponentMeshPolygons is the inverse of
// SectionPolygonUniqueVertices: given a unique-vertex loop, it returns,
// per surface of section, every polygon whose own loop matches it up to
// rotation or reflection.
func FindSectionComponentMeshPolygons(section *model.Section, uniqueVertices []basic.Index) SectionComponentMeshPolygons {
	query := mesh.NewVertexCycle(uniqueVertices)
	out := make(SectionComponentMeshPolygons)
	for _, surface := range section.Surfaces() {
		m := surface.Mesh()
		var hits []basic.Index
		for p := 0; p < m.NbPolygons(); p++ {
			loop := SectionPolygonUniqueVertices(section, surface, basic.Index(p))
			if mesh.NewVertexCycle(loop).Equal(query) {
				hits = append(hits, basic.Index(p))
			}
		}
		if len(hits) > 0 {
			out[surface.ComponentID().UUID] = hits
		}
	}
	return out
}

// SectionEdgeUniqueVertices returns line's edge's two vertices as
// model-wide unique vertex ids.
func SectionEdgeUniqueVertices(section *model.Section, line *model.Line, edge basic.Index) [2]basic.Index {
	m := line.Mesh()
	loop := []basic.Index{m.EdgeVertex(edge, 0), m.EdgeVertex(edge, 1)}
	u := loopUniqueVertices(section.VertexIdentifier(), line.ComponentID().UUID, loop)
	return [2]basic.Index{u[0], u[1]}
}

// SectionComponentMeshEdges maps a line uuid to the indices of every
// edge in that line whose unique-vertex pair equals uniqueVertices, in
// either orientation.
type SectionComponentMeshEdges map[basic.UUID][]basic.Index

// FindSectionComponentMeshEdges is the inverse of
// SectionEdgeUniqueVertices.
func FindSectionComponentMeshEdges(section *model.Section, uniqueVertices [2]basic.Index) SectionComponentMeshEdges {
	out := make(SectionComponentMeshEdges)
	for _, line := range section.Lines() {
		m := line.Mesh()
		var hits []basic.Index
		for e := 0; e < m.NbEdges(); e++ {
			u := SectionEdgeUniqueVertices(section, line, basic.Index(e))
			if u == uniqueVertices || u == [2]basic.Index{uniqueVertices[1], uniqueVertices[0]} {
				hits = append(hits, basic.Index(e))
			}
		}
		if len(hits) > 0 {
			out[line.ComponentID().UUID] = hits
		}
	}
	return out
}

// BRepPolygonUniqueVertices is the BRep counterpart of
// SectionPolygonUniqueVertices, over a Surface3.
func BRepPolygonUniqueVertices(brep *model.BRep, surface *model.Surface3, polygon basic.Index) []basic.Index {
	m := surface.Mesh()
	n := m.NbPolygonVertices(polygon)
	loop := make([]basic.Index, n)
	for i := 0; i < n; i++ {
		loop[i] = m.PolygonVertex(polygon, i)
	}
	return loopUniqueVertices(brep.VertexIdentifier(), surface.ComponentID().UUID, loop)
}

// BRepComponentMeshPolygons is the BRep counterpart of
// SectionComponentMeshPolygons.
type BRepComponentMeshPolygons map[basic.UUID][]basic.Index

// FindBRepComponentMeshPolygons is the BRep counterpart of
// FindSectionComponentMeshPolygons.
func FindBRepComponentMeshPolygons(brep *model.BRep, uniqueVertices []basic.Index) BRepComponentMeshPolygons {
	query := mesh.NewVertexCycle(uniqueVertices)
	out := make(BRepComponentMeshPolygons)
	for _, surface := range brep.Surfaces() {
		m := surface.Mesh()
		var hits []basic.Index
		for p := 0; p < m.NbPolygons(); p++ {
			loop := BRepPolygonUniqueVertices(brep, surface, basic.Index(p))
			if mesh.NewVertexCycle(loop).Equal(query) {
				hits = append(hits, basic.Index(p))
			}
		}
		if len(hits) > 0 {
			out[surface.ComponentID().UUID] = hits
		}
	}
	return out
}

// BRepEdgeUniqueVertices is the BRep counterpart of
// SectionEdgeUniqueVertices, over a Line3.
func BRepEdgeUniqueVertices(brep *model.BRep, line *model.Line3, edge basic.Index) [2]basic.Index {
	m := line.Mesh()
	loop := []basic.Index{m.EdgeVertex(edge, 0), m.EdgeVertex(edge, 1)}
	u := loopUniqueVertices(brep.VertexIdentifier(), line.ComponentID().UUID, loop)
	return [2]basic.Index{u[0], u[1]}
}

// BRepComponentMeshEdges is the BRep counterpart of
// SectionComponentMeshEdges.
type BRepComponentMeshEdges map[basic.UUID][]basic.Index

// FindBRepComponentMeshEdges is the BRep counterpart of
// FindSectionComponentMeshEdges.
func FindBRepComponentMeshEdges(brep *model.BRep, uniqueVertices [2]basic.Index) BRepComponentMeshEdges {
	out := make(BRepComponentMeshEdges)
	for _, line := range brep.Lines() {
		m := line.Mesh()
		var hits []basic.Index
		for e := 0; e < m.NbEdges(); e++ {
			u := BRepEdgeUniqueVertices(brep, line, basic.Index(e))
			if u == uniqueVertices || u == [2]basic.Index{uniqueVertices[1], uniqueVertices[0]} {
				hits = append(hits, basic.Index(e))
			}
		}
		if len(hits) > 0 {
			out[line.ComponentID().UUID] = hits
		}
	}
	return out
}

// BlockPolyhedronFacetUniqueVertices returns the unique-vertex loop of
// polyhedron facet f of block.
func BlockPolyhedronFacetUniqueVertices(brep *model.BRep, block *model.Block, facet basic.Index) []basic.Index {
	m := block.Mesh()
	n := m.NbFacetVertices(facet)
	loop := make([]basic.Index, n)
	for i := 0; i < n; i++ {
		loop[i] = m.FacetVertex(facet, i)
	}
	return loopUniqueVertices(brep.VertexIdentifier(), block.ComponentID().UUID, loop)
}

// BlockPolyhedra maps a block uuid to the indices of every polyhedron in
// that block owning a facet whose unique-vertex loop matches
// uniqueVertices up to rotation or reflection (spec §4.H "block
// polyhedra" query).
type BlockPolyhedra map[basic.UUID][]basic.Index

// FindBlockPolyhedra searches every block of brep for polyhedra with a
// matching facet.
func FindBlockPolyhedra(brep *model.BRep, uniqueVertices []basic.Index) BlockPolyhedra {
	query := mesh.NewVertexCycle(uniqueVertices)
	out := make(BlockPolyhedra)
	for _, block := range brep.Blocks() {
		m := block.Mesh()
		seen := make(map[basic.Index]bool)
		var hits []basic.Index
		for p := 0; p < m.NbPolyhedra(); p++ {
			for i := 0; i < m.NbPolyhedronFacets(basic.Index(p)); i++ {
				f := m.PolyhedronFacet(basic.Index(p), i)
				loop := BlockPolyhedronFacetUniqueVertices(brep, block, f)
				if mesh.NewVertexCycle(loop).Equal(query) {
					if !seen[basic.Index(p)] {
						seen[basic.Index(p)] = true
						hits = append(hits, basic.Index(p))
					}
					break
				}
			}
		}
		if len(hits) > 0 {
			out[block.ComponentID().UUID] = hits
		}
	}
	return out
}

// BlockVerticesFromSurfacePolygon returns the unique-vertex loop of
// surface's polygon, for use as the query passed to FindBlockPolyhedra
// when locating the polyhedron/polyhedra a boundary surface polygon
// borders (spec §4.H block_vertices_from_surface_polygon).
func BlockVerticesFromSurfacePolygon(brep *model.BRep, surface *model.Surface3, polygon basic.Index) []basic.Index {
	return BRepPolygonUniqueVertices(brep, surface, polygon)
}
