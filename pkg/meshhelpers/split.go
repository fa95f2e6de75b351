package meshhelpers

import (
	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/mesh"
)

// VertexRename records that vertex From of a mesh was split into a fresh
// vertex To, carrying the originating point along (To already exists in
// the mesh with point(To) == point(From) by the time this is recorded).
type VertexRename struct {
	From, To basic.Index
}

// MeshesElementsMapping is the record a split/cut operation hands back
// for the BRep layer to propagate into VertexIdentifier, per §4.F.
type MeshesElementsMapping struct {
	VertexSplits []VertexRename
}

// SplitAlongSolidFacets duplicates vertices on the polyhedra bordering
// any facet in cutFacets, so the mesh becomes topologically disconnected
// across that facet set, following the per-vertex algorithm of §4.F:
// partition the polyhedra around each vertex into connected components by
// "shares a facet not in the cut set"; the first component keeps the
// vertex, every other component gets a fresh copy.
func SplitAlongSolidFacets(m *mesh.SolidMesh3, cutFacets []basic.Index) (MeshesElementsMapping, error) {
	cut := make(map[basic.Index]bool, len(cutFacets))
	for _, f := range cutFacets {
		cut[f] = true
	}

	var out MeshesElementsMapping
	nbVertices := m.NbVertices()
	for v := basic.Index(0); int(v) < nbVertices; v++ {
		around := m.PolyhedronAroundVertex(v)
		if len(around) <= 1 {
			continue
		}
		components := partitionByNonCutAdjacency(m, around, cut)
		if len(components) <= 1 {
			continue
		}
		point := m.Point(v)
		for _, comp := range components[1:] {
			fresh := m.CreatePoint(point)
			for _, ph := range comp {
				renamePolyhedronVertex(m, ph, v, fresh)
			}
			out.VertexSplits = append(out.VertexSplits, VertexRename{From: v, To: fresh})
		}
	}
	if len(out.VertexSplits) > 0 {
		m.RebuildFacetKeyIndex()
	}
	return out, nil
}

// partitionByNonCutAdjacency groups the polyhedra in around into
// connected components under the relation "shares a facet with another
// polyhedron in the set, and that facet is not in cut".
func partitionByNonCutAdjacency(m *mesh.SolidMesh3, around []basic.Index, cut map[basic.Index]bool) [][]basic.Index {
	inSet := make(map[basic.Index]bool, len(around))
	for _, p := range around {
		inSet[p] = true
	}
	visited := make(map[basic.Index]bool, len(around))
	var components [][]basic.Index
	for _, start := range around {
		if visited[start] {
			continue
		}
		var comp []basic.Index
		queue := []basic.Index{start}
		visited[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for li := 0; li < m.NbPolyhedronFacets(cur); li++ {
				f := m.PolyhedronFacet(cur, li)
				if cut[f] {
					continue
				}
				nb := m.PolyhedronAdjacent(cur, li)
				if nb == basic.NoID || !inSet[nb] || visited[nb] {
					continue
				}
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
		components = append(components, comp)
	}
	return components
}

// renamePolyhedronVertex rewrites every facet-vertex slot of polyhedron ph
// equal to old to new. Since facets are shared storage, this only touches
// facets exclusively owned by ph's side of a cut; callers rely on the
// earlier CreatePolyhedron/facet-sharing model treating a renamed facet as
// a distinct facet once its vertex set differs, which SolidMesh3's facet
// key index naturally provides through ReplaceVertices at the whole-mesh
// granularity. Here we rewrite facet storage directly.
func renamePolyhedronVertex(m *mesh.SolidMesh3, ph, old, replacement basic.Index) {
	for li := 0; li < m.NbPolyhedronFacets(ph); li++ {
		f := m.PolyhedronFacet(ph, li)
		verts := m.FacetVerticesMutable(f)
		for i, v := range verts {
			if v == old {
				verts[i] = replacement
			}
		}
	}
}
