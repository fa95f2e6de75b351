package modelhelpers

import (
	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/model"
)

// BlockVolume returns block's volume (spec §4.H block_volume, P10). When
// block's mesh already has polyhedra, it sums their individual volumes
// directly via SolidMesh3.PolyhedronVolume, which already fans each
// polyhedron's own facets from an internal apex and so needs no
// cross-polyhedron orientation handling.
//
// When the block carries no volumetric mesh, the volume is instead
// recovered from its boundary surfaces by fanning every surface's
// polygons into tetrahedra from one shared apex. That only sums to the
// true enclosed volume if every surface's fan is signed consistently
// outward (or consistently inward), so each surface's contribution is
// multiplied by +1 or -1 according to its orientation relative to the
// block, determined by propagating from an arbitrarily chosen first
// surface across the Line orientations the surfaces share (§4.H).
// Boundary surfaces this propagation cannot reach (no shared Line with
// an already-oriented surface) start their own component with an
// arbitrary +1, exactly as the first surface does.
func BlockVolume(brep *model.BRep, block *model.Block) (float64, error) {
	m := block.Mesh()
	if m.NbPolyhedra() > 0 {
		total := 0.0
		for p := 0; p < m.NbPolyhedra(); p++ {
			total += m.PolyhedronVolume(basic.Index(p))
		}
		return total, nil
	}

	surfaces := brep.Relationships().Boundaries(block.ComponentID().UUID)
	if len(surfaces) == 0 {
		return 0, errors.Errorf("block %s has neither polyhedra nor boundary surfaces to compute a volume from", block.ComponentID().UUID)
	}

	signs := propagateSurfaceOrientations(brep, surfaces)

	var apex geometry.Point3
	for _, sID := range surfaces {
		if s := brep.Surface(sID); s != nil && s.Mesh().NbVertices() > 0 {
			apex = s.Mesh().Point(0)
			break
		}
	}

	total := 0.0
	for _, sID := range surfaces {
		surface := brep.Surface(sID)
		if surface == nil {
			continue
		}
		sign := signs[sID]
		sm := surface.Mesh()
		for p := 0; p < sm.NbPolygons(); p++ {
			n := sm.NbPolygonVertices(basic.Index(p))
			if n < 3 {
				continue
			}
			v0 := sm.Point(sm.PolygonVertex(basic.Index(p), 0))
			for k := 1; k < n-1; k++ {
				v1 := sm.Point(sm.PolygonVertex(basic.Index(p), k))
				v2 := sm.Point(sm.PolygonVertex(basic.Index(p), k+1))
				total += sign * geometry.SignedTetrahedronVolume(apex, v0, v1, v2)
			}
		}
	}
	if total < 0 {
		total = -total
	}
	return total, nil
}

// propagateSurfaceOrientations assigns each surface in surfaces a +1/-1
// sign relative to an arbitrarily chosen first surface per connected
// component of the "shares a Line" adjacency graph, per §4.H's orientation
// propagation algorithm. Two surfaces sharing a Line traverse that line's
// edges in the same direction (as seen through their own unique-vertex
// winding) exactly when one of them needs flipping relative to the other;
// that comparison is what assigns the relative sign at each propagation
// step.
func propagateSurfaceOrientations(brep *model.BRep, surfaces []basic.UUID) map[basic.UUID]float64 {
	inBlock := make(map[basic.UUID]bool, len(surfaces))
	for _, s := range surfaces {
		inBlock[s] = true
	}

	signs := make(map[basic.UUID]float64, len(surfaces))
	visited := make(map[basic.UUID]bool, len(surfaces))

	for _, start := range surfaces {
		if visited[start] {
			continue
		}
		signs[start] = 1
		visited[start] = true
		queue := []basic.UUID{start}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			for _, lineID := range brep.Relationships().Boundaries(cur) {
				canonical := lineUniqueVertexEdges(brep, lineID)
				if len(canonical) == 0 {
					continue
				}
				curDir := surfaceEdgeDirection(brep, cur, canonical)
				if curDir == 0 {
					continue
				}
				for _, nb := range brep.Relationships().Incidences(lineID) {
					if nb == cur || !inBlock[nb] || visited[nb] {
						continue
					}
					nbDir := surfaceEdgeDirection(brep, nb, canonical)
					if nbDir == 0 {
						continue
					}
					relative := 1.0
					if curDir == nbDir {
						// Same traversal direction along the shared line
						// means the two surfaces' local windings disagree,
						// so the fan contribution needs the opposite sign
						// to keep a globally consistent outward orientation.
						relative = -1.0
					}
					signs[nb] = signs[cur] * relative
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
	}
	return signs
}

// lineUniqueVertexEdges returns line's edges as ordered pairs of
// model-wide unique-vertex ids, in the line mesh's own edge order. That
// order is the line's canonical direction for orientation comparisons.
func lineUniqueVertexEdges(brep *model.BRep, lineID basic.UUID) [][2]basic.Index {
	line := brep.Line(lineID)
	if line == nil {
		return nil
	}
	lm := line.Mesh()
	edges := make([][2]basic.Index, 0, lm.NbEdges())
	for e := 0; e < lm.NbEdges(); e++ {
		u0 := brep.VertexIdentifier().UniqueVertex(model.ComponentMeshVertex{Component: lineID, Vertex: lm.EdgeVertex(basic.Index(e), 0)})
		u1 := brep.VertexIdentifier().UniqueVertex(model.ComponentMeshVertex{Component: lineID, Vertex: lm.EdgeVertex(basic.Index(e), 1)})
		edges = append(edges, [2]basic.Index{u0, u1})
	}
	return edges
}

// surfaceEdgeDirection reports how surfaceID traverses one of canonical's
// edges: +1 if some polygon edge matches a canonical edge in the same
// direction, -1 if reversed, 0 if the surface has no polygon edge along
// any canonical edge at all.
func surfaceEdgeDirection(brep *model.BRep, surfaceID basic.UUID, canonical [][2]basic.Index) int {
	surface := brep.Surface(surfaceID)
	if surface == nil {
		return 0
	}
	canonicalSet := make(map[[2]basic.Index]bool, len(canonical))
	for _, e := range canonical {
		canonicalSet[e] = true
	}

	sm := surface.Mesh()
	for p := 0; p < sm.NbPolygons(); p++ {
		n := sm.NbPolygonVertices(basic.Index(p))
		for k := 0; k < n; k++ {
			v0 := brep.VertexIdentifier().UniqueVertex(model.ComponentMeshVertex{Component: surfaceID, Vertex: sm.PolygonVertex(basic.Index(p), k)})
			v1 := brep.VertexIdentifier().UniqueVertex(model.ComponentMeshVertex{Component: surfaceID, Vertex: sm.PolygonVertex(basic.Index(p), (k+1)%n)})
			if canonicalSet[[2]basic.Index{v0, v1}] {
				return 1
			}
			if canonicalSet[[2]basic.Index{v1, v0}] {
				return -1
			}
		}
	}
	return 0
}
