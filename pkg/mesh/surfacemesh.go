package mesh

import (
	"math"

	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/attribute"
	"github.com/geode-kernel/geode/pkg/basic"
)

// SurfaceMesh3 is a polygonal mesh in 3D: vertices carry points, and
// polygons have variable arity with an oriented boundary. Adjacency is
// stored per polygon edge (the edge between local corners i and i+1),
// basic.NoID marking a boundary edge, per §4.E.
type SurfaceMesh3 struct {
	*PointSet3
	polygonAttrs *attribute.Manager
	polyVertices [][]basic.Index
	polyAdjacent [][]basic.Index

	vertexAroundDirty bool
	vertexAround      [][]basic.Index // reverse index: vertex -> polygons touching it
}

// NewSurfaceMesh3 creates an empty 3D surface mesh.
func NewSurfaceMesh3() *SurfaceMesh3 {
	return &SurfaceMesh3{PointSet3: NewPointSet3(), polygonAttrs: attribute.NewManager(), vertexAroundDirty: true}
}

// PolygonAttributeManager exposes the per-polygon attribute store.
func (s *SurfaceMesh3) PolygonAttributeManager() *attribute.Manager { return s.polygonAttrs }

// NbPolygons returns the number of polygons.
func (s *SurfaceMesh3) NbPolygons() int { return len(s.polyVertices) }

// NbPolygonVertices returns the arity of polygon p.
func (s *SurfaceMesh3) NbPolygonVertices(p basic.Index) int { return len(s.polyVertices[p]) }

// CreatePolygon appends a polygon with the given, CCW-oriented boundary
// vertex list and returns its index. Adjacency starts fully unset.
func (s *SurfaceMesh3) CreatePolygon(vertices []basic.Index) (basic.Index, error) {
	if len(vertices) < 3 {
		return basic.NoID, errors.New("mesh: polygon needs at least 3 vertices")
	}
	for _, v := range vertices {
		if int(v) >= s.NbVertices() {
			return basic.NoID, errors.Wrap(ErrInvalidReference, "polygon vertex out of range")
		}
	}
	p := basic.Index(len(s.polyVertices))
	vcopy := append([]basic.Index(nil), vertices...)
	s.polyVertices = append(s.polyVertices, vcopy)
	adj := make([]basic.Index, len(vertices))
	for i := range adj {
		adj[i] = basic.NoID
	}
	s.polyAdjacent = append(s.polyAdjacent, adj)
	s.polygonAttrs.Resize(len(s.polyVertices))
	s.vertexAroundDirty = true
	return p, nil
}

// PolygonVertex returns the vertex at local corner i of polygon p.
func (s *SurfaceMesh3) PolygonVertex(p basic.Index, i int) basic.Index {
	return s.polyVertices[p][i]
}

// SetPolygonVertex rewrites local corner i of polygon p.
func (s *SurfaceMesh3) SetPolygonVertex(p basic.Index, i int, v basic.Index) error {
	if int(v) >= s.NbVertices() {
		return errors.Wrap(ErrInvalidReference, "polygon vertex out of range")
	}
	s.polyVertices[p][i] = v
	s.vertexAroundDirty = true
	return nil
}

// PolygonAdjacent returns the polygon sharing the edge (i, i+1) of
// polygon p, or basic.NoID on a boundary edge.
func (s *SurfaceMesh3) PolygonAdjacent(p basic.Index, edge int) basic.Index {
	return s.polyAdjacent[p][edge]
}

// SetPolygonAdjacent records that polygons p and adjacent share local
// edge `edge` of p. Does not look up or set the reciprocal edge on
// adjacent; callers needing a symmetric update should call this twice,
// or use ComputePolygonAdjacencies to derive the whole table at once.
func (s *SurfaceMesh3) SetPolygonAdjacent(p basic.Index, edge int, adjacent basic.Index) {
	s.polyAdjacent[p][edge] = adjacent
}

// UnsetPolygonAdjacent clears the adjacency on local edge `edge` of p.
func (s *SurfaceMesh3) UnsetPolygonAdjacent(p basic.Index, edge int) {
	s.polyAdjacent[p][edge] = basic.NoID
}

// edgeKey returns a canonical, orientation-independent key for the edge
// between vertices a and b.
func edgeKey(a, b basic.Index) [2]basic.Index {
	if a < b {
		return [2]basic.Index{a, b}
	}
	return [2]basic.Index{b, a}
}

type halfedgeRef struct {
	polygon basic.Index
	edge    int
	v0, v1  basic.Index // in boundary order, v0->v1
}

// ComputePolygonAdjacencies rebuilds the entire adjacency table from
// scratch by grouping half-edges that share the same unordered vertex
// pair. An edge shared by more than two polygons, or by exactly two
// polygons whose half-edges run in the same direction (an orientation
// inconsistency), is reported as ErrNonManifold, satisfying property P3
// (adjacency reciprocity: if q is adjacent to p, p is adjacent to q on
// the matching edge).
func (s *SurfaceMesh3) ComputePolygonAdjacencies() error {
	buckets := make(map[[2]basic.Index][]halfedgeRef)
	for p := 0; p < len(s.polyVertices); p++ {
		verts := s.polyVertices[p]
		n := len(verts)
		for i := 0; i < n; i++ {
			v0, v1 := verts[i], verts[(i+1)%n]
			key := edgeKey(v0, v1)
			buckets[key] = append(buckets[key], halfedgeRef{basic.Index(p), i, v0, v1})
		}
	}
	for p := range s.polyAdjacent {
		for i := range s.polyAdjacent[p] {
			s.polyAdjacent[p][i] = basic.NoID
		}
	}
	for key, halves := range buckets {
		switch {
		case len(halves) == 1:
			// boundary edge, stays unset
		case len(halves) == 2:
			a, b := halves[0], halves[1]
			if a.v0 == b.v0 && a.v1 == b.v1 {
				return errors.Wrapf(ErrNonManifold, "edge %v shared by two polygons with identical orientation", key)
			}
			s.polyAdjacent[a.polygon][a.edge] = b.polygon
			s.polyAdjacent[b.polygon][b.edge] = a.polygon
		default:
			return errors.Wrapf(ErrNonManifold, "edge %v shared by %d polygons", key, len(halves))
		}
	}
	return nil
}

// PolygonAroundVertex returns every polygon touching vertex v, built
// lazily and cached until the next topology mutation (property P4: the
// reverse index always matches the current polygon list).
func (s *SurfaceMesh3) PolygonAroundVertex(v basic.Index) []basic.Index {
	s.ensureVertexAround()
	return s.vertexAround[v]
}

func (s *SurfaceMesh3) ensureVertexAround() {
	if !s.vertexAroundDirty {
		return
	}
	s.vertexAround = make([][]basic.Index, s.NbVertices())
	for p, verts := range s.polyVertices {
		for _, v := range verts {
			s.vertexAround[v] = append(s.vertexAround[v], basic.Index(p))
		}
	}
	s.vertexAroundDirty = false
}

// DeletePolygons removes the polygons flagged in toDelete, compacting
// survivors in relative order and renumbering adjacency references. It
// does not touch vertices; call DeleteIsolatedVertices afterward if
// needed.
func (s *SurfaceMesh3) DeletePolygons(toDelete []bool) ([]basic.Index, error) {
	if len(toDelete) != len(s.polyVertices) {
		return nil, errors.Wrapf(ErrSizeMismatch, "delete mask length %d != %d polygons", len(toDelete), len(s.polyVertices))
	}
	oldToNew := make([]basic.Index, len(s.polyVertices))
	var newVerts [][]basic.Index
	var newAdj [][]basic.Index
	next := 0
	for p, del := range toDelete {
		if del {
			oldToNew[p] = basic.NoID
			continue
		}
		oldToNew[p] = basic.Index(next)
		newVerts = append(newVerts, s.polyVertices[p])
		newAdj = append(newAdj, s.polyAdjacent[p])
		next++
	}
	for _, adj := range newAdj {
		for i, a := range adj {
			if a == basic.NoID {
				continue
			}
			if int(a) >= len(oldToNew) || oldToNew[a] == basic.NoID {
				adj[i] = basic.NoID
				continue
			}
			adj[i] = oldToNew[a]
		}
	}
	s.polyVertices = newVerts
	s.polyAdjacent = newAdj
	mask := make([]bool, len(toDelete))
	copy(mask, toDelete)
	if _, err := s.polygonAttrs.DeleteElements(mask); err != nil {
		return nil, err
	}
	s.vertexAroundDirty = true
	return oldToNew, nil
}

// PermutePolygons reorders polygons according to perm.
func (s *SurfaceMesh3) PermutePolygons(perm []basic.Index) error {
	if len(perm) != len(s.polyVertices) {
		return errors.Wrapf(ErrSizeMismatch, "permutation length %d != %d polygons", len(perm), len(s.polyVertices))
	}
	newVerts := make([][]basic.Index, len(perm))
	newAdj := make([][]basic.Index, len(perm))
	for old, dst := range perm {
		newVerts[dst] = s.polyVertices[old]
		newAdj[dst] = s.polyAdjacent[old]
	}
	for _, adj := range newAdj {
		for i, a := range adj {
			if a != basic.NoID {
				adj[i] = perm[a]
			}
		}
	}
	s.polyVertices = newVerts
	s.polyAdjacent = newAdj
	if err := s.polygonAttrs.PermuteElements(perm); err != nil {
		return err
	}
	s.vertexAroundDirty = true
	return nil
}

// ReplaceVertex rewrites every polygon corner equal to old to point at
// replacement instead.
func (s *SurfaceMesh3) ReplaceVertex(old, replacement basic.Index) {
	for p, verts := range s.polyVertices {
		for i, v := range verts {
			if v == old {
				s.polyVertices[p][i] = replacement
			}
		}
	}
	s.vertexAroundDirty = true
}

// ReplaceVertices rewrites every polygon corner v to mapping[v], for the
// batch form that does not assume local manifoldness around any single
// renamed vertex (§4.E: "the batch form does not [assume manifoldness]").
func (s *SurfaceMesh3) ReplaceVertices(mapping []basic.Index) {
	for p, verts := range s.polyVertices {
		for i, v := range verts {
			s.polyVertices[p][i] = mapping[v]
		}
	}
	s.vertexAroundDirty = true
}

// DeleteIsolatedVertices removes every vertex referenced by no polygon.
func (s *SurfaceMesh3) DeleteIsolatedVertices() ([]basic.Index, error) {
	referenced := make([]bool, s.NbVertices())
	for _, verts := range s.polyVertices {
		for _, v := range verts {
			referenced[v] = true
		}
	}
	toDelete := make([]bool, s.NbVertices())
	for i, r := range referenced {
		toDelete[i] = !r
	}
	oldToNew, err := s.DeleteVertices(toDelete)
	if err != nil {
		return nil, err
	}
	for p, verts := range s.polyVertices {
		for i, v := range verts {
			s.polyVertices[p][i] = oldToNew[v]
		}
	}
	s.vertexAroundDirty = true
	return oldToNew, nil
}

// PolygonArea returns the area of polygon p's boundary via a fan of
// triangles from its first vertex.
func (s *SurfaceMesh3) PolygonArea(p basic.Index) float64 {
	verts := s.polyVertices[p]
	if len(verts) < 3 {
		return 0
	}
	p0 := s.Point(verts[0])
	total := 0.0
	for i := 1; i+1 < len(verts); i++ {
		p1 := s.Point(verts[i])
		p2 := s.Point(verts[i+1])
		e1 := p1.Sub(p0)
		e2 := p2.Sub(p0)
		cx := e1.Y*e2.Z - e1.Z*e2.Y
		cy := e1.Z*e2.X - e1.X*e2.Z
		cz := e1.X*e2.Y - e1.Y*e2.X
		total += 0.5 * math.Sqrt(cx*cx+cy*cy+cz*cz)
	}
	return total
}
