package mesh

import (
	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/attribute"
	"github.com/geode-kernel/geode/pkg/basic"
)

// SurfaceMesh2 is the 2D counterpart of SurfaceMesh3, used for section
// polygons and planar cross-sections through a 3D model.
type SurfaceMesh2 struct {
	*PointSet2
	polygonAttrs *attribute.Manager
	polyVertices [][]basic.Index
	polyAdjacent [][]basic.Index

	vertexAroundDirty bool
	vertexAround      [][]basic.Index
}

// NewSurfaceMesh2 creates an empty 2D surface mesh.
func NewSurfaceMesh2() *SurfaceMesh2 {
	return &SurfaceMesh2{PointSet2: NewPointSet2(), polygonAttrs: attribute.NewManager(), vertexAroundDirty: true}
}

// PolygonAttributeManager exposes the per-polygon attribute store.
func (s *SurfaceMesh2) PolygonAttributeManager() *attribute.Manager { return s.polygonAttrs }

// NbPolygons returns the number of polygons.
func (s *SurfaceMesh2) NbPolygons() int { return len(s.polyVertices) }

// NbPolygonVertices returns the arity of polygon p.
func (s *SurfaceMesh2) NbPolygonVertices(p basic.Index) int { return len(s.polyVertices[p]) }

// CreatePolygon appends a polygon with the given boundary vertex list.
func (s *SurfaceMesh2) CreatePolygon(vertices []basic.Index) (basic.Index, error) {
	if len(vertices) < 3 {
		return basic.NoID, errors.New("mesh: polygon needs at least 3 vertices")
	}
	for _, v := range vertices {
		if int(v) >= s.NbVertices() {
			return basic.NoID, errors.Wrap(ErrInvalidReference, "polygon vertex out of range")
		}
	}
	p := basic.Index(len(s.polyVertices))
	s.polyVertices = append(s.polyVertices, append([]basic.Index(nil), vertices...))
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
func (s *SurfaceMesh2) PolygonVertex(p basic.Index, i int) basic.Index {
	return s.polyVertices[p][i]
}

// ComputePolygonAdjacencies rebuilds adjacency exactly like
// SurfaceMesh3.ComputePolygonAdjacencies.
func (s *SurfaceMesh2) ComputePolygonAdjacencies() error {
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

// PolygonAdjacent returns the polygon sharing edge (i, i+1) of p, or
// basic.NoID on a boundary edge.
func (s *SurfaceMesh2) PolygonAdjacent(p basic.Index, edge int) basic.Index {
	return s.polyAdjacent[p][edge]
}

// SetPolygonAdjacent records that polygons p and adjacent share local
// edge `edge` of p.
func (s *SurfaceMesh2) SetPolygonAdjacent(p basic.Index, edge int, adjacent basic.Index) {
	s.polyAdjacent[p][edge] = adjacent
}

// UnsetPolygonAdjacent clears the adjacency on local edge `edge` of p.
func (s *SurfaceMesh2) UnsetPolygonAdjacent(p basic.Index, edge int) {
	s.polyAdjacent[p][edge] = basic.NoID
}

// PolygonAroundVertex returns every polygon touching vertex v.
func (s *SurfaceMesh2) PolygonAroundVertex(v basic.Index) []basic.Index {
	s.ensureVertexAround()
	return s.vertexAround[v]
}

func (s *SurfaceMesh2) ensureVertexAround() {
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

// PolygonArea returns the unsigned area of polygon p via the shoelace
// formula over its boundary loop.
func (s *SurfaceMesh2) PolygonArea(p basic.Index) float64 {
	verts := s.polyVertices[p]
	if len(verts) < 3 {
		return 0
	}
	area := 0.0
	n := len(verts)
	for i := 0; i < n; i++ {
		p0 := s.Point(verts[i])
		p1 := s.Point(verts[(i+1)%n])
		area += p0.X*p1.Y - p1.X*p0.Y
	}
	if area < 0 {
		area = -area
	}
	return 0.5 * area
}

// DeletePolygons removes the polygons flagged in toDelete, compacting
// survivors in relative order and renumbering adjacency references.
func (s *SurfaceMesh2) DeletePolygons(toDelete []bool) ([]basic.Index, error) {
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
func (s *SurfaceMesh2) PermutePolygons(perm []basic.Index) error {
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
func (s *SurfaceMesh2) ReplaceVertex(old, replacement basic.Index) {
	for p, verts := range s.polyVertices {
		for i, v := range verts {
			if v == old {
				s.polyVertices[p][i] = replacement
			}
		}
	}
	s.vertexAroundDirty = true
}

// ReplaceVertices rewrites every polygon corner v to mapping[v] (the
// batch form, no manifoldness assumption).
func (s *SurfaceMesh2) ReplaceVertices(mapping []basic.Index) {
	for p, verts := range s.polyVertices {
		for i, v := range verts {
			s.polyVertices[p][i] = mapping[v]
		}
	}
	s.vertexAroundDirty = true
}

// DeleteIsolatedVertices removes every vertex referenced by no polygon.
func (s *SurfaceMesh2) DeleteIsolatedVertices() ([]basic.Index, error) {
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
