package mesh

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/attribute"
	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
)

// facetOwner records which polyhedron, at which local facet slot, first
// contributed a shared facet.
type facetOwner struct {
	polyhedron basic.Index
	localFacet int
}

// SolidMesh3 is a polyhedral mesh: every polyhedron is a list of facets,
// and facets are themselves polygons deduplicated across the polyhedra
// that share them (the derived SolidFacets structure of §4.E). A facet
// referenced by exactly two polyhedra makes them adjacent across it; more
// than two is non-manifold.
type SolidMesh3 struct {
	*PointSet3
	polyhedronAttrs *attribute.Manager
	facetAttrs      *attribute.Manager

	polyhedronFacets   [][]basic.Index // polyhedron -> local facet list, each an index into facetVertices
	polyhedronAdjacent [][]basic.Index // polyhedron -> per local facet, adjacent polyhedron or NoID

	facetVertices []basic.Index   // shared facet table, canonical boundary order
	facetOffsets  []int           // CRS offsets into facetVertices, len = nbFacets+1
	facetRefCount []int
	facetOwners   [][]facetOwner
	facetKeyIndex map[string]basic.Index
}

// NewSolidMesh3 creates an empty solid mesh.
func NewSolidMesh3() *SolidMesh3 {
	return &SolidMesh3{
		PointSet3:       NewPointSet3(),
		polyhedronAttrs: attribute.NewManager(),
		facetAttrs:      attribute.NewManager(),
		facetOffsets:    []int{0},
		facetKeyIndex:   make(map[string]basic.Index),
	}
}

// PolyhedronAttributeManager exposes the per-polyhedron attribute store.
func (s *SolidMesh3) PolyhedronAttributeManager() *attribute.Manager { return s.polyhedronAttrs }

// FacetAttributeManager exposes the per-facet attribute store (a facet is
// shared by every polyhedron that lists it; ComputePolyhedronAdjacencies
// reports a facet shared by more than two as non-manifold).
func (s *SolidMesh3) FacetAttributeManager() *attribute.Manager { return s.facetAttrs }

// NbPolyhedra returns the number of polyhedra.
func (s *SolidMesh3) NbPolyhedra() int { return len(s.polyhedronFacets) }

// NbFacets returns the number of distinct shared facets.
func (s *SolidMesh3) NbFacets() int { return len(s.facetOffsets) - 1 }

func facetKey(vertices []basic.Index) string {
	sorted := append([]basic.Index(nil), vertices...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var b strings.Builder
	for _, v := range sorted {
		b.WriteString(strconv.FormatUint(uint64(v), 10))
		b.WriteByte(',')
	}
	return b.String()
}

func (s *SolidMesh3) facetVerticesAt(f basic.Index) []basic.Index {
	return s.facetVertices[s.facetOffsets[f]:s.facetOffsets[f+1]]
}

// CreatePolyhedron appends a polyhedron bounded by the given facets (each
// a CCW-from-outside vertex list) and returns its index. A facet whose
// unordered vertex set matches one already created elsewhere becomes
// shared: its reference count increments instead of duplicating storage.
func (s *SolidMesh3) CreatePolyhedron(facets [][]basic.Index) (basic.Index, error) {
	ph := basic.Index(len(s.polyhedronFacets))
	localFacets := make([]basic.Index, 0, len(facets))
	for localIdx, verts := range facets {
		if len(verts) < 3 {
			return basic.NoID, errors.New("mesh: facet needs at least 3 vertices")
		}
		for _, v := range verts {
			if int(v) >= s.NbVertices() {
				return basic.NoID, errors.Wrap(ErrInvalidReference, "facet vertex out of range")
			}
		}
		key := facetKey(verts)
		if existing, ok := s.facetKeyIndex[key]; ok {
			s.facetRefCount[existing]++
			s.facetOwners[existing] = append(s.facetOwners[existing], facetOwner{ph, localIdx})
			localFacets = append(localFacets, existing)
			continue
		}
		f := basic.Index(s.NbFacets())
		s.facetVertices = append(s.facetVertices, verts...)
		s.facetOffsets = append(s.facetOffsets, len(s.facetVertices))
		s.facetRefCount = append(s.facetRefCount, 1)
		s.facetOwners = append(s.facetOwners, []facetOwner{{ph, localIdx}})
		s.facetKeyIndex[key] = f
		s.facetAttrs.Resize(s.NbFacets())
		localFacets = append(localFacets, f)
	}
	s.polyhedronFacets = append(s.polyhedronFacets, localFacets)
	adj := make([]basic.Index, len(localFacets))
	for i := range adj {
		adj[i] = basic.NoID
	}
	s.polyhedronAdjacent = append(s.polyhedronAdjacent, adj)
	s.polyhedronAttrs.Resize(s.NbPolyhedra())
	return ph, nil
}

// PolyhedronFacet returns the shared-facet index at local slot i of
// polyhedron p.
func (s *SolidMesh3) PolyhedronFacet(p basic.Index, i int) basic.Index {
	return s.polyhedronFacets[p][i]
}

// NbPolyhedronFacets returns how many facets bound polyhedron p.
func (s *SolidMesh3) NbPolyhedronFacets(p basic.Index) int { return len(s.polyhedronFacets[p]) }

// FacetVertex returns vertex i of shared facet f's canonical boundary.
func (s *SolidMesh3) FacetVertex(f basic.Index, i int) basic.Index {
	return s.facetVerticesAt(f)[i]
}

// NbFacetVertices returns the arity of shared facet f.
func (s *SolidMesh3) NbFacetVertices(f basic.Index) int { return len(s.facetVerticesAt(f)) }

// FacetVerticesMutable returns a mutable slice view into facet f's
// canonical boundary vertex storage, for callers (mesh-splitting helpers)
// that rewrite individual corners in place. The facet key index is not
// kept in sync by this accessor; callers must rebuild it (e.g. via
// ReplaceVertices) once all renames for an operation are applied.
func (s *SolidMesh3) FacetVerticesMutable(f basic.Index) []basic.Index {
	return s.facetVerticesAt(f)
}

// PolyhedronAdjacent returns the polyhedron sharing local facet i of p,
// or basic.NoID if that facet is on the solid's boundary.
func (s *SolidMesh3) PolyhedronAdjacent(p basic.Index, i int) basic.Index {
	return s.polyhedronAdjacent[p][i]
}

// ComputePolyhedronAdjacencies derives adjacency from facet reference
// counts: a facet shared by exactly two polyhedra makes them adjacent
// across it, and a facet shared by more than two is non-manifold.
func (s *SolidMesh3) ComputePolyhedronAdjacencies() error {
	for p := range s.polyhedronAdjacent {
		for i := range s.polyhedronAdjacent[p] {
			s.polyhedronAdjacent[p][i] = basic.NoID
		}
	}
	for f, count := range s.facetRefCount {
		switch {
		case count == 1:
		case count == 2:
			a, b := s.facetOwners[f][0], s.facetOwners[f][1]
			s.polyhedronAdjacent[a.polyhedron][a.localFacet] = b.polyhedron
			s.polyhedronAdjacent[b.polyhedron][b.localFacet] = a.polyhedron
		default:
			return errors.Wrapf(ErrNonManifold, "facet %d shared by %d polyhedra", f, count)
		}
	}
	return nil
}

// ReplaceVertex rewrites every facet corner equal to old to point at
// replacement instead. The facet key index is rebuilt since vertex
// identities it is keyed on have changed.
func (s *SolidMesh3) ReplaceVertex(old, replacement basic.Index) {
	for i, v := range s.facetVertices {
		if v == old {
			s.facetVertices[i] = replacement
		}
	}
	s.facetKeyIndex = make(map[string]basic.Index, len(s.facetOffsets)-1)
	for f := 0; f < s.NbFacets(); f++ {
		s.facetKeyIndex[facetKey(s.facetVerticesAt(basic.Index(f)))] = basic.Index(f)
	}
}

// PolyhedronVertices returns the sorted, deduplicated set of vertices
// bounding polyhedron p, derived from the union of its facets' vertex
// lists (the spec's "list of vertex indices" the polyhedron owns).
func (s *SolidMesh3) PolyhedronVertices(p basic.Index) []basic.Index {
	seen := make(map[basic.Index]bool)
	var out []basic.Index
	for _, f := range s.polyhedronFacets[p] {
		for _, v := range s.facetVerticesAt(f) {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PolyhedronVolume returns the unsigned volume of polyhedron p, computed
// as the sum of signed tetrahedra fanned from the polyhedron's barycenter
// through each facet's own triangle fan, per §4.H's block_volume
// tetrahedron-fan technique applied at polyhedron scale.
func (s *SolidMesh3) PolyhedronVolume(p basic.Index) float64 {
	verts := s.PolyhedronVertices(p)
	if len(verts) == 0 {
		return 0
	}
	pts := make([]geometry.Point3, len(verts))
	for i, v := range verts {
		pts[i] = s.Point(v)
	}
	anchor := geometry.Barycenter3(pts)
	total := 0.0
	for _, f := range s.polyhedronFacets[p] {
		fverts := s.facetVerticesAt(f)
		if len(fverts) < 3 {
			continue
		}
		p0 := s.Point(fverts[0])
		for i := 1; i+1 < len(fverts); i++ {
			p1 := s.Point(fverts[i])
			p2 := s.Point(fverts[i+1])
			total += geometry.SignedTetrahedronVolume(anchor, p0, p1, p2)
		}
	}
	if total < 0 {
		total = -total
	}
	return total
}

// PolyhedronAroundVertex returns every polyhedron that references vertex
// v through any of its facets (property P4's reverse index, at solid
// granularity).
func (s *SolidMesh3) PolyhedronAroundVertex(v basic.Index) []basic.Index {
	var out []basic.Index
	for p := 0; p < s.NbPolyhedra(); p++ {
		for _, f := range s.polyhedronFacets[p] {
			found := false
			for _, fv := range s.facetVerticesAt(f) {
				if fv == v {
					found = true
					break
				}
			}
			if found {
				out = append(out, basic.Index(p))
				break
			}
		}
	}
	return out
}

// DeletePolyhedra removes the polyhedra flagged in toDelete, compacting
// survivors in relative order and decrementing the reference count of
// every facet they owned. Facets whose count reaches zero stay in the
// facet table until CleanUnusedFacets removes them.
func (s *SolidMesh3) DeletePolyhedra(toDelete []bool) ([]basic.Index, error) {
	if len(toDelete) != s.NbPolyhedra() {
		return nil, errors.Wrapf(ErrSizeMismatch, "delete mask length %d != %d polyhedra", len(toDelete), s.NbPolyhedra())
	}
	oldToNew := make([]basic.Index, s.NbPolyhedra())
	var newFacets [][]basic.Index
	var newAdj [][]basic.Index
	next := 0
	for p, del := range toDelete {
		if del {
			oldToNew[p] = basic.NoID
			for _, f := range s.polyhedronFacets[p] {
				s.facetRefCount[f]--
			}
			continue
		}
		oldToNew[p] = basic.Index(next)
		newFacets = append(newFacets, s.polyhedronFacets[p])
		newAdj = append(newAdj, s.polyhedronAdjacent[p])
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
	s.polyhedronFacets = newFacets
	s.polyhedronAdjacent = newAdj
	mask := make([]bool, len(toDelete))
	copy(mask, toDelete)
	if _, err := s.polyhedronAttrs.DeleteElements(mask); err != nil {
		return nil, err
	}
	s.rebuildFacetOwners()
	return oldToNew, nil
}

// rebuildFacetOwners recomputes facetOwners and facetRefCount from the
// current polyhedronFacets table, used after a polyhedron deletion
// renumbers polyhedra out from under the facet-sharing bookkeeping.
func (s *SolidMesh3) rebuildFacetOwners() {
	for f := range s.facetOwners {
		s.facetOwners[f] = nil
		s.facetRefCount[f] = 0
	}
	for p, facets := range s.polyhedronFacets {
		for local, f := range facets {
			s.facetOwners[f] = append(s.facetOwners[f], facetOwner{basic.Index(p), local})
			s.facetRefCount[f]++
		}
	}
}

// CleanUnusedFacets removes facets whose reference count has dropped to
// zero (every polyhedron that owned them has been deleted), compacting
// the shared facet table. Mirrors the "clean deletes entries with counter
// 0" rule the spec gives for derived sub-meshes.
func (s *SolidMesh3) CleanUnusedFacets() ([]basic.Index, error) {
	toDelete := make([]bool, s.NbFacets())
	for f, count := range s.facetRefCount {
		toDelete[f] = count <= 0
	}
	oldToNew := make([]basic.Index, s.NbFacets())
	var newVerts []basic.Index
	newOffsets := []int{0}
	var newRefCount []int
	var newOwners [][]facetOwner
	next := 0
	for f := 0; f < s.NbFacets(); f++ {
		if toDelete[f] {
			oldToNew[f] = basic.NoID
			continue
		}
		oldToNew[f] = basic.Index(next)
		newVerts = append(newVerts, s.facetVerticesAt(basic.Index(f))...)
		newOffsets = append(newOffsets, len(newVerts))
		newRefCount = append(newRefCount, s.facetRefCount[f])
		newOwners = append(newOwners, s.facetOwners[f])
		next++
	}
	s.facetVertices = newVerts
	s.facetOffsets = newOffsets
	s.facetRefCount = newRefCount
	s.facetOwners = newOwners
	mask := make([]bool, len(toDelete))
	copy(mask, toDelete)
	if _, err := s.facetAttrs.DeleteElements(mask); err != nil {
		return nil, err
	}
	for p := range s.polyhedronFacets {
		for i, f := range s.polyhedronFacets[p] {
			s.polyhedronFacets[p][i] = oldToNew[f]
		}
	}
	s.facetKeyIndex = make(map[string]basic.Index, len(s.facetOffsets)-1)
	for f := 0; f < s.NbFacets(); f++ {
		s.facetKeyIndex[facetKey(s.facetVerticesAt(basic.Index(f)))] = basic.Index(f)
	}
	return oldToNew, nil
}

// PermutePolyhedra reorders polyhedra according to perm.
func (s *SolidMesh3) PermutePolyhedra(perm []basic.Index) error {
	if len(perm) != s.NbPolyhedra() {
		return errors.Wrapf(ErrSizeMismatch, "permutation length %d != %d polyhedra", len(perm), s.NbPolyhedra())
	}
	newFacets := make([][]basic.Index, len(perm))
	newAdj := make([][]basic.Index, len(perm))
	for old, dst := range perm {
		newFacets[dst] = s.polyhedronFacets[old]
		newAdj[dst] = s.polyhedronAdjacent[old]
	}
	for _, adj := range newAdj {
		for i, a := range adj {
			if a != basic.NoID {
				adj[i] = perm[a]
			}
		}
	}
	s.polyhedronFacets = newFacets
	s.polyhedronAdjacent = newAdj
	return s.polyhedronAttrs.PermuteElements(perm)
}

// ReplaceVertices rewrites every facet corner v to mapping[v] (the batch
// form, no manifoldness assumption), then rebuilds the facet key index.
func (s *SolidMesh3) ReplaceVertices(mapping []basic.Index) {
	for i, v := range s.facetVertices {
		s.facetVertices[i] = mapping[v]
	}
	s.RebuildFacetKeyIndex()
}

// RebuildFacetKeyIndex recomputes the facet-vertex-set lookup table from
// the current facetVertices storage. Callers that mutate facet corners
// directly through FacetVerticesMutable must call this once they are done
// to restore CreatePolyhedron's deduplication invariant.
func (s *SolidMesh3) RebuildFacetKeyIndex() {
	s.facetKeyIndex = make(map[string]basic.Index, len(s.facetOffsets)-1)
	for f := 0; f < s.NbFacets(); f++ {
		s.facetKeyIndex[facetKey(s.facetVerticesAt(basic.Index(f)))] = basic.Index(f)
	}
}

// DeleteIsolatedVertices removes every vertex referenced by no facet.
func (s *SolidMesh3) DeleteIsolatedVertices() ([]basic.Index, error) {
	referenced := make([]bool, s.NbVertices())
	for _, v := range s.facetVertices {
		referenced[v] = true
	}
	toDelete := make([]bool, s.NbVertices())
	for i, r := range referenced {
		toDelete[i] = !r
	}
	oldToNew, err := s.DeleteVertices(toDelete)
	if err != nil {
		return nil, err
	}
	for i, v := range s.facetVertices {
		s.facetVertices[i] = oldToNew[v]
	}
	s.facetKeyIndex = make(map[string]basic.Index, len(s.facetOffsets)-1)
	for f := 0; f < s.NbFacets(); f++ {
		s.facetKeyIndex[facetKey(s.facetVerticesAt(basic.Index(f)))] = basic.Index(f)
	}
	return oldToNew, nil
}
