package spatial

import (
	"sort"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
)

// NNSearch3 answers nearest-neighbour queries over a fixed point set,
// backed by the same AABBTree3 used for element queries: every point is
// indexed as a degenerate (zero-volume) box, so ClosestElementBox's
// deterministic tie-breaking carries over unchanged.
type NNSearch3 struct {
	points []geometry.Point3
	tree   *AABBTree3
}

// NewNNSearch3 builds a search structure over points.
func NewNNSearch3(points []geometry.Point3) *NNSearch3 {
	boxes := make([]geometry.BoundingBox3, len(points))
	for i, p := range points {
		boxes[i] = geometry.BoundingBox3{Min: p, Max: p}
	}
	return &NNSearch3{points: points, tree: NewAABBTree3(boxes)}
}

// ClosestNeighbor returns the point in the set nearest to query, excluding
// nothing (query may itself be a member of the set).
func (s *NNSearch3) ClosestNeighbor(query geometry.Point3) (idx basic.Index, point geometry.Point3, found bool) {
	i, p, _, ok := s.tree.ClosestElementBox(query, func(idx basic.Index, q geometry.Point3) (float64, geometry.Point3) {
		pt := s.points[idx]
		return pt.Distance(q), pt
	})
	return i, p, ok
}

// Neighbors returns the indices of the k points closest to query, ordered
// nearest-first, breaking distance ties by smaller index.
func (s *NNSearch3) Neighbors(query geometry.Point3, k int) []basic.Index {
	type cand struct {
		idx basic.Index
		d   float64
	}
	cands := make([]cand, len(s.points))
	for i, p := range s.points {
		cands[i] = cand{basic.Index(i), p.Distance(query)}
	}
	sort.Slice(cands, func(a, b int) bool {
		if cands[a].d != cands[b].d {
			return cands[a].d < cands[b].d
		}
		return cands[a].idx < cands[b].idx
	})
	if k > len(cands) {
		k = len(cands)
	}
	out := make([]basic.Index, k)
	for i := 0; i < k; i++ {
		out[i] = cands[i].idx
	}
	return out
}

// RadiusNeighbors returns, in ascending index order, every point within r
// of query (inclusive).
func (s *NNSearch3) RadiusNeighbors(query geometry.Point3, r float64) []basic.Index {
	var out []basic.Index
	box := geometry.BoundingBox3{
		Min: geometry.Point3{X: query.X - r, Y: query.Y - r, Z: query.Z - r},
		Max: geometry.Point3{X: query.X + r, Y: query.Y + r, Z: query.Z + r},
	}
	s.tree.ComputeBBoxElementBBoxIntersections(box, func(idx basic.Index) {
		if s.points[idx].Distance(query) <= r {
			out = append(out, idx)
		}
	})
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

// ColocatedIndexMapping implements the two-pass colocation algorithm of
// §4.D: every point within eps of another collapses onto the smallest
// index in its cluster, and mapping is rewritten to dense indices into
// uniquePoints. mapping[i] is the index of points[i] in uniquePoints.
func (s *NNSearch3) ColocatedIndexMapping(eps float64) (mapping []basic.Index, uniquePoints []geometry.Point3) {
	n := len(s.points)
	rep := make([]basic.Index, n)
	for i := 0; i < n; i++ {
		best := i
		for _, j := range s.RadiusNeighbors(s.points[i], eps) {
			if int(j) < best {
				best = int(j)
			}
		}
		rep[i] = basic.Index(best)
	}

	newIndex := make([]basic.Index, n)
	for i := range newIndex {
		newIndex[i] = basic.NoID
	}
	mapping = make([]basic.Index, n)
	uniquePoints = make([]geometry.Point3, 0, n)
	for i := 0; i < n; i++ {
		r := rep[i]
		if newIndex[r] == basic.NoID {
			newIndex[r] = basic.Index(len(uniquePoints))
			uniquePoints = append(uniquePoints, s.points[r])
		}
		mapping[i] = newIndex[r]
	}
	return mapping, uniquePoints
}
