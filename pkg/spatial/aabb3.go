// Package spatial implements the geometric query substrate described in
// §4.D: a Morton-ordered, implicitly-array-stored AABB tree, and a
// nearest-neighbour search wrapper with the colocated-index-mapping
// algorithm that the mesh mergers depend on.
package spatial

import (
	"math"
	"sort"

	geode "github.com/geode-kernel/geode"
	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
)

// DistanceFunc3 computes the exact distance from query to the primitive
// backing leaf element idx, and the closest point on that primitive. The
// tree only knows bounding boxes; querying the true primitive distance is
// the caller's responsibility; this mirrors the spec's `dist_fn` callback
// parameter on closest_element_box.
type DistanceFunc3 func(idx basic.Index, query geometry.Point3) (dist float64, closest geometry.Point3)

// AABBTree3 is a Morton-ordered balanced tree over a fixed set of 3D
// bounding boxes, stored implicitly in an array: node i (1-indexed) has
// children 2i and 2i+1.
type AABBTree3 struct {
	nbLeaves int // M = next pow2 of N
	n        int // N, the number of real boxes
	box      []geometry.BoundingBox3
	valid    []bool
	leafElem []basic.Index // leafElem[node] valid only when node is a leaf
}

// NewAABBTree3 builds a tree over boxes, indexed 0..len(boxes)-1. An empty
// input yields a tree that answers every query as "no hit".
func NewAABBTree3(boxes []geometry.BoundingBox3) *AABBTree3 {
	n := len(boxes)
	m := nextPow2(n)
	if m == 0 {
		m = 1
	}
	t := &AABBTree3{
		nbLeaves: m,
		n:        n,
		box:      make([]geometry.BoundingBox3, 2*m),
		valid:    make([]bool, 2*m),
		leafElem: make([]basic.Index, 2*m),
	}
	if n == 0 {
		return t
	}

	order := mortonOrder3(boxes)
	for k := 0; k < m; k++ {
		node := m + k
		if k < n {
			t.valid[node] = true
			t.leafElem[node] = basic.Index(order[k])
			t.box[node] = boxes[order[k]]
		}
	}
	for i := m - 1; i >= 1; i-- {
		l, r := 2*i, 2*i+1
		switch {
		case t.valid[l] && t.valid[r]:
			t.box[i] = t.box[l].Union(t.box[r])
			t.valid[i] = true
		case t.valid[l]:
			t.box[i] = t.box[l]
			t.valid[i] = true
		case t.valid[r]:
			t.box[i] = t.box[r]
			t.valid[i] = true
		default:
			t.valid[i] = false
		}
	}
	return t
}

func nextPow2(n int) int {
	if n <= 1 {
		return n
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// mortonOrder3 returns the permutation of [0,len(boxes)) sorted by the
// Morton code of each box's center, computed over the boxes' shared
// bounding range (step 1-2 of the build algorithm in §4.D).
func mortonOrder3(boxes []geometry.BoundingBox3) []int {
	global := geometry.EmptyBoundingBox3()
	for _, b := range boxes {
		global = global.Union(b)
	}
	codes := make([]uint64, len(boxes))
	for i, b := range boxes {
		codes[i] = mortonCode3(b.Center(), global)
	}
	order := make([]int, len(boxes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return codes[order[a]] < codes[order[b]] })
	return order
}

const mortonBits = 18 // 3*18 = 54 bits, safely within uint64

func mortonCode3(p geometry.Point3, global geometry.BoundingBox3) uint64 {
	scale := func(v, lo, hi float64) uint32 {
		if hi <= lo {
			return 0
		}
		f := (v - lo) / (hi - lo)
		if f < 0 {
			f = 0
		}
		if f > 1 {
			f = 1
		}
		return uint32(f * float64((uint32(1)<<mortonBits)-1))
	}
	x := scale(p.X, global.Min.X, global.Max.X)
	y := scale(p.Y, global.Min.Y, global.Max.Y)
	z := scale(p.Z, global.Min.Z, global.Max.Z)
	return interleave3(x) | (interleave3(y) << 1) | (interleave3(z) << 2)
}

func interleave3(v uint32) uint64 {
	var x uint64 = uint64(v)
	x = (x | (x << 32)) & 0x1f00000000ffff
	x = (x | (x << 16)) & 0x1f0000ff0000ff
	x = (x | (x << 8)) & 0x100f00f00f00f00f
	x = (x | (x << 4)) & 0x10c30c30c30c30c3
	x = (x | (x << 2)) & 0x1249249249249249
	return x
}

// NbElements returns N.
func (t *AABBTree3) NbElements() int { return t.n }

// ClosestElementBox returns the leaf element closest to query according to
// distFn, the closest point on that element, and the distance. Traversal
// visits nodes in tree order and prunes subtrees whose box cannot beat the
// current incumbent; ties are broken deterministically by smaller element
// index, per the Design Notes' recommendation.
func (t *AABBTree3) ClosestElementBox(query geometry.Point3, distFn DistanceFunc3) (idx basic.Index, closest geometry.Point3, dist float64, found bool) {
	if t.n == 0 {
		return basic.NoID, geometry.Point3{}, 0, false
	}
	best := math.Inf(1)
	var bestIdx basic.Index = basic.NoID
	var bestPoint geometry.Point3

	var visit func(node int)
	visit = func(node int) {
		if !t.valid[node] {
			return
		}
		if t.box[node].SquaredDistanceToPoint(query) > best*best {
			return
		}
		if node >= t.nbLeaves {
			d, c := distFn(t.leafElem[node], query)
			if d < best-geode.GlobalEpsilon || (math.Abs(d-best) <= geode.GlobalEpsilon && t.leafElem[node] < bestIdx) {
				best = d
				bestIdx = t.leafElem[node]
				bestPoint = c
			}
			return
		}
		visit(2 * node)
		visit(2*node + 1)
	}
	visit(1)
	if bestIdx == basic.NoID {
		return basic.NoID, geometry.Point3{}, 0, false
	}
	return bestIdx, bestPoint, best, true
}

// BoxIntersectionCallback is invoked once per leaf overlapping a query.
type BoxIntersectionCallback func(idx basic.Index)

// ComputeBBoxElementBBoxIntersections invokes f once per leaf whose box
// overlaps box.
func (t *AABBTree3) ComputeBBoxElementBBoxIntersections(box geometry.BoundingBox3, f BoxIntersectionCallback) {
	var visit func(node int)
	visit = func(node int) {
		if !t.valid[node] || !t.box[node].Intersects(box) {
			return
		}
		if node >= t.nbLeaves {
			f(t.leafElem[node])
			return
		}
		visit(2 * node)
		visit(2*node + 1)
	}
	visit(1)
}

// PairCallback is invoked once per unordered pair of overlapping leaves.
type PairCallback func(a, b basic.Index)

// ComputeSelfElementBBoxIntersections invokes f once per unordered pair
// (i, j), i != j, of leaves whose boxes overlap.
func (t *AABBTree3) ComputeSelfElementBBoxIntersections(f PairCallback) {
	var cross func(a, b int)
	cross = func(a, b int) {
		if !t.valid[a] || !t.valid[b] || !t.box[a].Intersects(t.box[b]) {
			return
		}
		aLeaf := a >= t.nbLeaves
		bLeaf := b >= t.nbLeaves
		switch {
		case aLeaf && bLeaf:
			ea, eb := t.leafElem[a], t.leafElem[b]
			if ea < eb {
				f(ea, eb)
			} else if eb < ea {
				f(eb, ea)
			}
		case aLeaf:
			cross(a, 2*b)
			cross(a, 2*b+1)
		case bLeaf:
			cross(2*a, b)
			cross(2*a+1, b)
		default:
			cross(2*a, 2*b)
			cross(2*a, 2*b+1)
			cross(2*a+1, 2*b)
			cross(2*a+1, 2*b+1)
		}
	}
	var self func(node int)
	self = func(node int) {
		if !t.valid[node] || node >= t.nbLeaves {
			return
		}
		self(2 * node)
		self(2*node + 1)
		cross(2*node, 2*node+1)
	}
	self(1)
}

// ComputeOtherElementBBoxIntersections invokes f once per overlapping leaf
// pair (this-tree index, other-tree index) across two independently built
// trees.
func (t *AABBTree3) ComputeOtherElementBBoxIntersections(other *AABBTree3, f PairCallback) {
	var visit func(a int, b int)
	visit = func(a, b int) {
		if !t.valid[a] || !other.valid[b] || !t.box[a].Intersects(other.box[b]) {
			return
		}
		aLeaf := a >= t.nbLeaves
		bLeaf := b >= other.nbLeaves
		switch {
		case aLeaf && bLeaf:
			f(t.leafElem[a], other.leafElem[b])
		case aLeaf:
			visit(a, 2*b)
			visit(a, 2*b+1)
		case bLeaf:
			visit(2*a, b)
			visit(2*a+1, b)
		default:
			visit(2*a, 2*b)
			visit(2*a, 2*b+1)
			visit(2*a+1, 2*b)
			visit(2*a+1, 2*b+1)
		}
	}
	visit(1, 1)
}

// Ray3 is a finite-or-infinite ray used for ray/box queries.
type Ray3 = geometry.Ray3

// ComputeRayElementBBoxIntersections invokes f once per leaf whose box is
// hit by ray, via the standard slab test.
func (t *AABBTree3) ComputeRayElementBBoxIntersections(ray geometry.Ray3, f BoxIntersectionCallback) {
	var visit func(node int)
	visit = func(node int) {
		if !t.valid[node] || !rayIntersectsBox(ray, t.box[node]) {
			return
		}
		if node >= t.nbLeaves {
			f(t.leafElem[node])
			return
		}
		visit(2 * node)
		visit(2*node + 1)
	}
	visit(1)
}

func rayIntersectsBox(ray geometry.Ray3, box geometry.BoundingBox3) bool {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	origins := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dirs := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	los := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	his := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}
	for axis := 0; axis < 3; axis++ {
		if math.Abs(dirs[axis]) < 1e-15 {
			if origins[axis] < los[axis] || origins[axis] > his[axis] {
				return false
			}
			continue
		}
		inv := 1 / dirs[axis]
		t0 := (los[axis] - origins[axis]) * inv
		t1 := (his[axis] - origins[axis]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return false
		}
	}
	return tmax >= 0
}
