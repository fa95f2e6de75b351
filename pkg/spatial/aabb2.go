package spatial

import (
	"math"
	"sort"

	geode "github.com/geode-kernel/geode"
	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
)

// DistanceFunc2 is the 2D counterpart of DistanceFunc3.
type DistanceFunc2 func(idx basic.Index, query geometry.Point2) (dist float64, closest geometry.Point2)

// AABBTree2 is the 2D counterpart of AABBTree3, used for edged curves and
// 2D point sets.
type AABBTree2 struct {
	nbLeaves int
	n        int
	box      []geometry.BoundingBox2
	valid    []bool
	leafElem []basic.Index
}

// NewAABBTree2 builds a tree over boxes, indexed 0..len(boxes)-1.
func NewAABBTree2(boxes []geometry.BoundingBox2) *AABBTree2 {
	n := len(boxes)
	m := nextPow2(n)
	if m == 0 {
		m = 1
	}
	t := &AABBTree2{
		nbLeaves: m,
		n:        n,
		box:      make([]geometry.BoundingBox2, 2*m),
		valid:    make([]bool, 2*m),
		leafElem: make([]basic.Index, 2*m),
	}
	if n == 0 {
		return t
	}

	order := mortonOrder2(boxes)
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

func mortonOrder2(boxes []geometry.BoundingBox2) []int {
	global := geometry.EmptyBoundingBox2()
	for _, b := range boxes {
		global = global.Union(b)
	}
	center := func(b geometry.BoundingBox2) geometry.Point2 {
		return geometry.Point2{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
	}
	codes := make([]uint64, len(boxes))
	for i, b := range boxes {
		codes[i] = mortonCode2(center(b), global)
	}
	order := make([]int, len(boxes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return codes[order[a]] < codes[order[b]] })
	return order
}

func mortonCode2(p geometry.Point2, global geometry.BoundingBox2) uint64 {
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
		return uint32(f * float64((uint32(1)<<27)-1))
	}
	x := scale(p.X, global.Min.X, global.Max.X)
	y := scale(p.Y, global.Min.Y, global.Max.Y)
	return interleave2(x) | (interleave2(y) << 1)
}

func interleave2(v uint32) uint64 {
	x := uint64(v)
	x = (x | (x << 16)) & 0x0000ffff0000ffff
	x = (x | (x << 8)) & 0x00ff00ff00ff00ff
	x = (x | (x << 4)) & 0x0f0f0f0f0f0f0f0f
	x = (x | (x << 2)) & 0x3333333333333333
	x = (x | (x << 1)) & 0x5555555555555555
	return x
}

// NbElements returns N.
func (t *AABBTree2) NbElements() int { return t.n }

// ClosestElementBox is the 2D counterpart of AABBTree3.ClosestElementBox.
func (t *AABBTree2) ClosestElementBox(query geometry.Point2, distFn DistanceFunc2) (idx basic.Index, closest geometry.Point2, dist float64, found bool) {
	if t.n == 0 {
		return basic.NoID, geometry.Point2{}, 0, false
	}
	best := math.Inf(1)
	var bestIdx basic.Index = basic.NoID
	var bestPoint geometry.Point2

	sqDist := func(b geometry.BoundingBox2, p geometry.Point2) float64 {
		d := 0.0
		if p.X < b.Min.X {
			d += (b.Min.X - p.X) * (b.Min.X - p.X)
		} else if p.X > b.Max.X {
			d += (p.X - b.Max.X) * (p.X - b.Max.X)
		}
		if p.Y < b.Min.Y {
			d += (b.Min.Y - p.Y) * (b.Min.Y - p.Y)
		} else if p.Y > b.Max.Y {
			d += (p.Y - b.Max.Y) * (p.Y - b.Max.Y)
		}
		return d
	}

	var visit func(node int)
	visit = func(node int) {
		if !t.valid[node] {
			return
		}
		if sqDist(t.box[node], query) > best*best {
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
		return basic.NoID, geometry.Point2{}, 0, false
	}
	return bestIdx, bestPoint, best, true
}

// ComputeBBoxElementBBoxIntersections invokes f once per leaf whose box
// overlaps box.
func (t *AABBTree2) ComputeBBoxElementBBoxIntersections(box geometry.BoundingBox2, f BoxIntersectionCallback) {
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

// ComputeSelfElementBBoxIntersections invokes f once per unordered pair of
// overlapping leaves.
func (t *AABBTree2) ComputeSelfElementBBoxIntersections(f PairCallback) {
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
