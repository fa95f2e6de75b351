package mesh

import (
	"strconv"

	"github.com/geode-kernel/geode/pkg/basic"
)

// VertexCycle is the canonical, rotation/reflection-normalized form of an
// unordered vertex tuple, used to identify a facet or edge regardless of
// the traversal orientation it was visited in (glossary: "Vertex cycle").
// Two boundary loops that are cyclic rotations or reflections of one
// another produce an identical VertexCycle, which is what lets
// SurfaceEdges/SolidEdges/SolidFacets and the mesh mergers deduplicate
// shared sub-elements keyed only by their vertex set plus connectivity
// order.
type VertexCycle struct {
	vertices []basic.Index
}

// NewVertexCycle builds the canonical form of loop: it tries every
// rotation of loop and of its reversal, and keeps the lexicographically
// smallest sequence, so any two representations of the same cycle compare
// equal.
func NewVertexCycle(loop []basic.Index) VertexCycle {
	n := len(loop)
	if n == 0 {
		return VertexCycle{}
	}
	best := rotateFrom(loop, minIndexPos(loop))
	reversed := reverseLoop(loop)
	candidate := rotateFrom(reversed, minIndexPos(reversed))
	if less(candidate, best) {
		best = candidate
	}
	return VertexCycle{vertices: best}
}

func minIndexPos(loop []basic.Index) int {
	best := 0
	for i, v := range loop {
		if v < loop[best] {
			best = i
		}
	}
	return best
}

func rotateFrom(loop []basic.Index, start int) []basic.Index {
	n := len(loop)
	out := make([]basic.Index, n)
	for i := 0; i < n; i++ {
		out[i] = loop[(start+i)%n]
	}
	return out
}

func reverseLoop(loop []basic.Index) []basic.Index {
	n := len(loop)
	out := make([]basic.Index, n)
	for i := 0; i < n; i++ {
		out[i] = loop[n-1-i]
	}
	return out
}

func less(a, b []basic.Index) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Vertices returns the canonical vertex sequence.
func (c VertexCycle) Vertices() []basic.Index { return c.vertices }

// NbVertices returns the cycle's arity.
func (c VertexCycle) NbVertices() int { return len(c.vertices) }

// Key renders the canonical vertex sequence as a comparable map key. Two
// cycles with the same Key are the same rotation/reflection class.
func (c VertexCycle) Key() string {
	var b []byte
	for _, v := range c.vertices {
		b = strconv.AppendUint(b, uint64(v), 10)
		b = append(b, ',')
	}
	return string(b)
}

// Equal reports whether c and o are the same canonical cycle.
func (c VertexCycle) Equal(o VertexCycle) bool {
	if len(c.vertices) != len(o.vertices) {
		return false
	}
	for i := range c.vertices {
		if c.vertices[i] != o.vertices[i] {
			return false
		}
	}
	return true
}
