package geometry

import (
	"math"
	"sort"
)

// RadialSort orders a set of points around a common axis: each point's
// angle is measured in the plane orthogonal to axis, using the first
// point as the zero-angle reference. This is the concrete algorithm
// behind the spec's surface_radial_sort helper (original_source's
// points_sort.cpp): given the points opposite a shared line's direction in
// each bordering surface, it produces the angular order the model-level
// helper turns into a SortedSurfaces cycle.
//
// Returns the permutation of indices [0,len(points)) in increasing angle
// order starting from points[0] (angle 0).
func RadialSort(axisOrigin Point3, axis Vector3, points []Point3) []int {
	n := len(points)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	if n < 2 {
		return idx
	}
	axisDir := Normalize3(axis)

	project := func(p Point3) Vector3 {
		v := p.Sub(axisOrigin)
		v = v.Sub(axisDir.Scale(Dot3(v, axisDir)))
		return v
	}

	// Build an orthonormal basis (u, w) for the plane orthogonal to axis,
	// anchored so that points[0] lies along +u.
	ref := project(points[0])
	refLen := Length3(ref)
	var u, w Vector3
	if refLen <= 1e-12 {
		u = arbitraryOrthogonal(axisDir)
	} else {
		u = ref.Div(refLen)
	}
	w = Cross3(axisDir, u)

	angle := make([]float64, n)
	for i, p := range points {
		v := project(p)
		x := Dot3(v, u)
		y := Dot3(v, w)
		a := math.Atan2(y, x)
		if a < 0 {
			a += 2 * math.Pi
		}
		angle[i] = a
	}

	sort.SliceStable(idx, func(i, j int) bool {
		return angle[idx[i]] < angle[idx[j]]
	})
	return idx
}

func arbitraryOrthogonal(v Vector3) Vector3 {
	if math.Abs(v.X) <= math.Abs(v.Y) && math.Abs(v.X) <= math.Abs(v.Z) {
		return Normalize3(Cross3(v, Vector3{X: 1}))
	}
	if math.Abs(v.Y) <= math.Abs(v.Z) {
		return Normalize3(Cross3(v, Vector3{Y: 1}))
	}
	return Normalize3(Cross3(v, Vector3{Z: 1}))
}
