// Package meshhelpers implements the format-conversion, merging,
// splitting/cutting, grid-interpolation and distance-transform operations
// of §4.F: the editing layer built on top of pkg/mesh and pkg/spatial,
// grounded on original_source's detail/vertex_merger.cpp,
// detail/curve_merger.cpp, euclidean_distance_transform.cpp and the
// regular_grid_*_function.cpp files.
package meshhelpers

import (
	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/mesh"
	"github.com/geode-kernel/geode/pkg/spatial"
)

// VertexOrigin identifies which input mesh and which vertex of it
// contributed to a unique output vertex, per §4.F's "output carries
// origins" requirement.
type VertexOrigin struct {
	MeshIndex   int
	VertexIndex basic.Index
}

// MergeResult3 is the common shape every 3D merger returns: the unique
// output points and, for every unique vertex, the list of inputs
// that collapsed onto it.
type MergeResult3 struct {
	UniquePoints  []geometry.Point3
	VertexOrigins [][]VertexOrigin
	// InputVertexMapping[i][v] is the unique-vertex index that input i's
	// vertex v was merged into.
	InputVertexMapping [][]basic.Index
}

// mergePoints3 runs the shared colocation step every 3D merger needs:
// concatenate every input's points, find the colocated mapping at eps,
// and derive per-input vertex-to-unique mappings plus origins.
func mergePoints3(inputs [][]geometry.Point3, eps float64) MergeResult3 {
	var all []geometry.Point3
	starts := make([]int, len(inputs)+1)
	for i, pts := range inputs {
		starts[i] = len(all)
		all = append(all, pts...)
	}
	starts[len(inputs)] = len(all)

	search := spatial.NewNNSearch3(all)
	mapping, unique := search.ColocatedIndexMapping(eps)

	origins := make([][]VertexOrigin, len(unique))
	inputMapping := make([][]basic.Index, len(inputs))
	for i := range inputs {
		inputMapping[i] = make([]basic.Index, len(inputs[i]))
		for v := range inputs[i] {
			global := starts[i] + v
			u := mapping[global]
			inputMapping[i][v] = u
			origins[u] = append(origins[u], VertexOrigin{MeshIndex: i, VertexIndex: basic.Index(v)})
		}
	}
	return MergeResult3{UniquePoints: unique, VertexOrigins: origins, InputVertexMapping: inputMapping}
}

// VertexMerger3 merges the point sets of N meshes into one deduplicated
// vertex set at tolerance eps, without touching any primary-element
// connectivity. Higher-level mergers (edge, surface, solid) build on top
// of this.
func VertexMerger3(inputs []*mesh.PointSet3, eps float64) (*mesh.PointSet3, MergeResult3) {
	pointLists := make([][]geometry.Point3, len(inputs))
	for i, in := range inputs {
		pts := make([]geometry.Point3, in.NbVertices())
		for v := 0; v < in.NbVertices(); v++ {
			pts[v] = in.Point(basic.Index(v))
		}
		pointLists[i] = pts
	}
	result := mergePoints3(pointLists, eps)
	out := mesh.NewPointSet3()
	for _, p := range result.UniquePoints {
		out.CreatePoint(p)
	}
	return out, result
}

// EdgedCurveMerger3 merges N edged curves into one, deduplicating
// vertices at eps and dropping zero-length edges whose endpoints both
// collapsed onto the same unique vertex (§4.F).
func EdgedCurveMerger3(inputs []*mesh.EdgedCurve3, eps float64) (*mesh.EdgedCurve3, MergeResult3) {
	pointSets := make([]*mesh.PointSet3, len(inputs))
	for i, in := range inputs {
		pointSets[i] = in.PointSet3
	}
	_, result := VertexMerger3(pointSets, eps)

	out := mesh.NewEdgedCurve3()
	for _, p := range result.UniquePoints {
		out.CreatePoint(p)
	}
	seen := make(map[[2]basic.Index]bool)
	for i, in := range inputs {
		for e := 0; e < in.NbEdges(); e++ {
			v0 := result.InputVertexMapping[i][in.EdgeVertex(basic.Index(e), 0)]
			v1 := result.InputVertexMapping[i][in.EdgeVertex(basic.Index(e), 1)]
			if v0 == v1 {
				continue // zero-length after merge, dropped
			}
			key := v0
			key2 := v1
			if key > key2 {
				key, key2 = key2, key
			}
			pairKey := [2]basic.Index{key, key2}
			if seen[pairKey] {
				continue
			}
			seen[pairKey] = true
			out.CreateEdge(v0, v1)
		}
	}
	return out, result
}

// SurfaceMerger3 merges N surface meshes into one, deduplicating shared
// vertices at eps and deduplicating polygons that reduce to the same
// VertexCycle after remapping (so a polygon shared by two inputs is kept
// once), then recomputes adjacency over the merged result.
func SurfaceMerger3(inputs []*mesh.SurfaceMesh3, eps float64) (*mesh.SurfaceMesh3, MergeResult3, error) {
	pointSets := make([]*mesh.PointSet3, len(inputs))
	for i, in := range inputs {
		pointSets[i] = in.PointSet3
	}
	_, result := VertexMerger3(pointSets, eps)

	out := mesh.NewSurfaceMesh3()
	for _, p := range result.UniquePoints {
		out.CreatePoint(p)
	}
	seen := make(map[string]bool)
	for i, in := range inputs {
		for p := 0; p < in.NbPolygons(); p++ {
			n := in.NbPolygonVertices(basic.Index(p))
			verts := make([]basic.Index, n)
			for k := 0; k < n; k++ {
				verts[k] = result.InputVertexMapping[i][in.PolygonVertex(basic.Index(p), k)]
			}
			key := mesh.NewVertexCycle(verts).Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			if _, err := out.CreatePolygon(verts); err != nil {
				return nil, MergeResult3{}, err
			}
		}
	}
	if err := out.ComputePolygonAdjacencies(); err != nil {
		return nil, MergeResult3{}, err
	}
	return out, result, nil
}

// SolidMerger3 merges N solid meshes into one, deduplicating shared
// vertices at eps, then re-creates every input polyhedron against the
// merged vertex set (relying on SolidMesh3's own facet-sharing
// bookkeeping to deduplicate faces introduced by more than one input),
// and recomputes adjacency.
func SolidMerger3(inputs []*mesh.SolidMesh3, eps float64) (*mesh.SolidMesh3, MergeResult3, error) {
	pointSets := make([]*mesh.PointSet3, len(inputs))
	for i, in := range inputs {
		pointSets[i] = in.PointSet3
	}
	_, result := VertexMerger3(pointSets, eps)

	out := mesh.NewSolidMesh3()
	for _, p := range result.UniquePoints {
		out.CreatePoint(p)
	}
	for i, in := range inputs {
		for p := 0; p < in.NbPolyhedra(); p++ {
			facets := make([][]basic.Index, in.NbPolyhedronFacets(basic.Index(p)))
			for li := range facets {
				f := in.PolyhedronFacet(basic.Index(p), li)
				fv := in.FacetVertex
				n := in.NbFacetVertices(f)
				verts := make([]basic.Index, n)
				for k := 0; k < n; k++ {
					verts[k] = result.InputVertexMapping[i][fv(f, k)]
				}
				facets[li] = verts
			}
			if _, err := out.CreatePolyhedron(facets); err != nil {
				return nil, MergeResult3{}, err
			}
		}
	}
	if err := out.ComputePolyhedronAdjacencies(); err != nil {
		return nil, MergeResult3{}, err
	}
	return out, result, nil
}
