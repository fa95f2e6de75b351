package meshhelpers

import (
	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/mesh"
	"github.com/geode-kernel/geode/pkg/mesh/grid"
	"github.com/geode-kernel/geode/pkg/mesh/tetra"
	"github.com/geode-kernel/geode/pkg/spatial"
)

// ErrIncompatibleMesh is returned when a conversion target cannot
// represent the source mesh, per §7's IncompatibleMeshType.
var ErrIncompatibleMesh = errors.New("meshhelpers: incompatible mesh type")

// ConvertSurfaceMesh rebuilds a generic SurfaceMesh3 as a fresh one,
// copying every vertex and polygon and recomputing adjacency — the
// identity case of §4.F's convert_surface_mesh, used as the landing spot
// for format-specific converters layered on top (e.g. triangulating a
// polygonal surface).
func ConvertSurfaceMesh(src *mesh.SurfaceMesh3) (*mesh.SurfaceMesh3, error) {
	out := mesh.NewSurfaceMesh3()
	for v := 0; v < src.NbVertices(); v++ {
		out.CreatePoint(src.Point(basic.Index(v)))
	}
	for p := 0; p < src.NbPolygons(); p++ {
		n := src.NbPolygonVertices(basic.Index(p))
		verts := make([]basic.Index, n)
		for k := 0; k < n; k++ {
			verts[k] = src.PolygonVertex(basic.Index(p), k)
		}
		if _, err := out.CreatePolygon(verts); err != nil {
			return nil, err
		}
	}
	if err := out.ComputePolygonAdjacencies(); err != nil {
		return nil, err
	}
	return out, nil
}

// ConvertBlockMesh rebuilds a generic SolidMesh3 as a fresh one, copying
// every vertex and polyhedron facet and recomputing adjacency.
func ConvertBlockMesh(src *mesh.SolidMesh3) (*mesh.SolidMesh3, error) {
	out := mesh.NewSolidMesh3()
	for v := 0; v < src.NbVertices(); v++ {
		out.CreatePoint(src.Point(basic.Index(v)))
	}
	for p := 0; p < src.NbPolyhedra(); p++ {
		facets := make([][]basic.Index, src.NbPolyhedronFacets(basic.Index(p)))
		for li := range facets {
			f := src.PolyhedronFacet(basic.Index(p), li)
			n := src.NbFacetVertices(f)
			verts := make([]basic.Index, n)
			for k := 0; k < n; k++ {
				verts[k] = src.FacetVertex(f, k)
			}
			facets[li] = verts
		}
		if _, err := out.CreatePolyhedron(facets); err != nil {
			return nil, err
		}
	}
	if err := out.ComputePolyhedronAdjacencies(); err != nil {
		return nil, err
	}
	return out, nil
}

// gridDiagonalPattern lists, for each of the six tets a cell is split
// into, the four local corner indices (0..7, binary x/y/z offset
// encoding) that bound it. The pattern is chosen so that the single
// diagonal it relies on (corner 0 to corner 7) is shared consistently by
// every neighboring cell, so adjacent cells' diagonals match per §4.F.
var gridDiagonalPattern = [6][4]int{
	{0, 1, 3, 7},
	{0, 1, 7, 5},
	{0, 5, 7, 4},
	{0, 3, 2, 7},
	{0, 2, 6, 7},
	{0, 6, 4, 7},
}

// GridToTetrahedralSolid splits every cell of g into exactly six
// positive-volume tetrahedra following a fixed diagonal pattern, per
// §4.F's grid-to-tet conversion.
func GridToTetrahedralSolid(g *grid.Grid3) (*tetra.Solid3, error) {
	out := tetra.NewSolid3()
	for v := 0; v < g.NbGridVertices(); v++ {
		out.CreatePoint(g.VertexPoint(basic.Index(v)))
	}
	for c := 0; c < g.NbCells(); c++ {
		corners := make([]basic.Index, 8)
		for k := 0; k < 8; k++ {
			corners[k] = g.CellVertex(basic.Index(c), k)
		}
		for _, pattern := range gridDiagonalPattern {
			v := [4]basic.Index{corners[pattern[0]], corners[pattern[1]], corners[pattern[2]], corners[pattern[3]]}
			if _, err := out.CreateTetrahedron(v); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// GridToDensifiedTetrahedralSolid subdivides the target cells (identified
// by linear cell index) using a vertex-at-centre Steiner point: each
// target cell contributes one new vertex at its barycenter and six
// pyramids from that center to its six quad faces, each pyramid split
// into two tetrahedra (12 tetrahedra per target cell); cells not in
// targets use the plain six-tet split.
func GridToDensifiedTetrahedralSolid(g *grid.Grid3, targets []basic.Index) (*tetra.Solid3, error) {
	out := tetra.NewSolid3()
	for v := 0; v < g.NbGridVertices(); v++ {
		out.CreatePoint(g.VertexPoint(basic.Index(v)))
	}
	isTarget := make(map[basic.Index]bool, len(targets))
	for _, t := range targets {
		isTarget[t] = true
	}

	faceQuads := [6][4]int{
		{0, 1, 3, 2}, {4, 6, 7, 5},
		{0, 4, 5, 1}, {1, 5, 7, 3},
		{3, 7, 6, 2}, {2, 6, 4, 0},
	}

	for c := 0; c < g.NbCells(); c++ {
		corners := make([]basic.Index, 8)
		for k := 0; k < 8; k++ {
			corners[k] = g.CellVertex(basic.Index(c), k)
		}
		if !isTarget[basic.Index(c)] {
			for _, pattern := range gridDiagonalPattern {
				v := [4]basic.Index{corners[pattern[0]], corners[pattern[1]], corners[pattern[2]], corners[pattern[3]]}
				if _, err := out.CreateTetrahedron(v); err != nil {
					return nil, err
				}
			}
			continue
		}
		center := out.CreatePoint(g.CellBarycenter(basic.Index(c)))
		for _, quad := range faceQuads {
			q := [4]basic.Index{corners[quad[0]], corners[quad[1]], corners[quad[2]], corners[quad[3]]}
			for _, tri := range [2][3]int{{0, 1, 2}, {0, 2, 3}} {
				v := [4]basic.Index{q[tri[0]], q[tri[1]], q[tri[2]], center}
				if _, err := out.CreateTetrahedron(v); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

// RemoveVertexDuplicationSurface3 is the reverse of a merge for a single
// surface mesh: it builds an NN search over the mesh's own points,
// computes the colocated mapping at eps, renames every duplicate vertex
// onto its representative, and drops the now-isolated originals, per
// §4.F.
func RemoveVertexDuplicationSurface3(m *mesh.SurfaceMesh3, eps float64) ([]basic.Index, error) {
	mapping := colocatedSelfMapping3(m.PointSet3, eps)
	m.ReplaceVertices(mapping)
	return m.DeleteIsolatedVertices()
}

// RemoveVertexDuplicationSolid3 is RemoveVertexDuplicationSurface3 for a
// solid mesh.
func RemoveVertexDuplicationSolid3(m *mesh.SolidMesh3, eps float64) ([]basic.Index, error) {
	mapping := colocatedSelfMapping3(m.PointSet3, eps)
	m.ReplaceVertices(mapping)
	return m.DeleteIsolatedVertices()
}

// RemoveVertexDuplicationCurve3 is RemoveVertexDuplicationSurface3 for an
// edged curve.
func RemoveVertexDuplicationCurve3(m *mesh.EdgedCurve3, eps float64) ([]basic.Index, error) {
	mapping := colocatedSelfMapping3(m.PointSet3, eps)
	m.ReplaceVertices(mapping)
	return m.DeleteIsolatedVertices()
}

// colocatedSelfMapping3 computes, for every vertex of ps, the index of
// the vertex it should be renamed to (its own index if it has no
// colocated duplicate at a lower index).
func colocatedSelfMapping3(ps *mesh.PointSet3, eps float64) []basic.Index {
	n := ps.NbVertices()
	pts := make([]geometry.Point3, n)
	for v := 0; v < n; v++ {
		pts[v] = ps.Point(basic.Index(v))
	}
	search := spatial.NewNNSearch3(pts)
	clusterMapping, _ := search.ColocatedIndexMapping(eps)
	// clusterMapping[i] is a dense unique-cluster id; recover a concrete
	// representative vertex (the smallest original index in the cluster)
	// so ReplaceVertices can rename onto an existing vertex rather than a
	// synthetic one.
	representative := make([]basic.Index, n)
	for i := range representative {
		representative[i] = basic.NoID
	}
	for v := 0; v < n; v++ {
		c := clusterMapping[v]
		if representative[c] == basic.NoID || basic.Index(v) < representative[c] {
			representative[c] = basic.Index(v)
		}
	}
	out := make([]basic.Index, n)
	for v := 0; v < n; v++ {
		out[v] = representative[clusterMapping[v]]
	}
	return out
}
