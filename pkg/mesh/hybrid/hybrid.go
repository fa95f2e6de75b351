// Package hybrid implements HybridSolid3D: a SolidMesh3 whose polyhedra
// carry a per-cell standard-cell-type tag (tet, pyramid, prism, hex), each
// with its own canonical local-facet/vertex numbering, per §4.E.
package hybrid

import (
	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/mesh"
)

// CellType enumerates the standard cell kinds a hybrid solid admits.
type CellType int

const (
	Tetrahedron CellType = iota
	Pyramid
	Prism
	Hexahedron
)

// cellFacets gives, per CellType, the local-vertex indices of each facet
// in outward-facing winding order — the canonical numbering callers rely
// on to interpret PolyhedronFacet results without re-deriving it.
var cellFacets = map[CellType][][]int{
	Tetrahedron: {{1, 2, 3}, {0, 3, 2}, {0, 1, 3}, {0, 2, 1}},
	Pyramid:     {{0, 3, 2, 1}, {0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}},
	Prism:       {{0, 2, 1}, {3, 4, 5}, {0, 1, 4, 3}, {1, 2, 5, 4}, {2, 0, 3, 5}},
	Hexahedron:  {{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4}, {1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7}},
}

// cellVertexCount gives the number of vertices each CellType expects.
var cellVertexCount = map[CellType]int{
	Tetrahedron: 4,
	Pyramid:     5,
	Prism:       6,
	Hexahedron:  8,
}

// Solid3 is a SolidMesh3 whose polyhedra are tagged with a CellType.
type Solid3 struct {
	*mesh.SolidMesh3
	kinds       []CellType
	cellVertices [][]basic.Index
}

// NewSolid3 creates an empty hybrid solid.
func NewSolid3() *Solid3 {
	return &Solid3{SolidMesh3: mesh.NewSolidMesh3()}
}

// CreateCell appends a polyhedron of the given kind with vertices listed
// in the canonical local order for that kind, and returns its index.
func (s *Solid3) CreateCell(kind CellType, vertices []basic.Index) (basic.Index, error) {
	expected, ok := cellVertexCount[kind]
	if !ok {
		return basic.NoID, errors.Errorf("hybrid: unknown cell type %d", kind)
	}
	if len(vertices) != expected {
		return basic.NoID, errors.Errorf("hybrid: cell type %d needs %d vertices, got %d", kind, expected, len(vertices))
	}
	facetLayout := cellFacets[kind]
	facets := make([][]basic.Index, len(facetLayout))
	for i, local := range facetLayout {
		f := make([]basic.Index, len(local))
		for j, li := range local {
			f[j] = vertices[li]
		}
		facets[i] = f
	}
	p, err := s.CreatePolyhedron(facets)
	if err != nil {
		return basic.NoID, err
	}
	if int(p) >= len(s.kinds) {
		grownKinds := make([]CellType, p+1)
		copy(grownKinds, s.kinds)
		s.kinds = grownKinds
		grownVerts := make([][]basic.Index, p+1)
		copy(grownVerts, s.cellVertices)
		s.cellVertices = grownVerts
	}
	s.kinds[p] = kind
	s.cellVertices[p] = append([]basic.Index(nil), vertices...)
	return p, nil
}

// CellType returns the standard cell type of polyhedron p.
func (s *Solid3) CellType(p basic.Index) CellType { return s.kinds[p] }

// CellVertex returns local vertex i of polyhedron p, in canonical order.
func (s *Solid3) CellVertex(p basic.Index, i int) basic.Index { return s.cellVertices[p][i] }
