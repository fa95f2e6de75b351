// Package tetra specializes pkg/mesh's SolidMesh to fixed tetrahedral
// polyhedra, exposing an O(1) Tetrahedron(i) view, grounded on
// original_source's geode_tetrahedral_solid.cpp. A tetrahedron's four
// triangular facets are created in the standard opposite-vertex
// numbering: facet i is the triangle omitting local vertex i.
package tetra

import (
	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/mesh"
)

// localFacets lists, for each local vertex omitted, the other three in an
// outward-facing winding order.
var localFacets = [4][3]int{
	{1, 2, 3},
	{0, 3, 2},
	{0, 1, 3},
	{0, 2, 1},
}

// Solid3 is a SolidMesh3 in which every polyhedron is a tetrahedron.
type Solid3 struct {
	*mesh.SolidMesh3
	tetVertices [][4]basic.Index
}

// NewSolid3 creates an empty tetrahedral solid.
func NewSolid3() *Solid3 {
	return &Solid3{SolidMesh3: mesh.NewSolidMesh3()}
}

// CreateTetrahedron appends a tetrahedron with the given four vertices
// and returns its index. Facets are derived automatically in the
// standard local numbering.
func (s *Solid3) CreateTetrahedron(v [4]basic.Index) (basic.Index, error) {
	facets := make([][]basic.Index, 4)
	for i, f := range localFacets {
		facets[i] = []basic.Index{v[f[0]], v[f[1]], v[f[2]]}
	}
	p, err := s.CreatePolyhedron(facets)
	if err != nil {
		return basic.NoID, err
	}
	if int(p) >= len(s.tetVertices) {
		grown := make([][4]basic.Index, p+1)
		copy(grown, s.tetVertices)
		s.tetVertices = grown
	}
	s.tetVertices[p] = v
	return p, nil
}

// Tetrahedron returns the geometric tetrahedron backing polyhedron t.
func (s *Solid3) Tetrahedron(t basic.Index) (geometry.Tetrahedron, error) {
	if int(t) >= len(s.tetVertices) {
		return geometry.Tetrahedron{}, errors.Errorf("tetra: %d is not a known tetrahedron", t)
	}
	v := s.tetVertices[t]
	return geometry.Tetrahedron{
		P0: s.Point(v[0]), P1: s.Point(v[1]), P2: s.Point(v[2]), P3: s.Point(v[3]),
	}, nil
}

// TetrahedronVolume returns the unsigned volume of tetrahedron t.
func (s *Solid3) TetrahedronVolume(t basic.Index) float64 {
	tet, err := s.Tetrahedron(t)
	if err != nil {
		return 0
	}
	return geometry.TetrahedronVolume(tet.P0, tet.P1, tet.P2, tet.P3)
}

// TetrahedronVertex returns local vertex i (0..3) of tetrahedron t.
func (s *Solid3) TetrahedronVertex(t basic.Index, i int) basic.Index {
	return s.tetVertices[t][i]
}
