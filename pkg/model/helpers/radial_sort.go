package modelhelpers

import (
	"github.com/pkg/errors"

	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
	"github.com/geode-kernel/geode/pkg/model"
)

// SurfaceSide identifies one polygon edge of one surface meeting a line,
// together with the point used as that side's angular reference for the
// radial sort (the polygon vertex opposite the shared edge).
type SurfaceSide struct {
	Surface  basic.UUID
	Polygon  basic.Index
	Opposite geometry.Point3
}

// SortedSurfaces is the radial ordering of every surface side meeting a
// line, spec §4.H surface_radial_sort. A surface sharing the line along
// two of its edges (as happens when the line lies on a non-manifold fin)
// contributes two consecutive sides to Sides.
type SortedSurfaces struct {
	Origin geometry.Point3
	Axis   geometry.Vector3
	Sides  []SurfaceSide
}

// SurfaceRadialSort orders, around line's direction, every polygon edge
// of every surface for which line is a boundary. Ordering uses
// geometry.RadialSort over each side's opposite-vertex point, grounded
// on original_source's points_sort.cpp via geometry.RadialSort's own
// documentation.
func SurfaceRadialSort(brep *model.BRep, line *model.Line3) (*SortedSurfaces, error) {
	lm := line.Mesh()
	if lm.NbEdges() == 0 {
		return nil, errors.Errorf("line %s has no edges to radially sort around", line.ComponentID().UUID)
	}
	v0, v1 := lm.EdgeVertex(0, 0), lm.EdgeVertex(0, 1)
	origin := lm.Point(v0)
	axis := lm.Point(v1).Sub(origin)

	vi := brep.VertexIdentifier()
	lineID := line.ComponentID().UUID
	u0 := vi.UniqueVertex(model.ComponentMeshVertex{Component: lineID, Vertex: v0})
	u1 := vi.UniqueVertex(model.ComponentMeshVertex{Component: lineID, Vertex: v1})

	var sides []SurfaceSide
	var points []geometry.Point3
	for _, surfUUID := range brep.Relationships().Incidences(lineID) {
		surface := brep.Surface(surfUUID)
		if surface == nil {
			continue
		}
		sm := surface.Mesh()
		for p := 0; p < sm.NbPolygons(); p++ {
			n := sm.NbPolygonVertices(basic.Index(p))
			for k := 0; k < n; k++ {
				va := sm.PolygonVertex(basic.Index(p), k)
				vb := sm.PolygonVertex(basic.Index(p), (k+1)%n)
				ua := vi.UniqueVertex(model.ComponentMeshVertex{Component: surfUUID, Vertex: va})
				ub := vi.UniqueVertex(model.ComponentMeshVertex{Component: surfUUID, Vertex: vb})
				if !((ua == u0 && ub == u1) || (ua == u1 && ub == u0)) {
					continue
				}
				oppLocal := sm.PolygonVertex(basic.Index(p), (k+2)%n)
				opp := sm.Point(oppLocal)
				sides = append(sides, SurfaceSide{Surface: surfUUID, Polygon: basic.Index(p), Opposite: opp})
				points = append(points, opp)
			}
		}
	}
	if len(sides) == 0 {
		return &SortedSurfaces{Origin: origin, Axis: axis}, nil
	}

	order := geometry.RadialSort(origin, axis, points)
	sorted := make([]SurfaceSide, len(order))
	for i, idx := range order {
		sorted[i] = sides[idx]
	}
	return &SortedSurfaces{Origin: origin, Axis: axis, Sides: sorted}, nil
}
