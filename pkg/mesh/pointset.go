package mesh

import (
	"github.com/geode-kernel/geode/pkg/attribute"
	"github.com/geode-kernel/geode/pkg/basic"
	"github.com/geode-kernel/geode/pkg/geometry"
)

const pointAttributeName = "point"

// PointSet3 is a VertexSet where every vertex carries a 3D point,
// stored as a regular dense attribute under the reserved name "point" so
// it serializes through the same attribute machinery as any other
// per-vertex data.
type PointSet3 struct {
	*VertexSet
	points *attribute.DenseAttribute[geometry.Point3]
}

// NewPointSet3 creates an empty 3D point set.
func NewPointSet3() *PointSet3 {
	vs := NewVertexSet()
	pts, _ := attribute.FindOrCreateDense[geometry.Point3](vs.attrs, pointAttributeName, geometry.Point3{}, attribute.Properties{Assignable: true})
	return &PointSet3{VertexSet: vs, points: pts}
}

// Point returns the point carried by vertex v.
func (p *PointSet3) Point(v basic.Index) geometry.Point3 { return p.points.Value(int(v)) }

// SetPoint sets the point carried by vertex v.
func (p *PointSet3) SetPoint(v basic.Index, pt geometry.Point3) { p.points.SetValue(int(v), pt) }

// CreatePoint creates a vertex and immediately assigns it pt.
func (p *PointSet3) CreatePoint(pt geometry.Point3) basic.Index {
	v := p.CreateVertex()
	p.SetPoint(v, pt)
	return v
}

// BoundingBox returns the axis-aligned box enclosing every vertex.
func (p *PointSet3) BoundingBox() geometry.BoundingBox3 {
	box := geometry.EmptyBoundingBox3()
	for i := 0; i < p.NbVertices(); i++ {
		box = box.Add(p.Point(basic.Index(i)))
	}
	return box
}

// PointSet2 is the 2D counterpart of PointSet3.
type PointSet2 struct {
	*VertexSet
	points *attribute.DenseAttribute[geometry.Point2]
}

// NewPointSet2 creates an empty 2D point set.
func NewPointSet2() *PointSet2 {
	vs := NewVertexSet()
	pts, _ := attribute.FindOrCreateDense[geometry.Point2](vs.attrs, pointAttributeName, geometry.Point2{}, attribute.Properties{Assignable: true})
	return &PointSet2{VertexSet: vs, points: pts}
}

// Point returns the point carried by vertex v.
func (p *PointSet2) Point(v basic.Index) geometry.Point2 { return p.points.Value(int(v)) }

// SetPoint sets the point carried by vertex v.
func (p *PointSet2) SetPoint(v basic.Index, pt geometry.Point2) { p.points.SetValue(int(v), pt) }

// CreatePoint creates a vertex and immediately assigns it pt.
func (p *PointSet2) CreatePoint(pt geometry.Point2) basic.Index {
	v := p.CreateVertex()
	p.SetPoint(v, pt)
	return v
}

// BoundingBox returns the axis-aligned box enclosing every vertex.
func (p *PointSet2) BoundingBox() geometry.BoundingBox2 {
	box := geometry.EmptyBoundingBox2()
	for i := 0; i < p.NbVertices(); i++ {
		box = box.Add(p.Point(basic.Index(i)))
	}
	return box
}
