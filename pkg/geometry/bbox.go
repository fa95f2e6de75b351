package geometry

import "math"

// BoundingBox3 is an axis-aligned bounding box in 3D.
type BoundingBox3 struct {
	Min, Max Point3
}

// EmptyBoundingBox3 returns a box primed so the first Add call seeds it
// correctly (min=+Inf, max=-Inf per axis).
func EmptyBoundingBox3() BoundingBox3 {
	inf := math.Inf(1)
	return BoundingBox3{
		Min: Point3{X: inf, Y: inf, Z: inf},
		Max: Point3{X: -inf, Y: -inf, Z: -inf},
	}
}

// Add grows the box to include p, returning the updated box.
func (b BoundingBox3) Add(p Point3) BoundingBox3 {
	return BoundingBox3{
		Min: Point3{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)},
		Max: Point3{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)},
	}
}

// Union returns the smallest box containing both b and o.
func (b BoundingBox3) Union(o BoundingBox3) BoundingBox3 {
	return BoundingBox3{
		Min: Point3{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y), Z: math.Min(b.Min.Z, o.Min.Z)},
		Max: Point3{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y), Z: math.Max(b.Max.Z, o.Max.Z)},
	}
}

// Center returns the box's center point.
func (b BoundingBox3) Center() Point3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Intersects reports whether b and o overlap (touching counts as overlap).
func (b BoundingBox3) Intersects(o BoundingBox3) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Contains reports whether p lies within b (inclusive).
func (b BoundingBox3) Contains(p Point3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// SquaredDistanceToPoint returns the squared distance from p to the
// nearest point of b (0 if p is inside).
func (b BoundingBox3) SquaredDistanceToPoint(p Point3) float64 {
	d := 0.0
	for axis := 0; axis < 3; axis++ {
		v := p.Coord(axis)
		lo, hi := b.Min.Coord(axis), b.Max.Coord(axis)
		if v < lo {
			d += (lo - v) * (lo - v)
		} else if v > hi {
			d += (v - hi) * (v - hi)
		}
	}
	return d
}

// BoundingBox2 is an axis-aligned bounding box in 2D.
type BoundingBox2 struct {
	Min, Max Point2
}

// EmptyBoundingBox2 returns a primed-empty box.
func EmptyBoundingBox2() BoundingBox2 {
	inf := math.Inf(1)
	return BoundingBox2{Min: Point2{X: inf, Y: inf}, Max: Point2{X: -inf, Y: -inf}}
}

// Add grows the box to include p.
func (b BoundingBox2) Add(p Point2) BoundingBox2 {
	return BoundingBox2{
		Min: Point2{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: Point2{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest box containing both b and o.
func (b BoundingBox2) Union(o BoundingBox2) BoundingBox2 {
	return BoundingBox2{
		Min: Point2{X: math.Min(b.Min.X, o.Min.X), Y: math.Min(b.Min.Y, o.Min.Y)},
		Max: Point2{X: math.Max(b.Max.X, o.Max.X), Y: math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Intersects reports whether b and o overlap.
func (b BoundingBox2) Intersects(o BoundingBox2) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y
}
