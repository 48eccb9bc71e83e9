package glide

import "math"

// Box is an axis-aligned box spanning Min to Max inclusive.
type Box struct {
	Min, Max Point
}

// EmptyBox returns a box that contains nothing. Its union with a point is
// the zero-size box around that point.
func EmptyBox() Box {
	return Box{
		Min: Pt(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: Pt(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// NewBoxFromPoints returns the smallest box containing p0 and p1.
func NewBoxFromPoints(p0, p1 Point) Box {
	return EmptyBox().UnionPoint(p0).UnionPoint(p1)
}

// IsEmpty reports whether b contains no points.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Size returns the extents of b along each axis. Empty boxes have zero size.
func (b Box) Size() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the point in the middle of b.
func (b Box) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Contains reports whether pt lies inside b or on its boundary.
func (b Box) Contains(pt Point) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// Union returns the smallest box enclosing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Pt(min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)),
		Max: Pt(max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)),
	}
}

// UnionPoint returns the smallest box enclosing b and pt. A succession of
// UnionPoint calls starting from [EmptyBox] yields the bounding box of the
// points.
func (b Box) UnionPoint(pt Point) Box {
	return b.Union(Box{pt, pt})
}

// Inflate grows b by d in every direction.
func (b Box) Inflate(d float64) Box {
	if b.IsEmpty() {
		return b
	}
	v := Vec(d, d, d)
	return Box{
		Min: b.Min.Translate(v.Negate()),
		Max: b.Max.Translate(v),
	}
}

// BoundingBox returns the box containing all of the curve's samples.
func (c Curve) BoundingBox() Box {
	return BoundingBox(c)
}

// BoundingBox returns the box containing all points.
func BoundingBox(pts []Point) Box {
	b := EmptyBox()
	for _, pt := range pts {
		b = b.UnionPoint(pt)
	}
	return b
}
