package glide

import "iter"

// QuadSpline is a chain of quadratic Bézier segments described by its guide
// points [G₀, G₁, G₂, ..., Gₙ]. G₀ and Gₙ are on the curve. Every other guide
// acts as the control point of one segment, and consecutive segments join at
// the midpoint between their control points: segment i ends, and segment i+1
// starts, at (Gᵢ₊₁ + Gᵢ₊₂) / 2.
//
// Because the shared end points are identical on both sides of a join, the
// resulting curve is positionally continuous without any explicit tangent
// matching. Moving Gᵢ only affects the segment it controls and, through the
// adjacent midpoints, its direct neighbours.
type QuadSpline []Point

// Len returns the number of segments in the spline. Splines with fewer than
// three guides have no segments.
func (q QuadSpline) Len() int {
	return max(len(q)-2, 0)
}

// Quads returns an iterator over the implied sequence of quadratic Bézier
// segments.
func (q QuadSpline) Quads() iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		var idx int
		for len(q[idx:]) >= 3 {
			p0, p1, p2 := q[idx], q[idx+1], q[idx+2]

			if idx != 0 {
				p0 = p0.Midpoint(p1)
			}
			if idx+2 < len(q)-1 {
				p2 = p1.Midpoint(p2)
			}

			idx++

			if !yield(QuadBez{p0, p1, p2}) {
				break
			}
		}
	}
}
