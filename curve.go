package glide

import (
	"iter"
	"math"
)

// FacingEpsilon is how far ahead of a sampled position, as a fraction of the
// containing polyline segment, [Curve.PointAt] places its facing point.
const FacingEpsilon = 0.01

// MaxSamples is the largest number of points [Build] produces. Requests for
// more result in an empty curve.
const MaxSamples = 1 << 24

// Track describes anything that can be followed by normalized arc length.
// Both [Curve] and [*Path] are tracks.
type Track interface {
	// Length returns the total arc length of the track.
	Length() float64
	// PointAt returns the position at fraction t of the track's length, and a
	// point slightly ahead of it that can be used as a look-at target.
	PointAt(t float64) (pos, facing Point)
}

var _ Track = Curve(nil)

// Curve is a polyline approximation of a path, as produced by [Build].
//
// A nil curve means that no path is available. An empty, non-nil curve is a
// path that was built from degenerate input, such as a resolution below one.
// Neither case is an error; all methods handle them.
type Curve []Point

// Build samples the chain of quadratic Béziers described by guides (see
// [QuadSpline]) with resolution points per segment.
//
// At least three guides are needed: a start, at least one interior guide to
// shape the curve, and an end. With fewer, Build returns nil and false.
// Otherwise, the returned curve has (len(guides)-2)*resolution points for any
// resolution of at least one and at most [MaxSamples] points in total; other
// resolutions produce an empty curve. Segments are sampled with
// [QuadBez.AppendSamples],
// so every segment contributes its start and end point and adjacent segments
// repeat their shared join point.
//
// Build is a pure function of its inputs.
func Build(guides []Point, resolution int) (Curve, bool) {
	if len(guides) < 3 {
		return nil, false
	}
	spline := QuadSpline(guides)
	if resolution < 1 || resolution > MaxSamples/spline.Len() {
		return Curve{}, true
	}
	out := make(Curve, 0, spline.Len()*resolution)
	for q := range spline.Quads() {
		out = q.AppendSamples(out, resolution)
	}
	return out, true
}

// Length returns the sum of the distances between consecutive points. Curves
// with fewer than two points have a length of 0.
func (c Curve) Length() float64 {
	var l float64
	for i := 1; i < len(c); i++ {
		l += c[i-1].Distance(c[i])
	}
	return l
}

// Segments returns an iterator over the line segments between consecutive
// points, including degenerate ones.
func (c Curve) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(c); i++ {
			if !yield(Line{c[i-1], c[i]}) {
				return
			}
		}
	}
}

// locate finds the segment that contains the given arc length. It returns the
// index of the segment's end point and the fraction along the segment. ok is
// false if no segment contains target, that is, if target lies beyond the
// end of the curve.
//
// Zero-length segments never contain anything.
func (c Curve) locate(target float64) (idx int, frac float64, ok bool) {
	for i := 1; i < len(c); i++ {
		d := c[i-1].Distance(c[i])
		if d == 0 {
			continue
		}
		if d >= target {
			return i, target / d, true
		}
		target -= d
	}
	return 0, 0, false
}

// PointAt returns the point at fraction t of the curve's arc length, as well
// as a point slightly further along the same polyline segment (see
// [FacingEpsilon]) that can be used as a facing target.
//
// t is not clamped. For t ≥ 1, PointAt returns the last point of the curve
// for both results, so PointAt(1) is exactly the end point. For t < 0, the
// result is extrapolated backwards along the curve's first non-degenerate
// segment; t = -Inf is treated like t = 0. Curves with fewer than two points
// return the zero point for both results.
func (c Curve) PointAt(t float64) (pos, facing Point) {
	if len(c) < 2 {
		return Point{}, Point{}
	}
	total := c.Length()
	target := total * finiteBelow(t)
	if target < total {
		if i, frac, ok := c.locate(target); ok {
			l := Line{c[i-1], c[i]}
			return l.Eval(frac), l.Eval(frac + FacingEpsilon)
		}
	}
	n := len(c)
	return c[n-1], c[n-2].Lerp(c[n-1], 1.0)
}

func finiteBelow(t float64) float64 {
	if math.IsInf(t, -1) {
		return 0
	}
	return t
}

// Heading returns the unit direction of travel at fraction t of the curve's
// arc length. Past the end of the curve, the direction of its last
// non-degenerate segment is used. Curves without any non-degenerate segment
// have no heading and return the zero vector.
func (c Curve) Heading(t float64) Vec3 {
	if len(c) < 2 {
		return Vec3{}
	}
	total := c.Length()
	target := total * finiteBelow(t)
	if target < total {
		if i, _, ok := c.locate(target); ok {
			return c[i].Sub(c[i-1]).Normalize()
		}
	}
	for i := len(c) - 1; i > 0; i-- {
		if d := c[i].Sub(c[i-1]); d.Hypot2() > 0 {
			return d.Normalize()
		}
	}
	return Vec3{}
}

// Nearest finds the point on the curve closest to pt. It returns the squared
// distance to that point and its position as a fraction of the curve's arc
// length, suitable for passing to [Curve.PointAt].
//
// Empty curves return +Inf and 0.
func (c Curve) Nearest(pt Point) (distSq, t float64) {
	switch len(c) {
	case 0:
		return math.Inf(1), 0
	case 1:
		return pt.DistanceSquared(c[0]), 0
	}
	var (
		acc    float64
		bestD  = math.Inf(1)
		bestAt float64
	)
	for l := range c.Segments() {
		d := l.Length()
		dist, s := l.Nearest(pt)
		if dist < bestD {
			bestD = dist
			bestAt = acc + s*d
		}
		acc += d
	}
	if acc == 0 {
		return bestD, 0
	}
	return bestD, bestAt / acc
}
