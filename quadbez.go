package glide

// QuadBez is a quadratic Bézier segment in three dimensions: a start point,
// one control point and an end point.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval evaluates the segment at t using the quadratic Bernstein blend.
// Eval(0) is exactly P0 and Eval(1) is exactly P2.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec3(q.P0).Mul(mt * mt)
	b := Vec3(q.P1).Mul(mt * 2.0)
	c := Vec3(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// AppendSamples appends n points of the segment to dst and returns the
// extended slice.
//
// Samples are taken at t = i/(n-1) for i in [0, n), so both end points are
// included. A single sample is the start point; n < 1 appends nothing.
func (q QuadBez) AppendSamples(dst []Point, n int) []Point {
	switch {
	case n < 1:
		return dst
	case n == 1:
		return append(dst, q.P0)
	}
	step := 1.0 / float64(n-1)
	for i := range n - 1 {
		dst = append(dst, q.Eval(float64(i)*step))
	}
	// Hit the end point exactly instead of accumulating rounding error.
	return append(dst, q.Eval(1))
}
