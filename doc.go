// Package glide builds smooth paths from chains of guide points and lets
// objects move along them at a constant speed.
//
// # Guides, splines and curves
//
// A designer shapes a path by placing an ordered chain of [Guide] points.
// The first and last guides are the path's end points; every guide in
// between pulls the path towards itself. The chain describes a [QuadSpline]:
// a sequence of quadratic Béziers where each interior guide is the control
// point of one segment, and consecutive segments meet halfway between their
// control points. The result passes smoothly through the region of every
// guide without any explicit tangents.
//
// [Build] samples such a spline into a [Curve], a polyline with a fixed
// number of points per segment. Curves are the unit of work for everything
// else: [Curve.Length] measures them, [Curve.PointAt] finds a position by
// normalized arc length, and [WriteSVG] exports them. Arc lengths are always
// chordal, that is, measured along the polyline, not the underlying Béziers.
//
// # Paths
//
// A [Path] owns a chain of guides and caches the curve built from them. The
// cache goes stale whenever a guide moves, the resolution changes or guides
// are inserted or removed, and the next query rebuilds it. Guides either
// carry their own position or observe a [Positioner], such as an entity in
// a scene, in which case [Path.Tick] has to be called once per simulation
// step to pick up movement.
//
// Paths with fewer than three guides have no curve. This is a normal state,
// for example while a designer is still placing guides, and every query
// handles it by returning zero values.
//
// # Following
//
// [Track] is implemented by both curves and paths. A [Follower] moves along
// any track at a constant speed, which, because positions are looked up by
// arc length, looks uniform regardless of how guides are spaced.
//
// # Concurrency
//
// Curves are immutable values and may be shared freely. Paths and followers
// are meant to be driven from a single goroutine, once per tick.
package glide
