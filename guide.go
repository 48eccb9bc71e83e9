package glide

// Positioner is implemented by scene entities that own a position, such as
// the objects a designer places to shape a path.
type Positioner interface {
	Position() Point
}

var _ Positioner = (*Guide)(nil)

// Guide is a single control point of a [Path].
//
// A guide either stores its own position, which is changed with
// [Guide.SetPosition], or is bound to a [Positioner] whose position it
// observes once per [Guide.Tick]. Either way, a change marks the owning path
// as stale. A guide that doesn't belong to a path is inert.
type Guide struct {
	pos   Point
	src   Positioner
	order int
	owner *Path
	// last is the most recently observed position, used only to detect
	// movement.
	last Point
}

// NewGuide returns a detached guide at pos.
func NewGuide(pos Point) *Guide {
	return &Guide{pos: pos, last: pos}
}

// BindGuide returns a detached guide that follows the position of src.
func BindGuide(src Positioner) *Guide {
	pos := src.Position()
	return &Guide{src: src, pos: pos, last: pos}
}

// Position returns the guide's current position.
func (g *Guide) Position() Point {
	if g.src != nil {
		return g.src.Position()
	}
	return g.pos
}

// SetPosition moves the guide. If the guide was bound to a [Positioner], it
// is unbound and keeps pos as its own position from now on.
func (g *Guide) SetPosition(pos Point) {
	g.src = nil
	g.pos = pos
	g.observe(pos)
}

// Bound reports whether the guide follows a [Positioner].
func (g *Guide) Bound() bool {
	return g.src != nil
}

// Order returns the guide's index among the guides of its path, as of the
// last renumbering.
func (g *Guide) Order() int {
	return g.order
}

// SetOrder sets the guide's order. It has no effect on its path until
// [Path.SortGuides] is called.
func (g *Guide) SetOrder(order int) {
	g.order = order
}

// Path returns the path the guide belongs to, or nil.
func (g *Guide) Path() *Path {
	return g.owner
}

// Tick checks whether a bound guide's position has changed since it was last
// observed, and if so marks the owning path as stale. It reports whether the
// guide moved. Unbound guides report changes as they happen, so Tick is a
// no-op for them.
func (g *Guide) Tick() bool {
	if g.src == nil {
		return false
	}
	return g.observe(g.src.Position())
}

func (g *Guide) observe(pos Point) bool {
	if pos == g.last {
		return false
	}
	g.last = pos
	if g.owner != nil {
		g.owner.Invalidate()
	}
	return true
}
