package glide

import (
	"cmp"
	"fmt"
	"slices"
)

const (
	// MinResolution is the smallest number of samples per segment a [Path]
	// accepts.
	MinResolution = 2
	// MaxResolution is the largest number of samples per segment a [Path]
	// accepts.
	MaxResolution = 50
	// DefaultResolution is the resolution used by the zero value of [Path].
	DefaultResolution = 10
)

var _ Track = (*Path)(nil)

// Path is an ordered chain of guides together with a cached [Curve] built
// from them.
//
// The cache is either fresh or stale. Moving a guide, changing the
// resolution or editing the chain makes it stale; queries rebuild a stale
// cache before answering. Several guides moving within the same tick thus
// cause a single rebuild.
//
// A Path is not safe for concurrent use.
type Path struct {
	guides     []*Guide
	resolution int

	curve  Curve
	length float64
	fresh  bool
}

// NewPath returns a path using the given resolution (see
// [Path.SetResolution]) that adopts the given guides. Guides are ordered by
// their [Guide.Order], ties keeping their argument order, and then
// renumbered. Guides that belonged to another path are removed from it, and
// their order is reset to their position among the arguments.
func NewPath(resolution int, guides ...*Guide) *Path {
	p := &Path{}
	p.SetResolution(resolution)
	for i, g := range guides {
		moved := g.owner != nil
		p.adopt(g)
		if moved {
			g.order = i
		}
	}
	p.guides = append(p.guides, guides...)
	p.SortGuides()
	return p
}

// Resolution returns the number of samples per curve segment.
func (p *Path) Resolution() int {
	if p.resolution == 0 {
		return DefaultResolution
	}
	return p.resolution
}

// SetResolution sets the number of samples per curve segment, clamped to
// [MinResolution, MaxResolution]. A resolution of 0 selects
// [DefaultResolution].
func (p *Path) SetResolution(r int) {
	if r == 0 {
		r = DefaultResolution
	}
	c := min(max(r, MinResolution), MaxResolution)
	if c != r {
		Logger().Warn("resolution out of range", "resolution", r, "clamped", c)
	}
	if c != p.Resolution() {
		p.fresh = false
	}
	p.resolution = c
}

// Len returns the number of guides.
func (p *Path) Len() int {
	return len(p.guides)
}

// Guide returns the i-th guide.
func (p *Path) Guide(i int) *Guide {
	return p.guides[i]
}

// Guides returns the path's guides in order. The returned slice is a copy.
func (p *Path) Guides() []*Guide {
	return slices.Clone(p.guides)
}

// Positions returns the current positions of the path's guides in order.
func (p *Path) Positions() []Point {
	pts := make([]Point, len(p.guides))
	for i, g := range p.guides {
		pts[i] = g.Position()
	}
	return pts
}

// Stale reports whether the cached curve is out of date.
func (p *Path) Stale() bool {
	return !p.fresh
}

// Invalidate marks the cached curve as out of date.
func (p *Path) Invalidate() {
	p.fresh = false
}

// Tick runs one step of change detection for guides bound to a
// [Positioner].
func (p *Path) Tick() {
	for _, g := range p.guides {
		g.Tick()
	}
}

// Refresh rebuilds the cached curve from the current guide positions,
// regardless of whether it is stale.
func (p *Path) Refresh() {
	pts := p.Positions()
	for i, g := range p.guides {
		g.last = pts[i]
		if pts[i].IsInf() || pts[i].IsNaN() {
			Logger().Warn("guide position is not finite", "index", i, "position", pts[i])
		}
	}
	p.curve, _ = Build(pts, p.Resolution())
	p.length = p.curve.Length()
	p.fresh = true
	Logger().Debug("path rebuilt",
		"guides", len(pts),
		"resolution", p.Resolution(),
		"samples", len(p.curve),
		"length", p.length)
}

func (p *Path) refresh() {
	if !p.fresh {
		p.Refresh()
	}
}

// Curve returns the cached curve, rebuilding it first if it is stale. ok is
// false if the path has fewer than three guides. The returned curve must not
// be modified.
func (p *Path) Curve() (c Curve, ok bool) {
	p.refresh()
	return p.curve, p.curve != nil
}

// BuildCurve builds a curve from the current guide positions without
// consulting or updating the cache.
func (p *Path) BuildCurve() (Curve, bool) {
	return Build(p.Positions(), p.Resolution())
}

// Length returns the arc length of the cached curve.
func (p *Path) Length() float64 {
	p.refresh()
	return p.length
}

// PointAt is like [Curve.PointAt] for the cached curve. Paths without a curve
// return the zero point for both results.
func (p *Path) PointAt(t float64) (pos, facing Point) {
	p.refresh()
	return p.curve.PointAt(t)
}

// Heading is like [Curve.Heading] for the cached curve.
func (p *Path) Heading(t float64) Vec3 {
	p.refresh()
	return p.curve.Heading(t)
}

// Nearest is like [Curve.Nearest] for the cached curve.
func (p *Path) Nearest(pt Point) (distSq, t float64) {
	p.refresh()
	return p.curve.Nearest(pt)
}

// RenumberGuides sets the order of every guide to its index in the path.
func (p *Path) RenumberGuides() {
	for i, g := range p.guides {
		g.order = i
	}
}

// SortGuides restores the path's guide sequence from the guides' orders,
// after they have been changed with [Guide.SetOrder], and renumbers them.
// Guides with equal orders keep their relative position.
func (p *Path) SortGuides() {
	if !slices.IsSortedFunc(p.guides, byOrder) {
		slices.SortStableFunc(p.guides, byOrder)
		p.fresh = false
	}
	p.RenumberGuides()
}

func byOrder(a, b *Guide) int {
	return cmp.Compare(a.order, b.order)
}

// AddGuide appends g to the end of the path.
func (p *Path) AddGuide(g *Guide) {
	p.InsertGuide(len(p.guides)-1, g)
}

// InsertGuide inserts g immediately after the guide at index i. An index of
// -1 inserts g at the start of the path. If g belongs to another path, it is
// removed from it first. Inserting a guide into the path it already belongs
// to panics, as does an index outside [-1, Len()).
func (p *Path) InsertGuide(i int, g *Guide) {
	if i < -1 || i >= len(p.guides) {
		panic(fmt.Sprintf("glide: guide index %d out of range [-1, %d)", i, len(p.guides)))
	}
	p.adopt(g)
	p.guides = slices.Insert(p.guides, i+1, g)
	p.edited("insert", i+1)
}

// InsertGuideAfter creates a guide at pos and inserts it immediately after
// the guide at index i.
func (p *Path) InsertGuideAfter(i int, pos Point) *Guide {
	g := NewGuide(pos)
	p.InsertGuide(i, g)
	return g
}

// DuplicateGuide inserts a copy of the guide at index i immediately after
// it. The copy is never bound; it starts at the original's current position.
func (p *Path) DuplicateGuide(i int) *Guide {
	return p.InsertGuideAfter(i, p.guides[i].Position())
}

// RemoveGuide removes the guide at index i from the path and returns it. The
// removed guide is detached and no longer affects the path.
func (p *Path) RemoveGuide(i int) *Guide {
	g := p.guides[i]
	p.guides = slices.Delete(p.guides, i, i+1)
	g.owner = nil
	p.edited("remove", i)
	return g
}

func (p *Path) adopt(g *Guide) {
	if g.owner == p {
		panic("glide: guide already belongs to this path")
	}
	if old := g.owner; old != nil {
		if i := slices.Index(old.guides, g); i >= 0 {
			old.RemoveGuide(i)
		}
	}
	g.owner = p
}

func (p *Path) edited(op string, i int) {
	p.fresh = false
	p.RenumberGuides()
	Logger().Debug("path edited", "op", op, "index", i, "guides", len(p.guides))
}
