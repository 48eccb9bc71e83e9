package glide

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"testing"
)

func guidesAt(pts ...Point) []*Guide {
	out := make([]*Guide, len(pts))
	for i, pt := range pts {
		out[i] = NewGuide(pt)
	}
	return out
}

func orders(p *Path) []int {
	var out []int
	for _, g := range p.Guides() {
		out = append(out, g.Order())
	}
	return out
}

// recordHandler collects the messages of all records logged through it.
type recordHandler struct {
	mu   sync.Mutex
	msgs []string
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.msgs = append(h.msgs, r.Message)
	return nil
}
func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordHandler) count(msg string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, m := range h.msgs {
		if m == msg {
			n++
		}
	}
	return n
}

func captureLogs(t *testing.T) *recordHandler {
	h := &recordHandler{}
	SetLogger(slog.New(h))
	t.Cleanup(func() { SetLogger(nil) })
	return h
}

func TestPathTooFewGuides(t *testing.T) {
	p := NewPath(5, guidesAt(Pt(0, 0, 0), Pt(1, 0, 0))...)
	if c, ok := p.Curve(); ok || c != nil {
		t.Errorf("got curve %v, want none", c)
	}
	p.Refresh()
	if p.Stale() {
		t.Error("path is stale after refresh")
	}
	pos, facing := p.PointAt(0.5)
	diff(t, pos, Point{})
	diff(t, facing, Point{})
	if l := p.Length(); l != 0 {
		t.Errorf("got length %v, want 0", l)
	}
	f := Follower{Track: p, Speed: 1}
	pos, _ = f.Tick(1)
	diff(t, pos, Point{})
}

func TestPathZeroValue(t *testing.T) {
	var p Path
	if r := p.Resolution(); r != DefaultResolution {
		t.Errorf("got resolution %d, want %d", r, DefaultResolution)
	}
	if _, ok := p.Curve(); ok {
		t.Error("empty path has a curve")
	}
	p.AddGuide(NewGuide(Pt(0, 0, 0)))
	p.AddGuide(NewGuide(Pt(1, 0, 0)))
	p.AddGuide(NewGuide(Pt(2, 0, 0)))
	c, ok := p.Curve()
	if !ok || len(c) != DefaultResolution {
		t.Errorf("got %d points, want %d", len(c), DefaultResolution)
	}
}

func TestPathMatchesBuild(t *testing.T) {
	p := NewPath(7, guidesAt(wiggle(6)...)...)
	got, ok := p.Curve()
	if !ok {
		t.Fatal("curve absent")
	}
	want, _ := Build(wiggle(6), 7)
	diff(t, got, want)
	if l := p.Length(); l != want.Length() {
		t.Errorf("got length %v, want %v", l, want.Length())
	}
}

func TestPathInvalidation(t *testing.T) {
	p := NewPath(4, guidesAt(collinear(4)...)...)
	if !p.Stale() {
		t.Error("new path isn't stale")
	}
	p.Curve()
	if p.Stale() {
		t.Fatal("path is stale after query")
	}

	g := p.Guide(1)
	g.SetPosition(g.Position())
	if p.Stale() {
		t.Error("setting an unchanged position made the path stale")
	}

	g.SetPosition(Pt(1, 5, 0))
	if !p.Stale() {
		t.Fatal("moving a guide didn't make the path stale")
	}
	got, _ := p.Curve()
	want, _ := Build(p.Positions(), 4)
	diff(t, got, want)

	p.SetResolution(4)
	if p.Stale() {
		t.Error("setting an unchanged resolution made the path stale")
	}
	p.SetResolution(6)
	if !p.Stale() {
		t.Error("changing the resolution didn't make the path stale")
	}
	if c, _ := p.Curve(); len(c) != 2*6 {
		t.Errorf("got %d points, want %d", len(c), 2*6)
	}
}

func TestPathSingleRebuildPerTick(t *testing.T) {
	logs := captureLogs(t)
	p := NewPath(4, guidesAt(wiggle(8)...)...)
	p.Curve()
	for _, g := range p.Guides() {
		g.SetPosition(g.Position().Translate(Vec(0, 1, 0)))
	}
	p.PointAt(0.3)
	p.PointAt(0.6)
	if n := logs.count("path rebuilt"); n != 2 {
		t.Errorf("got %d rebuilds, want 2", n)
	}
}

func TestPathSetResolution(t *testing.T) {
	logs := captureLogs(t)
	tests := []struct {
		in, want int
	}{
		{0, DefaultResolution},
		{-4, MinResolution},
		{1, MinResolution},
		{2, 2},
		{25, 25},
		{50, 50},
		{51, MaxResolution},
	}
	var p Path
	for _, tt := range tests {
		p.SetResolution(tt.in)
		if got := p.Resolution(); got != tt.want {
			t.Errorf("SetResolution(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
	if n := logs.count("resolution out of range"); n != 3 {
		t.Errorf("got %d warnings, want 3", n)
	}
}

func TestPathStructuralEdits(t *testing.T) {
	p := NewPath(3, guidesAt(collinear(4)...)...)
	p.Curve()

	g := p.InsertGuideAfter(1, Pt(1.5, 1, 0))
	if g.Path() != p || p.Guide(2) != g {
		t.Fatal("guide wasn't inserted after index 1")
	}
	if !p.Stale() {
		t.Error("insert didn't make the path stale")
	}
	diff(t, orders(p), []int{0, 1, 2, 3, 4})

	d := p.DuplicateGuide(2)
	if d == g || d.Position() != g.Position() || p.Guide(3) != d {
		t.Error("duplicate isn't a copy right after its source")
	}
	diff(t, orders(p), []int{0, 1, 2, 3, 4, 5})

	front := NewGuide(Pt(-1, 0, 0))
	p.InsertGuide(-1, front)
	if p.Guide(0) != front {
		t.Error("index -1 didn't insert at the front")
	}

	p.Curve()
	r := p.RemoveGuide(3)
	if r != g || r.Path() != nil {
		t.Errorf("removed guide %v is still attached", r)
	}
	if !p.Stale() {
		t.Error("removal didn't make the path stale")
	}
	diff(t, orders(p), []int{0, 1, 2, 3, 4, 5})

	p.Curve()
	r.SetPosition(Pt(100, 100, 100))
	if p.Stale() {
		t.Error("moving a removed guide made the path stale")
	}
	if c, _ := p.Curve(); len(c) != 4*3 {
		t.Errorf("got %d points, want %d", len(c), 4*3)
	}
}

func TestPathReparent(t *testing.T) {
	a := NewPath(2, guidesAt(collinear(4)...)...)
	b := NewPath(2)
	g := a.Guide(2)
	b.AddGuide(g)
	if a.Len() != 3 || b.Len() != 1 {
		t.Fatalf("got lengths %d and %d, want 3 and 1", a.Len(), b.Len())
	}
	if g.Path() != b {
		t.Error("guide didn't move to its new path")
	}
	diff(t, orders(a), []int{0, 1, 2})

	defer func() {
		if recover() == nil {
			t.Error("inserting a guide twice didn't panic")
		}
	}()
	b.AddGuide(g)
}

func TestPathInsertOutOfRange(t *testing.T) {
	a := NewPath(2, guidesAt(collinear(3)...)...)
	b := NewPath(2, guidesAt(collinear(3)...)...)
	g := a.Guide(1)
	defer func() {
		if recover() == nil {
			t.Error("inserting at an invalid index didn't panic")
		}
		if g.Path() != a || a.Len() != 3 || b.Len() != 3 {
			t.Errorf("failed insert changed ownership: guide on %p, lengths %d and %d", g.Path(), a.Len(), b.Len())
		}
		diff(t, orders(a), []int{0, 1, 2})
	}()
	b.InsertGuide(7, g)
}

func TestNewPathFromOtherPath(t *testing.T) {
	src := NewPath(2, guidesAt(Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0))...)
	g0, g1, g2 := src.Guide(0), src.Guide(1), src.Guide(2)
	p := NewPath(2, g2, g1, g0)
	if src.Len() != 0 {
		t.Errorf("source path still has %d guides", src.Len())
	}
	diff(t, p.Positions(), []Point{Pt(2, 0, 0), Pt(1, 0, 0), Pt(0, 0, 0)})
	diff(t, orders(p), []int{0, 1, 2})
}

func TestPathNonFiniteGuide(t *testing.T) {
	logs := captureLogs(t)
	p := NewPath(2, guidesAt(Pt(0, 0, 0), Pt(math.Inf(1), 0, 0), Pt(2, 0, 0))...)
	p.Refresh()
	if n := logs.count("guide position is not finite"); n != 1 {
		t.Errorf("got %d warnings, want 1", n)
	}
	if _, ok := p.Curve(); !ok {
		t.Error("path with a non-finite guide has no curve")
	}
}

func TestPathOrder(t *testing.T) {
	gs := guidesAt(Pt(2, 0, 0), Pt(0, 0, 0), Pt(1, 0, 0))
	gs[0].SetOrder(2)
	gs[1].SetOrder(0)
	gs[2].SetOrder(1)
	p := NewPath(2, gs...)
	diff(t, p.Positions(), []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0)})
	diff(t, orders(p), []int{0, 1, 2})

	p.Curve()
	p.Guide(0).SetOrder(5)
	p.SortGuides()
	if !p.Stale() {
		t.Error("reordering didn't make the path stale")
	}
	diff(t, p.Positions(), []Point{Pt(1, 0, 0), Pt(2, 0, 0), Pt(0, 0, 0)})
	diff(t, orders(p), []int{0, 1, 2})

	p.Curve()
	p.SortGuides()
	if p.Stale() {
		t.Error("sorting sorted guides made the path stale")
	}
}

func TestPathRenumberGuides(t *testing.T) {
	p := NewPath(2, guidesAt(collinear(5)...)...)
	for _, g := range p.Guides() {
		g.SetOrder(42)
	}
	p.RenumberGuides()
	diff(t, orders(p), []int{0, 1, 2, 3, 4})
}

func TestPathBuildCurve(t *testing.T) {
	p := NewPath(3, guidesAt(wiggle(5)...)...)
	c, ok := p.BuildCurve()
	if !ok || len(c) != 3*3 {
		t.Fatalf("got %d points, want %d", len(c), 3*3)
	}
	if !p.Stale() {
		t.Error("BuildCurve refreshed the cache")
	}
}
