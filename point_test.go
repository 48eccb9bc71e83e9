package glide

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0, 0).Translate(Vec(-10, 0, 2)), Pt(-10, 0, 2))
	diff(t, Pt(1, 2, 3).Sub(Pt(1, 1, 1)), Vec(0, 1, 2))
	diff(t, Pt(0, 0, 0).Midpoint(Pt(2, -4, 6)), Pt(1, -2, 3))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10, 0)
	p2 := Pt(0, 5, 0)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(1, 2, 3)
	p4 := Pt(4, 6, 15)
	if d := p3.Distance(p4); d != 13 {
		t.Errorf("got distance %v, want 13", d)
	}
}

func TestPointLerp(t *testing.T) {
	p0 := Pt(1, 1, 1)
	p1 := Pt(3, 5, -1)
	if got := p0.Lerp(p1, 0); got != p0 {
		t.Errorf("got %s, want %s", got, p0)
	}
	assertNear(t, p0.Lerp(p1, 0.5), Pt(2, 3, 0), 1e-12)
	// Lerp extrapolates.
	assertNear(t, p0.Lerp(p1, -1), Pt(-1, -3, 3), 1e-12)
}

func TestVecNormalize(t *testing.T) {
	v := Vec(0, 3, 4).Normalize()
	diff(t, v, Vec(0, 0.6, 0.8), cmpopts.EquateApprox(0, 1e-12))
	if z := Vec(0, 0, 0).Normalize(); !math.IsNaN(z.X) {
		t.Errorf("normalized zero vector is %s, want NaN", z)
	}
}

func TestPointIsInfNaN(t *testing.T) {
	if p := Pt(1, 2, 3); p.IsInf() || p.IsNaN() {
		t.Errorf("%s isn't finite", p)
	}
	if !Pt(0, math.Inf(-1), 0).IsInf() {
		t.Error("infinite point is finite")
	}
	if !Pt(0, 0, math.NaN()).IsNaN() {
		t.Error("NaN point isn't NaN")
	}
}
