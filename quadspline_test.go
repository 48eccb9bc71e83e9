package glide

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestQuadSpline(t *testing.T) {
	p1 := Pt(1, 1, 0)
	p2 := Pt(2, 2, 1)
	p3 := Pt(3, 3, 0)
	p5 := Pt(5, 5, 2)
	p8 := Pt(8, 8, 0)
	p9 := Pt(9, 7, 1)
	tests := []struct {
		in  QuadSpline
		out []QuadBez
	}{
		{make(QuadSpline, 0), nil},
		{make(QuadSpline, 1), nil},
		{make(QuadSpline, 2), nil},
		{QuadSpline{p1, p2, p3}, []QuadBez{{p1, p2, p3}}},
		{QuadSpline{p1, p3, p5, p8}, []QuadBez{
			{p1, p3, p3.Midpoint(p5)},
			{p3.Midpoint(p5), p5, p8},
		}},
		{QuadSpline{p1, p2, p5, p8, p9}, []QuadBez{
			{p1, p2, p2.Midpoint(p5)},
			{p2.Midpoint(p5), p5, p5.Midpoint(p8)},
			{p5.Midpoint(p8), p8, p9},
		}},
	}

	for _, tt := range tests {
		got := slices.Collect(tt.in.Quads())
		diff(t, got, tt.out, cmpopts.EquateEmpty())
		if n := tt.in.Len(); n != len(tt.out) {
			t.Errorf("Len() = %d, want %d", n, len(tt.out))
		}
	}
}

func TestQuadSplineJoins(t *testing.T) {
	q := QuadSpline{
		Pt(0, 0, 0),
		Pt(1, 3, 0),
		Pt(4, 1, 2),
		Pt(6, 6, -1),
		Pt(2, 7, 0),
		Pt(0, 4, 4),
	}
	var prev *QuadBez
	for seg := range q.Quads() {
		if prev != nil && prev.P2 != seg.P0 {
			t.Errorf("segments don't join: %s != %s", prev.P2, seg.P0)
		}
		prev = &seg
	}
}
