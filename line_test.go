package shapes

import (
	"slices"
	"testing"
)

func TestLineEval(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 4)}
	diff(t, Pt(0, 0), l.Eval(0))
	diff(t, Pt(10, 4), l.Eval(1))
	diff(t, Pt(5, 2), l.Eval(0.5))
}

func TestLineLength(t *testing.T) {
	l := Line{Pt(0, 0), Pt(3, 4)}
	if got := l.Length(); got != 5 {
		t.Errorf("got length %v, want 5", got)
	}
}

func TestLineSubdivide(t *testing.T) {
	l := Line{Pt(-2, 0), Pt(2, 8)}
	a, b := l.Subdivide()
	diff(t, l.P0, a.P0)
	diff(t, l.Midpoint(), a.P1)
	diff(t, l.Midpoint(), b.P0)
	diff(t, l.P1, b.P1)
}

func TestLinePolyline(t *testing.T) {
	l := Line{Pt(1, 2), Pt(3, 4)}
	// Lines ignore the resolution knob.
	diff(t, []Point{l.P0, l.P1}, slices.Collect(l.Polyline(DefaultCurveSegments)))
	diff(t, []Point{l.P0, l.P1}, slices.Collect(l.Polyline(0)))
}
