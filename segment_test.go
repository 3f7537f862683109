package shapes

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPathSegmentRoundTrip(t *testing.T) {
	l := Line{Pt(0, 0), Pt(4, 4)}
	diff(t, l, l.Seg().Line())

	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	diff(t, c, c.Seg().Cubic())
}

func TestPathSegmentDispatch(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	seg := c.Seg()
	diff(t, c.Start(), seg.Start())
	diff(t, c.End(), seg.End())
	diff(t, slices.Collect(c.Polyline(10)), slices.Collect(seg.Polyline(10)))

	var zero PathSegment
	if pts := slices.Collect(zero.Polyline(10)); len(pts) != 0 {
		t.Errorf("invalid segment yielded %d points, want none", len(pts))
	}
}

func TestPathPolylineSharedJoints(t *testing.T) {
	// A cubic followed by a line starting at the cubic's end: the joint must
	// appear exactly once.
	c := CubicBez{Pt(0, 0), Pt(10, 20), Pt(20, -20), Pt(30, 10)}
	l := Line{c.P3, Pt(40, 10)}
	pts := Polyline([]PathSegment{c.Seg(), l.Seg()}, 50)
	if len(pts) != 52 {
		t.Fatalf("got %d points, want 52", len(pts))
	}
	diff(t, c.P0, pts[0])
	diff(t, c.P3, pts[50])
	diff(t, l.P1, pts[51])
}

func TestPathPolylineDisjointSegments(t *testing.T) {
	// Segments that don't share endpoints keep all their points.
	a := Line{Pt(0, 0), Pt(1, 0)}
	b := Line{Pt(5, 5), Pt(6, 5)}
	pts := Polyline([]PathSegment{a.Seg(), b.Seg()}, 50)
	diff(t, []Point{a.P0, a.P1, b.P0, b.P1}, pts)
}

func TestPathPolylineMixedKinds(t *testing.T) {
	// line → arc → cubic, chained end to start. The arc starts at angle 0 so
	// its start point matches the line's end exactly.
	l := Line{Pt(-5, 0), Pt(7, 0)}
	a := Arc{Center: Pt(6, 0), Radii: Vec(1, 1), StartAngle: 0, SweepAngle: math.Pi / 2}
	arcEnd := a.End()
	c := CubicBez{arcEnd, arcEnd.Translate(Vec(0, 1)), Pt(8, 3), Pt(9, 4)}

	segs := []PathSegment{
		l.Seg(),
		{Kind: ArcKind, P0: a.Center, Radii: a.Radii, StartAngle: a.StartAngle, SweepAngle: a.SweepAngle},
		c.Seg(),
	}
	const n = 4
	pts := Polyline(segs, n)
	// 2 line points + n arc points (start shared) + n cubic points (start shared).
	if len(pts) != 2+n+n {
		t.Fatalf("got %d points, want %d", len(pts), 2+n+n)
	}
	diff(t, l.P0, pts[0])
	diff(t, arcEnd, pts[1+n], cmpopts.EquateApprox(0, 1e-12))
	diff(t, c.P3, pts[len(pts)-1], cmpopts.EquateApprox(0, 1e-12))
}
