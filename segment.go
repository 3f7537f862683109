package shapes

import (
	"iter"
	"slices"
)

// Polyliner describes path segments that can approximate themselves with an
// ordered sequence of points. It is the single operation a path-building
// pipeline needs from a segment; the segment kind stays opaque to the
// consumer.
type Polyliner interface {
	// Polyline returns the points approximating the segment, from its start
	// point to its end point. curveSegments controls how many samples curved
	// kinds produce; values less than 1 select [DefaultCurveSegments].
	Polyline(curveSegments int) iter.Seq[Point]
}

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// An elliptical arc segment.
	ArcKind
	// A cubic Bézier segment.
	CubicKind
)

// PathSegment represents a segment of a path. This type acts as a sort of tagged
// union representing all possible path segments ([Line], [Arc], and [CubicBez]).
type PathSegment struct {
	// We don't use an interface for PathSegment because we want {Line, Arc,
	// Cubic}.Translate to return their respective types, not PathSegment. But we
	// cannot encode that in Go interfaces.
	//
	// This also avoids having to allocate for path segments.

	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point

	// Arc parameters. These are only valid when Kind == ArcKind, in which
	// case P0 holds the arc's center.
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

var _ Polyliner = PathSegment{}

// Line returns the line represented by this segment. This is only valid when Kind ==
// LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Arc returns the arc represented by this segment. This is only valid when Kind ==
// ArcKind.
func (seg PathSegment) Arc() Arc {
	return Arc{
		Center:     seg.P0,
		Radii:      seg.Radii,
		StartAngle: seg.StartAngle,
		SweepAngle: seg.SweepAngle,
		XRotation:  seg.XRotation,
	}
}

// Cubic returns the cubic Bézier represented by this segment. This is only valid when
// Kind == CubicKind.
func (seg PathSegment) Cubic() CubicBez {
	return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
}

// Start returns the segment's start point.
func (seg PathSegment) Start() Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Start()
	case ArcKind:
		return seg.Arc().Start()
	case CubicKind:
		return seg.Cubic().Start()
	default:
		return Point{}
	}
}

// End returns the segment's end point.
func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().End()
	case ArcKind:
		return seg.Arc().End()
	case CubicKind:
		return seg.Cubic().End()
	default:
		return Point{}
	}
}

// Polyline implements [Polyliner] by dispatching on the segment kind. An
// invalid kind yields no points.
func (seg PathSegment) Polyline(curveSegments int) iter.Seq[Point] {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Polyline(curveSegments)
	case ArcKind:
		return seg.Arc().Polyline(curveSegments)
	case CubicKind:
		return seg.Cubic().Polyline(curveSegments)
	default:
		return func(yield func(Point) bool) {}
	}
}

// PathPolyline flattens a sequence of path segments into a single polyline.
// When a segment starts where the previous one ended, the shared joint is
// emitted exactly once. curveSegments is passed through to each segment's
// [Polyliner.Polyline].
func PathPolyline(seq iter.Seq[PathSegment], curveSegments int) []Point {
	var pts []Point
	for seg := range seq {
		skipFirst := len(pts) > 0 && pts[len(pts)-1] == seg.Start()
		for pt := range seg.Polyline(curveSegments) {
			if skipFirst {
				skipFirst = false
				continue
			}
			pts = append(pts, pt)
		}
	}
	return pts
}

// Polyline is a convenience wrapper around [PathPolyline] for segment slices.
func Polyline(segs []PathSegment, curveSegments int) []Point {
	return PathPolyline(slices.Values(segs), curveSegments)
}
