package shapes

import "iter"

// DefaultCurveSegments is the number of polyline segments used to approximate
// one curved path segment when no explicit count is given. The resulting
// resolution is fixed, not curvature-based; callers needing a different
// trade-off pass their own count to the flattening entry points.
const DefaultCurveSegments = 50

// effectiveCurveSegments maps the curveSegments knob to a usable sample
// count. Values less than 1 select the default, so the zero value of the knob
// means "default".
func effectiveCurveSegments(curveSegments int) int {
	if curveSegments < 1 {
		return DefaultCurveSegments
	}
	return curveSegments
}

// FlattenCubics converts a chain of cubic Bézier control points into a
// polyline.
//
// Each consecutive group of four control points, advancing by three per
// group, defines one cubic segment; adjacent segments share an endpoint. The
// returned polyline holds the chain's start point followed by curveSegments
// samples per segment, so its length is
//
//	curveSegments * (len(points)-1)/3 + 1
//
// with shared joints appearing exactly once. If curveSegments is less than 1,
// [DefaultCurveSegments] is used.
//
// points must hold at least [MinChainPoints] points; otherwise an error
// wrapping [ErrMissingPoints] or [ErrTooFewPoints] is returned. A trailing
// group of fewer than three additional points does not form a segment and is
// ignored; use [ValidCubicChain] to reject such chains up front.
func FlattenCubics(points []Point, curveSegments int) ([]Point, error) {
	if err := checkControlPoints("points", points); err != nil {
		return nil, err
	}
	n := effectiveCurveSegments(curveSegments)
	curveCount := (len(points) - 1) / 3
	pts := make([]Point, 0, n*curveCount+1)
	for i := 0; i+3 < len(points); i += 3 {
		c := CubicBez{points[i], points[i+1], points[i+2], points[i+3]}
		if i == 0 {
			// The chain's start point, emitted once for the whole chain.
			pts = append(pts, c.P0)
		}
		for j := 1; j <= n; j++ {
			pts = append(pts, c.Eval(float64(j)/float64(n)))
		}
	}
	return pts, nil
}

// ValidCubicChain reports whether points forms a well-formed cubic chain,
// i.e. it has at least [MinChainPoints] points and every control point
// belongs to a segment.
func ValidCubicChain(points []Point) bool {
	return len(points) >= MinChainPoints && (len(points)-1)%3 == 0
}

// CubicSpline is a chain of cubic Bézier segments together with its polyline
// approximation. The polyline is computed eagerly at construction and never
// changes afterwards, so a CubicSpline may be shared freely across concurrent
// readers.
type CubicSpline struct {
	pts []Point
}

// NewCubicSpline constructs a spline from a chain of control points,
// flattening with [DefaultCurveSegments] samples per segment. See
// [FlattenCubics] for the shape of the chain and the error conditions.
func NewCubicSpline(controlPoints []Point) (CubicSpline, error) {
	return NewCubicSplineSegments(controlPoints, DefaultCurveSegments)
}

// NewCubicSplineSegments is like [NewCubicSpline] with an explicit sample
// count per segment.
func NewCubicSplineSegments(controlPoints []Point, curveSegments int) (CubicSpline, error) {
	pts, err := FlattenCubics(controlPoints, curveSegments)
	if err != nil {
		return CubicSpline{}, err
	}
	return CubicSpline{pts: pts}, nil
}

// Len returns the number of points in the polyline.
func (s CubicSpline) Len() int {
	return len(s.pts)
}

// At returns the i-th point of the polyline.
func (s CubicSpline) At(i int) Point {
	return s.pts[i]
}

// Start returns the first point of the polyline.
func (s CubicSpline) Start() Point {
	return s.pts[0]
}

// End returns the last point of the polyline.
func (s CubicSpline) End() Point {
	return s.pts[len(s.pts)-1]
}

// Points returns a read-only view of the polyline. It does not allocate or
// recompute; iterating repeatedly yields the same points every time.
func (s CubicSpline) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, pt := range s.pts {
			if !yield(pt) {
				return
			}
		}
	}
}

// Polyline returns a copy of the polyline.
func (s CubicSpline) Polyline() []Point {
	out := make([]Point, len(s.pts))
	copy(out, s.pts)
	return out
}

// Lines returns the polyline as a sequence of line segments, suitable for
// line-drawing consumers.
func (s CubicSpline) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(s.pts); i++ {
			if !yield(Line{s.pts[i-1], s.pts[i]}) {
				return
			}
		}
	}
}

// BoundingBox returns the smallest rectangle enclosing the polyline. This
// bounds the approximation, not the exact curve: a curve may overshoot its
// samples between parameter values.
func (s CubicSpline) BoundingBox() Rect {
	return PolylineBounds(s.pts)
}
