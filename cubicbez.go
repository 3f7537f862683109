package shapes

import "iter"

var _ Polyliner = CubicBez{}

// CubicBez is a single cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval evaluates the curve at parameter t, using the Bernstein basis:
//
//	(1-t)³ p0 + 3(1-t)²t p1 + 3(1-t)t² p2 + t³ p3
//
// The powers of t and 1-t are computed once and reused. Generally, t is in
// the range [0, 1]; values outside that range extrapolate past the segment.
func (c CubicBez) Eval(t float64) Point {
	u := 1.0 - t
	uu := u * u
	tt := t * t
	v := Vec2(c.P0).Mul(uu * u).
		Add(Vec2(c.P1).Mul(3.0 * uu * t)).
		Add(Vec2(c.P2).Mul(3.0 * u * tt)).
		Add(Vec2(c.P3).Mul(tt * t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

// deriv evaluates the curve's derivative at parameter t.
func (c CubicBez) deriv(t float64) Vec2 {
	u := 1.0 - t
	return c.P1.Sub(c.P0).Mul(u * u).
		Add(c.P2.Sub(c.P1).Mul(2.0 * u * t)).
		Add(c.P3.Sub(c.P2).Mul(t * t)).
		Mul(3.0)
}

// Subsegment returns the portion of the curve between parameters t0 and t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.deriv(t0).Mul(scale))
	p2 := p3.Translate(c.deriv(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

func (c CubicBez) Translate(v Vec2) CubicBez {
	return CubicBez{
		P0: c.P0.Translate(v),
		P1: c.P1.Translate(v),
		P2: c.P2.Translate(v),
		P3: c.P3.Translate(v),
	}
}

func (c CubicBez) Seg() PathSegment {
	return PathSegment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

// Polyline implements [Polyliner]. It samples the curve at curveSegments+1
// evenly spaced parameter values, starting at the curve's start point. If
// curveSegments is less than 1, [DefaultCurveSegments] is used.
func (c CubicBez) Polyline(curveSegments int) iter.Seq[Point] {
	n := effectiveCurveSegments(curveSegments)
	return func(yield func(Point) bool) {
		if !yield(c.P0) {
			return
		}
		for j := 1; j <= n; j++ {
			if !yield(c.Eval(float64(j) / float64(n))) {
				return
			}
		}
	}
}
