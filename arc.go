package shapes

import (
	"iter"
	"math"
)

// Arc is an elliptical arc segment.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

var _ Polyliner = Arc{}

// Start returns the arc's start point.
func (a Arc) Start() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle))
}

// End returns the arc's end point.
func (a Arc) End() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle+a.SweepAngle))
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

// Polyline implements [Polyliner]. It samples the arc at curveSegments+1
// evenly spaced angles, starting at the arc's start point. If curveSegments
// is less than 1, [DefaultCurveSegments] is used.
func (a Arc) Polyline(curveSegments int) iter.Seq[Point] {
	n := effectiveCurveSegments(curveSegments)
	return func(yield func(Point) bool) {
		angleStep := a.SweepAngle / float64(n)
		for j := 0; j <= n; j++ {
			angle := a.StartAngle + float64(j)*angleStep
			if !yield(a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, angle))) {
				return
			}
		}
	}
}

// / Take the ellipse radii, how the radii are rotated, and the angle, and return a
// / point on the ellipse.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// / Rotate `pt` about the origin by `angle` radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}
