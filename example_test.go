package shapes_test

import (
	"fmt"

	shapes "github.com/TodesBrot/Shapes"
)

func ExampleFlattenCubics() {
	// Two chained cubic segments: the fourth point is shared by both.
	controlPoints := []shapes.Point{
		shapes.Pt(0, 0), shapes.Pt(10, 20), shapes.Pt(20, -20), shapes.Pt(30, 10),
		shapes.Pt(40, 40), shapes.Pt(50, -10), shapes.Pt(60, 0),
	}
	polyline, err := shapes.FlattenCubics(controlPoints, shapes.DefaultCurveSegments)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(polyline))
	fmt.Println(polyline[0], polyline[50], polyline[100])
	// Output:
	// 101
	// (0, 0) (30, 10) (60, 0)
}

func ExampleCubicSpline_Lines() {
	spline, err := shapes.NewCubicSplineSegments([]shapes.Point{
		shapes.Pt(0, 0), shapes.Pt(1, 1), shapes.Pt(2, 2), shapes.Pt(3, 3),
	}, 2)
	if err != nil {
		panic(err)
	}
	for line := range spline.Lines() {
		fmt.Println(line.P0, "->", line.P1)
	}
	// Output:
	// (0, 0) -> (1.5, 1.5)
	// (1.5, 1.5) -> (3, 3)
}
