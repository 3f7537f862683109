package shapes

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingPoints is returned when a required control-point slice is nil.
	ErrMissingPoints = errors.New("control points must not be nil")
	// ErrTooFewPoints is returned when a control-point slice has fewer than
	// [MinChainPoints] points.
	ErrTooFewPoints = errors.New("too few control points")
)

// MinChainPoints is the minimum number of control points of a cubic Bézier
// chain: a single segment needs two endpoints and two off-curve points.
const MinChainPoints = 4

// checkControlPoints validates the control-point precondition shared by all
// flattening entry points. The returned error wraps [ErrMissingPoints] or
// [ErrTooFewPoints] and names the offending parameter.
func checkControlPoints(name string, pts []Point) error {
	if pts == nil {
		return fmt.Errorf("%s: %w", name, ErrMissingPoints)
	}
	if len(pts) < MinChainPoints {
		return fmt.Errorf("%s: %w: got %d, need at least %d", name, ErrTooFewPoints, len(pts), MinChainPoints)
	}
	return nil
}
