// Package shapes provides primitives for flattening 2D path segments to
// polylines. Its central operation converts a chain of cubic Bézier control
// points into a dense, fixed-resolution sequence of points suitable for
// line-drawing and fill algorithms.
//
// # Control-point chains
//
// A chain of cubic Béziers is given as a flat slice of control points. Each
// consecutive group of four points, advancing by three per group, defines one
// cubic segment; adjacent segments share an endpoint. [FlattenCubics] turns
// such a chain into a polyline, and [CubicSpline] bundles the chain with its
// eagerly computed polyline as an immutable value.
//
// Flattening uses a fixed number of samples per curve rather than
// curvature-based refinement. The sample count defaults to
// [DefaultCurveSegments] and can be overridden per call.
//
// # Segments
//
// [Line], [Arc], and [CubicBez] are the supported path-segment kinds.
// [PathSegment] wraps them in a tagged union, and all four implement
// [Polyliner], the single-operation interface through which a larger
// path-building pipeline obtains point approximations without knowing the
// segment kind. [PathPolyline] chains a sequence of segments into one
// polyline, emitting shared joints exactly once.
//
// # Iterators
//
// Functions and methods that expose precomputed points without allocating
// return an iter.Seq[Point]; those that return slices allocate. Use
// [slices.Collect] to turn the former into the latter.
package shapes
