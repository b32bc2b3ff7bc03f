// Package spline evaluates parametric curves defined by control points:
// Bézier curves of arbitrary degree and B-spline curves, optionally rational
// (NURBS). It is intended as the computational core of curve editors and
// plotters, which feed it control points and draw the points it produces.
//
// Evaluation is pure. Apart from appending control points, nothing in this
// package has side effects, and curves can be evaluated concurrently from
// multiple goroutines.
//
// # Points
//
// Control points and curve points are [Coord] values, which may have any
// number of axes. All points of a [PointSet] share the same dimension. The
// 2D types [Point] and [Vec2] exist for convenience, and [Polyline.Points]
// and [Polyline.Lines] convert sampled curves to them.
//
// # Bézier curves
//
// [Bezier] blends n+1 control points with the Bernstein basis
//
//	B(i,n)(t) = C(n,i) tⁱ (1-t)ⁿ⁻ⁱ
//
// and samples the curve at evenly spaced parameters. Control points can be
// added between evaluations, which suits interactive curve building.
// Steps outside of (0, 1] fall back to [DefaultStep] instead of failing.
//
// The binomial coefficients are computed from factorials in float64, which
// limits Bézier curves to degree [MaxFactorial]. Evaluating a curve of higher
// degree fails with [ErrCombinatorialRange].
//
// # B-splines
//
// [BSpline] evaluates piecewise polynomial curves of a given degree over a
// [KnotVector], using de Boor's algorithm on homogeneous coordinates so that
// per-point weights are supported. Parameters are normalized: [BSpline.Eval]
// maps t ∈ [0, 1] onto the valid knot domain. Unlike Bézier steps, invalid
// B-spline input is never clamped; it results in an error.
//
// Without an explicit knot vector, [UniformKnots] is used. The resulting
// curve does not pass through its first and last control points; use
// [ClampedKnots] for a curve that does.
//
// # Errors
//
// Errors can be inspected with [errors.Is] against [ErrInvalidDegree],
// [ErrInvalidKnotVector], [ErrOutOfDomain], [ErrDegenerateWeight],
// [ErrMalformedPointSet], [ErrInvalidWeights], and [ErrCombinatorialRange],
// or with [errors.As] for the typed errors that carry details.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - The NURBS Book by Les Piegl and Wayne Tiller
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package spline
