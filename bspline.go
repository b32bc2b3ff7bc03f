package spline

import (
	"fmt"
	"math"
	"slices"
)

// BSplineConfig describes a B-spline curve apart from its control points.
type BSplineConfig struct {
	// Degree is the polynomial degree of the curve's pieces. It must be in
	// [1, n-1] for n control points.
	Degree int
	// Knots is the curve's knot vector. If nil, [UniformKnots] is used.
	Knots KnotVector
	// Weights are the per-point weights of a rational curve. If nil, all
	// weights are 1 and the curve is non-rational.
	Weights []float64
}

// BSpline is a validated, immutable B-spline or NURBS curve. It is safe for
// concurrent use.
type BSpline struct {
	points  *PointSet
	degree  int
	knots   KnotVector
	weights []float64
}

type options struct {
	knots   KnotVector
	weights []float64
}

// Option configures [NewBSpline].
type Option func(*options)

// WithKnots sets an explicit knot vector. Its length must be n+degree+1.
func WithKnots(k KnotVector) Option {
	return func(o *options) {
		o.knots = k
	}
}

// WithWeights sets per-point weights, turning the curve into a NURBS curve.
func WithWeights(w []float64) Option {
	return func(o *options) {
		o.weights = w
	}
}

// NewBSpline validates a B-spline of the given degree over a snapshot of
// points.
//
// Errors are reported in the order [ErrMalformedPointSet], [ErrInvalidDegree],
// [ErrInvalidKnotVector], [ErrInvalidWeights].
func NewBSpline(points *PointSet, degree int, opts ...Option) (*BSpline, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return newBSpline(points, BSplineConfig{
		Degree:  degree,
		Knots:   o.knots,
		Weights: o.weights,
	})
}

// EvalBSpline evaluates the B-spline described by points and cfg at t, which
// is normalized to [0, 1] and remapped to the curve's domain.
func EvalBSpline(t float64, points *PointSet, cfg BSplineConfig) (Coord, error) {
	b, err := newBSpline(points, cfg)
	if err != nil {
		return nil, err
	}
	return b.Eval(t)
}

func newBSpline(points *PointSet, cfg BSplineConfig) (*BSpline, error) {
	ps := points.Snapshot()
	if err := ps.validate(); err != nil {
		return nil, err
	}
	n := ps.Len()
	if cfg.Degree < 1 || cfg.Degree > n-1 {
		return nil, &DegreeError{Degree: cfg.Degree, Points: n}
	}
	knots, err := ResolveKnots(cfg.Knots, n, cfg.Degree)
	if err != nil {
		return nil, err
	}
	weights, err := resolveWeights(cfg.Weights, n)
	if err != nil {
		return nil, err
	}
	return &BSpline{
		points:  ps,
		degree:  cfg.Degree,
		knots:   knots,
		weights: weights,
	}, nil
}

func resolveWeights(w []float64, n int) ([]float64, error) {
	if w == nil {
		w = make([]float64, n)
		for i := range w {
			w[i] = 1
		}
		return w, nil
	}
	if len(w) != n {
		return nil, fmt.Errorf("%w: got %d weights for %d points", ErrInvalidWeights, len(w), n)
	}
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: weight %d is %g", ErrInvalidWeights, i, v)
		}
	}
	return slices.Clone(w), nil
}

// Degree returns the curve's degree.
func (b *BSpline) Degree() int { return b.degree }

// Knots returns a copy of the curve's knot vector.
func (b *BSpline) Knots() KnotVector { return b.knots.Clone() }

// Weights returns a copy of the curve's weights.
func (b *BSpline) Weights() []float64 { return slices.Clone(b.weights) }

// Points returns the curve's control points.
func (b *BSpline) Points() *PointSet { return b.points.Snapshot() }

// Domain returns the range of knot values that [BSpline.Eval] maps [0, 1]
// onto.
func (b *BSpline) Domain() (low, high float64) {
	return b.knots.Domain(b.degree)
}

// Eval evaluates the curve at t. The parameter is normalized: 0 and 1 map to
// the low and high ends of [BSpline.Domain]. Parameters outside of [0, 1]
// result in a [*DomainError].
//
// Evaluation uses de Boor's algorithm on homogeneous coordinates (x·w, y·w,
// …, w), so weighted curves are blended exactly and projected back at the
// end.
func (b *BSpline) Eval(t float64) (Coord, error) {
	p := b.degree
	d := b.points.Dim()
	k := b.knots

	low, high := k.Domain(p)
	u := t*(high-low) + low
	if t == 1 {
		u = high
	}
	if math.IsNaN(u) || u < low || u > high {
		return nil, &DomainError{T: u, Low: low, High: high}
	}
	s := k.Span(p, u)

	// Only control points s-p through s influence the span. Row j of v holds
	// control point s-p+j in homogeneous coordinates.
	stride := d + 1
	base := s - p
	v := make([]float64, (p+1)*stride)
	for j := range p + 1 {
		w := b.weights[base+j]
		row := v[j*stride : (j+1)*stride]
		for axis, x := range b.points.coords[base+j] {
			row[axis] = x * w
		}
		row[d] = w
	}

	for l := 1; l <= p; l++ {
		for i := s; i > s-p-1+l; i-- {
			alpha := knotRatio(u-k[i], k[i+p+1-l]-k[i])
			cur := v[(i-base)*stride : (i-base+1)*stride]
			prev := v[(i-base-1)*stride : (i-base)*stride]
			for j := range cur {
				cur[j] = (1-alpha)*prev[j] + alpha*cur[j]
			}
		}
	}

	h := v[p*stride:]
	if h[d] == 0 {
		return nil, fmt.Errorf("%w: homogeneous weight is zero at t=%g", ErrDegenerateWeight, t)
	}
	out := make(Coord, d)
	for axis := range out {
		out[axis] = h[axis] / h[d]
	}
	return out, nil
}

// knotRatio returns num/den, treating 0/0 spans of repeated knots as 0.
func knotRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
