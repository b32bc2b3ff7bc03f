package spline

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Bezier is a Bézier curve of arbitrary degree, evaluated through the
// Bernstein basis. A curve with n+1 control points has degree n.
//
// Control points can be added between evaluations, which is how interactive
// curve building works. Sequences and polylines that were already returned
// are not affected by later additions.
type Bezier struct {
	points *PointSet
	step   float64
}

// NewBezier returns a Bézier curve with the given control points that is
// sampled in increments of step. See [Bezier.SetStep] for how step is
// interpreted.
func NewBezier(step float64, points ...Coord) (*Bezier, error) {
	b := &Bezier{points: new(PointSet)}
	if err := b.Add(points...); err != nil {
		return nil, err
	}
	b.SetStep(step)
	return b, nil
}

// SetStep sets the sampling step used by [Bezier.Samples] and [Bezier.Curve].
// Steps that aren't in (0, 1] are replaced with [DefaultStep] rather than
// rejected.
func (b *Bezier) SetStep(step float64) {
	b.step = normalizeStep(step)
}

// Step returns the sampling step.
func (b *Bezier) Step() float64 {
	return b.step
}

// Add appends control points to the curve.
func (b *Bezier) Add(points ...Coord) error {
	return b.points.Append(points...)
}

// AddPoint appends 2D control points to the curve.
func (b *Bezier) AddPoint(pts ...Point) error {
	return b.points.AppendPoint(pts...)
}

// Points returns a snapshot of the curve's control points.
func (b *Bezier) Points() *PointSet {
	return b.points.Snapshot()
}

// Degree returns the curve's degree, which is one less than the number of
// control points.
func (b *Bezier) Degree() int {
	return b.points.Len() - 1
}

// Basis returns the value of the i-th Bernstein basis polynomial of the
// curve's degree at t.
func (b *Bezier) Basis(i int, t float64) float64 {
	return Bernstein(b.Degree(), i, t)
}

// Eval evaluates the curve at t.
func (b *Bezier) Eval(t float64) (Coord, error) {
	return EvalBezier(t, b.points)
}

// Samples returns the curve points for t = 0, step, 2·step, … up to and
// including 1 if 1 is a multiple of step. The sequence can be iterated
// repeatedly and always yields the same points.
func (b *Bezier) Samples() (iter.Seq[Coord], error) {
	ps := b.points.Snapshot()
	if err := checkBezier(ps); err != nil {
		return nil, err
	}
	step := b.step
	return func(yield func(Coord) bool) {
		for t := range Params(step, true) {
			if !yield(evalBezier(ps, t)) {
				return
			}
		}
	}, nil
}

// Curve returns the points of [Bezier.Samples] as a polyline.
func (b *Bezier) Curve() (Polyline, error) {
	seq, err := b.Samples()
	if err != nil {
		return nil, err
	}
	return Polyline(slices.Collect(seq)), nil
}

// Bernstein returns the value of the Bernstein basis polynomial
// B(i,n)(t) = C(n,i) tⁱ (1-t)ⁿ⁻ⁱ.
func Bernstein(n, i int, t float64) float64 {
	return Binomial(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
}

// EvalBezier evaluates the Bézier curve defined by points at t.
func EvalBezier(t float64, points *PointSet) (Coord, error) {
	ps := points.Snapshot()
	if err := checkBezier(ps); err != nil {
		return nil, err
	}
	return evalBezier(ps, t), nil
}

func checkBezier(ps *PointSet) error {
	if err := ps.validate(); err != nil {
		return err
	}
	if n := ps.Len() - 1; n > MaxFactorial {
		return fmt.Errorf("%w: degree %d exceeds %d", ErrCombinatorialRange, n, MaxFactorial)
	}
	return nil
}

func evalBezier(ps *PointSet, t float64) Coord {
	n := ps.Len() - 1
	out := make(Coord, ps.Dim())
	for i, c := range ps.coords {
		w := Bernstein(n, i, t)
		for axis, v := range c {
			out[axis] += v * w
		}
	}
	return out
}
