package spline

import (
	"context"
	"iter"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"
)

// DefaultStep is the sampling step used in place of invalid steps.
const DefaultStep = 0.1

func normalizeStep(step float64) float64 {
	if !(step > 0 && step <= 1) {
		return DefaultStep
	}
	return step
}

// Params returns the sampling parameters 0, step, 2·step, … in [0, 1]. If
// closed is true, 1 is included when it is a multiple of step; otherwise
// parameters stop short of 1. Invalid steps are replaced with [DefaultStep].
//
// Parameters are computed as k·step rather than by repeated addition, so
// rounding errors don't accumulate.
func Params(step float64, closed bool) iter.Seq[float64] {
	step = normalizeStep(step)
	return func(yield func(float64) bool) {
		for k := 0; ; k++ {
			t := float64(k) * step
			if t > 1 || (!closed && t >= 1) {
				return
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Sample evaluates the curve at the parameters 0, step, 2·step, … below 1.
func (b *BSpline) Sample(step float64) (Polyline, error) {
	var out Polyline
	for t := range Params(step, false) {
		pt, err := b.Eval(t)
		if err != nil {
			return nil, err
		}
		out = append(out, pt)
	}
	return out, nil
}

// SampleConcurrent is like [BSpline.Sample] but evaluates samples on up to
// workers goroutines. A workers value of zero or less means no limit. The
// result is identical to that of Sample.
func (b *BSpline) SampleConcurrent(ctx context.Context, step float64, workers int) (Polyline, error) {
	ts := slices.Collect(Params(step, false))
	out := make(Polyline, len(ts))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, t := range ts {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pt, err := b.Eval(t)
			if err != nil {
				return err
			}
			out[i] = pt
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may have stopped early without any goroutine failing.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Polyline is an ordered sequence of curve points. Consecutive points define
// the line segments that approximate the curve.
type Polyline []Coord

// Points returns the polyline's points in 2D. It panics if the points have
// fewer than two axes.
func (pl Polyline) Points() []Point {
	out := make([]Point, len(pl))
	for i, c := range pl {
		out[i] = c.Point()
	}
	return out
}

// Lines returns the 2D segments between consecutive points.
func (pl Polyline) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pl); i++ {
			if !yield(Line{pl[i-1].Point(), pl[i].Point()}) {
				return
			}
		}
	}
}

// Length returns the sum of the distances between consecutive points.
func (pl Polyline) Length() float64 {
	var sum float64
	for i := 1; i < len(pl); i++ {
		sum += pl[i-1].Distance(pl[i])
	}
	return sum
}

// IsNaN reports whether any point of the polyline has a NaN component.
func (pl Polyline) IsNaN() bool {
	return slices.ContainsFunc(pl, Coord.IsNaN)
}

// Bounds returns the per-axis minimum and maximum of the polyline's points,
// or nil for an empty polyline.
func (pl Polyline) Bounds() (lo, hi Coord) {
	if len(pl) == 0 {
		return nil, nil
	}
	lo, hi = pl[0].Clone(), pl[0].Clone()
	for _, c := range pl[1:] {
		for axis, v := range c {
			lo[axis] = math.Min(lo[axis], v)
			hi[axis] = math.Max(hi[axis], v)
		}
	}
	return lo, hi
}
