package spline

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestParams(t *testing.T) {
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, slices.Collect(Params(0.25, true)))
	diff(t, []float64{0, 0.25, 0.5, 0.75}, slices.Collect(Params(0.25, false)))
	diff(t, []float64{0, 1}, slices.Collect(Params(1, true)))
	diff(t, []float64{0}, slices.Collect(Params(1, false)))

	if n := len(slices.Collect(Params(0.1, true))); n != 11 {
		t.Errorf("got %d parameters, want 11", n)
	}
	if n := len(slices.Collect(Params(0.1, false))); n != 10 {
		t.Errorf("got %d parameters, want 10", n)
	}
	// 1 isn't a multiple of 0.3.
	if n := len(slices.Collect(Params(0.3, true))); n != 4 {
		t.Errorf("got %d parameters, want 4", n)
	}
	// Invalid steps fall back to DefaultStep.
	diff(t, slices.Collect(Params(DefaultStep, true)), slices.Collect(Params(-1, true)))

	var got []float64
	for u := range Params(0.25, true) {
		if u > 0.3 {
			break
		}
		got = append(got, u)
	}
	diff(t, []float64{0, 0.25}, got)
}

func TestBSplineSample(t *testing.T) {
	b := mustBSpline(t, quadPoints(), 2, WithKnots(ClampedKnots(3, 2)))
	pl, err := b.Sample(0.5)
	if err != nil {
		t.Fatal(err)
	}
	// Sampling stops short of t=1.
	diff(t, Polyline{C(0, 0), C(1, 1)}, pl, coordComparer)

	pl, err = b.Sample(0.01)
	if err != nil {
		t.Fatal(err)
	}
	if pl.IsNaN() {
		t.Errorf("sampled curve contains NaN")
	}
}

func TestBSplineSampleConcurrent(t *testing.T) {
	ps := PointsOf(Pt(0, 0), Pt(1, 3), Pt(4, 4), Pt(6, -1), Pt(7, 2), Pt(9, 9))
	b := mustBSpline(t, ps, 3, WithWeights([]float64{1, 2, 0.5, 1, 3, 1}))
	want, err := b.Sample(0.01)
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{0, 1, 4} {
		got, err := b.SampleConcurrent(context.Background(), 0.01, workers)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, got)
	}
}

func TestBSplineSampleConcurrentCanceled(t *testing.T) {
	b := mustBSpline(t, quadPoints(), 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := b.SampleConcurrent(ctx, 0.1, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want %v", err, context.Canceled)
	}
}

func TestBSplineSampleConcurrentError(t *testing.T) {
	b := mustBSpline(t, quadPoints(), 2, WithWeights([]float64{0, 0, 0}))
	if _, err := b.SampleConcurrent(context.Background(), 0.1, 2); !errors.Is(err, ErrDegenerateWeight) {
		t.Errorf("got error %v, want %v", err, ErrDegenerateWeight)
	}
	if _, err := b.Sample(0.1); !errors.Is(err, ErrDegenerateWeight) {
		t.Errorf("got error %v, want %v", err, ErrDegenerateWeight)
	}
}

func TestPolyline(t *testing.T) {
	pl := Polyline{C(0, 0), C(3, 4), C(3, 5)}
	if l := pl.Length(); l != 6 {
		t.Errorf("got length %g, want 6", l)
	}
	diff(t, []Point{Pt(0, 0), Pt(3, 4), Pt(3, 5)}, pl.Points())
	diff(t, []Line{{Pt(0, 0), Pt(3, 4)}, {Pt(3, 4), Pt(3, 5)}}, slices.Collect(pl.Lines()))

	lo, hi := pl.Bounds()
	diff(t, C(0, 0), lo)
	diff(t, C(3, 5), hi)

	lo, hi = Polyline(nil).Bounds()
	if lo != nil || hi != nil {
		t.Errorf("got bounds %v, %v for empty polyline", lo, hi)
	}
	if n := len(slices.Collect(Polyline{C(1, 1)}.Lines())); n != 0 {
		t.Errorf("got %d lines for a single point", n)
	}
}
