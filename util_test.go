package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertCoordNear(t *testing.T, got Coord, want Coord, epsilon float64) {
	t.Helper()
	if len(got) != len(want) || got.Distance(want) > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

var coordComparer = cmp.Comparer(func(c1, c2 Coord) bool {
	return len(c1) == len(c2) && c1.Distance(c2) <= 1e-12
})
