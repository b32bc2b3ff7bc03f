package spline

import (
	"slices"
)

// KnotVector is a non-decreasing sequence of knots that partitions the
// parameter domain of a B-spline into spans. A B-spline of degree p with n
// control points needs exactly n+p+1 knots.
type KnotVector []float64

// UniformKnots returns the knot vector 0, 1, …, n+degree. The vector is
// neither periodic nor clamped, so the resulting curve doesn't pass through
// its first and last control points.
func UniformKnots(n, degree int) KnotVector {
	k := make(KnotVector, n+degree+1)
	for i := range k {
		k[i] = float64(i)
	}
	return k
}

// ClampedKnots returns an open uniform knot vector on [0, 1] for n control
// points: degree+1 zeros, evenly spaced interior knots, and degree+1 ones. A
// curve using it starts at its first and ends at its last control point.
func ClampedKnots(n, degree int) KnotVector {
	k := make(KnotVector, n+degree+1)
	// Number of spans in the domain.
	spans := n - degree
	for i := range k {
		switch {
		case i <= degree:
			k[i] = 0
		case i >= n:
			k[i] = 1
		default:
			k[i] = float64(i-degree) / float64(spans)
		}
	}
	return k
}

// ResolveKnots returns the knot vector to use for n control points and the
// given degree. A nil knots produces [UniformKnots]; any other value,
// including an empty vector, must pass [KnotVector.Validate].
func ResolveKnots(knots KnotVector, n, degree int) (KnotVector, error) {
	if knots == nil {
		return UniformKnots(n, degree), nil
	}
	if err := knots.Validate(n, degree); err != nil {
		return nil, err
	}
	return knots.Clone(), nil
}

// Validate checks that k has length n+degree+1 and is non-decreasing. It
// returns a [*KnotVectorError] otherwise.
func (k KnotVector) Validate(n, degree int) error {
	if want := n + degree + 1; len(k) != want {
		return &KnotVectorError{Len: len(k), Want: want, Index: -1}
	}
	for i := 1; i < len(k); i++ {
		// This also rejects NaN.
		if !(k[i] >= k[i-1]) {
			return &KnotVectorError{Len: len(k), Want: len(k), Index: i}
		}
	}
	return nil
}

// Clone returns a copy of the knot vector.
func (k KnotVector) Clone() KnotVector {
	return slices.Clone(k)
}

// DomainIndices returns the indices of the knots that bound the valid
// parameter domain of a curve of the given degree.
func (k KnotVector) DomainIndices(degree int) (int, int) {
	return degree, len(k) - 1 - degree
}

// Domain returns the valid parameter range [low, high] of a curve of the
// given degree.
func (k KnotVector) Domain(degree int) (low, high float64) {
	lo, hi := k.DomainIndices(degree)
	return k[lo], k[hi]
}

// Span returns the index s of the knot span [k[s], k[s+1]] containing t.
// Spans are scanned from the low end of the domain and the first non-empty
// match wins, so a t that falls on an interior knot belongs to the span
// ending there.
//
// t must lie within [KnotVector.Domain]. If the domain is a single point,
// Span returns its low index.
func (k KnotVector) Span(degree int, t float64) int {
	lo, hi := k.DomainIndices(degree)
	last := lo
	for s := lo; s < hi; s++ {
		if k[s] == k[s+1] {
			continue
		}
		if t >= k[s] && t <= k[s+1] {
			return s
		}
		last = s
	}
	return last
}

// Multiplicity returns the number of knots equal to u.
func (k KnotVector) Multiplicity(u float64) int {
	var n int
	for _, v := range k {
		if v == u {
			n++
		}
	}
	return n
}
