package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDegree is returned when a B-spline degree is less than 1 or
	// greater than the number of control points minus one.
	ErrInvalidDegree = errors.New("invalid degree")

	// ErrInvalidKnotVector is returned when a knot vector has the wrong
	// length or is not non-decreasing.
	ErrInvalidKnotVector = errors.New("invalid knot vector")

	// ErrOutOfDomain is returned when a parameter maps outside of the
	// curve's knot domain.
	ErrOutOfDomain = errors.New("parameter out of domain")

	// ErrDegenerateWeight is returned when projecting a homogeneous point
	// whose weight is zero.
	ErrDegenerateWeight = errors.New("degenerate weight")

	// ErrMalformedPointSet is returned for empty point sets and for points of
	// inconsistent or zero dimension.
	ErrMalformedPointSet = errors.New("malformed point set")

	// ErrInvalidWeights is returned when the number of weights doesn't match
	// the number of control points, or when a weight isn't finite.
	ErrInvalidWeights = errors.New("invalid weights")

	// ErrCombinatorialRange is returned by Bézier evaluation when the number
	// of control points exceeds what the Bernstein coefficients can represent
	// in a float64. See [MaxFactorial].
	ErrCombinatorialRange = errors.New("too many control points for Bernstein basis")
)

// DegreeError describes a degree that isn't valid for the number of control
// points it is used with. It unwraps to [ErrInvalidDegree].
type DegreeError struct {
	Degree int
	Points int
}

func (e *DegreeError) Error() string {
	if e.Degree < 1 {
		return fmt.Sprintf("degree must be at least 1, got %d", e.Degree)
	}
	return fmt.Sprintf("degree must be less than or equal to point count - 1, got degree %d for %d points", e.Degree, e.Points)
}

func (e *DegreeError) Unwrap() error { return ErrInvalidDegree }

// KnotVectorError describes a malformed knot vector. It unwraps to
// [ErrInvalidKnotVector].
//
// If Index is non-negative, the vector has the right length but decreases at
// Index.
type KnotVectorError struct {
	Len   int
	Want  int
	Index int
}

func (e *KnotVectorError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("bad knot vector: knot %d is smaller than its predecessor", e.Index)
	}
	return fmt.Sprintf("bad knot vector length: expected %d, got %d", e.Want, e.Len)
}

func (e *KnotVectorError) Unwrap() error { return ErrInvalidKnotVector }

// DomainError describes a parameter that, after remapping, lies outside of
// [Low, High]. It unwraps to [ErrOutOfDomain].
type DomainError struct {
	// T is the remapped parameter.
	T    float64
	Low  float64
	High float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("out of bounds: %g not in [%g, %g]", e.T, e.Low, e.High)
}

func (e *DomainError) Unwrap() error { return ErrOutOfDomain }

// PointSetError describes a control point whose dimension doesn't match that
// of the point set. It unwraps to [ErrMalformedPointSet].
type PointSetError struct {
	Index int
	Dim   int
	Want  int
}

func (e *PointSetError) Error() string {
	if e.Dim == 0 {
		return fmt.Sprintf("point %d has no coordinates", e.Index)
	}
	return fmt.Sprintf("point %d has dimension %d, want %d", e.Index, e.Dim, e.Want)
}

func (e *PointSetError) Unwrap() error { return ErrMalformedPointSet }
