package spline

import (
	"fmt"
	"iter"
)

// PointSet is an ordered, append-only sequence of control points that all
// share the same dimension. The zero value is an empty set whose dimension is
// fixed by the first appended point.
//
// A PointSet must not be appended to while it is being read from another
// goroutine. Evaluators take a [PointSet.Snapshot] of their input, so
// appending to a set never affects results that were already computed.
type PointSet struct {
	coords []Coord
	dim    int
}

// NewPointSet returns a point set seeded with points.
func NewPointSet(points ...Coord) (*PointSet, error) {
	ps := new(PointSet)
	if err := ps.Append(points...); err != nil {
		return nil, err
	}
	return ps, nil
}

// PointsOf returns a point set containing the 2D points pts.
func PointsOf(pts ...Point) *PointSet {
	ps := &PointSet{coords: make([]Coord, 0, len(pts)), dim: 2}
	for _, pt := range pts {
		ps.coords = append(ps.coords, pt.Coord())
	}
	if len(pts) == 0 {
		ps.dim = 0
	}
	return ps
}

// Append appends points to the set. Either all points are appended or, if
// any of them is of the wrong dimension, none are and a [*PointSetError] is
// returned.
func (ps *PointSet) Append(points ...Coord) error {
	dim := ps.dim
	for i, c := range points {
		if len(c) == 0 {
			return &PointSetError{Index: len(ps.coords) + i, Dim: 0, Want: dim}
		}
		if dim == 0 {
			dim = len(c)
		}
		if len(c) != dim {
			return &PointSetError{Index: len(ps.coords) + i, Dim: len(c), Want: dim}
		}
	}
	for _, c := range points {
		ps.coords = append(ps.coords, c.Clone())
	}
	ps.dim = dim
	return nil
}

// AppendPoint appends 2D points to the set.
func (ps *PointSet) AppendPoint(pts ...Point) error {
	coords := make([]Coord, len(pts))
	for i, pt := range pts {
		coords[i] = pt.Coord()
	}
	return ps.Append(coords...)
}

// Len returns the number of points in the set.
func (ps *PointSet) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.coords)
}

// Dim returns the dimension of the points, or 0 for an empty set.
func (ps *PointSet) Dim() int {
	if ps == nil {
		return 0
	}
	return ps.dim
}

// At returns a copy of the i-th point.
func (ps *PointSet) At(i int) Coord {
	return ps.coords[i].Clone()
}

// All returns an iterator over the indices and points of the set. The yielded
// coordinates must not be modified.
func (ps *PointSet) All() iter.Seq2[int, Coord] {
	return func(yield func(int, Coord) bool) {
		for i, c := range ps.coords {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Points returns the set as 2D points. It panics if the set's dimension is
// less than two.
func (ps *PointSet) Points() []Point {
	out := make([]Point, len(ps.coords))
	for i, c := range ps.coords {
		out[i] = c.Point()
	}
	return out
}

// Snapshot returns a view of the set as it is now. Later appends to ps are not
// visible in the snapshot, and appending to the snapshot doesn't affect ps.
func (ps *PointSet) Snapshot() *PointSet {
	if ps == nil {
		return new(PointSet)
	}
	// Coordinates are never modified after insertion, so sharing them is
	// fine. The capped slice forces appends on either side to reallocate.
	n := len(ps.coords)
	return &PointSet{coords: ps.coords[:n:n], dim: ps.dim}
}

// validate reports an error if the set is empty.
func (ps *PointSet) validate() error {
	if ps.Len() == 0 {
		return fmt.Errorf("%w: no points", ErrMalformedPointSet)
	}
	return nil
}
