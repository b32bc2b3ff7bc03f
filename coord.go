package spline

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Coord is a point of arbitrary dimension. Axis i of the coordinate is
// Coord[i]; the dimension is len(Coord).
//
// Coordinates are treated as immutable. Functions in this package never
// modify coordinates passed to them and always return fresh ones.
type Coord []float64

// C returns a coordinate with the given components.
func C(xs ...float64) Coord {
	return Coord(slices.Clone(xs))
}

// Dim returns the number of axes of the coordinate.
func (c Coord) Dim() int { return len(c) }

// Clone returns a copy of the coordinate.
func (c Coord) Clone() Coord {
	return slices.Clone(c)
}

// Point returns the first two axes of c as a [Point]. It panics if c has fewer
// than two axes.
func (c Coord) Point() Point {
	return Point{X: c[0], Y: c[1]}
}

// Distance returns the euclidean distance between c and o, which must have
// the same dimension.
func (c Coord) Distance(o Coord) float64 {
	if len(c) != len(o) {
		panic(fmt.Sprintf("dimension mismatch: %d != %d", len(c), len(o)))
	}
	var sum float64
	for i := range c {
		d := c[i] - o[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// IsNaN reports whether any component of c is NaN.
func (c Coord) IsNaN() bool {
	return slices.ContainsFunc(c, math.IsNaN)
}

func (c Coord) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, v := range c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}
