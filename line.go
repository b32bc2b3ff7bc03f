package spline

// Line is a 2D line segment between two consecutive points of a sampled
// curve.
type Line struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

// Collinear reports whether pt lies on the infinite line through l, within
// the absolute tolerance eps on the cross product.
func (l Line) Collinear(pt Point, eps float64) bool {
	d := l.P1.Sub(l.P0)
	c := d.Cross(pt.Sub(l.P0))
	return c <= eps && c >= -eps
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }
