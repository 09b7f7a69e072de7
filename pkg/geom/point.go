// pkg/geom/point.go
package geom

import "math"

// Point is a 2D position or vector in surface pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// AngleTo returns the angle of the vector p->q, as atan2(dy, dx).
func (p Point) AngleTo(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// FromAngle returns the vector of the given length pointing at angle.
func FromAngle(angle, length float64) Point {
	return Point{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Sanitize maps NaN and infinities to 0. Pointer input may be unset.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// SanitizePoint applies Sanitize to both coordinates.
func SanitizePoint(p Point) Point {
	return Point{X: Sanitize(p.X), Y: Sanitize(p.Y)}
}
