// pkg/shape/triangle.go
package shape

import (
	"fmt"
	"math"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/render"
)

// Triangle is defined by three points. Moving it translates all three.
type Triangle struct {
	Look
	A, B, C geom.Point
}

// NewTriangle builds a triangle; collinear points fail with ErrDegenerate.
func NewTriangle(a, b, c geom.Point, style Style) (*Triangle, error) {
	if math.Abs(signedArea([]geom.Point{a, b, c})) < 1e-9 {
		return nil, fmt.Errorf("%w: collinear triangle", ErrDegenerate)
	}
	return &Triangle{Look: Look{Style: style}, A: a, B: b, C: c}, nil
}

// NewEquilateral builds an equilateral triangle centred on c, pointing up.
func NewEquilateral(c geom.Point, side float64, style Style) (*Triangle, error) {
	if side <= 0 {
		return nil, fmt.Errorf("%w: triangle side %v", ErrInvalidSize, side)
	}
	pts := regularVertices(c, side/math.Sqrt(3), 3, 0)
	return NewTriangle(pts[0], pts[1], pts[2], style)
}

// Centroid returns the mean of the three points.
func (t *Triangle) Centroid() geom.Point {
	return t.A.Add(t.B).Add(t.C).Scale(1.0 / 3)
}

// Translate moves all three points by d.
func (t *Triangle) Translate(d geom.Point) {
	t.A, t.B, t.C = t.A.Add(d), t.B.Add(d), t.C.Add(d)
}

func (t *Triangle) Draw(s render.Surface) {
	s.Save()
	s.BeginPath()
	tracePoints(s, []geom.Point{t.A, t.B, t.C})
	t.paint(s)
	s.Restore()
}

// signedArea is the shoelace area, positive for clockwise-on-screen order.
func signedArea(pts []geom.Point) float64 {
	var sum float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
