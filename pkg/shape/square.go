// pkg/shape/square.go
package shape

import (
	"fmt"
	"math"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/render"
)

// SquareOptions configures a Square.
type SquareOptions struct {
	// X, Y is the centre.
	X, Y float64
	// Side defaults to 20.
	Side     float64
	Rotation float64
	Style    Style
	Velocity *geom.Point
}

// Square is an axis-aligned or rotated square. Body.Radius holds half
// the side, so wall bounces keep the edges inside the container.
type Square struct {
	Mover
	Look
	Rotation float64
}

// NewSquare builds a square.
func NewSquare(opts SquareOptions) (*Square, error) {
	if opts.Side < 0 {
		return nil, fmt.Errorf("%w: square side %v", ErrInvalidSize, opts.Side)
	}
	if opts.Side == 0 {
		opts.Side = 20
	}
	return &Square{
		Mover:    Mover{Body: newBody(opts.X, opts.Y, opts.Side/2, opts.Velocity)},
		Look:     Look{Style: opts.Style},
		Rotation: opts.Rotation,
	}, nil
}

// Side returns the side length.
func (q *Square) Side() float64 { return q.Body.Radius * 2 }

// Corners returns the four corners starting top-left, clockwise.
func (q *Square) Corners() []geom.Point {
	h := q.Body.Radius
	c := q.Body.Pos
	sin, cos := math.Sincos(q.Rotation)
	local := []geom.Point{{X: -h, Y: -h}, {X: h, Y: -h}, {X: h, Y: h}, {X: -h, Y: h}}
	pts := make([]geom.Point, len(local))
	for i, l := range local {
		pts[i] = geom.Pt(c.X+l.X*cos-l.Y*sin, c.Y+l.X*sin+l.Y*cos)
	}
	return pts
}

// Rotate turns the square by da radians around its centre.
func (q *Square) Rotate(da float64) { q.Rotation = math.Mod(q.Rotation+da, 2*math.Pi) }

func (q *Square) Draw(s render.Surface) {
	if q.Body.Radius <= 0 {
		return
	}
	s.Save()
	s.BeginPath()
	if q.Rotation == 0 {
		h := q.Body.Radius
		s.Rect(q.Body.Pos.X-h, q.Body.Pos.Y-h, 2*h, 2*h)
	} else {
		tracePoints(s, q.Corners())
	}
	q.paint(s)
	s.Restore()
}
