// pkg/shape/circle.go
package shape

import (
	"fmt"
	"math"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
)

// CircleOptions configures a Circle. Zero values take the defaults noted.
type CircleOptions struct {
	X, Y float64
	// Radius defaults to 10.
	Radius float64
	// StartAngle and EndAngle draw a sector; both zero draws the full circle.
	StartAngle, EndAngle float64
	Style                Style
	// Velocity is left unset when nil and seeded on the first bounce.
	Velocity *geom.Point
}

// Circle is a filled and/or stroked circle or circular sector.
type Circle struct {
	Mover
	Look
	StartAngle, EndAngle float64
}

// NewCircle builds a circle.
func NewCircle(opts CircleOptions) (*Circle, error) {
	if opts.Radius < 0 {
		return nil, fmt.Errorf("%w: circle radius %v", ErrInvalidSize, opts.Radius)
	}
	if opts.Radius == 0 {
		opts.Radius = 10
	}
	if opts.StartAngle == 0 && opts.EndAngle == 0 {
		opts.EndAngle = 2 * math.Pi
	}
	c := &Circle{
		Mover:      Mover{Body: newBody(opts.X, opts.Y, opts.Radius, opts.Velocity)},
		Look:       Look{Style: opts.Style},
		StartAngle: opts.StartAngle,
		EndAngle:   opts.EndAngle,
	}
	return c, nil
}

func newBody(x, y, r float64, vel *geom.Point) motion.Body {
	b := motion.Body{Pos: geom.Pt(x, y), Radius: r}
	if vel != nil {
		b = b.WithVelocity(*vel)
	}
	return b
}

// Radius returns the current radius.
func (c *Circle) Radius() float64 { return c.Body.Radius }

// full reports whether the arc spans a whole turn.
func (c *Circle) full() bool {
	return math.Abs(c.EndAngle-c.StartAngle) >= 2*math.Pi
}

func (c *Circle) Draw(s render.Surface) {
	if c.Body.Radius <= 0 {
		return
	}
	p := c.Body.Pos
	s.Save()
	s.BeginPath()
	if !c.full() {
		s.MoveTo(p.X, p.Y)
	}
	s.Arc(p.X, p.Y, c.Body.Radius, c.StartAngle, c.EndAngle)
	s.ClosePath()
	c.paint(s)
	s.Restore()
}
