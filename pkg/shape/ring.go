// pkg/shape/ring.go
package shape

import (
	"fmt"
	"math"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/render"
)

// RingOptions configures a Ring.
type RingOptions struct {
	X, Y float64
	// Radius is the outer radius, default 20.
	Radius float64
	// Thickness is the band width, default Radius/4. Must be below Radius.
	Thickness float64
	Style     Style
	Velocity  *geom.Point
}

// Ring is an annulus: the band between two concentric circles. The fill
// paints the band, the stroke outlines both edges.
type Ring struct {
	Mover
	Look
	Thickness float64
}

// NewRing builds a ring.
func NewRing(opts RingOptions) (*Ring, error) {
	if opts.Radius < 0 || opts.Thickness < 0 {
		return nil, fmt.Errorf("%w: ring radius %v thickness %v", ErrInvalidSize, opts.Radius, opts.Thickness)
	}
	if opts.Radius == 0 {
		opts.Radius = 20
	}
	if opts.Thickness == 0 {
		opts.Thickness = opts.Radius / 4
	}
	if opts.Thickness >= opts.Radius {
		return nil, fmt.Errorf("%w: ring thickness %v not below radius %v", ErrInvalidSize, opts.Thickness, opts.Radius)
	}
	return &Ring{
		Mover:     Mover{Body: newBody(opts.X, opts.Y, opts.Radius, opts.Velocity)},
		Look:      Look{Style: opts.Style},
		Thickness: opts.Thickness,
	}, nil
}

// InnerRadius is the radius of the hole. The band keeps its thickness
// when the ring is resized.
func (r *Ring) InnerRadius() float64 {
	return math.Max(r.Body.Radius-r.Thickness, 0)
}

func (r *Ring) Draw(s render.Surface) {
	outer := r.Body.Radius
	if outer <= 0 {
		return
	}
	p := r.Body.Pos
	inner := r.InnerRadius()
	s.Save()
	s.BeginPath()
	s.Arc(p.X, p.Y, outer, 0, 2*math.Pi)
	s.ClosePath()
	if inner > 0 {
		// Внутренний круг в обратную сторону: nonzero оставляет дырку
		s.MoveTo(p.X+inner, p.Y)
		s.Arc(p.X, p.Y, inner, 2*math.Pi, 0)
		s.ClosePath()
	}
	r.paint(s)
	s.Restore()
}
