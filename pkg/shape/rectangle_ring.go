// pkg/shape/rectangle_ring.go
package shape

import (
	"fmt"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/render"
)

// RectangleRing is a rectangular frame: the band between an outer
// rectangle and the same rectangle inset by Thickness.
type RectangleRing struct {
	Look
	Rect      geom.Rect
	Thickness float64
}

// NewRectangleRing builds a frame; the thickness must leave a hole.
func NewRectangleRing(r geom.Rect, thickness float64, style Style) (*RectangleRing, error) {
	if r.W <= 0 || r.H <= 0 || thickness <= 0 {
		return nil, fmt.Errorf("%w: rect %vx%v thickness %v", ErrInvalidSize, r.W, r.H, thickness)
	}
	if 2*thickness >= r.W || 2*thickness >= r.H {
		return nil, fmt.Errorf("%w: thickness %v closes the frame", ErrInvalidSize, thickness)
	}
	return &RectangleRing{Look: Look{Style: style}, Rect: r, Thickness: thickness}, nil
}

// Inner returns the hole rectangle.
func (f *RectangleRing) Inner() geom.Rect {
	return f.Rect.Inset(f.Thickness)
}

func (f *RectangleRing) Draw(s render.Surface) {
	o, in := f.Rect, f.Inner()
	s.Save()
	s.BeginPath()
	s.Rect(o.X, o.Y, o.W, o.H)
	// Внутренний контур против часовой стрелки
	s.MoveTo(in.X, in.Y)
	s.LineTo(in.X, in.Y+in.H)
	s.LineTo(in.X+in.W, in.Y+in.H)
	s.LineTo(in.X+in.W, in.Y)
	s.ClosePath()
	f.paint(s)
	s.Restore()
}
