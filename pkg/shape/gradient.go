// pkg/shape/gradient.go
package shape

import (
	"fmt"
	"image/color"
	"math"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/render"
)

// LinearGradientRect fills a rectangle with a linear gradient running
// through its centre at Angle (0 = left to right).
type LinearGradientRect struct {
	Rect  geom.Rect
	Angle float64
	Stops []render.ColorStop
	// Stroke optionally outlines the rectangle.
	Stroke    render.Paint
	LineWidth float64
}

// NewLinearGradientRect builds a gradient rectangle from at least one stop.
func NewLinearGradientRect(r geom.Rect, angle float64, stops ...render.ColorStop) (*LinearGradientRect, error) {
	if r.W <= 0 || r.H <= 0 {
		return nil, fmt.Errorf("%w: gradient rect %vx%v", ErrInvalidSize, r.W, r.H)
	}
	if len(stops) == 0 {
		return nil, fmt.Errorf("%w: gradient without color stops", ErrDegenerate)
	}
	return &LinearGradientRect{Rect: r, Angle: angle, Stops: stops}, nil
}

// Gradient returns the paint covering the rectangle edge to edge along Angle.
func (g *LinearGradientRect) Gradient() *render.LinearGradient {
	c := g.Rect.Center()
	dir := geom.FromAngle(g.Angle, 1)
	// Полудлина проекции прямоугольника на направление градиента
	half := (math.Abs(dir.X)*g.Rect.W + math.Abs(dir.Y)*g.Rect.H) / 2
	a := c.Sub(dir.Scale(half))
	b := c.Add(dir.Scale(half))
	lg := render.NewLinearGradient(a.X, a.Y, b.X, b.Y)
	for _, st := range g.Stops {
		lg.AddColorStop(st.Offset, st.Color)
	}
	return lg
}

func (g *LinearGradientRect) Draw(s render.Surface) {
	r := g.Rect
	s.Save()
	s.BeginPath()
	s.Rect(r.X, r.Y, r.W, r.H)
	st := Style{Fill: g.Gradient(), Stroke: g.Stroke, LineWidth: g.LineWidth}
	st.paint(s, false)
	s.Restore()
}

// RadialGradientCircle is a movable circle filled with a radial
// gradient from its centre (offset 0) to its rim (offset 1).
type RadialGradientCircle struct {
	Mover
	Stops []render.ColorStop
	// Focus shifts the inner circle of the gradient relative to the centre.
	Focus geom.Point
}

// NewRadialGradientCircle builds a radial gradient disc.
func NewRadialGradientCircle(center geom.Point, radius float64, stops ...render.ColorStop) (*RadialGradientCircle, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("%w: gradient radius %v", ErrInvalidSize, radius)
	}
	if len(stops) == 0 {
		return nil, fmt.Errorf("%w: gradient without color stops", ErrDegenerate)
	}
	return &RadialGradientCircle{
		Mover: Mover{Body: newBody(center.X, center.Y, radius, nil)},
		Stops: stops,
	}, nil
}

// Gradient returns the paint for the current position and radius.
func (g *RadialGradientCircle) Gradient() *render.RadialGradient {
	c := g.Body.Pos
	f := c.Add(g.Focus)
	rg := render.NewRadialGradient(f.X, f.Y, 0, c.X, c.Y, g.Body.Radius)
	for _, st := range g.Stops {
		rg.AddColorStop(st.Offset, st.Color)
	}
	return rg
}

func (g *RadialGradientCircle) Draw(s render.Surface) {
	if g.Body.Radius <= 0 {
		return
	}
	c := g.Body.Pos
	s.Save()
	s.BeginPath()
	s.Arc(c.X, c.Y, g.Body.Radius, 0, 2*math.Pi)
	s.ClosePath()
	s.SetFill(g.Gradient())
	s.Fill()
	s.Restore()
}

// RadialGradientRect fills a rectangle with a radial gradient from its
// centre (offset 0) out to half its longer side (offset 1).
type RadialGradientRect struct {
	Rect   geom.Rect
	Stops  []render.ColorStop
	Shadow render.Shadow
}

// NewRadialGradientRect builds the rectangle; without stops it fades
// from white to black.
func NewRadialGradientRect(r geom.Rect, stops ...render.ColorStop) (*RadialGradientRect, error) {
	if r.W <= 0 || r.H <= 0 {
		return nil, fmt.Errorf("%w: gradient rect %vx%v", ErrInvalidSize, r.W, r.H)
	}
	if len(stops) == 0 {
		stops = []render.ColorStop{{Offset: 0, Color: color.White}, {Offset: 1, Color: color.Black}}
	}
	return &RadialGradientRect{Rect: r, Stops: stops}, nil
}

// NewCenterGradientRect is a two-stop RadialGradientRect, inner at the
// centre and outer at the edges.
func NewCenterGradientRect(r geom.Rect, inner, outer color.Color) (*RadialGradientRect, error) {
	return NewRadialGradientRect(r,
		render.ColorStop{Offset: 0, Color: inner},
		render.ColorStop{Offset: 1, Color: outer})
}

// Gradient returns the paint for the current rectangle.
func (g *RadialGradientRect) Gradient() *render.RadialGradient {
	c := g.Rect.Center()
	rg := render.NewRadialGradient(c.X, c.Y, 0, c.X, c.Y, math.Max(g.Rect.W, g.Rect.H)/2)
	for _, st := range g.Stops {
		rg.AddColorStop(st.Offset, st.Color)
	}
	return rg
}

func (g *RadialGradientRect) Draw(s render.Surface) {
	r := g.Rect
	s.Save()
	s.BeginPath()
	s.Rect(r.X, r.Y, r.W, r.H)
	st := Style{Fill: g.Gradient(), Shadow: g.Shadow}
	st.paint(s, false)
	s.Restore()
}
