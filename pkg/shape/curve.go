// pkg/shape/curve.go
package shape

import (
	"math"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/render"
)

// Bezier is a stroked cubic Bézier curve.
type Bezier struct {
	Look
	Start, Control1, Control2, End geom.Point
}

// NewBezier builds a cubic curve. A style without a stroke gets a
// 1px black one, since an open curve has nothing to fill.
func NewBezier(start, c1, c2, end geom.Point, style Style) *Bezier {
	return &Bezier{Look: Look{Style: curveStyle(style)}, Start: start, Control1: c1, Control2: c2, End: end}
}

// At evaluates the curve at t in [0, 1].
func (b *Bezier) At(t float64) geom.Point {
	u := 1 - t
	return b.Start.Scale(u * u * u).
		Add(b.Control1.Scale(3 * u * u * t)).
		Add(b.Control2.Scale(3 * u * t * t)).
		Add(b.End.Scale(t * t * t))
}

func (b *Bezier) Draw(s render.Surface) {
	s.Save()
	s.BeginPath()
	s.MoveTo(b.Start.X, b.Start.Y)
	s.CubicTo(b.Control1.X, b.Control1.Y, b.Control2.X, b.Control2.Y, b.End.X, b.End.Y)
	b.paint(s)
	s.Restore()
}

// QuadraticBezier is a stroked quadratic Bézier curve.
type QuadraticBezier struct {
	Look
	Start, Control, End geom.Point
}

// NewQuadraticBezier builds a quadratic curve; see NewBezier for style defaults.
func NewQuadraticBezier(start, control, end geom.Point, style Style) *QuadraticBezier {
	return &QuadraticBezier{Look: Look{Style: curveStyle(style)}, Start: start, Control: control, End: end}
}

// At evaluates the curve at t in [0, 1].
func (q *QuadraticBezier) At(t float64) geom.Point {
	u := 1 - t
	return q.Start.Scale(u * u).Add(q.Control.Scale(2 * u * t)).Add(q.End.Scale(t * t))
}

func (q *QuadraticBezier) Draw(s render.Surface) {
	s.Save()
	s.BeginPath()
	s.MoveTo(q.Start.X, q.Start.Y)
	s.QuadraticTo(q.Control.X, q.Control.Y, q.End.X, q.End.Y)
	q.paint(s)
	s.Restore()
}

// Sway moves the control point of q along a circle of radius amp,
// giving the curve a rope-like wobble driven by phase.
func (q *QuadraticBezier) Sway(anchor geom.Point, amp, phase float64) {
	q.Control = anchor.Add(geom.Pt(math.Cos(phase)*amp, math.Sin(phase)*amp))
}

func curveStyle(st Style) Style {
	if st.Stroke == nil {
		st.Stroke = render.SolidColor(defaultInk)
	}
	return st
}
