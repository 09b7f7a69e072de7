// pkg/shape/style.go
package shape

import (
	"image/color"

	"go-canvas-shapes/pkg/render"
)

// Style is the paint state of a shape. A nil Fill or Stroke skips that pass.
type Style struct {
	Fill      render.Paint
	Stroke    render.Paint
	LineWidth float64
	Shadow    render.Shadow
	// Highlight replaces Fill while the shape is highlighted.
	Highlight render.Paint
}

// Filled is a Style with a solid fill and nothing else.
func Filled(c color.Color) Style {
	return Style{Fill: render.SolidColor(c)}
}

// Outlined is a Style with a solid stroke of width w.
func Outlined(c color.Color, w float64) Style {
	return Style{Stroke: render.SolidColor(c), LineWidth: w}
}

// WithStroke returns a copy of st with a solid stroke added.
func (st Style) WithStroke(c color.Color, w float64) Style {
	st.Stroke = render.SolidColor(c)
	st.LineWidth = w
	return st
}

// WithShadow returns a copy of st with sh as its shadow.
func (st Style) WithShadow(sh render.Shadow) Style {
	st.Shadow = sh
	return st
}

// WithHighlight returns a copy of st that switches to c when highlighted.
func (st Style) WithHighlight(c color.Color) Style {
	st.Highlight = render.SolidColor(c)
	return st
}

// linesOnly drops the fill, for shapes made only of open lines.
func (st Style) linesOnly() Style {
	st.Fill = nil
	st.Highlight = nil
	return st
}

func (st Style) lineWidth() float64 {
	if st.LineWidth <= 0 {
		return 1
	}
	return st.LineWidth
}

// paint fills and strokes the current path.
func (st Style) paint(s render.Surface, highlighted bool) {
	s.SetShadow(st.Shadow)
	if fill := st.fillPaint(highlighted); fill != nil {
		s.SetFill(fill)
		s.Fill()
	}
	if st.Stroke != nil {
		// Тень только у заливки, иначе обводка удваивает её
		if st.fillPaint(highlighted) != nil {
			s.SetShadow(render.Shadow{})
		}
		s.SetStroke(st.Stroke)
		s.SetLineWidth(st.lineWidth())
		s.Stroke()
	}
}

func (st Style) fillPaint(highlighted bool) render.Paint {
	if highlighted && st.Highlight != nil {
		return st.Highlight
	}
	return st.Fill
}

// Look couples a Style with the highlight flag toggled by pointer proximity.
type Look struct {
	Style       Style
	highlighted bool
}

// Highlight implements Highlighter.
func (l *Look) Highlight(on bool) { l.highlighted = on }

// Highlighted reports the current highlight state.
func (l *Look) Highlighted() bool { return l.highlighted }

func (l *Look) paint(s render.Surface) {
	l.Style.paint(s, l.highlighted)
}
