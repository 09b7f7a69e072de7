// pkg/shape/text3d.go
package shape

import (
	"image/color"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/render"
)

const (
	defaultText3DSize  = 40
	defaultText3DDepth = 5
)

// Text3DOptions — параметры объёмного текста
type Text3DOptions struct {
	TextOptions
	// Depth is the number of layers under the front text, default 5.
	Depth int
	// Offset shifts each layer from the previous one; nil means (1, 1).
	Offset *geom.Point
	// DepthColor paints the layers, default black.
	DepthColor color.Color
}

// Text3D — надпись с «глубиной»: Depth копий в DepthColor, каждая
// сдвинута на Offset, а поверх лицевой текст
type Text3D struct {
	Text
	Depth      int
	Offset     geom.Point
	DepthColor render.Paint
}

// NewText3D builds a layered text. Unlike Text the front face defaults
// to white at 40px, anchored at its top-left corner.
func NewText3D(opts Text3DOptions) *Text3D {
	to := opts.TextOptions
	if to.Size <= 0 {
		to.Size = defaultText3DSize
	}
	if to.Style.Fill == nil && to.Style.Stroke == nil {
		to.Style.Fill = render.SolidColor(color.White)
	}
	if to.Align == (render.TextAlign{}) {
		to.Align = render.TextAlign{Vertical: render.BaselineTop}
	}
	depth := opts.Depth
	if depth <= 0 {
		depth = defaultText3DDepth
	}
	offset := geom.Pt(1, 1)
	if opts.Offset != nil {
		offset = *opts.Offset
	}
	var dc color.Color = color.Black
	if opts.DepthColor != nil {
		dc = opts.DepthColor
	}
	return &Text3D{
		Text:       *NewText(to),
		Depth:      depth,
		Offset:     offset,
		DepthColor: render.SolidColor(dc),
	}
}

func (t *Text3D) Draw(s render.Surface) {
	if t.Content == "" || t.Body.Radius <= 0 {
		return
	}
	p := t.Body.Pos
	s.Save()
	content := t.Fit(s)
	s.SetFont(t.Size())
	s.SetTextAlign(t.Align)
	// Слои глубины без тени, от дальнего к ближнему
	s.SetShadow(render.Shadow{})
	s.SetFill(t.DepthColor)
	for i := t.Depth; i > 0; i-- {
		d := t.Offset.Scale(float64(i))
		s.FillText(content, p.X+d.X, p.Y+d.Y)
	}
	t.drawFace(s, content, p)
	s.Restore()
}
