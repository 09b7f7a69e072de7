// pkg/shape/text.go
package shape

import (
	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/render"
)

const ellipsis = "…"

// TextOptions configures a Text.
type TextOptions struct {
	X, Y    float64
	Content string
	// Size is the font size in pixels, default 16.
	Size  float64
	Align render.TextAlign
	Style Style
	// MaxWidth truncates the text with an ellipsis; zero disables it.
	MaxWidth float64
	Velocity *geom.Point
}

// Text is a movable label. Body.Radius is half the font size, so
// pulsing changes the size of the glyphs.
type Text struct {
	Mover
	Look
	Content  string
	Align    render.TextAlign
	MaxWidth float64
}

// NewText builds a text shape. A style with neither fill nor stroke gets a black fill.
func NewText(opts TextOptions) *Text {
	if opts.Size <= 0 {
		opts.Size = render.DefaultFontSize
	}
	st := opts.Style
	if st.Fill == nil && st.Stroke == nil {
		st.Fill = render.SolidColor(defaultInk)
	}
	return &Text{
		Mover:    Mover{Body: newBody(opts.X, opts.Y, opts.Size/2, opts.Velocity)},
		Look:     Look{Style: st},
		Content:  opts.Content,
		Align:    opts.Align,
		MaxWidth: opts.MaxWidth,
	}
}

// Size returns the font size.
func (t *Text) Size() float64 { return t.Body.Radius * 2 }

// SetContent replaces the displayed string.
func (t *Text) SetContent(s string) { t.Content = s }

// Fit returns the content shortened to MaxWidth as measured on s.
func (t *Text) Fit(s render.Surface) string {
	if t.MaxWidth <= 0 {
		return t.Content
	}
	s.SetFont(t.Size())
	if w, _ := s.MeasureText(t.Content); w <= t.MaxWidth {
		return t.Content
	}
	runes := []rune(t.Content)
	for n := len(runes) - 1; n > 0; n-- {
		candidate := string(runes[:n]) + ellipsis
		if w, _ := s.MeasureText(candidate); w <= t.MaxWidth {
			return candidate
		}
	}
	return ellipsis
}

func (t *Text) Draw(s render.Surface) {
	if t.Content == "" || t.Body.Radius <= 0 {
		return
	}
	s.Save()
	content := t.Fit(s)
	s.SetFont(t.Size())
	s.SetTextAlign(t.Align)
	t.drawFace(s, content, t.Body.Pos)
	s.Restore()
}

// drawFace paints content at p with the current font and alignment.
// The outline goes under the fill so the glyph interior stays visible;
// the shadow belongs to whichever pass runs first.
func (t *Text) drawFace(s render.Surface, content string, p geom.Point) {
	s.SetShadow(t.Style.Shadow)
	fill := t.Style.fillPaint(t.Highlighted())
	if t.Style.Stroke != nil {
		s.SetStroke(t.Style.Stroke)
		s.SetLineWidth(t.Style.lineWidth())
		s.StrokeText(content, p.X, p.Y)
		s.SetShadow(render.Shadow{})
	}
	if fill != nil {
		s.SetFill(fill)
		s.FillText(content, p.X, p.Y)
	}
}
