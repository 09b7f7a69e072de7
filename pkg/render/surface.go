// pkg/render/surface.go
package render

import (
	"image"
	"image/color"
)

// Surface is an immediate-mode 2D drawing API in the style of an HTML
// canvas context. Fill and Stroke paint the current path without
// consuming it; BeginPath starts a new one. Angles are in radians and
// Arc sweeps linearly from start to end, so start > end runs
// counter-clockwise.
type Surface interface {
	Width() int
	Height() int

	// Save pushes the style state; Restore pops it.
	Save()
	Restore()
	// Clear fills the whole surface with c, ignoring style and path.
	Clear(c color.Color)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Arc(x, y, r, start, end float64)
	Rect(x, y, w, h float64)
	ClosePath()

	Fill()
	Stroke()

	SetFill(p Paint)
	SetStroke(p Paint)
	SetLineWidth(w float64)
	SetShadow(s Shadow)
	SetFont(size float64)
	SetTextAlign(a TextAlign)

	FillText(s string, x, y float64)
	StrokeText(s string, x, y float64)
	MeasureText(s string) (w, h float64)

	// DrawImage paints img scaled into the rectangle (x, y, w, h).
	DrawImage(img image.Image, x, y, w, h float64)
}

// Shadow describes the drop shadow applied to fills and strokes.
// The zero value disables it.
type Shadow struct {
	Color            color.Color
	Blur             float64
	OffsetX, OffsetY float64
}

// Enabled reports whether the shadow paints anything.
func (s Shadow) Enabled() bool {
	if s.Color == nil {
		return false
	}
	_, _, _, a := s.Color.RGBA()
	return a > 0 && (s.Blur > 0 || s.OffsetX != 0 || s.OffsetY != 0)
}

// TextAlign positions text relative to the anchor passed to FillText.
type TextAlign struct {
	Horizontal HAlign
	Vertical   VAlign
}

type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

type VAlign int

const (
	BaselineAlphabetic VAlign = iota
	BaselineMiddle
	BaselineTop
	BaselineBottom
)

// Anchor converts the alignment into fractional anchors where 0,0 means
// the anchor is at the left edge on the baseline.
func (a TextAlign) Anchor() (ax, ay float64) {
	switch a.Horizontal {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1
	}
	switch a.Vertical {
	case BaselineMiddle:
		ay = 0.5
	case BaselineTop:
		ay = 1
	case BaselineBottom:
		ay = -0.25
	}
	return ax, ay
}
