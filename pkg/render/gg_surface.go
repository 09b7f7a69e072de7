// pkg/render/gg_surface.go
package render

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"go-canvas-shapes/pkg/geom"
)

type opKind int

const (
	opMove opKind = iota
	opLine
	opQuad
	opCubic
	opArc
	opRect
	opClose
)

// pathOp is one recorded path command. Arc uses pts[0] as centre plus
// r, a0 and a1; Rect uses pts[0] as origin and pts[1] as size.
type pathOp struct {
	kind      opKind
	pts       [3]geom.Point
	r, a0, a1 float64
}

type surfaceState struct {
	fill      Paint
	stroke    Paint
	lineWidth float64
	shadow    Shadow
	fontSize  float64
	align     TextAlign
}

func defaultState() surfaceState {
	return surfaceState{
		fill:      SolidColor(color.Black),
		stroke:    SolidColor(color.Black),
		lineWidth: 1,
		fontSize:  DefaultFontSize,
	}
}

// GGSurface rasterises onto an *image.RGBA through fogleman/gg.
// The current path is kept as a list of commands and replayed into the
// gg context for every Fill and Stroke, which lets shadows be painted
// from the same path on a scratch layer.
type GGSurface struct {
	dc    *gg.Context
	img   *image.RGBA
	fonts *FontCache
	path  []pathOp
	st    surfaceState
	stack []surfaceState
}

var _ Surface = (*GGSurface)(nil)

// NewGGSurface allocates a w x h surface.
func NewGGSurface(w, h int) *GGSurface {
	return NewGGSurfaceForRGBA(image.NewRGBA(image.Rect(0, 0, w, h)), nil)
}

// NewGGSurfaceForRGBA draws into img. A nil fonts uses the bundled typeface.
func NewGGSurfaceForRGBA(img *image.RGBA, fonts *FontCache) *GGSurface {
	if fonts == nil {
		fonts = NewFontCache()
	}
	dc := gg.NewContextForRGBA(img)
	dc.SetLineJoin(gg.LineJoinRound)
	return &GGSurface{dc: dc, img: img, fonts: fonts, st: defaultState()}
}

// Image returns the backing pixels.
func (s *GGSurface) Image() *image.RGBA { return s.img }

// SavePNG writes the current pixels to path.
func (s *GGSurface) SavePNG(path string) error {
	return gg.SavePNG(path, s.img)
}

func (s *GGSurface) Width() int  { return s.img.Bounds().Dx() }
func (s *GGSurface) Height() int { return s.img.Bounds().Dy() }

func (s *GGSurface) Save() {
	s.stack = append(s.stack, s.st)
}

func (s *GGSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.st = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *GGSurface) Clear(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *GGSurface) BeginPath() {
	s.path = s.path[:0]
}

func (s *GGSurface) MoveTo(x, y float64) {
	s.path = append(s.path, pathOp{kind: opMove, pts: [3]geom.Point{{X: x, Y: y}}})
}

func (s *GGSurface) LineTo(x, y float64) {
	s.path = append(s.path, pathOp{kind: opLine, pts: [3]geom.Point{{X: x, Y: y}}})
}

func (s *GGSurface) QuadraticTo(cx, cy, x, y float64) {
	s.path = append(s.path, pathOp{kind: opQuad, pts: [3]geom.Point{{X: cx, Y: cy}, {X: x, Y: y}}})
}

func (s *GGSurface) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.path = append(s.path, pathOp{kind: opCubic, pts: [3]geom.Point{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x, Y: y}}})
}

func (s *GGSurface) Arc(x, y, r, start, end float64) {
	s.path = append(s.path, pathOp{kind: opArc, pts: [3]geom.Point{{X: x, Y: y}}, r: r, a0: start, a1: end})
}

func (s *GGSurface) Rect(x, y, w, h float64) {
	s.path = append(s.path, pathOp{kind: opRect, pts: [3]geom.Point{{X: x, Y: y}, {X: w, Y: h}}})
}

func (s *GGSurface) ClosePath() {
	s.path = append(s.path, pathOp{kind: opClose})
}

func (s *GGSurface) SetFill(p Paint)          { s.st.fill = p }
func (s *GGSurface) SetStroke(p Paint)        { s.st.stroke = p }
func (s *GGSurface) SetLineWidth(w float64)   { s.st.lineWidth = w }
func (s *GGSurface) SetShadow(sh Shadow)      { s.st.shadow = sh }
func (s *GGSurface) SetFont(size float64)     { s.st.fontSize = size }
func (s *GGSurface) SetTextAlign(a TextAlign) { s.st.align = a }

func (s *GGSurface) Fill() {
	if s.st.fill == nil || len(s.path) == 0 {
		return
	}
	if s.st.shadow.Enabled() {
		s.paintShadow(false)
	}
	replay(s.dc, s.path, 0, 0)
	s.dc.SetFillStyle(toPattern(s.st.fill))
	s.dc.Fill()
}

func (s *GGSurface) Stroke() {
	if s.st.stroke == nil || len(s.path) == 0 || s.st.lineWidth <= 0 {
		return
	}
	if s.st.shadow.Enabled() {
		s.paintShadow(true)
	}
	replay(s.dc, s.path, 0, 0)
	s.dc.SetStrokeStyle(toPattern(s.st.stroke))
	s.dc.SetLineWidth(s.st.lineWidth)
	s.dc.Stroke()
}

// paintShadow draws the current path in the shadow colour on a scratch
// layer sized to the path bounds, then composites it with offset and blur.
func (s *GGSurface) paintShadow(stroke bool) {
	sh := s.st.shadow
	pad := sh.Blur*2 + 2
	if stroke {
		pad += s.st.lineWidth
	}
	b := pathBounds(s.path).Inset(-pad)
	x0, y0 := int(math.Floor(b.X)), int(math.Floor(b.Y))
	w, h := int(math.Ceil(b.W))+1, int(math.Ceil(b.H))+1
	if w <= 0 || h <= 0 {
		return
	}
	layer := gg.NewContext(w, h)
	replay(layer, s.path, -float64(x0), -float64(y0))
	layer.SetColor(sh.Color)
	if stroke {
		layer.SetLineWidth(s.st.lineWidth)
		layer.Stroke()
	} else {
		layer.Fill()
	}
	dst := image.Rect(x0, y0, x0+w, y0+h).Add(image.Pt(int(math.Round(sh.OffsetX)), int(math.Round(sh.OffsetY))))
	blurOnto(s.img, dst, layer.Image(), sh.Blur)
}

func (s *GGSurface) face() (font.Face, bool) {
	face, err := s.fonts.Face(s.st.fontSize)
	if err != nil {
		log.Printf("render: %v", err)
		return nil, false
	}
	s.dc.SetFontFace(face)
	return face, true
}

func (s *GGSurface) FillText(text string, x, y float64) {
	c := FirstColor(s.st.fill)
	if c == nil || text == "" {
		return
	}
	face, ok := s.face()
	if !ok {
		return
	}
	ax, ay := s.st.align.Anchor()
	if s.st.shadow.Enabled() {
		s.textShadow(face, text, x, y, ax, ay)
	}
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(text, x, y, ax, ay)
}

// textShadow renders text in the shadow colour on a scratch layer and
// composites it with offset and blur, like paintShadow does for paths.
func (s *GGSurface) textShadow(face font.Face, text string, x, y, ax, ay float64) {
	sh := s.st.shadow
	w, h := s.dc.MeasureString(text)
	// Та же привязка, что в DrawStringAnchored
	left, baseline := x-ax*w, y+ay*h
	pad := sh.Blur*2 + h/2 + 2
	x0 := int(math.Floor(left - pad))
	y0 := int(math.Floor(baseline - h - pad))
	lw := int(math.Ceil(w + 2*pad))
	lh := int(math.Ceil(h + 2*pad))
	if lw <= 0 || lh <= 0 {
		return
	}
	layer := gg.NewContext(lw, lh)
	layer.SetFontFace(face)
	layer.SetColor(sh.Color)
	layer.DrawString(text, left-float64(x0), baseline-float64(y0))
	dst := image.Rect(x0, y0, x0+lw, y0+lh).Add(image.Pt(int(math.Round(sh.OffsetX)), int(math.Round(sh.OffsetY))))
	blurOnto(s.img, dst, layer.Image(), sh.Blur)
}

// StrokeText outlines glyphs by painting them at eight offsets around
// the anchor in the stroke colour.
func (s *GGSurface) StrokeText(text string, x, y float64) {
	c := FirstColor(s.st.stroke)
	if c == nil || text == "" || s.st.lineWidth <= 0 {
		return
	}
	if _, ok := s.face(); !ok {
		return
	}
	ax, ay := s.st.align.Anchor()
	d := math.Max(s.st.lineWidth/2, 1)
	s.dc.SetColor(c)
	for i := 0; i < 8; i++ {
		a := float64(i) * math.Pi / 4
		s.dc.DrawStringAnchored(text, x+math.Cos(a)*d, y+math.Sin(a)*d, ax, ay)
	}
}

func (s *GGSurface) MeasureText(text string) (float64, float64) {
	if _, ok := s.face(); !ok {
		return 0, 0
	}
	return s.dc.MeasureString(text)
}

func (s *GGSurface) DrawImage(img image.Image, x, y, w, h float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	if float64(b.Dx()) == w && float64(b.Dy()) == h && x == math.Trunc(x) && y == math.Trunc(y) {
		s.dc.DrawImage(img, int(x), int(y))
		return
	}
	dst := image.Rect(int(math.Round(x)), int(math.Round(y)), int(math.Round(x+w)), int(math.Round(y+h)))
	scaleOnto(s.img, dst, img)
}

func replay(dc *gg.Context, path []pathOp, dx, dy float64) {
	dc.ClearPath()
	for _, op := range path {
		p0 := op.pts[0].Add(geom.Pt(dx, dy))
		switch op.kind {
		case opMove:
			dc.MoveTo(p0.X, p0.Y)
		case opLine:
			dc.LineTo(p0.X, p0.Y)
		case opQuad:
			p1 := op.pts[1].Add(geom.Pt(dx, dy))
			dc.QuadraticTo(p0.X, p0.Y, p1.X, p1.Y)
		case opCubic:
			p1 := op.pts[1].Add(geom.Pt(dx, dy))
			p2 := op.pts[2].Add(geom.Pt(dx, dy))
			dc.CubicTo(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y)
		case opArc:
			dc.DrawArc(p0.X, p0.Y, op.r, op.a0, op.a1)
		case opRect:
			dc.DrawRectangle(p0.X, p0.Y, op.pts[1].X, op.pts[1].Y)
		case opClose:
			dc.ClosePath()
		}
	}
}

func pathBounds(path []pathOp) geom.Rect {
	pts := make([]geom.Point, 0, len(path)*3)
	for _, op := range path {
		switch op.kind {
		case opMove, opLine:
			pts = append(pts, op.pts[0])
		case opQuad:
			pts = append(pts, op.pts[0], op.pts[1])
		case opCubic:
			pts = append(pts, op.pts[:]...)
		case opArc:
			c := op.pts[0]
			pts = append(pts, geom.Pt(c.X-op.r, c.Y-op.r), geom.Pt(c.X+op.r, c.Y+op.r))
		case opRect:
			o, sz := op.pts[0], op.pts[1]
			pts = append(pts, o, o.Add(sz))
		}
	}
	return geom.Bounds(pts)
}

func toPattern(p Paint) gg.Pattern {
	switch v := p.(type) {
	case Solid:
		if v.Color == nil {
			return gg.NewSolidPattern(color.Transparent)
		}
		return gg.NewSolidPattern(v.Color)
	case *LinearGradient:
		g := gg.NewLinearGradient(v.X0, v.Y0, v.X1, v.Y1)
		for _, st := range v.Stops {
			g.AddColorStop(st.Offset, st.Color)
		}
		return g
	case *RadialGradient:
		g := gg.NewRadialGradient(v.X0, v.Y0, v.R0, v.X1, v.Y1, v.R1)
		for _, st := range v.Stops {
			g.AddColorStop(st.Offset, st.Color)
		}
		return g
	}
	return paintPattern{p}
}

// paintPattern samples any Paint at pixel centres.
type paintPattern struct {
	p Paint
}

func (pp paintPattern) ColorAt(x, y int) color.Color {
	return pp.p.ColorAt(float64(x)+0.5, float64(y)+0.5)
}
