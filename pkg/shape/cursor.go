// pkg/shape/cursor.go
package shape

import (
	"image/color"
	"math"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
)

// CursorOptions configures a Cursor.
type CursorOptions struct {
	// Size is the circle radius or the cross half-length, default 10.
	Size float64
	// Color defaults to black.
	Color color.Color
	// Cross draws a crosshair instead of a circle.
	Cross     bool
	LineWidth float64
	Shadow    render.Shadow
}

// Cursor — указатель, который рисует сама сцена. Следует за
// env.Pointer и скрыт, пока указателя нет.
type Cursor struct {
	Style   Style
	Size    float64
	Cross   bool
	Pos     geom.Point
	visible bool
}

// NewCursor builds a hidden cursor; it appears on the first Tick with a pointer.
func NewCursor(opts CursorOptions) *Cursor {
	if opts.Size <= 0 {
		opts.Size = 10
	}
	if opts.Color == nil {
		opts.Color = color.Black
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 2
	}
	return &Cursor{
		Style: Outlined(opts.Color, opts.LineWidth).WithShadow(opts.Shadow),
		Size:  opts.Size,
		Cross: opts.Cross,
	}
}

// Visible reports whether the pointer was present on the last Tick.
func (c *Cursor) Visible() bool { return c.visible }

// Tick follows the pointer.
func (c *Cursor) Tick(env motion.Env) {
	c.visible = env.PointerPresent
	if c.visible {
		c.Pos = env.Pointer
	}
}

func (c *Cursor) Draw(s render.Surface) {
	if !c.visible {
		return
	}
	p := c.Pos
	s.Save()
	s.BeginPath()
	if c.Cross {
		s.MoveTo(p.X-c.Size, p.Y)
		s.LineTo(p.X+c.Size, p.Y)
		s.MoveTo(p.X, p.Y-c.Size)
		s.LineTo(p.X, p.Y+c.Size)
	} else {
		s.Arc(p.X, p.Y, c.Size, 0, 2*math.Pi)
	}
	c.Style.paint(s, false)
	s.Restore()
}
