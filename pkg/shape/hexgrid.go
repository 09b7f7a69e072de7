// pkg/shape/hexgrid.go
package shape

import (
	"fmt"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/hexmap"
	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
)

// HexGrid is a hexagonal patch of pointy-top tiles around a centre. The
// tile under the pointer is filled with Style.Highlight.
type HexGrid struct {
	Look
	Layout hexmap.Layout
	Rings  int

	tiles   []hexmap.Hex
	hovered hexmap.Hex
	hover   bool
}

// NewHexGrid builds a grid of rings around center with tiles of the given circumradius.
func NewHexGrid(center geom.Point, size float64, rings int, style Style) (*HexGrid, error) {
	if size <= 0 || rings < 0 {
		return nil, fmt.Errorf("%w: hex size %v rings %d", ErrInvalidSize, size, rings)
	}
	return &HexGrid{
		Look:   Look{Style: curveStyle(style)},
		Layout: hexmap.Layout{Size: size, Origin: center},
		Rings:  rings,
		tiles:  hexmap.Hex{}.Range(rings),
	}, nil
}

// Tiles returns the axial coordinates of all tiles.
func (g *HexGrid) Tiles() []hexmap.Hex { return g.tiles }

// Hovered returns the tile under the pointer, if any.
func (g *HexGrid) Hovered() (hexmap.Hex, bool) { return g.hovered, g.hover }

// Tick tracks the tile under the pointer.
func (g *HexGrid) Tick(env motion.Env) {
	g.hover = false
	if !env.PointerPresent {
		return
	}
	h := g.Layout.FromPixel(env.Pointer)
	if h.Distance(hexmap.Hex{}) <= g.Rings {
		g.hovered, g.hover = h, true
	}
}

func (g *HexGrid) Draw(s render.Surface) {
	s.Save()
	if g.hover && g.Style.Highlight != nil {
		s.BeginPath()
		tracePoints(s, g.Layout.Corners(g.hovered))
		s.SetShadow(render.Shadow{})
		s.SetFill(g.Style.Highlight)
		s.Fill()
	}
	s.BeginPath()
	for _, h := range g.tiles {
		tracePoints(s, g.Layout.Corners(h))
	}
	st := g.Style
	st.Highlight = nil
	st.paint(s, false)
	s.Restore()
}
