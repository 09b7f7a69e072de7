// pkg/shape/grid.go
package shape

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/render"
)

var defaultInk = color.NRGBA{0, 0, 0, 255}

// Grid draws evenly spaced vertical and horizontal lines over Area.
type Grid struct {
	Look
	Area geom.Rect
	Cell float64
}

// NewGrid builds a grid; Cell must be positive.
func NewGrid(area geom.Rect, cell float64, style Style) (*Grid, error) {
	if cell <= 0 || area.W <= 0 || area.H <= 0 {
		return nil, fmt.Errorf("%w: grid %vx%v cell %v", ErrInvalidSize, area.W, area.H, cell)
	}
	return &Grid{Look: Look{Style: curveStyle(style)}, Area: area, Cell: cell}, nil
}

// Lines returns how many vertical and horizontal lines are drawn.
func (g *Grid) Lines() (vertical, horizontal int) {
	return int(math.Floor(g.Area.W/g.Cell)) + 1, int(math.Floor(g.Area.H/g.Cell)) + 1
}

func (g *Grid) Draw(s render.Surface) {
	s.Save()
	s.BeginPath()
	traceGrid(s, g.Area, g.Area.X, g.Area.Y, g.Cell)
	g.Style.linesOnly().paint(s, false)
	s.Restore()
}

// traceGrid adds grid lines through origin (ox, oy) spaced by cell,
// clipped to area.
func traceGrid(s render.Surface, area geom.Rect, ox, oy, cell float64) {
	first := ox - math.Floor((ox-area.X)/cell)*cell
	for x := first; x <= area.X+area.W+1e-9; x += cell {
		s.MoveTo(x, area.Y)
		s.LineTo(x, area.Y+area.H)
	}
	first = oy - math.Floor((oy-area.Y)/cell)*cell
	for y := first; y <= area.Y+area.H+1e-9; y += cell {
		s.MoveTo(area.X, y)
		s.LineTo(area.X+area.W, y)
	}
}

// QuadrantGrid is a grid centred on the middle of its area with the two
// axes drawn heavier, like a cartesian plane split into quadrants.
type QuadrantGrid struct {
	Look
	Area geom.Rect
	Cell float64
	// Axis is the paint of the two axes; nil reuses the grid stroke.
	Axis      render.Paint
	AxisWidth float64
	// Labels prints the cell index next to each tick on the axes.
	Labels   bool
	FontSize float64
}

// NewQuadrantGrid builds a quadrant grid; Cell must be positive.
func NewQuadrantGrid(area geom.Rect, cell float64, style Style) (*QuadrantGrid, error) {
	if cell <= 0 || area.W <= 0 || area.H <= 0 {
		return nil, fmt.Errorf("%w: grid %vx%v cell %v", ErrInvalidSize, area.W, area.H, cell)
	}
	style = curveStyle(style)
	return &QuadrantGrid{
		Look:      Look{Style: style},
		Area:      area,
		Cell:      cell,
		AxisWidth: style.lineWidth() * 2,
		FontSize:  10,
	}, nil
}

// Origin is the point where the axes cross.
func (q *QuadrantGrid) Origin() geom.Point { return q.Area.Center() }

// Quadrant returns 1..4 for p counted counter-clockwise from the top
// right as on a cartesian plane, or 0 for points on an axis.
func (q *QuadrantGrid) Quadrant(p geom.Point) int {
	o := q.Origin()
	switch {
	case p.X > o.X && p.Y < o.Y:
		return 1
	case p.X < o.X && p.Y < o.Y:
		return 2
	case p.X < o.X && p.Y > o.Y:
		return 3
	case p.X > o.X && p.Y > o.Y:
		return 4
	}
	return 0
}

func (q *QuadrantGrid) Draw(s render.Surface) {
	o := q.Origin()
	a := q.Area
	s.Save()
	s.BeginPath()
	traceGrid(s, a, o.X, o.Y, q.Cell)
	q.Style.linesOnly().paint(s, false)

	axis := q.Axis
	if axis == nil {
		axis = q.Style.Stroke
	}
	s.BeginPath()
	s.MoveTo(a.X, o.Y)
	s.LineTo(a.X+a.W, o.Y)
	s.MoveTo(o.X, a.Y)
	s.LineTo(o.X, a.Y+a.H)
	s.SetShadow(render.Shadow{})
	s.SetStroke(axis)
	s.SetLineWidth(q.AxisWidth)
	s.Stroke()

	if q.Labels {
		q.drawLabels(s, axis)
	}
	s.Restore()
}

func (q *QuadrantGrid) drawLabels(s render.Surface, ink render.Paint) {
	o := q.Origin()
	a := q.Area
	s.SetFont(q.FontSize)
	s.SetFill(ink)
	s.SetTextAlign(render.TextAlign{Horizontal: render.AlignCenter, Vertical: render.BaselineTop})
	n := int(math.Floor((a.W / 2) / q.Cell))
	for i := -n; i <= n; i++ {
		if i == 0 {
			continue
		}
		s.FillText(strconv.Itoa(i), o.X+float64(i)*q.Cell, o.Y+2)
	}
	s.SetTextAlign(render.TextAlign{Horizontal: render.AlignLeft, Vertical: render.BaselineMiddle})
	n = int(math.Floor((a.H / 2) / q.Cell))
	for i := -n; i <= n; i++ {
		if i == 0 {
			continue
		}
		// Ось Y направлена вверх, как в декартовой системе
		s.FillText(strconv.Itoa(-i), o.X+3, o.Y+float64(i)*q.Cell)
	}
}
