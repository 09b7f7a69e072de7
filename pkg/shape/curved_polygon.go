// pkg/shape/curved_polygon.go
package shape

import (
	"fmt"
	"math"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/render"
)

// CurvedPolygonOptions configures a CurvedPolygon.
type CurvedPolygonOptions struct {
	X, Y float64
	// Sides must be at least 3.
	Sides  int
	Radius float64
	// Curvature pushes each edge's control point outwards by
	// Curvature*Radius; negative values pinch edges inwards.
	Curvature float64
	Rotation  float64
	Style     Style
	Velocity  *geom.Point
}

// CurvedPolygon is a regular polygon whose edges are quadratic curves.
type CurvedPolygon struct {
	Mover
	Look
	Sides     int
	Curvature float64
	Rotation  float64
}

// NewCurvedPolygon builds a curved polygon. Fewer than 3 sides fails.
func NewCurvedPolygon(opts CurvedPolygonOptions) (*CurvedPolygon, error) {
	if opts.Sides < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSides, opts.Sides)
	}
	if opts.Radius < 0 {
		return nil, fmt.Errorf("%w: polygon radius %v", ErrInvalidSize, opts.Radius)
	}
	if opts.Radius == 0 {
		opts.Radius = 20
	}
	return &CurvedPolygon{
		Mover:     Mover{Body: newBody(opts.X, opts.Y, opts.Radius, opts.Velocity)},
		Look:      Look{Style: opts.Style},
		Sides:     opts.Sides,
		Curvature: opts.Curvature,
		Rotation:  opts.Rotation,
	}, nil
}

// ControlPoints returns one control point per edge, edge i running from
// vertex i to vertex i+1.
func (p *CurvedPolygon) ControlPoints() []geom.Point {
	c := p.Body.Pos
	r := p.Body.Radius
	verts := regularVertices(c, r, p.Sides, p.Rotation)
	ctrl := make([]geom.Point, len(verts))
	for i, v := range verts {
		next := verts[(i+1)%len(verts)]
		mid := v.Add(next).Scale(0.5)
		out := mid.Sub(c)
		if l := out.Len(); l > 0 {
			out = out.Scale((l + p.Curvature*r) / l)
		}
		ctrl[i] = c.Add(out)
	}
	return ctrl
}

func (p *CurvedPolygon) Draw(s render.Surface) {
	if p.Body.Radius <= 0 {
		return
	}
	verts := regularVertices(p.Body.Pos, p.Body.Radius, p.Sides, p.Rotation)
	ctrl := p.ControlPoints()
	s.Save()
	s.BeginPath()
	s.MoveTo(verts[0].X, verts[0].Y)
	for i := range verts {
		next := verts[(i+1)%len(verts)]
		s.QuadraticTo(ctrl[i].X, ctrl[i].Y, next.X, next.Y)
	}
	s.ClosePath()
	p.paint(s)
	s.Restore()
}

// Rotate turns the polygon by da radians.
func (p *CurvedPolygon) Rotate(da float64) {
	p.Rotation = math.Mod(p.Rotation+da, 2*math.Pi)
}
