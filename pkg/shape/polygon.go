// pkg/shape/polygon.go
package shape

import (
	"fmt"
	"math"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/render"
)

// PolygonOptions configures a regular Polygon.
type PolygonOptions struct {
	X, Y float64
	// Sides must be at least 3.
	Sides int
	// Radius is the circumradius, default 20.
	Radius float64
	// Rotation in radians; zero puts the first vertex straight up.
	Rotation float64
	Style    Style
	Velocity *geom.Point
}

// Polygon is a regular polygon inscribed in a circle of Body.Radius.
type Polygon struct {
	Mover
	Look
	Sides    int
	Rotation float64
}

// NewPolygon builds a regular polygon. Fewer than 3 sides fails.
func NewPolygon(opts PolygonOptions) (*Polygon, error) {
	if opts.Sides < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSides, opts.Sides)
	}
	if opts.Radius < 0 {
		return nil, fmt.Errorf("%w: polygon radius %v", ErrInvalidSize, opts.Radius)
	}
	if opts.Radius == 0 {
		opts.Radius = 20
	}
	return &Polygon{
		Mover:    Mover{Body: newBody(opts.X, opts.Y, opts.Radius, opts.Velocity)},
		Look:     Look{Style: opts.Style},
		Sides:    opts.Sides,
		Rotation: opts.Rotation,
	}, nil
}

// Vertices returns the corner points, clockwise on screen from the top.
func (p *Polygon) Vertices() []geom.Point {
	return regularVertices(p.Body.Pos, p.Body.Radius, p.Sides, p.Rotation)
}

// Rotate adds da radians to the rotation.
func (p *Polygon) Rotate(da float64) { p.Rotation = math.Mod(p.Rotation+da, 2*math.Pi) }

func (p *Polygon) Draw(s render.Surface) {
	if p.Body.Radius <= 0 {
		return
	}
	s.Save()
	s.BeginPath()
	tracePoints(s, p.Vertices())
	p.paint(s)
	s.Restore()
}

func regularVertices(c geom.Point, r float64, sides int, rotation float64) []geom.Point {
	pts := make([]geom.Point, sides)
	step := 2 * math.Pi / float64(sides)
	for i := range pts {
		a := rotation - math.Pi/2 + float64(i)*step
		pts[i] = c.Add(geom.FromAngle(a, r))
	}
	return pts
}

// tracePoints adds a closed polyline through pts to the current path.
func tracePoints(s render.Surface, pts []geom.Point) {
	for i, pt := range pts {
		if i == 0 {
			s.MoveTo(pt.X, pt.Y)
		} else {
			s.LineTo(pt.X, pt.Y)
		}
	}
	s.ClosePath()
}
