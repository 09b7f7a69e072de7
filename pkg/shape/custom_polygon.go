// pkg/shape/custom_polygon.go
package shape

import (
	"fmt"
	"math"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/render"
)

// CustomPolygon is a closed polygon through an arbitrary list of points.
type CustomPolygon struct {
	Look
	Points []geom.Point
}

// NewCustomPolygon builds a polygon from at least 3 points enclosing an area.
func NewCustomPolygon(points []geom.Point, style Style) (*CustomPolygon, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	if math.Abs(signedArea(points)) < 1e-9 {
		return nil, fmt.Errorf("%w: polygon has no area", ErrDegenerate)
	}
	pts := make([]geom.Point, len(points))
	copy(pts, points)
	return &CustomPolygon{Look: Look{Style: style}, Points: pts}, nil
}

// Area returns the enclosed area.
func (p *CustomPolygon) Area() float64 {
	return math.Abs(signedArea(p.Points))
}

// Bounds returns the bounding rectangle of the points.
func (p *CustomPolygon) Bounds() geom.Rect {
	return geom.Bounds(p.Points)
}

// Translate moves every point by d.
func (p *CustomPolygon) Translate(d geom.Point) {
	for i := range p.Points {
		p.Points[i] = p.Points[i].Add(d)
	}
}

func (p *CustomPolygon) Draw(s render.Surface) {
	s.Save()
	s.BeginPath()
	tracePoints(s, p.Points)
	p.paint(s)
	s.Restore()
}
