// pkg/shape/segmented_line.go
package shape

import (
	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/render"
)

// Segment is one leg of a SegmentedLine. Unset fields fall back to the
// line's Style.
type Segment struct {
	To        geom.Point
	Stroke    render.Paint
	LineWidth float64
	// Shadow overrides the line shadow for this leg only.
	Shadow *render.Shadow
}

// SegmentedLine — ломаная из Start через концы Segments; каждый отрезок
// обводится отдельно своим цветом, толщиной и тенью
type SegmentedLine struct {
	Style    Style
	Start    geom.Point
	Segments []Segment
}

// NewSegmentedLine builds a polyline. The style defaults to a black
// 1px stroke; its fill is ignored.
func NewSegmentedLine(start geom.Point, segments []Segment, style Style) *SegmentedLine {
	return &SegmentedLine{Style: curveStyle(style).linesOnly(), Start: start, Segments: segments}
}

// SetStart moves the first point.
func (l *SegmentedLine) SetStart(p geom.Point) { l.Start = p }

// SetSegments replaces every leg after Start.
func (l *SegmentedLine) SetSegments(segments []Segment) { l.Segments = segments }

// Points returns Start followed by the end of every segment.
func (l *SegmentedLine) Points() []geom.Point {
	pts := make([]geom.Point, 0, len(l.Segments)+1)
	pts = append(pts, l.Start)
	for _, seg := range l.Segments {
		pts = append(pts, seg.To)
	}
	return pts
}

func (l *SegmentedLine) Draw(s render.Surface) {
	s.Save()
	from := l.Start
	for _, seg := range l.Segments {
		stroke := seg.Stroke
		if stroke == nil {
			stroke = l.Style.Stroke
		}
		width := seg.LineWidth
		if width <= 0 {
			width = l.Style.lineWidth()
		}
		shadow := l.Style.Shadow
		if seg.Shadow != nil {
			shadow = *seg.Shadow
		}
		s.BeginPath()
		s.MoveTo(from.X, from.Y)
		s.LineTo(seg.To.X, seg.To.Y)
		s.SetShadow(shadow)
		s.SetStroke(stroke)
		s.SetLineWidth(width)
		s.Stroke()
		from = seg.To
	}
	s.Restore()
}
