// pkg/hexmap/hex.go
package hexmap

import (
	"math"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/utils"
)

// Hex представляет гекс в осевых координатах (Q, R)
type Hex struct {
	Q, R int
}

// NeighborDirections: 6 направлений, начиная с востока против часовой стрелки.
var NeighborDirections = []Hex{
	{Q: 1, R: 0}, {Q: 1, R: -1}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: 0, R: 1},
}

// Layout — раскладка гексов с острой вершиной сверху, радиус Size, центр Origin
type Layout struct {
	Size   float64
	Origin geom.Point
}

// ToPixel конвертирует гекс в центр на экране
func (l Layout) ToPixel(h Hex) geom.Point {
	x := l.Size * (Sqrt3*float64(h.Q) + Sqrt3/2*float64(h.R))
	y := l.Size * (3.0 / 2.0 * float64(h.R))
	return l.Origin.Add(geom.Pt(x, y))
}

// FromPixel конвертирует точку экрана в ближайший гекс
func (l Layout) FromPixel(p geom.Point) Hex {
	d := p.Sub(l.Origin)
	q := (Sqrt3/3*d.X - 1.0/3*d.Y) / l.Size
	r := (2.0 / 3 * d.Y) / l.Size
	return axialRound(q, r)
}

// Corners — шесть вершин гекса, от верхней по часовой стрелке
func (l Layout) Corners(h Hex) []geom.Point {
	c := l.ToPixel(h)
	pts := make([]geom.Point, 6)
	for i := range pts {
		angle := math.Pi/3*float64(i) - math.Pi/2
		pts[i] = c.Add(geom.FromAngle(angle, l.Size))
	}
	return pts
}

// Neighbors возвращает всех шесть соседей гекса
func (h Hex) Neighbors() []Hex {
	out := make([]Hex, len(NeighborDirections))
	for i, d := range NeighborDirections {
		out[i] = h.Add(d)
	}
	return out
}

// Add возвращает сумму двух гексов
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Distance вычисляет расстояние между гексами
func (h Hex) Distance(to Hex) int {
	dq := h.Q - to.Q
	dr := h.R - to.R
	return (utils.Abs(dq) + utils.Abs(dr) + utils.Abs(dq+dr)) / 2
}

// Range — все гексы на расстоянии не больше radius, кольцо за кольцом
func (h Hex) Range(radius int) []Hex {
	out := []Hex{h}
	for k := 1; k <= radius; k++ {
		// Начинаем с юго-западного угла кольца и обходим 6 сторон
		cur := h.Add(Hex{Q: -k, R: k})
		for _, d := range NeighborDirections {
			for i := 0; i < k; i++ {
				out = append(out, cur)
				cur = cur.Add(d)
			}
		}
	}
	return out
}
