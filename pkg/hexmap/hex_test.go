package hexmap

import (
	"math"
	"testing"

	"go-canvas-shapes/pkg/geom"
)

func TestPixelRoundTrip(t *testing.T) {
	l := Layout{Size: 20, Origin: geom.Pt(300, 200)}
	for _, h := range (Hex{}).Range(3) {
		p := l.ToPixel(h)
		if got := l.FromPixel(p); got != h {
			t.Fatalf("FromPixel(ToPixel(%v)) = %v", h, got)
		}
		// Точка рядом с центром остаётся в том же гексе
		if got := l.FromPixel(p.Add(geom.Pt(5, -5))); got != h {
			t.Fatalf("near %v resolved to %v", h, got)
		}
	}
}

func TestRangeCountsAndDistance(t *testing.T) {
	center := Hex{Q: 2, R: -1}
	for radius := 0; radius <= 4; radius++ {
		hexes := center.Range(radius)
		if want := 1 + 3*radius*(radius+1); len(hexes) != want {
			t.Fatalf("radius %d: %d hexes, want %d", radius, len(hexes), want)
		}
		seen := map[Hex]bool{}
		for _, h := range hexes {
			if seen[h] {
				t.Fatalf("radius %d: duplicate %v", radius, h)
			}
			seen[h] = true
			if d := center.Distance(h); d > radius {
				t.Fatalf("radius %d: %v at distance %d", radius, h, d)
			}
		}
	}
}

func TestNeighborsAreAdjacent(t *testing.T) {
	h := Hex{Q: -1, R: 3}
	for _, n := range h.Neighbors() {
		if h.Distance(n) != 1 {
			t.Fatalf("neighbor %v at distance %d", n, h.Distance(n))
		}
	}
}

func TestCorners(t *testing.T) {
	l := Layout{Size: 10}
	pts := l.Corners(Hex{})
	if len(pts) != 6 {
		t.Fatalf("corners = %d", len(pts))
	}
	if math.Abs(pts[0].X) > 1e-9 || math.Abs(pts[0].Y+10) > 1e-9 {
		t.Fatalf("first corner %+v should be straight up", pts[0])
	}
	for _, p := range pts {
		if math.Abs(p.Len()-10) > 1e-9 {
			t.Fatalf("corner %+v off the circumcircle", p)
		}
	}
}
