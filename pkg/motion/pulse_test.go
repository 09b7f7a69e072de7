package motion

import (
	"math/rand"
	"testing"

	"go-canvas-shapes/pkg/geom"
)

func TestPulseGrowsAndShrinks(t *testing.T) {
	p := &Pulse{Proximity: 50, Max: 30, Grow: 2, Shrink: 1}
	b := Body{Pos: geom.Pt(100, 100), Radius: 20}

	b = p.Resize(b, geom.Pt(110, 100))
	if p.Base() != 20 {
		t.Fatalf("base = %v, want 20", p.Base())
	}
	if b.Radius != 22 {
		t.Fatalf("radius after grow = %v, want 22", b.Radius)
	}
	for i := 0; i < 20; i++ {
		b = p.Resize(b, geom.Pt(110, 100))
	}
	if b.Radius != 30 {
		t.Fatalf("radius = %v, want clamped at max 30", b.Radius)
	}
	for i := 0; i < 40; i++ {
		b = p.Resize(b, geom.Pt(1000, 1000))
	}
	if b.Radius != 20 {
		t.Fatalf("radius = %v, want back at base 20", b.Radius)
	}
}

func TestPulseStaysInBoundsUnderJitter(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := &Pulse{Proximity: 60, Min: 8, Max: 26, Grow: 3, Shrink: 2}
	b := Body{Pos: geom.Pt(100, 100), Radius: 12}
	for i := 0; i < 2000; i++ {
		ptr := geom.Pt(40+rng.Float64()*120, 40+rng.Float64()*120)
		b = p.Resize(b, ptr)
		if b.Radius < 8 || b.Radius > 26 {
			t.Fatalf("radius %v out of [8,26] at tick %d", b.Radius, i)
		}
	}
}

func TestPulseMaxBelowBase(t *testing.T) {
	p := &Pulse{Proximity: 10, Max: 5, Grow: 1, Shrink: 1}
	b := p.Resize(Body{Radius: 12}, geom.Pt(500, 500))
	if b.Radius != 5 {
		t.Fatalf("radius = %v, want 5", b.Radius)
	}
	lo, hi := p.Bounds()
	if lo != 5 || hi != 5 {
		t.Fatalf("bounds = [%v,%v]", lo, hi)
	}
}
