package shape

import (
	"testing"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
)

func TestParticleSystemOverwritesWhenFull(t *testing.T) {
	ps := NewParticleSystem(ParticleOptions{Max: 4, Seed: 7})
	ps.Burst(geom.Pt(10, 10), 6)
	if ps.Len() != 4 {
		t.Fatalf("len = %d, want cap 4", ps.Len())
	}
	ps.Clear()
	if ps.Len() != 0 {
		t.Fatal("Clear left particles behind")
	}
}

func TestParticlesDieAndFade(t *testing.T) {
	ps := NewParticleSystem(ParticleOptions{Life: 10, Seed: 3})
	ps.Burst(geom.Pt(50, 50), 20)
	env := motion.Env{Width: 100, Height: 100, Delta: 1}

	ps.Tick(env)
	for _, p := range ps.P {
		if a := p.Alpha(); a <= 0 || a >= 1 {
			t.Fatalf("alpha after one tick = %v", a)
		}
	}
	for i := 0; i < 10; i++ {
		ps.Tick(env)
	}
	if ps.Len() != 0 {
		t.Fatalf("%d particles outlived their life", ps.Len())
	}
}

func TestParticlesStayAboveFloor(t *testing.T) {
	ps := NewParticleSystem(ParticleOptions{Life: 500, Rate: 2, Origin: geom.Pt(50, 90), Seed: 11})
	env := motion.Env{Width: 100, Height: 100, Delta: 1}
	for i := 0; i < 200; i++ {
		ps.Tick(env)
		for _, p := range ps.P {
			if p.Body.Pos.Y+p.Body.Radius > 100+1e-9 {
				t.Fatalf("tick %d: particle below floor at %+v", i, p.Body.Pos)
			}
		}
	}
}

func TestParticleDraw(t *testing.T) {
	ps := NewParticleSystem(ParticleOptions{Seed: 5})
	rec := render.NewRecorder(100, 100)
	ps.Draw(rec)
	if len(rec.Commands) != 0 {
		t.Fatal("empty system should draw nothing")
	}
	ps.Burst(geom.Pt(50, 50), 3)
	ps.Draw(rec)
	if rec.Count("Fill") != 3 {
		t.Fatalf("ops = %v", rec.Ops())
	}
}
