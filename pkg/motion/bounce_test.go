package motion

import (
	"math/rand"
	"testing"

	"go-canvas-shapes/pkg/geom"
)

func TestMoveAndBounceSeedsDefaultVelocity(t *testing.T) {
	b := Body{Pos: geom.Pt(50, 50), Radius: 10}
	got := MoveAndBounce(b, 200, 100, DefaultVelocity)
	if !got.HasVel || got.Vel != geom.Pt(1, 1) {
		t.Fatalf("velocity = %+v (has=%v), want (1,1)", got.Vel, got.HasVel)
	}
	if got.Pos != geom.Pt(51, 51) {
		t.Fatalf("pos = %+v, want (51,51)", got.Pos)
	}
}

func TestMoveAndBounceReflectsAndClamps(t *testing.T) {
	tests := []struct {
		name    string
		body    Body
		wantPos geom.Point
		wantVel geom.Point
	}{
		{
			name:    "right wall",
			body:    Body{Pos: geom.Pt(88, 50), Vel: geom.Pt(5, 0), HasVel: true, Radius: 10},
			wantPos: geom.Pt(90, 50),
			wantVel: geom.Pt(-5, 0),
		},
		{
			name:    "top wall",
			body:    Body{Pos: geom.Pt(50, 12), Vel: geom.Pt(0, -4), HasVel: true, Radius: 10},
			wantPos: geom.Pt(50, 10),
			wantVel: geom.Pt(0, 4),
		},
		{
			name:    "corner",
			body:    Body{Pos: geom.Pt(11, 89), Vel: geom.Pt(-3, 3), HasVel: true, Radius: 10},
			wantPos: geom.Pt(10, 90),
			wantVel: geom.Pt(3, -3),
		},
		{
			name:    "inside",
			body:    Body{Pos: geom.Pt(50, 50), Vel: geom.Pt(2, -2), HasVel: true, Radius: 10},
			wantPos: geom.Pt(52, 48),
			wantVel: geom.Pt(2, -2),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveAndBounce(tt.body, 100, 100, DefaultVelocity)
			if got.Pos != tt.wantPos || got.Vel != tt.wantVel {
				t.Fatalf("got pos %+v vel %+v, want pos %+v vel %+v", got.Pos, got.Vel, tt.wantPos, tt.wantVel)
			}
		})
	}
}

func TestMoveAndBounceStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const w, h = 320.0, 240.0
	for i := 0; i < 200; i++ {
		r := 1 + rng.Float64()*30
		b := Body{
			Pos:    geom.Pt(r+rng.Float64()*(w-2*r), r+rng.Float64()*(h-2*r)),
			Vel:    geom.Pt(rng.Float64()*40-20, rng.Float64()*40-20),
			HasVel: true,
			Radius: r,
		}
		for tick := 0; tick < 500; tick++ {
			b = MoveAndBounce(b, w, h, DefaultVelocity)
			if b.Pos.X < r || b.Pos.X > w-r || b.Pos.Y < r || b.Pos.Y > h-r {
				t.Fatalf("body %d left bounds at tick %d: %+v", i, tick, b)
			}
		}
	}
}

func TestBounceBehaviorUsesEnvSize(t *testing.T) {
	b := Body{Pos: geom.Pt(95, 50), Radius: 5}
	seed := geom.Pt(10, 0)
	got := Bounce{Seed: &seed}.Step(b, Env{Width: 100, Height: 100})
	if got.Pos.X != 95 || got.Vel.X != -10 {
		t.Fatalf("got %+v", got)
	}
}

func TestBounceZeroSeedKeepsBodyStill(t *testing.T) {
	still := geom.Pt(0, 0)
	b := Body{Pos: geom.Pt(40, 60), Radius: 5}
	env := Env{Width: 100, Height: 100}
	for i := 0; i < 10; i++ {
		b = Bounce{Seed: &still}.Step(b, env)
	}
	if !b.HasVel || b.Vel != still || b.Pos != geom.Pt(40, 60) {
		t.Fatalf("got %+v, want a resting body at (40,60)", b)
	}

	moved := Bounce{}.Step(Body{Pos: geom.Pt(40, 60), Radius: 5}, env)
	if moved.Vel != DefaultVelocity {
		t.Fatalf("nil seed velocity = %+v, want %+v", moved.Vel, DefaultVelocity)
	}
}

func TestBodyWiderThanContainerIsCentered(t *testing.T) {
	b := Body{Pos: geom.Pt(5, 5), Vel: geom.Pt(1, 1), HasVel: true, Radius: 50}
	got := MoveAndBounce(b, 60, 60, DefaultVelocity)
	if got.Pos != geom.Pt(30, 30) {
		t.Fatalf("pos = %+v, want centered", got.Pos)
	}
}
