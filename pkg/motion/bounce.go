// pkg/motion/bounce.go
package motion

import "go-canvas-shapes/pkg/geom"

// DefaultVelocity seeds a body that has never been given a velocity.
var DefaultVelocity = geom.Pt(1, 1)

// MoveAndBounce advances b by its velocity inside a width x height
// container. Each axis is handled on its own: leaving [r, dim-r]
// flips that velocity component and clamps the coordinate back onto
// the boundary. A body without velocity is seeded with seed.
func MoveAndBounce(b Body, width, height float64, seed geom.Point) Body {
	if !b.HasVel {
		b = b.WithVelocity(seed)
	}
	b.Pos = b.Pos.Add(b.Vel)
	b.Pos.X, b.Vel.X = bounceAxis(b.Pos.X, b.Vel.X, b.Radius, width)
	b.Pos.Y, b.Vel.Y = bounceAxis(b.Pos.Y, b.Vel.Y, b.Radius, height)
	return b
}

func bounceAxis(pos, vel, r, dim float64) (float64, float64) {
	lo, hi := r, dim-r
	if hi < lo {
		// Тело шире контейнера: держим его по центру
		return dim / 2, -vel
	}
	switch {
	case pos < lo:
		return lo, -vel
	case pos > hi:
		return hi, -vel
	}
	return pos, vel
}

// Bounce is the Behavior form of MoveAndBounce.
type Bounce struct {
	// Seed is used when the body has no velocity yet; nil means DefaultVelocity.
	Seed *geom.Point
}

func (bn Bounce) Step(b Body, env Env) Body {
	seed := DefaultVelocity
	if bn.Seed != nil {
		seed = *bn.Seed
	}
	return MoveAndBounce(b, env.Width, env.Height, seed)
}
