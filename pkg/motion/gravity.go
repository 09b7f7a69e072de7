// pkg/motion/gravity.go
package motion

import "math"

// Gravity pulls a body down onto a ground line and bounces it with
// damping until it settles.
type Gravity struct {
	// G is the downward acceleration per tick.
	G float64
	// Ground is the y of the line the lowest point of the body rests on.
	// Nil means the bottom of the container.
	Ground *float64
	// Bounce and Friction together scale the rebound velocity.
	Bounce, Friction float64
	// Tolerance under which the rebound velocity is zeroed.
	Tolerance float64
}

// DefaultGravity returns the gravity used by the demo scenes.
func DefaultGravity() Gravity {
	return Gravity{G: 0.5, Bounce: 0.7, Friction: 0.9, Tolerance: 0.5}
}

// Fall advances the vertical motion of b by delta ticks against ground.
func (g Gravity) Fall(b Body, ground, delta float64) Body {
	if !b.HasVel || math.IsNaN(b.Vel.Y) || math.IsInf(b.Vel.Y, 0) {
		b.Vel.Y = 1
		b.HasVel = true
	}
	if math.IsNaN(b.Vel.X) {
		b.Vel.X = 0
	}
	b.Vel.Y += g.G * delta
	b.Pos.Y += b.Vel.Y * delta

	if b.Pos.Y+b.Radius >= ground {
		b.Pos.Y = ground - b.Radius
		b.Vel.Y = -b.Vel.Y * g.Bounce * g.Friction
		if math.Abs(b.Vel.Y) < g.Tolerance {
			b.Vel.Y = 0
		}
	}
	return b
}

// GroundIn returns the ground line for a container of the given height.
func (g Gravity) GroundIn(height float64) float64 {
	if g.Ground != nil {
		return *g.Ground
	}
	return height
}

func (g Gravity) Step(b Body, env Env) Body {
	ground := g.GroundIn(env.Height)
	delta := env.Delta
	if delta <= 0 {
		delta = 1
	}
	return g.Fall(b, ground, delta)
}
