// pkg/motion/body.go
package motion

import "go-canvas-shapes/pkg/geom"

// Body is the kinematic state shared by every movable shape: center
// position, velocity and the extent used for wall and pointer tests.
// HasVel is false until a velocity has been assigned.
type Body struct {
	Pos    geom.Point
	Vel    geom.Point
	HasVel bool
	Radius float64
}

// WithVelocity returns a copy of b with velocity v.
func (b Body) WithVelocity(v geom.Point) Body {
	b.Vel = v
	b.HasVel = true
	return b
}

// Env is what the host hands every motion step: container size, the
// pointer position and the frame delta.
type Env struct {
	Width, Height float64
	Pointer       geom.Point
	// PointerPresent is false when the pointer has left the surface.
	PointerPresent bool
	Delta          float64
}

// NewEnv builds an Env, normalising unset (NaN) pointer coordinates to 0.
func NewEnv(width, height, pointerX, pointerY, delta float64) Env {
	p := geom.SanitizePoint(geom.Pt(pointerX, pointerY))
	return Env{
		Width:          width,
		Height:         height,
		Pointer:        p,
		PointerPresent: p.X == pointerX && p.Y == pointerY,
		Delta:          delta,
	}
}

// Movable is implemented by shapes that expose a Body.
type Movable interface {
	Kinematics() Body
	SetKinematics(Body)
}

// Behavior advances a Body by one tick.
type Behavior interface {
	Step(b Body, env Env) Body
}

// BehaviorFunc adapts a plain function to Behavior.
type BehaviorFunc func(b Body, env Env) Body

func (f BehaviorFunc) Step(b Body, env Env) Body { return f(b, env) }

// Apply runs behaviors in order against m's body and stores the result.
func Apply(m Movable, env Env, behaviors ...Behavior) {
	if len(behaviors) == 0 {
		return
	}
	b := m.Kinematics()
	for _, bh := range behaviors {
		b = bh.Step(b, env)
	}
	m.SetKinematics(b)
}
