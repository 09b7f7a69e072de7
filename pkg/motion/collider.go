// pkg/motion/collider.go
package motion

import (
	"math"

	"go-canvas-shapes/pkg/geom"
)

// Collider pushes a body away from the pointer and lets the push die out.
type Collider struct {
	// PointerRadius is the hit radius attributed to the pointer itself.
	PointerRadius float64
	// Margin is added on top of body and pointer radii.
	Margin float64
	// Push is the speed given to the body on contact.
	Push float64
	// Decay multiplies the velocity every tick while it is above Epsilon.
	Decay float64
	// Epsilon below which no decay is applied on an axis.
	Epsilon float64
	// RecolorDistance is the extra distance, beyond the body radius,
	// within which Near reports true. Zero disables recolouring.
	RecolorDistance float64
}

// DefaultCollider returns the collider used by the demo scenes.
func DefaultCollider() Collider {
	return Collider{
		PointerRadius:   20,
		Margin:          5,
		Push:            5,
		Decay:           0.95,
		Epsilon:         0.1,
		RecolorDistance: 80,
	}
}

// Threshold is the distance under which a push is applied.
func (c Collider) Threshold(b Body) float64 {
	return b.Radius + c.PointerRadius + c.Margin
}

// Hits reports whether pointer p is close enough to push b.
func (c Collider) Hits(b Body, p geom.Point) bool {
	return b.Pos.Dist(geom.SanitizePoint(p)) < c.Threshold(b)
}

// Near reports whether pointer p is inside the recolour threshold.
func (c Collider) Near(b Body, p geom.Point) bool {
	if c.RecolorDistance <= 0 {
		return false
	}
	return b.Pos.Dist(geom.SanitizePoint(p)) < b.Radius+c.RecolorDistance
}

// Collide applies one tick of pointer repulsion and velocity decay.
func (c Collider) Collide(b Body, pointer geom.Point) Body {
	p := geom.SanitizePoint(pointer)
	if c.Hits(b, p) {
		angle := p.AngleTo(b.Pos)
		b = b.WithVelocity(geom.FromAngle(angle, c.Push))
	}
	if math.Abs(b.Vel.X) > c.Epsilon || math.Abs(b.Vel.Y) > c.Epsilon {
		b.Vel = b.Vel.Scale(c.Decay)
	}
	return b
}

// Step treats an absent pointer as (0, 0), like any other unset input.
func (c Collider) Step(b Body, env Env) Body {
	return c.Collide(b, env.Pointer)
}
