// pkg/motion/orbit.go
package motion

import (
	"math"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/utils"
)

// Orbit moves a body along an ellipse around Center. Equal radii give
// a circle. The angle accumulator lives in the Orbit, so each body
// needs its own.
type Orbit struct {
	Center           geom.Point
	RadiusX, RadiusY float64
	AngularVelocity  float64
	Angle            float64
}

// Advance adds one tick of angular velocity and returns the new position.
func (o *Orbit) Advance() geom.Point {
	o.Angle = utils.NormalizeAngle(o.Angle + o.AngularVelocity)
	return o.Position()
}

// Position returns the point on the ellipse for the current angle.
func (o *Orbit) Position() geom.Point {
	return geom.Pt(
		o.Center.X+math.Cos(o.Angle)*o.RadiusX,
		o.Center.Y+math.Sin(o.Angle)*o.RadiusY,
	)
}

func (o *Orbit) Step(b Body, _ Env) Body {
	b.Pos = o.Advance()
	return b
}
