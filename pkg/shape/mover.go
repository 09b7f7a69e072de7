// pkg/shape/mover.go
package shape

import (
	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/motion"
)

// Mover gives a shape a motion.Body and the per-tick motion operations.
// Embedding it makes the shape a motion.Movable.
type Mover struct {
	Body motion.Body
}

func (m *Mover) Kinematics() motion.Body     { return m.Body }
func (m *Mover) SetKinematics(b motion.Body) { m.Body = b }

// Position returns the centre of the shape.
func (m *Mover) Position() geom.Point { return m.Body.Pos }

// MoveTo places the shape centre at p.
func (m *Mover) MoveTo(p geom.Point) { m.Body.Pos = p }

// MoveAndBounce advances the shape and bounces it off the edges of a
// width x height container.
func (m *Mover) MoveAndBounce(width, height float64) {
	m.Body = motion.MoveAndBounce(m.Body, width, height, motion.DefaultVelocity)
}

// CollideWithPointer pushes the shape away from the pointer and reports
// whether the pointer is within the collider's recolour distance.
func (m *Mover) CollideWithPointer(pointer geom.Point, c motion.Collider) bool {
	m.Body = c.Collide(m.Body, pointer)
	return c.Near(m.Body, pointer)
}

// UpdateSizeForPointer grows or shrinks the shape by pointer proximity.
func (m *Mover) UpdateSizeForPointer(pointer geom.Point, p *motion.Pulse) {
	m.Body = p.Resize(m.Body, pointer)
}

// ApplyGravity runs one gravity tick against the ground line.
func (m *Mover) ApplyGravity(g motion.Gravity, ground, delta float64) {
	m.Body = g.Fall(m.Body, ground, delta)
}

// AnimateCircular advances the shape along its orbit.
func (m *Mover) AnimateCircular(o *motion.Orbit) {
	m.Body.Pos = o.Advance()
}

// Interactive is a movable shape that can also be highlighted.
type Interactive interface {
	motion.Movable
	Highlighter
}

// CollideAndHighlight runs the collider on target and toggles its
// highlight with the pointer distance.
func CollideAndHighlight(target Interactive, pointer geom.Point, c motion.Collider) {
	b := c.Collide(target.Kinematics(), pointer)
	target.SetKinematics(b)
	target.Highlight(c.Near(b, pointer))
}
