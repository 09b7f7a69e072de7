// internal/scene/scene.go
package scene

import (
	"image/color"
	"log"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
	"go-canvas-shapes/pkg/shape"
)

// Animator advances state a shape cannot express as a Body (rotation,
// control points).
type Animator func(env motion.Env)

// Entity is one shape plus the motion steps applied to it every frame.
type Entity struct {
	Name      string
	Shape     shape.Drawable
	Behaviors []motion.Behavior
	Animators []Animator
	// Collider decides recolouring; nil falls back to the scene's.
	Collider *motion.Collider

	failed bool
}

// Failed reports whether the entity has panicked at least once.
func (e *Entity) Failed() bool { return e.failed }

// Scene: плоский список фигур, перерисовываемых каждый кадр
type Scene struct {
	Entities   []*Entity
	Background color.Color
	// Collider is used for recolouring entities without their own.
	Collider motion.Collider
	// Emitter receives pointer bursts; may be nil.
	Emitter *shape.ParticleSystem
}

// New returns an empty scene.
func New(background color.Color) *Scene {
	return &Scene{Background: background, Collider: motion.DefaultCollider()}
}

// Add appends an entity and returns it.
func (s *Scene) Add(name string, d shape.Drawable, behaviors ...motion.Behavior) *Entity {
	e := &Entity{Name: name, Shape: d, Behaviors: behaviors}
	s.Entities = append(s.Entities, e)
	return e
}

// Frame clears the surface, then updates and draws every entity in order.
func (s *Scene) Frame(surf render.Surface, env motion.Env) {
	s.clear(surf)
	for i, e := range s.Entities {
		s.guard(i, e, func() {
			s.step(e, env)
			e.Shape.Draw(surf)
		})
	}
}

// Draw paints the current state without advancing it.
func (s *Scene) Draw(surf render.Surface) {
	s.clear(surf)
	for i, e := range s.Entities {
		s.guard(i, e, func() { e.Shape.Draw(surf) })
	}
}

// Update advances every entity by one tick without drawing.
func (s *Scene) Update(env motion.Env) {
	for i, e := range s.Entities {
		s.guard(i, e, func() { s.step(e, env) })
	}
}

// Burst throws n particles from p if the scene has an emitter.
func (s *Scene) Burst(x, y float64, n int) {
	if s.Emitter == nil {
		return
	}
	s.Emitter.Burst(geom.Pt(x, y), n)
}

func (s *Scene) clear(surf render.Surface) {
	if s.Background != nil {
		surf.Clear(s.Background)
	}
}

func (s *Scene) step(e *Entity, env motion.Env) {
	if t, ok := e.Shape.(shape.Ticker); ok {
		t.Tick(env)
	}
	for _, a := range e.Animators {
		a(env)
	}
	m, ok := e.Shape.(motion.Movable)
	if !ok {
		return
	}
	motion.Apply(m, env, e.Behaviors...)
	if h, ok := e.Shape.(shape.Highlighter); ok {
		c := s.Collider
		if e.Collider != nil {
			c = *e.Collider
		}
		h.Highlight(env.PointerPresent && c.Near(m.Kinematics(), env.Pointer))
	}
}

// guard keeps one broken shape from taking the frame down.
func (s *Scene) guard(i int, e *Entity, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if !e.failed {
				log.Printf("scene: entity %d (%s) failed: %v", i, e.Name, r)
			}
			e.failed = true
		}
	}()
	fn()
}
