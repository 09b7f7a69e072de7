// pkg/motion/pulse.go
package motion

import (
	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/utils"
)

// Pulse grows a body while the pointer is close and shrinks it back
// afterwards. It keeps state (the base radius) so each body needs its
// own Pulse.
type Pulse struct {
	// Proximity is the pointer distance under which the body grows.
	Proximity float64
	// Min is the lower radius bound; zero means the radius seen on the first step.
	Min float64
	// Max is the upper radius bound.
	Max float64
	// Grow and Shrink are the per-tick radius increments.
	Grow, Shrink float64

	base    float64
	started bool
}

// Base returns the radius snapshot taken on the first step.
func (p *Pulse) Base() float64 { return p.base }

// Bounds returns the effective [min, max] radius range.
func (p *Pulse) Bounds() (float64, float64) {
	lo := p.Min
	if lo <= 0 {
		lo = p.base
	}
	hi := p.Max
	if hi < lo {
		lo = hi
	}
	return lo, hi
}

// Resize performs one tick of proximity-driven resizing.
func (p *Pulse) Resize(b Body, pointer geom.Point) Body {
	if !p.started {
		p.base = b.Radius
		p.started = true
	}
	lo, hi := p.Bounds()
	if b.Pos.Dist(geom.SanitizePoint(pointer)) < p.Proximity {
		b.Radius += p.Grow
	} else {
		b.Radius -= p.Shrink
	}
	b.Radius = utils.Clamp(b.Radius, lo, hi)
	return b
}

func (p *Pulse) Step(b Body, env Env) Body {
	return p.Resize(b, env.Pointer)
}
