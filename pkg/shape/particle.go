// pkg/shape/particle.go
package shape

import (
	"image/color"
	"math"
	"math/rand"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
)

// DefaultMaxParticles caps a ParticleSystem built with Max <= 0.
const DefaultMaxParticles = 256

// Particle is a short-lived dot that falls, bounces on the floor and fades.
type Particle struct {
	Body    motion.Body
	Life    float64
	MaxLife float64
	Color   color.Color
}

// Alpha is the remaining life as opacity in [0, 1].
func (p Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, p.Life/p.MaxLife))
}

// ParticleOptions configures a ParticleSystem.
type ParticleOptions struct {
	// Origin is where Emit spawns particles.
	Origin geom.Point
	// Max defaults to DefaultMaxParticles.
	Max int
	// Rate is the number of particles emitted per tick; 0 only bursts.
	Rate int
	// Speed is the maximum initial speed, default 4.
	Speed float64
	// Life is the lifetime in ticks, default 60.
	Life float64
	// Size is the particle radius, default 3.
	Size    float64
	Colors  []color.Color
	Gravity motion.Gravity
	Seed    int64
}

// ParticleSystem emits particles from Origin. When the pool is full new
// particles overwrite the oldest slots in a circle.
type ParticleSystem struct {
	Origin  geom.Point
	Max     int
	Rate    int
	Speed   float64
	Life    float64
	Size    float64
	Colors  []color.Color
	Gravity motion.Gravity

	P      []Particle
	rng    *rand.Rand
	ovrIdx int
}

// NewParticleSystem builds an emitter.
func NewParticleSystem(opts ParticleOptions) *ParticleSystem {
	if opts.Max <= 0 {
		opts.Max = DefaultMaxParticles
	}
	if opts.Speed <= 0 {
		opts.Speed = 4
	}
	if opts.Life <= 0 {
		opts.Life = 60
	}
	if opts.Size <= 0 {
		opts.Size = 3
	}
	if len(opts.Colors) == 0 {
		opts.Colors = []color.Color{color.NRGBA{R: 255, G: 200, B: 60, A: 255}}
	}
	if opts.Gravity == (motion.Gravity{}) {
		opts.Gravity = motion.DefaultGravity()
		opts.Gravity.G = 0.2
	}
	seed := opts.Seed
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Origin:  opts.Origin,
		Max:     opts.Max,
		Rate:    opts.Rate,
		Speed:   opts.Speed,
		Life:    opts.Life,
		Size:    opts.Size,
		Colors:  opts.Colors,
		Gravity: opts.Gravity,
		P:       make([]Particle, 0, opts.Max),
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int { return len(ps.P) }

// Clear drops every particle.
func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

// Add inserts p, overwriting the oldest slot when full.
func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	if ps.ovrIdx >= ps.Max {
		ps.ovrIdx = 0
	}
	ps.P[ps.ovrIdx] = p
	ps.ovrIdx++
}

// Emit spawns one particle at Origin with a random upward velocity.
func (ps *ParticleSystem) Emit() {
	ps.spawn(ps.Origin, -math.Pi/2, math.Pi/3)
}

// Burst spawns n particles at at, spread over the full circle.
func (ps *ParticleSystem) Burst(at geom.Point, n int) {
	for i := 0; i < n; i++ {
		ps.spawn(at, 0, math.Pi)
	}
}

func (ps *ParticleSystem) spawn(at geom.Point, dir, spread float64) {
	angle := dir + (ps.rng.Float64()*2-1)*spread
	speed := ps.Speed * (0.4 + 0.6*ps.rng.Float64())
	life := ps.Life * (0.7 + 0.3*ps.rng.Float64())
	ps.Add(Particle{
		Body: motion.Body{
			Pos:    at,
			Vel:    geom.FromAngle(angle, speed),
			HasVel: true,
			Radius: ps.Size,
		},
		Life:    life,
		MaxLife: life,
		Color:   ps.Colors[ps.rng.Intn(len(ps.Colors))],
	})
}

// Tick emits Rate new particles, moves the live ones and drops the dead.
func (ps *ParticleSystem) Tick(env motion.Env) {
	for i := 0; i < ps.Rate; i++ {
		ps.Emit()
	}
	delta := env.Delta
	if delta <= 0 {
		delta = 1
	}
	ground := ps.Gravity.GroundIn(env.Height)
	for i := 0; i < len(ps.P); {
		p := &ps.P[i]
		p.Life -= delta
		if p.Life <= 0 {
			// swap-remove
			last := len(ps.P) - 1
			ps.P[i] = ps.P[last]
			ps.P = ps.P[:last]
			continue
		}
		p.Body.Pos.X += p.Body.Vel.X * delta
		p.Body = ps.Gravity.Fall(p.Body, ground, delta)
		if p.Body.Vel.Y == 0 {
			p.Body.Vel.X *= ps.Gravity.Friction
		}
		i++
	}
	if ps.ovrIdx > len(ps.P) {
		ps.ovrIdx = 0
	}
}

func (ps *ParticleSystem) Draw(s render.Surface) {
	if len(ps.P) == 0 {
		return
	}
	s.Save()
	for _, p := range ps.P {
		a := p.Alpha()
		if a <= 0 {
			continue
		}
		s.BeginPath()
		s.Arc(p.Body.Pos.X, p.Body.Pos.Y, p.Body.Radius*(0.5+0.5*a), 0, 2*math.Pi)
		s.ClosePath()
		s.SetFill(render.SolidColor(render.WithAlpha(p.Color, a)))
		s.Fill()
	}
	s.Restore()
}
