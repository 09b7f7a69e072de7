// pkg/shape/wave.go
package shape

import (
	"math"

	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
)

// WaveLineOptions configures a WaveLine. Zero values take the defaults noted.
type WaveLineOptions struct {
	// Baseline is the y the wave oscillates around.
	Baseline float64
	// X0 and X1 bound the wave horizontally; X1 zero means the surface width.
	X0, X1 float64
	// Amplitude defaults to 20, Wavelength to 120.
	Amplitude, Wavelength float64
	// Speed is the phase advance per tick, default 0.05.
	Speed float64
	Phase float64
	// Step is the horizontal distance between polyline vertices, default 4.
	Step  float64
	Style Style
}

// WaveLine is a travelling sine wave drawn as a polyline.
type WaveLine struct {
	Look
	Baseline              float64
	X0, X1                float64
	Amplitude, Wavelength float64
	Speed, Phase          float64
	Step                  float64
}

// NewWaveLine builds a wave line.
func NewWaveLine(opts WaveLineOptions) *WaveLine {
	if opts.Amplitude == 0 {
		opts.Amplitude = 20
	}
	if opts.Wavelength <= 0 {
		opts.Wavelength = 120
	}
	if opts.Speed == 0 {
		opts.Speed = 0.05
	}
	if opts.Step <= 0 {
		opts.Step = 4
	}
	return &WaveLine{
		Look:       Look{Style: curveStyle(opts.Style)},
		Baseline:   opts.Baseline,
		X0:         opts.X0,
		X1:         opts.X1,
		Amplitude:  opts.Amplitude,
		Wavelength: opts.Wavelength,
		Speed:      opts.Speed,
		Phase:      opts.Phase,
		Step:       opts.Step,
	}
}

// YAt returns the wave height at x for the current phase.
func (w *WaveLine) YAt(x float64) float64 {
	return w.Baseline + w.Amplitude*math.Sin(2*math.Pi*(x-w.X0)/w.Wavelength+w.Phase)
}

// Tick advances the phase by Speed scaled with the frame delta.
func (w *WaveLine) Tick(env motion.Env) {
	d := env.Delta
	if d <= 0 {
		d = 1
	}
	w.Phase = math.Mod(w.Phase+w.Speed*d, 2*math.Pi)
}

func (w *WaveLine) Draw(s render.Surface) {
	x1 := w.X1
	if x1 == 0 {
		x1 = float64(s.Width())
	}
	if x1 <= w.X0 {
		return
	}
	s.Save()
	s.BeginPath()
	s.MoveTo(w.X0, w.YAt(w.X0))
	for x := w.X0 + w.Step; x < x1; x += w.Step {
		s.LineTo(x, w.YAt(x))
	}
	s.LineTo(x1, w.YAt(x1))
	w.Style.linesOnly().paint(s, false)
	s.Restore()
}
