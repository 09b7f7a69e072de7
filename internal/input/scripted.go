// internal/input/scripted.go
package input

import "math"

// Scripted drives the pointer along a Lissajous figure over a
// width x height surface, for headless runs and tests. Presses and key
// hits fire on the listed ticks.
type Scripted struct {
	Width, Height float64
	// Period is the number of ticks for one loop of the figure.
	Period  int
	Presses map[int]bool
	Keys    map[int][]Key

	tick int
}

// NewScripted returns a scripted source; the first Update moves to tick 0.
func NewScripted(width, height float64, period int) *Scripted {
	if period <= 0 {
		period = 240
	}
	return &Scripted{
		Width:   width,
		Height:  height,
		Period:  period,
		Presses: map[int]bool{},
		Keys:    map[int][]Key{},
		tick:    -1,
	}
}

// Tick returns the current tick.
func (s *Scripted) Tick() int { return s.tick }

func (s *Scripted) Update() { s.tick++ }

func (s *Scripted) Pointer() (float64, float64, bool) {
	t := 2 * math.Pi * float64(s.tick) / float64(s.Period)
	// 3:2: фигура обходит все четверти
	x := s.Width/2 + s.Width*0.4*math.Sin(3*t)
	y := s.Height/2 + s.Height*0.4*math.Sin(2*t)
	return x, y, true
}

func (s *Scripted) JustPressed() bool { return s.Presses[s.tick] }

func (s *Scripted) KeyJustPressed(k Key) bool {
	for _, hit := range s.Keys[s.tick] {
		if hit == k {
			return true
		}
	}
	return false
}
