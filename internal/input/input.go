// internal/input/input.go
package input

import "math"

// Key is an action key the demo reacts to.
type Key int

const (
	KeyTheme Key = iota
	KeyPause
	KeySkip
)

// Source is where the demo reads the pointer and keys from each tick.
type Source interface {
	// Update is called once per tick before any query.
	Update()
	// Pointer returns the pointer position; ok is false when it is
	// outside the surface.
	Pointer() (x, y float64, ok bool)
	// JustPressed reports a primary button press on this tick.
	JustPressed() bool
	// KeyJustPressed reports a key press on this tick.
	KeyJustPressed(k Key) bool
}

// Absent is the pointer value for "no pointer", normalised to 0 by the
// motion layer.
var Absent = math.NaN()
