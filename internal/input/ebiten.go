// internal/input/ebiten.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Ebiten reads the real mouse and keyboard.
type Ebiten struct {
	width, height int
}

// NewEbiten returns a source for a width x height screen.
func NewEbiten(width, height int) *Ebiten {
	return &Ebiten{width: width, height: height}
}

func (e *Ebiten) Update() {}

func (e *Ebiten) Pointer() (float64, float64, bool) {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= e.width || y >= e.height {
		return Absent, Absent, false
	}
	return float64(x), float64(y), true
}

func (e *Ebiten) JustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (e *Ebiten) KeyJustPressed(k Key) bool {
	switch k {
	case KeyTheme:
		return inpututil.IsKeyJustPressed(ebiten.KeyT)
	case KeyPause:
		return inpututil.IsKeyJustPressed(ebiten.KeyP) ||
			inpututil.IsKeyJustPressed(ebiten.KeyF9) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	case KeySkip:
		return inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	}
	return false
}
