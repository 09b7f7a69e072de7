// internal/state/pause_state.go
package state

import (
	"go-canvas-shapes/internal/config"
	"go-canvas-shapes/internal/input"
	"go-canvas-shapes/pkg/render"
	"go-canvas-shapes/pkg/shape"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState — пауза: предыдущее состояние заморожено и рисуется под затемнением
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	in            input.Source
	label         *shape.Text
}

func NewPauseState(sm *StateMachine, prevState State, in input.Source) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		in:            in,
		label: shape.NewText(shape.TextOptions{
			X: float64(config.ScreenWidth) / 2, Y: float64(config.ScreenHeight) / 2,
			Content: "PAUSED", Size: config.PauseFontSize,
			Align: render.TextAlign{Horizontal: render.AlignCenter, Vertical: render.BaselineMiddle},
			Style: shape.Filled(config.TextLightColor),
		}),
	}
}

func (s *PauseState) Enter() {}
func (s *PauseState) Exit()  {}

func (s *PauseState) Update(deltaTime float64) {
	if s.in.KeyJustPressed(input.KeyPause) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(surf render.Surface) {
	if s.previousState != nil {
		s.previousState.Draw(surf)
	}
	surf.Save()
	surf.BeginPath()
	surf.Rect(0, 0, float64(surf.Width()), float64(surf.Height()))
	surf.SetShadow(render.Shadow{})
	surf.SetFill(render.SolidColor(config.PauseOverlay))
	surf.Fill()
	surf.Restore()
	s.label.Draw(surf)
}
