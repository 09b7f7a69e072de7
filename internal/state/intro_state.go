// internal/state/intro_state.go
package state

import (
	"go-canvas-shapes/internal/config"
	"go-canvas-shapes/internal/input"
	"go-canvas-shapes/pkg/render"
	"go-canvas-shapes/pkg/shape"
)

var _ State = (*IntroState)(nil)

// IntroState — заставка с названием, потом переход в next
type IntroState struct {
	sm      *StateMachine
	in      input.Source
	next    State
	elapsed float64

	title, hint *shape.Text
}

func NewIntroState(sm *StateMachine, in input.Source, next State) *IntroState {
	center := render.TextAlign{Horizontal: render.AlignCenter, Vertical: render.BaselineMiddle}
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	return &IntroState{
		sm:   sm,
		in:   in,
		next: next,
		title: shape.NewText(shape.TextOptions{
			X: w / 2, Y: h / 2, Content: "go-canvas-shapes", Size: config.IntroFontSize,
			Align: center, Style: shape.Filled(config.TextLightColor),
		}),
		hint: shape.NewText(shape.TextOptions{
			X: w / 2, Y: h/2 + config.IntroFontSize, Content: "T theme · P pause · click burst",
			Size: config.HUDFontSize, Align: center, Style: shape.Filled(config.TextLightColor),
		}),
	}
}

func (s *IntroState) Enter() {}
func (s *IntroState) Exit()  {}

func (s *IntroState) Update(deltaTime float64) {
	s.elapsed += deltaTime
	if s.elapsed >= config.IntroDuration || s.in.JustPressed() || s.in.KeyJustPressed(input.KeySkip) {
		s.sm.SetState(s.next)
	}
}

func (s *IntroState) Draw(surf render.Surface) {
	surf.Clear(config.DarkBackground)
	// Плавное появление за первую треть
	a := s.elapsed / (config.IntroDuration / 3)
	if a > 1 {
		a = 1
	}
	s.title.Style.Fill = render.SolidColor(render.WithAlpha(config.TextLightColor, a))
	s.title.Draw(surf)
	s.hint.Draw(surf)
}
