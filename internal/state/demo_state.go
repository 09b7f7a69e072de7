// internal/state/demo_state.go
package state

import (
	"fmt"
	"math"

	"go-canvas-shapes/internal/config"
	"go-canvas-shapes/internal/defs"
	"go-canvas-shapes/internal/event"
	"go-canvas-shapes/internal/input"
	"go-canvas-shapes/internal/scene"
	"go-canvas-shapes/internal/utils"
	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
	"go-canvas-shapes/pkg/shape"
)

var _ State = (*DemoState)(nil)

// DemoState — основное состояние демо. Ввод превращается в события,
// события меняют сцену, каждый кадр двигает и перерисовывает фигуры.
type DemoState struct {
	sm         *StateMachine
	in         input.Source
	def        *defs.SceneDefinition
	scene      *scene.Scene
	dispatcher *event.Dispatcher
	hud        *shape.Text

	width, height float64
	pointerX      float64
	pointerY      float64
	dark          bool
	ticks         int

	// тик, который ещё не отрисован
	pending    bool
	pendingEnv motion.Env
}

// DemoOptions — параметры NewDemoState
type DemoOptions struct {
	Seed     int64
	AssetDir string
	Dark     bool
}

func NewDemoState(sm *StateMachine, in input.Source, def *defs.SceneDefinition, opts DemoOptions) (*DemoState, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = def.Seed
	}
	w, h := float64(config.ScreenWidth), float64(config.ScreenHeight)
	sc, err := scene.Build(def, utils.NewPRNGService(seed), scene.Options{
		Width: w, Height: h, AssetDir: opts.AssetDir, Dark: opts.Dark,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}
	d := &DemoState{
		sm:         sm,
		in:         in,
		def:        def,
		scene:      sc,
		dispatcher: event.NewDispatcher(),
		width:      w,
		height:     h,
		pointerX:   input.Absent,
		pointerY:   input.Absent,
		dark:       opts.Dark,
		hud: shape.NewText(shape.TextOptions{
			X: config.HUDMargin, Y: h - config.HUDMargin, Size: config.HUDFontSize,
			Align: render.TextAlign{Vertical: render.BaselineBottom},
		}),
	}
	for _, t := range []event.EventType{
		event.PointerMoved, event.PointerLeft, event.PointerPressed,
		event.ThemeToggled, event.PauseToggled, event.Resized,
	} {
		d.dispatcher.Subscribe(t, d)
	}
	return d, nil
}

// Scene exposes the running scene.
func (d *DemoState) Scene() *scene.Scene { return d.scene }

// Dispatcher exposes the event bus.
func (d *DemoState) Dispatcher() *event.Dispatcher { return d.dispatcher }

// Dark reports the current theme.
func (d *DemoState) Dark() bool { return d.dark }

// Ticks returns the number of updates run so far.
func (d *DemoState) Ticks() int { return d.ticks }

func (d *DemoState) Enter() {}
func (d *DemoState) Exit()  {}

func (d *DemoState) Update(deltaTime float64) {
	d.pollInput()
	if d.sm.Current() != d {
		return
	}
	env := motion.NewEnv(d.width, d.height, d.pointerX, d.pointerY, deltaTime*config.TicksPerSecond)
	if d.pending {
		// Кадр пропущен: двигаем без отрисовки
		d.scene.Update(d.pendingEnv)
	}
	d.pendingEnv = env
	d.pending = true
	d.ticks++
}

func (d *DemoState) pollInput() {
	if x, y, ok := d.in.Pointer(); ok {
		if x != d.pointerX || y != d.pointerY {
			d.dispatcher.Dispatch(event.Event{Type: event.PointerMoved, Data: event.PointerData{X: x, Y: y}})
		}
	} else if !math.IsNaN(d.pointerX) {
		d.dispatcher.Dispatch(event.Event{Type: event.PointerLeft})
	}
	if x, y, ok := d.in.Pointer(); ok && d.in.JustPressed() {
		d.dispatcher.Dispatch(event.Event{Type: event.PointerPressed, Data: event.PointerData{X: x, Y: y}})
	}
	if d.in.KeyJustPressed(input.KeyTheme) {
		d.dispatcher.Dispatch(event.Event{Type: event.ThemeToggled})
	}
	if d.in.KeyJustPressed(input.KeyPause) {
		d.dispatcher.Dispatch(event.Event{Type: event.PauseToggled})
	}
}

// OnEvent implements event.Listener.
func (d *DemoState) OnEvent(e event.Event) {
	switch e.Type {
	case event.PointerMoved:
		p := e.Data.(event.PointerData)
		d.pointerX, d.pointerY = p.X, p.Y
	case event.PointerLeft:
		d.pointerX, d.pointerY = input.Absent, input.Absent
	case event.PointerPressed:
		p := e.Data.(event.PointerData)
		d.scene.Burst(p.X, p.Y, config.BurstParticles)
	case event.ThemeToggled:
		d.dark = !d.dark
		if bg, err := scene.Background(d.def, d.dark); err == nil {
			d.scene.Background = bg
		}
	case event.PauseToggled:
		d.sm.SetState(NewPauseState(d.sm, d, d.in))
	case event.Resized:
		sz := e.Data.(event.SizeData)
		d.width, d.height = float64(sz.Width), float64(sz.Height)
		d.hud.MoveTo(geom.Pt(config.HUDMargin, d.height-config.HUDMargin))
	}
}

func (d *DemoState) Draw(surf render.Surface) {
	if d.pending {
		d.scene.Frame(surf, d.pendingEnv)
		d.pending = false
	} else {
		d.scene.Draw(surf)
	}
	d.drawHUD(surf)
}

func (d *DemoState) drawHUD(surf render.Surface) {
	ink := config.TextDarkColor
	if d.scene.Background != nil && render.IsDark(d.scene.Background) {
		ink = config.TextLightColor
	}
	d.hud.Style.Fill = render.SolidColor(ink)
	particles := 0
	if d.scene.Emitter != nil {
		particles = d.scene.Emitter.Len()
	}
	d.hud.SetContent(fmt.Sprintf("shapes: %d  particles: %d  tick: %d", len(d.scene.Entities), particles, d.ticks))
	d.hud.Draw(surf)
}
