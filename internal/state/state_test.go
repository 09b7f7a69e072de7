package state

import (
	"testing"

	"go-canvas-shapes/internal/config"
	"go-canvas-shapes/internal/defs"
	"go-canvas-shapes/internal/event"
	"go-canvas-shapes/internal/input"
	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
)

const tick = 1.0 / config.TicksPerSecond

func testDef(t *testing.T) *defs.SceneDefinition {
	t.Helper()
	def, err := defs.ParseScene([]byte(`{
		"seed": 5,
		"background": {"light": "#ffffff", "dark": "#000000"},
		"shapes": [
			{"kind": "circle", "x": 100, "y": 100, "radius": 10, "velocity": [3, 0],
			 "behaviors": [{"type": "bounce"}]},
			{"kind": "particles", "x": 50, "y": 50}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	return def
}

func newDemo(t *testing.T) (*StateMachine, *input.Scripted, *DemoState) {
	t.Helper()
	sm := NewStateMachine()
	in := input.NewScripted(config.ScreenWidth, config.ScreenHeight, 120)
	demo, err := NewDemoState(sm, in, testDef(t), DemoOptions{})
	if err != nil {
		t.Fatal(err)
	}
	sm.SetState(demo)
	return sm, in, demo
}

func run(sm *StateMachine, in *input.Scripted, rec *render.Recorder, n int) {
	for i := 0; i < n; i++ {
		in.Update()
		sm.Update(tick)
		sm.Draw(rec)
	}
}

func circlePos(d *DemoState) geom.Point {
	return d.Scene().Entities[0].Shape.(motion.Movable).Kinematics().Pos
}

func TestIntroHandsOver(t *testing.T) {
	sm, in, demo := newDemo(t)
	intro := NewIntroState(sm, in, demo)
	sm.SetState(intro)
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)

	run(sm, in, rec, 2)
	if sm.Current() != intro {
		t.Fatal("intro left too early")
	}
	run(sm, in, rec, int(config.IntroDuration*config.TicksPerSecond)+1)
	if sm.Current() != demo {
		t.Fatal("intro did not hand over to the demo")
	}
}

func TestIntroSkipOnKey(t *testing.T) {
	sm, in, demo := newDemo(t)
	sm.SetState(NewIntroState(sm, in, demo))
	in.Keys[0] = []input.Key{input.KeySkip}
	run(sm, in, render.NewRecorder(10, 10), 1)
	if sm.Current() != demo {
		t.Fatal("skip key ignored")
	}
}

func TestDemoAdvancesOncePerTick(t *testing.T) {
	sm, in, demo := newDemo(t)
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	run(sm, in, rec, 3)
	if p := circlePos(demo); p.X != 109 {
		t.Fatalf("x after 3 ticks = %v, want 109", p.X)
	}

	// Два Update без Draw: тик не теряется
	in.Update()
	sm.Update(tick)
	in.Update()
	sm.Update(tick)
	sm.Draw(rec)
	if p := circlePos(demo); p.X != 115 {
		t.Fatalf("x after skipped draw = %v, want 115", p.X)
	}
	if demo.Ticks() != 5 {
		t.Fatalf("ticks = %d", demo.Ticks())
	}
}

func TestDemoThemeToggle(t *testing.T) {
	sm, in, demo := newDemo(t)
	in.Keys[1] = []input.Key{input.KeyTheme}
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)

	run(sm, in, rec, 1)
	if demo.Dark() || render.IsDark(demo.Scene().Background) {
		t.Fatal("light theme expected at start")
	}
	run(sm, in, rec, 1)
	if !demo.Dark() || !render.IsDark(demo.Scene().Background) {
		t.Fatal("theme key should switch to the dark background")
	}
	clear, _ := rec.Last("Clear")
	if !render.IsDark(clear.Color) {
		t.Fatalf("last clear color = %v", clear.Color)
	}
	hud, _ := rec.Last("FillText")
	if render.IsDark(render.FirstColor(hud.Paint)) {
		t.Fatal("HUD text should be light on a dark background")
	}
}

func TestDemoClickBursts(t *testing.T) {
	sm, in, demo := newDemo(t)
	in.Presses[0] = true
	run(sm, in, render.NewRecorder(10, 10), 1)
	if n := demo.Scene().Emitter.Len(); n != config.BurstParticles {
		t.Fatalf("particles after click = %d", n)
	}
}

func TestPauseFreezesScene(t *testing.T) {
	sm, in, demo := newDemo(t)
	in.Keys[1] = []input.Key{input.KeyPause}
	in.Keys[5] = []input.Key{input.KeyPause}
	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)

	run(sm, in, rec, 2)
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Fatalf("state = %T, want *PauseState", sm.Current())
	}
	frozen := circlePos(demo)
	rec.Reset()
	run(sm, in, rec, 3)
	if circlePos(demo) != frozen {
		t.Fatal("scene moved while paused")
	}
	txt, _ := rec.Last("FillText")
	if txt.Text != "PAUSED" {
		t.Fatalf("last text = %q", txt.Text)
	}
	run(sm, in, rec, 1)
	if sm.Current() != demo {
		t.Fatal("pause key should resume the demo")
	}
	run(sm, in, rec, 1)
	if circlePos(demo) == frozen {
		t.Fatal("scene did not resume")
	}
}

func TestDemoPointerLeft(t *testing.T) {
	_, _, demo := newDemo(t)
	demo.OnEvent(event.Event{Type: event.PointerMoved, Data: event.PointerData{X: 5, Y: 6}})
	if demo.pointerX != 5 || demo.pointerY != 6 {
		t.Fatal("pointer not tracked")
	}
	demo.OnEvent(event.Event{Type: event.PointerLeft})
	env := motion.NewEnv(demo.width, demo.height, demo.pointerX, demo.pointerY, 1)
	if env.PointerPresent || env.Pointer != (geom.Point{}) {
		t.Fatalf("absent pointer env = %+v", env)
	}
	demo.OnEvent(event.Event{Type: event.Resized, Data: event.SizeData{Width: 640, Height: 480}})
	if demo.width != 640 || demo.height != 480 {
		t.Fatal("resize ignored")
	}
}
