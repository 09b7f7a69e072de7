// cmd/demo/main.go
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/hajimehoshi/ebiten/v2"

	"go-canvas-shapes/internal/config"
	"go-canvas-shapes/internal/defs"
	"go-canvas-shapes/internal/event"
	"go-canvas-shapes/internal/input"
	"go-canvas-shapes/internal/state"
	"go-canvas-shapes/pkg/render"
)

var (
	cyan   = color.New(color.FgCyan, color.Bold)
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// AppGame — реализация ebiten.Game для окна
type AppGame struct {
	stateMachine   *state.StateMachine
	input          input.Source
	lastUpdateTime time.Time

	surface *render.GGSurface
	frame   *ebiten.Image
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.input.Update()
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(a.surface)
	// Кадр gg копируется в текстуру ebiten целиком
	a.frame.WritePixels(a.surface.Image().Pix)
	screen.DrawImage(a.frame, nil)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

type options struct {
	scene     string
	assets    string
	headless  bool
	frames    int
	out       string
	dump      bool
	seed      int64
	dark      bool
	skipIntro bool
	width     int
	height    int
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.scene, "scene", config.SceneFile, "scene definition file")
	flag.StringVar(&o.assets, "assets", "assets", "directory for relative image paths")
	flag.BoolVar(&o.headless, "headless", false, "render without a window")
	flag.IntVar(&o.frames, "frames", config.HeadlessFrames, "ticks to run in headless mode")
	flag.StringVar(&o.out, "out", "frame.png", "PNG written in headless mode")
	flag.BoolVar(&o.dump, "dump", false, "print drawing command counts of the last frame")
	flag.Int64Var(&o.seed, "seed", 0, "PRNG seed, 0 uses the scene seed")
	flag.BoolVar(&o.dark, "dark", false, "start with the dark theme")
	flag.BoolVar(&o.skipIntro, "skip-intro", false, "start straight in the demo")
	flag.IntVar(&o.width, "width", config.ScreenWidth, "headless surface width")
	flag.IntVar(&o.height, "height", config.ScreenHeight, "headless surface height")
	flag.Parse()
	return o
}

func main() {
	opts := parseFlags()
	cyan.Println("go-canvas-shapes")

	def, err := defs.LoadScene(opts.scene)
	if err != nil {
		log.Fatal(err)
	}
	white.Printf("scene %q: %d shapes, %d spawn groups\n", def.Name, len(def.Shapes), len(def.Spawns))

	if opts.headless {
		if err := runHeadless(def, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	in := input.NewEbiten(config.ScreenWidth, config.ScreenHeight)
	sm, err := newMachine(def, in, opts)
	if err != nil {
		log.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, config.ScreenWidth, config.ScreenHeight))
	app := &AppGame{
		stateMachine:   sm,
		input:          in,
		lastUpdateTime: time.Now(),
		surface:        render.NewGGSurfaceForRGBA(img, render.NewFontCache()),
		frame:          ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("go-canvas-shapes")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

func newMachine(def *defs.SceneDefinition, in input.Source, opts options) (*state.StateMachine, error) {
	sm := state.NewStateMachine()
	demo, err := state.NewDemoState(sm, in, def, state.DemoOptions{
		Seed: opts.seed, AssetDir: opts.assets, Dark: opts.dark,
	})
	if err != nil {
		return nil, err
	}
	if opts.skipIntro {
		sm.SetState(demo)
	} else {
		sm.SetState(state.NewIntroState(sm, in, demo))
	}
	return sm, nil
}

func runHeadless(def *defs.SceneDefinition, opts options) error {
	if opts.frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", opts.frames)
	}
	in := input.NewScripted(float64(opts.width), float64(opts.height), config.ScriptedPointerPeriod)
	opts.skipIntro = true
	sm, err := newMachine(def, in, opts)
	if err != nil {
		return err
	}
	if demo, ok := sm.Current().(*state.DemoState); ok && (opts.width != config.ScreenWidth || opts.height != config.ScreenHeight) {
		demo.Dispatcher().Dispatch(event.Event{Type: event.Resized, Data: event.SizeData{Width: opts.width, Height: opts.height}})
	}

	start := time.Now()
	for i := 0; i < opts.frames; i++ {
		in.Update()
		sm.Update(1 / config.TicksPerSecond)
	}
	surface := render.NewGGSurface(opts.width, opts.height)
	sm.Draw(surface)
	if err := surface.SavePNG(opts.out); err != nil {
		return fmt.Errorf("failed to save frame: %w", err)
	}
	green.Printf("%d ticks in %v -> %s\n", opts.frames, time.Since(start).Round(time.Millisecond), opts.out)

	if opts.dump {
		rec := render.NewRecorder(opts.width, opts.height)
		sm.Draw(rec)
		for _, oc := range rec.Histogram() {
			yellow.Fprintf(os.Stdout, "%-14s", oc.Op)
			white.Fprintf(os.Stdout, "%6d\n", oc.N)
		}
	}
	return nil
}
