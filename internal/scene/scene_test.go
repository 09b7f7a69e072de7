package scene

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"go-canvas-shapes/internal/defs"
	"go-canvas-shapes/internal/utils"
	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
	"go-canvas-shapes/pkg/shape"
)

type panicky struct{ calls int }

func (p *panicky) Draw(render.Surface) {
	p.calls++
	panic("broken shape")
}

func TestFrameSurvivesPanickingShape(t *testing.T) {
	sc := New(color.White)
	bad := &panicky{}
	sc.Add("bad", bad)
	c, _ := shape.NewCircle(shape.CircleOptions{X: 50, Y: 50, Style: shape.Filled(color.Black)})
	sc.Add("good", c)

	rec := render.NewRecorder(100, 100)
	env := motion.NewEnv(100, 100, 0, 0, 1)
	for i := 0; i < 3; i++ {
		sc.Frame(rec, env)
	}
	if bad.calls != 3 {
		t.Fatalf("broken shape tried %d times", bad.calls)
	}
	if !sc.Entities[0].Failed() || sc.Entities[1].Failed() {
		t.Fatal("only the broken entity should be marked failed")
	}
	if rec.Count("Fill") != 3 {
		t.Fatalf("good shape filled %d times, want 3", rec.Count("Fill"))
	}
	if rec.Count("Clear") != 3 {
		t.Fatalf("background cleared %d times", rec.Count("Clear"))
	}
}

func TestFrameAppliesBehaviorsInOrder(t *testing.T) {
	sc := New(nil)
	v := geom.Pt(2, 0)
	c, _ := shape.NewCircle(shape.CircleOptions{X: 50, Y: 50, Radius: 5, Velocity: &v})
	sc.Add("mover", c, motion.Bounce{})

	rec := render.NewRecorder(100, 100)
	sc.Frame(rec, motion.NewEnv(100, 100, 500, 500, 1))
	if c.Position() != geom.Pt(52, 50) {
		t.Fatalf("position = %+v", c.Position())
	}
	if rec.Count("Clear") != 0 {
		t.Fatal("nil background should not clear")
	}

	sc.Draw(rec)
	if c.Position() != geom.Pt(52, 50) {
		t.Fatal("Draw must not advance the scene")
	}
	sc.Update(motion.NewEnv(100, 100, 500, 500, 1))
	if c.Position() != geom.Pt(54, 50) {
		t.Fatalf("Update position = %+v", c.Position())
	}
}

func TestFrameHighlightsNearPointer(t *testing.T) {
	sc := New(nil)
	c, _ := shape.NewCircle(shape.CircleOptions{X: 50, Y: 50, Style: shape.Filled(color.Black).WithHighlight(color.White)})
	sc.Add("c", c)
	rec := render.NewRecorder(300, 300)

	sc.Frame(rec, motion.NewEnv(300, 300, 60, 50, 1))
	if !c.Highlighted() {
		t.Fatal("expected highlight with pointer nearby")
	}
	sc.Frame(rec, motion.NewEnv(300, 300, 290, 290, 1))
	if c.Highlighted() {
		t.Fatal("expected highlight cleared")
	}
}

const testScene = `{
	"name": "test",
	"background": {"light": "#ffffff", "dark": "#101010"},
	"shapes": [
		{"kind": "circle", "x": 100, "y": 100, "radius": 10, "fill": "red",
		 "behaviors": [{"type": "bounce"}, {"type": "collide"}, {"type": "pulse", "max": 30}]},
		{"kind": "curved_polygon", "x": 200, "y": 200, "sides": 5, "curvature": 0.2,
		 "fill": "hsl(120, 50%, 50%)", "behaviors": [{"type": "spin"}]},
		{"kind": "quadratic_bezier", "points": [[0, 0], [50, 50], [100, 0]],
		 "behaviors": [{"type": "sway"}]},
		{"kind": "ring", "x": 300, "y": 100, "radius": 20, "fill": "#00f",
		 "behaviors": [{"type": "orbit", "centerX": 300, "centerY": 300, "radiusX": 40}]},
		{"kind": "particles", "x": 200, "y": 300},
		{"kind": "linear_gradient", "x": 0, "y": 0, "width": 50, "height": 20,
		 "stops": [{"offset": 0, "color": "black"}, {"offset": 1, "color": "white"}]},
		{"kind": "text", "x": 10, "y": 10, "text": "hi", "align": "center"},
		{"kind": "wave", "y": 200}
	],
	"spawns": [
		{"count": 5, "minRadius": 5, "maxRadius": 15, "colorFrom": "#000000", "colorTo": "#ffffff",
		 "maxSpeed": 2, "entries": [{"kind": "circle", "weight": 1}, {"kind": "square", "weight": 1}],
		 "behaviors": [{"type": "bounce"}, {"type": "gravity"}]}
	]
}`

func TestBuildFromDefinition(t *testing.T) {
	def, err := defs.ParseScene([]byte(testScene))
	if err != nil {
		t.Fatal(err)
	}
	sc, err := Build(def, utils.NewPRNGService(1), Options{Width: 400, Height: 400, Dark: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(sc.Entities) != 13 {
		t.Fatalf("entities = %d, want 13", len(sc.Entities))
	}
	if sc.Emitter == nil {
		t.Fatal("particle system not picked as emitter")
	}
	if bg := render.FromColor(sc.Background); bg.R != 16 {
		t.Fatalf("dark background = %+v", bg)
	}
	first := sc.Entities[0]
	if len(first.Behaviors) != 3 || first.Collider == nil {
		t.Fatalf("circle behaviours = %d collider = %v", len(first.Behaviors), first.Collider)
	}

	rec := render.NewRecorder(400, 400)
	env := motion.NewEnv(400, 400, 100, 100, 1)
	for i := 0; i < 30; i++ {
		sc.Frame(rec, env)
	}
	for _, e := range sc.Entities {
		if e.Failed() {
			t.Fatalf("entity %s failed", e.Name)
		}
	}
	for _, e := range sc.Entities[8:] {
		b := e.Shape.(motion.Movable).Kinematics()
		if b.Pos.Y+b.Radius > 400+1e-9 {
			t.Fatalf("%s fell through the floor: %+v", e.Name, b)
		}
	}
	sc.Burst(10, 10, 5)
	if sc.Emitter.Len() < 5 {
		t.Fatalf("burst added %d particles", sc.Emitter.Len())
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	def, _ := defs.ParseScene([]byte(testScene))
	a, _ := Build(def, utils.NewPRNGService(9), Options{Width: 400, Height: 400})
	b, _ := Build(def, utils.NewPRNGService(9), Options{Width: 400, Height: 400})
	for i := 8; i < len(a.Entities); i++ {
		pa := a.Entities[i].Shape.(motion.Movable).Kinematics()
		pb := b.Entities[i].Shape.(motion.Movable).Kinematics()
		if pa != pb {
			t.Fatalf("entity %d differs: %+v vs %+v", i, pa, pb)
		}
	}
}

func TestBuildRejectsMismatchedBehavior(t *testing.T) {
	def := &defs.SceneDefinition{Shapes: []defs.ShapeDefinition{
		{Kind: defs.KindGrid, Cell: 10, Width: 100, Height: 100,
			Behaviors: []defs.BehaviorDefinition{{Type: defs.BehaviorBounce}}},
	}}
	_, err := Build(def, utils.NewPRNGService(1), Options{Width: 100, Height: 100})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildPropagatesShapeErrors(t *testing.T) {
	def := &defs.SceneDefinition{Shapes: []defs.ShapeDefinition{{Kind: defs.KindPolygon, Sides: 2}}}
	_, err := Build(def, utils.NewPRNGService(1), Options{Width: 100, Height: 100})
	if !errors.Is(err, shape.ErrTooFewSides) {
		t.Fatalf("err = %v", err)
	}
	def = &defs.SceneDefinition{Shapes: []defs.ShapeDefinition{{Kind: defs.KindCircle, Fill: "nope"}}}
	_, err = Build(def, utils.NewPRNGService(1), Options{Width: 100, Height: 100})
	if !errors.Is(err, render.ErrInvalidColor) {
		t.Fatalf("err = %v", err)
	}
}

func TestBuildLayeredKinds(t *testing.T) {
	def, err := defs.ParseScene([]byte(`{
		"shapes": [
			{"kind": "text_3d", "x": 10, "y": 10, "text": "deep", "depth": 3, "offset": [2, 1], "depthColor": "#222"},
			{"kind": "segmented_line", "x": 0, "y": 0, "stroke": "#000", "lineWidth": 2,
			 "segments": [{"to": [10, 0], "color": "red"}, {"to": [10, 10], "lineWidth": 5,
			  "shadow": {"color": "rgba(0,0,0,0.5)", "blur": 2, "offsetX": 1, "offsetY": 1}}]},
			{"kind": "radial_gradient_rect", "x": 0, "y": 0, "width": 40, "height": 20},
			{"kind": "center_gradient", "x": 0, "y": 0, "width": 20, "height": 20, "inner": "white", "outer": "navy"},
			{"kind": "cursor", "size": 6, "cross": true, "stroke": "#f00"}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	sc, err := Build(def, utils.NewPRNGService(1), Options{Width: 100, Height: 100})
	if err != nil {
		t.Fatal(err)
	}
	t3 := sc.Entities[0].Shape.(*shape.Text3D)
	if t3.Depth != 3 || t3.Offset != geom.Pt(2, 1) {
		t.Fatalf("text3d depth = %d offset = %v", t3.Depth, t3.Offset)
	}
	line := sc.Entities[1].Shape.(*shape.SegmentedLine)
	if len(line.Segments) != 2 || line.Segments[1].Shadow == nil || line.Segments[0].Stroke == nil {
		t.Fatalf("segments = %+v", line.Segments)
	}
	if g := sc.Entities[3].Shape.(*shape.RadialGradientRect); len(g.Stops) != 2 {
		t.Fatalf("center gradient stops = %d", len(g.Stops))
	}
	cur := sc.Entities[4].Shape.(*shape.Cursor)

	rec := render.NewRecorder(100, 100)
	sc.Frame(rec, motion.NewEnv(100, 100, 30, 40, 1))
	if !cur.Visible() || cur.Pos != geom.Pt(30, 40) {
		t.Fatalf("cursor visible = %v at %v", cur.Visible(), cur.Pos)
	}
	// 3 слоя + лицевой текст
	if n := rec.Count("FillText"); n != 4 {
		t.Fatalf("FillText = %d, want 4", n)
	}

	sc.Frame(rec, motion.NewEnv(100, 100, math.NaN(), math.NaN(), 1))
	if cur.Visible() {
		t.Fatal("cursor should hide when the pointer leaves")
	}
}

func TestBuildHonoursExplicitZeroes(t *testing.T) {
	def, err := defs.ParseScene([]byte(`{
		"shapes": [
			{"kind": "circle", "x": 50, "y": 50, "radius": 5,
			 "behaviors": [{"type": "bounce", "velocity": [0, 0]}]},
			{"kind": "circle", "x": 50, "y": 20, "radius": 5,
			 "behaviors": [{"type": "gravity", "ground": 0}]}
		]
	}`))
	if err != nil {
		t.Fatal(err)
	}
	sc, err := Build(def, utils.NewPRNGService(1), Options{Width: 100, Height: 100})
	if err != nil {
		t.Fatal(err)
	}
	rec := render.NewRecorder(100, 100)
	for i := 0; i < 200; i++ {
		sc.Frame(rec, motion.NewEnv(100, 100, math.NaN(), math.NaN(), 1))
	}
	still := sc.Entities[0].Shape.(motion.Movable).Kinematics()
	if still.Pos != geom.Pt(50, 50) || still.Vel != (geom.Point{}) {
		t.Fatalf("zero-velocity bounce moved: %+v", still)
	}
	top := sc.Entities[1].Shape.(motion.Movable).Kinematics()
	if top.Pos.Y != -5 || top.Vel.Y != 0 {
		t.Fatalf("ground 0 body = %+v, want resting at y=-5", top)
	}
}
