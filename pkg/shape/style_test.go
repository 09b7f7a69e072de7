package shape

import (
	"image/color"
	"testing"

	"go-canvas-shapes/pkg/geom"
	"go-canvas-shapes/pkg/motion"
	"go-canvas-shapes/pkg/render"
)

func fillColor(t *testing.T, rec *render.Recorder) color.Color {
	t.Helper()
	cmd, ok := rec.Last("Fill")
	if !ok {
		t.Fatalf("nothing filled: %v", rec.Ops())
	}
	return render.FirstColor(cmd.Paint)
}

func sameColor(a, b color.Color) bool {
	return render.FromColor(a) == render.FromColor(b)
}

func TestHighlightRecolorsAndReverts(t *testing.T) {
	c, _ := NewCircle(CircleOptions{X: 100, Y: 100, Radius: 10, Style: Filled(red).WithHighlight(blue)})
	collider := motion.DefaultCollider()
	rec := render.NewRecorder(200, 200)

	CollideAndHighlight(c, geom.Pt(110, 100), collider)
	c.Draw(rec)
	if !c.Highlighted() || !sameColor(fillColor(t, rec), blue) {
		t.Fatal("pointer nearby should switch to the highlight color")
	}

	rec.Reset()
	CollideAndHighlight(c, geom.Pt(500, 500), collider)
	c.Draw(rec)
	if c.Highlighted() || !sameColor(fillColor(t, rec), red) {
		t.Fatal("pointer far away should restore the original color")
	}
}

func TestStrokeDropsShadow(t *testing.T) {
	sh := render.Shadow{Color: color.Black, Blur: 4, OffsetX: 2, OffsetY: 2}
	c, _ := NewCircle(CircleOptions{X: 50, Y: 50, Style: Filled(red).WithStroke(blue, 2).WithShadow(sh)})
	rec := render.NewRecorder(100, 100)
	c.Draw(rec)

	var shadowOnStroke bool
	var current render.Shadow
	for _, cmd := range rec.Commands {
		switch cmd.Op {
		case "SetShadow":
			current = render.Shadow{Color: cmd.Color, Blur: cmd.Args[0], OffsetX: cmd.Args[1], OffsetY: cmd.Args[2]}
		case "Stroke":
			shadowOnStroke = current.Enabled()
		}
	}
	if shadowOnStroke {
		t.Fatal("stroke pass should not cast a second shadow")
	}
	if rec.Count("Fill") != 1 || rec.Count("Stroke") != 1 {
		t.Fatalf("ops = %v", rec.Ops())
	}
}

func TestStrokeOnlyStyle(t *testing.T) {
	c, _ := NewCircle(CircleOptions{X: 50, Y: 50, Style: Outlined(blue, 3)})
	rec := render.NewRecorder(100, 100)
	c.Draw(rec)
	if rec.Count("Fill") != 0 {
		t.Fatalf("outlined circle filled: %v", rec.Ops())
	}
	st, _ := rec.Last("Stroke")
	if st.Args[0] != 3 {
		t.Fatalf("line width = %v", st.Args[0])
	}
}

func TestMoverOperations(t *testing.T) {
	v := geom.Pt(3, 0)
	c, _ := NewCircle(CircleOptions{X: 95, Y: 50, Radius: 5, Velocity: &v})
	c.MoveAndBounce(100, 100)
	if c.Position().X != 95 || c.Body.Vel.X != -3 {
		t.Fatalf("bounce: %+v", c.Body)
	}

	pulse := &motion.Pulse{Proximity: 50, Max: 20, Grow: 1, Shrink: 1}
	c.UpdateSizeForPointer(c.Position(), pulse)
	if c.Radius() != 6 {
		t.Fatalf("radius after grow = %v", c.Radius())
	}

	o := &motion.Orbit{Center: geom.Pt(50, 50), RadiusX: 10, RadiusY: 10, AngularVelocity: 0}
	c.AnimateCircular(o)
	if c.Position() != geom.Pt(60, 50) {
		t.Fatalf("orbit position = %+v", c.Position())
	}

	c.MoveTo(geom.Pt(20, 20))
	c.ApplyGravity(motion.DefaultGravity(), 100, 1)
	if c.Body.Vel.Y <= 0 || c.Position().Y <= 20 {
		t.Fatalf("gravity did not pull down: %+v", c.Body)
	}
}
