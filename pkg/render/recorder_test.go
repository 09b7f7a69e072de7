package render

import (
	"image/color"
	"testing"
)

func TestRecorderCapturesCalls(t *testing.T) {
	r := NewRecorder(100, 50)
	r.Clear(color.Black)
	r.SetFill(SolidColor(color.White))
	r.BeginPath()
	r.Arc(10, 10, 5, 0, 1)
	r.Fill()
	r.SetFont(10)
	r.FillText("abc", 1, 2)

	want := []string{"Clear", "SetFill", "BeginPath", "Arc", "Fill", "SetFont", "FillText"}
	got := r.Ops()
	if len(got) != len(want) {
		t.Fatalf("ops = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ops = %v, want %v", got, want)
		}
	}
	fill, _ := r.Last("Fill")
	if fill.Paint != SolidColor(color.White) {
		t.Fatalf("fill paint = %#v", fill.Paint)
	}
	if w, h := r.MeasureText("abc"); w != 18 || h != 10 {
		t.Fatalf("MeasureText = %v x %v", w, h)
	}
	if r.Count("Arc") != 1 {
		t.Fatal("Count mismatch")
	}
	hist := r.Histogram()
	if hist[0].Op != "Arc" || hist[0].N != 1 {
		t.Fatalf("histogram = %+v", hist)
	}
	r.Reset()
	if len(r.Commands) != 0 {
		t.Fatal("Reset left commands")
	}
}

func TestRecorderSaveRestore(t *testing.T) {
	r := NewRecorder(1, 1)
	r.SetFill(SolidColor(color.White))
	r.Save()
	r.SetFill(SolidColor(color.Black))
	r.Restore()
	r.Fill()
	fill, _ := r.Last("Fill")
	if fill.Paint != SolidColor(color.White) {
		t.Fatalf("fill after restore = %#v", fill.Paint)
	}
}
