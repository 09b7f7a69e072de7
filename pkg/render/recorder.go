// pkg/render/recorder.go
package render

import (
	"image"
	"image/color"
	"sort"
)

// Command is one recorded Surface call.
type Command struct {
	Op    string
	Args  []float64
	Text  string
	Paint Paint
	Color color.Color
}

// Recorder is a Surface that paints nothing and records every call.
// MeasureText uses a fixed advance so layouts stay deterministic.
type Recorder struct {
	W, H     int
	Commands []Command

	state surfaceState
	stack []surfaceState
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns a recorder reporting a w x h surface.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h, state: defaultState()}
}

func (r *Recorder) add(op string, args ...float64) {
	r.Commands = append(r.Commands, Command{Op: op, Args: args})
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

// Count returns how many commands with the given op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Ops lists the recorded ops in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Commands))
	for i, c := range r.Commands {
		ops[i] = c.Op
	}
	return ops
}

// Histogram counts commands per op, sorted by op name.
func (r *Recorder) Histogram() []OpCount {
	m := make(map[string]int)
	for _, c := range r.Commands {
		m[c.Op]++
	}
	out := make([]OpCount, 0, len(m))
	for op, n := range m {
		out = append(out, OpCount{Op: op, N: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Op < out[j].Op })
	return out
}

// OpCount is a Histogram row.
type OpCount struct {
	Op string
	N  int
}

// Last returns the most recent command with the given op.
func (r *Recorder) Last(op string) (Command, bool) {
	for i := len(r.Commands) - 1; i >= 0; i-- {
		if r.Commands[i].Op == op {
			return r.Commands[i], true
		}
	}
	return Command{}, false
}

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.state)
	r.add("Save")
}

func (r *Recorder) Restore() {
	if n := len(r.stack); n > 0 {
		r.state = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
	r.add("Restore")
}

func (r *Recorder) Clear(c color.Color) {
	r.Commands = append(r.Commands, Command{Op: "Clear", Color: c})
}

func (r *Recorder) BeginPath()          { r.add("BeginPath") }
func (r *Recorder) MoveTo(x, y float64) { r.add("MoveTo", x, y) }
func (r *Recorder) LineTo(x, y float64) { r.add("LineTo", x, y) }

func (r *Recorder) QuadraticTo(cx, cy, x, y float64) {
	r.add("QuadraticTo", cx, cy, x, y)
}

func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.add("CubicTo", c1x, c1y, c2x, c2y, x, y)
}

func (r *Recorder) Arc(x, y, rad, start, end float64) { r.add("Arc", x, y, rad, start, end) }
func (r *Recorder) Rect(x, y, w, h float64)           { r.add("Rect", x, y, w, h) }
func (r *Recorder) ClosePath()                        { r.add("ClosePath") }

func (r *Recorder) Fill() {
	r.Commands = append(r.Commands, Command{Op: "Fill", Paint: r.state.fill})
}

func (r *Recorder) Stroke() {
	r.Commands = append(r.Commands, Command{Op: "Stroke", Paint: r.state.stroke, Args: []float64{r.state.lineWidth}})
}

func (r *Recorder) SetFill(p Paint) {
	r.state.fill = p
	r.Commands = append(r.Commands, Command{Op: "SetFill", Paint: p})
}

func (r *Recorder) SetStroke(p Paint) {
	r.state.stroke = p
	r.Commands = append(r.Commands, Command{Op: "SetStroke", Paint: p})
}

func (r *Recorder) SetLineWidth(w float64) {
	r.state.lineWidth = w
	r.add("SetLineWidth", w)
}

func (r *Recorder) SetShadow(s Shadow) {
	r.state.shadow = s
	r.Commands = append(r.Commands, Command{Op: "SetShadow", Color: s.Color, Args: []float64{s.Blur, s.OffsetX, s.OffsetY}})
}

func (r *Recorder) SetFont(size float64) {
	r.state.fontSize = size
	r.add("SetFont", size)
}

func (r *Recorder) SetTextAlign(a TextAlign) {
	r.state.align = a
	r.add("SetTextAlign", float64(a.Horizontal), float64(a.Vertical))
}

func (r *Recorder) FillText(s string, x, y float64) {
	r.Commands = append(r.Commands, Command{Op: "FillText", Text: s, Args: []float64{x, y}, Paint: r.state.fill})
}

func (r *Recorder) StrokeText(s string, x, y float64) {
	r.Commands = append(r.Commands, Command{Op: "StrokeText", Text: s, Args: []float64{x, y}, Paint: r.state.stroke})
}

// MeasureText reports 0.6em per rune and 1em height.
func (r *Recorder) MeasureText(s string) (float64, float64) {
	size := r.state.fontSize
	return float64(len([]rune(s))) * size * 0.6, size
}

func (r *Recorder) DrawImage(img image.Image, x, y, w, h float64) {
	r.add("DrawImage", x, y, w, h)
}
