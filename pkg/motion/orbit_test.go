package motion

import (
	"math"
	"testing"

	"go-canvas-shapes/pkg/geom"
)

func TestOrbitCircleKeepsRadius(t *testing.T) {
	const R = 75.0
	o := &Orbit{Center: geom.Pt(200, 150), RadiusX: R, RadiusY: R, AngularVelocity: 0.037}
	b := Body{}
	for n := 1; n <= 5000; n++ {
		b = o.Step(b, Env{})
		if d := b.Pos.Dist(o.Center); math.Abs(d-R) > 1e-9 {
			t.Fatalf("tick %d: distance %v, want %v", n, d, R)
		}
	}
}

func TestOrbitEllipse(t *testing.T) {
	o := &Orbit{Center: geom.Pt(0, 0), RadiusX: 100, RadiusY: 20, AngularVelocity: math.Pi / 2}
	p := o.Advance()
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y-20) > 1e-9 {
		t.Fatalf("quarter turn = %+v, want (0,20)", p)
	}
	p = o.Advance()
	if math.Abs(p.X+100) > 1e-9 || math.Abs(p.Y) > 1e-9 {
		t.Fatalf("half turn = %+v, want (-100,0)", p)
	}
}

func TestOrbitAngleStaysWrapped(t *testing.T) {
	for _, w := range []float64{0.3, -0.3, 7.5, -12} {
		o := &Orbit{RadiusX: 10, RadiusY: 10, AngularVelocity: w}
		for n := 0; n < 1000; n++ {
			o.Advance()
			if o.Angle < -math.Pi || o.Angle > math.Pi {
				t.Fatalf("w=%v tick %d: angle %v outside [-pi, pi]", w, n, o.Angle)
			}
		}
	}
}

func TestApplyRunsBehaviorsInOrder(t *testing.T) {
	m := &fakeMovable{b: Body{Pos: geom.Pt(1, 1)}}
	double := BehaviorFunc(func(b Body, _ Env) Body { b.Pos = b.Pos.Scale(2); return b })
	shift := BehaviorFunc(func(b Body, _ Env) Body { b.Pos = b.Pos.Add(geom.Pt(1, 0)); return b })
	Apply(m, Env{}, double, shift)
	if m.b.Pos != geom.Pt(3, 2) {
		t.Fatalf("pos = %+v, want (3,2)", m.b.Pos)
	}
}

type fakeMovable struct{ b Body }

func (f *fakeMovable) Kinematics() Body     { return f.b }
func (f *fakeMovable) SetKinematics(b Body) { f.b = b }
