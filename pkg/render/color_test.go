package render

import (
	"errors"
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#000000", RGBA{0, 0, 0, 1}},
		{"#fff", RGBA{255, 255, 255, 1}},
		{"#FF8000", RGBA{255, 128, 0, 1}},
		{"#11223380", RGBA{0x11, 0x22, 0x33, 128.0 / 255}},
		{"#f008", RGBA{255, 0, 0, 136.0 / 255}},
		{"rgb(10, 20, 30)", RGBA{10, 20, 30, 1}},
		{"rgba(10,20,30,0.5)", RGBA{10, 20, 30, 0.5}},
		{"rgb(100% 0% 50% / 25%)", RGBA{255, 0, 127.5, 0.25}},
		{"rgb(300, -5, 20)", RGBA{255, 0, 20, 1}},
		{"hsl(0, 100%, 50%)", RGBA{255, 0, 0, 1}},
		{"hsl(120deg 100% 25%)", RGBA{0, 128, 0, 1}},
		{"hsla(0.5turn, 100%, 50%, 0.3)", RGBA{0, 255, 255, 0.3}},
		{"  Tomato ", RGBA{255, 99, 71, 1}},
		{"transparent", RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if !closeRGBA(got, tt.want) {
				t.Fatalf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#ggg", "rgb(1,2)", "rgb(a,b,c)", "hsl(10, x, 5%)", "notacolor", "cmyk(1,2,3,4)",
		"rgb(nan, 0, 0)", "rgb(NaN 0 0)", "rgb(inf,0,0)", "rgb(-Inf, 0, 0)", "rgb(0x10, 0, 0)",
		"hsl(nan, 50%, 50%)", "hsl(infdeg, 50%, 50%)", "hsl(0, nan%, 50%)", "rgba(1,2,3,nan)",
		"rgba(1,2,3,)", "rgb(,1,2,3)", "rgb(1,,2,3)", "rgb(1 2 3 /)", "rgb(/ 1 2 3)", "rgb(1 / 2 3)"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) err = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestToHex(t *testing.T) {
	if got := ToHex(color.RGBA{0x12, 0xab, 0x00, 0xff}); got != "#12ab00" {
		t.Fatalf("ToHex = %q", got)
	}
	if got := ToHex(MustParseColor("rebeccapurple")); got != "#663399" {
		t.Fatalf("ToHex = %q", got)
	}
}

func TestRandomHexBetweenDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		got, err := RandomHexBetween(rng, "#000000", "#000000")
		if err != nil {
			t.Fatal(err)
		}
		if got != "#000000" {
			t.Fatalf("got %q, want #000000", got)
		}
	}
}

func TestRandomHexBetweenStaysInChannelRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		got, err := RandomHexBetween(rng, "rgb(10, 200, 50)", "#2080ff")
		if err != nil {
			t.Fatal(err)
		}
		c := MustParseColor(got)
		if c.R < 10 || c.R > 0x20 || c.G < 0x80 || c.G > 200 || c.B < 50 || c.B > 255 {
			t.Fatalf("%s outside per-channel range", got)
		}
	}
}

func TestRandomHexBetweenInvalid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := RandomHexBetween(rng, "nope", "#000"); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("err = %v", err)
	}
}

func TestRandomHex(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		h := RandomHex(rng)
		if len(h) != 7 || h[0] != '#' {
			t.Fatalf("RandomHex = %q", h)
		}
		if _, err := ParseColor(h); err != nil {
			t.Fatalf("RandomHex produced unparsable %q", h)
		}
	}
}

func TestIsDark(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#000000", true},
		{"#ffffff", false},
		{"navy", true},
		{"yellow", false},
		{"#808080", false},
		{"#7f7f7f", true},
	}
	for _, tt := range tests {
		if got := IsDark(MustParseColor(tt.in)); got != tt.want {
			t.Errorf("IsDark(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	d := Distance(MustParseColor("#000"), MustParseColor("#fff"))
	if math.Abs(d-math.Sqrt(3*255*255)) > 1e-9 {
		t.Fatalf("Distance = %v", d)
	}
	if Distance(color.White, color.White) != 0 {
		t.Fatal("Distance of equal colors must be 0")
	}
}

func TestDarkenAndLighten(t *testing.T) {
	if got := DarkenColor(color.RGBA{200, 100, 50, 255}); got != (color.NRGBA{100, 50, 25, 255}) {
		t.Fatalf("DarkenColor = %+v", got)
	}
	if got := Lighten(color.Black, 1); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatalf("Lighten = %+v", got)
	}
	if got := WithAlpha(color.White, 0.5); got.A != 128 {
		t.Fatalf("WithAlpha = %+v", got)
	}
}

func closeRGBA(a, b RGBA) bool {
	const eps = 0.51
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps && math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < 1e-3
}
