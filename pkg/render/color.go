// pkg/render/color.go
package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"go-canvas-shapes/pkg/utils"
)

// ErrInvalidColor is returned when a CSS colour string cannot be parsed.
var ErrInvalidColor = errors.New("render: invalid color")

// RGBA is a resolved colour: channels in 0..255, alpha in 0..1.
type RGBA struct {
	R, G, B float64
	A       float64
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to an 8-bit non-premultiplied colour.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A * 255),
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(utils.Clamp(v, 0, 255)))
}

// FromColor resolves any image/color value into RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: float64(n.R), G: float64(n.G), B: float64(n.B), A: float64(n.A) / 255}
}

// MustParseColor is ParseColor for literals known to be valid.
func MustParseColor(s string) RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ToHex formats c as a 6-digit #rrggbb string; alpha is dropped.
func ToHex(c color.Color) string {
	rgba := FromColor(c)
	return colorful.Color{R: rgba.R / 255, G: rgba.G / 255, B: rgba.B / 255}.Clamped().Hex()
}

// RandomHex returns a uniformly random #rrggbb colour.
func RandomHex(rng *rand.Rand) string {
	return fmt.Sprintf("#%06x", rng.Intn(1<<24))
}

// RandomHexBetween resolves both CSS colours and interpolates each of
// r, g and b with its own random factor in [0, 1].
func RandomHexBetween(rng *rand.Rand, from, to string) (string, error) {
	a, err := ParseColor(from)
	if err != nil {
		return "", err
	}
	b, err := ParseColor(to)
	if err != nil {
		return "", err
	}
	mixed := RGBA{
		R: math.Round(utils.Lerp(a.R, b.R, rng.Float64())),
		G: math.Round(utils.Lerp(a.G, b.G, rng.Float64())),
		B: math.Round(utils.Lerp(a.B, b.B, rng.Float64())),
		A: 1,
	}
	return ToHex(mixed), nil
}

// IsDark classifies c by YIQ luminance against the 128 threshold.
func IsDark(c color.Color) bool {
	v := FromColor(c)
	return (v.R*299+v.G*587+v.B*114)/1000 < 128
}

// Distance is the Euclidean distance between two colours in RGB space.
func Distance(a, b color.Color) float64 {
	x, y := FromColor(a), FromColor(b)
	dr, dg, db := x.R-y.R, x.G-y.G, x.B-y.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.Color) color.NRGBA {
	v := FromColor(c)
	return RGBA{R: v.R * 0.5, G: v.G * 0.5, B: v.B * 0.5, A: v.A}.NRGBA()
}

// Lighten moves c towards white by t in [0, 1].
func Lighten(c color.Color, t float64) color.NRGBA {
	v := FromColor(c)
	return RGBA{
		R: utils.Lerp(v.R, 255, t),
		G: utils.Lerp(v.G, 255, t),
		B: utils.Lerp(v.B, 255, t),
		A: v.A,
	}.NRGBA()
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.Color, a float64) color.NRGBA {
	v := FromColor(c)
	v.A = utils.Clamp(a, 0, 1)
	return v.NRGBA()
}
