// pkg/render/css.go
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"go-canvas-shapes/pkg/utils"
)

// ParseColor resolves a CSS colour: hex (#rgb, #rgba, #rrggbb,
// #rrggbbaa), rgb()/rgba(), hsl()/hsla(), a named colour or
// "transparent". Both legacy comma syntax and the space/slash syntax
// are accepted.
func ParseColor(s string) (RGBA, error) {
	src := strings.ToLower(strings.TrimSpace(s))
	switch {
	case src == "":
		return RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	case src == "transparent":
		return RGBA{}, nil
	case strings.HasPrefix(src, "#"):
		return parseHex(src[1:], s)
	case strings.HasPrefix(src, "rgb"):
		return parseFunc(src, s, parseRGBArgs)
	case strings.HasPrefix(src, "hsl"):
		return parseFunc(src, s, parseHSLArgs)
	}
	if hex, ok := namedColors[src]; ok {
		return parseHex(hex[1:], s)
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(h, orig string) (RGBA, error) {
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return RGBA{
		R: float64(v >> 24 & 0xff),
		G: float64(v >> 16 & 0xff),
		B: float64(v >> 8 & 0xff),
		A: float64(v&0xff) / 255,
	}, nil
}

type argsParser func(args []string) (RGBA, bool)

func parseFunc(src, orig string, parse argsParser) (RGBA, error) {
	open := strings.IndexByte(src, '(')
	if open < 0 || !strings.HasSuffix(src, ")") {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	name := strings.TrimSpace(src[:open])
	switch name {
	case "rgb", "rgba", "hsl", "hsla":
	default:
		return RGBA{}, fmt.Errorf("%w: unknown function %q", ErrInvalidColor, name)
	}
	args, ok := splitArgs(src[open+1 : len(src)-1])
	if !ok || (len(args) != 3 && len(args) != 4) {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	c, ok := parse(args)
	if !ok {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, orig)
	}
	return c, nil
}

// splitArgs accepts "1, 2, 3, 0.5", "1 2 3 / 0.5" and mixes of both.
// Empty comma fields and a "/" anywhere but before the last argument
// are rejected.
func splitArgs(body string) ([]string, bool) {
	var tokens []string
	for _, field := range strings.Split(body, ",") {
		parts := strings.Fields(strings.ReplaceAll(field, "/", " / "))
		if len(parts) == 0 {
			return nil, false
		}
		tokens = append(tokens, parts...)
	}
	args := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		if tok != "/" {
			args = append(args, tok)
			continue
		}
		if i == 0 || i != len(tokens)-2 {
			return nil, false
		}
	}
	return args, true
}

// parseFinite is strconv.ParseFloat restricted to plain decimal
// notation: no nan, inf or hex floats.
func parseFinite(s string) (float64, bool) {
	if s == "" || strings.Trim(s, "0123456789+-.eE") != "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseRGBArgs(args []string) (RGBA, bool) {
	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, ok := parseNumberOrPercent(args[i], 255)
		if !ok {
			return RGBA{}, false
		}
		ch[i] = utils.Clamp(v, 0, 255)
	}
	a, ok := parseAlpha(args)
	if !ok {
		return RGBA{}, false
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, true
}

func parseHSLArgs(args []string) (RGBA, bool) {
	h, ok := parseHue(args[0])
	if !ok {
		return RGBA{}, false
	}
	s, ok1 := parsePercent(args[1])
	l, ok2 := parsePercent(args[2])
	if !ok1 || !ok2 {
		return RGBA{}, false
	}
	a, ok := parseAlpha(args)
	if !ok {
		return RGBA{}, false
	}
	c := colorful.Hsl(h, utils.Clamp(s, 0, 1), utils.Clamp(l, 0, 1)).Clamped()
	return RGBA{
		R: math.Round(c.R * 255),
		G: math.Round(c.G * 255),
		B: math.Round(c.B * 255),
		A: a,
	}, true
}

func parseAlpha(args []string) (float64, bool) {
	if len(args) < 4 {
		return 1, true
	}
	v, ok := parseNumberOrPercent(args[3], 1)
	if !ok {
		return 0, false
	}
	return utils.Clamp(v, 0, 1), true
}

// parseNumberOrPercent reads "12.5" as is and "50%" as half of full.
func parseNumberOrPercent(s string, full float64) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		v, ok := parseFinite(strings.TrimSuffix(s, "%"))
		if !ok {
			return 0, false
		}
		return v / 100 * full, true
	}
	return parseFinite(s)
}

func parsePercent(s string) (float64, bool) {
	v, ok := parseFinite(strings.TrimSuffix(s, "%"))
	if !ok {
		return 0, false
	}
	return v / 100, true
}

// parseHue returns degrees in [0, 360).
func parseHue(s string) (float64, bool) {
	units := []struct {
		suffix string
		scale  float64
	}{
		{"deg", 1},
		{"grad", 0.9},
		{"rad", 180 / math.Pi},
		{"turn", 360},
	}
	scale := 1.0
	for _, u := range units {
		if strings.HasSuffix(s, u.suffix) {
			s = strings.TrimSuffix(s, u.suffix)
			scale = u.scale
			break
		}
	}
	v, ok := parseFinite(s)
	if !ok {
		return 0, false
	}
	v = math.Mod(v*scale, 360)
	if v < 0 {
		v += 360
	}
	return v, true
}
