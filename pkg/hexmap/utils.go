// pkg/hexmap/utils.go
package hexmap

import "math"

// Константа √3 для вычислений
const Sqrt3 = 1.7320508075688772

func cubeRound(x, y, z float64) (rx, ry, rz int) {
	xf := math.Round(x)
	yf := math.Round(y)
	zf := math.Round(z)
	xd := math.Abs(xf - x)
	yd := math.Abs(yf - y)
	zd := math.Abs(zf - z)
	if xd > yd && xd > zd {
		xf = -yf - zf
	} else if yd > zd {
		yf = -xf - zf
	} else {
		zf = -xf - yf
	}
	return int(xf), int(yf), int(zf)
}

func axialRound(q, r float64) Hex {
	x, _, z := cubeRound(q, -q-r, r)
	return Hex{Q: x, R: z}
}
