// pkg/utils/math.go
package utils

import "math"

// Clamp limits v to the range [lo, hi]. If lo > hi, hi wins.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// Lerp performs standard linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle wraps angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	if angle >= -math.Pi && angle <= math.Pi {
		return angle
	}
	angle = math.Mod(angle+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle - math.Pi
}

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
