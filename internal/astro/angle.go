// Package astro provides ecliptic angle math and zodiac/nakshatra decoding.
package astro

import (
	"errors"
	"math"
)

// ErrInvalidInput is returned for non-finite degrees and other values
// outside a function's domain.
var ErrInvalidInput = errors.New("invalid input")

// Normalize reduces an angle to the canonical [0, 360) range.
// True modulo: negative inputs land in [0, 360), not (-360, 0].
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// finite reports whether deg is a usable degree value (not NaN or ±Inf).
func finite(deg float64) bool {
	return !math.IsNaN(deg) && !math.IsInf(deg, 0)
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
