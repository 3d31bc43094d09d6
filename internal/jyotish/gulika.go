package jyotish

import (
	"fmt"
	"math"

	"github.com/astronihar/advpoints/internal/astro"
)

// The daylight half of the day (720 minutes) divides into 8 portions of
// 90 minutes each, ruled by the weekday lords. Gulika and Mandi rise at
// the start of Saturn's portion; the tables give that portion's ordinal
// per weekday, 0=Monday through 6=Sunday.
var (
	gulikaPortions = [7]int{7, 6, 5, 4, 3, 2, 1}
	mandiPortions  = [7]int{6, 5, 4, 3, 2, 1, 0}
)

// portionMinutes is the span of one day-portion: 720/8 minutes.
const portionMinutes = 720.0 / 8

// Gulika calculates the longitude of Gulika for a weekday (0=Monday) and
// the ecliptic degree at sunrise.
func Gulika(weekday int, sunriseDeg float64) (float64, error) {
	return portionPoint(gulikaPortions, weekday, sunriseDeg)
}

// Mandi calculates the longitude of Mandi for a weekday (0=Monday) and
// the ecliptic degree at sunrise.
func Mandi(weekday int, sunriseDeg float64) (float64, error) {
	return portionPoint(mandiPortions, weekday, sunriseDeg)
}

// portionPoint advances the sunrise degree by the weekday's portion offset,
// at the mean rate of 1° of ecliptic motion per 4 minutes.
func portionPoint(portions [7]int, weekday int, sunriseDeg float64) (float64, error) {
	if weekday < 0 || weekday > 6 {
		return 0, fmt.Errorf("weekday %d outside 0-6: %w", weekday, astro.ErrInvalidInput)
	}
	if math.IsNaN(sunriseDeg) || math.IsInf(sunriseDeg, 0) {
		return 0, fmt.Errorf("sunrise degree %v: %w", sunriseDeg, astro.ErrInvalidInput)
	}

	offsetMin := float64(portions[weekday]) * portionMinutes
	return astro.Normalize(sunriseDeg + offsetMin/4), nil
}
