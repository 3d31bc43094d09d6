package astro

import (
	"math"
	"time"
)

// Observer is a ground location for which the ascendant is computed.
type Observer struct {
	LatDeg float64 // latitude in degrees, north positive
	LonDeg float64 // longitude in degrees, east positive
	Name   string  // optional site name
}

// JulianDate calculates the Julian Date for a given time.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// January/February count as months 13/14 of the previous year
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

// GreenwichMeanSiderealTime calculates GMST in degrees for a given UTC time,
// using the IAU 1982 formula.
func GreenwichMeanSiderealTime(t time.Time) float64 {
	jd := JulianDate(t)

	// Julian centuries since J2000.0
	T := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return Normalize(gmst)
}

// LocalSiderealTime calculates the Local Sidereal Time in degrees
// for a given UTC time and observer longitude.
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	return Normalize(GreenwichMeanSiderealTime(t) + lonDeg)
}
