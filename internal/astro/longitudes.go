package astro

import (
	"math"
	"time"
)

// SunTropicalLongitude calculates the apparent ecliptic longitude of the Sun
// in degrees, tropical frame. Uses a simplified solar ephemeris based on the
// Astronomical Almanac; accuracy ~0.01 degrees.
func SunTropicalLongitude(t time.Time) float64 {
	jd := JulianDate(t)

	// Julian centuries from J2000.0
	T := (jd - 2451545.0) / 36525.0

	// Mean longitude of the Sun (degrees)
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	L0 = Normalize(L0)

	// Mean anomaly of the Sun (degrees)
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T
	Mrad := degToRad(Normalize(M))

	// Equation of center (degrees)
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	// True longitude, then apparent (aberration and nutation)
	sunLon := L0 + C
	omega := 125.04 - 1934.136*T
	return Normalize(sunLon - 0.00569 - 0.00478*math.Sin(degToRad(omega)))
}

// MoonTropicalLongitude calculates the geocentric ecliptic longitude of the
// Moon in degrees, tropical frame. Medium-precision truncated Meeus-style
// series using the dominant periodic terms; good to a few arcminutes.
func MoonTropicalLongitude(t time.Time) float64 {
	d := JulianDate(t) - 2451545.0 // days since J2000.0

	// Fundamental arguments, deg/day linear rates
	Lprime := Normalize(218.3164477 + 13.17639648*d) // mean longitude of the Moon
	M := Normalize(357.5291092 + 0.98560028*d)       // mean anomaly of the Sun
	Mm := Normalize(134.9633964 + 13.06499295*d)     // mean anomaly of the Moon
	D := Normalize(297.8501921 + 12.19074912*d)      // mean elongation from the Sun
	F := Normalize(93.2720950 + 13.22935024*d)       // argument of latitude

	Mr := degToRad(M)
	Mmr := degToRad(Mm)
	Dr := degToRad(D)
	Fr := degToRad(F)

	lon := Lprime +
		6.289*math.Sin(Mmr) +
		1.274*math.Sin(2*Dr-Mmr) +
		0.658*math.Sin(2*Dr) +
		0.214*math.Sin(2*Mmr) -
		0.186*math.Sin(Mr) -
		0.114*math.Sin(2*Fr)

	return Normalize(lon)
}

// MeanNodeLongitude calculates the tropical longitude of the Moon's mean
// ascending node (Rahu) in degrees.
func MeanNodeLongitude(t time.Time) float64 {
	T := (JulianDate(t) - 2451545.0) / 36525.0
	return Normalize(125.04452 - 1934.136261*T)
}

// MeanObliquity calculates the mean obliquity of the ecliptic in degrees.
func MeanObliquity(t time.Time) float64 {
	T := (JulianDate(t) - 2451545.0) / 36525.0
	return 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
}

// LahiriAyanamsa approximates the Lahiri (Chitrapaksha) ayanamsa in degrees:
// the offset subtracted from tropical longitudes to obtain sidereal ones.
// Linear model anchored at J2000 with the mean precession rate of ~50.29″/yr;
// within ~0.01° of the published values for the 1950-2050 span.
func LahiriAyanamsa(t time.Time) float64 {
	years := (JulianDate(t) - 2451545.0) / 365.25
	return 23.85675 + years*(50.2877/3600)
}

// TropicalAscendant calculates the tropical ecliptic longitude of the
// ascendant (the degree rising on the eastern horizon) for an observer,
// from local sidereal time and the obliquity of the ecliptic.
func TropicalAscendant(t time.Time, obs Observer) float64 {
	ramc := degToRad(LocalSiderealTime(t, obs.LonDeg))
	eps := degToRad(MeanObliquity(t))
	lat := degToRad(obs.LatDeg)

	asc := math.Atan2(math.Cos(ramc), -(math.Sin(ramc)*math.Cos(eps) + math.Tan(lat)*math.Sin(eps)))
	return Normalize(radToDeg(asc))
}
