// Package jyotish computes Vedic special points (Gulika, Mandi, Bhrigu Bindu
// and the sphuta family) from a snapshot of base ecliptic longitudes.
package jyotish

import (
	"github.com/astronihar/advpoints/internal/astro"
)

// BaseLongitudes holds the sidereal longitudes a sphuta formula can draw on.
// All values in degrees; formulas normalize through the decoder, so sums
// outside [0, 360) are fine.
type BaseLongitudes struct {
	Sun    float64
	Moon   float64
	Lagna  float64
	Rahu   float64
	Gulika float64
	Mandi  float64
}

// Formula is one named entry in the sphuta catalog: a pure linear
// combination of base longitudes yielding a raw degree.
type Formula struct {
	Name   string
	Degree func(b BaseLongitudes) float64
}

// Catalog is the authoritative sphuta contract, in display order.
// Yoga Sphuta and Tithi Sphuta share a formula; Avayoga Sphuta is the
// complement of the Sun+Moon sum, not another additive combination.
var Catalog = []Formula{
	{"Bhrigu Bindu", func(b BaseLongitudes) float64 { return BhriguBindu(b.Moon, b.Rahu) }},
	{"Prana Sphuta", func(b BaseLongitudes) float64 { return PranaSphuta(b.Lagna, b.Sun, b.Moon) }},
	{"Deha Sphuta", func(b BaseLongitudes) float64 { return DehaSphuta(b.Lagna, b.Sun, b.Moon) }},
	{"Mrityu Sphuta", func(b BaseLongitudes) float64 { return MrityuSphuta(b.Lagna, b.Sun, b.Moon) }},
	{"Tithi Sphuta", func(b BaseLongitudes) float64 { return TithiSphuta(b.Sun, b.Moon) }},
	{"Chatusphuta", func(b BaseLongitudes) float64 { return Chatusphuta(b.Lagna, b.Sun, b.Moon, b.Gulika) }},
	{"PanchaSphuta", func(b BaseLongitudes) float64 { return PanchaSphuta(b.Lagna, b.Sun, b.Moon, b.Gulika, b.Mandi) }},
	{"Yoga Sphuta", func(b BaseLongitudes) float64 { return YogaSphuta(b.Sun, b.Moon) }},
	{"Avayoga Sphuta", func(b BaseLongitudes) float64 { return AvayogaSphuta(b.Sun, b.Moon) }},
}

// BhriguBindu is the midpoint of Moon and Rahu.
func BhriguBindu(moonDeg, rahuDeg float64) float64 {
	return (moonDeg + rahuDeg) / 2
}

// PranaSphuta is Lagna + Sun + Moon.
func PranaSphuta(lagnaDeg, sunDeg, moonDeg float64) float64 {
	return lagnaDeg + sunDeg + moonDeg
}

// DehaSphuta is Lagna + Moon − Sun.
func DehaSphuta(lagnaDeg, sunDeg, moonDeg float64) float64 {
	return lagnaDeg + moonDeg - sunDeg
}

// MrityuSphuta is Lagna + Sun − Moon.
func MrityuSphuta(lagnaDeg, sunDeg, moonDeg float64) float64 {
	return lagnaDeg + sunDeg - moonDeg
}

// TithiSphuta is Sun + Moon.
func TithiSphuta(sunDeg, moonDeg float64) float64 {
	return sunDeg + moonDeg
}

// Chatusphuta is Lagna + Sun + Moon + Gulika.
func Chatusphuta(lagnaDeg, sunDeg, moonDeg, gulikaDeg float64) float64 {
	return lagnaDeg + sunDeg + moonDeg + gulikaDeg
}

// PanchaSphuta is Lagna + Sun + Moon + Gulika + Mandi.
func PanchaSphuta(lagnaDeg, sunDeg, moonDeg, gulikaDeg, mandiDeg float64) float64 {
	return lagnaDeg + sunDeg + moonDeg + gulikaDeg + mandiDeg
}

// YogaSphuta is Sun + Moon, same combination as TithiSphuta.
func YogaSphuta(sunDeg, moonDeg float64) float64 {
	return TithiSphuta(sunDeg, moonDeg)
}

// AvayogaSphuta is the complement 360 − ((Sun + Moon) mod 360).
// When the sum reduces to exactly 0 the result is 360, which the
// decoder wraps back to 0° Aries.
func AvayogaSphuta(sunDeg, moonDeg float64) float64 {
	return 360 - astro.Normalize(sunDeg+moonDeg)
}
