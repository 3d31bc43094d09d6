package astro

import (
	"fmt"
	"math"
)

// Sign is one of the 12 zodiac signs, each spanning a 30° arc.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// String returns the sign name.
func (s Sign) String() string {
	if s < 0 || int(s) >= len(signNames) {
		return "Unknown"
	}
	return signNames[s]
}

// Nakshatra is one of the 27 lunar mansions, each spanning 13°20′.
type Nakshatra int

const (
	Ashwini Nakshatra = iota
	Bharani
	Krittika
	Rohini
	Mrigashira
	Ardra
	Punarvasu
	Pushya
	Ashlesha
	Magha
	PurvaPhalguni
	UttaraPhalguni
	Hasta
	Chitra
	Swati
	Vishakha
	Anuradha
	Jyeshtha
	Mula
	PurvaAshadha
	UttaraAshadha
	Shravana
	Dhanishta
	Shatabhisha
	PurvaBhadrapada
	UttaraBhadrapada
	Revati
)

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha", "Mula",
	"Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// String returns the nakshatra name.
func (n Nakshatra) String() string {
	if n < 0 || int(n) >= len(nakshatraNames) {
		return "Unknown"
	}
	return nakshatraNames[n]
}

const (
	// NakshatraSpan is the arc of one nakshatra in degrees (13°20′).
	NakshatraSpan = 360.0 / 27.0

	// PadaSpan is the arc of one pada in degrees (3°20′).
	PadaSpan = 360.0 / 108.0
)

// Position is a decoded ecliptic longitude: sign, nakshatra, pada and
// the degree within the sign. Produced once per decode, never mutated.
type Position struct {
	Degree     float64 // normalized longitude, [0, 360)
	Sign       Sign
	Nakshatra  Nakshatra
	Pada       int     // 1-4
	SignDegree float64 // degree within the sign, [0, 30)
}

// Decode maps an ecliptic longitude to its sign, nakshatra and pada.
// The input is normalized first, so any real value is accepted.
// Non-finite input returns ErrInvalidInput.
func Decode(deg float64) (Position, error) {
	if !finite(deg) {
		return Position{}, fmt.Errorf("decode degree %v: %w", deg, ErrInvalidInput)
	}

	deg = Normalize(deg)

	signIdx := int(deg / 30)
	if signIdx > 11 {
		signIdx = 11 // guard against float rollover at the top of Pisces
	}

	nakIdx := int(deg / NakshatraSpan)
	if nakIdx > 26 {
		nakIdx = 26
	}

	// Remainder within the nakshatra, then quarter it. A single modulo
	// suffices here: reducing twice by the same span changes nothing.
	rem := math.Mod(deg, NakshatraSpan)
	pada := int(rem/PadaSpan) + 1
	if pada > 4 {
		pada = 4
	}

	return Position{
		Degree:     deg,
		Sign:       Sign(signIdx),
		Nakshatra:  Nakshatra(nakIdx),
		Pada:       pada,
		SignDegree: math.Mod(deg, 30),
	}, nil
}

// DMS renders the degree-within-sign as a degrees/minutes/seconds string.
// Each step truncates rather than rounds, so the seconds figure can sit
// up to one second below the rounded value. Output parity with existing
// consumers depends on this exact behavior.
func (p Position) DMS() string {
	d := int(p.SignDegree)
	m := int((p.SignDegree - float64(d)) * 60)
	s := int((((p.SignDegree - float64(d)) * 60) - float64(m)) * 60)
	return fmt.Sprintf("%d°%d′%d″", d, m, s)
}
