// Package ephem provides sidereal ecliptic longitudes for chart computation.
package ephem

import (
	"errors"
	"time"

	"github.com/astronihar/advpoints/internal/astro"
)

// Body identifies a base longitude source.
type Body int

const (
	Sun Body = iota
	Moon
	MeanNode // Rahu
)

// String returns the body name.
func (b Body) String() string {
	switch b {
	case Sun:
		return "Sun"
	case Moon:
		return "Moon"
	case MeanNode:
		return "MeanNode"
	default:
		return "Unknown"
	}
}

// ErrUnknownBody is returned when a provider is asked for a body it does
// not carry.
var ErrUnknownBody = errors.New("unknown body")

// Provider defines the interface for longitude sources. Longitudes are
// sidereal (Lahiri) ecliptic degrees.
type Provider interface {
	// Name returns the provider name for display/logging.
	Name() string

	// Longitude returns the sidereal longitude of a body at a time.
	Longitude(body Body, t time.Time) (float64, error)

	// Ascendant returns the sidereal longitude rising on the eastern
	// horizon for an observer at a time.
	Ascendant(t time.Time, obs astro.Observer) (float64, error)
}

// AssumedSunriseDeg is the simplified sunrise reference: 6:00 AM taken as
// 90° of ecliptic. Callers wanting a real sunrise computation supply their
// own value to jyotish.Input.
const AssumedSunriseDeg = 90.0

// WeekdayIndex maps a time to the 0=Monday .. 6=Sunday convention used by
// the portion tables. Go's time package counts from Sunday instead.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
