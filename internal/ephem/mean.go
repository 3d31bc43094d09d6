package ephem

import (
	"fmt"
	"time"

	"github.com/astronihar/advpoints/internal/astro"
)

// MeanProvider computes longitudes from low-precision analytic series:
// Meeus-style solar longitude, a truncated lunar series and the mean
// lunar node, shifted to the sidereal frame by a linear Lahiri ayanamsa.
// Good to a few arcminutes for the Sun and node, ~0.3° for the Moon.
// Not ephemeris-grade; swap in a Swiss Ephemeris-backed Provider where
// that matters.
type MeanProvider struct{}

// NewMeanProvider creates a mean-series provider.
func NewMeanProvider() *MeanProvider {
	return &MeanProvider{}
}

// Name implements Provider.
func (p *MeanProvider) Name() string {
	return "mean-series"
}

// Longitude implements Provider.
func (p *MeanProvider) Longitude(body Body, t time.Time) (float64, error) {
	var tropical float64
	switch body {
	case Sun:
		tropical = astro.SunTropicalLongitude(t)
	case Moon:
		tropical = astro.MoonTropicalLongitude(t)
	case MeanNode:
		tropical = astro.MeanNodeLongitude(t)
	default:
		return 0, fmt.Errorf("body %d: %w", body, ErrUnknownBody)
	}
	return toSidereal(tropical, t), nil
}

// Ascendant implements Provider.
func (p *MeanProvider) Ascendant(t time.Time, obs astro.Observer) (float64, error) {
	return toSidereal(astro.TropicalAscendant(t, obs), t), nil
}

// toSidereal shifts a tropical longitude into the Lahiri sidereal frame.
func toSidereal(tropicalDeg float64, t time.Time) float64 {
	return astro.Normalize(tropicalDeg - astro.LahiriAyanamsa(t))
}
