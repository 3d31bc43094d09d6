package ephem

import (
	"fmt"
	"time"

	"github.com/astronihar/advpoints/internal/astro"
)

// FixedProvider serves caller-supplied longitudes. It backs the CLI's
// explicit-longitude overrides and deterministic tests: the same inputs
// always produce the same chart, independent of the clock.
type FixedProvider struct {
	longitudes map[Body]float64
	ascendant  float64
	hasAsc     bool
}

// NewFixedProvider creates an empty fixed provider.
func NewFixedProvider() *FixedProvider {
	return &FixedProvider{longitudes: make(map[Body]float64)}
}

// SetLongitude fixes the longitude served for a body.
func (p *FixedProvider) SetLongitude(body Body, deg float64) *FixedProvider {
	p.longitudes[body] = deg
	return p
}

// SetAscendant fixes the ascendant longitude.
func (p *FixedProvider) SetAscendant(deg float64) *FixedProvider {
	p.ascendant = deg
	p.hasAsc = true
	return p
}

// Name implements Provider.
func (p *FixedProvider) Name() string {
	return "fixed"
}

// Longitude implements Provider.
func (p *FixedProvider) Longitude(body Body, t time.Time) (float64, error) {
	deg, ok := p.longitudes[body]
	if !ok {
		return 0, fmt.Errorf("no fixed longitude for %s: %w", body, ErrUnknownBody)
	}
	return astro.Normalize(deg), nil
}

// Ascendant implements Provider.
func (p *FixedProvider) Ascendant(t time.Time, obs astro.Observer) (float64, error) {
	if !p.hasAsc {
		return 0, fmt.Errorf("no fixed ascendant: %w", ErrUnknownBody)
	}
	return astro.Normalize(p.ascendant), nil
}
