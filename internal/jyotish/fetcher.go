package jyotish

import (
	"fmt"
	"time"

	"github.com/astronihar/advpoints/internal/astro"
	"github.com/astronihar/advpoints/internal/ephem"
)

// Fetcher gathers one snapshot of base longitudes from a provider and
// computes the chart. All longitudes are read for the same instant.
type Fetcher struct {
	provider   ephem.Provider
	observer   astro.Observer
	sunriseDeg float64
}

// FetchResult contains the computed chart or an error.
type FetchResult struct {
	Chart    *Chart
	Duration time.Duration
	Error    error
}

// NewFetcher creates a fetcher over a provider and observer location.
func NewFetcher(p ephem.Provider, obs astro.Observer) *Fetcher {
	return &Fetcher{
		provider:   p,
		observer:   obs,
		sunriseDeg: ephem.AssumedSunriseDeg,
	}
}

// SetSunriseDeg overrides the assumed sunrise reference degree.
func (f *Fetcher) SetSunriseDeg(deg float64) {
	f.sunriseDeg = deg
}

// Provider returns the underlying provider.
func (f *Fetcher) Provider() ephem.Provider {
	return f.provider
}

// Fetch computes the chart for one instant. A missing base longitude
// fails the whole fetch: every sphuta depends on the Sun/Moon/Lagna
// combinations, so there is no useful partial result.
func (f *Fetcher) Fetch(t time.Time) FetchResult {
	start := time.Now()

	in := Input{
		Time:       t,
		Weekday:    ephem.WeekdayIndex(t),
		SunriseDeg: f.sunriseDeg,
	}

	var err error
	if in.Sun, err = f.provider.Longitude(ephem.Sun, t); err != nil {
		return FetchResult{Duration: time.Since(start), Error: fmt.Errorf("sun longitude: %w", err)}
	}
	if in.Moon, err = f.provider.Longitude(ephem.Moon, t); err != nil {
		return FetchResult{Duration: time.Since(start), Error: fmt.Errorf("moon longitude: %w", err)}
	}
	if in.Rahu, err = f.provider.Longitude(ephem.MeanNode, t); err != nil {
		return FetchResult{Duration: time.Since(start), Error: fmt.Errorf("rahu longitude: %w", err)}
	}
	if in.Lagna, err = f.provider.Ascendant(t, f.observer); err != nil {
		return FetchResult{Duration: time.Since(start), Error: fmt.Errorf("ascendant: %w", err)}
	}

	chart, err := ComputeChart(in)
	return FetchResult{Chart: chart, Duration: time.Since(start), Error: err}
}
