package jyotish

import (
	"fmt"
	"math"
	"time"

	"github.com/astronihar/advpoints/internal/astro"
)

// Point names for the two temporal points. The sphuta names come from
// the Catalog entries.
const (
	PointGulika = "Gulika"
	PointMandi  = "Mandi"
)

// Input is one snapshot of base longitudes plus the weekday/sunrise
// reference. All longitudes must come from the same instant to keep the
// derived points internally consistent.
type Input struct {
	Time       time.Time
	Weekday    int     // 0=Monday .. 6=Sunday
	SunriseDeg float64 // ecliptic degree at sunrise (90 in the default deployment)

	Sun   float64
	Moon  float64
	Rahu  float64
	Lagna float64
}

// Point is a named special point with its decoded position.
type Point struct {
	Name     string
	Position astro.Position
}

// Chart is the full set of derived points for one input snapshot.
// Points keeps a stable order: Gulika, Mandi, then the catalog order,
// so repeated computations over the same input render identically.
type Chart struct {
	Time    time.Time
	Weekday int
	Points  []Point
}

// Point returns the named point, if present.
func (c *Chart) Point(name string) (Point, bool) {
	for _, p := range c.Points {
		if p.Name == name {
			return p, true
		}
	}
	return Point{}, false
}

// ComputeChart derives every special point from one input snapshot.
// Any non-finite base longitude or out-of-range weekday fails the whole
// computation; there are no partial charts.
func ComputeChart(in Input) (*Chart, error) {
	for _, b := range []struct {
		name string
		deg  float64
	}{
		{"sun", in.Sun},
		{"moon", in.Moon},
		{"rahu", in.Rahu},
		{"lagna", in.Lagna},
	} {
		if math.IsNaN(b.deg) || math.IsInf(b.deg, 0) {
			return nil, fmt.Errorf("%s longitude %v: %w", b.name, b.deg, astro.ErrInvalidInput)
		}
	}

	gulika, err := Gulika(in.Weekday, in.SunriseDeg)
	if err != nil {
		return nil, fmt.Errorf("gulika: %w", err)
	}
	mandi, err := Mandi(in.Weekday, in.SunriseDeg)
	if err != nil {
		return nil, fmt.Errorf("mandi: %w", err)
	}

	base := BaseLongitudes{
		Sun:    in.Sun,
		Moon:   in.Moon,
		Lagna:  in.Lagna,
		Rahu:   in.Rahu,
		Gulika: gulika,
		Mandi:  mandi,
	}

	chart := &Chart{
		Time:    in.Time,
		Weekday: in.Weekday,
		Points:  make([]Point, 0, len(Catalog)+2),
	}

	add := func(name string, deg float64) error {
		pos, err := astro.Decode(deg)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		chart.Points = append(chart.Points, Point{Name: name, Position: pos})
		return nil
	}

	if err := add(PointGulika, gulika); err != nil {
		return nil, err
	}
	if err := add(PointMandi, mandi); err != nil {
		return nil, err
	}
	for _, f := range Catalog {
		if err := add(f.Name, f.Degree(base)); err != nil {
			return nil, err
		}
	}

	return chart, nil
}
