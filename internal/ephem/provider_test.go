package ephem

import (
	"errors"
	"testing"
	"time"

	"github.com/astronihar/advpoints/internal/astro"
)

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"Monday", time.Date(2024, 4, 8, 12, 0, 0, 0, time.UTC), 0},
		{"Tuesday", time.Date(2024, 4, 9, 12, 0, 0, 0, time.UTC), 1},
		{"Saturday", time.Date(2024, 4, 13, 12, 0, 0, 0, time.UTC), 5},
		{"Sunday", time.Date(2024, 4, 14, 12, 0, 0, 0, time.UTC), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekdayIndex(tt.date); got != tt.want {
				t.Errorf("WeekdayIndex(%s) = %d, want %d", tt.name, got, tt.want)
			}
		})
	}
}

func TestBodyString(t *testing.T) {
	tests := []struct {
		body Body
		want string
	}{
		{Sun, "Sun"},
		{Moon, "Moon"},
		{MeanNode, "MeanNode"},
		{Body(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.body.String(); got != tt.want {
			t.Errorf("Body(%d).String() = %q, want %q", tt.body, got, tt.want)
		}
	}
}

func TestMeanProviderLongitudes(t *testing.T) {
	p := NewMeanProvider()
	at := time.Date(2024, 4, 8, 6, 0, 0, 0, time.UTC)

	for _, body := range []Body{Sun, Moon, MeanNode} {
		got, err := p.Longitude(body, at)
		if err != nil {
			t.Fatalf("Longitude(%s) error: %v", body, err)
		}
		if got < 0 || got >= 360 {
			t.Errorf("Longitude(%s) = %v, outside [0, 360)", body, got)
		}
	}

	if _, err := p.Longitude(Body(42), at); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("unknown body error = %v, want ErrUnknownBody", err)
	}
}

func TestMeanProviderSiderealShift(t *testing.T) {
	// The sidereal sun must trail the tropical sun by the ayanamsa.
	p := NewMeanProvider()
	at := time.Date(2024, 4, 8, 6, 0, 0, 0, time.UTC)

	sidereal, err := p.Longitude(Sun, at)
	if err != nil {
		t.Fatalf("Longitude error: %v", err)
	}

	want := astro.Normalize(astro.SunTropicalLongitude(at) - astro.LahiriAyanamsa(at))
	if sidereal != want {
		t.Errorf("sidereal sun = %v, want %v", sidereal, want)
	}
}

func TestMeanProviderAscendant(t *testing.T) {
	p := NewMeanProvider()
	obs := astro.Observer{LatDeg: 28.6139, LonDeg: 77.2090, Name: "Delhi"}

	for hour := 0; hour < 24; hour += 4 {
		at := time.Date(2024, 4, 8, hour, 0, 0, 0, time.UTC)
		asc, err := p.Ascendant(at, obs)
		if err != nil {
			t.Fatalf("Ascendant error: %v", err)
		}
		if asc < 0 || asc >= 360 {
			t.Errorf("hour %d: ascendant %v outside [0, 360)", hour, asc)
		}
	}
}

func TestFixedProvider(t *testing.T) {
	p := NewFixedProvider().
		SetLongitude(Sun, 354.8).
		SetLongitude(Moon, 350.2).
		SetLongitude(MeanNode, 390). // normalized on read
		SetAscendant(17.9)

	at := time.Now()

	sun, err := p.Longitude(Sun, at)
	if err != nil {
		t.Fatalf("Longitude(Sun) error: %v", err)
	}
	if sun != 354.8 {
		t.Errorf("Sun = %v, want 354.8", sun)
	}

	rahu, err := p.Longitude(MeanNode, at)
	if err != nil {
		t.Fatalf("Longitude(MeanNode) error: %v", err)
	}
	if rahu != 30 {
		t.Errorf("MeanNode = %v, want normalized 30", rahu)
	}

	asc, err := p.Ascendant(at, astro.Observer{})
	if err != nil {
		t.Fatalf("Ascendant error: %v", err)
	}
	if asc != 17.9 {
		t.Errorf("Ascendant = %v, want 17.9", asc)
	}

	empty := NewFixedProvider()
	if _, err := empty.Longitude(Sun, at); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("empty provider error = %v, want ErrUnknownBody", err)
	}
	if _, err := empty.Ascendant(at, astro.Observer{}); !errors.Is(err, ErrUnknownBody) {
		t.Errorf("empty ascendant error = %v, want ErrUnknownBody", err)
	}
}
