package jyotish

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestWriteEvents(t *testing.T) {
	at := time.Date(2024, 4, 8, 6, 15, 0, 0, time.UTC)
	events := []Event{
		{Type: EventSignIngress, Timestamp: at, Point: "Tithi Sphuta", From: "Pisces", To: "Aries"},
		{Type: EventNakshatraIngress, Timestamp: at, Point: "Bhrigu Bindu", From: "Swati", To: "Vishakha"},
		{Type: EventPadaShift, Timestamp: at, Point: "Deha Sphuta", From: "2", To: "3"},
	}

	var buf bytes.Buffer
	WriteEvents(&buf, events, 10)
	out := buf.String()

	for _, want := range []string{
		"Tithi Sphuta",
		"entered sign Aries (was Pisces)",
		"entered nakshatra Vishakha",
		"moved to pada 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("events output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteEventsLimit(t *testing.T) {
	at := time.Now()
	var events []Event
	for i := 0; i < 8; i++ {
		events = append(events, Event{
			Type: EventPadaShift, Timestamp: at, Point: "Yoga Sphuta", From: "1", To: "2",
		})
	}

	var buf bytes.Buffer
	WriteEvents(&buf, events, 3)
	if got := strings.Count(buf.String(), "\n"); got != 3 {
		t.Errorf("wrote %d lines, want 3", got)
	}

	buf.Reset()
	WriteEvents(&buf, nil, 3)
	if !strings.Contains(buf.String(), "No events") {
		t.Errorf("empty events output = %q", buf.String())
	}
}

func TestWriteDiff(t *testing.T) {
	at := time.Date(2024, 4, 8, 6, 15, 0, 0, time.UTC)

	var buf bytes.Buffer
	WriteDiff(&buf, Diff{}, at)
	if !strings.Contains(buf.String(), "no changes") {
		t.Errorf("empty diff output = %q", buf.String())
	}

	buf.Reset()
	d := Diff{Changes: []PointChange{{
		Name: "Tithi Sphuta",
		From: "Pisces 15°0′0″ pada 2",
		To:   "Aries 5°0′0″ pada 2",
	}}}
	WriteDiff(&buf, d, at)
	out := buf.String()
	for _, want := range []string{"06:15:00", "Tithi Sphuta", "Pisces 15°0′0″ pada 2 → Aries 5°0′0″ pada 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("diff output missing %q:\n%s", want, out)
		}
	}
}
