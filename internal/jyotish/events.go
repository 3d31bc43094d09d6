package jyotish

import (
	"fmt"
	"io"
	"time"
)

// EventType classifies a point's movement across a division boundary.
type EventType string

const (
	EventSignIngress      EventType = "SIGN_INGRESS"
	EventNakshatraIngress EventType = "NAKSHATRA_INGRESS"
	EventPadaShift        EventType = "PADA_SHIFT"
)

// Event records one boundary crossing by a named point.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Point     string    `json:"point"`
	From      string    `json:"from"`
	To        string    `json:"to"`
}

// WriteEvents writes the most recent events, newest last, capped at limit.
func WriteEvents(w io.Writer, events []Event, limit int) {
	if len(events) == 0 {
		fmt.Fprintln(w, "No events")
		return
	}

	start := 0
	if limit > 0 && len(events) > limit {
		start = len(events) - limit
	}

	for _, e := range events[start:] {
		var verb string
		switch e.Type {
		case EventSignIngress:
			verb = "entered sign"
		case EventNakshatraIngress:
			verb = "entered nakshatra"
		case EventPadaShift:
			verb = "moved to pada"
		default:
			verb = "changed"
		}
		fmt.Fprintf(w, "%s  %-16s %s %s (was %s)\n",
			e.Timestamp.Format("15:04:05"), e.Point, verb, e.To, e.From)
	}
}
