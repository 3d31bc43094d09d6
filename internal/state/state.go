// Package state provides thread-safe state management for the application.
package state

import (
	"strconv"
	"sync"
	"time"

	"github.com/astronihar/advpoints/internal/jyotish"
)

// EventType represents the type of chart change event.
type EventType string

const (
	EventSignIngress      EventType = "SIGN_INGRESS"
	EventNakshatraIngress EventType = "NAKSHATRA_INGRESS"
	EventPadaShift        EventType = "PADA_SHIFT"
)

// Event records a point crossing a sign, nakshatra or pada boundary
// between two successive computations.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Point     string    `json:"point"`
	From      string    `json:"from"`
	To        string    `json:"to"`
}

// HistoryEntry is one computed chart in the history buffer.
type HistoryEntry struct {
	Timestamp time.Time
	Chart     *jyotish.Chart
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current state
	current         *jyotish.Chart
	lastCompute     time.Time
	lastError       error
	computeDuration time.Duration

	// History buffer
	history       []HistoryEntry
	maxHistoryLen int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	// Configuration
	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxHistoryLen   int
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxHistoryLen:   120, // ~2 hours at 1 compute/min
		MaxEvents:       50,
		RefreshInterval: time.Minute,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		maxHistoryLen:   cfg.MaxHistoryLen,
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
	}
}

// Update atomically updates the state with a newly computed chart.
func (m *Manager) Update(chart *jyotish.Chart, computeDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastCompute = time.Now()
	m.lastError = err
	m.computeDuration = computeDuration

	if chart == nil {
		return
	}

	// Detect boundary crossings before replacing the current chart
	m.detectEvents(chart)

	m.current = chart

	m.history = append(m.history, HistoryEntry{Timestamp: chart.Time, Chart: chart})
	if len(m.history) > m.maxHistoryLen {
		m.history = m.history[1:]
	}
}

// detectEvents compares the new chart with the current one and records
// an event per point that crossed a division boundary. Sign ingress wins
// when several divisions change at once.
func (m *Manager) detectEvents(chart *jyotish.Chart) {
	if m.current == nil {
		return
	}
	now := time.Now()

	for _, p := range chart.Points {
		old, ok := m.current.Point(p.Name)
		if !ok {
			continue
		}

		switch {
		case old.Position.Sign != p.Position.Sign:
			m.addEvent(Event{
				Type:      EventSignIngress,
				Timestamp: now,
				Point:     p.Name,
				From:      old.Position.Sign.String(),
				To:        p.Position.Sign.String(),
			})
		case old.Position.Nakshatra != p.Position.Nakshatra:
			m.addEvent(Event{
				Type:      EventNakshatraIngress,
				Timestamp: now,
				Point:     p.Name,
				From:      old.Position.Nakshatra.String(),
				To:        p.Position.Nakshatra.String(),
			})
		case old.Position.Pada != p.Position.Pada:
			m.addEvent(Event{
				Type:      EventPadaShift,
				Timestamp: now,
				Point:     p.Name,
				From:      strconv.Itoa(old.Position.Pada),
				To:        strconv.Itoa(p.Position.Pada),
			})
		}
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Chart           *jyotish.Chart
	LastCompute     time.Time
	LastError       error
	ComputeDuration time.Duration
	Events          []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Chart:           m.current,
		LastCompute:     m.lastCompute,
		LastError:       m.lastError,
		ComputeDuration: m.computeDuration,
		Events:          m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events oldest-first. Callers must hold the lock.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) < m.maxEvents {
		out := make([]Event, len(m.events))
		copy(out, m.events)
		return out
	}

	out := make([]Event, 0, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		out = append(out, m.events[(m.eventWriteAt+i)%m.maxEvents])
	}
	return out
}

// RecentEvents returns up to n of the latest events, oldest-first.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := m.getEventsOrdered()
	if n > 0 && len(events) > n {
		events = events[len(events)-n:]
	}
	return events
}

// History returns a copy of the chart history, oldest-first.
func (m *Manager) History() []HistoryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]HistoryEntry, len(m.history))
	copy(out, m.history)
	return out
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData reports whether a chart has been computed yet.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
