package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/astronihar/advpoints/internal/jyotish"
	"github.com/astronihar/advpoints/internal/state"
)

func testSnapshot(t *testing.T) state.Snapshot {
	t.Helper()
	chart, err := jyotish.ComputeChart(jyotish.Input{
		Time:       time.Date(2024, 4, 8, 6, 0, 0, 0, time.UTC),
		Weekday:    0,
		SunriseDeg: 90,
		Sun:        354.8,
		Moon:       350.2,
		Rahu:       21.4,
		Lagna:      17.9,
	})
	if err != nil {
		t.Fatalf("ComputeChart error: %v", err)
	}
	return state.Snapshot{
		Chart:       chart,
		LastCompute: chart.Time,
	}
}

func TestDashboardViewEmpty(t *testing.T) {
	m := NewDashboardModel()
	out := m.View()
	if !strings.Contains(out, "Computing chart") {
		t.Errorf("empty dashboard = %q, want computing notice", out)
	}
}

func TestDashboardViewRendersPoints(t *testing.T) {
	m := NewDashboardModel().UpdateData(testSnapshot(t))
	out := m.View()

	for _, want := range []string{"Gulika", "Mandi", "Bhrigu Bindu", "Avayoga Sphuta", "Sagittarius"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDashboardViewError(t *testing.T) {
	m := NewDashboardModel().SetError(errors.New("provider down"))
	out := m.View()
	if !strings.Contains(out, "provider down") {
		t.Errorf("dashboard error view = %q", out)
	}
}

func TestDashboardCursorBounds(t *testing.T) {
	m := NewDashboardModel().UpdateData(testSnapshot(t))
	pointCount := len(m.snapshot.Chart.Points)

	// Cursor must not go below zero
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}

	// Walk past the end; cursor clamps to the last point
	for i := 0; i < pointCount+5; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != pointCount-1 {
		t.Errorf("cursor = %d after walking down, want %d", m.cursor, pointCount-1)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after home, want 0", m.cursor)
	}
}

func TestRootModelTabSwitch(t *testing.T) {
	root := New(state.NewManager(state.DefaultConfig()))
	root.ready = true
	root.width = 100
	root.height = 40

	if root.viewMode != ViewDashboard {
		t.Fatalf("initial view = %v, want dashboard", root.viewMode)
	}

	next, _ := root.Update(tea.KeyMsg{Type: tea.KeyTab})
	root = next.(Model)
	if root.viewMode != ViewWheel {
		t.Errorf("view after tab = %v, want wheel", root.viewMode)
	}

	next, _ = root.Update(tea.KeyMsg{Type: tea.KeyTab})
	root = next.(Model)
	if root.viewMode != ViewDashboard {
		t.Errorf("view after second tab = %v, want dashboard", root.viewMode)
	}
}

func TestRootModelDataUpdate(t *testing.T) {
	root := New(state.NewManager(state.DefaultConfig()))
	root.ready = true

	next, _ := root.Update(DataUpdateMsg{Snapshot: testSnapshot(t)})
	root = next.(Model)

	out := root.View()
	if !strings.Contains(out, "Gulika") {
		t.Error("root view missing chart data after update")
	}
	if !strings.Contains(out, "computed") {
		t.Error("footer missing compute status")
	}
}
