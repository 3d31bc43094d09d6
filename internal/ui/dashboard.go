package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/astronihar/advpoints/internal/state"
)

// Styles for the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	temporalPointStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214"))

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// DashboardModel is the special-points table view.
type DashboardModel struct {
	width    int
	height   int
	cursor   int
	snapshot state.Snapshot
	lastErr  error
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// SetSize updates the viewport size.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m DashboardModel) UpdateData(snapshot state.Snapshot) DashboardModel {
	m.snapshot = snapshot
	m.lastErr = nil
	return m
}

// SetError sets the last error for display.
func (m DashboardModel) SetError(err error) DashboardModel {
	m.lastErr = err
	return m
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		pointCount := 0
		if m.snapshot.Chart != nil {
			pointCount = len(m.snapshot.Chart.Points)
		}

		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < pointCount-1 {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			if pointCount > 0 {
				m.cursor = pointCount - 1
			}
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	var b strings.Builder

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n\n")
	}

	if m.snapshot.Chart == nil {
		if m.lastErr == nil {
			b.WriteString("Computing chart...\n")
		}
		return b.String()
	}

	b.WriteString(m.renderPointsTable())

	if len(m.snapshot.Events) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderRecentEvents(3))
	}

	return b.String()
}

func (m DashboardModel) renderPointsTable() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Special Points"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-16s %-10s %-12s %-18s %-4s %-10s",
		"Point", "Degree", "Sign", "Nakshatra", "Pada", "DMS")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for i, p := range m.snapshot.Chart.Points {
		line := fmt.Sprintf("%-16s %9.4f° %-12s %-18s %-4d %-10s",
			p.Name,
			p.Position.Degree,
			p.Position.Sign,
			p.Position.Nakshatra,
			p.Position.Pada,
			p.Position.DMS(),
		)

		switch {
		case i == m.cursor:
			b.WriteString(selectedRowStyle.Render(line))
		case p.Name == "Gulika" || p.Name == "Mandi":
			b.WriteString(temporalPointStyle.Render(line))
		default:
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m DashboardModel) renderRecentEvents(n int) string {
	var b strings.Builder

	events := m.snapshot.Events
	if len(events) > n {
		events = events[len(events)-n:]
	}

	for _, e := range events {
		b.WriteString(eventStyle.Render(fmt.Sprintf("%s  %s: %s → %s",
			e.Timestamp.Format("15:04:05"), e.Point, e.From, e.To)))
		b.WriteString("\n")
	}

	return b.String()
}
