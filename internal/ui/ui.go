// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/astronihar/advpoints/internal/state"
	"github.com/astronihar/advpoints/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewDashboard ViewMode = iota
	ViewWheel
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// DataUpdateMsg signals a freshly computed chart is available.
	DataUpdateMsg struct {
		Snapshot state.Snapshot
	}

	// ErrorMsg signals a compute error.
	ErrorMsg struct {
		Error error
	}
)

var (
	appTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the root Bubble Tea model.
type Model struct {
	state *state.Manager

	viewMode ViewMode
	width    int
	height   int
	ready    bool

	dashboard DashboardModel
	wheel     WheelModel

	snapshot state.Snapshot
	lastErr  error
}

// New creates a new root UI model.
func New(stateMgr *state.Manager) Model {
	return Model{
		state:     stateMgr,
		viewMode:  ViewDashboard,
		dashboard: NewDashboardModel(),
		wheel:     NewWheelModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.dashboard = m.dashboard.SetSize(msg.Width, msg.Height-4)
		m.wheel = m.wheel.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.viewMode == ViewDashboard {
				m.viewMode = ViewWheel
			} else {
				m.viewMode = ViewDashboard
			}
			return m, nil
		case "1":
			m.viewMode = ViewDashboard
			return m, nil
		case "2":
			m.viewMode = ViewWheel
			return m, nil
		}

	case TickMsg:
		return m, tickCmd()

	case DataUpdateMsg:
		m.snapshot = msg.Snapshot
		m.lastErr = nil
		m.dashboard = m.dashboard.UpdateData(msg.Snapshot)
		m.wheel = m.wheel.UpdateData(msg.Snapshot)
		return m, nil

	case ErrorMsg:
		m.lastErr = msg.Error
		m.dashboard = m.dashboard.SetError(msg.Error)
		return m, nil
	}

	// Forward everything else to the active view
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewWheel:
		m.wheel, cmd = m.wheel.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.viewMode {
	case ViewDashboard:
		b.WriteString(m.dashboard.View())
	case ViewWheel:
		b.WriteString(m.wheel.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := appTitleStyle.Render("advpoints " + version.Version)

	var tabs []string
	for i, name := range []string{"Points", "Wheel"} {
		if ViewMode(i) == m.viewMode {
			tabs = append(tabs, tabActiveStyle.Render(name))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(name))
		}
	}

	return title + "  " + strings.Join(tabs, " ")
}

func (m Model) renderFooter() string {
	status := "waiting for first chart"
	if m.snapshot.Chart != nil {
		status = fmt.Sprintf("computed %s in %s",
			m.snapshot.LastCompute.Format("15:04:05"),
			m.snapshot.ComputeDuration.Round(time.Microsecond))
	}
	return footerStyle.Render(fmt.Sprintf("%s · tab switch view · q quit", status))
}

// tickCmd schedules the next UI tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// SendDataUpdate builds a command delivering a new snapshot.
func SendDataUpdate(snapshot state.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return DataUpdateMsg{Snapshot: snapshot}
	}
}

// SendError builds a command delivering a compute error.
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err}
	}
}
