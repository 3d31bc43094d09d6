package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/astronihar/advpoints/internal/astro"
	"github.com/astronihar/advpoints/internal/state"
)

var (
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Width(14).
			Height(3).
			Padding(0, 1)

	cellSignStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	cellPointStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// Center filler matches a bordered cell's footprint (14 content
	// columns + 2 border columns, 3 content rows + 2 border rows).
	centerStyle = lipgloss.NewStyle().
			Width(16).
			Height(5).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("244"))
)

// southIndianLayout is the fixed-sign grid of a South Indian chart:
// Pisces in the top-left corner, signs running clockwise around the
// border, center left empty. Values are sign indices, -1 is the center.
var southIndianLayout = [4][4]int{
	{11, 0, 1, 2},
	{10, -1, -1, 3},
	{9, -1, -1, 4},
	{8, 7, 6, 5},
}

// pointAbbrevs maps point names to their two-letter chart glyphs.
var pointAbbrevs = map[string]string{
	"Gulika":         "Gk",
	"Mandi":          "Md",
	"Bhrigu Bindu":   "BB",
	"Prana Sphuta":   "Pr",
	"Deha Sphuta":    "De",
	"Mrityu Sphuta":  "Mr",
	"Tithi Sphuta":   "Ti",
	"Chatusphuta":    "Ch",
	"PanchaSphuta":   "Pc",
	"Yoga Sphuta":    "Yg",
	"Avayoga Sphuta": "Av",
}

// WheelModel renders the chart as a fixed-sign rashi grid.
type WheelModel struct {
	width    int
	height   int
	snapshot state.Snapshot
}

// NewWheelModel creates a new wheel model.
func NewWheelModel() WheelModel {
	return WheelModel{}
}

// SetSize updates the viewport size.
func (m WheelModel) SetSize(width, height int) WheelModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new snapshot.
func (m WheelModel) UpdateData(snapshot state.Snapshot) WheelModel {
	m.snapshot = snapshot
	return m
}

// Update handles messages. The wheel has no interactive state.
func (m WheelModel) Update(msg tea.Msg) (WheelModel, tea.Cmd) {
	return m, nil
}

// View renders the rashi grid.
func (m WheelModel) View() string {
	if m.snapshot.Chart == nil {
		return "Computing chart...\n"
	}

	occupants := m.pointsBySign()

	var rows []string
	for r := 0; r < 4; r++ {
		var cells []string
		for c := 0; c < 4; c++ {
			signIdx := southIndianLayout[r][c]
			if signIdx < 0 {
				// Inner cells stay empty; the top-left one carries
				// the chart label.
				if r == 1 && c == 1 {
					cells = append(cells, m.renderCenter())
				} else {
					cells = append(cells, centerStyle.Render(""))
				}
				continue
			}
			cells = append(cells, m.renderCell(astro.Sign(signIdx), occupants[signIdx]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// pointsBySign groups point glyphs by the sign they occupy.
func (m WheelModel) pointsBySign() map[int][]string {
	occupants := make(map[int][]string)
	for _, p := range m.snapshot.Chart.Points {
		abbrev, ok := pointAbbrevs[p.Name]
		if !ok {
			abbrev = p.Name[:2]
		}
		idx := int(p.Position.Sign)
		occupants[idx] = append(occupants[idx], abbrev)
	}
	return occupants
}

func (m WheelModel) renderCell(sign astro.Sign, points []string) string {
	var b strings.Builder
	b.WriteString(cellSignStyle.Render(truncate(sign.String(), 12)))
	b.WriteString("\n")
	if len(points) > 0 {
		b.WriteString(cellPointStyle.Render(strings.Join(points, " ")))
	}
	return cellStyle.Render(b.String())
}

func (m WheelModel) renderCenter() string {
	chart := m.snapshot.Chart
	label := fmt.Sprintf("%s\n%s", "advpoints", chart.Time.Format("2006-01-02 15:04"))
	return centerStyle.Render(label)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-1] + "…"
}
