package jyotish

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// WriteSummaryTable writes the chart as a text table to the given writer.
func WriteSummaryTable(w io.Writer, chart *Chart, timestamp time.Time) {
	fmt.Fprintf(w, "Special Points @ %s\n", timestamp.Format(time.RFC3339))
	fmt.Fprintln(w, strings.Repeat("─", 78))

	if chart == nil || len(chart.Points) == 0 {
		fmt.Fprintln(w, "No chart computed")
		return
	}

	fmt.Fprintf(w, "%-16s %-10s %-12s %-18s %-4s %-10s\n",
		"Point", "Degree", "Sign", "Nakshatra", "Pada", "DMS")
	fmt.Fprintln(w, strings.Repeat("─", 78))

	for _, p := range chart.Points {
		fmt.Fprintf(w, "%-16s %9.4f° %-12s %-18s %-4d %-10s\n",
			truncateStr(p.Name, 16),
			p.Position.Degree,
			p.Position.Sign,
			truncateStr(p.Position.Nakshatra.String(), 18),
			p.Position.Pada,
			p.Position.DMS(),
		)
	}

	fmt.Fprintf(w, "\nTotal: %d points\n", len(chart.Points))
}

// WritePointCard writes a detail card for a single named point.
// Matching is case-insensitive on the full name.
func WritePointCard(w io.Writer, chart *Chart, name string) {
	if chart == nil {
		fmt.Fprintln(w, "No chart computed")
		return
	}

	var found *Point
	for i := range chart.Points {
		if strings.EqualFold(chart.Points[i].Name, name) {
			found = &chart.Points[i]
			break
		}
	}
	if found == nil {
		fmt.Fprintf(w, "Unknown point %q. Available:\n", name)
		for _, p := range chart.Points {
			fmt.Fprintf(w, "  %s\n", p.Name)
		}
		return
	}

	pos := found.Position
	fmt.Fprintf(w, "%s\n", found.Name)
	fmt.Fprintln(w, strings.Repeat("─", 40))
	fmt.Fprintf(w, "  Longitude  %.4f°\n", pos.Degree)
	fmt.Fprintf(w, "  Sign       %s (%s)\n", pos.Sign, pos.DMS())
	fmt.Fprintf(w, "  Nakshatra  %s\n", pos.Nakshatra)
	fmt.Fprintf(w, "  Pada       %d\n", pos.Pada)
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
