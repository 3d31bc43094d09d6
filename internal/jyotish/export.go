package jyotish

import (
	"encoding/json"
	"io"
	"time"
)

// SnapshotExport is the JSON-serializable representation of a chart.
type SnapshotExport struct {
	Timestamp  time.Time     `json:"timestamp"`
	ComputedAt time.Time     `json:"computed_at"`
	Weekday    int           `json:"weekday"`
	Points     []PointExport `json:"points"`
}

// PointExport is a JSON-friendly point representation: the formatted
// tuple plus the raw normalized degree.
type PointExport struct {
	Name      string  `json:"name"`
	Degree    float64 `json:"degree"`
	DMS       string  `json:"dms"`
	Sign      string  `json:"sign"`
	Nakshatra string  `json:"nakshatra"`
	Pada      int     `json:"pada"`
}

// ExportSnapshot converts a chart to an exportable format.
func ExportSnapshot(chart *Chart, computedAt time.Time) *SnapshotExport {
	if chart == nil {
		return &SnapshotExport{ComputedAt: computedAt}
	}

	export := &SnapshotExport{
		Timestamp:  chart.Time,
		ComputedAt: computedAt,
		Weekday:    chart.Weekday,
		Points:     make([]PointExport, 0, len(chart.Points)),
	}

	for _, p := range chart.Points {
		export.Points = append(export.Points, PointExport{
			Name:      p.Name,
			Degree:    p.Position.Degree,
			DMS:       p.Position.DMS(),
			Sign:      p.Position.Sign.String(),
			Nakshatra: p.Position.Nakshatra.String(),
			Pada:      p.Position.Pada,
		})
	}

	return export
}

// WriteJSON writes the snapshot as indented JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
