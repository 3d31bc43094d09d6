package jyotish

import (
	"fmt"
	"io"
	"time"
)

// PointChange describes how one point moved between two charts.
type PointChange struct {
	Name string
	From string // previous rendering, e.g. "Sagittarius 7°30′0″"
	To   string
}

// Diff is the set of changes between two successive charts.
type Diff struct {
	Changes []PointChange
}

// HasChanges reports whether anything moved.
func (d Diff) HasChanges() bool {
	return len(d.Changes) > 0
}

// ComputeDiff compares two charts point by point. A nil previous chart
// yields an empty diff (first observation, nothing to compare).
// A point counts as changed when its rendered position changes, so
// sub-second drift inside the same DMS cell stays quiet.
func ComputeDiff(prev, cur *Chart) Diff {
	var d Diff
	if prev == nil || cur == nil {
		return d
	}

	for _, p := range cur.Points {
		old, ok := prev.Point(p.Name)
		if !ok {
			continue
		}
		from := renderPosition(old)
		to := renderPosition(p)
		if from != to {
			d.Changes = append(d.Changes, PointChange{Name: p.Name, From: from, To: to})
		}
	}
	return d
}

func renderPosition(p Point) string {
	return fmt.Sprintf("%s %s pada %d", p.Position.Sign, p.Position.DMS(), p.Position.Pada)
}

// WriteDiff writes the changes as one line per moved point.
func WriteDiff(w io.Writer, d Diff, timestamp time.Time) {
	if !d.HasChanges() {
		fmt.Fprintf(w, "%s  no changes\n", timestamp.Format("15:04:05"))
		return
	}
	for _, c := range d.Changes {
		fmt.Fprintf(w, "%s  %-16s %s → %s\n",
			timestamp.Format("15:04:05"), c.Name, c.From, c.To)
	}
}
