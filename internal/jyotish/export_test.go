package jyotish

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestExportSnapshot(t *testing.T) {
	chart, err := ComputeChart(testInput())
	if err != nil {
		t.Fatalf("ComputeChart error: %v", err)
	}

	computedAt := time.Date(2024, 4, 8, 6, 0, 1, 0, time.UTC)
	export := ExportSnapshot(chart, computedAt)

	if len(export.Points) != len(chart.Points) {
		t.Fatalf("export has %d points, want %d", len(export.Points), len(chart.Points))
	}
	if export.Points[0].Name != PointGulika {
		t.Errorf("first exported point = %q, want Gulika", export.Points[0].Name)
	}
	if export.Points[0].Sign != "Sagittarius" {
		t.Errorf("Gulika sign = %q, want Sagittarius", export.Points[0].Sign)
	}
	if export.Points[0].DMS != "7°30′0″" {
		t.Errorf("Gulika DMS = %q, want 7°30′0″", export.Points[0].DMS)
	}

	var buf bytes.Buffer
	if err := export.WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	var decoded SnapshotExport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("round-trip unmarshal error: %v", err)
	}
	if len(decoded.Points) != len(export.Points) {
		t.Errorf("round-trip has %d points, want %d", len(decoded.Points), len(export.Points))
	}
}

func TestExportSnapshotNilChart(t *testing.T) {
	export := ExportSnapshot(nil, time.Now())
	if len(export.Points) != 0 {
		t.Errorf("nil chart exported %d points, want 0", len(export.Points))
	}
}

func TestWriteSummaryTable(t *testing.T) {
	chart, err := ComputeChart(testInput())
	if err != nil {
		t.Fatalf("ComputeChart error: %v", err)
	}

	var buf bytes.Buffer
	WriteSummaryTable(&buf, chart, chart.Time)
	out := buf.String()

	for _, want := range []string{"Gulika", "Mandi", "Bhrigu Bindu", "Avayoga Sphuta", "Sagittarius", "11 points"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary table missing %q:\n%s", want, out)
		}
	}
}

func TestWriteSummaryTableNil(t *testing.T) {
	var buf bytes.Buffer
	WriteSummaryTable(&buf, nil, time.Now())
	if !strings.Contains(buf.String(), "No chart computed") {
		t.Errorf("nil chart output = %q", buf.String())
	}
}

func TestWritePointCard(t *testing.T) {
	chart, err := ComputeChart(testInput())
	if err != nil {
		t.Fatalf("ComputeChart error: %v", err)
	}

	var buf bytes.Buffer
	WritePointCard(&buf, chart, "gulika") // case-insensitive
	out := buf.String()
	for _, want := range []string{"Gulika", "Sagittarius", "Mula", "Pada       3"} {
		if !strings.Contains(out, want) {
			t.Errorf("point card missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	WritePointCard(&buf, chart, "Ketu")
	if !strings.Contains(buf.String(), "Unknown point") {
		t.Errorf("unknown point output = %q", buf.String())
	}
}

func TestComputeDiff(t *testing.T) {
	prev, err := ComputeChart(testInput())
	if err != nil {
		t.Fatalf("ComputeChart error: %v", err)
	}

	// Same input: nothing moves.
	same, _ := ComputeChart(testInput())
	if d := ComputeDiff(prev, same); d.HasChanges() {
		t.Errorf("identical charts diff = %+v, want empty", d.Changes)
	}

	// Push the Moon far enough to move every Moon-derived point.
	in := testInput()
	in.Moon += 15
	moved, err := ComputeChart(in)
	if err != nil {
		t.Fatalf("ComputeChart error: %v", err)
	}

	d := ComputeDiff(prev, moved)
	if !d.HasChanges() {
		t.Fatal("moved Moon produced no diff")
	}
	names := make(map[string]bool)
	for _, c := range d.Changes {
		names[c.Name] = true
	}
	for _, want := range []string{"Bhrigu Bindu", "Tithi Sphuta", "Deha Sphuta"} {
		if !names[want] {
			t.Errorf("diff missing %q, got %v", want, names)
		}
	}
	// Gulika only depends on weekday and sunrise, so it must not move.
	if names[PointGulika] {
		t.Error("Gulika changed without weekday/sunrise change")
	}

	// Nil previous chart: first observation, empty diff.
	if d := ComputeDiff(nil, moved); d.HasChanges() {
		t.Error("nil previous chart produced changes")
	}
}
