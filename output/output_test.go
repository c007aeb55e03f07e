package output_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hscells/crossfold/output"
)

func TestJsonEvaluationFormatter(t *testing.T) {
	report := output.Report{
		"cross_validation": {"MAE": 0.5},
	}
	s, err := output.JsonEvaluationFormatter(report)
	if err != nil {
		t.Fatal(err)
	}
	var decoded output.Report
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["cross_validation"]["MAE"] != 0.5 {
		t.Fatalf("unexpected report %v", decoded)
	}
}

func TestCsvEvaluationFormatter(t *testing.T) {
	report := output.Report{
		"sequence": {"RMSE": 1.25, "MAE": 1},
	}
	s, err := output.CsvEvaluationFormatter(report)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected a header and two rows, got %d lines", len(lines))
	}
	// Measures are ordered for stable output.
	if lines[1] != "sequence,MAE,1" {
		t.Fatalf("unexpected row %q", lines[1])
	}
	if lines[2] != "sequence,RMSE,1.25" {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestEstimationErrorFigure(t *testing.T) {
	f := output.EstimationErrorFigure(0, []float64{1, 2, 3}, []float64{1, 1, 1})
	if f.Title != "Estimation Error" {
		t.Fatalf("unexpected title %q", f.Title)
	}
	if len(f.Series) != 1 {
		t.Fatalf("expected one series, got %d", len(f.Series))
	}
	want := []float64{0, 1, 2}
	for i, v := range f.Series[0].Y {
		if v != want[i] {
			t.Fatalf("expected error %v at %d, got %v", want[i], i, v)
		}
	}
}

func TestLearningCurveFigure(t *testing.T) {
	sizes := []float64{10, 20}
	f := output.LearningCurveFigure(sizes,
		[]float64{0.75, 1}, []float64{0.25, 0.25},
		[]float64{0.5, 0.75}, []float64{0.25, 0.25})
	if len(f.Series) != 2 {
		t.Fatalf("expected two series, got %d", len(f.Series))
	}
	if len(f.Bands) != 2 {
		t.Fatalf("expected two bands, got %d", len(f.Bands))
	}
	if f.Bands[0].Lower[0] != 0.5 || f.Bands[0].Upper[0] != 1 {
		t.Fatalf("unexpected training band %v", f.Bands[0])
	}
	if f.Bands[1].Lower[0] != 0.25 || f.Bands[1].Upper[0] != 0.75 {
		t.Fatalf("unexpected validation band %v", f.Bands[1])
	}
}

func TestMemoryRenderer(t *testing.T) {
	var r output.MemoryRenderer
	if err := r.Render(output.Figure{Title: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Render(output.Figure{Title: "b"}); err != nil {
		t.Fatal(err)
	}
	if len(r.Figures) != 2 {
		t.Fatalf("expected 2 figures, got %d", len(r.Figures))
	}
}
