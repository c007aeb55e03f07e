package eval_test

import (
	"math"
	"testing"

	"github.com/hscells/crossfold/eval"
)

func TestMeanAbsoluteError(t *testing.T) {
	truth := []float64{1, 2, 3, 4}
	pred := []float64{1, 3, 3, 2}
	if got := eval.MeanAbsoluteError.Score(truth, pred); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}
}

func TestRootMeanSquaredError(t *testing.T) {
	truth := []float64{0, 0}
	pred := []float64{3, 4}
	want := math.Sqrt(12.5)
	if got := eval.RootMeanSquaredError.Score(truth, pred); math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRSquaredPerfectFit(t *testing.T) {
	truth := []float64{1, 2, 3, 4, 5}
	if got := eval.RSquared.Score(truth, truth); math.Abs(got-1) > 1e-12 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestRSquaredDegenerate(t *testing.T) {
	// Constant truth makes the total sum of squares zero.
	truth := []float64{2, 2, 2}
	pred := []float64{1, 2, 3}
	if got := eval.RSquared.Score(truth, pred); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestMedianAbsoluteError(t *testing.T) {
	truth := []float64{0, 0, 0}
	pred := []float64{1, 2, 10}
	if got := eval.MedianAbsoluteError.Score(truth, pred); got != 2 {
		t.Fatalf("expected 2, got %v", got)
	}
}

func TestPrecisionRecall(t *testing.T) {
	truth := []float64{1, 1, 0, 0}
	pred := []float64{1, 0, 1, 0}
	if got := eval.Precision.Score(truth, pred); got != 0.5 {
		t.Fatalf("expected precision 0.5, got %v", got)
	}
	if got := eval.Recall.Score(truth, pred); got != 0.5 {
		t.Fatalf("expected recall 0.5, got %v", got)
	}
	if got := eval.F1Measure.Score(truth, pred); got != 0.5 {
		t.Fatalf("expected f1 0.5, got %v", got)
	}
}

func TestAccuracy(t *testing.T) {
	truth := []float64{1, 2, 3, 4}
	pred := []float64{1, 2, 0, 4}
	if got := eval.Accuracy.Score(truth, pred); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}
}

func TestScoresAlignToShorterVector(t *testing.T) {
	truth := []float64{1, 2, 3, 4, 5, 6}
	pred := []float64{1, 2, 3}
	if got := eval.MeanAbsoluteError.Score(truth, pred); got != 0 {
		t.Fatalf("expected the head of the longer vector to be compared, got %v", got)
	}
}

func TestEvaluators(t *testing.T) {
	evaluators, err := eval.Evaluators("mae", "rmse", "f1")
	if err != nil {
		t.Fatal(err)
	}
	if len(evaluators) != 3 {
		t.Fatalf("expected 3 evaluators, got %d", len(evaluators))
	}
	if evaluators[2].Name() != "F1Measure" {
		t.Fatalf("unexpected name %s", evaluators[2].Name())
	}
	if _, err := eval.Evaluators("nope"); err == nil {
		t.Fatal("expected an error for an unknown measure")
	}
}

func TestEvaluate(t *testing.T) {
	evaluators, err := eval.Evaluators("mae", "mse")
	if err != nil {
		t.Fatal(err)
	}
	scores := eval.Evaluate(evaluators, []float64{1, 2}, []float64{2, 4})
	if scores["MAE"] != 1.5 {
		t.Fatalf("expected MAE 1.5, got %v", scores["MAE"])
	}
	if scores["MSE"] != 2.5 {
		t.Fatalf("expected MSE 2.5, got %v", scores["MSE"])
	}
}
