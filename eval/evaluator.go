// Package eval provides named evaluation measures over predicted and true
// label vectors.
package eval

import (
	"github.com/pkg/errors"
)

// Evaluator is an interface for scoring a vector of predicted values against
// the true values.
type Evaluator interface {
	Score(truth, pred []float64) float64
	Name() string
}

// Evaluate scores a prediction using the supplied evaluation measurements.
func Evaluate(evaluators []Evaluator, truth, pred []float64) map[string]float64 {
	scores := make(map[string]float64, len(evaluators))
	for _, evaluator := range evaluators {
		scores[evaluator.Name()] = evaluator.Score(truth, pred)
	}
	return scores
}

var measures = map[string]Evaluator{
	"mae":       MeanAbsoluteError,
	"mse":       MeanSquaredError,
	"rmse":      RootMeanSquaredError,
	"r2":        RSquared,
	"median_ae": MedianAbsoluteError,
	"accuracy":  Accuracy,
	"precision": Precision,
	"recall":    Recall,
	"f1":        F1Measure,
	"f0.5":      F05Measure,
	"f3":        F3Measure,
}

// Evaluators looks up evaluation measures by name.
func Evaluators(names ...string) ([]Evaluator, error) {
	evaluators := make([]Evaluator, len(names))
	for i, name := range names {
		m, ok := measures[name]
		if !ok {
			return nil, errors.Errorf("unknown evaluation measure %q", name)
		}
		evaluators[i] = m
	}
	return evaluators, nil
}

// align truncates the longer of the two vectors so both have the same length.
// Scores over vectors of different lengths compare the head of the longer one.
func align(truth, pred []float64) ([]float64, []float64) {
	n := len(truth)
	if len(pred) < n {
		n = len(pred)
	}
	return truth[:n], pred[:n]
}
