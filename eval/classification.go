package eval

import (
	"fmt"
	"math"
)

type accuracy struct{}
type precision struct{}
type recall struct{}

// FMeasure computes f-measure, with the beta parameter controlling the
// precision and recall trade-off.
type FMeasure struct {
	beta float64
}

var (
	// Accuracy calculates the fraction of predictions matching the true labels.
	Accuracy = accuracy{}
	// Precision calculates precision, treating labels greater than zero as positive.
	Precision = precision{}
	// Recall calculates recall, treating labels greater than zero as positive.
	Recall = recall{}

	// F1Measure is f-measure with beta=1.
	F1Measure = FMeasure{beta: 1}
	// F05Measure is f-measure with beta=0.5.
	F05Measure = FMeasure{beta: 0.5}
	// F3Measure is f-measure with beta=3.
	F3Measure = FMeasure{beta: 3}
)

func (accuracy) Name() string {
	return "Accuracy"
}

func (accuracy) Score(truth, pred []float64) float64 {
	truth, pred = align(truth, pred)
	if len(truth) == 0 {
		return 0.0
	}
	correct := 0.0
	for i := range truth {
		if truth[i] == pred[i] {
			correct++
		}
	}
	return correct / float64(len(truth))
}

func (precision) Name() string {
	return "Precision"
}

func (precision) Score(truth, pred []float64) float64 {
	truth, pred = align(truth, pred)
	numPosRet := 0.0
	numRelRet := 0.0
	for i := range pred {
		if pred[i] > 0 {
			numPosRet++
			if truth[i] > 0 {
				numRelRet++
			}
		}
	}
	if numPosRet == 0 {
		return 0.0
	}
	return numRelRet / numPosRet
}

func (recall) Name() string {
	return "Recall"
}

func (recall) Score(truth, pred []float64) float64 {
	truth, pred = align(truth, pred)
	numRel := 0.0
	numRelRet := 0.0
	for i := range truth {
		if truth[i] > 0 {
			numRel++
			if pred[i] > 0 {
				numRelRet++
			}
		}
	}
	if numRel == 0 {
		return 0.0
	}
	return numRelRet / numRel
}

// Score uses the beta parameter to compute f-measure.
func (f FMeasure) Score(truth, pred []float64) float64 {
	precision := Precision.Score(truth, pred)
	recall := Recall.Score(truth, pred)
	if precision == 0 || recall == 0 {
		return 0
	}
	betaSquared := math.Pow(f.beta, 2)
	return ((1 + betaSquared) * (precision * recall)) / ((betaSquared * precision) + recall)
}

// Name calculates the name of the f-measure with beta parameter.
func (f FMeasure) Name() string {
	return fmt.Sprintf("F%vMeasure", f.beta)
}
