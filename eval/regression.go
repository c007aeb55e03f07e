package eval

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

type meanAbsoluteError struct{}
type meanSquaredError struct{}
type rootMeanSquaredError struct{}
type rSquared struct{}
type medianAbsoluteError struct{}

var (
	// MeanAbsoluteError calculates the mean absolute prediction error.
	MeanAbsoluteError = meanAbsoluteError{}
	// MeanSquaredError calculates the mean squared prediction error.
	MeanSquaredError = meanSquaredError{}
	// RootMeanSquaredError calculates the root of the mean squared prediction error.
	RootMeanSquaredError = rootMeanSquaredError{}
	// RSquared calculates the coefficient of determination.
	RSquared = rSquared{}
	// MedianAbsoluteError calculates the median absolute prediction error.
	MedianAbsoluteError = medianAbsoluteError{}
)

func (meanAbsoluteError) Name() string {
	return "MAE"
}

func (meanAbsoluteError) Score(truth, pred []float64) float64 {
	truth, pred = align(truth, pred)
	if len(truth) == 0 {
		return 0.0
	}
	sum := 0.0
	for i := range truth {
		sum += math.Abs(truth[i] - pred[i])
	}
	return sum / float64(len(truth))
}

func (meanSquaredError) Name() string {
	return "MSE"
}

func (meanSquaredError) Score(truth, pred []float64) float64 {
	truth, pred = align(truth, pred)
	if len(truth) == 0 {
		return 0.0
	}
	sum := 0.0
	for i := range truth {
		d := truth[i] - pred[i]
		sum += d * d
	}
	return sum / float64(len(truth))
}

func (rootMeanSquaredError) Name() string {
	return "RMSE"
}

func (rootMeanSquaredError) Score(truth, pred []float64) float64 {
	return math.Sqrt(MeanSquaredError.Score(truth, pred))
}

func (rSquared) Name() string {
	return "R2"
}

func (rSquared) Score(truth, pred []float64) float64 {
	truth, pred = align(truth, pred)
	if len(truth) == 0 {
		return 0.0
	}
	r2 := stat.RSquaredFrom(pred, truth, nil)
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		return 0.0
	}
	return r2
}

func (medianAbsoluteError) Name() string {
	return "MedianAE"
}

func (medianAbsoluteError) Score(truth, pred []float64) float64 {
	truth, pred = align(truth, pred)
	if len(truth) == 0 {
		return 0.0
	}
	residuals := make([]float64, len(truth))
	for i := range truth {
		residuals[i] = math.Abs(truth[i] - pred[i])
	}
	sort.Float64s(residuals)
	return stat.Quantile(0.5, stat.Empirical, residuals, nil)
}
