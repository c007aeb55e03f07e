// Package model defines the fit/predict capability set that cross-validation
// runs over, plus some reference models.
package model

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrNotFitted is returned by Predict when the model has not been fit.
var ErrNotFitted = errors.New("model has not been fit")

// Model is an abstract representation of a predictive model. A model must be
// fit on a feature matrix and target vector before it can predict targets for
// new samples.
type Model interface {
	// Fit must train the model on the given samples.
	Fit(x mat.Matrix, y []float64) error
	// Predict must produce one prediction per row of x.
	Predict(x mat.Matrix) ([]float64, error)
}

// checkShape validates that the feature matrix and target vector agree.
func checkShape(x mat.Matrix, y []float64) error {
	r, _ := x.Dims()
	if r != len(y) {
		return errors.Errorf("features have %d rows but targets have %d", r, len(y))
	}
	if r == 0 {
		return errors.New("cannot fit on an empty dataset")
	}
	return nil
}

// withIntercept prepends a column of ones to x.
func withIntercept(x mat.Matrix) *mat.Dense {
	r, c := x.Dims()
	a := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		a.Set(i, 0, 1)
		for j := 0; j < c; j++ {
			a.Set(i, j+1, x.At(i, j))
		}
	}
	return a
}
