// Package transform provides preprocessing steps that are fit on a training
// split and then applied, read-only, to any split. Fitting on the training
// split only prevents information from the evaluation split leaking into the
// model.
package transform

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrNotFitted is returned by Apply when the transform has not been fit.
var ErrNotFitted = errors.New("transform has not been fit")

// Transform is a single preprocessing step. Fit learns parameters from a
// training split and Apply uses them to transform any split.
type Transform interface {
	Fit(x mat.Matrix, y []float64) error
	Apply(x mat.Matrix) (mat.Matrix, error)
}

// Fit fits each transform in sequence, each on the output of the transforms
// before it.
func Fit(x mat.Matrix, y []float64, transforms []Transform) error {
	cur := x
	for _, t := range transforms {
		if err := t.Fit(cur, y); err != nil {
			return err
		}
		var err error
		cur, err = t.Apply(cur)
		if err != nil {
			return err
		}
	}
	return nil
}

// Apply runs a fitted transform chain over x.
func Apply(x mat.Matrix, transforms []Transform) (mat.Matrix, error) {
	cur := x
	for _, t := range transforms {
		var err error
		cur, err = t.Apply(cur)
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}
