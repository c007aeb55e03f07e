package model

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// LeastSquares fits an ordinary least squares regression with an intercept
// term.
type LeastSquares struct {
	coef *mat.VecDense
}

// NewLeastSquares creates an unfitted ordinary least squares model.
func NewLeastSquares() *LeastSquares {
	return &LeastSquares{}
}

// Fit solves the least squares system for the given samples.
func (m *LeastSquares) Fit(x mat.Matrix, y []float64) error {
	if err := checkShape(x, y); err != nil {
		return err
	}
	a := withIntercept(x)
	var coef mat.VecDense
	if err := coef.SolveVec(a, mat.NewVecDense(len(y), y)); err != nil {
		return errors.Wrap(err, "solving least squares system")
	}
	m.coef = &coef
	return nil
}

// Predict produces one prediction per row of x.
func (m *LeastSquares) Predict(x mat.Matrix) ([]float64, error) {
	return predictLinear(m.coef, x)
}

// predictLinear evaluates a fitted coefficient vector over x with an
// intercept term.
func predictLinear(coef *mat.VecDense, x mat.Matrix) ([]float64, error) {
	if coef == nil {
		return nil, ErrNotFitted
	}
	a := withIntercept(x)
	r, c := a.Dims()
	if c != coef.Len() {
		return nil, errors.Errorf("model was fit on %d features but given %d", coef.Len()-1, c-1)
	}
	var pred mat.VecDense
	pred.MulVec(a, coef)
	out := make([]float64, r)
	for i := range out {
		out[i] = pred.AtVec(i)
	}
	return out, nil
}
