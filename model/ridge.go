package model

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Ridge fits an L2-regularised least squares regression. The intercept term
// is not penalised.
type Ridge struct {
	Lambda float64

	coef *mat.VecDense
}

// NewRidge creates an unfitted ridge regression model with the given
// regularisation strength.
func NewRidge(lambda float64) *Ridge {
	return &Ridge{Lambda: lambda}
}

// Fit solves the regularised normal equations for the given samples.
func (m *Ridge) Fit(x mat.Matrix, y []float64) error {
	if err := checkShape(x, y); err != nil {
		return err
	}
	if m.Lambda < 0 {
		return errors.Errorf("regularisation strength must not be negative, got %v", m.Lambda)
	}

	a := withIntercept(x)
	_, c := a.Dims()

	var g mat.Dense
	g.Mul(a.T(), a)
	for j := 1; j < c; j++ {
		g.Set(j, j, g.At(j, j)+m.Lambda)
	}

	var b mat.VecDense
	b.MulVec(a.T(), mat.NewVecDense(len(y), y))

	var coef mat.VecDense
	if err := coef.SolveVec(&g, &b); err != nil {
		return errors.Wrap(err, "solving ridge system")
	}
	m.coef = &coef
	return nil
}

// Predict produces one prediction per row of x.
func (m *Ridge) Predict(x mat.Matrix) ([]float64, error) {
	return predictLinear(m.coef, x)
}
