// Package crossfold provides cross-validation and learning-curve routines for
// estimating the out-of-sample performance of predictive models.
package crossfold

import (
	"github.com/hscells/crossfold/split"
	"gonum.org/v1/gonum/mat"
)

// rows copies the given rows of x into a new matrix.
func rows(x mat.Matrix, ix split.Indices) *mat.Dense {
	_, c := x.Dims()
	out := mat.NewDense(len(ix), c, nil)
	for i, row := range ix {
		for j := 0; j < c; j++ {
			out.Set(i, j, x.At(row, j))
		}
	}
	return out
}

// rowRange copies the rows [from, to) of x into a new matrix.
func rowRange(x mat.Matrix, from, to int) *mat.Dense {
	_, c := x.Dims()
	out := mat.NewDense(to-from, c, nil)
	for i := from; i < to; i++ {
		for j := 0; j < c; j++ {
			out.Set(i-from, j, x.At(i, j))
		}
	}
	return out
}

// elems gathers the given elements of y into a new vector.
func elems(y []float64, ix split.Indices) []float64 {
	out := make([]float64, len(ix))
	for i, row := range ix {
		out[i] = y[row]
	}
	return out
}
