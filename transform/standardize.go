package transform

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Standardize rescales each column to zero mean and unit variance using the
// mean and standard deviation of the training split.
type Standardize struct {
	mean []float64
	std  []float64
}

// NewStandardize creates an unfitted standardising transform.
func NewStandardize() *Standardize {
	return &Standardize{}
}

// Fit learns the per-column mean and standard deviation of x.
func (t *Standardize) Fit(x mat.Matrix, y []float64) error {
	r, c := x.Dims()
	if r == 0 {
		return errors.New("cannot fit on an empty dataset")
	}
	t.mean = make([]float64, c)
	t.std = make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, x)
		t.mean[j] = stat.Mean(col, nil)
		t.std[j] = stat.StdDev(col, nil)
		// Constant columns pass through unscaled.
		if t.std[j] == 0 || t.std[j] != t.std[j] {
			t.std[j] = 1
		}
	}
	return nil
}

// Apply rescales x using the fitted parameters.
func (t *Standardize) Apply(x mat.Matrix) (mat.Matrix, error) {
	if t.mean == nil {
		return nil, ErrNotFitted
	}
	r, c := x.Dims()
	if c != len(t.mean) {
		return nil, errors.Errorf("transform was fit on %d columns but given %d", len(t.mean), c)
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, (x.At(i, j)-t.mean[j])/t.std[j])
		}
	}
	return out, nil
}
