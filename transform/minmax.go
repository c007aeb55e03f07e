package transform

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// MinMax rescales each column into [0, 1] using the minimum and maximum of
// the training split.
type MinMax struct {
	min  []float64
	span []float64
}

// NewMinMax creates an unfitted min-max scaling transform.
func NewMinMax() *MinMax {
	return &MinMax{}
}

// Fit learns the per-column minimum and range of x.
func (t *MinMax) Fit(x mat.Matrix, y []float64) error {
	r, c := x.Dims()
	if r == 0 {
		return errors.New("cannot fit on an empty dataset")
	}
	t.min = make([]float64, c)
	t.span = make([]float64, c)
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, x)
		t.min[j] = floats.Min(col)
		t.span[j] = floats.Max(col) - t.min[j]
		// Constant columns map to zero.
		if t.span[j] == 0 {
			t.span[j] = 1
		}
	}
	return nil
}

// Apply rescales x using the fitted parameters. Values outside the training
// range fall outside [0, 1].
func (t *MinMax) Apply(x mat.Matrix) (mat.Matrix, error) {
	if t.min == nil {
		return nil, ErrNotFitted
	}
	r, c := x.Dims()
	if c != len(t.min) {
		return nil, errors.Errorf("transform was fit on %d columns but given %d", len(t.min), c)
	}
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, (x.At(i, j)-t.min[j])/t.span[j])
		}
	}
	return out, nil
}
