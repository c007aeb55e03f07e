package model

import (
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// KNN predicts the mean target of the k nearest training samples by euclidean
// distance.
type KNN struct {
	K int

	x *mat.Dense
	y []float64
}

// NewKNN creates an unfitted k-nearest-neighbours model.
func NewKNN(k int) *KNN {
	return &KNN{K: k}
}

// Fit memorises the training samples.
func (m *KNN) Fit(x mat.Matrix, y []float64) error {
	if err := checkShape(x, y); err != nil {
		return err
	}
	if m.K < 1 {
		return errors.Errorf("neighbour count must be at least 1, got %d", m.K)
	}
	r, _ := x.Dims()
	if r < m.K {
		return errors.Errorf("cannot fit %d neighbours on %d samples", m.K, r)
	}
	m.x = mat.DenseCopyOf(x)
	m.y = make([]float64, len(y))
	copy(m.y, y)
	return nil
}

// Predict produces one prediction per row of x.
func (m *KNN) Predict(x mat.Matrix) ([]float64, error) {
	if m.x == nil {
		return nil, ErrNotFitted
	}
	r, c := x.Dims()
	tr, tc := m.x.Dims()
	if c != tc {
		return nil, errors.Errorf("model was fit on %d features but given %d", tc, c)
	}

	out := make([]float64, r)
	row := make([]float64, c)
	trainRow := make([]float64, tc)
	distances := make([]float64, tr)
	order := make([]int, tr)
	for i := 0; i < r; i++ {
		mat.Row(row, i, x)
		for j := 0; j < tr; j++ {
			mat.Row(trainRow, j, m.x)
			distances[j] = floats.Distance(row, trainRow, 2)
			order[j] = j
		}
		sort.Slice(order, func(a, b int) bool {
			return distances[order[a]] < distances[order[b]]
		})
		sum := 0.0
		for _, j := range order[:m.K] {
			sum += m.y[j]
		}
		out[i] = sum / float64(m.K)
	}
	return out, nil
}
