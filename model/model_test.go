package model_test

import (
	"math"
	"testing"

	"github.com/hscells/crossfold/model"
	"gonum.org/v1/gonum/mat"
)

func TestLeastSquaresRecoversLine(t *testing.T) {
	// y = 2x + 1, noiseless.
	x := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	y := []float64{1, 3, 5, 7}

	m := model.NewLeastSquares()
	if err := m.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	pred, err := m.Predict(mat.NewDense(2, 1, []float64{4, 5}))
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []float64{9, 11} {
		if math.Abs(pred[i]-want) > 1e-9 {
			t.Fatalf("expected %v, got %v", want, pred[i])
		}
	}
}

func TestLeastSquaresNotFitted(t *testing.T) {
	m := model.NewLeastSquares()
	if _, err := m.Predict(mat.NewDense(1, 1, []float64{1})); err != model.ErrNotFitted {
		t.Fatalf("expected ErrNotFitted, got %v", err)
	}
}

func TestLeastSquaresShapeMismatch(t *testing.T) {
	m := model.NewLeastSquares()
	if err := m.Fit(mat.NewDense(3, 1, []float64{1, 2, 3}), []float64{1, 2}); err == nil {
		t.Fatal("expected a shape error")
	}
}

func TestRidgeShrinksTowardsZero(t *testing.T) {
	x := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
	y := []float64{1, 3, 5, 7}

	unregularised := model.NewRidge(0)
	if err := unregularised.Fit(x, y); err != nil {
		t.Fatal(err)
	}
	heavy := model.NewRidge(1000)
	if err := heavy.Fit(x, y); err != nil {
		t.Fatal(err)
	}

	probe := mat.NewDense(1, 1, []float64{10})
	a, err := unregularised.Predict(probe)
	if err != nil {
		t.Fatal(err)
	}
	b, err := heavy.Predict(probe)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a[0]-21) > 1e-9 {
		t.Fatalf("unregularised ridge should match least squares, got %v", a[0])
	}
	if b[0] >= a[0] {
		t.Fatalf("heavy regularisation should shrink the slope, got %v vs %v", b[0], a[0])
	}
}

func TestKNNSingleNeighbour(t *testing.T) {
	x := mat.NewDense(3, 1, []float64{0, 10, 20})
	y := []float64{1, 2, 3}

	m := model.NewKNN(1)
	if err := m.Fit(x, y); err != nil {
		t.Fatal(err)
	}
	pred, err := m.Predict(mat.NewDense(3, 1, []float64{1, 11, 19}))
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range y {
		if pred[i] != want {
			t.Fatalf("expected %v, got %v", want, pred[i])
		}
	}
}

func TestKNNMeansNeighbours(t *testing.T) {
	x := mat.NewDense(2, 1, []float64{0, 1})
	y := []float64{2, 4}

	m := model.NewKNN(2)
	if err := m.Fit(x, y); err != nil {
		t.Fatal(err)
	}
	pred, err := m.Predict(mat.NewDense(1, 1, []float64{0.5}))
	if err != nil {
		t.Fatal(err)
	}
	if pred[0] != 3 {
		t.Fatalf("expected 3, got %v", pred[0])
	}
}

func TestKNNTooFewSamples(t *testing.T) {
	m := model.NewKNN(5)
	if err := m.Fit(mat.NewDense(2, 1, []float64{0, 1}), []float64{1, 2}); err == nil {
		t.Fatal("expected an error when k exceeds the sample count")
	}
}
