package crossfold

import (
	"log"
	"math"
	"time"

	"github.com/go-errors/errors"
	"github.com/hscells/crossfold/eval"
	"github.com/hscells/crossfold/model"
	"github.com/hscells/crossfold/output"
	"github.com/hscells/crossfold/split"
	"github.com/hscells/crossfold/transform"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// curveFractions are the training-size checkpoints of a learning curve, as
// fractions of the smallest per-fold training size.
var curveFractions = []float64{0.1, 0.325, 0.55, 0.775, 1.0}

// Curve holds the per-training-size score distributions of a learning curve.
// All slices have one element per training-size checkpoint.
type Curve struct {
	Sizes          []float64
	TrainMean      []float64
	TrainStd       []float64
	ValidationMean []float64
	ValidationStd  []float64
}

// CurveOption configures learning-curve computation.
type CurveOption func(*curve)

type curve struct {
	jobs     int
	models   func() model.Model
	renderer output.Renderer
}

// Jobs sets the number of workers fitting models concurrently. Running with
// more than one job requires a model constructor via Models.
func Jobs(n int) CurveOption {
	return func(c *curve) {
		c.jobs = n
	}
}

// Models supplies a constructor creating a fresh model for each fit, so
// workers do not share model state.
func Models(f func() model.Model) CurveOption {
	return func(c *curve) {
		c.models = f
	}
}

// Render renders the learning curve figure to the given renderer.
func Render(r output.Renderer) CurveOption {
	return func(c *curve) {
		c.renderer = r
	}
}

// LearningCurve computes model performance against both the training and
// validation splits as a function of the number of training samples. The
// transforms are fit once on the entire dataset; each checkpoint then fits
// the model on a growing prefix of every fold's training split under k-fold
// cross-validation.
func LearningCurve(x mat.Matrix, y []float64, m model.Model, e eval.Evaluator, transforms []transform.Transform, nFolds int, opts ...CurveOption) (Curve, error) {
	r, _ := x.Dims()
	if r != len(y) {
		return Curve{}, errors.Errorf("features have %d rows but targets have %d", r, len(y))
	}

	c := curve{jobs: 1}
	for _, opt := range opts {
		opt(&c)
	}
	if c.jobs < 1 {
		c.jobs = 1
	}
	if c.jobs > 1 && c.models == nil {
		return Curve{}, errors.Errorf("running with %d jobs requires a model constructor", c.jobs)
	}

	if err := transform.Fit(x, y, transforms); err != nil {
		return Curve{}, err
	}
	xt, err := transform.Apply(x, transforms)
	if err != nil {
		return Curve{}, err
	}

	folds, err := split.KFold(r, nFolds, Seed)
	if err != nil {
		return Curve{}, err
	}

	minTrain := r
	for _, fold := range folds {
		if len(fold.Train) < minTrain {
			minTrain = len(fold.Train)
		}
	}
	sizes := make([]int, len(curveFractions))
	for i, f := range curveFractions {
		sizes[i] = int(f * float64(minTrain))
		if sizes[i] < 1 {
			sizes[i] = 1
		}
	}

	t0 := time.Now()

	trainScores := make([][]float64, len(sizes))
	validationScores := make([][]float64, len(sizes))
	for i := range sizes {
		trainScores[i] = make([]float64, len(folds))
		validationScores[i] = make([]float64, len(folds))
	}

	// Each (fold, size) pair writes to its own slot, so the workers only
	// synchronise on the semaphore.
	sem := make(chan bool, c.jobs)
	errc := make(chan error, len(folds)*len(sizes))
	for fi, fold := range folds {
		for ci, size := range sizes {
			sem <- true
			go func(fi, ci, size int, fold split.Fold) {
				defer func() { <-sem }()
				mm := m
				if c.models != nil {
					mm = c.models()
				}
				train, validation, err := fitCheckpoint(xt, y, mm, e, fold, size)
				if err != nil {
					errc <- errors.Wrap(err, 0)
					return
				}
				trainScores[ci][fi] = train
				validationScores[ci][fi] = validation
			}(fi, ci, size, fold)
		}
	}
	// Wait until the last goroutine has read from the semaphore.
	for i := 0; i < cap(sem); i++ {
		sem <- true
	}
	close(errc)
	for err := range errc {
		if stacked, ok := err.(*errors.Error); ok {
			log.Println(stacked.ErrorStack())
		}
		return Curve{}, err
	}

	result := Curve{
		Sizes:          make([]float64, len(sizes)),
		TrainMean:      make([]float64, len(sizes)),
		TrainStd:       make([]float64, len(sizes)),
		ValidationMean: make([]float64, len(sizes)),
		ValidationStd:  make([]float64, len(sizes)),
	}
	for i, size := range sizes {
		result.Sizes[i] = float64(size)
		result.TrainMean[i] = stat.Mean(trainScores[i], nil)
		result.TrainStd[i] = popStdDev(trainScores[i])
		result.ValidationMean[i] = stat.Mean(validationScores[i], nil)
		result.ValidationStd[i] = popStdDev(validationScores[i])
	}
	log.Printf("learning curve generated in %v\n", time.Since(t0))

	if c.renderer != nil {
		f := output.LearningCurveFigure(result.Sizes, result.TrainMean, result.TrainStd, result.ValidationMean, result.ValidationStd)
		if err := c.renderer.Render(f); err != nil {
			return Curve{}, err
		}
	}
	return result, nil
}

// popStdDev computes the population standard deviation, dividing the squared
// deviations by the number of scores rather than the sample correction.
func popStdDev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := stat.Mean(xs, nil)
	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}

// fitCheckpoint fits the model on the first size rows of the fold's training
// split and scores it on those rows and on the fold's evaluation split.
func fitCheckpoint(x mat.Matrix, y []float64, m model.Model, e eval.Evaluator, fold split.Fold, size int) (float64, float64, error) {
	ix := fold.Train
	if size < len(ix) {
		ix = ix[:size]
	}

	xTrain, yTrain := rows(x, ix), elems(y, ix)
	if err := m.Fit(xTrain, yTrain); err != nil {
		return 0, 0, err
	}
	trainPred, err := m.Predict(xTrain)
	if err != nil {
		return 0, 0, err
	}
	evalPred, err := m.Predict(rows(x, fold.Eval))
	if err != nil {
		return 0, 0, err
	}
	return e.Score(yTrain, trainPred), e.Score(elems(y, fold.Eval), evalPred), nil
}
