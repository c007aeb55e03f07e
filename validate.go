package crossfold

import (
	"log"
	"time"

	"github.com/hscells/crossfold/eval"
	"github.com/hscells/crossfold/model"
	"github.com/hscells/crossfold/split"
	"github.com/hscells/crossfold/transform"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Seed is the shuffling seed used to assign rows to folds, fixed so that fold
// assignment is reproducible between runs.
const Seed = 1337

// Option configures k-fold cross-validation.
type Option func(*validation)

type validation struct {
	seed  int64
	cache ScoreCacher
}

// WithSeed overrides the fold shuffling seed.
func WithSeed(seed int64) Option {
	return func(v *validation) {
		v.seed = seed
	}
}

// WithScoreCache memoises per-fold evaluation results between runs.
func WithScoreCache(cache ScoreCacher) Option {
	return func(v *validation) {
		v.cache = cache
	}
}

// FoldResult is the outcome of evaluating a single fold: the training score,
// plus the predictions and true targets of the evaluation split.
type FoldResult struct {
	TrainScore float64
	Pred       []float64
	Truth      []float64
}

// CrossValidate estimates the true performance of a model using k-fold
// cross-validation. The transforms and the model are refit on the training
// split of every fold, and the aggregate score is computed over the
// concatenated evaluation predictions of all folds, not as a mean of per-fold
// scores.
func CrossValidate(x mat.Matrix, y []float64, m model.Model, e eval.Evaluator, transforms []transform.Transform, nFolds int, opts ...Option) (float64, error) {
	r, _ := x.Dims()
	if r != len(y) {
		return 0, errors.Errorf("features have %d rows but targets have %d", r, len(y))
	}

	v := validation{seed: Seed}
	for _, opt := range opts {
		opt(&v)
	}

	folds, err := split.KFold(r, nFolds, v.seed)
	if err != nil {
		return 0, err
	}

	var experiment string
	if v.cache != nil {
		experiment = experimentKey(x, y, m, e, transforms)
	}

	t0 := time.Now()
	trainScores := make([]float64, 0, len(folds))
	var pred, truth []float64
	for i, fold := range folds {
		log.Printf("starting fold %d...\n", i+1)
		res, err := evaluateFold(x, y, m, e, transforms, fold, v.cache, experiment)
		if err != nil {
			return 0, errors.Wrapf(err, "fold %d", i+1)
		}
		trainScores = append(trainScores, res.TrainScore)
		pred = append(pred, res.Pred...)
		truth = append(truth, res.Truth...)
	}
	log.Printf("cross-validation completed in %v\n", time.Since(t0))
	log.Printf("average training score = %v\n", stat.Mean(trainScores, nil))

	s := e.Score(truth, pred)
	log.Printf("cross-validation score = %v\n", s)
	return s, nil
}

// evaluateFold fits the transforms and model on the training split of a fold
// and returns the training score plus the predictions for the evaluation
// split. When a cache is supplied and holds a result for this fold, the fit
// is skipped entirely.
func evaluateFold(x mat.Matrix, y []float64, m model.Model, e eval.Evaluator, transforms []transform.Transform, fold split.Fold, cache ScoreCacher, experiment string) (FoldResult, error) {
	var key string
	if cache != nil {
		var err error
		key, err = foldKey(experiment, fold)
		if err != nil {
			return FoldResult{}, err
		}
		if res, err := cache.Get(key); err == nil {
			return res, nil
		} else if err != ErrCacheMiss {
			return FoldResult{}, err
		}
	}

	xTrain, yTrain := rows(x, fold.Train), elems(y, fold.Train)
	xEval, yEval := rows(x, fold.Eval), elems(y, fold.Eval)

	if err := transform.Fit(xTrain, yTrain, transforms); err != nil {
		return FoldResult{}, errors.Wrap(err, "fitting transforms")
	}
	xTrainT, err := transform.Apply(xTrain, transforms)
	if err != nil {
		return FoldResult{}, err
	}
	xEvalT, err := transform.Apply(xEval, transforms)
	if err != nil {
		return FoldResult{}, err
	}

	if err := m.Fit(xTrainT, yTrain); err != nil {
		return FoldResult{}, errors.Wrap(err, "fitting model")
	}
	trainPred, err := m.Predict(xTrainT)
	if err != nil {
		return FoldResult{}, err
	}
	evalPred, err := m.Predict(xEvalT)
	if err != nil {
		return FoldResult{}, err
	}

	res := FoldResult{
		TrainScore: e.Score(yTrain, trainPred),
		Pred:       evalPred,
		Truth:      yEval,
	}
	if cache != nil {
		if err := cache.Set(key, res); err != nil {
			return FoldResult{}, err
		}
	}
	return res, nil
}
