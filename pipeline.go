package crossfold

import (
	"log"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/hscells/crossfold/dataset"
	"github.com/hscells/crossfold/eval"
	"github.com/hscells/crossfold/model"
	"github.com/hscells/crossfold/output"
	"github.com/hscells/crossfold/transform"
	"github.com/pkg/errors"
)

// Pipeline contains all the information for executing a cross-validation
// experiment over one dataset and model.
type Pipeline struct {
	Dataset              dataset.Dataset
	Model                model.Model
	Transforms           []transform.Transform
	Evaluations          []eval.Evaluator
	EvaluationFormatters []output.EvaluationFormatter
	Folds                int
	Validation           ValidationConfiguration
	SequenceOptions      []SequenceOption
	CurveOptions         []CurveOption
	Renderer             output.Renderer
	ScoreCache           ScoreCacher
}

// ValidationConfiguration specifies which validation procedures the pipeline
// runs.
type ValidationConfiguration struct {
	CrossValidate bool
	Sequence      bool
	Curve         bool
}

// Evaluation adds evaluation measures to the pipeline.
func Evaluation(measures ...eval.Evaluator) func() interface{} {
	return func() interface{} {
		return measures
	}
}

// Transforms adds preprocessing transforms to the pipeline.
func Transforms(transforms ...transform.Transform) func() interface{} {
	return func() interface{} {
		return transforms
	}
}

// EvaluationOutput adds report formatters to the pipeline.
func EvaluationOutput(formatters ...output.EvaluationFormatter) func() interface{} {
	return func() interface{} {
		return formatters
	}
}

// Validate configures which validation procedures the pipeline runs.
func Validate(configuration ValidationConfiguration) func() interface{} {
	return func() interface{} {
		return configuration
	}
}

// NewPipeline creates a new crossfold pipeline. The dataset and model are
// required; additional components are provided via the optional functional
// arguments.
func NewPipeline(d dataset.Dataset, m model.Model, components ...func() interface{}) Pipeline {
	p := Pipeline{
		Dataset: d,
		Model:   m,
		Folds:   5,
		Validation: ValidationConfiguration{
			CrossValidate: true,
		},
	}

	for _, component := range components {
		val := component()
		switch v := val.(type) {
		case []eval.Evaluator:
			p.Evaluations = v
		case []transform.Transform:
			p.Transforms = v
		case []output.EvaluationFormatter:
			p.EvaluationFormatters = v
		case ValidationConfiguration:
			p.Validation = v
		}
	}

	return p
}

// Execute runs the configured validation procedures, streaming typed results
// over c. The channel is closed when the run terminates, either with a Done
// result or after an Error result.
func (p Pipeline) Execute(c chan Result) {
	defer close(c)

	run := uuid.New().String()
	log.Printf("starting crossfold pipeline %s...\n", run)

	if p.ScoreCache == nil {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			c <- Result{Run: run, Error: err, Type: Error}
			return
		}
		p.ScoreCache = NewFileScoreCache(path.Join(cacheDir, "crossfold", "score_cache"))
	}

	folds := p.Folds
	if folds == 0 {
		folds = 5
	}

	if len(p.Evaluations) == 0 {
		c <- Result{Run: run, Error: errors.New("a pipeline requires at least one evaluation measure"), Type: Error}
		return
	}

	report := make(output.Report)
	record := func(experiment, measure string, score float64) {
		if _, ok := report[experiment]; !ok {
			report[experiment] = make(map[string]float64)
		}
		report[experiment][measure] = score
	}

	for _, e := range p.Evaluations {
		if p.Validation.CrossValidate {
			score, err := CrossValidate(p.Dataset.X, p.Dataset.Y, p.Model, e, p.Transforms, folds, WithScoreCache(p.ScoreCache))
			if err != nil {
				c <- Result{Run: run, Error: err, Type: Error}
				return
			}
			record("cross_validation", e.Name(), score)
			c <- Result{Run: run, Measure: e.Name(), Score: score, Type: Validation}
		}

		if p.Validation.Sequence {
			opts := p.SequenceOptions
			if p.Renderer != nil {
				opts = append(opts, Plot(p.Renderer))
			}
			score, err := SequenceCrossValidate(p.Dataset.X, p.Dataset.Y, p.Model, e, p.Transforms, folds, opts...)
			if err != nil {
				c <- Result{Run: run, Error: err, Type: Error}
				return
			}
			record("sequence_cross_validation", e.Name(), score)
			c <- Result{Run: run, Measure: e.Name(), Score: score, Type: Sequence}
		}
	}

	if p.Validation.Curve {
		opts := p.CurveOptions
		if p.Renderer != nil {
			opts = append(opts, Render(p.Renderer))
		}
		// The learning curve uses the first evaluation measure.
		e := p.Evaluations[0]
		curve, err := LearningCurve(p.Dataset.X, p.Dataset.Y, p.Model, e, p.Transforms, folds, opts...)
		if err != nil {
			c <- Result{Run: run, Error: err, Type: Error}
			return
		}
		c <- Result{Run: run, Measure: e.Name(), Curve: &curve, Type: Learning}
	}

	for _, formatter := range p.EvaluationFormatters {
		formatted, err := formatter(report)
		if err != nil {
			c <- Result{Run: run, Error: err, Type: Error}
			return
		}
		c <- Result{Run: run, Evaluations: formatted, Type: Evaluated}
	}

	c <- Result{Run: run, Type: Done}
}
