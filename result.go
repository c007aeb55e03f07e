package crossfold

// ResultType indicates what kind of result a pipeline emits.
type ResultType uint8

const (
	// Validation is a k-fold cross-validation score.
	Validation ResultType = iota
	// Sequence is a windowed cross-validation score.
	Sequence
	// Learning is a completed learning curve.
	Learning
	// Evaluated is a formatted report over every score in the run.
	Evaluated
	// Error terminates a run.
	Error
	// Done is the last result of a successful run.
	Done
)

// String names the result type for progress output.
func (t ResultType) String() string {
	switch t {
	case Validation:
		return "cross-validation"
	case Sequence:
		return "sequence cross-validation"
	case Learning:
		return "learning curve"
	case Evaluated:
		return "evaluation"
	case Error:
		return "error"
	}
	return "done"
}

// Result is the output of a crossfold pipeline.
type Result struct {
	// Run identifies the pipeline execution the result belongs to.
	Run     string
	Measure string
	Score   float64
	Curve   *Curve
	// Evaluations is a formatted report, one per configured formatter.
	Evaluations string
	Error       error
	Type        ResultType
}
