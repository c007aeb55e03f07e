package split

import (
	"github.com/pkg/errors"
)

// Strategy determines how many windows a series is cut into.
type Strategy uint8

const (
	// Traditional uses a caller-supplied number of folds, each of size n/nFolds.
	Traditional Strategy = iota
	// WalkForward advances the evaluation window one sample at a time across
	// nearly the whole series; the fold count is derived, not caller-supplied.
	WalkForward
)

// String returns the name a strategy is known by in configuration.
func (s Strategy) String() string {
	if s == WalkForward {
		return "walk-forward"
	}
	return "traditional"
}

// ParseStrategy resolves a strategy from its configuration name.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "traditional", "":
		return Traditional, nil
	case "walk-forward":
		return WalkForward, nil
	}
	return Traditional, errors.Errorf("unknown windowing strategy %q", s)
}

// WindowType determines how the start of the training window advances.
type WindowType uint8

const (
	// Cumulative pins the training window start at index 0 for every fold.
	Cumulative WindowType = iota
	// Fixed slides the training window forward, advancing the start each fold.
	Fixed
)

// String returns the name a window type is known by in configuration.
func (w WindowType) String() string {
	if w == Fixed {
		return "fixed"
	}
	return "cumulative"
}

// ParseWindowType resolves a window type from its configuration name.
func ParseWindowType(s string) (WindowType, error) {
	switch s {
	case "cumulative", "":
		return Cumulative, nil
	case "fixed":
		return Fixed, nil
	}
	return Cumulative, errors.Errorf("unknown window type %q", s)
}

// Window is one contiguous train/evaluation range over an ordered series.
// The training split is [Start, TrainEnd) and the evaluation split is
// [TrainEnd, End).
type Window struct {
	Start    int
	TrainEnd int
	End      int
}

// Windows plans the train/evaluation ranges for windowed cross-validation over
// a series of n samples. Under Traditional the fold size is n/nFolds with
// integer truncation, so trailing samples beyond nFolds*foldSize are never
// evaluated. Under WalkForward nFolds is ignored and n-minWindow-forecastRange
// one-sample folds are produced.
func Windows(n, nFolds int, strategy Strategy, windowType WindowType, minWindow, forecastRange int) ([]Window, error) {
	if minWindow < 0 {
		return nil, errors.Errorf("minimum window must not be negative, got %d", minWindow)
	}
	if forecastRange < 1 {
		return nil, errors.Errorf("forecast range must be at least 1, got %d", forecastRange)
	}

	var foldSize int
	if strategy == WalkForward {
		nFolds = n - minWindow - forecastRange
		foldSize = 1
		if nFolds < 1 {
			return nil, errors.Errorf("series of %d samples is too short for a minimum window of %d and forecast range of %d", n, minWindow, forecastRange)
		}
	} else {
		if nFolds < 1 {
			return nil, errors.Errorf("fold count must be at least 1, got %d", nFolds)
		}
		foldSize = n / nFolds
		if foldSize < 1 {
			return nil, errors.Errorf("fold count %d exceeds the number of samples %d", nFolds, n)
		}
	}

	windows := make([]Window, nFolds)
	for i := range windows {
		start := 0
		if windowType == Fixed {
			start = i * foldSize
		}
		end := (i+1)*foldSize + minWindow
		trainEnd := end - forecastRange
		// A minimum window can push the final folds past the end of the
		// series; clamp rather than fail, so those folds evaluate on
		// whatever samples remain.
		if end > n {
			end = n
		}
		if trainEnd > n {
			trainEnd = n
		}
		windows[i] = Window{
			Start:    start,
			TrainEnd: trainEnd,
			End:      end,
		}
	}

	if first := windows[0]; first.TrainEnd <= first.Start {
		return nil, errors.Errorf("first training window [%d, %d) is empty; increase the minimum window or reduce the forecast range", first.Start, first.TrainEnd)
	}

	// Clamping can leave trailing windows with nothing to evaluate; drop them.
	kept := windows[:0]
	for _, w := range windows {
		if w.End > w.TrainEnd {
			kept = append(kept, w)
		}
	}
	return kept, nil
}
