package output

import (
	"fmt"
)

// Series is a named line on a figure.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Band is a shaded region between two curves.
type Band struct {
	X     []float64
	Lower []float64
	Upper []float64
}

// Figure is a renderer-independent description of a plot.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
	Bands  []Band
}

// Renderer renders figures.
type Renderer interface {
	Render(f Figure) error
}

// MemoryRenderer collects rendered figures in memory.
type MemoryRenderer struct {
	Figures []Figure
}

// Render appends the figure to the renderer.
func (m *MemoryRenderer) Render(f Figure) error {
	m.Figures = append(m.Figures, f)
	return nil
}

// EstimationErrorFigure builds the per-fold estimation error figure, plotting
// predicted minus actual for each evaluation sample.
func EstimationErrorFigure(fold int, pred, actual []float64) Figure {
	n := len(pred)
	if len(actual) < n {
		n = len(actual)
	}
	x := make([]float64, n)
	e := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		e[i] = pred[i] - actual[i]
	}
	return Figure{
		Title:  "Estimation Error",
		XLabel: "Sample",
		YLabel: "Predicted - Actual",
		Series: []Series{
			{Name: fmt.Sprintf("fold %d", fold+1), X: x, Y: e},
		},
	}
}

// LearningCurveFigure builds the learning curve figure, with one shaded band
// of one standard deviation around both the training and validation curves.
func LearningCurveFigure(sizes, trainMean, trainStd, validationMean, validationStd []float64) Figure {
	return Figure{
		Title:  "Learning Curve",
		XLabel: "Training Examples",
		YLabel: "Score",
		Series: []Series{
			{Name: "Training score", X: sizes, Y: trainMean},
			{Name: "Cross-validation score", X: sizes, Y: validationMean},
		},
		Bands: []Band{
			band(sizes, trainMean, trainStd),
			band(sizes, validationMean, validationStd),
		},
	}
}

func band(x, mean, std []float64) Band {
	lower := make([]float64, len(mean))
	upper := make([]float64, len(mean))
	for i := range mean {
		lower[i] = mean[i] - std[i]
		upper[i] = mean[i] + std[i]
	}
	return Band{X: x, Lower: lower, Upper: upper}
}
