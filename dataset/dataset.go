// Package dataset loads and describes the datasets that experiments run over.
package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Dataset pairs a feature matrix with a target vector of matching row count.
type Dataset struct {
	X     *mat.Dense
	Y     []float64
	Names []string
}

// New creates a dataset, validating that the features and targets have the
// same number of rows.
func New(x *mat.Dense, y []float64, names ...string) (Dataset, error) {
	r, c := x.Dims()
	if r != len(y) {
		return Dataset{}, errors.Errorf("features have %d rows but targets have %d", r, len(y))
	}
	if len(names) > 0 && len(names) != c {
		return Dataset{}, errors.Errorf("features have %d columns but %d names were given", c, len(names))
	}
	return Dataset{X: x, Y: y, Names: names}, nil
}

// Len returns the number of samples in the dataset.
func (d Dataset) Len() int {
	r, _ := d.X.Dims()
	return r
}

// FromCSV reads a numeric, comma-separated dataset with a header row, using
// the named column as the target.
func FromCSV(r io.Reader, target string) (Dataset, error) {
	return readCSV(r, target, ',')
}

func readCSV(r io.Reader, target string, comma rune) (Dataset, error) {
	c := csv.NewReader(r)
	c.Comma = comma
	records, err := c.ReadAll()
	if err != nil {
		return Dataset{}, errors.Wrap(err, "reading dataset")
	}
	if len(records) < 2 {
		return Dataset{}, errors.New("dataset must have a header row and at least one sample")
	}

	header := records[0]
	targetCol := -1
	for i, h := range header {
		if h == target {
			targetCol = i
			break
		}
	}
	if targetCol < 0 {
		return Dataset{}, errors.Errorf("target column %q not found in header", target)
	}

	rows := len(records) - 1
	cols := len(header) - 1
	x := mat.NewDense(rows, cols, nil)
	y := make([]float64, rows)
	names := make([]string, 0, cols)
	for i, h := range header {
		if i != targetCol {
			names = append(names, h)
		}
	}

	for i, record := range records[1:] {
		if len(record) != len(header) {
			return Dataset{}, errors.Errorf("row %d has %d fields but the header has %d", i+1, len(record), len(header))
		}
		j := 0
		for k, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return Dataset{}, errors.Wrapf(err, "parsing row %d column %q", i+1, header[k])
			}
			if k == targetCol {
				y[i] = v
			} else {
				x.Set(i, j, v)
				j++
			}
		}
	}
	return New(x, y, names...)
}
