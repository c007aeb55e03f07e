// Package output provides different formats of output for experiments.
package output

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Report is a set of named scores grouped by experiment.
type Report map[string]map[string]float64

// EvaluationFormatter is used in a crossfold pipeline to output evaluation
// results.
type EvaluationFormatter func(Report) (string, error)

// JsonEvaluationFormatter outputs results in a JSON format.
func JsonEvaluationFormatter(results Report) (string, error) {
	v, err := json.MarshalIndent(results, "", "    ")
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// CsvEvaluationFormatter outputs results as comma-separated rows, one per
// experiment and measure pair.
func CsvEvaluationFormatter(results Report) (string, error) {
	experiments := make([]string, 0, len(results))
	for experiment := range results {
		experiments = append(experiments, experiment)
	}
	sort.Strings(experiments)

	var b strings.Builder
	b.WriteString("experiment,measure,score\n")
	for _, experiment := range experiments {
		measures := make([]string, 0, len(results[experiment]))
		for measure := range results[experiment] {
			measures = append(measures, measure)
		}
		sort.Strings(measures)
		for _, measure := range measures {
			b.WriteString(experiment)
			b.WriteString(",")
			b.WriteString(measure)
			b.WriteString(",")
			b.WriteString(strconv.FormatFloat(results[experiment][measure], 'f', -1, 64))
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
