package transform

import (
	"github.com/bugra/kmeans"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// kmeansThreshold is the iteration limit handed to the clustering routine.
const kmeansThreshold = 10

// KMeansFeatures appends the distance from each sample to each learned
// cluster centroid as extra feature columns.
type KMeansFeatures struct {
	K int

	centroids [][]float64
}

// NewKMeansFeatures creates an unfitted clustering transform with k clusters.
func NewKMeansFeatures(k int) *KMeansFeatures {
	return &KMeansFeatures{K: k}
}

// Fit clusters the training split and records the centroid of each cluster.
func (t *KMeansFeatures) Fit(x mat.Matrix, y []float64) error {
	r, c := x.Dims()
	if t.K < 1 {
		return errors.Errorf("cluster count must be at least 1, got %d", t.K)
	}
	if r < t.K {
		return errors.Errorf("cannot fit %d clusters on %d samples", t.K, r)
	}

	rows := make([][]float64, r)
	for i := 0; i < r; i++ {
		rows[i] = mat.Row(nil, i, x)
	}

	labels, err := kmeans.Kmeans(rows, t.K, kmeans.EuclideanDistance, kmeansThreshold)
	if err != nil {
		return errors.Wrap(err, "clustering training split")
	}

	centroids := make([][]float64, t.K)
	counts := make([]float64, t.K)
	for i := range centroids {
		centroids[i] = make([]float64, c)
	}
	for i, label := range labels {
		floats.Add(centroids[label], rows[i])
		counts[label]++
	}
	for i := range centroids {
		if counts[i] > 0 {
			floats.Scale(1/counts[i], centroids[i])
		}
	}
	t.centroids = centroids
	return nil
}

// Apply appends one distance-to-centroid column per cluster to x.
func (t *KMeansFeatures) Apply(x mat.Matrix) (mat.Matrix, error) {
	if t.centroids == nil {
		return nil, ErrNotFitted
	}
	r, c := x.Dims()
	if c != len(t.centroids[0]) {
		return nil, errors.Errorf("transform was fit on %d columns but given %d", len(t.centroids[0]), c)
	}
	out := mat.NewDense(r, c+len(t.centroids), nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, i, x)
		for j := 0; j < c; j++ {
			out.Set(i, j, row[j])
		}
		for k, centroid := range t.centroids {
			out.Set(i, c+k, floats.Distance(row, centroid, 2))
		}
	}
	return out, nil
}
