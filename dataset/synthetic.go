package dataset

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// SyntheticRegression generates a seeded linear regression dataset with
// gaussian noise. The target is 1 + sum((j+1) * x_j) over the feature
// columns.
func SyntheticRegression(n, features int, noise float64, seed int64) Dataset {
	rng := rand.New(rand.NewSource(seed))
	x := mat.NewDense(n, features, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		y[i] = 1
		for j := 0; j < features; j++ {
			v := rng.NormFloat64()
			x.Set(i, j, v)
			y[i] += float64(j+1) * v
		}
		y[i] += noise * rng.NormFloat64()
	}
	d, _ := New(x, y)
	return d
}

// SyntheticSeries generates a seeded time series with a linear trend and a
// seasonal component. Each sample's features are its position in the series
// and the previous target value.
func SyntheticSeries(n int, noise float64, seed int64) Dataset {
	rng := rand.New(rand.NewSource(seed))
	x := mat.NewDense(n, 2, nil)
	y := make([]float64, n)
	prev := 0.0
	for i := 0; i < n; i++ {
		y[i] = 0.3*float64(i) + math.Sin(float64(i)/5) + noise*rng.NormFloat64()
		x.Set(i, 0, float64(i))
		x.Set(i, 1, prev)
		prev = y[i]
	}
	d, _ := New(x, y)
	return d
}
