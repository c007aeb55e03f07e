// Package split constructs the train/evaluation splits used by cross-validation.
package split

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
	"github.com/xtgo/set"
)

// Indices is a set of row indices into a dataset. The set operations require
// the indices to be sorted.
type Indices []int

func (ix Indices) Len() int {
	return len(ix)
}

func (ix Indices) Less(i, j int) bool {
	return ix[i] < ix[j]
}

func (ix Indices) Swap(i, j int) {
	ix[i], ix[j] = ix[j], ix[i]
}

// Uniq sorts the indices and removes duplicates in-place.
func Uniq(ix Indices) Indices {
	sort.Sort(ix)
	n := set.Uniq(ix)
	return ix[:n]
}

// Union combines two sorted index sets into a new set.
func Union(a, b Indices) Indices {
	data := make(Indices, 0, len(a)+len(b))
	data = append(data, a...)
	data = append(data, b...)
	n := set.Union(data, len(a))
	return data[:n]
}

// complement computes [0, n) \ ix for a sorted ix.
func complement(n int, ix Indices) Indices {
	data := make(Indices, 0, n+len(ix))
	for i := 0; i < n; i++ {
		data = append(data, i)
	}
	data = append(data, ix...)
	size := set.Diff(data, n)
	return data[:size]
}

// Fold is one train/evaluation split. The two index sets are disjoint.
type Fold struct {
	Train Indices
	Eval  Indices
}

// KFold partitions the row indices [0, n) into k disjoint, shuffled evaluation
// groups. The seed makes the assignment of rows to folds reproducible. The
// training set of each fold is the complement of its evaluation group, so the
// evaluation groups of all folds cover every row exactly once.
func KFold(n, k int, seed int64) ([]Fold, error) {
	if n < 1 {
		return nil, errors.Errorf("cannot partition %d samples", n)
	}
	if k < 2 || k > n {
		return nil, errors.Errorf("fold count must be between 2 and the number of samples, got k=%d for n=%d", k, n)
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)

	// The first n%k folds receive one extra sample.
	size, rem := n/k, n%k
	folds := make([]Fold, k)
	start := 0
	for i := range folds {
		s := size
		if i < rem {
			s++
		}
		ev := make(Indices, s)
		copy(ev, perm[start:start+s])
		start += s
		sort.Sort(ev)
		folds[i] = Fold{
			Train: complement(n, ev),
			Eval:  ev,
		}
	}
	return folds, nil
}
