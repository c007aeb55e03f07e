package crossfold

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"fmt"
	"math"

	"github.com/hscells/crossfold/eval"
	"github.com/hscells/crossfold/model"
	"github.com/hscells/crossfold/split"
	"github.com/hscells/crossfold/transform"
	"github.com/peterbourgon/diskv"
	"gonum.org/v1/gonum/mat"
)

// ErrCacheMiss is returned when a fold result is not present in a score cache.
var ErrCacheMiss = errors.New("cache miss error")

// BlockTransform slices a key into fixed-width path segments so that diskv
// nests cache files into directories instead of flooding a single one.
func BlockTransform(width int) func(string) []string {
	return func(key string) []string {
		blocks := make([]string, 0, len(key)/width)
		for i := 0; i+width <= len(key); i += width {
			blocks = append(blocks, key[i:i+width])
		}
		return blocks
	}
}

// experimentKey identifies a cross-validation experiment: the dataset
// contents, the model and its parameters, the transforms, and the evaluation
// measure. Experiments differing in any of these never share cached fold
// results, even in a persistent cache shared between runs.
func experimentKey(x mat.Matrix, y []float64, m model.Model, e eval.Evaluator, transforms []transform.Transform) string {
	h := sha256.New()
	r, c := x.Dims()
	fmt.Fprintf(h, "%dx%d:", r, c)
	buf := make([]byte, 8)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			binary.LittleEndian.PutUint64(buf, math.Float64bits(x.At(i, j)))
			h.Write(buf)
		}
	}
	for _, v := range y {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(v))
		h.Write(buf)
	}
	fmt.Fprintf(h, "%T%+v", m, m)
	for _, t := range transforms {
		fmt.Fprintf(h, "%T", t)
	}
	fmt.Fprintf(h, "%s", e.Name())
	return fmt.Sprintf("%x", h.Sum(nil))
}

// foldKey extends an experiment key with the fold's index sets.
func foldKey(experiment string, fold split.Fold) (string, error) {
	var buff bytes.Buffer
	if err := gob.NewEncoder(&buff).Encode(fold); err != nil {
		return "", err
	}
	h := sha256.New()
	fmt.Fprintf(h, "%s:", experiment)
	h.Write(buff.Bytes())
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// ScoreCacher models a way to cache (either persistent or not) the results of
// evaluating folds.
type ScoreCacher interface {
	Get(key string) (FoldResult, error)
	Set(key string, res FoldResult) error
}

type mapScoreCache struct {
	m map[string]FoldResult
}

func (m mapScoreCache) Get(key string) (FoldResult, error) {
	if res, ok := m.m[key]; ok {
		return res, nil
	}
	return FoldResult{}, ErrCacheMiss
}

func (m mapScoreCache) Set(key string, res FoldResult) error {
	m.m[key] = res
	return nil
}

// NewMapScoreCache creates a score cache out of a regular go map.
func NewMapScoreCache() ScoreCacher {
	return mapScoreCache{m: make(map[string]FoldResult)}
}

type diskvScoreCache struct {
	*diskv.Diskv
}

func (d diskvScoreCache) Get(key string) (FoldResult, error) {
	b, err := d.Read(key)
	if err != nil {
		return FoldResult{}, ErrCacheMiss
	}
	var res FoldResult
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&res); err != nil {
		return FoldResult{}, err
	}
	return res, nil
}

func (d diskvScoreCache) Set(key string, res FoldResult) error {
	var buff bytes.Buffer
	if err := gob.NewEncoder(&buff).Encode(res); err != nil {
		return err
	}
	return d.Write(key, buff.Bytes())
}

// NewDiskvScoreCache creates a new on-disk score cache with the specified
// diskv parameters.
func NewDiskvScoreCache(dv *diskv.Diskv) ScoreCacher {
	return diskvScoreCache{dv}
}

// NewFileScoreCache creates an on-disk score cache rooted at the given path.
func NewFileScoreCache(path string) ScoreCacher {
	return NewDiskvScoreCache(diskv.New(diskv.Options{
		BasePath:     path,
		Transform:    BlockTransform(8),
		CacheSizeMax: 4096 * 1024,
		Compression:  diskv.NewGzipCompression(),
	}))
}
