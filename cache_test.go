package crossfold_test

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/hscells/crossfold"
)

func TestMapScoreCache(t *testing.T) {
	cache := crossfold.NewMapScoreCache()

	if _, err := cache.Get("missing"); err != crossfold.ErrCacheMiss {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}

	res := crossfold.FoldResult{TrainScore: 0.5, Pred: []float64{1, 2}, Truth: []float64{1, 3}}
	if err := cache.Set("fold", res); err != nil {
		t.Fatal(err)
	}
	got, err := cache.Get("fold")
	if err != nil {
		t.Fatal(err)
	}
	if got.TrainScore != res.TrainScore || len(got.Pred) != 2 {
		t.Fatalf("unexpected cached result %+v", got)
	}
}

func TestFileScoreCache(t *testing.T) {
	dir, err := ioutil.TempDir("", "crossfold")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	cache := crossfold.NewFileScoreCache(dir)

	if _, err := cache.Get("0123456789abcdef"); err != crossfold.ErrCacheMiss {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}

	res := crossfold.FoldResult{TrainScore: 1.5, Pred: []float64{4}, Truth: []float64{5}}
	if err := cache.Set("0123456789abcdef", res); err != nil {
		t.Fatal(err)
	}
	got, err := cache.Get("0123456789abcdef")
	if err != nil {
		t.Fatal(err)
	}
	if got.TrainScore != 1.5 || got.Pred[0] != 4 || got.Truth[0] != 5 {
		t.Fatalf("unexpected cached result %+v", got)
	}
}

func TestBlockTransform(t *testing.T) {
	parts := crossfold.BlockTransform(4)("abcdefgh")
	if len(parts) != 2 || parts[0] != "abcd" || parts[1] != "efgh" {
		t.Fatalf("unexpected path parts %v", parts)
	}
}
