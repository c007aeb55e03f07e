package dataset

import (
	lru "github.com/hashicorp/golang-lru"
)

// Loader loads datasets from manifests, keeping the most recently used
// datasets in memory so repeated experiments over the same data avoid
// re-parsing it.
type Loader struct {
	cache *lru.Cache
}

// NewLoader creates a loader that caches up to size datasets.
func NewLoader(size int) (*Loader, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Loader{cache: c}, nil
}

// Load reads the manifest at path and returns its dataset, reusing a cached
// copy when one exists.
func (l *Loader) Load(path string) (Dataset, error) {
	if v, ok := l.cache.Get(path); ok {
		return v.(Dataset), nil
	}
	m, err := LoadManifest(path)
	if err != nil {
		return Dataset{}, err
	}
	d, err := m.Load()
	if err != nil {
		return Dataset{}, err
	}
	l.cache.Add(path, d)
	return d, nil
}
