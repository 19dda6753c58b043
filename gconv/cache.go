// SPDX-License-Identifier: MIT

package gconv

import (
	"sync"

	"github.com/katalvlaran/graphconv/matrix"
)

// cacheKey identifies a filter set: a weights tensor at a given version
// combined with one operator instance.
type cacheKey struct {
	weights *Weights
	version uint64
	op      *matrix.Dense
}

// FilterCache keeps the most recent filter set built by a Layer. It holds a
// single entry; any weight update changes the version and forces a rebuild.
// Safe for concurrent use. The zero value is ready to use.
type FilterCache struct {
	mu      sync.Mutex
	key     cacheKey
	filters []*matrix.Dense
	hits    uint64
	misses  uint64
}

// NewFilterCache returns an empty cache.
func NewFilterCache() *FilterCache { return &FilterCache{} }

func (fc *FilterCache) get(key cacheKey) ([]*matrix.Dense, bool) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.filters != nil && fc.key == key {
		fc.hits++
		return fc.filters, true
	}
	fc.misses++

	return nil, false
}

func (fc *FilterCache) put(key cacheKey, filters []*matrix.Dense) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.key, fc.filters = key, filters
}

// Stats returns the hit and miss counters.
func (fc *FilterCache) Stats() (hits, misses uint64) {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	return fc.hits, fc.misses
}

// Reset drops the cached entry; counters are kept.
func (fc *FilterCache) Reset() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.key, fc.filters = cacheKey{}, nil
}
