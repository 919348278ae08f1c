// Package rates provides the municipality tax-rate reference cache.
//
// The cache is built once at startup from the cantonal Steuerfuss CSV export
// and is read-only afterwards, so it can be shared across goroutines without
// locking.
package rates

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ErrNotLoaded is returned when a command needs municipality rates but no
// cache was constructed.
var ErrNotLoaded = errors.New("municipality rate cache not loaded")

// Cache provides in-memory lookup of municipality tax rates by BFS number.
type Cache struct {
	byBFS      map[int]MunicipalityTaxRates
	duplicates int
}

// NewCache builds a Cache from already-parsed rates.
func NewCache(byBFS map[int]MunicipalityTaxRates, duplicates int) *Cache {
	return &Cache{byBFS: byBFS, duplicates: duplicates}
}

// Load reads the rate CSV from disk and returns a populated Cache.
func Load(path string, logger *zap.Logger) (*Cache, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rates CSV: %w", err)
	}
	defer f.Close()

	byBFS, duplicates, err := ReadRates(f, logger)
	if err != nil {
		return nil, fmt.Errorf("reading rates CSV %s: %w", path, err)
	}

	logger.Info("municipality rates loaded",
		zap.String("path", path),
		zap.Int("municipalities", len(byBFS)),
		zap.Int("duplicates", duplicates))

	return NewCache(byBFS, duplicates), nil
}

// Get returns the rates for a BFS number.
func (c *Cache) Get(bfs int) (MunicipalityTaxRates, bool) {
	r, ok := c.byBFS[bfs]
	return r, ok
}

// Len returns the number of distinct municipalities in the cache.
func (c *Cache) Len() int {
	return len(c.byBFS)
}

// Duplicates returns how many rows were overwritten by a later row with the
// same BFS number during the load.
func (c *Cache) Duplicates() int {
	return c.duplicates
}
