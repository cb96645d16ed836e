package distance

import (
	"math"

	"plaza/internal/domain/entity"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// cacheKeyPrecision rounds coordinates to ~11 m so that entities at the
// same physical location share one cache entry.
const cacheKeyPrecision = 1e4

const defaultCacheSize = 4096

// pairKey identifies one origin-destination pair at reduced precision.
type pairKey struct {
	originLat, originLng           int64
	destinationLat, destinationLng int64
}

// Cache is a bounded LRU of computed distance results keyed on rounded
// coordinate pairs. It is owned by whichever engine it is injected into;
// there is no package-level instance.
type Cache struct {
	entries *lru.Cache[pairKey, entity.DistanceResult]
}

// NewCache creates a distance cache holding up to size coordinate pairs.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = defaultCacheSize
	}

	entries, err := lru.New[pairKey, entity.DistanceResult](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create distance cache")
	}

	return &Cache{entries: entries}, nil
}

// Get looks up a previously computed result for the pair.
func (c *Cache) Get(origin, destination entity.Location) (entity.DistanceResult, bool) {
	return c.entries.Get(makeKey(origin, destination))
}

// Add stores a computed result for the pair.
func (c *Cache) Add(origin, destination entity.Location, result entity.DistanceResult) {
	c.entries.Add(makeKey(origin, destination), result)
}

// Len returns the number of cached pairs.
func (c *Cache) Len() int {
	return c.entries.Len()
}

func makeKey(origin, destination entity.Location) pairKey {
	return pairKey{
		originLat:      roundCoordinate(origin.Lat),
		originLng:      roundCoordinate(origin.Lng),
		destinationLat: roundCoordinate(destination.Lat),
		destinationLng: roundCoordinate(destination.Lng),
	}
}

func roundCoordinate(value float64) int64 {
	return int64(math.Round(value * cacheKeyPrecision))
}
