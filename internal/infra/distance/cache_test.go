package distance

import (
	"testing"

	"plaza/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_AddAndGet(t *testing.T) {
	cache, err := NewCache(16)
	require.NoError(t, err)

	origin := entity.Location{Lat: 52.52, Lng: 13.405}
	destination := entity.Location{Lat: 52.5, Lng: 13.39}
	result := entity.DistanceResult{
		DistanceMeters:  2500,
		DurationSeconds: 420,
		Method:          entity.DistanceMethodProvider,
	}

	_, ok := cache.Get(origin, destination)
	assert.False(t, ok)

	cache.Add(origin, destination, result)

	got, ok := cache.Get(origin, destination)
	require.True(t, ok)
	assert.Equal(t, result, got)
}

func TestCache_SharedAcrossNearbyCoordinates(t *testing.T) {
	cache, err := NewCache(16)
	require.NoError(t, err)

	origin := entity.Location{Lat: 52.52, Lng: 13.405}
	destination := entity.Location{Lat: 52.5, Lng: 13.39}
	cache.Add(origin, destination, entity.DistanceResult{DistanceMeters: 2500})

	// Below rounding precision: same physical spot, same cache entry.
	nudged := entity.Location{Lat: 52.520004, Lng: 13.405004}
	_, ok := cache.Get(nudged, destination)
	assert.True(t, ok)

	// Clearly a different place.
	elsewhere := entity.Location{Lat: 52.53, Lng: 13.42}
	_, ok = cache.Get(elsewhere, destination)
	assert.False(t, ok)
}

func TestCache_DirectionalKeys(t *testing.T) {
	cache, err := NewCache(16)
	require.NoError(t, err)

	a := entity.Location{Lat: 52.52, Lng: 13.405}
	b := entity.Location{Lat: 52.5, Lng: 13.39}
	cache.Add(a, b, entity.DistanceResult{DistanceMeters: 2500})

	// Routed distances are not symmetric; the reverse pair is its own entry.
	_, ok := cache.Get(b, a)
	assert.False(t, ok)
}

func TestCache_EvictsBeyondCapacity(t *testing.T) {
	cache, err := NewCache(2)
	require.NoError(t, err)

	destination := entity.Location{Lat: 0, Lng: 0}
	for i := 0; i < 3; i++ {
		origin := entity.Location{Lat: float64(i), Lng: 0}
		cache.Add(origin, destination, entity.DistanceResult{DistanceMeters: i})
	}

	assert.Equal(t, 2, cache.Len())

	// The oldest entry is gone.
	_, ok := cache.Get(entity.Location{Lat: 0, Lng: 0}, destination)
	assert.False(t, ok)
}
