package service

import (
	"context"
	"errors"

	"plaza/internal/domain/entity"
)

// ErrDistanceUnavailable means the matrix provider could not produce a
// route for the pair. Callers fall back to the straight-line estimate.
var ErrDistanceUnavailable = errors.New("distance provider returned no route")

// DistanceProvider computes travel distance and duration between two
// points, typically by calling an external routing matrix API.
type DistanceProvider interface {
	// Distance returns the travel distance in meters and duration in
	// seconds from origin to destination.
	Distance(ctx context.Context, origin, destination entity.Location) (meters, seconds int, err error)
}

// DistanceCache memoizes computed distance results per coordinate pair.
// Keys are coordinates, not entity IDs, so entities at the same place
// share one entry. Implementations bound their size.
type DistanceCache interface {
	// Get looks up a previously computed result for the pair.
	Get(origin, destination entity.Location) (entity.DistanceResult, bool)

	// Add stores a computed result for the pair.
	Add(origin, destination entity.Location, result entity.DistanceResult)
}
