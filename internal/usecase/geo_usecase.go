// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// BatchTarget is one candidate in a batch distance computation. A nil
// Location is allowed; such targets resolve to a nil result rather than
// an error.
type BatchTarget struct {
	ID       uuid.UUID
	Location *entity.Location
}

// GeoUsecase defines the interface for geocoding and distance use cases
type GeoUsecase interface {
	// Resolve turns a postal code or free-text address into coordinates
	// via the ordered provider chain
	Resolve(ctx context.Context, query string) (*entity.Location, error)

	// Distance computes the travel distance between two points, falling
	// back to a straight-line estimate when the routed provider cannot
	// answer
	Distance(ctx context.Context, origin, destination entity.Location) (*entity.DistanceResult, error)

	// DistanceBatch computes distances from one origin to many targets.
	// Targets without coordinates map to nil; they are never dropped.
	DistanceBatch(ctx context.Context, origin entity.Location, targets []BatchTarget) (map[uuid.UUID]*entity.DistanceResult, error)
}
