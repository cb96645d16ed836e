// Package distance provides the routed distance-matrix provider and the
// bounded cache used by the distance engine.
package distance

import (
	"context"
	"fmt"

	"plaza/config"
	"plaza/internal/domain/entity"
	"plaza/internal/domain/service"

	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

// googleMatrix computes travel distances through the Google Distance Matrix API.
type googleMatrix struct {
	client *maps.Client
}

// NewGoogleMatrix is the constructor for googleMatrix.
func NewGoogleMatrix(cfg *config.Config) (service.DistanceProvider, error) {
	if cfg.Geocoding == nil || cfg.Geocoding.GoogleAPIKey == "" {
		return nil, errors.New("google maps api key must be provided")
	}

	client, err := maps.NewClient(maps.WithAPIKey(cfg.Geocoding.GoogleAPIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create google maps client")
	}

	return &googleMatrix{client: client}, nil
}

// Distance returns the routed travel distance and duration between two points.
// A per-element failure (e.g. NOT_FOUND for an unroutable pair) surfaces as
// ErrDistanceUnavailable so the caller can fall back, independent of the
// envelope status.
func (p *googleMatrix) Distance(ctx context.Context, origin, destination entity.Location) (int, int, error) {
	request := &maps.DistanceMatrixRequest{
		Origins:      []string{formatCoordinate(origin)},
		Destinations: []string{formatCoordinate(destination)},
	}

	response, err := p.client.DistanceMatrix(ctx, request)
	if err != nil {
		return 0, 0, errors.Wrap(err, "distance matrix request failed")
	}

	if len(response.Rows) == 0 || len(response.Rows[0].Elements) == 0 {
		return 0, 0, service.ErrDistanceUnavailable
	}

	element := response.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, 0, errors.Wrapf(service.ErrDistanceUnavailable, "element status %s", element.Status)
	}

	return element.Distance.Meters, int(element.Duration.Seconds()), nil
}

func formatCoordinate(location entity.Location) string {
	return fmt.Sprintf("%f,%f", location.Lat, location.Lng)
}
