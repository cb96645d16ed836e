// Package geocode provides concrete implementations of the Geocoder
// domain service, one per upstream provider, plus the ordered chain
// that strings them together.
package geocode

import (
	"context"
	"strings"

	"plaza/config"
	"plaza/internal/domain/entity"
	"plaza/internal/domain/service"

	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

// googleGeocoder resolves addresses through the Google Maps Geocoding API.
type googleGeocoder struct {
	client *maps.Client
	region string
}

// NewGoogleGeocoder is the constructor for googleGeocoder.
func NewGoogleGeocoder(cfg *config.Config) (service.Geocoder, error) {
	if cfg.Geocoding == nil || cfg.Geocoding.GoogleAPIKey == "" {
		return nil, errors.New("google geocoding api key must be provided")
	}

	client, err := maps.NewClient(maps.WithAPIKey(cfg.Geocoding.GoogleAPIKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create google maps client")
	}

	return &googleGeocoder{
		client: client,
		region: cfg.Geocoding.Region,
	}, nil
}

// Geocode resolves the query through the Geocoding API.
func (g *googleGeocoder) Geocode(ctx context.Context, query string) (*entity.Location, error) {
	request := &maps.GeocodingRequest{
		Address: query,
		Region:  g.region,
	}

	results, err := g.client.Geocode(ctx, request)
	if err != nil {
		if isDeniedStatus(err) {
			return nil, errors.Wrap(service.ErrGeocodeDenied, err.Error())
		}

		return nil, errors.Wrap(err, "google geocoding request failed")
	}

	if len(results) == 0 {
		return nil, service.ErrGeocodeNoResults
	}

	location := results[0].Geometry.Location

	return &entity.Location{
		Lat: location.Lat,
		Lng: location.Lng,
	}, nil
}

// Name identifies the provider in logs and errors.
func (g *googleGeocoder) Name() string {
	return "google"
}

// isDeniedStatus reports whether the upstream rejected the request for
// authorization or quota reasons. The maps client surfaces these as
// error strings carrying the API status code.
func isDeniedStatus(err error) bool {
	message := err.Error()

	return strings.Contains(message, "REQUEST_DENIED") ||
		strings.Contains(message, "OVER_QUERY_LIMIT") ||
		strings.Contains(message, "OVER_DAILY_LIMIT")
}
