// Package service defines interfaces for core, stateless domain logic
// and for outbound collaborators such as geocoding and storage.
package service

import (
	"context"
	"errors"

	"plaza/internal/domain/entity"
)

// Geocoding failure classes. Providers translate their wire-level
// statuses into these so the resolver chain can decide between
// "try the next provider" and "stop".
var (
	// ErrGeocodeDenied covers authorization and quota failures from a
	// provider. The same provider must never be retried for the query.
	ErrGeocodeDenied = errors.New("geocoding provider denied the request")

	// ErrGeocodeNoResults means the provider answered but found nothing.
	ErrGeocodeNoResults = errors.New("geocoding provider returned no results")
)

// Geocoder turns a postal code or free-text address into coordinates.
type Geocoder interface {
	// Geocode resolves the query to a location. Implementations return
	// ErrGeocodeDenied or ErrGeocodeNoResults (possibly wrapped) for
	// the classified failure modes.
	Geocode(ctx context.Context, query string) (*entity.Location, error)

	// Name identifies the provider in logs and errors.
	Name() string
}
