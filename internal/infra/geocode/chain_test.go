package geocode

import (
	"context"
	"testing"

	"plaza/internal/domain/entity"
	"plaza/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGeocoder counts calls and returns a canned result.
type stubGeocoder struct {
	name     string
	location *entity.Location
	err      error
	calls    int
}

func (s *stubGeocoder) Geocode(_ context.Context, _ string) (*entity.Location, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	return s.location, nil
}

func (s *stubGeocoder) Name() string {
	return s.name
}

func TestChainGeocoder_PrimarySucceeds(t *testing.T) {
	primary := &stubGeocoder{name: "primary", location: &entity.Location{Lat: 52.52, Lng: 13.405}}
	fallback := &stubGeocoder{name: "fallback", location: &entity.Location{Lat: 0, Lng: 0}}

	chain := NewChain(nil, primary, fallback)

	location, err := chain.Geocode(context.Background(), "10115 Berlin")
	require.NoError(t, err)
	assert.InDelta(t, 52.52, location.Lat, 1e-9)
	assert.InDelta(t, 13.405, location.Lng, 1e-9)

	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, fallback.calls, "fallback must not be consulted when the primary succeeds")
}

func TestChainGeocoder_FallsBackOnDenied(t *testing.T) {
	primary := &stubGeocoder{name: "primary", err: service.ErrGeocodeDenied}
	fallback := &stubGeocoder{name: "fallback", location: &entity.Location{Lat: 48.1351, Lng: 11.582}}

	chain := NewChain(nil, primary, fallback)

	location, err := chain.Geocode(context.Background(), "80331 Munich")
	require.NoError(t, err)
	assert.InDelta(t, 48.1351, location.Lat, 1e-9)

	// The denied provider is consulted exactly once, never retried.
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestChainGeocoder_AllProvidersFail(t *testing.T) {
	primary := &stubGeocoder{name: "primary", err: service.ErrGeocodeDenied}
	fallback := &stubGeocoder{name: "fallback", err: service.ErrGeocodeNoResults}

	chain := NewChain(nil, primary, fallback)

	location, err := chain.Geocode(context.Background(), "nowhere at all")
	require.Error(t, err)
	assert.Nil(t, location)
	assert.ErrorIs(t, err, service.ErrGeocodeNoResults)

	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
}

func TestChainGeocoder_NoProviders(t *testing.T) {
	chain := NewChain(nil)

	location, err := chain.Geocode(context.Background(), "anything")
	require.Error(t, err)
	assert.Nil(t, location)
	assert.ErrorIs(t, err, service.ErrGeocodeNoResults)
}
