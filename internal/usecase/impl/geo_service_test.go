package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"plaza/config"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	mockSvc "plaza/internal/mocks/service"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func geoTestConfig() *config.Config {
	return &config.Config{
		Distance: &config.DistanceConfig{
			DefaultSpeedKmh: 50.0,
			BatchWorkers:    2,
		},
	}
}

func TestGeoService_Resolve_Success(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	mockCache := mockSvc.NewMockDistanceCache(t)
	service := NewGeoService(GeoServiceParams{
		Config:   geoTestConfig(),
		Logger:   testLogger(),
		Geocoder: mockGeocoder,
		Cache:    mockCache,
	})

	ctx := context.Background()
	expected := &entity.Location{Lat: 52.52, Lng: 13.405}

	mockGeocoder.EXPECT().
		Geocode(ctx, "10115 Berlin").
		Return(expected, nil)

	location, err := service.Resolve(ctx, "  10115 Berlin  ")
	require.NoError(t, err)
	assert.Equal(t, expected, location)
}

func TestGeoService_Resolve_EmptyQuery(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	mockCache := mockSvc.NewMockDistanceCache(t)
	service := NewGeoService(GeoServiceParams{
		Config:   geoTestConfig(),
		Logger:   testLogger(),
		Geocoder: mockGeocoder,
		Cache:    mockCache,
	})

	location, err := service.Resolve(context.Background(), "   ")
	require.Error(t, err)
	assert.Nil(t, location)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestGeoService_Resolve_ChainFailure(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	mockCache := mockSvc.NewMockDistanceCache(t)
	service := NewGeoService(GeoServiceParams{
		Config:   geoTestConfig(),
		Logger:   testLogger(),
		Geocoder: mockGeocoder,
		Cache:    mockCache,
	})

	ctx := context.Background()

	mockGeocoder.EXPECT().
		Geocode(ctx, "nowhere at all").
		Return(nil, errors.New("all providers failed"))

	location, err := service.Resolve(ctx, "nowhere at all")
	require.Error(t, err)
	assert.Nil(t, location)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrGeocodingFailed.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "nowhere at all")
}

func TestGeoService_Resolve_CancelledContext(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	mockCache := mockSvc.NewMockDistanceCache(t)
	service := NewGeoService(GeoServiceParams{
		Config:   geoTestConfig(),
		Logger:   testLogger(),
		Geocoder: mockGeocoder,
		Cache:    mockCache,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mockGeocoder.EXPECT().
		Geocode(ctx, "10115 Berlin").
		Return(nil, context.Canceled)

	location, err := service.Resolve(ctx, "10115 Berlin")
	require.Error(t, err)
	assert.Nil(t, location)

	// Cancellation is not a geocoding failure.
	assert.ErrorIs(t, err, context.Canceled)
	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestGeoService_Distance_CacheHit(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	mockCache := mockSvc.NewMockDistanceCache(t)
	mockProvider := mockSvc.NewMockDistanceProvider(t)
	service := NewGeoService(GeoServiceParams{
		Config:   geoTestConfig(),
		Logger:   testLogger(),
		Geocoder: mockGeocoder,
		Cache:    mockCache,
		Provider: mockProvider,
	})

	origin := entity.Location{Lat: 52.52, Lng: 13.405}
	destination := entity.Location{Lat: 52.50, Lng: 13.42}
	cached := entity.DistanceResult{
		DistanceMeters:  2500,
		DurationSeconds: 420,
		Method:          entity.DistanceMethodProvider,
	}

	mockCache.EXPECT().
		Get(origin, destination).
		Return(cached, true)

	result, err := service.Distance(context.Background(), origin, destination)
	require.NoError(t, err)
	assert.Equal(t, cached, *result)
}

func TestGeoService_Distance_ProviderSuccess(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	mockCache := mockSvc.NewMockDistanceCache(t)
	mockProvider := mockSvc.NewMockDistanceProvider(t)
	service := NewGeoService(GeoServiceParams{
		Config:   geoTestConfig(),
		Logger:   testLogger(),
		Geocoder: mockGeocoder,
		Cache:    mockCache,
		Provider: mockProvider,
	})

	ctx := context.Background()
	origin := entity.Location{Lat: 52.52, Lng: 13.405}
	destination := entity.Location{Lat: 52.50, Lng: 13.42}

	mockCache.EXPECT().
		Get(origin, destination).
		Return(entity.DistanceResult{}, false)

	mockProvider.EXPECT().
		Distance(ctx, origin, destination).
		Return(3100, 540, nil)

	mockCache.EXPECT().
		Add(origin, destination, mock.AnythingOfType("entity.DistanceResult")).
		Return()

	result, err := service.Distance(ctx, origin, destination)
	require.NoError(t, err)
	assert.Equal(t, 3100, result.DistanceMeters)
	assert.Equal(t, 540, result.DurationSeconds)
	assert.Equal(t, entity.DistanceMethodProvider, result.Method)
	assert.False(t, result.IsEstimate())
}

func TestGeoService_Distance_ProviderFailureFallsBack(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	mockCache := mockSvc.NewMockDistanceCache(t)
	mockProvider := mockSvc.NewMockDistanceProvider(t)
	service := NewGeoService(GeoServiceParams{
		Config:   geoTestConfig(),
		Logger:   testLogger(),
		Geocoder: mockGeocoder,
		Cache:    mockCache,
		Provider: mockProvider,
	})

	ctx := context.Background()
	origin := entity.Location{Lat: 52.52, Lng: 13.405}
	destination := entity.Location{Lat: 53.55, Lng: 9.993}

	mockCache.EXPECT().
		Get(origin, destination).
		Return(entity.DistanceResult{}, false)

	mockProvider.EXPECT().
		Distance(ctx, origin, destination).
		Return(0, 0, errors.New("matrix quota exceeded"))

	mockCache.EXPECT().
		Add(origin, destination, mock.AnythingOfType("entity.DistanceResult")).
		Return()

	result, err := service.Distance(ctx, origin, destination)
	require.NoError(t, err)
	assert.Equal(t, entity.DistanceMethodStraightLine, result.Method)
	assert.True(t, result.IsEstimate())
	// Berlin to Hamburg is roughly 255 km in a straight line.
	assert.InDelta(t, 255_000, result.DistanceMeters, 5_000)
	assert.Positive(t, result.DurationSeconds)
	assert.Contains(t, result.DisplayDistance, "straight-line")
	assert.Contains(t, result.DisplayDuration, "estimated")
}

func TestGeoService_Distance_InvalidCoordinates(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	mockCache := mockSvc.NewMockDistanceCache(t)
	service := NewGeoService(GeoServiceParams{
		Config:   geoTestConfig(),
		Logger:   testLogger(),
		Geocoder: mockGeocoder,
		Cache:    mockCache,
	})

	origin := entity.Location{Lat: 95.0, Lng: 13.405}
	destination := entity.Location{Lat: 52.50, Lng: 13.42}

	result, err := service.Distance(context.Background(), origin, destination)
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestGeoService_DistanceBatch_MissingLocationDegrades(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	mockCache := mockSvc.NewMockDistanceCache(t)
	service := NewGeoService(GeoServiceParams{
		Config:   geoTestConfig(),
		Logger:   testLogger(),
		Geocoder: mockGeocoder,
		Cache:    mockCache,
	})

	ctx := context.Background()
	origin := entity.Location{Lat: 52.52, Lng: 13.405}

	located := usecase.BatchTarget{
		ID:       uuid.New(),
		Location: &entity.Location{Lat: 52.50, Lng: 13.42},
	}
	unlocated := usecase.BatchTarget{ID: uuid.New()}

	cached := entity.DistanceResult{
		DistanceMeters:  2500,
		DurationSeconds: 420,
		Method:          entity.DistanceMethodProvider,
	}
	mockCache.EXPECT().
		Get(origin, *located.Location).
		Return(cached, true)

	results, err := service.DistanceBatch(ctx, origin, []usecase.BatchTarget{located, unlocated})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.NotNil(t, results[located.ID])
	assert.Equal(t, cached, *results[located.ID])
	assert.Nil(t, results[unlocated.ID])
}

func TestGeoService_DistanceBatch_OriginJitterReusesCacheKeys(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	mockCache := mockSvc.NewMockDistanceCache(t)
	service := NewGeoService(GeoServiceParams{
		Config:   geoTestConfig(),
		Logger:   testLogger(),
		Geocoder: mockGeocoder,
		Cache:    mockCache,
	})

	ctx := context.Background()
	firstOrigin := entity.Location{Lat: 52.5200, Lng: 13.4050}
	jitteredOrigin := entity.Location{Lat: 52.5205, Lng: 13.4046}
	target := usecase.BatchTarget{
		ID:       uuid.New(),
		Location: &entity.Location{Lat: 52.50, Lng: 13.42},
	}

	var mu sync.Mutex
	var seenOrigins []entity.Location
	mockCache.EXPECT().
		Get(mock.AnythingOfType("entity.Location"), *target.Location).
		Run(func(origin entity.Location, _ entity.Location) {
			mu.Lock()
			seenOrigins = append(seenOrigins, origin)
			mu.Unlock()
		}).
		Return(entity.DistanceResult{DistanceMeters: 2500, Method: entity.DistanceMethodProvider}, true)

	_, err := service.DistanceBatch(ctx, firstOrigin, []usecase.BatchTarget{target})
	require.NoError(t, err)

	_, err = service.DistanceBatch(ctx, jitteredOrigin, []usecase.BatchTarget{target})
	require.NoError(t, err)

	require.Len(t, seenOrigins, 2)
	assert.Equal(t, firstOrigin, seenOrigins[0])
	// The jittered origin snaps back to the first one, so the cache is
	// queried with byte-identical coordinates.
	assert.Equal(t, firstOrigin, seenOrigins[1])
}

func TestGeoService_DistanceBatch_InvalidOrigin(t *testing.T) {
	mockGeocoder := mockSvc.NewMockGeocoder(t)
	mockCache := mockSvc.NewMockDistanceCache(t)
	service := NewGeoService(GeoServiceParams{
		Config:   geoTestConfig(),
		Logger:   testLogger(),
		Geocoder: mockGeocoder,
		Cache:    mockCache,
	})

	results, err := service.DistanceBatch(context.Background(), entity.Location{Lat: 0, Lng: 200}, nil)
	require.Error(t, err)
	assert.Nil(t, results)
}

func TestHaversineDistanceKm_Properties(t *testing.T) {
	// Identical points are zero distance apart.
	assert.InDelta(t, 0.0, haversineDistanceKm(52.52, 13.405, 52.52, 13.405), 1e-9)

	// The function is symmetric in its endpoints.
	forward := haversineDistanceKm(52.52, 13.405, 53.55, 9.993)
	backward := haversineDistanceKm(53.55, 9.993, 52.52, 13.405)
	assert.InDelta(t, forward, backward, 1e-9)

	// Berlin to Hamburg is roughly 255 km.
	assert.InDelta(t, 255.0, forward, 5.0)
}

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, isValidCoordinate(entity.Location{Lat: 52.52, Lng: 13.405}))
	assert.True(t, isValidCoordinate(entity.Location{Lat: -90, Lng: 180}))
	assert.False(t, isValidCoordinate(entity.Location{Lat: 90.01, Lng: 0}))
	assert.False(t, isValidCoordinate(entity.Location{Lat: 0, Lng: -180.5}))
}
