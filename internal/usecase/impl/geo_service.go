// Package impl contains the implementations of the use case interfaces.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"plaza/config"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/service"
	"plaza/internal/usecase"
	"plaza/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// fallbackSpeedKmh is the assumed travel speed for estimating a
	// duration when only a straight-line distance is available.
	fallbackSpeedKmh = 50.0

	// originJitterDegrees is the per-axis movement below which a new
	// batch origin is treated as unchanged, so GPS jitter does not
	// invalidate previously cached pairs.
	originJitterDegrees = 0.001

	defaultBatchWorkers = 8
)

type geoService struct {
	geocoder service.Geocoder
	provider service.DistanceProvider
	cache    service.DistanceCache
	logger   *slog.Logger

	speedKmh     float64
	batchWorkers int

	// Last batch origin, kept to absorb GPS jitter between batches.
	mu         sync.Mutex
	lastOrigin *entity.Location
}

// GeoServiceParams holds dependencies for GeoService, injected by Fx.
type GeoServiceParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Geocoder service.Geocoder
	Cache    service.DistanceCache
	Provider service.DistanceProvider `optional:"true"`
}

// NewGeoService creates a new geocoding and distance service instance
func NewGeoService(params GeoServiceParams) usecase.GeoUsecase {
	speedKmh := fallbackSpeedKmh
	batchWorkers := defaultBatchWorkers
	if params.Config.Distance != nil {
		if params.Config.Distance.DefaultSpeedKmh > 0 {
			speedKmh = params.Config.Distance.DefaultSpeedKmh
		}
		if params.Config.Distance.BatchWorkers > 0 {
			batchWorkers = params.Config.Distance.BatchWorkers
		}
	}

	return &geoService{
		geocoder:     params.Geocoder,
		provider:     params.Provider,
		cache:        params.Cache,
		logger:       params.Logger,
		speedKmh:     speedKmh,
		batchWorkers: batchWorkers,
	}
}

// Resolve turns a postal code or free-text address into coordinates.
func (s *geoService) Resolve(ctx context.Context, query string) (*entity.Location, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("geocoding query must not be empty")
	}

	location, err := s.geocoder.Geocode(ctx, trimmed)
	if err != nil {
		// A cancelled request surfaces as such, not as a provider failure.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WithStack(ctxErr)
		}

		s.logger.Warn("geocoding failed",
			slog.String("query", trimmed),
			slog.Any("error", err),
		)

		// The original query travels with the error for user display.
		return nil, domainerrors.ErrGeocodingFailed.WithDetails(fmt.Sprintf("query: %q", trimmed))
	}

	return location, nil
}

// Distance computes the travel distance between two points.
func (s *geoService) Distance(ctx context.Context, origin, destination entity.Location) (*entity.DistanceResult, error) {
	if !isValidCoordinate(origin) || !isValidCoordinate(destination) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates are outside valid bounds")
	}

	if cached, ok := s.cache.Get(origin, destination); ok {
		return &cached, nil
	}

	if s.provider != nil {
		meters, seconds, err := s.provider.Distance(ctx, origin, destination)
		if err == nil {
			result := providerResult(meters, seconds)
			s.cache.Add(origin, destination, result)

			return &result, nil
		}

		s.logger.Warn("distance provider failed, using straight-line fallback",
			slog.Any("error", err),
		)
	}

	result := s.straightLineResult(origin, destination)
	s.cache.Add(origin, destination, result)

	return &result, nil
}

// DistanceBatch computes distances from one origin to many targets.
func (s *geoService) DistanceBatch(ctx context.Context, origin entity.Location, targets []usecase.BatchTarget) (map[uuid.UUID]*entity.DistanceResult, error) {
	if !isValidCoordinate(origin) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("batch origin is outside valid bounds")
	}

	results := make(map[uuid.UUID]*entity.DistanceResult, len(targets))
	if len(targets) == 0 {
		return results, nil
	}

	effectiveOrigin := s.snapOrigin(origin)

	computed := make([]*entity.DistanceResult, len(targets))

	targetCh := make(chan int, len(targets))
	var workerGroup sync.WaitGroup

	for range s.workerCount(len(targets)) {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			for idx := range targetCh {
				if ctx.Err() != nil {
					return
				}

				computed[idx] = s.distanceForTarget(ctx, effectiveOrigin, targets[idx])
			}
		}()
	}

	for idx := range targets {
		targetCh <- idx
	}
	close(targetCh)

	workerGroup.Wait()

	if ctx.Err() != nil {
		return nil, errors.Wrap(ctx.Err(), "batch distance computation canceled")
	}

	for idx, target := range targets {
		results[target.ID] = computed[idx]
	}

	return results, nil
}

// distanceForTarget resolves one target, degrading to a nil result on
// missing coordinates or per-candidate failure.
func (s *geoService) distanceForTarget(ctx context.Context, origin entity.Location, target usecase.BatchTarget) *entity.DistanceResult {
	if target.Location == nil {
		return nil
	}

	result, err := s.Distance(ctx, origin, *target.Location)
	if err != nil {
		s.logger.Warn("distance unresolved for candidate",
			slog.String("candidate_id", target.ID.String()),
			slog.Any("error", err),
		)

		return nil
	}

	return result
}

// snapOrigin reuses the previous batch origin when the new one moved
// less than the jitter threshold on both axes. Keeping the coordinates
// byte-identical makes the pair cache hit for every unchanged target.
func (s *geoService) snapOrigin(origin entity.Location) entity.Location {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastOrigin != nil &&
		math.Abs(origin.Lat-s.lastOrigin.Lat) <= originJitterDegrees &&
		math.Abs(origin.Lng-s.lastOrigin.Lng) <= originJitterDegrees {
		return *s.lastOrigin
	}

	snapped := origin
	s.lastOrigin = &snapped

	return snapped
}

func (s *geoService) workerCount(targetCount int) int {
	if targetCount < s.batchWorkers {
		return targetCount
	}

	return s.batchWorkers
}

// straightLineResult computes the haversine fallback with an estimated
// duration at the configured constant speed.
func (s *geoService) straightLineResult(origin, destination entity.Location) entity.DistanceResult {
	distanceKm := haversineDistanceKm(origin.Lat, origin.Lng, destination.Lat, destination.Lng)
	meters := int(math.Round(distanceKm * 1000))
	seconds := int(math.Round(distanceKm / s.speedKmh * 3600))

	return entity.DistanceResult{
		DistanceMeters:  meters,
		DurationSeconds: seconds,
		Method:          entity.DistanceMethodStraightLine,
		DisplayDistance: util.FormatDistance(meters) + " (straight-line)",
		DisplayDuration: util.FormatDuration(time.Duration(seconds)*time.Second) + " (estimated)",
	}
}

// providerResult wraps a routed provider answer into a DistanceResult.
func providerResult(meters, seconds int) entity.DistanceResult {
	return entity.DistanceResult{
		DistanceMeters:  meters,
		DurationSeconds: seconds,
		Method:          entity.DistanceMethodProvider,
		DisplayDistance: util.FormatDistance(meters),
		DisplayDuration: util.FormatDuration(time.Duration(seconds) * time.Second),
	}
}

// haversineDistanceKm calculates the great circle distance between two
// points in kilometers.
func haversineDistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	return geo.Distance(orb.Point{lng1, lat1}, orb.Point{lng2, lat2}) / 1000
}

// isValidCoordinate checks a coordinate is a real point on Earth.
func isValidCoordinate(location entity.Location) bool {
	if math.IsNaN(location.Lat) || math.IsNaN(location.Lng) ||
		math.IsInf(location.Lat, 0) || math.IsInf(location.Lng, 0) {
		return false
	}

	return location.Lat >= -90 && location.Lat <= 90 &&
		location.Lng >= -180 && location.Lng <= 180
}
