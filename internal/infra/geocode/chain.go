package geocode

import (
	"context"
	"log/slog"

	"plaza/internal/domain/entity"
	"plaza/internal/domain/service"

	"github.com/pkg/errors"
)

// chainGeocoder walks an ordered list of providers and returns the first
// successful resolution. Every provider is consulted at most once per
// query; a denied provider is skipped over, never retried.
type chainGeocoder struct {
	providers []service.Geocoder
	logger    *slog.Logger
}

// NewChain builds a geocoder that tries providers in the given order.
func NewChain(logger *slog.Logger, providers ...service.Geocoder) service.Geocoder {
	return &chainGeocoder{
		providers: providers,
		logger:    logger,
	}
}

// Geocode resolves the query through the provider chain.
func (g *chainGeocoder) Geocode(ctx context.Context, query string) (*entity.Location, error) {
	var lastErr error

	for _, provider := range g.providers {
		location, err := provider.Geocode(ctx, query)
		if err == nil {
			return location, nil
		}

		lastErr = err

		if g.logger != nil {
			g.logger.LogAttrs(ctx, slog.LevelWarn, "geocoding provider failed",
				slog.String("provider", provider.Name()),
				slog.String("error", err.Error()),
			)
		}
	}

	if lastErr == nil {
		return nil, service.ErrGeocodeNoResults
	}

	return nil, errors.Wrap(lastErr, "all geocoding providers failed")
}

// Name identifies the provider in logs and errors.
func (g *chainGeocoder) Name() string {
	return "chain"
}
