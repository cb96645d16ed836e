package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"plaza/config"
	"plaza/internal/delivery"
	"plaza/internal/delivery/http"
	"plaza/internal/delivery/http/middleware"
	"plaza/internal/delivery/http/router/handler"
	"plaza/internal/domain/service"
	"plaza/internal/infra/auth"
	"plaza/internal/infra/distance"
	"plaza/internal/infra/geocode"
	logs "plaza/internal/infra/log"
	"plaza/internal/infra/persistence/postgres"
	"plaza/internal/infra/pubsub"
	"plaza/internal/infra/qrcode"
	"plaza/internal/infra/storage"
	"plaza/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewListingRepository,
			postgres.NewProviderRepository,
			postgres.NewEventRepository,
			postgres.NewRequestRepository,
			postgres.NewConversationRepository,
			postgres.NewMessageRepository,
			postgres.NewReviewRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			storage.New,
			pubsub.NewEventPublisher,
			newGeocoder,
			newDistanceCache,
			newDistanceProvider,
			newQRCodeService,
		),
	)
}

// newGeocoder assembles the ordered geocoding chain: Google Maps first
// when an API key is configured, Nominatim as the fallback.
func newGeocoder(cfg *config.Config, logger *slog.Logger) (service.Geocoder, error) {
	providers := make([]service.Geocoder, 0, 2)

	if cfg.Geocoding != nil && cfg.Geocoding.GoogleAPIKey != "" {
		google, err := geocode.NewGoogleGeocoder(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Google geocoder: %w", err)
		}
		providers = append(providers, google)
	}

	providers = append(providers, geocode.NewNominatimGeocoder(cfg))

	return geocode.NewChain(logger, providers...), nil
}

// newDistanceCache creates the bounded LRU cache for distance results.
func newDistanceCache(cfg *config.Config) (service.DistanceCache, error) {
	size := 0
	if cfg.Distance != nil {
		size = cfg.Distance.CacheSize
	}

	return distance.NewCache(size)
}

// newDistanceProvider creates the routed distance-matrix provider when
// enabled. Without it every distance degrades to the straight-line
// estimate.
func newDistanceProvider(cfg *config.Config) (service.DistanceProvider, error) {
	if cfg.Distance == nil || !cfg.Distance.ProviderEnabled {
		return nil, nil // Routed distances are optional
	}

	provider, err := distance.NewGoogleMatrix(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create distance provider: %w", err)
	}

	return provider, nil
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGeoService,
			impl.NewSearchService,
			impl.NewRequestService,
			impl.NewConversationService,
			impl.NewListingService,
			impl.NewReviewService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGeoHandler,
			handler.NewRequestHandler,
			handler.NewConversationHandler,
			handler.NewListingHandler,
			handler.NewProviderHandler,
			handler.NewEventHandler,
			handler.NewReviewHandler,
			handler.NewModerationHandler,
			handler.NewDeviceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
