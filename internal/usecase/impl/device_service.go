package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var knownPlatforms = []string{"ios", "android", "web"}

type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	Logger     *slog.Logger
	DeviceRepo repository.DeviceRepository
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// RegisterDevice registers or refreshes a device for push delivery.
func (s *deviceService) RegisterDevice(ctx context.Context, input usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	deviceID := strings.TrimSpace(input.DeviceID)
	token := strings.TrimSpace(input.FCMToken)

	if deviceID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device id must not be empty")
	}
	if token == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm token must not be empty")
	}
	if !slices.Contains(knownPlatforms, input.Platform) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be one of ios, android, web")
	}

	device := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   input.UserID,
		DeviceID: deviceID,
		FCMToken: token,
		Platform: input.Platform,
		IsActive: true,
	}

	if err := s.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to upsert device")
	}

	s.logger.Info("device registered",
		slog.String("userID", input.UserID.String()),
		slog.String("platform", input.Platform))

	return device, nil
}

// RemoveDevice unregisters a device owned by the user.
func (s *deviceService) RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID string) error {
	if err := s.deviceRepo.DeleteDevice(ctx, userID, strings.TrimSpace(deviceID)); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to delete device")
	}

	return nil
}
