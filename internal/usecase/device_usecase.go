package usecase

import (
	"context"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput carries a push-device registration. Registering
// the same (user, device) pair again refreshes the token.
type RegisterDeviceInput struct {
	UserID   uuid.UUID
	DeviceID string
	FCMToken string
	Platform string
}

// DeviceUsecase defines the interface for push-device use cases
type DeviceUsecase interface {
	// RegisterDevice registers or refreshes a device for push delivery
	RegisterDevice(ctx context.Context, input RegisterDeviceInput) (*entity.UserDevice, error)

	// RemoveDevice unregisters a device owned by the user
	RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID string) error
}
