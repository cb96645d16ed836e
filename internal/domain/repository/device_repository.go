package repository

import (
	"context"
	"errors"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for push-device persistence.
type DeviceRepository interface {
	// UpsertDevice registers a device, refreshing the FCM token and
	// reactivating the row when the (user, device) pair already exists.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindActiveDevicesByUser retrieves the user's active devices.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateByTokens marks devices with the given FCM tokens
	// inactive, used after the push service reports them invalid.
	DeactivateByTokens(ctx context.Context, tokens []string) error

	// DeleteDevice removes a device owned by the user.
	DeleteDevice(ctx context.Context, userID uuid.UUID, deviceID string) error
}
