package impl

import (
	"context"
	"testing"

	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	mockRepo "plaza/internal/mocks/repository"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	t.Helper()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)

	svc := NewDeviceService(DeviceServiceParams{
		Logger:     testLogger(),
		DeviceRepo: deviceRepo,
	})

	return svc, deviceRepo
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	svc, deviceRepo := newDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		RunAndReturn(func(_ context.Context, device *entity.UserDevice) error {
			assert.Equal(t, userID, device.UserID)
			assert.Equal(t, "phone-1", device.DeviceID)
			assert.True(t, device.IsActive)

			return nil
		})

	device, err := svc.RegisterDevice(ctx, usecase.RegisterDeviceInput{
		UserID:   userID,
		DeviceID: "  phone-1  ",
		FCMToken: "token-abc",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, "phone-1", device.DeviceID)
	assert.Equal(t, "token-abc", device.FCMToken)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	svc, _ := newDeviceService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.RegisterDeviceInput
	}{
		{
			name:  "empty device id",
			input: usecase.RegisterDeviceInput{DeviceID: " ", FCMToken: "tok", Platform: "ios"},
		},
		{
			name:  "empty token",
			input: usecase.RegisterDeviceInput{DeviceID: "phone-1", FCMToken: "", Platform: "ios"},
		},
		{
			name:  "unknown platform",
			input: usecase.RegisterDeviceInput{DeviceID: "phone-1", FCMToken: "tok", Platform: "blackberry"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device, err := svc.RegisterDevice(ctx, tt.input)
			require.Error(t, err)
			assert.Nil(t, device)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestDeviceService_RemoveDevice_NotFound(t *testing.T) {
	svc, deviceRepo := newDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		DeleteDevice(ctx, userID, "phone-1").
		Return(repository.ErrDeviceNotFound)

	err := svc.RemoveDevice(ctx, userID, "phone-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
