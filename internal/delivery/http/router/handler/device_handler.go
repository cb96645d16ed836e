package handler

import (
	"log/slog"
	"net/http"

	"plaza/internal/delivery/http/response"
	"plaza/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for push-device handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerDeviceBody struct {
	DeviceID string `json:"device_id" validate:"required"`
	FCMToken string `json:"fcm_token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// RegisterDevice registers or refreshes a device for push delivery.
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var body registerDeviceBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	device, err := h.uc.RegisterDevice(c.Request().Context(), usecase.RegisterDeviceInput{
		UserID:   mustUserID(c),
		DeviceID: body.DeviceID,
		FCMToken: body.FCMToken,
		Platform: body.Platform,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, device, "Device registered")
}

// RemoveDevice unregisters one of the user's devices.
func (h *DeviceHandler) RemoveDevice(c echo.Context) error {
	deviceID := c.Param("deviceID")
	if deviceID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.uc.RemoveDevice(c.Request().Context(), mustUserID(c), deviceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device removed")
}
