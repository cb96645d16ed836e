package handler

import (
	"log/slog"
	"net/http"

	"plaza/internal/delivery/http/response"
	"plaza/internal/domain/entity"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ModerationHandler holds dependencies for the moderation endpoints.
// Routes using it sit behind the admin role check.
type ModerationHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewModerationHandler is the constructor for ModerationHandler,
// injected by Fx.
func NewModerationHandler(uc usecase.ListingUsecase, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{
		uc:     uc,
		logger: logger,
	}
}

type moderateBody struct {
	Subject   string    `json:"subject" validate:"required,oneof=listing provider event"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	Status    string    `json:"status" validate:"required,oneof=approved rejected pending"`
}

// Moderate applies an approval decision to a listing, provider or event.
func (h *ModerationHandler) Moderate(c echo.Context) error {
	var body moderateBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid moderation input")
	}

	err := h.uc.Moderate(
		c.Request().Context(),
		usecase.ModerationSubject(body.Subject),
		body.SubjectID,
		entity.ApprovalStatus(body.Status),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Moderation decision applied")
}
