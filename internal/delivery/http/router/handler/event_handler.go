package handler

import (
	"log/slog"
	"net/http"
	"time"

	"plaza/internal/delivery/http/response"
	"plaza/internal/domain/entity"
	"plaza/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for community-event handlers.
type EventHandler struct {
	uc     usecase.ListingUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.ListingUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		uc:     uc,
		logger: logger,
	}
}

type createEventBody struct {
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description"`
	Venue       string           `json:"venue"`
	City        string           `json:"city"`
	Location    *entity.Location `json:"location"`
	StartsAt    time.Time        `json:"starts_at" validate:"required"`
	EndsAt      time.Time        `json:"ends_at" validate:"required"`
}

// CreateEvent posts a community event in the pending moderation state.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var body createEventBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	event, err := h.uc.CreateEvent(c.Request().Context(), usecase.CreateEventInput{
		OrganizerID: mustUserID(c),
		Title:       body.Title,
		Description: body.Description,
		Venue:       body.Venue,
		City:        body.City,
		Location:    body.Location,
		StartsAt:    body.StartsAt,
		EndsAt:      body.EndsAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created")
}

// ListUpcomingEvents lists approved events that have not ended yet.
func (h *EventHandler) ListUpcomingEvents(c echo.Context) error {
	limit, offset := paginationParams(c)

	events, err := h.uc.ListUpcomingEvents(c.Request().Context(), c.QueryParam("city"), isModerator(c), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}
