package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"plaza/internal/delivery/http/response"
	"plaza/internal/domain/entity"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestHandler holds dependencies for service-request handlers.
type RequestHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		uc:     uc,
		logger: logger,
	}
}

type createRequestBody struct {
	Title          string     `json:"title" validate:"required"`
	Description    string     `json:"description"`
	Category       string     `json:"category" validate:"required"`
	Subcategory    string     `json:"subcategory"`
	Budget         *float64   `json:"budget"`
	DateRangeStart *time.Time `json:"date_range_start"`
	DateRangeEnd   *time.Time `json:"date_range_end"`
	Area           string     `json:"area"`
	City           string     `json:"city"`
	PostalCode     string     `json:"postal_code"`
	ContactPhone   string     `json:"contact_phone"`
	Images         []string   `json:"images"`
}

// CreateRequest handles posting a new service request.
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	var body createRequestBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}

	request, err := h.uc.CreateRequest(c.Request().Context(), usecase.CreateRequestInput{
		UserID:         mustUserID(c),
		Title:          body.Title,
		Description:    body.Description,
		Category:       body.Category,
		Subcategory:    body.Subcategory,
		Budget:         body.Budget,
		DateRangeStart: body.DateRangeStart,
		DateRangeEnd:   body.DateRangeEnd,
		Area:           body.Area,
		City:           body.City,
		PostalCode:     body.PostalCode,
		ContactPhone:   body.ContactPhone,
		Images:         body.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Request created")
}

// GetRequest retrieves a single service request.
func (h *RequestHandler) GetRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	request, err := h.uc.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "")
}

// ListOpenRequests lists open requests, optionally narrowed by category
// and city.
func (h *RequestHandler) ListOpenRequests(c echo.Context) error {
	limit, offset := paginationParams(c)

	requests, err := h.uc.ListOpenRequests(
		c.Request().Context(),
		c.QueryParam("category"),
		c.QueryParam("city"),
		limit, offset,
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// ListOwnRequests lists the authenticated user's requests.
func (h *RequestHandler) ListOwnRequests(c echo.Context) error {
	requests, err := h.uc.ListOwnRequests(c.Request().Context(), mustUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

type setRequestStatusBody struct {
	Status string `json:"status" validate:"required"`
}

// SetRequestStatus toggles a request between open and closed.
func (h *RequestHandler) SetRequestStatus(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	var body setRequestStatusBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := h.uc.SetRequestStatus(c.Request().Context(), requestID, mustUserID(c), entity.RequestStatus(body.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Request status updated")
}

// DeleteRequest removes a request together with its conversations.
func (h *RequestHandler) DeleteRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	if err := h.uc.DeleteRequest(c.Request().Context(), requestID, mustUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Request deleted")
}

// MatchingProviders lists approved providers matching a request's category.
func (h *RequestHandler) MatchingProviders(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid request ID")
	}

	providers, err := h.uc.MatchingProviders(c.Request().Context(), requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, providers, "")
}

// mustUserID reads the authenticated user ID placed on the context by
// the auth middleware. Routes using it must sit behind Authenticate.
func mustUserID(c echo.Context) uuid.UUID {
	userID, _ := c.Get("userID").(uuid.UUID)

	return userID
}

// paginationParams reads limit/offset query parameters with sane bounds.
func paginationParams(c echo.Context) (int, int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	offset, err := strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}
