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

// ProviderHandler holds dependencies for service-provider handlers.
type ProviderHandler struct {
	uc       usecase.ListingUsecase
	searchUC usecase.SearchUsecase
	geoUC    usecase.GeoUsecase
	logger   *slog.Logger
}

// NewProviderHandler is the constructor for ProviderHandler, injected by Fx.
func NewProviderHandler(
	uc usecase.ListingUsecase,
	searchUC usecase.SearchUsecase,
	geoUC usecase.GeoUsecase,
	logger *slog.Logger,
) *ProviderHandler {
	return &ProviderHandler{
		uc:       uc,
		searchUC: searchUC,
		geoUC:    geoUC,
		logger:   logger,
	}
}

type createProviderBody struct {
	BusinessName    string           `json:"business_name" validate:"required"`
	Description     string           `json:"description"`
	Category        string           `json:"category" validate:"required"`
	Subcategory     string           `json:"subcategory"`
	City            string           `json:"city"`
	Area            string           `json:"area"`
	PostalCode      string           `json:"postal_code"`
	ContactPhone    string           `json:"contact_phone"`
	Location        *entity.Location `json:"location"`
	StartingPrice   *float64         `json:"starting_price"`
	DeliveryOffered bool             `json:"delivery_offered"`
}

// CreateProvider registers a provider profile in the pending moderation
// state. One profile per user.
func (h *ProviderHandler) CreateProvider(c echo.Context) error {
	var body createProviderBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid provider input")
	}

	provider, err := h.uc.CreateProvider(c.Request().Context(), usecase.CreateProviderInput{
		UserID:          mustUserID(c),
		BusinessName:    body.BusinessName,
		Description:     body.Description,
		Category:        body.Category,
		Subcategory:     body.Subcategory,
		City:            body.City,
		Area:            body.Area,
		PostalCode:      body.PostalCode,
		ContactPhone:    body.ContactPhone,
		Location:        body.Location,
		StartingPrice:   body.StartingPrice,
		DeliveryOffered: body.DeliveryOffered,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, provider, "Provider profile created")
}

// GetOwnProvider retrieves the authenticated user's provider profile.
func (h *ProviderHandler) GetOwnProvider(c echo.Context) error {
	provider, err := h.uc.GetProviderByUser(c.Request().Context(), mustUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, provider, "")
}

// ListProviders lists approved providers, filtered and ranked the same
// way listings are browsed.
func (h *ProviderHandler) ListProviders(c echo.Context) error {
	ctx := c.Request().Context()
	limit, offset := paginationParams(c)

	providers, err := h.uc.ListProviders(ctx, c.QueryParam("category"), c.QueryParam("city"), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	origin, err := parseLocationParams(c, "origin_lat", "origin_lng")
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid origin coordinates")
	}

	filters := usecase.SearchFilters{
		MaxDistanceKm: floatParam(c, "max_distance_km"),
		MinRating:     floatParam(c, "min_rating"),
	}

	ranked, err := h.searchUC.FilterAndSort(ctx, origin, usecase.ProviderCandidates(providers), filters, sortKeyParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reorderProviders(providers, ranked), "")
}

func reorderProviders(providers []*entity.ServiceProvider, ranked []usecase.Candidate) []*entity.ServiceProvider {
	byID := make(map[uuid.UUID]*entity.ServiceProvider, len(providers))
	for _, provider := range providers {
		byID[provider.ID] = provider
	}

	ordered := make([]*entity.ServiceProvider, 0, len(ranked))
	for _, candidate := range ranked {
		if provider, ok := byID[candidate.ID]; ok {
			ordered = append(ordered, provider)
		}
	}

	return ordered
}
