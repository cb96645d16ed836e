// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"plaza/internal/delivery/http/response"
	"plaza/internal/domain/entity"
	"plaza/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GeoHandler holds dependencies for geocoding and distance handlers.
type GeoHandler struct {
	uc     usecase.GeoUsecase
	logger *slog.Logger
}

// NewGeoHandler is the constructor for GeoHandler, injected by Fx.
func NewGeoHandler(uc usecase.GeoUsecase, logger *slog.Logger) *GeoHandler {
	return &GeoHandler{
		uc:     uc,
		logger: logger,
	}
}

// Resolve turns a postal code or free-text address into coordinates.
func (h *GeoHandler) Resolve(c echo.Context) error {
	query := c.QueryParam("query")

	location, err := h.uc.Resolve(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, location, "Location resolved")
}

// Distance computes the travel distance between two coordinate pairs.
func (h *GeoHandler) Distance(c echo.Context) error {
	origin, err := parseLocationParams(c, "origin_lat", "origin_lng")
	if err != nil || origin == nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid origin coordinates")
	}

	destination, err := parseLocationParams(c, "dest_lat", "dest_lng")
	if err != nil || destination == nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid destination coordinates")
	}

	result, err := h.uc.Distance(c.Request().Context(), *origin, *destination)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Distance computed")
}

// parseLocationParams reads a lat/lng query-parameter pair. Both absent
// means "no location" and returns nil without error.
func parseLocationParams(c echo.Context, latParam, lngParam string) (*entity.Location, error) {
	latStr := c.QueryParam(latParam)
	lngStr := c.QueryParam(lngParam)
	if latStr == "" && lngStr == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid latitude")
	}

	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid longitude")
	}

	return &entity.Location{Lat: lat, Lng: lng}, nil
}
