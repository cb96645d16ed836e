package handler

import (
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"plaza/internal/delivery/http/response"
	"plaza/internal/domain/entity"
	"plaza/internal/domain/repository"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ListingHandler holds dependencies for marketplace-listing handlers.
// Browsing composes the catalog with geo-aware filtering and ranking.
type ListingHandler struct {
	uc       usecase.ListingUsecase
	searchUC usecase.SearchUsecase
	geoUC    usecase.GeoUsecase
	logger   *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler, injected by Fx.
func NewListingHandler(
	uc usecase.ListingUsecase,
	searchUC usecase.SearchUsecase,
	geoUC usecase.GeoUsecase,
	logger *slog.Logger,
) *ListingHandler {
	return &ListingHandler{
		uc:       uc,
		searchUC: searchUC,
		geoUC:    geoUC,
		logger:   logger,
	}
}

type createListingBody struct {
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description"`
	Category    string           `json:"category" validate:"required"`
	Condition   string           `json:"condition"`
	Price       float64          `json:"price"`
	City        string           `json:"city"`
	Area        string           `json:"area"`
	Location    *entity.Location `json:"location"`
	Images      []string         `json:"images"`
}

// CreateListing posts a new listing in the pending moderation state.
func (h *ListingHandler) CreateListing(c echo.Context) error {
	var body createListingBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing input")
	}

	listing, err := h.uc.CreateListing(c.Request().Context(), usecase.CreateListingInput{
		SellerID:    mustUserID(c),
		Title:       body.Title,
		Description: body.Description,
		Category:    body.Category,
		Condition:   body.Condition,
		Price:       body.Price,
		City:        body.City,
		Area:        body.Area,
		Location:    body.Location,
		Images:      body.Images,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, listing, "Listing created")
}

// GetListing retrieves a single listing, applying the public-visibility
// gate for anyone but the seller.
func (h *ListingHandler) GetListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	listing, err := h.uc.GetListing(c.Request().Context(), listingID, mustUserID(c), isModerator(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// BrowseListings lists approved listings matching the query parameters,
// then filters and ranks them. An origin given as coordinates or as a
// free-text address enables the distance filter and sort.
func (h *ListingHandler) BrowseListings(c echo.Context) error {
	ctx := c.Request().Context()
	limit, offset := paginationParams(c)

	query := repository.ListingQuery{
		Category:    c.QueryParam("category"),
		City:        c.QueryParam("city"),
		Condition:   c.QueryParam("condition"),
		SearchText:  c.QueryParam("q"),
		MinPrice:    floatParam(c, "min_price"),
		MaxPrice:    floatParam(c, "max_price"),
		AllStatuses: c.QueryParam("all_statuses") == "true",
		Limit:       limit,
		Offset:      offset,
	}

	listings, err := h.uc.BrowseListings(ctx, query, isModerator(c))
	if err != nil {
		return errors.WithStack(err)
	}

	origin, err := h.resolveOrigin(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_COORDINATES", "Invalid origin")
	}

	filters := usecase.SearchFilters{
		MaxDistanceKm: floatParam(c, "max_distance_km"),
		MinRating:     floatParam(c, "min_rating"),
	}

	ranked, err := h.searchUC.FilterAndSort(ctx, origin, usecase.ListingCandidates(listings), filters, sortKeyParam(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reorderListings(listings, ranked), "")
}

// ListOwnListings lists the seller's listings in any status.
func (h *ListingHandler) ListOwnListings(c echo.Context) error {
	listings, err := h.uc.ListOwnListings(c.Request().Context(), mustUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listings, "")
}

type addImagesResult struct {
	Images         []string                 `json:"images"`
	RejectedImages []usecase.ImageRejection `json:"rejected_images,omitempty"`
}

// AddImages uploads listing images with per-file failure reporting.
func (h *ListingHandler) AddImages(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Expected a multipart form")
	}

	files, err := readMultipartFiles(form.File["images"])
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Failed to read uploaded images")
	}

	images, rejected, err := h.uc.AddListingImages(c.Request().Context(), listingID, mustUserID(c), files)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addImagesResult{
		Images:         images,
		RejectedImages: rejected,
	}, "Images uploaded")
}

// DeleteListing removes a listing. Seller only.
func (h *ListingHandler) DeleteListing(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	if err := h.uc.DeleteListing(c.Request().Context(), listingID, mustUserID(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Listing deleted")
}

// ShareQR returns a PNG QR code pointing at an approved listing.
func (h *ListingHandler) ShareQR(c echo.Context) error {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid listing ID")
	}

	png, err := h.uc.ListingShareQR(c.Request().Context(), listingID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type resolveQRBody struct {
	Data string `json:"data" validate:"required"`
}

// ResolveShareQR parses scanned QR data back into the listing it
// points at.
func (h *ListingHandler) ResolveShareQR(c echo.Context) error {
	var body resolveQRBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}

	listing, err := h.uc.ResolveShareQR(c.Request().Context(), body.Data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, listing, "")
}

// resolveOrigin determines the browse origin: explicit coordinates win,
// then a free-text "near" address resolved through the geocoder, else
// no origin.
func (h *ListingHandler) resolveOrigin(c echo.Context) (*entity.Location, error) {
	origin, err := parseLocationParams(c, "origin_lat", "origin_lng")
	if err != nil {
		return nil, err
	}
	if origin != nil {
		return origin, nil
	}

	near := c.QueryParam("near")
	if near == "" {
		return nil, nil
	}

	return h.geoUC.Resolve(c.Request().Context(), near)
}

// reorderListings projects the ranked candidates back onto the listing
// slice. Candidates excluded by a filter drop out here.
func reorderListings(listings []*entity.MarketplaceListing, ranked []usecase.Candidate) []*entity.MarketplaceListing {
	byID := make(map[uuid.UUID]*entity.MarketplaceListing, len(listings))
	for _, listing := range listings {
		byID[listing.ID] = listing
	}

	ordered := make([]*entity.MarketplaceListing, 0, len(ranked))
	for _, candidate := range ranked {
		if listing, ok := byID[candidate.ID]; ok {
			ordered = append(ordered, listing)
		}
	}

	return ordered
}

// isModerator reports whether the authenticated user carries the admin
// role.
func isModerator(c echo.Context) bool {
	roles, _ := c.Get("roles").([]string)

	return slices.Contains(roles, "admin")
}

// floatParam reads a float query parameter, zero when absent or bad.
func floatParam(c echo.Context, name string) float64 {
	value, err := strconv.ParseFloat(c.QueryParam(name), 64)
	if err != nil || value < 0 {
		return 0
	}

	return value
}

// sortKeyParam maps the sort query parameter onto a known sort key,
// defaulting to newest first.
func sortKeyParam(c echo.Context) usecase.SortKey {
	switch usecase.SortKey(c.QueryParam("sort")) {
	case usecase.SortByDistance:
		return usecase.SortByDistance
	case usecase.SortByRating:
		return usecase.SortByRating
	case usecase.SortByReviewCount:
		return usecase.SortByReviewCount
	default:
		return usecase.SortByNewest
	}
}
