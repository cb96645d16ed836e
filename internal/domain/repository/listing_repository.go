package repository

import (
	"context"
	"errors"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrListingNotFound is returned when a marketplace listing is not found.
var ErrListingNotFound = errors.New("listing not found")

// ListingQuery narrows public listing lookups. Zero values mean "no filter".
type ListingQuery struct {
	Category    string
	City        string
	Condition   string
	SearchText  string // Matched against title and description.
	MinPrice    float64
	MaxPrice    float64
	AllStatuses bool // Moderation views only; public queries keep this false.
	Limit       int
	Offset      int
}

// ListingRepository defines the interface for marketplace-listing persistence.
type ListingRepository interface {
	// CreateListing persists a new listing with approval_status pending.
	CreateListing(ctx context.Context, listing *entity.MarketplaceListing) error

	// FindListingByID retrieves a listing by its unique ID.
	FindListingByID(ctx context.Context, id uuid.UUID) (*entity.MarketplaceListing, error)

	// FindListings retrieves listings matching the query. Unless
	// query.AllStatuses is set, only approved listings are returned.
	FindListings(ctx context.Context, query ListingQuery) ([]*entity.MarketplaceListing, error)

	// FindListingsBySeller retrieves a seller's own listings, any status.
	FindListingsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.MarketplaceListing, error)

	// UpdateApprovalStatus moves a listing through the moderation workflow.
	UpdateApprovalStatus(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error

	// UpdateListingImages replaces the listing's stored image URLs.
	UpdateListingImages(ctx context.Context, id uuid.UUID, images []string) error

	// UpdateRatingAggregate refreshes the denormalized rating columns.
	UpdateRatingAggregate(ctx context.Context, id uuid.UUID, average float64, count int) error

	// DeleteListing removes a listing.
	DeleteListing(ctx context.Context, id uuid.UUID) error
}
