package usecase

import (
	"context"
	"time"

	"plaza/internal/domain/entity"
	"plaza/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateListingInput carries a new marketplace listing. Listings start
// in the pending moderation state.
type CreateListingInput struct {
	SellerID    uuid.UUID
	Title       string
	Description string
	Category    string
	Condition   string
	Price       float64
	City        string
	Area        string
	Location    *entity.Location
	Images      []string
}

// CreateProviderInput carries a new service-provider profile.
type CreateProviderInput struct {
	UserID          uuid.UUID
	BusinessName    string
	Description     string
	Category        string
	Subcategory     string
	City            string
	Area            string
	PostalCode      string
	ContactPhone    string
	Location        *entity.Location
	StartingPrice   *float64
	DeliveryOffered bool
}

// CreateEventInput carries a new community event.
type CreateEventInput struct {
	OrganizerID uuid.UUID
	Title       string
	Description string
	Venue       string
	City        string
	Location    *entity.Location
	StartsAt    time.Time
	EndsAt      time.Time
}

// ModerationSubject identifies which catalog a moderation decision targets.
type ModerationSubject string

const (
	ModerateListings  ModerationSubject = "listing"
	ModerateProviders ModerationSubject = "provider"
	ModerateEvents    ModerationSubject = "event"
)

// ListingUsecase defines the interface for the marketplace catalog:
// listings, provider profiles and events, all gated by the shared
// moderation workflow.
type ListingUsecase interface {
	// CreateListing creates a listing with approval status pending
	CreateListing(ctx context.Context, input CreateListingInput) (*entity.MarketplaceListing, error)

	// GetListing retrieves a listing. Non-approved listings are only
	// visible to their seller, or when allStatuses is set (moderation).
	GetListing(ctx context.Context, id, viewerID uuid.UUID, allStatuses bool) (*entity.MarketplaceListing, error)

	// BrowseListings retrieves listings matching the query. The
	// AllStatuses flag is honored only for moderators; public callers
	// always see approved listings only.
	BrowseListings(ctx context.Context, query repository.ListingQuery, moderator bool) ([]*entity.MarketplaceListing, error)

	// ListOwnListings retrieves the seller's listings in any status
	ListOwnListings(ctx context.Context, sellerID uuid.UUID) ([]*entity.MarketplaceListing, error)

	// AddListingImages uploads images for a listing with per-file
	// failure reporting; valid files still upload when others fail
	AddListingImages(ctx context.Context, listingID, sellerID uuid.UUID, files []FileInput) ([]string, []ImageRejection, error)

	// DeleteListing removes a listing. Seller only.
	DeleteListing(ctx context.Context, listingID, sellerID uuid.UUID) error

	// CreateProvider creates a provider profile with approval status
	// pending. One profile per user.
	CreateProvider(ctx context.Context, input CreateProviderInput) (*entity.ServiceProvider, error)

	// GetProviderByUser retrieves the provider profile owned by a user
	GetProviderByUser(ctx context.Context, userID uuid.UUID) (*entity.ServiceProvider, error)

	// ListProviders retrieves approved providers by category and city
	ListProviders(ctx context.Context, category, city string, limit, offset int) ([]*entity.ServiceProvider, error)

	// CreateEvent creates a community event with approval status pending
	CreateEvent(ctx context.Context, input CreateEventInput) (*entity.Event, error)

	// ListUpcomingEvents retrieves approved events that have not ended
	ListUpcomingEvents(ctx context.Context, city string, moderator bool, limit, offset int) ([]*entity.Event, error)

	// Moderate applies an approval decision to a listing, provider or
	// event and publishes a moderation event for the notifier
	Moderate(ctx context.Context, subject ModerationSubject, subjectID uuid.UUID, status entity.ApprovalStatus) error

	// ListingShareQR generates a shareable QR code for an approved listing
	ListingShareQR(ctx context.Context, listingID uuid.UUID) ([]byte, error)

	// ResolveShareQR parses scanned QR data back into the listing it
	// points at, applying the same public-visibility gate as GetListing
	ResolveShareQR(ctx context.Context, qrData string) (*entity.MarketplaceListing, error)
}
