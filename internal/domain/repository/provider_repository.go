package repository

import (
	"context"
	"errors"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProviderNotFound is returned when a service provider is not found.
var ErrProviderNotFound = errors.New("service provider not found")

// ProviderRepository defines the interface for service-provider persistence.
type ProviderRepository interface {
	// CreateProvider persists a new provider profile with approval_status pending.
	CreateProvider(ctx context.Context, provider *entity.ServiceProvider) error

	// FindProviderByID retrieves a provider by its unique ID.
	FindProviderByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error)

	// FindProviderByUser retrieves the provider profile owned by a user.
	FindProviderByUser(ctx context.Context, userID uuid.UUID) (*entity.ServiceProvider, error)

	// FindApprovedProviders retrieves approved providers, optionally
	// narrowed by category and city.
	FindApprovedProviders(ctx context.Context, category, city string, limit, offset int) ([]*entity.ServiceProvider, error)

	// FindMatchingProvidersForRequest retrieves approved providers whose
	// category matches the request's, same-city first.
	FindMatchingProvidersForRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.ServiceProvider, error)

	// UpdateApprovalStatus moves a provider through the moderation workflow.
	UpdateApprovalStatus(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error

	// UpdateRatingAggregate refreshes the denormalized rating columns.
	UpdateRatingAggregate(ctx context.Context, id uuid.UUID, average float64, count int) error
}
