package usecase

import (
	"context"
	"time"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRequestInput carries a new service request.
type CreateRequestInput struct {
	UserID         uuid.UUID
	Title          string
	Description    string
	Category       string
	Subcategory    string
	Budget         *float64
	DateRangeStart *time.Time
	DateRangeEnd   *time.Time
	Area           string
	City           string
	PostalCode     string
	ContactPhone   string
	Images         []string
}

// RequestUsecase defines the interface for service request use cases
type RequestUsecase interface {
	// CreateRequest creates a new service request in the open state
	CreateRequest(ctx context.Context, input CreateRequestInput) (*entity.ServiceRequest, error)

	// GetRequest retrieves a service request by ID
	GetRequest(ctx context.Context, id uuid.UUID) (*entity.ServiceRequest, error)

	// ListOwnRequests retrieves the requests created by a user, newest first
	ListOwnRequests(ctx context.Context, userID uuid.UUID) ([]*entity.ServiceRequest, error)

	// ListOpenRequests retrieves open requests, optionally narrowed by
	// category and city
	ListOpenRequests(ctx context.Context, category, city string, limit, offset int) ([]*entity.ServiceRequest, error)

	// SetRequestStatus toggles a request between open and closed.
	// Only the owner may do this; closing blocks new conversations but
	// leaves existing ones usable.
	SetRequestStatus(ctx context.Context, requestID, ownerID uuid.UUID, status entity.RequestStatus) error

	// DeleteRequest removes a request together with all of its
	// conversations and their messages in one transaction. Owner only.
	DeleteRequest(ctx context.Context, requestID, ownerID uuid.UUID) error

	// MatchingProviders retrieves approved providers whose category
	// matches the request, same-city first
	MatchingProviders(ctx context.Context, requestID uuid.UUID) ([]*entity.ServiceProvider, error)
}
