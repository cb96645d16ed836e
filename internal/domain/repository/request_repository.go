// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRequestNotFound is returned when a service request is not found.
var ErrRequestNotFound = errors.New("service request not found")

// RequestRepository defines the interface for service-request persistence.
type RequestRepository interface {
	// CreateRequest persists a new service request.
	CreateRequest(ctx context.Context, request *entity.ServiceRequest) error

	// FindRequestByID retrieves a request by its unique ID.
	FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.ServiceRequest, error)

	// FindRequestsByOwner retrieves all requests created by a user, newest first.
	FindRequestsByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.ServiceRequest, error)

	// FindOpenRequests retrieves open requests, optionally narrowed by category and city.
	FindOpenRequests(ctx context.Context, category, city string, limit, offset int) ([]*entity.ServiceRequest, error)

	// UpdateRequestStatus flips a request between open and closed.
	UpdateRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error

	// DeleteRequest removes a request row. Conversation and message
	// cleanup is the caller's responsibility, inside one transaction.
	DeleteRequest(ctx context.Context, id uuid.UUID) error
}
