package repository

import (
	"context"
	"errors"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the interface for community-event persistence.
type EventRepository interface {
	// CreateEvent persists a new event with approval_status pending.
	CreateEvent(ctx context.Context, event *entity.Event) error

	// FindEventByID retrieves an event by its unique ID.
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// FindUpcomingEvents retrieves approved events that have not ended,
	// soonest first. Moderation views pass allStatuses.
	FindUpcomingEvents(ctx context.Context, city string, allStatuses bool, limit, offset int) ([]*entity.Event, error)

	// UpdateApprovalStatus moves an event through the moderation workflow.
	UpdateApprovalStatus(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error
}
