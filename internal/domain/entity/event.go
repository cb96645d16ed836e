package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a community event submitted by a user, moderated like a listing.
type Event struct {
	ID             uuid.UUID      `json:"id"`
	OrganizerID    uuid.UUID      `json:"organizer_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Venue          string         `json:"venue"`
	City           string         `json:"city"`
	Location       *Location      `json:"location,omitempty"`
	StartsAt       time.Time      `json:"starts_at"`
	EndsAt         time.Time      `json:"ends_at"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	CreatedAt      time.Time      `json:"created_at"`
}
