package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceProvider is a business (or individual) offering services, the
// demand-side counterpart to a requester. Like listings, a provider
// profile is gated by moderation before it appears in public matching.
type ServiceProvider struct {
	ID              uuid.UUID      `json:"id"`
	UserID          uuid.UUID      `json:"user_id"`
	BusinessName    string         `json:"business_name"`
	Description     string         `json:"description"`
	Category        string         `json:"category"`
	Subcategory     string         `json:"subcategory,omitempty"`
	City            string         `json:"city"`
	Area            string         `json:"area"`
	PostalCode      string         `json:"postal_code"`
	ContactPhone    string         `json:"contact_phone"`
	Location        *Location      `json:"location,omitempty"`
	StartingPrice   *float64       `json:"starting_price,omitempty"`
	DeliveryOffered bool           `json:"delivery_offered"`
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	RatingAverage   float64        `json:"rating_average"`
	ReviewCount     int            `json:"review_count"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
