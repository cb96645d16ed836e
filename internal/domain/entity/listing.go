package entity

import (
	"time"

	"github.com/google/uuid"
)

// MarketplaceListing is a classified advert posted by a user. It is
// publicly visible only once moderation approves it.
type MarketplaceListing struct {
	ID             uuid.UUID      `json:"id"`
	SellerID       uuid.UUID      `json:"seller_id"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Category       string         `json:"category"`
	Condition      string         `json:"condition,omitempty"` // e.g. "new", "used".
	Price          float64        `json:"price"`
	City           string         `json:"city"`
	Area           string         `json:"area"`
	Location       *Location      `json:"location,omitempty"` // Nil when the seller gave no coordinates.
	Images         []string       `json:"images"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	RatingAverage  float64        `json:"rating_average"`
	ReviewCount    int            `json:"review_count"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}
