package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a service request.
type RequestStatus string

const (
	// RequestOpen accepts new conversations from providers.
	RequestOpen RequestStatus = "open"
	// RequestClosed blocks new conversations but keeps existing ones usable.
	RequestClosed RequestStatus = "closed"
)

// ServiceRequest is a requester's call for offers from service providers.
// It is mutated only by its owner (status toggle, deletion); deletion
// cascades to every conversation and message scoped to it.
type ServiceRequest struct {
	ID             uuid.UUID     `json:"id"`
	UserID         uuid.UUID     `json:"user_id"` // The requester who owns this request.
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Category       string        `json:"category"`
	Subcategory    string        `json:"subcategory,omitempty"`
	Budget         *float64      `json:"budget,omitempty"`
	DateRangeStart *time.Time    `json:"date_range_start,omitempty"`
	DateRangeEnd   *time.Time    `json:"date_range_end,omitempty"`
	Area           string        `json:"area"`
	City           string        `json:"city"`
	PostalCode     string        `json:"postal_code"`
	ContactPhone   string        `json:"contact_phone"`
	Images         []string      `json:"images"`
	Status         RequestStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}

// IsOpen reports whether the request still accepts new conversations.
func (r *ServiceRequest) IsOpen() bool {
	return r.Status == RequestOpen
}
