package entity

import (
	"time"

	"github.com/google/uuid"
)

// SenderType identifies which side of a conversation authored a message.
type SenderType string

const (
	SenderUser     SenderType = "user"
	SenderProvider SenderType = "provider"
)

// Other returns the opposite side of the conversation.
func (s SenderType) Other() SenderType {
	if s == SenderUser {
		return SenderProvider
	}

	return SenderUser
}

// PricingType is the pricing model attached to a quotation.
type PricingType string

const (
	PricingFixed      PricingType = "fixed"
	PricingNegotiable PricingType = "negotiable"
	PricingWholesale  PricingType = "wholesale"
)

// MaxQuotationImages caps the supporting images a quotation may carry.
const MaxQuotationImages = 5

// Message is a single entry in a conversation. Messages are immutable
// after creation except for the Read flag, which only ever flips
// false -> true.
//
// A message is a quotation iff QuotationPrice is non-nil. Quotation
// invariants: PricingWholesale requires a positive WholesalePrice;
// PricingNegotiable permits but does not require NegotiablePrice;
// len(QuotationImages) <= MaxQuotationImages.
type Message struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversation_id"`
	SenderID       uuid.UUID  `json:"sender_id"`
	SenderType     SenderType `json:"sender_type"`
	Content        string     `json:"content"`
	Attachments    []string   `json:"attachments"`
	Read           bool       `json:"read"`
	CreatedAt      time.Time  `json:"created_at"`

	// Quotation fields, all nil for a plain message.
	QuotationPrice    *float64     `json:"quotation_price,omitempty"`
	PricingType       *PricingType `json:"pricing_type,omitempty"`
	WholesalePrice    *float64     `json:"wholesale_price,omitempty"`
	NegotiablePrice   *float64     `json:"negotiable_price,omitempty"`
	DeliveryAvailable *bool        `json:"delivery_available,omitempty"`
	QuotationImages   []string     `json:"quotation_images,omitempty"`
}

// IsQuotation reports whether the message carries structured pricing.
func (m *Message) IsQuotation() bool {
	return m.QuotationPrice != nil
}
