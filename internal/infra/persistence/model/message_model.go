package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel is the GORM-specific struct for the 'messages' table.
// Quotation columns are null for plain chat messages.
type MessageModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConversationID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	SenderID          uuid.UUID  `gorm:"type:uuid;not null"`
	SenderType        string     `gorm:"type:varchar(20);not null"`
	Content           string     `gorm:"type:text;not null"`
	Attachments       StringList `gorm:"type:jsonb;not null;default:'[]'"`
	IsRead            bool       `gorm:"not null;default:false;index"`
	QuotationPrice    *float64   `gorm:"type:decimal(12,2)"`
	PricingType       *string    `gorm:"type:varchar(20)"`
	WholesalePrice    *float64   `gorm:"type:decimal(12,2)"`
	NegotiablePrice   *float64   `gorm:"type:decimal(12,2)"`
	DeliveryAvailable *bool
	QuotationImages   StringList `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt         time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
