package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MarketplaceListingModel is the GORM-specific struct for the 'marketplace_listings' table.
type MarketplaceListingModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SellerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title          string     `gorm:"type:varchar(255);not null"`
	Description    string     `gorm:"type:text;not null"`
	Category       string     `gorm:"type:varchar(100);not null;index"`
	Condition      string     `gorm:"type:varchar(50)"`
	Price          float64    `gorm:"type:decimal(12,2);not null"`
	City           string     `gorm:"type:varchar(100);index"`
	Area           string     `gorm:"type:varchar(100)"`
	Latitude       *float64   `gorm:"type:decimal(10,8)"`
	Longitude      *float64   `gorm:"type:decimal(11,8)"`
	Images         StringList `gorm:"type:jsonb;not null;default:'[]'"`
	ApprovalStatus string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	RatingAverage  float64    `gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount    int        `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MarketplaceListingModel) TableName() string {
	return "marketplace_listings"
}
