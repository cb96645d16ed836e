package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceProviderModel is the GORM-specific struct for the 'service_providers' table.
// Each user owns at most one provider profile.
type ServiceProviderModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName    string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text"`
	Category        string    `gorm:"type:varchar(100);not null;index"`
	Subcategory     string    `gorm:"type:varchar(100)"`
	City            string    `gorm:"type:varchar(100);index"`
	Area            string    `gorm:"type:varchar(100)"`
	PostalCode      string    `gorm:"type:varchar(20)"`
	ContactPhone    string    `gorm:"type:varchar(50)"`
	Latitude        *float64  `gorm:"type:decimal(10,8)"`
	Longitude       *float64  `gorm:"type:decimal(11,8)"`
	StartingPrice   *float64  `gorm:"type:decimal(12,2)"`
	DeliveryOffered bool      `gorm:"not null;default:false"`
	ApprovalStatus  string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	RatingAverage   float64   `gorm:"type:decimal(3,2);not null;default:0"`
	ReviewCount     int       `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceProviderModel) TableName() string {
	return "service_providers"
}
