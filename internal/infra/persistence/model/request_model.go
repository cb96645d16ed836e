package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceRequestModel is the GORM-specific struct for the 'service_requests' table.
type ServiceRequestModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text;not null"`
	Category       string    `gorm:"type:varchar(100);not null;index"`
	Subcategory    string    `gorm:"type:varchar(100)"`
	Budget         *float64  `gorm:"type:decimal(12,2)"`
	DateRangeStart *time.Time
	DateRangeEnd   *time.Time
	Area           string     `gorm:"type:varchar(100)"`
	City           string     `gorm:"type:varchar(100);index"`
	PostalCode     string     `gorm:"type:varchar(20)"`
	ContactPhone   string     `gorm:"type:varchar(50)"`
	Images         StringList `gorm:"type:jsonb;not null;default:'[]'"`
	Status         string     `gorm:"type:varchar(20);not null;default:'open';index"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceRequestModel) TableName() string {
	return "service_requests"
}
