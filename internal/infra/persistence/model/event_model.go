package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel is the GORM-specific struct for the 'events' table.
type EventModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrganizerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	Venue          string    `gorm:"type:varchar(255)"`
	City           string    `gorm:"type:varchar(100);index"`
	Latitude       *float64  `gorm:"type:decimal(10,8)"`
	Longitude      *float64  `gorm:"type:decimal(11,8)"`
	StartsAt       time.Time `gorm:"not null;index"`
	EndsAt         time.Time `gorm:"not null"`
	ApprovalStatus string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
