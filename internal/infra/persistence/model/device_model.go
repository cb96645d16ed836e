package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// One row per (user, device) pair; re-registering refreshes the token.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_devices_on_pair;index"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_on_pair"`
	FCMToken  string    `gorm:"type:varchar(255);not null;index"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
