package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a device registered for push notifications. A user may
// hold several; pushes fan out to every active one.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"` // Client-chosen stable identifier.
	Platform  string    `json:"platform"`  // ios, android or web.
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
