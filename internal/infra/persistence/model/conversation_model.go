package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel is the GORM-specific struct for the 'conversations' table.
// The composite unique index keeps one thread per
// (request, provider, requester) triple; creation relies on it for
// insert-or-fetch semantics under concurrency.
type ConversationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequestID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_on_triple"`
	ProviderID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_on_triple"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversations_on_triple;index"`
	CreatedAt     time.Time
	LastMessageAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}
