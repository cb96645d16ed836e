package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is the message thread between one requester and one
// provider, scoped to one service request.
//
// Invariant: at most one conversation exists per
// (request_id, provider_id, user_id) triple. The persistence layer
// enforces this with a composite unique index; creation is an upsert,
// so concurrent creators converge on the same row.
type Conversation struct {
	ID            uuid.UUID `json:"id"`
	RequestID     uuid.UUID `json:"request_id"`
	ProviderID    uuid.UUID `json:"provider_id"`
	UserID        uuid.UUID `json:"user_id"` // The requester side of the thread.
	CreatedAt     time.Time `json:"created_at"`
	LastMessageAt time.Time `json:"last_message_at"`
}
