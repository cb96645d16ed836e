package repository

import (
	"context"
	"errors"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for conversation persistence.
var (
	// ErrConversationNotFound is returned when a conversation is not found.
	ErrConversationNotFound = errors.New("conversation not found")
)

// ConversationRepository defines the interface for conversation persistence.
type ConversationRepository interface {
	// UpsertConversation inserts the conversation, or returns the
	// existing row when the (request, provider, user) triple already
	// has one. The composite unique index makes this race-safe: a
	// concurrent insert loses the conflict and reads the winner back.
	UpsertConversation(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, error)

	// FindConversationByID retrieves a conversation by its unique ID.
	FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error)

	// FindConversationByTriple retrieves the conversation for a
	// (request, provider, user) triple, most recent first should
	// legacy duplicates exist.
	FindConversationByTriple(ctx context.Context, requestID, providerID, userID uuid.UUID) (*entity.Conversation, error)

	// FindConversationsByUser retrieves conversations where the user is
	// the requester, ordered by last activity.
	FindConversationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// FindConversationsByProvider retrieves conversations where the
	// provider is the counterparty, ordered by last activity.
	FindConversationsByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Conversation, error)

	// FindConversationsByRequest retrieves every conversation scoped to
	// a request, used by the request-deletion cascade.
	FindConversationsByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.Conversation, error)

	// TouchLastMessage bumps last_message_at after a send.
	TouchLastMessage(ctx context.Context, id uuid.UUID) error

	// DeleteConversationsByRequest removes every conversation scoped to
	// a request, as part of the request-deletion cascade.
	DeleteConversationsByRequest(ctx context.Context, requestID uuid.UUID) error
}
