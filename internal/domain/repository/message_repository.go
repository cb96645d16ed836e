package repository

import (
	"context"
	"errors"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message is not found.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the interface for message persistence.
// Messages are append-only; the only mutation is the monotonic
// false -> true flip of the read flag.
type MessageRepository interface {
	// CreateMessage persists a new message.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// FindMessagesByConversation retrieves the messages of a
	// conversation ordered by server-assigned creation time.
	FindMessagesByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error)

	// MarkConversationRead marks every unread message authored by
	// senderType in the conversation as read. It never un-reads.
	MarkConversationRead(ctx context.Context, conversationID uuid.UUID, senderType entity.SenderType) error

	// CountUnread counts unread messages authored by senderType in one conversation.
	CountUnread(ctx context.Context, conversationID uuid.UUID, senderType entity.SenderType) (int64, error)

	// CountUnreadByConversations counts unread messages authored by
	// senderType across many conversations in one query.
	CountUnreadByConversations(ctx context.Context, conversationIDs []uuid.UUID, senderType entity.SenderType) (map[uuid.UUID]int64, error)

	// DeleteMessagesByConversations removes all messages of the given
	// conversations, as part of the request-deletion cascade.
	DeleteMessagesByConversations(ctx context.Context, conversationIDs []uuid.UUID) error
}
