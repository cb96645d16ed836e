package service

import (
	"context"
)

// MessageEvent is published when a message lands in a conversation so the
// notifier worker can push it to the recipient's devices.
type MessageEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	MessageID      string `json:"message_id"`
	ConversationID string `json:"conversation_id"`
	RecipientID    string `json:"recipient_id"`
	SenderType     string `json:"sender_type"`
	Preview        string `json:"preview"`
	IsQuotation    bool   `json:"is_quotation"`
}

// ModerationEvent is published when a listing, provider or event changes
// approval status so the owner can be notified asynchronously.
type ModerationEvent struct {
	RequestID   string `json:"request_id,omitempty"`
	SubjectID   string `json:"subject_id"`
	SubjectKind string `json:"subject_kind"` // listing, provider or event
	OwnerID     string `json:"owner_id"`
	NewStatus   string `json:"new_status"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMessageEvent publishes a new-message event for async processing
	PublishMessageEvent(ctx context.Context, event *MessageEvent) error

	// PublishModerationEvent publishes an approval-status change
	PublishModerationEvent(ctx context.Context, event *ModerationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
