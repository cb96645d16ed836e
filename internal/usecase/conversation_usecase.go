package usecase

import (
	"context"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// FileInput is an uploaded file held in memory, as delivered by a
// multipart form.
type FileInput struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// ImageRejection reports why one file in an upload batch was skipped.
// Other files in the same batch still upload.
type ImageRejection struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// SendMessageInput carries a plain message send.
type SendMessageInput struct {
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	SenderType     entity.SenderType
	Content        string
	Attachments    []string
}

// QuotationInput carries a structured price offer. The conversation is
// addressed by its triple because sending a quotation may create it.
type QuotationInput struct {
	RequestID  uuid.UUID
	ProviderID uuid.UUID
	UserID     uuid.UUID
	SenderID   uuid.UUID
	SenderType entity.SenderType

	PricingType       entity.PricingType
	Price             float64
	WholesalePrice    *float64
	NegotiablePrice   *float64
	DeliveryAvailable bool
	Images            []FileInput
	Note              string

	// ShopName, when set, appends a plug line to the composed body.
	ShopName string
}

// QuotationResult is the outcome of a quotation send, including per-file
// upload failures that did not block the message.
type QuotationResult struct {
	Message        *entity.Message  `json:"message"`
	RejectedImages []ImageRejection `json:"rejected_images,omitempty"`
}

// ConversationUsecase defines the interface for conversation and
// messaging use cases
type ConversationUsecase interface {
	// GetOrCreate returns the conversation for the triple, creating it
	// when absent. Creation is refused while the request is closed;
	// existing conversations keep working regardless.
	GetOrCreate(ctx context.Context, requestID, providerID, userID uuid.UUID) (*entity.Conversation, error)

	// ListForUser retrieves the requester's conversations, most recent
	// activity first
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error)

	// ListForProvider retrieves the provider's conversations, most
	// recent activity first. The caller must own the provider profile.
	ListForProvider(ctx context.Context, providerID, callerID uuid.UUID) ([]*entity.Conversation, error)

	// Messages retrieves a conversation's messages in server order,
	// after checking the reader is a party to it
	Messages(ctx context.Context, conversationID, readerID uuid.UUID) ([]*entity.Message, error)

	// SendMessage appends a plain message to a conversation
	SendMessage(ctx context.Context, input SendMessageInput) (*entity.Message, error)

	// SendQuotation validates and sends a structured price offer,
	// creating the conversation first when none exists
	SendQuotation(ctx context.Context, input QuotationInput) (*QuotationResult, error)

	// MarkRead marks the counterparty's messages in one conversation as
	// read, for the reader's own side only. It never un-reads.
	MarkRead(ctx context.Context, conversationID, readerID uuid.UUID) error

	// UnreadCount returns the user's total unread messages across all
	// their conversations, as requester and as provider-profile owner
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	// UnreadCountPerRequest returns the user's unread messages grouped
	// by service request; each conversation is counted exactly once
	UnreadCountPerRequest(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error)
}
