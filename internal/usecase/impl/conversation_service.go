package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"plaza/config"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/domain/service"
	"plaza/internal/usecase"
	"plaza/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// defaultMaxQuotationPrice is the fat-finger ceiling for any quoted price.
	defaultMaxQuotationPrice = 10_000_000.0

	// defaultMaxImageSizeBytes caps a single quotation image at 5 MB.
	defaultMaxImageSizeBytes = 5 * 1024 * 1024

	// messagePreviewLength bounds the preview text in push events.
	messagePreviewLength = 80
)

type conversationService struct {
	conversationRepo repository.ConversationRepository
	messageRepo      repository.MessageRepository
	requestRepo      repository.RequestRepository
	providerRepo     repository.ProviderRepository
	fileStorage      service.FileStorage
	publisher        service.EventPublisher
	logger           *slog.Logger

	maxQuotationPrice float64
	maxImageSizeBytes int64
}

// ConversationServiceParams holds dependencies for ConversationService, injected by Fx.
type ConversationServiceParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	ConversationRepo repository.ConversationRepository
	MessageRepo      repository.MessageRepository
	RequestRepo      repository.RequestRepository
	ProviderRepo     repository.ProviderRepository
	FileStorage      service.FileStorage
	Publisher        service.EventPublisher
}

// NewConversationService creates a new conversation and messaging service instance
func NewConversationService(params ConversationServiceParams) usecase.ConversationUsecase {
	maxPrice := defaultMaxQuotationPrice
	maxImageSize := int64(defaultMaxImageSizeBytes)
	if params.Config.Quotation != nil {
		if params.Config.Quotation.MaxPrice > 0 {
			maxPrice = params.Config.Quotation.MaxPrice
		}
		if params.Config.Quotation.MaxImageSizeBytes > 0 {
			maxImageSize = params.Config.Quotation.MaxImageSizeBytes
		}
	}

	return &conversationService{
		conversationRepo:  params.ConversationRepo,
		messageRepo:       params.MessageRepo,
		requestRepo:       params.RequestRepo,
		providerRepo:      params.ProviderRepo,
		fileStorage:       params.FileStorage,
		publisher:         params.Publisher,
		logger:            params.Logger,
		maxQuotationPrice: maxPrice,
		maxImageSizeBytes: maxImageSize,
	}
}

// GetOrCreate returns the conversation for the triple, creating it when absent.
func (s *conversationService) GetOrCreate(ctx context.Context, requestID, providerID, userID uuid.UUID) (*entity.Conversation, error) {
	// Existing conversations keep working even after the request closes.
	existing, err := s.conversationRepo.FindConversationByTriple(ctx, requestID, providerID, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrConversationNotFound) {
		return nil, errors.Wrap(err, "failed to find conversation by triple")
	}

	request, err := s.requestRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request")
	}

	if !request.IsOpen() {
		return nil, domainerrors.ErrRequestClosed
	}

	if _, err := s.providerRepo.FindProviderByID(ctx, providerID); err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return nil, domainerrors.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider")
	}

	conversation, err := s.conversationRepo.UpsertConversation(ctx, &entity.Conversation{
		ID:         uuid.New(),
		RequestID:  requestID,
		ProviderID: providerID,
		UserID:     userID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert conversation")
	}

	return conversation, nil
}

// ListForUser retrieves the requester's conversations.
func (s *conversationService) ListForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	conversations, err := s.conversationRepo.FindConversationsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations for user")
	}

	return conversations, nil
}

// ListForProvider retrieves the provider's conversations. The caller
// must own the provider profile.
func (s *conversationService) ListForProvider(ctx context.Context, providerID, callerID uuid.UUID) ([]*entity.Conversation, error) {
	provider, err := s.providerRepo.FindProviderByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return nil, domainerrors.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider")
	}

	if provider.UserID != callerID {
		return nil, domainerrors.ErrConversationAccessDenied
	}

	conversations, err := s.conversationRepo.FindConversationsByProvider(ctx, providerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list conversations for provider")
	}

	return conversations, nil
}

// Messages retrieves a conversation's messages in server order.
func (s *conversationService) Messages(ctx context.Context, conversationID, readerID uuid.UUID) ([]*entity.Message, error) {
	conversation, err := s.findConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	if _, err := s.partyRole(ctx, conversation, readerID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepo.FindMessagesByConversation(ctx, conversationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find messages by conversation")
	}

	return messages, nil
}

// SendMessage appends a plain message to a conversation.
func (s *conversationService) SendMessage(ctx context.Context, input usecase.SendMessageInput) (*entity.Message, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" && len(input.Attachments) == 0 {
		return nil, domainerrors.ErrMessageEmpty
	}

	conversation, err := s.findConversation(ctx, input.ConversationID)
	if err != nil {
		return nil, err
	}

	if err := s.verifySender(ctx, conversation, input.SenderID, input.SenderType); err != nil {
		return nil, err
	}

	message := &entity.Message{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		SenderID:       input.SenderID,
		SenderType:     input.SenderType,
		Content:        content,
		Attachments:    input.Attachments,
	}

	if err := s.persistMessage(ctx, conversation, message); err != nil {
		return nil, err
	}

	return message, nil
}

// SendQuotation validates and sends a structured price offer. Sending
// may create the conversation when none exists for the triple yet.
func (s *conversationService) SendQuotation(ctx context.Context, input usecase.QuotationInput) (*usecase.QuotationResult, error) {
	if err := s.validateQuotation(&input); err != nil {
		return nil, err
	}

	// The conversation may not exist yet, so the sender is checked
	// against the triple before any row is created.
	if err := s.verifyQuotationSender(ctx, &input); err != nil {
		return nil, err
	}

	conversation, err := s.GetOrCreate(ctx, input.RequestID, input.ProviderID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.ShopName == "" && input.SenderType == entity.SenderProvider {
		if provider, provErr := s.providerRepo.FindProviderByID(ctx, input.ProviderID); provErr == nil {
			input.ShopName = provider.BusinessName
		}
	}

	request, err := s.requestRepo.FindRequestByID(ctx, input.RequestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find request for quotation")
	}

	imageURLs, rejections := s.uploadQuotationImages(ctx, conversation.ID, input.Images)

	message := &entity.Message{
		ID:                uuid.New(),
		ConversationID:    conversation.ID,
		SenderID:          input.SenderID,
		SenderType:        input.SenderType,
		Content:           composeQuotationBody(&input, request.Title),
		QuotationPrice:    &input.Price,
		PricingType:       &input.PricingType,
		WholesalePrice:    input.WholesalePrice,
		NegotiablePrice:   input.NegotiablePrice,
		DeliveryAvailable: &input.DeliveryAvailable,
		QuotationImages:   imageURLs,
	}

	if err := s.persistMessage(ctx, conversation, message); err != nil {
		return nil, err
	}

	return &usecase.QuotationResult{
		Message:        message,
		RejectedImages: rejections,
	}, nil
}

// MarkRead marks the counterparty's messages as read for the reader's
// own side of the conversation.
func (s *conversationService) MarkRead(ctx context.Context, conversationID, readerID uuid.UUID) error {
	conversation, err := s.findConversation(ctx, conversationID)
	if err != nil {
		return err
	}

	role, err := s.partyRole(ctx, conversation, readerID)
	if err != nil {
		return err
	}

	// A reader consumes messages authored by the other side.
	if err := s.messageRepo.MarkConversationRead(ctx, conversationID, role.Other()); err != nil {
		return errors.Wrap(err, "failed to mark conversation read")
	}

	return nil
}

// UnreadCount returns the user's total unread messages across all their
// conversations, on both sides.
func (s *conversationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	_, counts, err := s.unreadForUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, count := range counts {
		total += count
	}

	return total, nil
}

// UnreadCountPerRequest returns the user's unread messages grouped by
// service request. Each conversation contributes exactly once.
func (s *conversationService) UnreadCountPerRequest(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int64, error) {
	conversations, counts, err := s.unreadForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	perRequest := make(map[uuid.UUID]int64, len(conversations))
	for _, conversation := range conversations {
		perRequest[conversation.RequestID] += counts[conversation.ID]
	}

	return perRequest, nil
}

// --- helpers ---

// unreadForUser collects per-conversation unread counts for every
// conversation the user participates in. Requester-side conversations
// count provider-authored unread messages and vice versa; a conversation
// where the user holds both roles counts once, on the requester side.
func (s *conversationService) unreadForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, map[uuid.UUID]int64, error) {
	userConversations, err := s.conversationRepo.FindConversationsByUser(ctx, userID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find conversations by user")
	}

	providerConversations, err := s.providerSideConversations(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[uuid.UUID]bool, len(userConversations))
	for _, conversation := range userConversations {
		seen[conversation.ID] = true
	}

	providerOnly := make([]*entity.Conversation, 0, len(providerConversations))
	for _, conversation := range providerConversations {
		if !seen[conversation.ID] {
			providerOnly = append(providerOnly, conversation)
		}
	}

	conversations := make([]*entity.Conversation, 0, len(userConversations)+len(providerOnly))
	counts := make(map[uuid.UUID]int64, len(userConversations)+len(providerOnly))

	if err := s.mergeUnread(ctx, userConversations, entity.SenderProvider, counts); err != nil {
		return nil, nil, err
	}
	conversations = append(conversations, userConversations...)

	if err := s.mergeUnread(ctx, providerOnly, entity.SenderUser, counts); err != nil {
		return nil, nil, err
	}
	conversations = append(conversations, providerOnly...)

	return conversations, counts, nil
}

// providerSideConversations returns the conversations where the user is
// the provider-profile owner, or nil when they have no profile.
func (s *conversationService) providerSideConversations(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	provider, err := s.providerRepo.FindProviderByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find provider by user")
	}

	conversations, err := s.conversationRepo.FindConversationsByProvider(ctx, provider.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find conversations by provider")
	}

	return conversations, nil
}

// mergeUnread counts unread messages authored by senderType in the given
// conversations and adds them to counts.
func (s *conversationService) mergeUnread(ctx context.Context, conversations []*entity.Conversation, senderType entity.SenderType, counts map[uuid.UUID]int64) error {
	if len(conversations) == 0 {
		return nil
	}

	conversationIDs := make([]uuid.UUID, 0, len(conversations))
	for _, conversation := range conversations {
		conversationIDs = append(conversationIDs, conversation.ID)
	}

	unread, err := s.messageRepo.CountUnreadByConversations(ctx, conversationIDs, senderType)
	if err != nil {
		return errors.Wrap(err, "failed to count unread messages")
	}

	for id, count := range unread {
		counts[id] += count
	}

	return nil
}

func (s *conversationService) findConversation(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	conversation, err := s.conversationRepo.FindConversationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			return nil, domainerrors.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation")
	}

	return conversation, nil
}

// partyRole resolves which side of the conversation a user is on.
func (s *conversationService) partyRole(ctx context.Context, conversation *entity.Conversation, userID uuid.UUID) (entity.SenderType, error) {
	if userID == conversation.UserID {
		return entity.SenderUser, nil
	}

	provider, err := s.providerRepo.FindProviderByID(ctx, conversation.ProviderID)
	if err != nil {
		return "", errors.Wrap(err, "failed to find conversation provider")
	}

	if userID == provider.UserID {
		return entity.SenderProvider, nil
	}

	return "", domainerrors.ErrConversationAccessDenied
}

// verifySender checks that the sender really is the claimed party.
func (s *conversationService) verifySender(ctx context.Context, conversation *entity.Conversation, senderID uuid.UUID, senderType entity.SenderType) error {
	role, err := s.partyRole(ctx, conversation, senderID)
	if err != nil {
		return err
	}

	if role != senderType {
		return domainerrors.ErrConversationAccessDenied
	}

	return nil
}

// verifyQuotationSender checks the sender against the quotation's triple.
// It runs before GetOrCreate so an unauthorized send never creates a
// conversation row.
func (s *conversationService) verifyQuotationSender(ctx context.Context, input *usecase.QuotationInput) error {
	switch input.SenderType {
	case entity.SenderUser:
		if input.SenderID != input.UserID {
			return domainerrors.ErrConversationAccessDenied
		}
	case entity.SenderProvider:
		provider, err := s.providerRepo.FindProviderByID(ctx, input.ProviderID)
		if err != nil {
			if errors.Is(err, repository.ErrProviderNotFound) {
				return domainerrors.ErrProviderNotFound
			}

			return errors.Wrap(err, "failed to find provider for sender check")
		}

		if provider.UserID != input.SenderID {
			return domainerrors.ErrConversationAccessDenied
		}
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown sender type")
	}

	return nil
}

// persistMessage saves the message, bumps the conversation's activity
// timestamp and notifies the counterparty. Publish failures only log;
// the message is already committed.
func (s *conversationService) persistMessage(ctx context.Context, conversation *entity.Conversation, message *entity.Message) error {
	if err := s.messageRepo.CreateMessage(ctx, message); err != nil {
		return errors.Wrap(err, "failed to create message")
	}

	if err := s.conversationRepo.TouchLastMessage(ctx, conversation.ID); err != nil {
		s.logger.Warn("failed to bump conversation activity",
			slog.String("conversation_id", conversation.ID.String()),
			slog.Any("error", err),
		)
	}

	recipientID, err := s.recipientUserID(ctx, conversation, message.SenderType)
	if err != nil {
		s.logger.Warn("failed to resolve message recipient",
			slog.String("conversation_id", conversation.ID.String()),
			slog.Any("error", err),
		)

		return nil
	}

	event := &service.MessageEvent{
		MessageID:      message.ID.String(),
		ConversationID: conversation.ID.String(),
		RecipientID:    recipientID.String(),
		SenderType:     string(message.SenderType),
		Preview:        previewText(message.Content),
		IsQuotation:    message.IsQuotation(),
	}
	if err := s.publisher.PublishMessageEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish message event",
			slog.String("message_id", message.ID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

// recipientUserID resolves the user account on the other side of the
// conversation from the sender.
func (s *conversationService) recipientUserID(ctx context.Context, conversation *entity.Conversation, senderType entity.SenderType) (uuid.UUID, error) {
	if senderType == entity.SenderProvider {
		return conversation.UserID, nil
	}

	provider, err := s.providerRepo.FindProviderByID(ctx, conversation.ProviderID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to find provider for recipient lookup")
	}

	return provider.UserID, nil
}

// validateQuotation applies the field-attributed quotation rules. Every
// failure carries a specific reason, never a generic one.
func (s *conversationService) validateQuotation(input *usecase.QuotationInput) error {
	if input.Price <= 0 {
		return domainerrors.ErrQuotationPriceInvalid.WithDetails("price must be greater than zero")
	}
	if input.Price > s.maxQuotationPrice {
		return domainerrors.ErrQuotationPriceInvalid.WithDetails(
			fmt.Sprintf("price exceeds the ceiling of %.0f", s.maxQuotationPrice))
	}

	switch input.PricingType {
	case entity.PricingFixed:
	case entity.PricingWholesale:
		if input.WholesalePrice == nil || *input.WholesalePrice <= 0 {
			return domainerrors.ErrQuotationWholesalePrice
		}
	case entity.PricingNegotiable:
		if input.NegotiablePrice != nil && *input.NegotiablePrice <= 0 {
			return domainerrors.ErrQuotationNegotiablePrice
		}
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown pricing type")
	}

	// Rejected before any upload attempt.
	if len(input.Images) > entity.MaxQuotationImages {
		return domainerrors.ErrQuotationTooManyImages
	}

	return nil
}

// uploadQuotationImages uploads the valid files and reports the rest
// per-file. One bad file never blocks its batch mates.
func (s *conversationService) uploadQuotationImages(ctx context.Context, conversationID uuid.UUID, files []usecase.FileInput) ([]string, []usecase.ImageRejection) {
	var urls []string
	var rejections []usecase.ImageRejection

	for _, file := range files {
		if reason := s.checkImageFile(file); reason != "" {
			rejections = append(rejections, usecase.ImageRejection{Name: file.Name, Reason: reason})

			continue
		}

		key := fmt.Sprintf("quotations/%s/%s", conversationID, util.ChecksumBytes(file.Data))
		url, err := s.fileStorage.Upload(ctx, key, file.ContentType, bytes.NewReader(file.Data))
		if err != nil {
			s.logger.Warn("quotation image upload failed",
				slog.String("file", file.Name),
				slog.Any("error", err),
			)
			rejections = append(rejections, usecase.ImageRejection{Name: file.Name, Reason: err.Error()})

			continue
		}

		urls = append(urls, url)
	}

	return urls, rejections
}

// checkImageFile returns a rejection reason, or "" when the file is acceptable.
func (s *conversationService) checkImageFile(file usecase.FileInput) string {
	if !strings.HasPrefix(file.ContentType, "image/") {
		return "not an image file"
	}

	size := file.Size
	if size == 0 {
		size = int64(len(file.Data))
	}
	if size > s.maxImageSizeBytes {
		return fmt.Sprintf("exceeds the %s size limit", util.FormatBytes(s.maxImageSizeBytes))
	}

	return ""
}

// composeQuotationBody assembles the human-readable message body in a
// fixed order: note, wholesale line, negotiable line, delivery line,
// shop line.
func composeQuotationBody(input *usecase.QuotationInput, requestTitle string) string {
	lines := make([]string, 0, 5)

	if note := strings.TrimSpace(input.Note); note != "" {
		lines = append(lines, note)
	} else {
		lines = append(lines, fmt.Sprintf("Quotation for %q: %s", requestTitle, formatPrice(input.Price)))
	}

	if input.PricingType == entity.PricingWholesale && input.WholesalePrice != nil {
		lines = append(lines, "Wholesale price: "+formatPrice(*input.WholesalePrice))
	}

	if input.PricingType == entity.PricingNegotiable {
		if input.NegotiablePrice != nil {
			lines = append(lines, "Negotiable down to "+formatPrice(*input.NegotiablePrice))
		} else {
			lines = append(lines, "Price is negotiable")
		}
	}

	if input.DeliveryAvailable {
		lines = append(lines, "Delivery available")
	}

	if input.ShopName != "" {
		lines = append(lines, "Offered by "+input.ShopName)
	}

	return strings.Join(lines, "\n")
}

func formatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

func previewText(content string) string {
	runes := []rune(content)
	if len(runes) <= messagePreviewLength {
		return content
	}

	return string(runes[:messagePreviewLength]) + "…"
}
