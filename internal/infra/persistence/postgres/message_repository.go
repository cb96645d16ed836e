package postgres

import (
	"context"

	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// CreateMessage persists a new message.
func (repo *messageRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid conversation reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	// Update the entity with generated values
	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindMessagesByConversation retrieves the messages of a conversation in creation order.
func (repo *messageRepository) FindMessagesByConversation(ctx context.Context, conversationID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	if err := repo.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find messages by conversation")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// MarkConversationRead marks every unread message authored by senderType
// in the conversation as read. The WHERE clause keeps the flip monotonic:
// already-read rows are untouched, so repeated calls are idempotent.
func (repo *messageRepository) MarkConversationRead(ctx context.Context, conversationID uuid.UUID, senderType entity.SenderType) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("conversation_id = ? AND sender_type = ? AND is_read = ?", conversationID, senderType, false).
		Update("is_read", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark conversation read")
	}

	return nil
}

// CountUnread counts unread messages authored by senderType in one conversation.
func (repo *messageRepository) CountUnread(ctx context.Context, conversationID uuid.UUID, senderType entity.SenderType) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Where("conversation_id = ? AND sender_type = ? AND is_read = ?", conversationID, senderType, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread messages")
	}

	return count, nil
}

// CountUnreadByConversations counts unread messages authored by senderType
// across many conversations in one grouped query.
func (repo *messageRepository) CountUnreadByConversations(ctx context.Context, conversationIDs []uuid.UUID, senderType entity.SenderType) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(conversationIDs))
	if len(conversationIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		ConversationID uuid.UUID
		Total          int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageModel{}).
		Select("conversation_id, COUNT(*) AS total").
		Where("conversation_id IN ? AND sender_type = ? AND is_read = ?", conversationIDs, senderType, false).
		Group("conversation_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count unread messages by conversations")
	}

	for _, row := range rows {
		counts[row.ConversationID] = row.Total
	}

	return counts, nil
}

// DeleteMessagesByConversations removes all messages of the given conversations.
func (repo *messageRepository) DeleteMessagesByConversations(ctx context.Context, conversationIDs []uuid.UUID) error {
	if len(conversationIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("conversation_id IN ?", conversationIDs).
		Delete(&model.MessageModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete messages by conversations")
	}

	return nil
}

// --- Mapper Functions ---

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	var pricingType *entity.PricingType
	if data.PricingType != nil {
		pt := entity.PricingType(*data.PricingType)
		pricingType = &pt
	}

	return &entity.Message{
		ID:                data.ID,
		ConversationID:    data.ConversationID,
		SenderID:          data.SenderID,
		SenderType:        entity.SenderType(data.SenderType),
		Content:           data.Content,
		Attachments:       data.Attachments,
		Read:              data.IsRead,
		CreatedAt:         data.CreatedAt,
		QuotationPrice:    data.QuotationPrice,
		PricingType:       pricingType,
		WholesalePrice:    data.WholesalePrice,
		NegotiablePrice:   data.NegotiablePrice,
		DeliveryAvailable: data.DeliveryAvailable,
		QuotationImages:   data.QuotationImages,
	}
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	var pricingType *string
	if data.PricingType != nil {
		pt := string(*data.PricingType)
		pricingType = &pt
	}

	return &model.MessageModel{
		ID:                data.ID,
		ConversationID:    data.ConversationID,
		SenderID:          data.SenderID,
		SenderType:        string(data.SenderType),
		Content:           data.Content,
		Attachments:       model.StringList(data.Attachments),
		IsRead:            data.Read,
		CreatedAt:         data.CreatedAt,
		QuotationPrice:    data.QuotationPrice,
		PricingType:       pricingType,
		WholesalePrice:    data.WholesalePrice,
		NegotiablePrice:   data.NegotiablePrice,
		DeliveryAvailable: data.DeliveryAvailable,
		QuotationImages:   model.StringList(data.QuotationImages),
	}
}
