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
	"gorm.io/gorm/clause"
)

// conversationRepository implements the repository.ConversationRepository interface.
type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository is the constructor for conversationRepository.
func NewConversationRepository(db *gorm.DB) repository.ConversationRepository {
	return &conversationRepository{
		db: db,
	}
}

// UpsertConversation inserts the conversation or returns the existing row
// for the same (request, provider, user) triple. ON CONFLICT DO NOTHING
// against the composite unique index keeps this race-safe: whichever
// concurrent insert loses simply reads the winner back.
func (repo *conversationRepository) UpsertConversation(ctx context.Context, conversation *entity.Conversation) (*entity.Conversation, error) {
	conversationM := fromConversationDomain(conversation)

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "request_id"},
				{Name: "provider_id"},
				{Name: "user_id"},
			},
			DoNothing: true,
		}).
		Create(conversationM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid conversation participant reference")
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert conversation")
	}

	if result.RowsAffected > 0 {
		return toConversationDomain(conversationM), nil
	}

	// The triple already had a row; hand that one back.
	return repo.FindConversationByTriple(ctx, conversation.RequestID, conversation.ProviderID, conversation.UserID)
}

// FindConversationByID retrieves a conversation by its unique ID.
func (repo *conversationRepository) FindConversationByID(ctx context.Context, id uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by ID")
	}

	return toConversationDomain(&conversationM), nil
}

// FindConversationByTriple retrieves the conversation for a (request, provider, user) triple.
func (repo *conversationRepository) FindConversationByTriple(ctx context.Context, requestID, providerID, userID uuid.UUID) (*entity.Conversation, error) {
	var conversationM model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("request_id = ? AND provider_id = ? AND user_id = ?", requestID, providerID, userID).
		Order("created_at DESC").
		First(&conversationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConversationNotFound
		}

		return nil, errors.Wrap(err, "failed to find conversation by triple")
	}

	return toConversationDomain(&conversationM), nil
}

// FindConversationsByUser retrieves conversations where the user is the requester.
func (repo *conversationRepository) FindConversationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Conversation, error) {
	var conversationModels []*model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_message_at DESC").
		Find(&conversationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find conversations by user")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversations = append(conversations, toConversationDomain(conversationM))
	}

	return conversations, nil
}

// FindConversationsByProvider retrieves conversations where the provider is the counterparty.
func (repo *conversationRepository) FindConversationsByProvider(ctx context.Context, providerID uuid.UUID) ([]*entity.Conversation, error) {
	var conversationModels []*model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("last_message_at DESC").
		Find(&conversationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find conversations by provider")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversations = append(conversations, toConversationDomain(conversationM))
	}

	return conversations, nil
}

// FindConversationsByRequest retrieves every conversation scoped to a request.
func (repo *conversationRepository) FindConversationsByRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.Conversation, error) {
	var conversationModels []*model.ConversationModel

	if err := repo.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Find(&conversationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find conversations by request")
	}

	conversations := make([]*entity.Conversation, 0, len(conversationModels))
	for _, conversationM := range conversationModels {
		conversations = append(conversations, toConversationDomain(conversationM))
	}

	return conversations, nil
}

// TouchLastMessage bumps last_message_at after a send.
func (repo *conversationRepository) TouchLastMessage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConversationModel{}).
		Where("id = ?", id).
		Update("last_message_at", gorm.Expr("now()"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch last message timestamp")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConversationNotFound
	}

	return nil
}

// DeleteConversationsByRequest removes every conversation scoped to a request.
func (repo *conversationRepository) DeleteConversationsByRequest(ctx context.Context, requestID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Delete(&model.ConversationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete conversations by request")
	}

	return nil
}

// --- Mapper Functions ---

// toConversationDomain converts a GORM ConversationModel to a domain Conversation entity.
func toConversationDomain(data *model.ConversationModel) *entity.Conversation {
	if data == nil {
		return nil
	}

	return &entity.Conversation{
		ID:            data.ID,
		RequestID:     data.RequestID,
		ProviderID:    data.ProviderID,
		UserID:        data.UserID,
		CreatedAt:     data.CreatedAt,
		LastMessageAt: data.LastMessageAt,
	}
}

// fromConversationDomain converts a domain Conversation entity to a GORM ConversationModel.
func fromConversationDomain(data *entity.Conversation) *model.ConversationModel {
	if data == nil {
		return nil
	}

	return &model.ConversationModel{
		ID:            data.ID,
		RequestID:     data.RequestID,
		ProviderID:    data.ProviderID,
		UserID:        data.UserID,
		CreatedAt:     data.CreatedAt,
		LastMessageAt: data.LastMessageAt,
	}
}
