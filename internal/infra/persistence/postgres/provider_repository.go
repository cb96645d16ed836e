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

// providerRepository implements the repository.ProviderRepository interface.
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{
		db: db,
	}
}

// CreateProvider persists a new provider profile with approval_status pending.
func (repo *providerRepository) CreateProvider(ctx context.Context, provider *entity.ServiceProvider) error {
	providerM := fromProviderDomain(provider)
	providerM.ApprovalStatus = string(entity.ApprovalPending)

	if err := repo.db.WithContext(ctx).Create(providerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("user already has a provider profile")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required provider information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create provider")
	}

	// Update the entity with generated values
	provider.ID = providerM.ID
	provider.ApprovalStatus = entity.ApprovalStatus(providerM.ApprovalStatus)
	provider.CreatedAt = providerM.CreatedAt
	provider.UpdatedAt = providerM.UpdatedAt

	return nil
}

// FindProviderByID retrieves a provider by its unique ID.
func (repo *providerRepository) FindProviderByID(ctx context.Context, id uuid.UUID) (*entity.ServiceProvider, error) {
	var providerM model.ServiceProviderModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&providerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by ID")
	}

	return toProviderDomain(&providerM), nil
}

// FindProviderByUser retrieves the provider profile owned by a user.
func (repo *providerRepository) FindProviderByUser(ctx context.Context, userID uuid.UUID) (*entity.ServiceProvider, error) {
	var providerM model.ServiceProviderModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&providerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by user")
	}

	return toProviderDomain(&providerM), nil
}

// FindApprovedProviders retrieves approved providers, optionally narrowed by category and city.
func (repo *providerRepository) FindApprovedProviders(ctx context.Context, category, city string, limit, offset int) ([]*entity.ServiceProvider, error) {
	query := repo.db.WithContext(ctx).
		Where("approval_status = ?", entity.ApprovalApproved)

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var providerModels []*model.ServiceProviderModel
	if err := query.
		Offset(offset).
		Order("rating_average DESC, review_count DESC").
		Find(&providerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find approved providers")
	}

	providers := make([]*entity.ServiceProvider, 0, len(providerModels))
	for _, providerM := range providerModels {
		providers = append(providers, toProviderDomain(providerM))
	}

	return providers, nil
}

// FindMatchingProvidersForRequest retrieves approved providers whose
// category matches the request's, listing same-city providers first.
func (repo *providerRepository) FindMatchingProvidersForRequest(ctx context.Context, requestID uuid.UUID) ([]*entity.ServiceProvider, error) {
	var providerModels []*model.ServiceProviderModel

	query := `
		SELECT p.*
		FROM service_providers p
		JOIN service_requests r ON r.id = ?
		WHERE p.approval_status = 'approved'
		  AND p.category = r.category
		ORDER BY (p.city = r.city) DESC, p.rating_average DESC, p.review_count DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, requestID).
		Scan(&providerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find matching providers for request")
	}

	providers := make([]*entity.ServiceProvider, 0, len(providerModels))
	for _, providerM := range providerModels {
		providers = append(providers, toProviderDomain(providerM))
	}

	return providers, nil
}

// UpdateApprovalStatus moves a provider through the moderation workflow.
func (repo *providerRepository) UpdateApprovalStatus(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceProviderModel{}).
		Where("id = ?", id).
		Update("approval_status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update provider approval status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProviderNotFound
	}

	return nil
}

// UpdateRatingAggregate refreshes the denormalized rating columns.
func (repo *providerRepository) UpdateRatingAggregate(ctx context.Context, id uuid.UUID, average float64, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceProviderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating_average": average,
			"review_count":   count,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update provider rating aggregate")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProviderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProviderDomain converts a GORM ServiceProviderModel to a domain ServiceProvider entity.
func toProviderDomain(data *model.ServiceProviderModel) *entity.ServiceProvider {
	if data == nil {
		return nil
	}

	return &entity.ServiceProvider{
		ID:              data.ID,
		UserID:          data.UserID,
		BusinessName:    data.BusinessName,
		Description:     data.Description,
		Category:        data.Category,
		Subcategory:     data.Subcategory,
		City:            data.City,
		Area:            data.Area,
		PostalCode:      data.PostalCode,
		ContactPhone:    data.ContactPhone,
		Location:        toLocation(data.Latitude, data.Longitude),
		StartingPrice:   data.StartingPrice,
		DeliveryOffered: data.DeliveryOffered,
		ApprovalStatus:  entity.ApprovalStatus(data.ApprovalStatus),
		RatingAverage:   data.RatingAverage,
		ReviewCount:     data.ReviewCount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromProviderDomain converts a domain ServiceProvider entity to a GORM ServiceProviderModel.
func fromProviderDomain(data *entity.ServiceProvider) *model.ServiceProviderModel {
	if data == nil {
		return nil
	}

	lat, lng := fromLocation(data.Location)

	return &model.ServiceProviderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		BusinessName:    data.BusinessName,
		Description:     data.Description,
		Category:        data.Category,
		Subcategory:     data.Subcategory,
		City:            data.City,
		Area:            data.Area,
		PostalCode:      data.PostalCode,
		ContactPhone:    data.ContactPhone,
		Latitude:        lat,
		Longitude:       lng,
		StartingPrice:   data.StartingPrice,
		DeliveryOffered: data.DeliveryOffered,
		ApprovalStatus:  string(data.ApprovalStatus),
		RatingAverage:   data.RatingAverage,
		ReviewCount:     data.ReviewCount,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
