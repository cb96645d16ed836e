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

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// CreateRequest persists a new service request.
func (repo *requestRepository) CreateRequest(ctx context.Context, request *entity.ServiceRequest) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid requester reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required request information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create service request")
	}

	// Update the entity with generated values
	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt

	return nil
}

// FindRequestByID retrieves a request by its unique ID.
func (repo *requestRepository) FindRequestByID(ctx context.Context, id uuid.UUID) (*entity.ServiceRequest, error) {
	var requestM model.ServiceRequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// FindRequestsByOwner retrieves all requests created by a user, newest first.
func (repo *requestRepository) FindRequestsByOwner(ctx context.Context, userID uuid.UUID) ([]*entity.ServiceRequest, error) {
	var requestModels []*model.ServiceRequestModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find requests by owner")
	}

	requests := make([]*entity.ServiceRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests, nil
}

// FindOpenRequests retrieves open requests, optionally narrowed by category and city.
func (repo *requestRepository) FindOpenRequests(ctx context.Context, category, city string, limit, offset int) ([]*entity.ServiceRequest, error) {
	query := repo.db.WithContext(ctx).
		Where("status = ?", entity.RequestOpen)

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var requestModels []*model.ServiceRequestModel
	if err := query.
		Offset(offset).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find open requests")
	}

	requests := make([]*entity.ServiceRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests, nil
}

// UpdateRequestStatus flips a request between open and closed.
func (repo *requestRepository) UpdateRequestStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceRequestModel{}).
		Where("id = ?", id).
		Update("status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update request status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// DeleteRequest removes a request row.
func (repo *requestRepository) DeleteRequest(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ServiceRequestModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete request")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRequestDomain converts a GORM ServiceRequestModel to a domain ServiceRequest entity.
func toRequestDomain(data *model.ServiceRequestModel) *entity.ServiceRequest {
	if data == nil {
		return nil
	}

	return &entity.ServiceRequest{
		ID:             data.ID,
		UserID:         data.UserID,
		Title:          data.Title,
		Description:    data.Description,
		Category:       data.Category,
		Subcategory:    data.Subcategory,
		Budget:         data.Budget,
		DateRangeStart: data.DateRangeStart,
		DateRangeEnd:   data.DateRangeEnd,
		Area:           data.Area,
		City:           data.City,
		PostalCode:     data.PostalCode,
		ContactPhone:   data.ContactPhone,
		Images:         data.Images,
		Status:         entity.RequestStatus(data.Status),
		CreatedAt:      data.CreatedAt,
	}
}

// fromRequestDomain converts a domain ServiceRequest entity to a GORM ServiceRequestModel.
func fromRequestDomain(data *entity.ServiceRequest) *model.ServiceRequestModel {
	if data == nil {
		return nil
	}

	return &model.ServiceRequestModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Title:          data.Title,
		Description:    data.Description,
		Category:       data.Category,
		Subcategory:    data.Subcategory,
		Budget:         data.Budget,
		DateRangeStart: data.DateRangeStart,
		DateRangeEnd:   data.DateRangeEnd,
		Area:           data.Area,
		City:           data.City,
		PostalCode:     data.PostalCode,
		ContactPhone:   data.ContactPhone,
		Images:         model.StringList(data.Images),
		Status:         string(data.Status),
		CreatedAt:      data.CreatedAt,
	}
}
