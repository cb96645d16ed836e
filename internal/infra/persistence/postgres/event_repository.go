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

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// CreateEvent persists a new event with approval_status pending.
func (repo *eventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)
	eventM.ApprovalStatus = string(entity.ApprovalPending)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	// Update the entity with generated values
	event.ID = eventM.ID
	event.ApprovalStatus = entity.ApprovalStatus(eventM.ApprovalStatus)
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindEventByID retrieves an event by its unique ID.
func (repo *eventRepository) FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&eventM), nil
}

// FindUpcomingEvents retrieves events that have not ended yet, soonest
// first. Public queries see only approved events.
func (repo *eventRepository) FindUpcomingEvents(ctx context.Context, city string, allStatuses bool, limit, offset int) ([]*entity.Event, error) {
	query := repo.db.WithContext(ctx).
		Where("ends_at > now()")

	if !allStatuses {
		query = query.Where("approval_status = ?", entity.ApprovalApproved)
	}
	if city != "" {
		query = query.Where("city = ?", city)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var eventModels []*model.EventModel
	if err := query.
		Offset(offset).
		Order("starts_at ASC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find upcoming events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// UpdateApprovalStatus moves an event through the moderation workflow.
func (repo *eventRepository) UpdateApprovalStatus(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", id).
		Update("approval_status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update event approval status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM EventModel to a domain Event entity.
func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:             data.ID,
		OrganizerID:    data.OrganizerID,
		Title:          data.Title,
		Description:    data.Description,
		Venue:          data.Venue,
		City:           data.City,
		Location:       toLocation(data.Latitude, data.Longitude),
		StartsAt:       data.StartsAt,
		EndsAt:         data.EndsAt,
		ApprovalStatus: entity.ApprovalStatus(data.ApprovalStatus),
		CreatedAt:      data.CreatedAt,
	}
}

// fromEventDomain converts a domain Event entity to a GORM EventModel.
func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	lat, lng := fromLocation(data.Location)

	return &model.EventModel{
		ID:             data.ID,
		OrganizerID:    data.OrganizerID,
		Title:          data.Title,
		Description:    data.Description,
		Venue:          data.Venue,
		City:           data.City,
		Latitude:       lat,
		Longitude:      lng,
		StartsAt:       data.StartsAt,
		EndsAt:         data.EndsAt,
		ApprovalStatus: string(data.ApprovalStatus),
		CreatedAt:      data.CreatedAt,
	}
}
