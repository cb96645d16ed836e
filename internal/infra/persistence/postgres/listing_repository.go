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

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// CreateListing persists a new listing with approval_status pending.
func (repo *listingRepository) CreateListing(ctx context.Context, listing *entity.MarketplaceListing) error {
	listingM := fromListingDomain(listing)
	listingM.ApprovalStatus = string(entity.ApprovalPending)

	if err := repo.db.WithContext(ctx).Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid seller reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create listing")
	}

	// Update the entity with generated values
	listing.ID = listingM.ID
	listing.ApprovalStatus = entity.ApprovalStatus(listingM.ApprovalStatus)
	listing.CreatedAt = listingM.CreatedAt
	listing.UpdatedAt = listingM.UpdatedAt

	return nil
}

// FindListingByID retrieves a listing by its unique ID.
func (repo *listingRepository) FindListingByID(ctx context.Context, id uuid.UUID) (*entity.MarketplaceListing, error) {
	var listingM model.MarketplaceListingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing by ID")
	}

	return toListingDomain(&listingM), nil
}

// FindListings retrieves listings matching the query. Public queries see
// only approved listings; moderation views set query.AllStatuses.
func (repo *listingRepository) FindListings(ctx context.Context, query repository.ListingQuery) ([]*entity.MarketplaceListing, error) {
	builder := repo.db.WithContext(ctx).Model(&model.MarketplaceListingModel{})

	if !query.AllStatuses {
		builder = builder.Where("approval_status = ?", entity.ApprovalApproved)
	}
	if query.Category != "" {
		builder = builder.Where("category = ?", query.Category)
	}
	if query.City != "" {
		builder = builder.Where("city = ?", query.City)
	}
	if query.Condition != "" {
		builder = builder.Where("condition = ?", query.Condition)
	}
	if query.SearchText != "" {
		pattern := "%" + query.SearchText + "%"
		builder = builder.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if query.MinPrice > 0 {
		builder = builder.Where("price >= ?", query.MinPrice)
	}
	if query.MaxPrice > 0 {
		builder = builder.Where("price <= ?", query.MaxPrice)
	}
	if query.Limit > 0 {
		builder = builder.Limit(query.Limit)
	}

	var listingModels []*model.MarketplaceListingModel
	if err := builder.
		Offset(query.Offset).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings")
	}

	listings := make([]*entity.MarketplaceListing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// FindListingsBySeller retrieves a seller's own listings regardless of status.
func (repo *listingRepository) FindListingsBySeller(ctx context.Context, sellerID uuid.UUID) ([]*entity.MarketplaceListing, error) {
	var listingModels []*model.MarketplaceListingModel

	if err := repo.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find listings by seller")
	}

	listings := make([]*entity.MarketplaceListing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// UpdateApprovalStatus moves a listing through the moderation workflow.
func (repo *listingRepository) UpdateApprovalStatus(ctx context.Context, id uuid.UUID, status entity.ApprovalStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MarketplaceListingModel{}).
		Where("id = ?", id).
		Update("approval_status", status)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing approval status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// UpdateListingImages replaces the listing's stored image URLs.
func (repo *listingRepository) UpdateListingImages(ctx context.Context, id uuid.UUID, images []string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MarketplaceListingModel{}).
		Where("id = ?", id).
		Update("images", model.StringList(images))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing images")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// UpdateRatingAggregate refreshes the denormalized rating columns.
func (repo *listingRepository) UpdateRatingAggregate(ctx context.Context, id uuid.UUID, average float64, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MarketplaceListingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating_average": average,
			"review_count":   count,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update listing rating aggregate")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// DeleteListing removes a listing (soft delete).
func (repo *listingRepository) DeleteListing(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MarketplaceListingModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete listing")
	}

	if result.RowsAffected == 0 {
		return repository.ErrListingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toListingDomain converts a GORM MarketplaceListingModel to a domain MarketplaceListing entity.
func toListingDomain(data *model.MarketplaceListingModel) *entity.MarketplaceListing {
	if data == nil {
		return nil
	}

	return &entity.MarketplaceListing{
		ID:             data.ID,
		SellerID:       data.SellerID,
		Title:          data.Title,
		Description:    data.Description,
		Category:       data.Category,
		Condition:      data.Condition,
		Price:          data.Price,
		City:           data.City,
		Area:           data.Area,
		Location:       toLocation(data.Latitude, data.Longitude),
		Images:         data.Images,
		ApprovalStatus: entity.ApprovalStatus(data.ApprovalStatus),
		RatingAverage:  data.RatingAverage,
		ReviewCount:    data.ReviewCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromListingDomain converts a domain MarketplaceListing entity to a GORM MarketplaceListingModel.
func fromListingDomain(data *entity.MarketplaceListing) *model.MarketplaceListingModel {
	if data == nil {
		return nil
	}

	lat, lng := fromLocation(data.Location)

	return &model.MarketplaceListingModel{
		ID:             data.ID,
		SellerID:       data.SellerID,
		Title:          data.Title,
		Description:    data.Description,
		Category:       data.Category,
		Condition:      data.Condition,
		Price:          data.Price,
		City:           data.City,
		Area:           data.Area,
		Latitude:       lat,
		Longitude:      lng,
		Images:         model.StringList(data.Images),
		ApprovalStatus: string(data.ApprovalStatus),
		RatingAverage:  data.RatingAverage,
		ReviewCount:    data.ReviewCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// toLocation rebuilds an optional coordinate pair from nullable columns.
// A half-set pair is treated as absent.
func toLocation(lat, lng *float64) *entity.Location {
	if lat == nil || lng == nil {
		return nil
	}

	return &entity.Location{Lat: *lat, Lng: *lng}
}

// fromLocation splits an optional coordinate pair into nullable columns.
func fromLocation(location *entity.Location) (lat, lng *float64) {
	if location == nil {
		return nil, nil
	}

	return &location.Lat, &location.Lng
}
