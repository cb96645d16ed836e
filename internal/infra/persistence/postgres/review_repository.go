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

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// SaveReview inserts the review, or updates the author's existing review
// of the same subject in place. ON CONFLICT against the composite unique
// index makes resubmission an edit rather than a duplicate, even when
// two submissions race.
func (repo *reviewRepository) SaveReview(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "author_id"},
				{Name: "subject_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"rating", "text", "is_must_visit", "is_hidden_gem",
				"criteria_ratings", "updated_at",
			}),
		}).
		Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid review subject reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save review")
	}

	// Update the entity with generated values
	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindReviewByAuthorAndSubject retrieves the author's review of a subject.
func (repo *reviewRepository) FindReviewByAuthorAndSubject(ctx context.Context, authorID, subjectID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("author_id = ? AND subject_id = ?", authorID, subjectID).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by author and subject")
	}

	return toReviewDomain(&reviewM), nil
}

// FindReviewsBySubject retrieves all reviews of a subject, newest first.
func (repo *reviewRepository) FindReviewsBySubject(ctx context.Context, subjectID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel

	if err := repo.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by subject")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// AggregateBySubject computes the average rating and review count for a subject.
func (repo *reviewRepository) AggregateBySubject(ctx context.Context, subjectID uuid.UUID) (*repository.RatingAggregate, error) {
	var row struct {
		Average float64
		Count   int
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("subject_id = ?", subjectID).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate reviews by subject")
	}

	return &repository.RatingAggregate{
		Average: row.Average,
		Count:   row.Count,
	}, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:              data.ID,
		AuthorID:        data.AuthorID,
		SubjectID:       data.SubjectID,
		SubjectType:     entity.ReviewSubjectType(data.SubjectType),
		Rating:          data.Rating,
		Text:            data.Text,
		IsMustVisit:     data.IsMustVisit,
		IsHiddenGem:     data.IsHiddenGem,
		CriteriaRatings: data.CriteriaRatings,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:              data.ID,
		AuthorID:        data.AuthorID,
		SubjectID:       data.SubjectID,
		SubjectType:     string(data.SubjectType),
		Rating:          data.Rating,
		Text:            data.Text,
		IsMustVisit:     data.IsMustVisit,
		IsHiddenGem:     data.IsHiddenGem,
		CriteriaRatings: model.IntMap(data.CriteriaRatings),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
