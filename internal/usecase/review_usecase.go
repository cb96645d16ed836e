package usecase

import (
	"context"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput carries a review submission. Submitting a second review
// of the same subject edits the first in place.
type ReviewInput struct {
	AuthorID        uuid.UUID
	SubjectID       uuid.UUID
	SubjectType     entity.ReviewSubjectType
	Rating          int
	Text            string
	IsMustVisit     bool
	IsHiddenGem     bool
	CriteriaRatings map[string]int
}

// ReviewUsecase defines the interface for review use cases
type ReviewUsecase interface {
	// SubmitReview validates and upserts a review, then refreshes the
	// subject's denormalized rating aggregate
	SubmitReview(ctx context.Context, input ReviewInput) (*entity.Review, error)

	// GetReviews retrieves all reviews of a subject, newest first
	GetReviews(ctx context.Context, subjectID uuid.UUID) ([]*entity.Review, error)

	// GetOwnReview retrieves the author's review of a subject, if any
	GetOwnReview(ctx context.Context, authorID, subjectID uuid.UUID) (*entity.Review, error)
}
