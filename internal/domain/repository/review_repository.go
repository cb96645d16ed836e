package repository

import (
	"context"
	"errors"

	"plaza/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// RatingAggregate is the denormalized review summary for one subject.
type RatingAggregate struct {
	Average float64
	Count   int
}

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// SaveReview inserts the review, or updates the author's existing
	// review of the same subject in place (one review per author+subject).
	SaveReview(ctx context.Context, review *entity.Review) error

	// FindReviewByAuthorAndSubject retrieves the author's review of a subject.
	FindReviewByAuthorAndSubject(ctx context.Context, authorID, subjectID uuid.UUID) (*entity.Review, error)

	// FindReviewsBySubject retrieves all reviews of a subject, newest first.
	FindReviewsBySubject(ctx context.Context, subjectID uuid.UUID) ([]*entity.Review, error)

	// AggregateBySubject computes the average rating and review count for a subject.
	AggregateBySubject(ctx context.Context, subjectID uuid.UUID) (*RatingAggregate, error)
}
