package impl

import (
	"context"
	"fmt"
	"log/slog"

	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minOverallRating  = 1
	maxOverallRating  = 5
	minCriterionScore = 1
	maxCriterionScore = 10
)

type reviewService struct {
	reviewRepo   repository.ReviewRepository
	listingRepo  repository.ListingRepository
	providerRepo repository.ProviderRepository
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	Logger       *slog.Logger
	ReviewRepo   repository.ReviewRepository
	ListingRepo  repository.ListingRepository
	ProviderRepo repository.ProviderRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:   params.ReviewRepo,
		listingRepo:  params.ListingRepo,
		providerRepo: params.ProviderRepo,
		logger:       params.Logger,
	}
}

// SubmitReview validates and upserts a review, then refreshes the
// subject's denormalized rating aggregate. A resubmission edits the
// author's existing review in place.
func (s *reviewService) SubmitReview(ctx context.Context, input usecase.ReviewInput) (*entity.Review, error) {
	if input.Rating < minOverallRating || input.Rating > maxOverallRating {
		return nil, domainerrors.ErrReviewRatingInvalid
	}

	for criterion, score := range input.CriteriaRatings {
		if score < minCriterionScore || score > maxCriterionScore {
			return nil, domainerrors.ErrReviewRatingInvalid.WithDetails(
				fmt.Sprintf("criterion %q must score between %d and %d", criterion, minCriterionScore, maxCriterionScore))
		}
	}

	if err := s.verifySubject(ctx, input.SubjectType, input.SubjectID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:              uuid.New(),
		AuthorID:        input.AuthorID,
		SubjectID:       input.SubjectID,
		SubjectType:     input.SubjectType,
		Rating:          input.Rating,
		Text:            input.Text,
		IsMustVisit:     input.IsMustVisit,
		IsHiddenGem:     input.IsHiddenGem,
		CriteriaRatings: input.CriteriaRatings,
	}

	if err := s.reviewRepo.SaveReview(ctx, review); err != nil {
		return nil, errors.Wrap(err, "failed to save review")
	}

	s.refreshAggregate(ctx, input.SubjectType, input.SubjectID)

	return review, nil
}

// GetReviews retrieves all reviews of a subject, newest first.
func (s *reviewService) GetReviews(ctx context.Context, subjectID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := s.reviewRepo.FindReviewsBySubject(ctx, subjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reviews by subject")
	}

	return reviews, nil
}

// GetOwnReview retrieves the author's review of a subject, if any.
func (s *reviewService) GetOwnReview(ctx context.Context, authorID, subjectID uuid.UUID) (*entity.Review, error) {
	review, err := s.reviewRepo.FindReviewByAuthorAndSubject(ctx, authorID, subjectID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by author and subject")
	}

	return review, nil
}

// verifySubject checks the reviewed listing or provider actually exists.
func (s *reviewService) verifySubject(ctx context.Context, subjectType entity.ReviewSubjectType, subjectID uuid.UUID) error {
	switch subjectType {
	case entity.ReviewSubjectListing:
		if _, err := s.listingRepo.FindListingByID(ctx, subjectID); err != nil {
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrReviewSubjectInvalid
			}

			return errors.Wrap(err, "failed to verify review subject")
		}

		return nil

	case entity.ReviewSubjectProvider:
		if _, err := s.providerRepo.FindProviderByID(ctx, subjectID); err != nil {
			if errors.Is(err, repository.ErrProviderNotFound) {
				return domainerrors.ErrReviewSubjectInvalid
			}

			return errors.Wrap(err, "failed to verify review subject")
		}

		return nil
	}

	return domainerrors.ErrReviewSubjectInvalid
}

// refreshAggregate recomputes the subject's denormalized rating columns.
// Failures only log; the review itself is already committed.
func (s *reviewService) refreshAggregate(ctx context.Context, subjectType entity.ReviewSubjectType, subjectID uuid.UUID) {
	aggregate, err := s.reviewRepo.AggregateBySubject(ctx, subjectID)
	if err != nil {
		s.logger.Warn("failed to aggregate reviews",
			slog.String("subject_id", subjectID.String()),
			slog.Any("error", err),
		)

		return
	}

	switch subjectType {
	case entity.ReviewSubjectListing:
		err = s.listingRepo.UpdateRatingAggregate(ctx, subjectID, aggregate.Average, aggregate.Count)
	case entity.ReviewSubjectProvider:
		err = s.providerRepo.UpdateRatingAggregate(ctx, subjectID, aggregate.Average, aggregate.Count)
	}

	if err != nil {
		s.logger.Warn("failed to refresh rating aggregate",
			slog.String("subject_id", subjectID.String()),
			slog.Any("error", err),
		)
	}
}
