package impl

import (
	"context"
	"testing"

	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	mockRepo "plaza/internal/mocks/repository"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewMocks struct {
	reviewRepo   *mockRepo.MockReviewRepository
	listingRepo  *mockRepo.MockListingRepository
	providerRepo *mockRepo.MockProviderRepository
}

func newReviewService(t *testing.T) (usecase.ReviewUsecase, *reviewMocks) {
	t.Helper()

	mocks := &reviewMocks{
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		listingRepo:  mockRepo.NewMockListingRepository(t),
		providerRepo: mockRepo.NewMockProviderRepository(t),
	}

	svc := NewReviewService(ReviewServiceParams{
		Logger:       testLogger(),
		ReviewRepo:   mocks.reviewRepo,
		ListingRepo:  mocks.listingRepo,
		ProviderRepo: mocks.providerRepo,
	})

	return svc, mocks
}

func TestReviewService_SubmitReview_RatingBounds(t *testing.T) {
	svc, _ := newReviewService(t)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		review, err := svc.SubmitReview(ctx, usecase.ReviewInput{
			AuthorID:    uuid.New(),
			SubjectID:   uuid.New(),
			SubjectType: entity.ReviewSubjectListing,
			Rating:      rating,
		})
		require.Error(t, err)
		assert.Nil(t, review)
		assert.ErrorIs(t, err, domainerrors.ErrReviewRatingInvalid)
	}
}

func TestReviewService_SubmitReview_CriterionBounds(t *testing.T) {
	svc, _ := newReviewService(t)

	review, err := svc.SubmitReview(context.Background(), usecase.ReviewInput{
		AuthorID:        uuid.New(),
		SubjectID:       uuid.New(),
		SubjectType:     entity.ReviewSubjectListing,
		Rating:          4,
		CriteriaRatings: map[string]int{"quality": 11},
	})
	require.Error(t, err)
	assert.Nil(t, review)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrReviewRatingInvalid.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "quality")
}

func TestReviewService_SubmitReview_SubjectMustExist(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	subjectID := uuid.New()

	mocks.listingRepo.EXPECT().
		FindListingByID(ctx, subjectID).
		Return(nil, repository.ErrListingNotFound)

	review, err := svc.SubmitReview(ctx, usecase.ReviewInput{
		AuthorID:    uuid.New(),
		SubjectID:   subjectID,
		SubjectType: entity.ReviewSubjectListing,
		Rating:      5,
	})
	require.Error(t, err)
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrReviewSubjectInvalid)
}

func TestReviewService_SubmitReview_UnknownSubjectType(t *testing.T) {
	svc, _ := newReviewService(t)

	review, err := svc.SubmitReview(context.Background(), usecase.ReviewInput{
		AuthorID:    uuid.New(),
		SubjectID:   uuid.New(),
		SubjectType: entity.ReviewSubjectType("restaurant"),
		Rating:      5,
	})
	require.Error(t, err)
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrReviewSubjectInvalid)
}

func TestReviewService_SubmitReview_ListingRefreshesAggregate(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	authorID := uuid.New()
	subjectID := uuid.New()

	mocks.listingRepo.EXPECT().
		FindListingByID(ctx, subjectID).
		Return(&entity.MarketplaceListing{ID: subjectID}, nil)

	mocks.reviewRepo.EXPECT().
		SaveReview(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	mocks.reviewRepo.EXPECT().
		AggregateBySubject(ctx, subjectID).
		Return(&repository.RatingAggregate{Average: 4.5, Count: 2}, nil)

	mocks.listingRepo.EXPECT().
		UpdateRatingAggregate(ctx, subjectID, 4.5, 2).
		Return(nil)

	review, err := svc.SubmitReview(ctx, usecase.ReviewInput{
		AuthorID:        authorID,
		SubjectID:       subjectID,
		SubjectType:     entity.ReviewSubjectListing,
		Rating:          5,
		Text:            "Great seller",
		IsHiddenGem:     true,
		CriteriaRatings: map[string]int{"quality": 9, "communication": 10},
	})
	require.NoError(t, err)
	assert.Equal(t, authorID, review.AuthorID)
	assert.Equal(t, 5, review.Rating)
	assert.True(t, review.IsHiddenGem)
}

func TestReviewService_SubmitReview_ProviderRefreshesAggregate(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	subjectID := uuid.New()

	mocks.providerRepo.EXPECT().
		FindProviderByID(ctx, subjectID).
		Return(&entity.ServiceProvider{ID: subjectID}, nil)

	mocks.reviewRepo.EXPECT().
		SaveReview(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	mocks.reviewRepo.EXPECT().
		AggregateBySubject(ctx, subjectID).
		Return(&repository.RatingAggregate{Average: 3.0, Count: 1}, nil)

	mocks.providerRepo.EXPECT().
		UpdateRatingAggregate(ctx, subjectID, 3.0, 1).
		Return(nil)

	_, err := svc.SubmitReview(ctx, usecase.ReviewInput{
		AuthorID:    uuid.New(),
		SubjectID:   subjectID,
		SubjectType: entity.ReviewSubjectProvider,
		Rating:      3,
	})
	require.NoError(t, err)
}

func TestReviewService_SubmitReview_AggregateFailureOnlyLogs(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	subjectID := uuid.New()

	mocks.listingRepo.EXPECT().
		FindListingByID(ctx, subjectID).
		Return(&entity.MarketplaceListing{ID: subjectID}, nil)

	mocks.reviewRepo.EXPECT().
		SaveReview(ctx, mock.AnythingOfType("*entity.Review")).
		Return(nil)

	mocks.reviewRepo.EXPECT().
		AggregateBySubject(ctx, subjectID).
		Return(nil, errors.New("connection reset"))

	// The review is committed even when the aggregate refresh fails.
	review, err := svc.SubmitReview(ctx, usecase.ReviewInput{
		AuthorID:    uuid.New(),
		SubjectID:   subjectID,
		SubjectType: entity.ReviewSubjectListing,
		Rating:      4,
	})
	require.NoError(t, err)
	assert.NotNil(t, review)
}

func TestReviewService_GetOwnReview_NotFound(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	authorID := uuid.New()
	subjectID := uuid.New()

	mocks.reviewRepo.EXPECT().
		FindReviewByAuthorAndSubject(ctx, authorID, subjectID).
		Return(nil, repository.ErrReviewNotFound)

	review, err := svc.GetOwnReview(ctx, authorID, subjectID)
	require.Error(t, err)
	assert.Nil(t, review)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestReviewService_GetReviews(t *testing.T) {
	svc, mocks := newReviewService(t)

	ctx := context.Background()
	subjectID := uuid.New()
	reviews := []*entity.Review{
		{ID: uuid.New(), SubjectID: subjectID, Rating: 5},
	}

	mocks.reviewRepo.EXPECT().
		FindReviewsBySubject(ctx, subjectID).
		Return(reviews, nil)

	result, err := svc.GetReviews(ctx, subjectID)
	require.NoError(t, err)
	assert.Equal(t, reviews, result)
}
