package impl

import (
	"context"
	"testing"
	"time"

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

type requestMocks struct {
	requestRepo  *mockRepo.MockRequestRepository
	providerRepo *mockRepo.MockProviderRepository
	txManager    *mockRepo.MockTransactionManager
}

func newRequestService(t *testing.T) (usecase.RequestUsecase, *requestMocks) {
	t.Helper()

	mocks := &requestMocks{
		requestRepo:  mockRepo.NewMockRequestRepository(t),
		providerRepo: mockRepo.NewMockProviderRepository(t),
		txManager:    mockRepo.NewMockTransactionManager(t),
	}

	svc := NewRequestService(RequestServiceParams{
		Logger:       testLogger(),
		RequestRepo:  mocks.requestRepo,
		ProviderRepo: mocks.providerRepo,
		TxManager:    mocks.txManager,
	})

	return svc, mocks
}

func TestRequestService_CreateRequest_Success(t *testing.T) {
	svc, mocks := newRequestService(t)

	ctx := context.Background()
	userID := uuid.New()
	budget := 250.0

	mocks.requestRepo.EXPECT().
		CreateRequest(ctx, mock.AnythingOfType("*entity.ServiceRequest")).
		Return(nil)

	request, err := svc.CreateRequest(ctx, usecase.CreateRequestInput{
		UserID:   userID,
		Title:    "  Garden cleanup  ",
		Category: "gardening",
		Budget:   &budget,
		City:     "Berlin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Garden cleanup", request.Title)
	assert.Equal(t, entity.RequestOpen, request.Status)
	assert.Equal(t, userID, request.UserID)
	assert.NotEqual(t, uuid.Nil, request.ID)
}

func TestRequestService_CreateRequest_Validation(t *testing.T) {
	svc, _ := newRequestService(t)
	ctx := context.Background()

	negative := -10.0
	start := time.Now()
	end := start.Add(-time.Hour)

	tests := []struct {
		name  string
		input usecase.CreateRequestInput
	}{
		{
			name:  "empty title",
			input: usecase.CreateRequestInput{Title: "  ", Category: "moving"},
		},
		{
			name:  "empty category",
			input: usecase.CreateRequestInput{Title: "Move a couch", Category: ""},
		},
		{
			name:  "negative budget",
			input: usecase.CreateRequestInput{Title: "Move a couch", Category: "moving", Budget: &negative},
		},
		{
			name: "inverted date range",
			input: usecase.CreateRequestInput{
				Title:          "Move a couch",
				Category:       "moving",
				DateRangeStart: &start,
				DateRangeEnd:   &end,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, err := svc.CreateRequest(ctx, tt.input)
			require.Error(t, err)
			assert.Nil(t, request)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestRequestService_GetRequest_NotFound(t *testing.T) {
	svc, mocks := newRequestService(t)

	ctx := context.Background()
	requestID := uuid.New()

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(nil, repository.ErrRequestNotFound)

	request, err := svc.GetRequest(ctx, requestID)
	require.Error(t, err)
	assert.Nil(t, request)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}

func TestRequestService_SetRequestStatus_OwnerOnly(t *testing.T) {
	svc, mocks := newRequestService(t)

	ctx := context.Background()
	requestID := uuid.New()
	ownerID := uuid.New()

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.ServiceRequest{ID: requestID, UserID: ownerID, Status: entity.RequestOpen}, nil)

	err := svc.SetRequestStatus(ctx, requestID, uuid.New(), entity.RequestClosed)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRequestOwnershipViolation)
}

func TestRequestService_SetRequestStatus_NoOpWhenUnchanged(t *testing.T) {
	svc, mocks := newRequestService(t)

	ctx := context.Background()
	requestID := uuid.New()
	ownerID := uuid.New()

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.ServiceRequest{ID: requestID, UserID: ownerID, Status: entity.RequestOpen}, nil)

	// No UpdateRequestStatus expectation; an update would fail the test.
	err := svc.SetRequestStatus(ctx, requestID, ownerID, entity.RequestOpen)
	require.NoError(t, err)
}

func TestRequestService_SetRequestStatus_Close(t *testing.T) {
	svc, mocks := newRequestService(t)

	ctx := context.Background()
	requestID := uuid.New()
	ownerID := uuid.New()

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.ServiceRequest{ID: requestID, UserID: ownerID, Status: entity.RequestOpen}, nil)

	mocks.requestRepo.EXPECT().
		UpdateRequestStatus(ctx, requestID, entity.RequestClosed).
		Return(nil)

	err := svc.SetRequestStatus(ctx, requestID, ownerID, entity.RequestClosed)
	require.NoError(t, err)
}

func TestRequestService_SetRequestStatus_UnknownStatus(t *testing.T) {
	svc, _ := newRequestService(t)

	err := svc.SetRequestStatus(context.Background(), uuid.New(), uuid.New(), entity.RequestStatus("archived"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestRequestService_DeleteRequest_CascadesInTransaction(t *testing.T) {
	svc, mocks := newRequestService(t)

	ctx := context.Background()
	requestID := uuid.New()
	ownerID := uuid.New()

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.ServiceRequest{ID: requestID, UserID: ownerID, Status: entity.RequestOpen}, nil)

	conversations := []*entity.Conversation{
		{ID: uuid.New(), RequestID: requestID},
		{ID: uuid.New(), RequestID: requestID},
	}
	conversationIDs := []uuid.UUID{conversations[0].ID, conversations[1].ID}

	txConversationRepo := mockRepo.NewMockConversationRepository(t)
	txMessageRepo := mockRepo.NewMockMessageRepository(t)
	txRequestRepo := mockRepo.NewMockRequestRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewConversationRepository().Return(txConversationRepo)
	factory.EXPECT().NewMessageRepository().Return(txMessageRepo)
	factory.EXPECT().NewRequestRepository().Return(txRequestRepo)

	txConversationRepo.EXPECT().
		FindConversationsByRequest(ctx, requestID).
		Return(conversations, nil)

	txMessageRepo.EXPECT().
		DeleteMessagesByConversations(ctx, conversationIDs).
		Return(nil)

	txConversationRepo.EXPECT().
		DeleteConversationsByRequest(ctx, requestID).
		Return(nil)

	txRequestRepo.EXPECT().
		DeleteRequest(ctx, requestID).
		Return(nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	err := svc.DeleteRequest(ctx, requestID, ownerID)
	require.NoError(t, err)
}

func TestRequestService_DeleteRequest_NotOwner(t *testing.T) {
	svc, mocks := newRequestService(t)

	ctx := context.Background()
	requestID := uuid.New()

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.ServiceRequest{ID: requestID, UserID: uuid.New()}, nil)

	err := svc.DeleteRequest(ctx, requestID, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRequestOwnershipViolation)
}

func TestRequestService_DeleteRequest_TransactionFailure(t *testing.T) {
	svc, mocks := newRequestService(t)

	ctx := context.Background()
	requestID := uuid.New()
	ownerID := uuid.New()

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.ServiceRequest{ID: requestID, UserID: ownerID}, nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("deadlock detected"))

	err := svc.DeleteRequest(ctx, requestID, ownerID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestRequestService_MatchingProviders(t *testing.T) {
	svc, mocks := newRequestService(t)

	ctx := context.Background()
	requestID := uuid.New()
	providers := []*entity.ServiceProvider{
		{ID: uuid.New(), BusinessName: "Green Thumb"},
	}

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.ServiceRequest{ID: requestID}, nil)

	mocks.providerRepo.EXPECT().
		FindMatchingProvidersForRequest(ctx, requestID).
		Return(providers, nil)

	matches, err := svc.MatchingProviders(ctx, requestID)
	require.NoError(t, err)
	assert.Equal(t, providers, matches)
}

func TestRequestService_MatchingProviders_RequestMissing(t *testing.T) {
	svc, mocks := newRequestService(t)

	ctx := context.Background()
	requestID := uuid.New()

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(nil, repository.ErrRequestNotFound)

	matches, err := svc.MatchingProviders(ctx, requestID)
	require.Error(t, err)
	assert.Nil(t, matches)
	assert.ErrorIs(t, err, domainerrors.ErrRequestNotFound)
}
