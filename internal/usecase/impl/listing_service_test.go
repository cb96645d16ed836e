package impl

import (
	"context"
	"testing"
	"time"

	"plaza/config"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/domain/service"
	mockRepo "plaza/internal/mocks/repository"
	mockSvc "plaza/internal/mocks/service"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type listingMocks struct {
	listingRepo  *mockRepo.MockListingRepository
	providerRepo *mockRepo.MockProviderRepository
	eventRepo    *mockRepo.MockEventRepository
	fileStorage  *mockSvc.MockFileStorage
	publisher    *mockSvc.MockEventPublisher
	qrcodeSvc    *mockSvc.MockQRCodeService
}

func newListingService(t *testing.T) (usecase.ListingUsecase, *listingMocks) {
	t.Helper()

	mocks := &listingMocks{
		listingRepo:  mockRepo.NewMockListingRepository(t),
		providerRepo: mockRepo.NewMockProviderRepository(t),
		eventRepo:    mockRepo.NewMockEventRepository(t),
		fileStorage:  mockSvc.NewMockFileStorage(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		qrcodeSvc:    mockSvc.NewMockQRCodeService(t),
	}

	svc := NewListingService(ListingServiceParams{
		Config:       &config.Config{},
		Logger:       testLogger(),
		ListingRepo:  mocks.listingRepo,
		ProviderRepo: mocks.providerRepo,
		EventRepo:    mocks.eventRepo,
		FileStorage:  mocks.fileStorage,
		Publisher:    mocks.publisher,
		QRCodeSvc:    mocks.qrcodeSvc,
	})

	return svc, mocks
}

func TestListingService_CreateListing_StartsPending(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	mocks.listingRepo.EXPECT().
		CreateListing(ctx, mock.AnythingOfType("*entity.MarketplaceListing")).
		Return(nil)

	listing, err := svc.CreateListing(ctx, usecase.CreateListingInput{
		SellerID: sellerID,
		Title:    "Vintage road bike",
		Price:    350,
		City:     "Berlin",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, listing.ApprovalStatus)
	assert.Equal(t, sellerID, listing.SellerID)
}

func TestListingService_CreateListing_Validation(t *testing.T) {
	svc, _ := newListingService(t)
	ctx := context.Background()

	_, err := svc.CreateListing(ctx, usecase.CreateListingInput{Title: "  ", Price: 10})
	require.Error(t, err)

	_, err = svc.CreateListing(ctx, usecase.CreateListingInput{Title: "Bike", Price: -1})
	require.Error(t, err)
}

func TestListingService_GetListing_PendingHiddenFromPublic(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	listing := &entity.MarketplaceListing{
		ID:             uuid.New(),
		SellerID:       sellerID,
		ApprovalStatus: entity.ApprovalPending,
	}

	mocks.listingRepo.EXPECT().
		FindListingByID(ctx, listing.ID).
		Return(listing, nil)

	result, err := svc.GetListing(ctx, listing.ID, uuid.New(), false)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotPublic)
}

func TestListingService_GetListing_SellerSeesOwnPending(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	listing := &entity.MarketplaceListing{
		ID:             uuid.New(),
		SellerID:       sellerID,
		ApprovalStatus: entity.ApprovalPending,
	}

	mocks.listingRepo.EXPECT().
		FindListingByID(ctx, listing.ID).
		Return(listing, nil)

	result, err := svc.GetListing(ctx, listing.ID, sellerID, false)
	require.NoError(t, err)
	assert.Equal(t, listing, result)
}

func TestListingService_BrowseListings_PublicForcesApprovedOnly(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()

	// The caller asks for every status, but without the moderator flag
	// the query reaches the repository with AllStatuses off.
	mocks.listingRepo.EXPECT().
		FindListings(ctx, repository.ListingQuery{Category: "bikes", AllStatuses: false}).
		Return(nil, nil)

	_, err := svc.BrowseListings(ctx, repository.ListingQuery{Category: "bikes", AllStatuses: true}, false)
	require.NoError(t, err)
}

func TestListingService_BrowseListings_ModeratorKeepsAllStatuses(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()

	mocks.listingRepo.EXPECT().
		FindListings(ctx, repository.ListingQuery{AllStatuses: true}).
		Return(nil, nil)

	_, err := svc.BrowseListings(ctx, repository.ListingQuery{AllStatuses: true}, true)
	require.NoError(t, err)
}

func TestListingService_AddListingImages_SellerOnly(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()
	listing := &entity.MarketplaceListing{ID: uuid.New(), SellerID: uuid.New()}

	mocks.listingRepo.EXPECT().
		FindListingByID(ctx, listing.ID).
		Return(listing, nil)

	uploaded, rejections, err := svc.AddListingImages(ctx, listing.ID, uuid.New(), nil)
	require.Error(t, err)
	assert.Nil(t, uploaded)
	assert.Nil(t, rejections)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestListingService_AddListingImages_PartialSuccess(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	listing := &entity.MarketplaceListing{
		ID:       uuid.New(),
		SellerID: sellerID,
		Images:   []string{"https://cdn.example.com/listings/old.jpg"},
	}

	mocks.listingRepo.EXPECT().
		FindListingByID(ctx, listing.ID).
		Return(listing, nil)

	mocks.fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
		Return("https://cdn.example.com/listings/new.jpg", nil)

	mocks.listingRepo.EXPECT().
		UpdateListingImages(ctx, listing.ID, []string{
			"https://cdn.example.com/listings/old.jpg",
			"https://cdn.example.com/listings/new.jpg",
		}).
		Return(nil)

	uploaded, rejections, err := svc.AddListingImages(ctx, listing.ID, sellerID, []usecase.FileInput{
		{Name: "new.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")},
		{Name: "notes.txt", ContentType: "text/plain", Data: []byte("text")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.com/listings/new.jpg"}, uploaded)
	require.Len(t, rejections, 1)
	assert.Equal(t, "notes.txt", rejections[0].Name)
}

func TestListingService_DeleteListing_SellerOnly(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()
	listing := &entity.MarketplaceListing{ID: uuid.New(), SellerID: uuid.New()}

	mocks.listingRepo.EXPECT().
		FindListingByID(ctx, listing.ID).
		Return(listing, nil)

	err := svc.DeleteListing(ctx, listing.ID, uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrForbidden.ErrorCode(), appErr.ErrorCode())
}

func TestListingService_CreateProvider_StartsPending(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.providerRepo.EXPECT().
		CreateProvider(ctx, mock.AnythingOfType("*entity.ServiceProvider")).
		Return(nil)

	provider, err := svc.CreateProvider(ctx, usecase.CreateProviderInput{
		UserID:       userID,
		BusinessName: "Green Thumb Gardening",
		Category:     "gardening",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApprovalPending, provider.ApprovalStatus)
	assert.Equal(t, userID, provider.UserID)
}

func TestListingService_CreateEvent_EndMustFollowStart(t *testing.T) {
	svc, _ := newListingService(t)

	now := time.Now()
	_, err := svc.CreateEvent(context.Background(), usecase.CreateEventInput{
		OrganizerID: uuid.New(),
		Title:       "Street market",
		StartsAt:    now,
		EndsAt:      now.Add(-time.Hour),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestListingService_Moderate_InvalidStatus(t *testing.T) {
	svc, _ := newListingService(t)

	err := svc.Moderate(context.Background(), usecase.ModerateListings, uuid.New(), entity.ApprovalStatus("parked"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrApprovalStatusInvalid)
}

func TestListingService_Moderate_ApprovesListingAndNotifies(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	listing := &entity.MarketplaceListing{
		ID:             uuid.New(),
		SellerID:       sellerID,
		ApprovalStatus: entity.ApprovalPending,
	}

	mocks.listingRepo.EXPECT().
		FindListingByID(ctx, listing.ID).
		Return(listing, nil)

	mocks.listingRepo.EXPECT().
		UpdateApprovalStatus(ctx, listing.ID, entity.ApprovalApproved).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.AnythingOfType("*service.ModerationEvent")).
		RunAndReturn(func(_ context.Context, event *service.ModerationEvent) error {
			assert.Equal(t, sellerID.String(), event.OwnerID)
			assert.Equal(t, string(entity.ApprovalApproved), event.NewStatus)

			return nil
		})

	err := svc.Moderate(ctx, usecase.ModerateListings, listing.ID, entity.ApprovalApproved)
	require.NoError(t, err)
}

func TestListingService_Moderate_RejectsProvider(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()
	provider := &entity.ServiceProvider{ID: uuid.New(), UserID: uuid.New()}

	mocks.providerRepo.EXPECT().
		FindProviderByID(ctx, provider.ID).
		Return(provider, nil)

	mocks.providerRepo.EXPECT().
		UpdateApprovalStatus(ctx, provider.ID, entity.ApprovalRejected).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(nil)

	err := svc.Moderate(ctx, usecase.ModerateProviders, provider.ID, entity.ApprovalRejected)
	require.NoError(t, err)
}

func TestListingService_Moderate_PublishFailureDoesNotFail(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()
	listing := &entity.MarketplaceListing{ID: uuid.New(), SellerID: uuid.New()}

	mocks.listingRepo.EXPECT().
		FindListingByID(ctx, listing.ID).
		Return(listing, nil)

	mocks.listingRepo.EXPECT().
		UpdateApprovalStatus(ctx, listing.ID, entity.ApprovalApproved).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishModerationEvent(ctx, mock.AnythingOfType("*service.ModerationEvent")).
		Return(errors.New("broker unavailable"))

	// The status change is committed; the notification is best effort.
	err := svc.Moderate(ctx, usecase.ModerateListings, listing.ID, entity.ApprovalApproved)
	require.NoError(t, err)
}

func TestListingService_ListingShareQR_ApprovedOnly(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()
	listing := &entity.MarketplaceListing{
		ID:             uuid.New(),
		ApprovalStatus: entity.ApprovalPending,
	}

	mocks.listingRepo.EXPECT().
		FindListingByID(ctx, listing.ID).
		Return(listing, nil)

	qr, err := svc.ListingShareQR(ctx, listing.ID)
	require.Error(t, err)
	assert.Nil(t, qr)
	assert.ErrorIs(t, err, domainerrors.ErrListingNotPublic)
}

func TestListingService_ListingShareQR_Success(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()
	listing := &entity.MarketplaceListing{
		ID:             uuid.New(),
		ApprovalStatus: entity.ApprovalApproved,
	}

	mocks.listingRepo.EXPECT().
		FindListingByID(ctx, listing.ID).
		Return(listing, nil)

	mocks.qrcodeSvc.EXPECT().
		GenerateListingQR(listing.ID).
		Return([]byte("png-bytes"), nil)

	qr, err := svc.ListingShareQR(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), qr)
}

func TestListingService_ResolveShareQR_Unrecognized(t *testing.T) {
	svc, mocks := newListingService(t)

	mocks.qrcodeSvc.EXPECT().
		ParseListingQR("garbage").
		Return(uuid.Nil, errors.New("invalid payload"))

	listing, err := svc.ResolveShareQR(context.Background(), "garbage")
	require.Error(t, err)
	assert.Nil(t, listing)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestListingService_ResolveShareQR_Success(t *testing.T) {
	svc, mocks := newListingService(t)

	ctx := context.Background()
	listing := &entity.MarketplaceListing{
		ID:             uuid.New(),
		ApprovalStatus: entity.ApprovalApproved,
	}

	mocks.qrcodeSvc.EXPECT().
		ParseListingQR("plaza://listing").
		Return(listing.ID, nil)

	mocks.listingRepo.EXPECT().
		FindListingByID(ctx, listing.ID).
		Return(listing, nil)

	resolved, err := svc.ResolveShareQR(ctx, "plaza://listing")
	require.NoError(t, err)
	assert.Equal(t, listing, resolved)
}
