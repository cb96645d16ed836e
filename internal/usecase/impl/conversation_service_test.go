package impl

import (
	"context"
	"strings"
	"testing"

	"plaza/config"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/domain/service"
	mockRepo "plaza/internal/mocks/repository"
	mockSvc "plaza/internal/mocks/service"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type conversationMocks struct {
	conversationRepo *mockRepo.MockConversationRepository
	messageRepo      *mockRepo.MockMessageRepository
	requestRepo      *mockRepo.MockRequestRepository
	providerRepo     *mockRepo.MockProviderRepository
	fileStorage      *mockSvc.MockFileStorage
	publisher        *mockSvc.MockEventPublisher
}

func newConversationService(t *testing.T) (usecase.ConversationUsecase, *conversationMocks) {
	t.Helper()

	mocks := &conversationMocks{
		conversationRepo: mockRepo.NewMockConversationRepository(t),
		messageRepo:      mockRepo.NewMockMessageRepository(t),
		requestRepo:      mockRepo.NewMockRequestRepository(t),
		providerRepo:     mockRepo.NewMockProviderRepository(t),
		fileStorage:      mockSvc.NewMockFileStorage(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	svc := NewConversationService(ConversationServiceParams{
		Config: &config.Config{
			Quotation: &config.QuotationConfig{
				MaxPrice:          10_000_000,
				MaxImageSizeBytes: 5 * 1024 * 1024,
			},
		},
		Logger:           testLogger(),
		ConversationRepo: mocks.conversationRepo,
		MessageRepo:      mocks.messageRepo,
		RequestRepo:      mocks.requestRepo,
		ProviderRepo:     mocks.providerRepo,
		FileStorage:      mocks.fileStorage,
		Publisher:        mocks.publisher,
	})

	return svc, mocks
}

func TestConversationService_GetOrCreate_ReturnsExisting(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	requestID := uuid.New()
	providerID := uuid.New()
	userID := uuid.New()

	existing := &entity.Conversation{
		ID:         uuid.New(),
		RequestID:  requestID,
		ProviderID: providerID,
		UserID:     userID,
	}

	mocks.conversationRepo.EXPECT().
		FindConversationByTriple(ctx, requestID, providerID, userID).
		Return(existing, nil)

	conversation, err := svc.GetOrCreate(ctx, requestID, providerID, userID)
	require.NoError(t, err)
	assert.Equal(t, existing, conversation)
}

func TestConversationService_GetOrCreate_CreatesWhenMissing(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	requestID := uuid.New()
	providerID := uuid.New()
	userID := uuid.New()

	mocks.conversationRepo.EXPECT().
		FindConversationByTriple(ctx, requestID, providerID, userID).
		Return(nil, repository.ErrConversationNotFound)

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.ServiceRequest{ID: requestID, UserID: userID, Status: entity.RequestOpen}, nil)

	mocks.providerRepo.EXPECT().
		FindProviderByID(ctx, providerID).
		Return(&entity.ServiceProvider{ID: providerID}, nil)

	mocks.conversationRepo.EXPECT().
		UpsertConversation(ctx, mock.AnythingOfType("*entity.Conversation")).
		RunAndReturn(func(_ context.Context, conversation *entity.Conversation) (*entity.Conversation, error) {
			return conversation, nil
		})

	conversation, err := svc.GetOrCreate(ctx, requestID, providerID, userID)
	require.NoError(t, err)
	assert.Equal(t, requestID, conversation.RequestID)
	assert.Equal(t, providerID, conversation.ProviderID)
	assert.Equal(t, userID, conversation.UserID)
	assert.NotEqual(t, uuid.Nil, conversation.ID)
}

func TestConversationService_GetOrCreate_ClosedRequestBlocksCreation(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	requestID := uuid.New()
	providerID := uuid.New()
	userID := uuid.New()

	mocks.conversationRepo.EXPECT().
		FindConversationByTriple(ctx, requestID, providerID, userID).
		Return(nil, repository.ErrConversationNotFound)

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.ServiceRequest{ID: requestID, UserID: userID, Status: entity.RequestClosed}, nil)

	conversation, err := svc.GetOrCreate(ctx, requestID, providerID, userID)
	require.Error(t, err)
	assert.Nil(t, conversation)
	assert.ErrorIs(t, err, domainerrors.ErrRequestClosed)
}

func TestConversationService_GetOrCreate_ExistingSurvivesClosedRequest(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	requestID := uuid.New()
	providerID := uuid.New()
	userID := uuid.New()

	existing := &entity.Conversation{ID: uuid.New(), RequestID: requestID}

	// The triple lookup comes first, so the request status is never consulted.
	mocks.conversationRepo.EXPECT().
		FindConversationByTriple(ctx, requestID, providerID, userID).
		Return(existing, nil)

	conversation, err := svc.GetOrCreate(ctx, requestID, providerID, userID)
	require.NoError(t, err)
	assert.Equal(t, existing, conversation)
}

func TestConversationService_SendMessage_EmptyContent(t *testing.T) {
	svc, _ := newConversationService(t)

	message, err := svc.SendMessage(context.Background(), usecase.SendMessageInput{
		ConversationID: uuid.New(),
		SenderID:       uuid.New(),
		SenderType:     entity.SenderUser,
		Content:        "   ",
	})
	require.Error(t, err)
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrMessageEmpty)
}

func TestConversationService_SendMessage_Success(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	userID := uuid.New()
	providerID := uuid.New()
	providerOwnerID := uuid.New()
	conversation := &entity.Conversation{
		ID:         uuid.New(),
		RequestID:  uuid.New(),
		ProviderID: providerID,
		UserID:     userID,
	}

	mocks.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	mocks.messageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	mocks.conversationRepo.EXPECT().
		TouchLastMessage(ctx, conversation.ID).
		Return(nil)

	// A user-authored message notifies the provider's owner account.
	mocks.providerRepo.EXPECT().
		FindProviderByID(ctx, providerID).
		Return(&entity.ServiceProvider{ID: providerID, UserID: providerOwnerID}, nil)

	mocks.publisher.EXPECT().
		PublishMessageEvent(ctx, mock.AnythingOfType("*service.MessageEvent")).
		RunAndReturn(func(_ context.Context, event *service.MessageEvent) error {
			assert.Equal(t, providerOwnerID.String(), event.RecipientID)
			assert.False(t, event.IsQuotation)

			return nil
		})

	message, err := svc.SendMessage(ctx, usecase.SendMessageInput{
		ConversationID: conversation.ID,
		SenderID:       userID,
		SenderType:     entity.SenderUser,
		Content:        "  Is this still available?  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Is this still available?", message.Content)
	assert.Equal(t, entity.SenderUser, message.SenderType)
	assert.False(t, message.IsQuotation())
}

func TestConversationService_SendMessage_AccessDenied(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	conversation := &entity.Conversation{
		ID:         uuid.New(),
		ProviderID: uuid.New(),
		UserID:     uuid.New(),
	}
	stranger := uuid.New()

	mocks.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	mocks.providerRepo.EXPECT().
		FindProviderByID(ctx, conversation.ProviderID).
		Return(&entity.ServiceProvider{ID: conversation.ProviderID, UserID: uuid.New()}, nil)

	message, err := svc.SendMessage(ctx, usecase.SendMessageInput{
		ConversationID: conversation.ID,
		SenderID:       stranger,
		SenderType:     entity.SenderUser,
		Content:        "hello",
	})
	require.Error(t, err)
	assert.Nil(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrConversationAccessDenied)
}

func TestConversationService_SendQuotation_PriceValidation(t *testing.T) {
	svc, _ := newConversationService(t)
	ctx := context.Background()

	wholesale := func(v float64) *float64 { return &v }

	tests := []struct {
		name      string
		input     usecase.QuotationInput
		errorCode string
	}{
		{
			name: "zero price",
			input: usecase.QuotationInput{
				PricingType: entity.PricingFixed,
				Price:       0,
			},
			errorCode: domainerrors.ErrQuotationPriceInvalid.ErrorCode(),
		},
		{
			name: "price above ceiling",
			input: usecase.QuotationInput{
				PricingType: entity.PricingFixed,
				Price:       15_000_000,
			},
			errorCode: domainerrors.ErrQuotationPriceInvalid.ErrorCode(),
		},
		{
			name: "wholesale without wholesale price",
			input: usecase.QuotationInput{
				PricingType: entity.PricingWholesale,
				Price:       500,
			},
			errorCode: domainerrors.ErrQuotationWholesalePrice.ErrorCode(),
		},
		{
			name: "wholesale with non-positive wholesale price",
			input: usecase.QuotationInput{
				PricingType:    entity.PricingWholesale,
				Price:          500,
				WholesalePrice: wholesale(0),
			},
			errorCode: domainerrors.ErrQuotationWholesalePrice.ErrorCode(),
		},
		{
			name: "negotiable with non-positive floor",
			input: usecase.QuotationInput{
				PricingType:     entity.PricingNegotiable,
				Price:           500,
				NegotiablePrice: wholesale(-1),
			},
			errorCode: domainerrors.ErrQuotationNegotiablePrice.ErrorCode(),
		},
		{
			name: "unknown pricing type",
			input: usecase.QuotationInput{
				PricingType: entity.PricingType("auction"),
				Price:       500,
			},
			errorCode: domainerrors.ErrValidationFailed.ErrorCode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.SendQuotation(ctx, tt.input)
			require.Error(t, err)
			assert.Nil(t, result)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.errorCode, appErr.ErrorCode())
		})
	}
}

func TestConversationService_SendQuotation_TooManyImagesRejectedBeforeUpload(t *testing.T) {
	svc, _ := newConversationService(t)

	images := make([]usecase.FileInput, entity.MaxQuotationImages+1)
	for i := range images {
		images[i] = usecase.FileInput{
			Name:        "photo.jpg",
			ContentType: "image/jpeg",
			Data:        []byte("jpeg"),
		}
	}

	// No storage expectation is set; an upload attempt would fail the test.
	result, err := svc.SendQuotation(context.Background(), usecase.QuotationInput{
		PricingType: entity.PricingFixed,
		Price:       500,
		Images:      images,
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrQuotationTooManyImages)
}

func TestConversationService_SendQuotation_UserSenderMustMatchTriple(t *testing.T) {
	svc, _ := newConversationService(t)

	// No repository expectations: a sender outside the triple must be
	// rejected before any conversation lookup or upsert happens.
	result, err := svc.SendQuotation(context.Background(), usecase.QuotationInput{
		RequestID:   uuid.New(),
		ProviderID:  uuid.New(),
		UserID:      uuid.New(),
		SenderID:    uuid.New(),
		SenderType:  entity.SenderUser,
		PricingType: entity.PricingFixed,
		Price:       500,
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrConversationAccessDenied)
}

func TestConversationService_SendQuotation_ProviderSenderMustOwnProfile(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	providerID := uuid.New()

	mocks.providerRepo.EXPECT().
		FindProviderByID(ctx, providerID).
		Return(&entity.ServiceProvider{ID: providerID, UserID: uuid.New()}, nil)

	// The conversation repo has no expectations: the denied send must
	// not create a row for the triple.
	result, err := svc.SendQuotation(ctx, usecase.QuotationInput{
		RequestID:   uuid.New(),
		ProviderID:  providerID,
		UserID:      uuid.New(),
		SenderID:    uuid.New(),
		SenderType:  entity.SenderProvider,
		PricingType: entity.PricingFixed,
		Price:       500,
	})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrConversationAccessDenied)
}

func TestConversationService_SendQuotation_FixedPriceBody(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	requestID := uuid.New()
	providerID := uuid.New()
	userID := uuid.New()
	providerOwnerID := uuid.New()

	conversation := &entity.Conversation{
		ID:         uuid.New(),
		RequestID:  requestID,
		ProviderID: providerID,
		UserID:     userID,
	}

	mocks.conversationRepo.EXPECT().
		FindConversationByTriple(ctx, requestID, providerID, userID).
		Return(conversation, nil)

	mocks.providerRepo.EXPECT().
		FindProviderByID(ctx, providerID).
		Return(&entity.ServiceProvider{ID: providerID, UserID: providerOwnerID}, nil)

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.ServiceRequest{ID: requestID, Title: "Fix my bike"}, nil)

	mocks.messageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	mocks.conversationRepo.EXPECT().
		TouchLastMessage(ctx, conversation.ID).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishMessageEvent(ctx, mock.AnythingOfType("*service.MessageEvent")).
		RunAndReturn(func(_ context.Context, event *service.MessageEvent) error {
			assert.True(t, event.IsQuotation)
			assert.Equal(t, userID.String(), event.RecipientID)

			return nil
		})

	result, err := svc.SendQuotation(ctx, usecase.QuotationInput{
		RequestID:         requestID,
		ProviderID:        providerID,
		UserID:            userID,
		SenderID:          providerOwnerID,
		SenderType:        entity.SenderProvider,
		PricingType:       entity.PricingFixed,
		Price:             500,
		DeliveryAvailable: true,
		ShopName:          "Müller Bikes",
	})
	require.NoError(t, err)
	require.NotNil(t, result.Message)
	assert.Empty(t, result.RejectedImages)

	lines := strings.Split(result.Message.Content, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `Quotation for "Fix my bike": $500.00`, lines[0])
	assert.Equal(t, "Delivery available", lines[1])
	assert.Equal(t, "Offered by Müller Bikes", lines[2])

	// A fixed-price quotation never mentions wholesale or negotiation.
	assert.NotContains(t, result.Message.Content, "Wholesale")
	assert.NotContains(t, result.Message.Content, "egotiable")

	require.NotNil(t, result.Message.QuotationPrice)
	assert.Equal(t, 500.0, *result.Message.QuotationPrice)
	assert.True(t, result.Message.IsQuotation())
}

func TestConversationService_SendQuotation_PartialImageUpload(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	requestID := uuid.New()
	providerID := uuid.New()
	userID := uuid.New()
	providerOwnerID := uuid.New()

	conversation := &entity.Conversation{
		ID:         uuid.New(),
		RequestID:  requestID,
		ProviderID: providerID,
		UserID:     userID,
	}

	mocks.conversationRepo.EXPECT().
		FindConversationByTriple(ctx, requestID, providerID, userID).
		Return(conversation, nil)

	mocks.providerRepo.EXPECT().
		FindProviderByID(ctx, providerID).
		Return(&entity.ServiceProvider{ID: providerID, UserID: providerOwnerID, BusinessName: "Müller Bikes"}, nil)

	mocks.requestRepo.EXPECT().
		FindRequestByID(ctx, requestID).
		Return(&entity.ServiceRequest{ID: requestID, Title: "Fix my bike"}, nil)

	mocks.fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", mock.Anything).
		Return("https://cdn.example.com/quotations/offer.png", nil)

	mocks.messageRepo.EXPECT().
		CreateMessage(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	mocks.conversationRepo.EXPECT().
		TouchLastMessage(ctx, conversation.ID).
		Return(nil)

	mocks.publisher.EXPECT().
		PublishMessageEvent(ctx, mock.AnythingOfType("*service.MessageEvent")).
		Return(nil)

	result, err := svc.SendQuotation(ctx, usecase.QuotationInput{
		RequestID:   requestID,
		ProviderID:  providerID,
		UserID:      userID,
		SenderID:    providerOwnerID,
		SenderType:  entity.SenderProvider,
		PricingType: entity.PricingFixed,
		Price:       500,
		Images: []usecase.FileInput{
			{Name: "offer.png", ContentType: "image/png", Data: []byte("png")},
			{Name: "terms.pdf", ContentType: "application/pdf", Data: []byte("pdf")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://cdn.example.com/quotations/offer.png"}, result.Message.QuotationImages)
	require.Len(t, result.RejectedImages, 1)
	assert.Equal(t, "terms.pdf", result.RejectedImages[0].Name)
	assert.Equal(t, "not an image file", result.RejectedImages[0].Reason)

	// The provider's business name fills the missing shop line.
	assert.Contains(t, result.Message.Content, "Offered by Müller Bikes")
}

func TestConversationService_MarkRead_TargetsCounterparty(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversation := &entity.Conversation{ID: uuid.New(), ProviderID: uuid.New(), UserID: userID}

	mocks.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	// The requester reading the thread consumes provider-authored messages.
	mocks.messageRepo.EXPECT().
		MarkConversationRead(ctx, conversation.ID, entity.SenderProvider).
		Return(nil)

	err := svc.MarkRead(ctx, conversation.ID, userID)
	require.NoError(t, err)
}

func TestConversationService_MarkRead_ProviderOwnerConsumesUserMessages(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	conversation := &entity.Conversation{ID: uuid.New(), ProviderID: uuid.New(), UserID: uuid.New()}

	mocks.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	mocks.providerRepo.EXPECT().
		FindProviderByID(ctx, conversation.ProviderID).
		Return(&entity.ServiceProvider{ID: conversation.ProviderID, UserID: ownerID}, nil)

	mocks.messageRepo.EXPECT().
		MarkConversationRead(ctx, conversation.ID, entity.SenderUser).
		Return(nil)

	err := svc.MarkRead(ctx, conversation.ID, ownerID)
	require.NoError(t, err)
}

func TestConversationService_MarkRead_StrangerDenied(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	conversation := &entity.Conversation{ID: uuid.New(), ProviderID: uuid.New(), UserID: uuid.New()}

	mocks.conversationRepo.EXPECT().
		FindConversationByID(ctx, conversation.ID).
		Return(conversation, nil)

	mocks.providerRepo.EXPECT().
		FindProviderByID(ctx, conversation.ProviderID).
		Return(&entity.ServiceProvider{ID: conversation.ProviderID, UserID: uuid.New()}, nil)

	// No MarkConversationRead expectation: a stranger must not reach it.
	err := svc.MarkRead(ctx, conversation.ID, uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrConversationAccessDenied)
}

func TestConversationService_ListForProvider_OwnerOnly(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	providerID := uuid.New()
	ownerID := uuid.New()
	conversations := []*entity.Conversation{{ID: uuid.New(), ProviderID: providerID}}

	mocks.providerRepo.EXPECT().
		FindProviderByID(ctx, providerID).
		Return(&entity.ServiceProvider{ID: providerID, UserID: ownerID}, nil)

	mocks.conversationRepo.EXPECT().
		FindConversationsByProvider(ctx, providerID).
		Return(conversations, nil)

	listed, err := svc.ListForProvider(ctx, providerID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, conversations, listed)
}

func TestConversationService_ListForProvider_NonOwnerDenied(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	providerID := uuid.New()

	mocks.providerRepo.EXPECT().
		FindProviderByID(ctx, providerID).
		Return(&entity.ServiceProvider{ID: providerID, UserID: uuid.New()}, nil)

	listed, err := svc.ListForProvider(ctx, providerID, uuid.New())
	require.Error(t, err)
	assert.Nil(t, listed)
	assert.ErrorIs(t, err, domainerrors.ErrConversationAccessDenied)
}

func TestConversationService_UnreadCount_SumsAcrossConversations(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	userID := uuid.New()
	conversations := []*entity.Conversation{
		{ID: uuid.New(), RequestID: uuid.New()},
		{ID: uuid.New(), RequestID: uuid.New()},
	}

	mocks.conversationRepo.EXPECT().
		FindConversationsByUser(ctx, userID).
		Return(conversations, nil)

	mocks.providerRepo.EXPECT().
		FindProviderByUser(ctx, userID).
		Return(nil, repository.ErrProviderNotFound)

	mocks.messageRepo.EXPECT().
		CountUnreadByConversations(ctx, []uuid.UUID{conversations[0].ID, conversations[1].ID}, entity.SenderProvider).
		Return(map[uuid.UUID]int64{
			conversations[0].ID: 3,
			conversations[1].ID: 2,
		}, nil)

	total, err := svc.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestConversationService_UnreadCount_IncludesProviderSide(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	userID := uuid.New()
	providerID := uuid.New()
	providerConversations := []*entity.Conversation{
		{ID: uuid.New(), RequestID: uuid.New(), ProviderID: providerID},
	}

	mocks.conversationRepo.EXPECT().
		FindConversationsByUser(ctx, userID).
		Return(nil, nil)

	mocks.providerRepo.EXPECT().
		FindProviderByUser(ctx, userID).
		Return(&entity.ServiceProvider{ID: providerID, UserID: userID}, nil)

	mocks.conversationRepo.EXPECT().
		FindConversationsByProvider(ctx, providerID).
		Return(providerConversations, nil)

	// On the provider side, unread means user-authored messages.
	mocks.messageRepo.EXPECT().
		CountUnreadByConversations(ctx, []uuid.UUID{providerConversations[0].ID}, entity.SenderUser).
		Return(map[uuid.UUID]int64{providerConversations[0].ID: 4}, nil)

	total, err := svc.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
}

func TestConversationService_UnreadCount_BothRolesNoDoubleCount(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	userID := uuid.New()
	providerID := uuid.New()

	requesterSide := &entity.Conversation{ID: uuid.New(), RequestID: uuid.New()}
	// The same conversation also shows up in the provider-side listing.
	shared := &entity.Conversation{ID: uuid.New(), RequestID: uuid.New(), ProviderID: providerID, UserID: userID}

	mocks.conversationRepo.EXPECT().
		FindConversationsByUser(ctx, userID).
		Return([]*entity.Conversation{requesterSide, shared}, nil)

	mocks.providerRepo.EXPECT().
		FindProviderByUser(ctx, userID).
		Return(&entity.ServiceProvider{ID: providerID, UserID: userID}, nil)

	mocks.conversationRepo.EXPECT().
		FindConversationsByProvider(ctx, providerID).
		Return([]*entity.Conversation{shared}, nil)

	// A single count per conversation: the shared one stays on the
	// requester side, and no provider-side count query runs for it.
	mocks.messageRepo.EXPECT().
		CountUnreadByConversations(ctx, []uuid.UUID{requesterSide.ID, shared.ID}, entity.SenderProvider).
		Return(map[uuid.UUID]int64{
			requesterSide.ID: 2,
			shared.ID:        1,
		}, nil)

	total, err := svc.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestConversationService_UnreadCountPerRequest_GroupsByRequest(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	userID := uuid.New()
	requestA := uuid.New()
	requestB := uuid.New()
	conversations := []*entity.Conversation{
		{ID: uuid.New(), RequestID: requestA},
		{ID: uuid.New(), RequestID: requestA},
		{ID: uuid.New(), RequestID: requestB},
	}

	mocks.conversationRepo.EXPECT().
		FindConversationsByUser(ctx, userID).
		Return(conversations, nil)

	mocks.providerRepo.EXPECT().
		FindProviderByUser(ctx, userID).
		Return(nil, repository.ErrProviderNotFound)

	mocks.messageRepo.EXPECT().
		CountUnreadByConversations(ctx, mock.AnythingOfType("[]uuid.UUID"), entity.SenderProvider).
		Return(map[uuid.UUID]int64{
			conversations[0].ID: 2,
			conversations[1].ID: 1,
			conversations[2].ID: 4,
		}, nil)

	perRequest, err := svc.UnreadCountPerRequest(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), perRequest[requestA])
	assert.Equal(t, int64(4), perRequest[requestB])
}

func TestConversationService_UnreadCount_NoConversations(t *testing.T) {
	svc, mocks := newConversationService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.conversationRepo.EXPECT().
		FindConversationsByUser(ctx, userID).
		Return(nil, nil)

	mocks.providerRepo.EXPECT().
		FindProviderByUser(ctx, userID).
		Return(nil, repository.ErrProviderNotFound)

	total, err := svc.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestComposeQuotationBody(t *testing.T) {
	floor := 450.0
	wholesale := 380.0

	t.Run("note replaces the generated opener", func(t *testing.T) {
		body := composeQuotationBody(&usecase.QuotationInput{
			PricingType: entity.PricingFixed,
			Price:       500,
			Note:        "Can start on Monday.",
		}, "Fix my bike")

		assert.Equal(t, "Can start on Monday.", body)
	})

	t.Run("wholesale line", func(t *testing.T) {
		body := composeQuotationBody(&usecase.QuotationInput{
			PricingType:    entity.PricingWholesale,
			Price:          500,
			WholesalePrice: &wholesale,
		}, "Fix my bike")

		assert.Contains(t, body, "Wholesale price: $380.00")
	})

	t.Run("negotiable with floor", func(t *testing.T) {
		body := composeQuotationBody(&usecase.QuotationInput{
			PricingType:     entity.PricingNegotiable,
			Price:           500,
			NegotiablePrice: &floor,
		}, "Fix my bike")

		assert.Contains(t, body, "Negotiable down to $450.00")
	})

	t.Run("negotiable without floor", func(t *testing.T) {
		body := composeQuotationBody(&usecase.QuotationInput{
			PricingType: entity.PricingNegotiable,
			Price:       500,
		}, "Fix my bike")

		assert.Contains(t, body, "Price is negotiable")
	})
}

func TestPreviewText(t *testing.T) {
	short := "hello"
	assert.Equal(t, short, previewText(short))

	long := strings.Repeat("ä", messagePreviewLength+10)
	preview := previewText(long)
	assert.Equal(t, messagePreviewLength+1, len([]rune(preview)))
	assert.True(t, strings.HasSuffix(preview, "…"))
}
