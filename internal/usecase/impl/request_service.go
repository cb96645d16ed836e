package impl

import (
	"context"
	"log/slog"
	"strings"

	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type requestService struct {
	requestRepo  repository.RequestRepository
	providerRepo repository.ProviderRepository
	txManager    repository.TransactionManager
	logger       *slog.Logger
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	Logger       *slog.Logger
	RequestRepo  repository.RequestRepository
	ProviderRepo repository.ProviderRepository
	TxManager    repository.TransactionManager
}

// NewRequestService creates a new service request service instance
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		requestRepo:  params.RequestRepo,
		providerRepo: params.ProviderRepo,
		txManager:    params.TxManager,
		logger:       params.Logger,
	}
}

// CreateRequest creates a new service request in the open state.
func (s *requestService) CreateRequest(ctx context.Context, input usecase.CreateRequestInput) (*entity.ServiceRequest, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("category must not be empty")
	}
	if input.Budget != nil && *input.Budget < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("budget must not be negative")
	}
	if input.DateRangeStart != nil && input.DateRangeEnd != nil &&
		input.DateRangeEnd.Before(*input.DateRangeStart) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date range end precedes its start")
	}

	request := &entity.ServiceRequest{
		ID:             uuid.New(),
		UserID:         input.UserID,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		Category:       input.Category,
		Subcategory:    input.Subcategory,
		Budget:         input.Budget,
		DateRangeStart: input.DateRangeStart,
		DateRangeEnd:   input.DateRangeEnd,
		Area:           input.Area,
		City:           input.City,
		PostalCode:     input.PostalCode,
		ContactPhone:   input.ContactPhone,
		Images:         input.Images,
		Status:         entity.RequestOpen,
	}

	if err := s.requestRepo.CreateRequest(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	return request, nil
}

// GetRequest retrieves a service request by ID.
func (s *requestService) GetRequest(ctx context.Context, id uuid.UUID) (*entity.ServiceRequest, error) {
	request, err := s.requestRepo.FindRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request")
	}

	return request, nil
}

// ListOwnRequests retrieves the requests created by a user.
func (s *requestService) ListOwnRequests(ctx context.Context, userID uuid.UUID) ([]*entity.ServiceRequest, error) {
	requests, err := s.requestRepo.FindRequestsByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests by owner")
	}

	return requests, nil
}

// ListOpenRequests retrieves open requests, optionally narrowed by category and city.
func (s *requestService) ListOpenRequests(ctx context.Context, category, city string, limit, offset int) ([]*entity.ServiceRequest, error) {
	requests, err := s.requestRepo.FindOpenRequests(ctx, category, city, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open requests")
	}

	return requests, nil
}

// SetRequestStatus toggles a request between open and closed. Owner only.
func (s *requestService) SetRequestStatus(ctx context.Context, requestID, ownerID uuid.UUID, status entity.RequestStatus) error {
	if status != entity.RequestOpen && status != entity.RequestClosed {
		return domainerrors.ErrValidationFailed.WithDetails("unknown request status")
	}

	request, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}

	if request.UserID != ownerID {
		return domainerrors.ErrRequestOwnershipViolation
	}

	if request.Status == status {
		return nil
	}

	if err := s.requestRepo.UpdateRequestStatus(ctx, requestID, status); err != nil {
		return errors.Wrap(err, "failed to update request status")
	}

	return nil
}

// DeleteRequest removes a request together with its conversations and
// their messages in one transaction. Owner only.
func (s *requestService) DeleteRequest(ctx context.Context, requestID, ownerID uuid.UUID) error {
	request, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}

	if request.UserID != ownerID {
		return domainerrors.ErrRequestOwnershipViolation
	}

	err = s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		conversationRepo := txRepoFactory.NewConversationRepository()
		messageRepo := txRepoFactory.NewMessageRepository()
		requestRepo := txRepoFactory.NewRequestRepository()

		conversations, err := conversationRepo.FindConversationsByRequest(ctx, requestID)
		if err != nil {
			return errors.Wrap(err, "failed to collect conversations for cascade")
		}

		if len(conversations) > 0 {
			conversationIDs := make([]uuid.UUID, 0, len(conversations))
			for _, conversation := range conversations {
				conversationIDs = append(conversationIDs, conversation.ID)
			}

			if err := messageRepo.DeleteMessagesByConversations(ctx, conversationIDs); err != nil {
				return errors.Wrap(err, "failed to delete messages in cascade")
			}
		}

		if err := conversationRepo.DeleteConversationsByRequest(ctx, requestID); err != nil {
			return errors.Wrap(err, "failed to delete conversations in cascade")
		}

		if err := requestRepo.DeleteRequest(ctx, requestID); err != nil {
			return errors.Wrap(err, "failed to delete request")
		}

		return nil
	})
	if err != nil {
		return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
	}

	s.logger.Info("request deleted with cascade",
		slog.String("request_id", requestID.String()),
	)

	return nil
}

// MatchingProviders retrieves approved providers whose category matches
// the request, same-city first.
func (s *requestService) MatchingProviders(ctx context.Context, requestID uuid.UUID) ([]*entity.ServiceProvider, error) {
	if _, err := s.GetRequest(ctx, requestID); err != nil {
		return nil, err
	}

	providers, err := s.providerRepo.FindMatchingProvidersForRequest(ctx, requestID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find matching providers")
	}

	return providers, nil
}
