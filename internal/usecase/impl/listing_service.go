package impl

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"plaza/config"
	"plaza/internal/domain/entity"
	domainerrors "plaza/internal/domain/errors"
	"plaza/internal/domain/repository"
	"plaza/internal/domain/service"
	"plaza/internal/usecase"
	"plaza/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type listingService struct {
	listingRepo  repository.ListingRepository
	providerRepo repository.ProviderRepository
	eventRepo    repository.EventRepository
	fileStorage  service.FileStorage
	publisher    service.EventPublisher
	qrcodeSvc    service.QRCodeService
	logger       *slog.Logger

	maxImageSizeBytes int64
}

// ListingServiceParams holds dependencies for ListingService, injected by Fx.
type ListingServiceParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	ListingRepo  repository.ListingRepository
	ProviderRepo repository.ProviderRepository
	EventRepo    repository.EventRepository
	FileStorage  service.FileStorage
	Publisher    service.EventPublisher
	QRCodeSvc    service.QRCodeService
}

// NewListingService creates a new marketplace catalog service instance
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	maxImageSize := int64(defaultMaxImageSizeBytes)
	if params.Config.Quotation != nil && params.Config.Quotation.MaxImageSizeBytes > 0 {
		maxImageSize = params.Config.Quotation.MaxImageSizeBytes
	}

	return &listingService{
		listingRepo:       params.ListingRepo,
		providerRepo:      params.ProviderRepo,
		eventRepo:         params.EventRepo,
		fileStorage:       params.FileStorage,
		publisher:         params.Publisher,
		qrcodeSvc:         params.QRCodeSvc,
		logger:            params.Logger,
		maxImageSizeBytes: maxImageSize,
	}
}

// CreateListing creates a listing with approval status pending.
func (s *listingService) CreateListing(ctx context.Context, input usecase.CreateListingInput) (*entity.MarketplaceListing, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	listing := &entity.MarketplaceListing{
		ID:             uuid.New(),
		SellerID:       input.SellerID,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		Category:       input.Category,
		Condition:      input.Condition,
		Price:          input.Price,
		City:           input.City,
		Area:           input.Area,
		Location:       input.Location,
		Images:         input.Images,
		ApprovalStatus: entity.ApprovalPending,
	}

	if err := s.listingRepo.CreateListing(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	return listing, nil
}

// GetListing retrieves a listing, gating non-approved ones to their
// seller and moderation views.
func (s *listingService) GetListing(ctx context.Context, id, viewerID uuid.UUID, allStatuses bool) (*entity.MarketplaceListing, error) {
	listing, err := s.findListing(ctx, id)
	if err != nil {
		return nil, err
	}

	if !listing.ApprovalStatus.IsPublic() && !allStatuses && viewerID != listing.SellerID {
		return nil, domainerrors.ErrListingNotPublic
	}

	return listing, nil
}

// BrowseListings retrieves listings matching the query. Public callers
// always see approved listings only.
func (s *listingService) BrowseListings(ctx context.Context, query repository.ListingQuery, moderator bool) ([]*entity.MarketplaceListing, error) {
	if !moderator {
		query.AllStatuses = false
	}

	listings, err := s.listingRepo.FindListings(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to browse listings")
	}

	return listings, nil
}

// ListOwnListings retrieves the seller's listings in any status.
func (s *listingService) ListOwnListings(ctx context.Context, sellerID uuid.UUID) ([]*entity.MarketplaceListing, error) {
	listings, err := s.listingRepo.FindListingsBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller listings")
	}

	return listings, nil
}

// AddListingImages uploads listing images with per-file failure
// reporting; valid files still upload when others fail.
func (s *listingService) AddListingImages(ctx context.Context, listingID, sellerID uuid.UUID, files []usecase.FileInput) ([]string, []usecase.ImageRejection, error) {
	listing, err := s.findListing(ctx, listingID)
	if err != nil {
		return nil, nil, err
	}

	if listing.SellerID != sellerID {
		return nil, nil, domainerrors.ErrForbidden.WithDetails("only the seller may add images")
	}

	var uploaded []string
	var rejections []usecase.ImageRejection

	for _, file := range files {
		if reason := s.checkListingImage(file); reason != "" {
			rejections = append(rejections, usecase.ImageRejection{Name: file.Name, Reason: reason})

			continue
		}

		key := fmt.Sprintf("listings/%s/%s", listingID, util.ChecksumBytes(file.Data))
		url, uploadErr := s.fileStorage.Upload(ctx, key, file.ContentType, bytes.NewReader(file.Data))
		if uploadErr != nil {
			s.logger.Warn("listing image upload failed",
				slog.String("file", file.Name),
				slog.Any("error", uploadErr),
			)
			rejections = append(rejections, usecase.ImageRejection{Name: file.Name, Reason: uploadErr.Error()})

			continue
		}

		uploaded = append(uploaded, url)
	}

	if len(uploaded) > 0 {
		images := append(listing.Images, uploaded...)
		if err := s.listingRepo.UpdateListingImages(ctx, listingID, images); err != nil {
			return nil, nil, errors.Wrap(err, "failed to persist listing images")
		}
	}

	return uploaded, rejections, nil
}

// DeleteListing removes a listing. Seller only.
func (s *listingService) DeleteListing(ctx context.Context, listingID, sellerID uuid.UUID) error {
	listing, err := s.findListing(ctx, listingID)
	if err != nil {
		return err
	}

	if listing.SellerID != sellerID {
		return domainerrors.ErrForbidden.WithDetails("only the seller may delete a listing")
	}

	if err := s.listingRepo.DeleteListing(ctx, listingID); err != nil {
		return errors.Wrap(err, "failed to delete listing")
	}

	return nil
}

// CreateProvider creates a provider profile with approval status pending.
func (s *listingService) CreateProvider(ctx context.Context, input usecase.CreateProviderInput) (*entity.ServiceProvider, error) {
	if strings.TrimSpace(input.BusinessName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("business name must not be empty")
	}
	if input.StartingPrice != nil && *input.StartingPrice < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("starting price must not be negative")
	}

	provider := &entity.ServiceProvider{
		ID:              uuid.New(),
		UserID:          input.UserID,
		BusinessName:    strings.TrimSpace(input.BusinessName),
		Description:     input.Description,
		Category:        input.Category,
		Subcategory:     input.Subcategory,
		City:            input.City,
		Area:            input.Area,
		PostalCode:      input.PostalCode,
		ContactPhone:    input.ContactPhone,
		Location:        input.Location,
		StartingPrice:   input.StartingPrice,
		DeliveryOffered: input.DeliveryOffered,
		ApprovalStatus:  entity.ApprovalPending,
	}

	if err := s.providerRepo.CreateProvider(ctx, provider); err != nil {
		return nil, errors.Wrap(err, "failed to create provider profile")
	}

	return provider, nil
}

// GetProviderByUser retrieves the provider profile owned by a user.
func (s *listingService) GetProviderByUser(ctx context.Context, userID uuid.UUID) (*entity.ServiceProvider, error) {
	provider, err := s.providerRepo.FindProviderByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProviderNotFound) {
			return nil, domainerrors.ErrProviderNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by user")
	}

	return provider, nil
}

// ListProviders retrieves approved providers by category and city.
func (s *listingService) ListProviders(ctx context.Context, category, city string, limit, offset int) ([]*entity.ServiceProvider, error) {
	providers, err := s.providerRepo.FindApprovedProviders(ctx, category, city, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	return providers, nil
}

// CreateEvent creates a community event with approval status pending.
func (s *listingService) CreateEvent(ctx context.Context, input usecase.CreateEventInput) (*entity.Event, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("title must not be empty")
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event must end after it starts")
	}

	event := &entity.Event{
		ID:             uuid.New(),
		OrganizerID:    input.OrganizerID,
		Title:          strings.TrimSpace(input.Title),
		Description:    input.Description,
		Venue:          input.Venue,
		City:           input.City,
		Location:       input.Location,
		StartsAt:       input.StartsAt,
		EndsAt:         input.EndsAt,
		ApprovalStatus: entity.ApprovalPending,
	}

	if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	return event, nil
}

// ListUpcomingEvents retrieves approved events that have not ended.
func (s *listingService) ListUpcomingEvents(ctx context.Context, city string, moderator bool, limit, offset int) ([]*entity.Event, error) {
	events, err := s.eventRepo.FindUpcomingEvents(ctx, city, moderator, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list upcoming events")
	}

	return events, nil
}

// Moderate applies an approval decision and publishes a moderation
// event so the owner hears about it asynchronously.
func (s *listingService) Moderate(ctx context.Context, subject usecase.ModerationSubject, subjectID uuid.UUID, status entity.ApprovalStatus) error {
	if !status.Valid() {
		return domainerrors.ErrApprovalStatusInvalid
	}

	ownerID, err := s.applyModeration(ctx, subject, subjectID, status)
	if err != nil {
		return err
	}

	event := &service.ModerationEvent{
		SubjectID:   subjectID.String(),
		SubjectKind: string(subject),
		OwnerID:     ownerID.String(),
		NewStatus:   string(status),
	}
	if err := s.publisher.PublishModerationEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish moderation event",
			slog.String("subject_id", subjectID.String()),
			slog.Any("error", err),
		)
	}

	return nil
}

// applyModeration routes the decision to the right catalog and returns
// the owning user for notification.
func (s *listingService) applyModeration(ctx context.Context, subject usecase.ModerationSubject, subjectID uuid.UUID, status entity.ApprovalStatus) (uuid.UUID, error) {
	switch subject {
	case usecase.ModerateListings:
		listing, err := s.findListing(ctx, subjectID)
		if err != nil {
			return uuid.Nil, err
		}
		if err := s.listingRepo.UpdateApprovalStatus(ctx, subjectID, status); err != nil {
			return uuid.Nil, errors.Wrap(err, "failed to update listing approval status")
		}

		return listing.SellerID, nil

	case usecase.ModerateProviders:
		provider, err := s.providerRepo.FindProviderByID(ctx, subjectID)
		if err != nil {
			if errors.Is(err, repository.ErrProviderNotFound) {
				return uuid.Nil, domainerrors.ErrProviderNotFound
			}

			return uuid.Nil, errors.Wrap(err, "failed to find provider")
		}
		if err := s.providerRepo.UpdateApprovalStatus(ctx, subjectID, status); err != nil {
			return uuid.Nil, errors.Wrap(err, "failed to update provider approval status")
		}

		return provider.UserID, nil

	case usecase.ModerateEvents:
		event, err := s.eventRepo.FindEventByID(ctx, subjectID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return uuid.Nil, domainerrors.ErrEventNotFound
			}

			return uuid.Nil, errors.Wrap(err, "failed to find event")
		}
		if err := s.eventRepo.UpdateApprovalStatus(ctx, subjectID, status); err != nil {
			return uuid.Nil, errors.Wrap(err, "failed to update event approval status")
		}

		return event.OrganizerID, nil
	}

	return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("unknown moderation subject")
}

// ListingShareQR generates a shareable QR code for an approved listing.
func (s *listingService) ListingShareQR(ctx context.Context, listingID uuid.UUID) ([]byte, error) {
	listing, err := s.findListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if !listing.ApprovalStatus.IsPublic() {
		return nil, domainerrors.ErrListingNotPublic
	}

	qrBytes, err := s.qrcodeSvc.GenerateListingQR(listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return qrBytes, nil
}

// ResolveShareQR parses scanned QR data back into the listing it points at.
func (s *listingService) ResolveShareQR(ctx context.Context, qrData string) (*entity.MarketplaceListing, error) {
	listingID, err := s.qrcodeSvc.ParseListingQR(qrData)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unrecognized QR code")
	}

	listing, err := s.findListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if !listing.ApprovalStatus.IsPublic() {
		return nil, domainerrors.ErrListingNotPublic
	}

	return listing, nil
}

func (s *listingService) findListing(ctx context.Context, id uuid.UUID) (*entity.MarketplaceListing, error) {
	listing, err := s.listingRepo.FindListingByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrListingNotFound) {
			return nil, domainerrors.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return listing, nil
}

// checkListingImage returns a rejection reason, or "" when acceptable.
func (s *listingService) checkListingImage(file usecase.FileInput) string {
	if !strings.HasPrefix(file.ContentType, "image/") {
		return "not an image file"
	}

	size := file.Size
	if size == 0 {
		size = int64(len(file.Data))
	}
	if size > s.maxImageSizeBytes {
		return fmt.Sprintf("exceeds the %s size limit", util.FormatBytes(s.maxImageSizeBytes))
	}

	return ""
}
