package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"plaza/config"
	deliverycontext "plaza/internal/delivery/context"
	"plaza/internal/domain/constants"
	"plaza/internal/domain/entity"
	"plaza/internal/domain/repository"
	"plaza/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages for the notifier. It fans
// message and moderation events out to the recipient's active devices.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	deviceRepo      repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	DeviceRepo      repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push auth only applies to real Google Pub/Sub outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		deviceRepo:      params.DeviceRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > existing context
	requestID := h.extractRequestID(ctx, &pushMsg)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	eventType := pushMsg.Message.Attributes["event_type"]
	reqLogger.Info("[Worker] Processing push event",
		slog.String("event_type", eventType),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	switch eventType {
	case constants.EventTypeMessage:
		err = h.processMessageEvent(ctx, reqLogger, data)
	case constants.EventTypeModeration:
		err = h.processModerationEvent(ctx, reqLogger, data)
	default:
		reqLogger.Warn("[Worker] Unknown event type, acknowledging",
			slog.String("event_type", eventType),
		)

		return c.NoContent(http.StatusOK)
	}

	if err != nil {
		reqLogger.Error("[Worker] Failed to process push event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, or falls
// back to the context set by RequestIDMiddleware, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processMessageEvent pushes a new-message notification to every active
// device of the message's recipient.
func (h *PushHandler) processMessageEvent(ctx context.Context, logger *slog.Logger, data []byte) error {
	var event service.MessageEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.Wrap(err, "failed to parse message event")
	}

	recipientID, err := uuid.Parse(event.RecipientID)
	if err != nil {
		return errors.Wrap(err, "invalid recipient ID")
	}

	title := "New message"
	if event.IsQuotation {
		title = "New quotation"
	}

	payload := map[string]string{
		"conversation_id": event.ConversationID,
		"message_id":      event.MessageID,
		"sender_type":     event.SenderType,
		"is_quotation":    fmt.Sprintf("%t", event.IsQuotation),
	}

	return h.pushToUser(ctx, logger, recipientID, title, event.Preview, payload)
}

// processModerationEvent notifies the owner of a listing, provider or
// event about an approval-status change.
func (h *PushHandler) processModerationEvent(ctx context.Context, logger *slog.Logger, data []byte) error {
	var event service.ModerationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return errors.Wrap(err, "failed to parse moderation event")
	}

	ownerID, err := uuid.Parse(event.OwnerID)
	if err != nil {
		return errors.Wrap(err, "invalid owner ID")
	}

	var body string
	switch entity.ApprovalStatus(event.NewStatus) {
	case entity.ApprovalApproved:
		body = fmt.Sprintf("Your %s has been approved and is now public", event.SubjectKind)
	case entity.ApprovalRejected:
		body = fmt.Sprintf("Your %s was rejected by moderation", event.SubjectKind)
	default:
		body = fmt.Sprintf("Your %s is back under review", event.SubjectKind)
	}

	payload := map[string]string{
		"subject_id":   event.SubjectID,
		"subject_kind": event.SubjectKind,
		"new_status":   event.NewStatus,
	}

	return h.pushToUser(ctx, logger, ownerID, "Moderation update", body, payload)
}

// pushToUser fans a notification out to the user's active devices and
// deactivates any tokens the push service reports invalid.
func (h *PushHandler) pushToUser(ctx context.Context, logger *slog.Logger, userID uuid.UUID, title, body string, data map[string]string) error {
	devices, err := h.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(devices) == 0 {
		logger.Info("[Worker] Recipient has no active devices",
			slog.String("user_id", userID.String()),
		)

		return nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	sent, failed, invalidTokens, err := h.notificationSvc.SendBatchNotification(ctx, tokens, title, body, data)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if len(invalidTokens) > 0 {
		if err := h.deviceRepo.DeactivateByTokens(ctx, invalidTokens); err != nil {
			logger.Warn("[Worker] Failed to deactivate invalid tokens",
				slog.Int("count", len(invalidTokens)),
				slog.Any("error", err),
			)
		}
	}

	logger.Info("[Worker] Push delivery completed",
		slog.String("user_id", userID.String()),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match the URL of this push endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
