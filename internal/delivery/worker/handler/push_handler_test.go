package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"plaza/config"
	"plaza/internal/domain/constants"
	"plaza/internal/domain/entity"
	"plaza/internal/domain/service"
	mockRepo "plaza/internal/mocks/repository"
	mockSvc "plaza/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T) (*PushHandler, *mockRepo.MockDeviceRepository, *mockSvc.MockNotificationService) {
	t.Helper()

	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	h := NewPushHandler(PushHandlerParams{
		Config:          &config.Config{},
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationSvc,
		DeviceRepo:      deviceRepo,
	})

	return h, deviceRepo, notificationSvc
}

func pushRequest(t *testing.T, eventType string, payload any) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = "msg-1"
	pushMsg.Message.Attributes = map[string]string{
		"event_type": eventType,
		"request_id": "req-trace-1",
	}

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_MessageEvent_FansOutToActiveDevices(t *testing.T) {
	h, deviceRepo, notificationSvc := newPushHandler(t)

	recipientID := uuid.New()
	devices := []*entity.UserDevice{
		{ID: uuid.New(), UserID: recipientID, FCMToken: "token-a", IsActive: true},
		{ID: uuid.New(), UserID: recipientID, FCMToken: "token-b", IsActive: true},
	}

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, recipientID).
		Return(devices, nil)

	notificationSvc.EXPECT().
		SendBatchNotification(
			mock.Anything,
			[]string{"token-a", "token-b"},
			"New message",
			"Can you fix it by Friday?",
			map[string]string{
				"conversation_id": "conv-1",
				"message_id":      "m-1",
				"sender_type":     "user",
				"is_quotation":    "false",
			},
		).
		Return(2, 0, nil, nil)

	c, rec := pushRequest(t, constants.EventTypeMessage, service.MessageEvent{
		MessageID:      "m-1",
		ConversationID: "conv-1",
		RecipientID:    recipientID.String(),
		SenderType:     "user",
		Preview:        "Can you fix it by Friday?",
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MessageEvent_QuotationTitle(t *testing.T) {
	h, deviceRepo, notificationSvc := newPushHandler(t)

	recipientID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, recipientID).
		Return([]*entity.UserDevice{{UserID: recipientID, FCMToken: "token-a"}}, nil)

	notificationSvc.EXPECT().
		SendBatchNotification(
			mock.Anything,
			[]string{"token-a"},
			"New quotation",
			"Quotation for \"Fix my bike\"",
			map[string]string{
				"conversation_id": "conv-1",
				"message_id":      "m-2",
				"sender_type":     "provider",
				"is_quotation":    "true",
			},
		).
		Return(1, 0, nil, nil)

	c, rec := pushRequest(t, constants.EventTypeMessage, service.MessageEvent{
		MessageID:      "m-2",
		ConversationID: "conv-1",
		RecipientID:    recipientID.String(),
		SenderType:     "provider",
		Preview:        "Quotation for \"Fix my bike\"",
		IsQuotation:    true,
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MessageEvent_InvalidTokensDeactivated(t *testing.T) {
	h, deviceRepo, notificationSvc := newPushHandler(t)

	recipientID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, recipientID).
		Return([]*entity.UserDevice{
			{UserID: recipientID, FCMToken: "token-live"},
			{UserID: recipientID, FCMToken: "token-stale"},
		}, nil)

	notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-live", "token-stale"}, "New message", "hello",
			map[string]string{
				"conversation_id": "conv-1",
				"message_id":      "m-3",
				"sender_type":     "user",
				"is_quotation":    "false",
			}).
		Return(1, 1, []string{"token-stale"}, nil)

	deviceRepo.EXPECT().
		DeactivateByTokens(mock.Anything, []string{"token-stale"}).
		Return(nil)

	c, rec := pushRequest(t, constants.EventTypeMessage, service.MessageEvent{
		MessageID:      "m-3",
		ConversationID: "conv-1",
		RecipientID:    recipientID.String(),
		SenderType:     "user",
		Preview:        "hello",
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MessageEvent_NoDevicesAcks(t *testing.T) {
	h, deviceRepo, _ := newPushHandler(t)

	recipientID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, recipientID).
		Return(nil, nil)

	c, rec := pushRequest(t, constants.EventTypeMessage, service.MessageEvent{
		MessageID:      "m-4",
		ConversationID: "conv-1",
		RecipientID:    recipientID.String(),
		SenderType:     "user",
		Preview:        "hello",
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MessageEvent_RepositoryFailureRetries(t *testing.T) {
	h, deviceRepo, _ := newPushHandler(t)

	recipientID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, recipientID).
		Return(nil, errors.New("connection refused"))

	c, rec := pushRequest(t, constants.EventTypeMessage, service.MessageEvent{
		MessageID:      "m-5",
		ConversationID: "conv-1",
		RecipientID:    recipientID.String(),
		SenderType:     "user",
		Preview:        "hello",
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MessageEvent_BadRecipientAcks(t *testing.T) {
	h, _, _ := newPushHandler(t)

	// A malformed recipient can never succeed, so the message is acked
	// instead of retried.
	c, rec := pushRequest(t, constants.EventTypeMessage, service.MessageEvent{
		MessageID:      "m-6",
		ConversationID: "conv-1",
		RecipientID:    "not-a-uuid",
		SenderType:     "user",
		Preview:        "hello",
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ModerationEvent_NotifiesOwner(t *testing.T) {
	h, deviceRepo, notificationSvc := newPushHandler(t)

	ownerID := uuid.New()
	subjectID := uuid.New()

	deviceRepo.EXPECT().
		FindActiveDevicesByUser(mock.Anything, ownerID).
		Return([]*entity.UserDevice{{UserID: ownerID, FCMToken: "token-a"}}, nil)

	notificationSvc.EXPECT().
		SendBatchNotification(
			mock.Anything,
			[]string{"token-a"},
			"Moderation update",
			"Your listing has been approved and is now public",
			map[string]string{
				"subject_id":   subjectID.String(),
				"subject_kind": "listing",
				"new_status":   "approved",
			},
		).
		Return(1, 0, nil, nil)

	c, rec := pushRequest(t, constants.EventTypeModeration, service.ModerationEvent{
		SubjectID:   subjectID.String(),
		SubjectKind: "listing",
		OwnerID:     ownerID.String(),
		NewStatus:   "approved",
	})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_UnknownEventTypeAcks(t *testing.T) {
	h, _, _ := newPushHandler(t)

	c, rec := pushRequest(t, "price_drop", map[string]string{"some": "payload"})

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_BadBase64Rejected(t *testing.T) {
	h, _, _ := newPushHandler(t)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = "%%% not base64 %%%"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

