package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"plaza/internal/domain/constants"
	"plaza/internal/domain/service"

	"github.com/pkg/errors"
)

// localHTTPPublisher implements EventPublisher by sending HTTP POST requests
// to a local endpoint, simulating Pub/Sub push behavior for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PublishMessageEvent publishes a new-message event to the local endpoint
func (p *localHTTPPublisher) PublishMessageEvent(ctx context.Context, event *service.MessageEvent) error {
	attributes := map[string]string{
		"event_type":      constants.EventTypeMessage,
		"message_id":      event.MessageID,
		"conversation_id": event.ConversationID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return p.publish(ctx, event, attributes, event.MessageID, event.RequestID)
}

// PublishModerationEvent publishes an approval-status change to the local endpoint
func (p *localHTTPPublisher) PublishModerationEvent(ctx context.Context, event *service.ModerationEvent) error {
	attributes := map[string]string{
		"event_type":   constants.EventTypeModeration,
		"subject_id":   event.SubjectID,
		"subject_kind": event.SubjectKind,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return p.publish(ctx, event, attributes, event.SubjectID, event.RequestID)
}

// publish wraps the event in a Pub/Sub push envelope and POSTs it.
func (p *localHTTPPublisher) publish(ctx context.Context, event any, attributes map[string]string, eventID, requestID string) error {
	eventData, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PubSubPushMessage{
		Subscription: "projects/local/subscriptions/notifier-sub",
	}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(eventData)
	pushMsg.Message.MessageID = eventID
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = attributes

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[LocalPubSub] Publishing event",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", attributes["event_type"]),
		slog.String("event_id", eventID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Add X-Request-Id header for tracing
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Event published successfully",
		slog.String("event_id", eventID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}
