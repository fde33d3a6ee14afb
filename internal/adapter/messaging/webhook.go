// Package messaging delivers rendered agenda messages to a user's phone.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrRejected is returned when the gateway answers with a non-2xx status.
var ErrRejected = errors.New("gateway rejected message")

type webhookRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// WebhookSender posts messages to an HTTP gateway as {"to", "message"} JSON.
type WebhookSender struct {
	client *resty.Client
	url    string
	log    *slog.Logger
}

// NewWebhookSender creates a sender for url. A non-empty token is sent as a
// bearer credential.
func NewWebhookSender(logger *slog.Logger, url, token string, timeout time.Duration) *WebhookSender {
	c := resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	if token != "" {
		c.SetAuthToken(token)
	}

	return &WebhookSender{
		client: c,
		url:    url,
		log:    logger.With("adapter", "webhook"),
	}
}

// Send delivers text to phone with a single request. Network errors and
// non-2xx responses are returned to the caller, never retried.
func (s *WebhookSender) Send(ctx context.Context, phone, text string) error {
	s.log.DebugContext(ctx, "webhook request", slog.String("to", phone))

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(webhookRequest{To: phone, Message: text}).
		Post(s.url)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("webhook: status %d: %w", resp.StatusCode(), ErrRejected)
	}

	s.log.DebugContext(ctx, "webhook delivered",
		slog.String("to", phone),
		slog.Int("status", resp.StatusCode()))
	return nil
}
