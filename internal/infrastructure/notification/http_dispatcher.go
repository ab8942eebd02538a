// Package notification provides delivery adapters for transactional email.
package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	domain "github.com/lumiera/backend/internal/domain/notification"
	"github.com/lumiera/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// HTTPDispatcher delivers email through an HTTP transactional email provider
// (Resend-style API: POST /emails with a bearer key).
type HTTPDispatcher struct {
	endpoint   string
	apiKey     string
	fromEmail  string
	httpClient *http.Client
	logger     *zap.Logger
}

// Ensure HTTPDispatcher implements Dispatcher
var _ domain.Dispatcher = (*HTTPDispatcher)(nil)

// NewHTTPDispatcher creates a dispatcher from the notification configuration
func NewHTTPDispatcher(cfg config.NotificationConfig, logger *zap.Logger) (*HTTPDispatcher, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("notification endpoint is required")
	}
	if cfg.FromEmail == "" {
		return nil, errors.New("notification from address is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &HTTPDispatcher{
		endpoint:  cfg.Endpoint,
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

type sendEmailPayload struct {
	From     string                 `json:"from"`
	To       string                 `json:"to"`
	Template string                 `json:"template"`
	Data     map[string]interface{} `json:"data"`
}

// SendEmail posts the email to the provider endpoint
func (d *HTTPDispatcher) SendEmail(ctx context.Context, email domain.Email) error {
	payload := sendEmailPayload{
		From:     d.fromEmail,
		To:       email.To,
		Template: email.Template,
		Data:     email.Data,
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("notification: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("notification: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if d.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+d.apiKey)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notification: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Providers put the failure reason in the body
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		d.logger.Warn("Email provider rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("to", email.To),
			zap.String("template", email.Template),
		)
		return fmt.Errorf("notification: provider returned %d: %s", resp.StatusCode, string(respBody))
	}

	d.logger.Debug("Email dispatched",
		zap.String("to", email.To),
		zap.String("template", email.Template),
	)

	return nil
}
