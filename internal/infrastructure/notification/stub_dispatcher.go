package notification

import (
	"context"
	"sync"

	domain "github.com/lumiera/backend/internal/domain/notification"
	"go.uber.org/zap"
)

// StubDispatcher logs emails instead of delivering them.
// Use this for development when no provider is configured.
type StubDispatcher struct {
	logger *zap.Logger

	mu   sync.Mutex
	sent []domain.Email
}

// Ensure StubDispatcher implements Dispatcher
var _ domain.Dispatcher = (*StubDispatcher)(nil)

// NewStubDispatcher creates a new StubDispatcher
func NewStubDispatcher(logger *zap.Logger) *StubDispatcher {
	return &StubDispatcher{logger: logger}
}

// SendEmail records the email and logs it
func (d *StubDispatcher) SendEmail(ctx context.Context, email domain.Email) error {
	d.mu.Lock()
	d.sent = append(d.sent, email)
	d.mu.Unlock()

	d.logger.Info("Email (stub, not delivered)",
		zap.String("to", email.To),
		zap.String("template", email.Template),
		zap.Any("data", email.Data),
	)
	return nil
}

// Sent returns the emails recorded so far
func (d *StubDispatcher) Sent() []domain.Email {
	d.mu.Lock()
	defer d.mu.Unlock()
	emails := make([]domain.Email, len(d.sent))
	copy(emails, d.sent)
	return emails
}
