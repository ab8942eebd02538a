package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/shared"
)

// NotificationRepository defines the interface for notification persistence
type NotificationRepository interface {
	// FindByID finds a notification by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)

	// FindAll finds all notifications matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Notification, error)

	// FindByRecipient finds notifications sent to a recipient
	FindByRecipient(ctx context.Context, to string, filter shared.Filter) ([]Notification, error)

	// Save creates or updates a notification
	Save(ctx context.Context, n *Notification) error

	// Count counts notifications matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// NewsletterRepository defines the interface for newsletter subscription persistence
type NewsletterRepository interface {
	// FindByEmail finds a subscription by email (lowercased)
	FindByEmail(ctx context.Context, email string) (*NewsletterSubscription, error)

	// Save creates or updates a subscription
	Save(ctx context.Context, sub *NewsletterSubscription) error
}
