package notification

import (
	"regexp"
	"strings"
	"time"

	"github.com/lumiera/backend/internal/domain/shared"
)

// NewsletterSubscription represents an email address subscribed to the
// store's marketing newsletter
type NewsletterSubscription struct {
	shared.BaseAggregateRoot
	Email          string
	Subscribed     bool
	UnsubscribedAt *time.Time
}

var newsletterEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NewNewsletterSubscription creates an active subscription
func NewNewsletterSubscription(email string) (*NewsletterSubscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if !newsletterEmailRegex.MatchString(email) {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return &NewsletterSubscription{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		Subscribed:        true,
	}, nil
}

// Resubscribe reactivates a previously unsubscribed address
func (s *NewsletterSubscription) Resubscribe() {
	s.Subscribed = true
	s.UnsubscribedAt = nil
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Unsubscribe deactivates the subscription
func (s *NewsletterSubscription) Unsubscribe() {
	now := time.Now()
	s.Subscribed = false
	s.UnsubscribedAt = &now
	s.UpdatedAt = now
	s.IncrementVersion()
}
