package newsletter

import (
	"context"
	"errors"
	"strings"

	"github.com/lumiera/backend/internal/domain/notification"
	"github.com/lumiera/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// NewsletterService manages newsletter subscriptions for the storefront
type NewsletterService struct {
	repo   notification.NewsletterRepository
	logger *zap.Logger
}

// NewNewsletterService creates a new NewsletterService
func NewNewsletterService(repo notification.NewsletterRepository, logger *zap.Logger) *NewsletterService {
	return &NewsletterService{
		repo:   repo,
		logger: logger,
	}
}

// Subscribe subscribes an email address to the newsletter. Subscribing an
// already-subscribed address is a no-op; a previously unsubscribed address
// is reactivated.
func (s *NewsletterService) Subscribe(ctx context.Context, req SubscribeRequest) (*SubscriptionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	sub, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if sub != nil {
		if !sub.Subscribed {
			sub.Resubscribe()
			if err := s.repo.Save(ctx, sub); err != nil {
				return nil, err
			}
			s.logger.Info("newsletter subscription reactivated", zap.String("email", sub.Email))
		}
		response := ToSubscriptionResponse(sub)
		return &response, nil
	}

	sub, err = notification.NewNewsletterSubscription(email)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Info("newsletter subscription created", zap.String("email", sub.Email))
	response := ToSubscriptionResponse(sub)
	return &response, nil
}

// Unsubscribe removes an email address from the newsletter. Unknown
// addresses are treated as already unsubscribed.
func (s *NewsletterService) Unsubscribe(ctx context.Context, req SubscribeRequest) (*SubscriptionResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	sub, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return &SubscriptionResponse{Email: email, Subscribed: false}, nil
		}
		return nil, err
	}

	if sub.Subscribed {
		sub.Unsubscribe()
		if err := s.repo.Save(ctx, sub); err != nil {
			return nil, err
		}
		s.logger.Info("newsletter subscription removed", zap.String("email", sub.Email))
	}

	response := ToSubscriptionResponse(sub)
	return &response, nil
}
