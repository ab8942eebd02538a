package welcome

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/customer"
	"github.com/lumiera/backend/internal/domain/notification"
	"github.com/lumiera/backend/internal/domain/promotion"
	"github.com/lumiera/backend/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// WelcomeService issues the welcome package for a newly created customer: a
// personal discount promotion plus a welcome email. Both side effects are
// best-effort; a failure in one never blocks the other, and neither failure
// is surfaced to the caller.
type WelcomeService struct {
	customerRepo     customer.CustomerRepository
	promotionRepo    promotion.PromotionRepository
	notificationRepo notification.NotificationRepository
	dispatcher       notification.Dispatcher
	cfg              config.WelcomeConfig
	logger           *zap.Logger
}

// NewWelcomeService creates a new WelcomeService
func NewWelcomeService(
	customerRepo customer.CustomerRepository,
	promotionRepo promotion.PromotionRepository,
	notificationRepo notification.NotificationRepository,
	dispatcher notification.Dispatcher,
	cfg config.WelcomeConfig,
	logger *zap.Logger,
) *WelcomeService {
	return &WelcomeService{
		customerRepo:     customerRepo,
		promotionRepo:    promotionRepo,
		notificationRepo: notificationRepo,
		dispatcher:       dispatcher,
		cfg:              cfg,
		logger:           logger,
	}
}

// IssueWelcomePackage creates the welcome promotion and sends the welcome
// email for the given customer. The returned error is always nil unless the
// customer lookup itself fails in a way the caller should retry.
func (s *WelcomeService) IssueWelcomePackage(ctx context.Context, customerID uuid.UUID) error {
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		s.logger.Warn("customer not found, skipping welcome package",
			zap.String("customer_id", customerID.String()),
			zap.Error(err),
		)
		return nil
	}

	promo := s.createPromotion(ctx, c)
	s.sendWelcomeEmail(ctx, c, promo)
	return nil
}

// createPromotion creates the welcome discount. Returns nil when creation
// fails; the welcome email is then sent without a discount code.
func (s *WelcomeService) createPromotion(ctx context.Context, c *customer.Customer) *promotion.Promotion {
	code, err := promotion.GenerateWelcomeCode()
	if err != nil {
		s.logger.Error("failed to generate welcome code",
			zap.String("customer_id", c.ID.String()),
			zap.Error(err),
		)
		return nil
	}

	var endsAt *time.Time
	if s.cfg.ValidityDays > 0 {
		t := time.Now().AddDate(0, 0, s.cfg.ValidityDays)
		endsAt = &t
	}

	promo, err := promotion.NewPercentagePromotion(
		code,
		decimal.NewFromInt(int64(s.cfg.DiscountPercent)),
		promotion.TargetTypeOrder,
		endsAt,
	)
	if err != nil {
		s.logger.Error("failed to build welcome promotion",
			zap.String("customer_id", c.ID.String()),
			zap.Error(err),
		)
		return nil
	}

	if err := s.promotionRepo.Save(ctx, promo); err != nil {
		s.logger.Error("failed to save welcome promotion",
			zap.String("customer_id", c.ID.String()),
			zap.String("code", code),
			zap.Error(err),
		)
		return nil
	}

	s.logger.Info("welcome promotion created",
		zap.String("customer_id", c.ID.String()),
		zap.String("code", promo.Code),
	)
	return promo
}

// sendWelcomeEmail dispatches the welcome email and records the attempt in
// the notification log
func (s *WelcomeService) sendWelcomeEmail(ctx context.Context, c *customer.Customer, promo *promotion.Promotion) {
	data := map[string]interface{}{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"email":      c.Email,
	}
	if promo != nil {
		data["discountCode"] = promo.Code
		if promo.EndsAt != nil {
			data["validUntil"] = promo.EndsAt.Format("2006-01-02")
		}
	}

	record := s.newNotificationRecord(ctx, c.Email, data)

	err := s.dispatcher.SendEmail(ctx, notification.Email{
		To:       c.Email,
		Template: notification.TemplateCustomerCreated,
		Data:     data,
	})
	if err != nil {
		s.logger.Error("failed to send welcome email",
			zap.String("customer_id", c.ID.String()),
			zap.String("email", c.Email),
			zap.Error(err),
		)
		if record != nil {
			record.MarkFailed(err.Error())
			s.saveNotificationRecord(ctx, record)
		}
		return
	}

	s.logger.Info("welcome email sent",
		zap.String("customer_id", c.ID.String()),
		zap.String("email", c.Email),
	)
	if record != nil {
		record.MarkSent()
		s.saveNotificationRecord(ctx, record)
	}
}

func (s *WelcomeService) newNotificationRecord(ctx context.Context, to string, data map[string]interface{}) *notification.Notification {
	payload, err := json.Marshal(data)
	if err != nil {
		s.logger.Error("failed to marshal notification payload", zap.Error(err))
		payload = []byte("{}")
	}

	record, err := notification.NewEmailNotification(to, notification.TemplateCustomerCreated, string(payload))
	if err != nil {
		s.logger.Error("failed to build notification record", zap.Error(err))
		return nil
	}
	return record
}

func (s *WelcomeService) saveNotificationRecord(ctx context.Context, record *notification.Notification) {
	if err := s.notificationRepo.Save(ctx, record); err != nil {
		s.logger.Error("failed to persist notification record",
			zap.String("to", record.To),
			zap.Error(err),
		)
	}
}
