package promotion

import (
	"time"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypePromotion = "Promotion"

// Event type constants
const (
	EventTypePromotionCreated = "PromotionCreated"
)

// PromotionCreatedEvent is published when a promotion is created
type PromotionCreatedEvent struct {
	shared.BaseDomainEvent
	PromotionID uuid.UUID       `json:"promotion_id"`
	Code        string          `json:"code"`
	MethodType  MethodType      `json:"method_type"`
	Value       decimal.Decimal `json:"value"`
	TargetType  TargetType      `json:"target_type"`
	EndsAt      *time.Time      `json:"ends_at,omitempty"`
}

// NewPromotionCreatedEvent creates a new PromotionCreatedEvent
func NewPromotionCreatedEvent(promo *Promotion) *PromotionCreatedEvent {
	return &PromotionCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePromotionCreated, AggregateTypePromotion, promo.ID),
		PromotionID:     promo.ID,
		Code:            promo.Code,
		MethodType:      promo.MethodType,
		Value:           promo.Value,
		TargetType:      promo.TargetType,
		EndsAt:          promo.EndsAt,
	}
}
