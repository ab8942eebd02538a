package promotion

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/lumiera/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PromotionType represents how a promotion is applied
type PromotionType string

const (
	// PromotionTypeStandard is a code-entered promotion
	PromotionTypeStandard PromotionType = "standard"
	// PromotionTypeAutomatic is applied without a code
	PromotionTypeAutomatic PromotionType = "automatic"
)

// MethodType represents the kind of discount the promotion grants
type MethodType string

const (
	MethodTypePercentage MethodType = "percentage"
	MethodTypeFixed      MethodType = "fixed"
)

// TargetType represents what the discount applies to
type TargetType string

const (
	TargetTypeOrder    TargetType = "order"
	TargetTypeShipping TargetType = "shipping_methods"
	TargetTypeItems    TargetType = "items"
)

// WelcomeCodePrefix prefixes every welcome promotion code
const WelcomeCodePrefix = "WELCOME-"

// Promotion represents a discount promotion redeemable during checkout.
// It is the aggregate root for promotion-related operations.
type Promotion struct {
	shared.BaseAggregateRoot
	Code        string
	Type        PromotionType
	MethodType  MethodType
	Value       decimal.Decimal
	TargetType  TargetType
	IsAutomatic bool
	StartsAt    time.Time
	EndsAt      *time.Time
}

// NewPercentagePromotion creates a code-entered percentage promotion valid
// from now until the given end time. A nil endsAt means the promotion never
// expires.
func NewPercentagePromotion(code string, value decimal.Decimal, target TargetType, endsAt *time.Time) (*Promotion, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if value.LessThanOrEqual(decimal.Zero) || value.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_VALUE", "Percentage value must be between 0 and 100")
	}
	if err := validateTarget(target); err != nil {
		return nil, err
	}
	now := time.Now()
	if endsAt != nil && !endsAt.After(now) {
		return nil, shared.NewDomainError("INVALID_VALIDITY", "Promotion end time must be in the future")
	}

	promo := &Promotion{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Type:              PromotionTypeStandard,
		MethodType:        MethodTypePercentage,
		Value:             value,
		TargetType:        target,
		IsAutomatic:       false,
		StartsAt:          now,
		EndsAt:            endsAt,
	}

	promo.AddDomainEvent(NewPromotionCreatedEvent(promo))

	return promo, nil
}

// GenerateWelcomeCode returns a fresh welcome code of the form
// WELCOME-XXXXXX where XXXXXX is three random bytes hex-encoded and
// uppercased.
func GenerateWelcomeCode() (string, error) {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return "", shared.NewDomainError("CODE_GENERATION_ERROR", "Failed to generate promotion code")
	}
	return WelcomeCodePrefix + strings.ToUpper(hex.EncodeToString(buf)), nil
}

// IsActive returns true if the promotion can currently be redeemed
func (p *Promotion) IsActive(at time.Time) bool {
	if at.Before(p.StartsAt) {
		return false
	}
	if p.EndsAt != nil && at.After(*p.EndsAt) {
		return false
	}
	return true
}

// IsWelcome returns true if this is a welcome promotion
func (p *Promotion) IsWelcome() bool {
	return strings.HasPrefix(p.Code, WelcomeCodePrefix)
}

func validateCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Promotion code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Promotion code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Promotion code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateTarget(target TargetType) error {
	switch target {
	case TargetTypeOrder, TargetTypeShipping, TargetTypeItems:
		return nil
	default:
		return shared.NewDomainError("INVALID_TARGET", "Invalid promotion target type")
	}
}
