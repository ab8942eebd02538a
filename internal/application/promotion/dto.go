package promotion

import (
	"time"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/promotion"
	"github.com/shopspring/decimal"
)

// PromotionResponse represents a promotion in API responses
type PromotionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Type        string          `json:"type"`
	MethodType  string          `json:"method_type"`
	Value       decimal.Decimal `json:"value"`
	TargetType  string          `json:"target_type"`
	IsAutomatic bool            `json:"is_automatic"`
	IsActive    bool            `json:"is_active"`
	StartsAt    time.Time       `json:"starts_at"`
	EndsAt      *time.Time      `json:"ends_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PromotionListFilter represents filter options for the admin promotion list
type PromotionListFilter struct {
	Search     string `form:"search"`
	TargetType string `form:"target_type" binding:"omitempty,oneof=order shipping_methods items"`
	ActiveOnly bool   `form:"active"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPromotionResponse converts a domain promotion to its API representation
func ToPromotionResponse(p *promotion.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:          p.ID,
		Code:        p.Code,
		Type:        string(p.Type),
		MethodType:  string(p.MethodType),
		Value:       p.Value,
		TargetType:  string(p.TargetType),
		IsAutomatic: p.IsAutomatic,
		IsActive:    p.IsActive(time.Now()),
		StartsAt:    p.StartsAt,
		EndsAt:      p.EndsAt,
		CreatedAt:   p.CreatedAt,
	}
}
