package models

import (
	"time"

	"github.com/lumiera/backend/internal/domain/promotion"
	"github.com/shopspring/decimal"
)

// PromotionModel is the persistence model for the Promotion domain entity.
type PromotionModel struct {
	AggregateModel
	Code        string                  `gorm:"type:varchar(50);not null;uniqueIndex"`
	Type        promotion.PromotionType `gorm:"type:varchar(20);not null;default:'standard'"`
	MethodType  promotion.MethodType    `gorm:"type:varchar(20);not null"`
	Value       decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	TargetType  promotion.TargetType    `gorm:"type:varchar(30);not null"`
	IsAutomatic bool                    `gorm:"not null;default:false"`
	StartsAt    time.Time               `gorm:"not null"`
	EndsAt      *time.Time
}

// TableName returns the table name for GORM
func (PromotionModel) TableName() string {
	return "promotions"
}

// ToDomain converts the persistence model to a domain Promotion entity.
func (m *PromotionModel) ToDomain() *promotion.Promotion {
	return &promotion.Promotion{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Type:              m.Type,
		MethodType:        m.MethodType,
		Value:             m.Value,
		TargetType:        m.TargetType,
		IsAutomatic:       m.IsAutomatic,
		StartsAt:          m.StartsAt,
		EndsAt:            m.EndsAt,
	}
}

// FromDomain populates the persistence model from a domain Promotion entity.
func (m *PromotionModel) FromDomain(p *promotion.Promotion) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Code = p.Code
	m.Type = p.Type
	m.MethodType = p.MethodType
	m.Value = p.Value
	m.TargetType = p.TargetType
	m.IsAutomatic = p.IsAutomatic
	m.StartsAt = p.StartsAt
	m.EndsAt = p.EndsAt
}

// PromotionModelFromDomain creates a new persistence model from a domain Promotion entity.
func PromotionModelFromDomain(p *promotion.Promotion) *PromotionModel {
	m := &PromotionModel{}
	m.FromDomain(p)
	return m
}
