package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/identity"
)

// AuthIdentityModel is the persistence model for the AuthIdentity domain entity.
type AuthIdentityModel struct {
	AggregateModel
	ProviderID   string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_auth_provider_entity,priority:1"`
	EntityID     string     `gorm:"type:varchar(200);not null;uniqueIndex:idx_auth_provider_entity,priority:2"`
	PasswordHash string     `gorm:"type:varchar(200)"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (AuthIdentityModel) TableName() string {
	return "auth_identities"
}

// ToDomain converts the persistence model to a domain AuthIdentity entity.
func (m *AuthIdentityModel) ToDomain() *identity.AuthIdentity {
	return &identity.AuthIdentity{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		ProviderID:        m.ProviderID,
		EntityID:          m.EntityID,
		PasswordHash:      m.PasswordHash,
		CustomerID:        m.CustomerID,
		LastLoginAt:       m.LastLoginAt,
	}
}

// FromDomain populates the persistence model from a domain AuthIdentity entity.
func (m *AuthIdentityModel) FromDomain(i *identity.AuthIdentity) {
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.ProviderID = i.ProviderID
	m.EntityID = i.EntityID
	m.PasswordHash = i.PasswordHash
	m.CustomerID = i.CustomerID
	m.LastLoginAt = i.LastLoginAt
}

// AuthIdentityModelFromDomain creates a new persistence model from a domain AuthIdentity entity.
func AuthIdentityModelFromDomain(i *identity.AuthIdentity) *AuthIdentityModel {
	m := &AuthIdentityModel{}
	m.FromDomain(i)
	return m
}
