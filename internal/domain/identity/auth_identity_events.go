package identity

import (
	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeAuthIdentity = "AuthIdentity"

// Event type constants
const (
	EventTypeAuthIdentityCreated = "AuthIdentityCreated"
	EventTypeAuthIdentityDeleted = "AuthIdentityDeleted"
)

// AuthIdentityCreatedEvent is published when a credential is registered
type AuthIdentityCreatedEvent struct {
	shared.BaseDomainEvent
	IdentityID uuid.UUID  `json:"identity_id"`
	ProviderID string     `json:"provider_id"`
	EntityID   string     `json:"entity_id"`
	CustomerID *uuid.UUID `json:"customer_id,omitempty"`
}

// NewAuthIdentityCreatedEvent creates a new AuthIdentityCreatedEvent
func NewAuthIdentityCreatedEvent(identity *AuthIdentity) *AuthIdentityCreatedEvent {
	return &AuthIdentityCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAuthIdentityCreated, AggregateTypeAuthIdentity, identity.ID),
		IdentityID:      identity.ID,
		ProviderID:      identity.ProviderID,
		EntityID:        identity.EntityID,
		CustomerID:      identity.CustomerID,
	}
}

// AuthIdentityDeletedEvent is published when a credential is removed
type AuthIdentityDeletedEvent struct {
	shared.BaseDomainEvent
	IdentityID uuid.UUID `json:"identity_id"`
	ProviderID string    `json:"provider_id"`
	EntityID   string    `json:"entity_id"`
}

// NewAuthIdentityDeletedEvent creates a new AuthIdentityDeletedEvent
func NewAuthIdentityDeletedEvent(identity *AuthIdentity) *AuthIdentityDeletedEvent {
	return &AuthIdentityDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAuthIdentityDeleted, AggregateTypeAuthIdentity, identity.ID),
		IdentityID:      identity.ID,
		ProviderID:      identity.ProviderID,
		EntityID:        identity.EntityID,
	}
}
