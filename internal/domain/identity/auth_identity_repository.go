package identity

import (
	"context"

	"github.com/google/uuid"
)

// AuthIdentityRepository defines the interface for credential persistence
type AuthIdentityRepository interface {
	// FindByID finds an identity by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*AuthIdentity, error)

	// FindByProviderEntity finds an identity by provider and entity ID
	FindByProviderEntity(ctx context.Context, providerID, entityID string) (*AuthIdentity, error)

	// ListByEntityID lists all identities registered for an entity ID across providers
	ListByEntityID(ctx context.Context, entityID string) ([]AuthIdentity, error)

	// ListByCustomerID lists all identities linked to a customer
	ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]AuthIdentity, error)

	// Save creates or updates an identity
	Save(ctx context.Context, identity *AuthIdentity) error

	// Delete deletes an identity
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByCustomerID deletes all identities linked to a customer
	DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error
}
