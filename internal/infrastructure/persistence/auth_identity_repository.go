package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/identity"
	"github.com/lumiera/backend/internal/domain/shared"
	"github.com/lumiera/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAuthIdentityRepository implements AuthIdentityRepository using GORM
type GormAuthIdentityRepository struct {
	db *gorm.DB
}

// NewGormAuthIdentityRepository creates a new GormAuthIdentityRepository
func NewGormAuthIdentityRepository(db *gorm.DB) *GormAuthIdentityRepository {
	return &GormAuthIdentityRepository{db: db}
}

// FindByID finds an identity by its ID
func (r *GormAuthIdentityRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.AuthIdentity, error) {
	var model models.AuthIdentityModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByProviderEntity finds an identity by provider and entity ID
func (r *GormAuthIdentityRepository) FindByProviderEntity(ctx context.Context, providerID, entityID string) (*identity.AuthIdentity, error) {
	var model models.AuthIdentityModel
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND entity_id = ?", providerID, strings.ToLower(entityID)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListByEntityID lists all identities registered for an entity ID across providers
func (r *GormAuthIdentityRepository) ListByEntityID(ctx context.Context, entityID string) ([]identity.AuthIdentity, error) {
	var identityModels []models.AuthIdentityModel
	if err := r.db.WithContext(ctx).
		Where("entity_id = ?", strings.ToLower(entityID)).
		Find(&identityModels).Error; err != nil {
		return nil, err
	}

	identities := make([]identity.AuthIdentity, len(identityModels))
	for i, model := range identityModels {
		identities[i] = *model.ToDomain()
	}
	return identities, nil
}

// ListByCustomerID lists all identities linked to a customer
func (r *GormAuthIdentityRepository) ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]identity.AuthIdentity, error) {
	var identityModels []models.AuthIdentityModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Find(&identityModels).Error; err != nil {
		return nil, err
	}

	identities := make([]identity.AuthIdentity, len(identityModels))
	for i, model := range identityModels {
		identities[i] = *model.ToDomain()
	}
	return identities, nil
}

// Save creates or updates an identity
func (r *GormAuthIdentityRepository) Save(ctx context.Context, i *identity.AuthIdentity) error {
	model := models.AuthIdentityModelFromDomain(i)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an identity
func (r *GormAuthIdentityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AuthIdentityModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByCustomerID deletes all identities linked to a customer
func (r *GormAuthIdentityRepository) DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.AuthIdentityModel{}, "customer_id = ?", customerID).Error
}

// Ensure GormAuthIdentityRepository implements AuthIdentityRepository
var _ identity.AuthIdentityRepository = (*GormAuthIdentityRepository)(nil)
