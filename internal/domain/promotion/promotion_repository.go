package promotion

import (
	"context"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/shared"
)

// PromotionRepository defines the interface for promotion persistence
type PromotionRepository interface {
	// FindByID finds a promotion by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Promotion, error)

	// FindByCode finds a promotion by its code
	FindByCode(ctx context.Context, code string) (*Promotion, error)

	// FindAll finds all promotions matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Promotion, error)

	// Save creates or updates a promotion
	Save(ctx context.Context, promo *Promotion) error

	// Delete deletes a promotion
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts promotions matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByCode checks if a promotion with the given code exists
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
