package promotion

import (
	"context"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/promotion"
	"github.com/lumiera/backend/internal/domain/shared"
)

// QueryService serves promotion reads for the admin surface. Welcome
// promotions are created by the event pipeline; the admin API only
// inspects them.
type QueryService struct {
	repo promotion.PromotionRepository
}

// NewQueryService creates a new QueryService
func NewQueryService(repo promotion.PromotionRepository) *QueryService {
	return &QueryService{repo: repo}
}

// GetByID retrieves a promotion by ID
func (s *QueryService) GetByID(ctx context.Context, id uuid.UUID) (*PromotionResponse, error) {
	promo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToPromotionResponse(promo)
	return &response, nil
}

// GetByCode retrieves a promotion by its code
func (s *QueryService) GetByCode(ctx context.Context, code string) (*PromotionResponse, error) {
	promo, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := ToPromotionResponse(promo)
	return &response, nil
}

// List retrieves promotions matching the filter
func (s *QueryService) List(ctx context.Context, filter PromotionListFilter) ([]PromotionResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize
	domainFilter.Search = filter.Search
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	if filter.TargetType != "" {
		domainFilter.Filters["target_type"] = filter.TargetType
	}
	if filter.ActiveOnly {
		domainFilter.Filters["active"] = true
	}

	promos, err := s.repo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PromotionResponse, 0, len(promos))
	for i := range promos {
		responses = append(responses, ToPromotionResponse(&promos[i]))
	}
	return responses, total, nil
}
