package notification

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/notification"
	"github.com/lumiera/backend/internal/domain/shared"
)

// LogService serves the persisted notification log for the admin surface
type LogService struct {
	repo notification.NotificationRepository
}

// NewLogService creates a new LogService
func NewLogService(repo notification.NotificationRepository) *LogService {
	return &LogService{repo: repo}
}

// GetByID retrieves a notification record by ID
func (s *LogService) GetByID(ctx context.Context, id uuid.UUID) (*NotificationResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToNotificationResponse(n)
	return &response, nil
}

// List retrieves notification records matching the filter
func (s *LogService) List(ctx context.Context, filter NotificationListFilter) ([]NotificationResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Template != "" {
		domainFilter.Filters["template"] = filter.Template
	}

	var (
		records []notification.Notification
		err     error
	)
	if filter.To != "" {
		records, err = s.repo.FindByRecipient(ctx, strings.ToLower(filter.To), domainFilter)
	} else {
		records, err = s.repo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	if filter.To != "" {
		domainFilter.Filters["to"] = strings.ToLower(filter.To)
	}
	total, err := s.repo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]NotificationResponse, 0, len(records))
	for i := range records {
		responses = append(responses, ToNotificationResponse(&records[i]))
	}
	return responses, total, nil
}
