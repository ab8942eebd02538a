package notification

import (
	"time"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/notification"
)

// NotificationResponse represents a notification record in API responses
type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	To        string     `json:"to"`
	Channel   string     `json:"channel"`
	Template  string     `json:"template"`
	Data      string     `json:"data"`
	Status    string     `json:"status"`
	Error     string     `json:"error,omitempty"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NotificationListFilter represents filter options for the admin notification log
type NotificationListFilter struct {
	To       string `form:"to" binding:"omitempty,email"`
	Status   string `form:"status" binding:"omitempty,oneof=pending sent failed"`
	Template string `form:"template"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToNotificationResponse converts a domain notification to its API representation
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		To:        n.To,
		Channel:   string(n.Channel),
		Template:  n.Template,
		Data:      n.Data,
		Status:    string(n.Status),
		Error:     n.Error,
		SentAt:    n.SentAt,
		CreatedAt: n.CreatedAt,
	}
}
