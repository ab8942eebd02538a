package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	notificationapp "github.com/lumiera/backend/internal/application/notification"
)

// NotificationHandler handles admin notification log endpoints
type NotificationHandler struct {
	BaseHandler
	logService *notificationapp.LogService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(logService *notificationapp.LogService) *NotificationHandler {
	return &NotificationHandler{
		logService: logService,
	}
}

// List handles GET /admin/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	filter := notificationapp.NotificationListFilter{Page: 1, PageSize: 20}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	notifications, total, err := h.logService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, notifications, total, filter.Page, filter.PageSize)
}

// Get handles GET /admin/notifications/:id
func (h *NotificationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid notification ID")
		return
	}

	resp, err := h.logService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
