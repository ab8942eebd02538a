package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	newsletterapp "github.com/lumiera/backend/internal/application/newsletter"
	"github.com/lumiera/backend/internal/interfaces/http/middleware"
)

// NewsletterHandler handles newsletter subscription endpoints
type NewsletterHandler struct {
	BaseHandler
	newsletterService *newsletterapp.NewsletterService
}

// NewNewsletterHandler creates a new NewsletterHandler
func NewNewsletterHandler(newsletterService *newsletterapp.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterService: newsletterService,
	}
}

// Subscribe handles POST /store/newsletter
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req newsletterapp.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			middleware.HandleValidationError(c, err)
			return
		}
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.newsletterService.Subscribe(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Unsubscribe handles DELETE /store/newsletter
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req newsletterapp.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			middleware.HandleValidationError(c, err)
			return
		}
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.newsletterService.Unsubscribe(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
