package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	promotionapp "github.com/lumiera/backend/internal/application/promotion"
)

// PromotionHandler handles admin promotion read endpoints
type PromotionHandler struct {
	BaseHandler
	queryService *promotionapp.QueryService
}

// NewPromotionHandler creates a new PromotionHandler
func NewPromotionHandler(queryService *promotionapp.QueryService) *PromotionHandler {
	return &PromotionHandler{
		queryService: queryService,
	}
}

// List handles GET /admin/promotions
func (h *PromotionHandler) List(c *gin.Context) {
	filter := promotionapp.PromotionListFilter{Page: 1, PageSize: 20}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	promotions, total, err := h.queryService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, promotions, total, filter.Page, filter.PageSize)
}

// Get handles GET /admin/promotions/:id
func (h *PromotionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid promotion ID")
		return
	}

	resp, err := h.queryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetByCode handles GET /admin/promotions/code/:code
func (h *PromotionHandler) GetByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		h.BadRequest(c, "Promotion code is required")
		return
	}

	resp, err := h.queryService.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
