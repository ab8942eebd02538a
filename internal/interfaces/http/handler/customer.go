package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	customerapp "github.com/lumiera/backend/internal/application/customer"
	"github.com/lumiera/backend/internal/interfaces/http/middleware"
)

// CustomerHandler handles storefront and admin customer endpoints
type CustomerHandler struct {
	BaseHandler
	registrationService *customerapp.RegistrationService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(registrationService *customerapp.RegistrationService) *CustomerHandler {
	return &CustomerHandler{
		registrationService: registrationService,
	}
}

// Register handles POST /store/customers. A guest customer left behind by
// checkout is upgraded in place; an email that already has credentials is
// rejected with 422.
func (h *CustomerHandler) Register(c *gin.Context) {
	var req customerapp.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			middleware.HandleValidationError(c, err)
			return
		}
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.registrationService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	// Both the fresh-registration and guest-upgrade outcomes answer 200;
	// storefront clients treat the response as the current customer state.
	h.Success(c, resp)
}

// CheckEmail handles POST /store/customers/check-email
func (h *CustomerHandler) CheckEmail(c *gin.Context) {
	var req customerapp.CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			middleware.HandleValidationError(c, err)
			return
		}
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.registrationService.CheckEmail(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Me handles GET /store/customers/me for the authenticated customer
func (h *CustomerHandler) Me(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	resp, err := h.registrationService.GetByID(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateMe handles POST /store/customers/me profile updates
func (h *CustomerHandler) UpdateMe(c *gin.Context) {
	customerID, err := getCustomerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req customerapp.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			middleware.HandleValidationError(c, err)
			return
		}
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.registrationService.Update(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /admin/customers
func (h *CustomerHandler) List(c *gin.Context) {
	filter := customerapp.CustomerListFilter{Page: 1, PageSize: 20}
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customers, total, err := h.registrationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, customers, total, filter.Page, filter.PageSize)
}

// Get handles GET /admin/customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	resp, err := h.registrationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /admin/customers/:id. Linked credentials are cleaned
// up asynchronously by the CustomerDeleted subscriber.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.registrationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
