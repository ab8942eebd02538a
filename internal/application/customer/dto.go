package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/customer"
)

// RegisterCustomerRequest represents a storefront account registration
type RegisterCustomerRequest struct {
	Email     string `json:"email" binding:"required,email,max=200"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	FirstName string `json:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
	Phone     string `json:"phone" binding:"omitempty,phone,max=50"`
}

// UpdateCustomerRequest represents a profile update
type UpdateCustomerRequest struct {
	FirstName   *string `json:"first_name" binding:"omitempty,max=100"`
	LastName    *string `json:"last_name" binding:"omitempty,max=100"`
	Phone       *string `json:"phone" binding:"omitempty,phone,max=50"`
	CompanyName *string `json:"company_name" binding:"omitempty,max=200"`
}

// CheckEmailRequest represents an email availability check
type CheckEmailRequest struct {
	Email string `json:"email" binding:"required,email,max=200"`
}

// CheckEmailResponse reports whether credentials exist for an email
type CheckEmailResponse struct {
	Email        string `json:"email"`
	IsRegistered bool   `json:"is_registered"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	CompanyName string    `json:"company_name"`
	HasAccount  bool      `json:"has_account"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CustomerListFilter represents filter options for the admin customer list
type CustomerListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToCustomerResponse converts a domain customer to its API representation
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Email:       c.Email,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Phone:       c.Phone,
		CompanyName: c.CompanyName,
		HasAccount:  c.HasAccount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
