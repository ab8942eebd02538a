package identity

import (
	"time"

	appcustomer "github.com/lumiera/backend/internal/application/customer"
)

// LoginRequest represents an email/password login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=1,max=72"`
}

// RefreshRequest represents a token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LoginResponse carries the token pair and the authenticated customer
type LoginResponse struct {
	AccessToken           string                       `json:"access_token"`
	RefreshToken          string                       `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time                    `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time                    `json:"refresh_token_expires_at"`
	TokenType             string                       `json:"token_type"`
	Customer              appcustomer.CustomerResponse `json:"customer"`
}
