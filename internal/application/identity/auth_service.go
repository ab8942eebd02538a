package identity

import (
	"context"
	"errors"

	appcustomer "github.com/lumiera/backend/internal/application/customer"
	"github.com/lumiera/backend/internal/domain/customer"
	"github.com/lumiera/backend/internal/domain/identity"
	"github.com/lumiera/backend/internal/domain/shared"
	"github.com/lumiera/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles storefront authentication
type AuthService struct {
	identityRepo identity.AuthIdentityRepository
	customerRepo customer.CustomerRepository
	jwtService   *auth.JWTService
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	identityRepo identity.AuthIdentityRepository,
	customerRepo customer.CustomerRepository,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		identityRepo: identityRepo,
		customerRepo: customerRepo,
		jwtService:   jwtService,
		logger:       logger,
	}
}

// Login authenticates a customer with email and password and returns tokens
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email, err := customer.NormalizeEmail(req.Email)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	authIdentity, err := s.identityRepo.FindByProviderEntity(ctx, identity.ProviderEmailPassword, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("Login attempt for unknown email", zap.String("email", email))
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}

	if !authIdentity.VerifyPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if authIdentity.CustomerID == nil {
		s.logger.Error("Auth identity has no linked customer", zap.String("entity_id", email))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Account is not linked to a customer")
	}

	c, err := s.customerRepo.FindByID(ctx, *authIdentity.CustomerID)
	if err != nil {
		s.logger.Error("Failed to load customer for login",
			zap.String("customer_id", authIdentity.CustomerID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load customer")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		CustomerID: c.ID,
		Email:      c.Email,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	authIdentity.RecordLogin()
	if err := s.identityRepo.Save(ctx, authIdentity); err != nil {
		// Don't fail the login - just log the error
		s.logger.Error("Failed to record login time", zap.Error(err))
	}

	s.logger.Info("Customer logged in", zap.String("customer_id", c.ID.String()))

	return &LoginResponse{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		Customer:              appcustomer.ToCustomerResponse(c),
	}, nil
}

// Refresh exchanges a refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*LoginResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Invalid or expired refresh token")
	}

	customerID, err := claims.GetCustomerUUID()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Invalid refresh token claims")
	}

	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Customer no longer exists")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		CustomerID: c.ID,
		Email:      c.Email,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	return &LoginResponse{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		Customer:              appcustomer.ToCustomerResponse(c),
	}, nil
}
