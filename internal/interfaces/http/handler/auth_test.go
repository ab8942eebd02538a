package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	identityapp "github.com/lumiera/backend/internal/application/identity"
	"github.com/lumiera/backend/internal/domain/customer"
	"github.com/lumiera/backend/internal/domain/identity"
	"github.com/lumiera/backend/internal/domain/shared"
	"github.com/lumiera/backend/internal/infrastructure/auth"
	"github.com/lumiera/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLoginRouter(customerRepo *MockCustomerRepository, identityRepo *MockAuthIdentityRepository) *gin.Engine {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "handler-test-secret",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "lumiera-test",
	})
	service := identityapp.NewAuthService(identityRepo, customerRepo, jwtService, zap.NewNop())
	h := NewAuthHandler(service)

	router := gin.New()
	router.POST("/auth/customer/emailpass", h.Login)
	router.POST("/auth/customer/refresh", h.Refresh)
	return router
}

func TestAuthHandler_Login(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	identityRepo := new(MockAuthIdentityRepository)
	router := newLoginRouter(customerRepo, identityRepo)

	account, err := customer.NewRegisteredCustomer("jane@example.com", "Jane", "", "")
	require.NoError(t, err)

	authIdentity, err := identity.NewEmailPasswordIdentity("jane@example.com", "supersecret", account.ID)
	require.NoError(t, err)

	identityRepo.On("FindByProviderEntity", mock.Anything, identity.ProviderEmailPassword, "jane@example.com").
		Return(authIdentity, nil)
	customerRepo.On("FindByID", mock.Anything, account.ID).Return(account, nil)
	identityRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	w := performJSON(t, router, "POST", "/auth/customer/emailpass", gin.H{
		"email":    "Jane@Example.com",
		"password": "supersecret",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")
	assert.Contains(t, w.Body.String(), "refresh_token")
	assert.Contains(t, w.Body.String(), `"email":"jane@example.com"`)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	identityRepo := new(MockAuthIdentityRepository)
	router := newLoginRouter(customerRepo, identityRepo)

	correct, err := identity.NewEmailPasswordIdentity("jane@example.com", "supersecret", uuid.New())
	require.NoError(t, err)

	identityRepo.On("FindByProviderEntity", mock.Anything, identity.ProviderEmailPassword, "jane@example.com").
		Return(correct, nil)

	w := performJSON(t, router, "POST", "/auth/customer/emailpass", gin.H{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	identityRepo := new(MockAuthIdentityRepository)
	router := newLoginRouter(customerRepo, identityRepo)

	identityRepo.On("FindByProviderEntity", mock.Anything, identity.ProviderEmailPassword, "nobody@example.com").
		Return(nil, shared.ErrNotFound)

	w := performJSON(t, router, "POST", "/auth/customer/emailpass", gin.H{
		"email":    "nobody@example.com",
		"password": "whatever1",
	})

	// Unknown email and wrong password are indistinguishable to the caller
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestAuthHandler_Refresh_InvalidToken(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	identityRepo := new(MockAuthIdentityRepository)
	router := newLoginRouter(customerRepo, identityRepo)

	w := performJSON(t, router, "POST", "/auth/customer/refresh", gin.H{
		"refresh_token": "not-a-valid-token",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
