package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
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

// =============================================================================
// Mocks
// =============================================================================

type MockAuthIdentityRepository struct {
	mock.Mock
}

func (m *MockAuthIdentityRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.AuthIdentity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.AuthIdentity), args.Error(1)
}

func (m *MockAuthIdentityRepository) FindByProviderEntity(ctx context.Context, providerID, entityID string) (*identity.AuthIdentity, error) {
	args := m.Called(ctx, providerID, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.AuthIdentity), args.Error(1)
}

func (m *MockAuthIdentityRepository) ListByEntityID(ctx context.Context, entityID string) ([]identity.AuthIdentity, error) {
	args := m.Called(ctx, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.AuthIdentity), args.Error(1)
}

func (m *MockAuthIdentityRepository) ListByCustomerID(ctx context.Context, customerID uuid.UUID) ([]identity.AuthIdentity, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.AuthIdentity), args.Error(1)
}

func (m *MockAuthIdentityRepository) Save(ctx context.Context, i *identity.AuthIdentity) error {
	args := m.Called(ctx, i)
	return args.Error(0)
}

func (m *MockAuthIdentityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAuthIdentityRepository) DeleteByCustomerID(ctx context.Context, customerID uuid.UUID) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]customer.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// =============================================================================
// Tests
// =============================================================================

func newTestAuthService(identityRepo *MockAuthIdentityRepository, customerRepo *MockCustomerRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
	})
	return NewAuthService(identityRepo, customerRepo, jwtService, zap.NewNop())
}

func TestAuthService_Login_Success(t *testing.T) {
	identityRepo := new(MockAuthIdentityRepository)
	customerRepo := new(MockCustomerRepository)
	service := newTestAuthService(identityRepo, customerRepo)

	c, _ := customer.NewRegisteredCustomer("jane@example.com", "Jane", "Doe", "")
	authIdentity, _ := identity.NewEmailPasswordIdentity("jane@example.com", "supersecret", c.ID)

	identityRepo.On("FindByProviderEntity", mock.Anything, identity.ProviderEmailPassword, "jane@example.com").Return(authIdentity, nil)
	customerRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
	identityRepo.On("Save", mock.Anything, authIdentity).Return(nil)

	resp, err := service.Login(context.Background(), LoginRequest{
		Email:    "Jane@Example.COM",
		Password: "supersecret",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, c.ID, resp.Customer.ID)
	require.NotNil(t, authIdentity.LastLoginAt)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	identityRepo := new(MockAuthIdentityRepository)
	service := newTestAuthService(identityRepo, new(MockCustomerRepository))

	identityRepo.On("FindByProviderEntity", mock.Anything, identity.ProviderEmailPassword, "nobody@example.com").Return(nil, shared.ErrNotFound)

	resp, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "supersecret",
	})

	assert.Nil(t, resp)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	identityRepo := new(MockAuthIdentityRepository)
	service := newTestAuthService(identityRepo, new(MockCustomerRepository))

	authIdentity, _ := identity.NewEmailPasswordIdentity("jane@example.com", "supersecret", uuid.New())
	identityRepo.On("FindByProviderEntity", mock.Anything, identity.ProviderEmailPassword, "jane@example.com").Return(authIdentity, nil)

	resp, err := service.Login(context.Background(), LoginRequest{
		Email:    "jane@example.com",
		Password: "wrongpassword",
	})

	assert.Nil(t, resp)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	identityRepo := new(MockAuthIdentityRepository)
	customerRepo := new(MockCustomerRepository)
	service := newTestAuthService(identityRepo, customerRepo)

	c, _ := customer.NewRegisteredCustomer("jane@example.com", "Jane", "Doe", "")
	authIdentity, _ := identity.NewEmailPasswordIdentity("jane@example.com", "supersecret", c.ID)

	identityRepo.On("FindByProviderEntity", mock.Anything, identity.ProviderEmailPassword, "jane@example.com").Return(authIdentity, nil)
	customerRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
	identityRepo.On("Save", mock.Anything, authIdentity).Return(nil)

	login, err := service.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "supersecret"})
	require.NoError(t, err)

	refreshed, err := service.Refresh(context.Background(), RefreshRequest{RefreshToken: login.RefreshToken})

	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, c.ID, refreshed.Customer.ID)
}

func TestAuthService_Refresh_InvalidToken(t *testing.T) {
	service := newTestAuthService(new(MockAuthIdentityRepository), new(MockCustomerRepository))

	resp, err := service.Refresh(context.Background(), RefreshRequest{RefreshToken: "garbage"})

	assert.Nil(t, resp)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_TOKEN", domainErr.Code)
}
