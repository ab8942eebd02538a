package welcome

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/customer"
	"github.com/lumiera/backend/internal/domain/notification"
	"github.com/lumiera/backend/internal/domain/promotion"
	"github.com/lumiera/backend/internal/domain/shared"
	"github.com/lumiera/backend/internal/infrastructure/cache"
	"github.com/lumiera/backend/internal/infrastructure/config"
	"github.com/lumiera/backend/internal/infrastructure/event"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// Mocks
// =============================================================================

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

type MockPromotionRepository struct {
	mock.Mock
}

func (m *MockPromotionRepository) FindByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promotion.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) FindByCode(ctx context.Context, code string) (*promotion.Promotion, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*promotion.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]promotion.Promotion, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]promotion.Promotion), args.Error(1)
}

func (m *MockPromotionRepository) Save(ctx context.Context, p *promotion.Promotion) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPromotionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPromotionRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]notification.Notification, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByRecipient(ctx context.Context, to string, filter shared.Filter) ([]notification.Notification, error) {
	args := m.Called(ctx, to, filter)
	return args.Get(0).([]notification.Notification), args.Error(1)
}

func (m *MockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) SendEmail(ctx context.Context, email notification.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// =============================================================================
// Tests
// =============================================================================

var welcomeCodePattern = regexp.MustCompile(`^WELCOME-[0-9A-F]{6}$`)

func newTestWelcomeService(
	customerRepo *MockCustomerRepository,
	promotionRepo *MockPromotionRepository,
	notificationRepo *MockNotificationRepository,
	dispatcher *MockDispatcher,
) *WelcomeService {
	cfg := config.WelcomeConfig{DiscountPercent: 15, ValidityDays: 30}
	return NewWelcomeService(customerRepo, promotionRepo, notificationRepo, dispatcher, cfg, zap.NewNop())
}

func TestWelcomeService_IssueWelcomePackage(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	promotionRepo := new(MockPromotionRepository)
	notificationRepo := new(MockNotificationRepository)
	dispatcher := new(MockDispatcher)
	service := newTestWelcomeService(customerRepo, promotionRepo, notificationRepo, dispatcher)

	c, _ := customer.NewRegisteredCustomer("jane@example.com", "Jane", "Doe", "")
	customerRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)

	promotionRepo.On("Save", mock.Anything, mock.MatchedBy(func(p *promotion.Promotion) bool {
		return welcomeCodePattern.MatchString(p.Code) &&
			p.MethodType == promotion.MethodTypePercentage &&
			p.Value.Equal(decimal.NewFromInt(15)) &&
			p.TargetType == promotion.TargetTypeOrder &&
			p.EndsAt != nil &&
			p.EndsAt.After(time.Now().AddDate(0, 0, 29))
	})).Return(nil)

	dispatcher.On("SendEmail", mock.Anything, mock.MatchedBy(func(email notification.Email) bool {
		code, hasCode := email.Data["discountCode"].(string)
		_, hasValidUntil := email.Data["validUntil"]
		return email.To == "jane@example.com" &&
			email.Template == notification.TemplateCustomerCreated &&
			email.Data["first_name"] == "Jane" &&
			email.Data["last_name"] == "Doe" &&
			hasCode && welcomeCodePattern.MatchString(code) &&
			hasValidUntil
	})).Return(nil)

	notificationRepo.On("Save", mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Status == notification.StatusSent && n.To == "jane@example.com"
	})).Return(nil)

	err := service.IssueWelcomePackage(context.Background(), c.ID)

	require.NoError(t, err)
	promotionRepo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
}

func TestWelcomeService_IssueWelcomePackage_CustomerMissing(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	promotionRepo := new(MockPromotionRepository)
	notificationRepo := new(MockNotificationRepository)
	dispatcher := new(MockDispatcher)
	service := newTestWelcomeService(customerRepo, promotionRepo, notificationRepo, dispatcher)

	id := uuid.New()
	customerRepo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

	err := service.IssueWelcomePackage(context.Background(), id)

	require.NoError(t, err)
	promotionRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	dispatcher.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
}

func TestWelcomeService_PromotionFailureStillSendsEmail(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	promotionRepo := new(MockPromotionRepository)
	notificationRepo := new(MockNotificationRepository)
	dispatcher := new(MockDispatcher)
	service := newTestWelcomeService(customerRepo, promotionRepo, notificationRepo, dispatcher)

	c, _ := customer.NewRegisteredCustomer("jane@example.com", "Jane", "Doe", "")
	customerRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
	promotionRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	// Email still goes out, just without a discount code
	dispatcher.On("SendEmail", mock.Anything, mock.MatchedBy(func(email notification.Email) bool {
		_, hasCode := email.Data["discountCode"]
		_, hasValidUntil := email.Data["validUntil"]
		return email.To == "jane@example.com" && !hasCode && !hasValidUntil
	})).Return(nil)
	notificationRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	err := service.IssueWelcomePackage(context.Background(), c.ID)

	require.NoError(t, err)
	dispatcher.AssertExpectations(t)
}

func TestWelcomeService_EmailFailureIsSwallowed(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	promotionRepo := new(MockPromotionRepository)
	notificationRepo := new(MockNotificationRepository)
	dispatcher := new(MockDispatcher)
	service := newTestWelcomeService(customerRepo, promotionRepo, notificationRepo, dispatcher)

	c, _ := customer.NewRegisteredCustomer("jane@example.com", "Jane", "Doe", "")
	customerRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
	promotionRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	dispatcher.On("SendEmail", mock.Anything, mock.Anything).Return(errors.New("provider timeout"))

	notificationRepo.On("Save", mock.Anything, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Status == notification.StatusFailed && n.Error == "provider timeout"
	})).Return(nil)

	err := service.IssueWelcomePackage(context.Background(), c.ID)

	require.NoError(t, err)
	notificationRepo.AssertExpectations(t)
}

func TestWelcomeService_OpenEndedValidity(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	promotionRepo := new(MockPromotionRepository)
	notificationRepo := new(MockNotificationRepository)
	dispatcher := new(MockDispatcher)
	cfg := config.WelcomeConfig{DiscountPercent: 15, ValidityDays: 0}
	service := NewWelcomeService(customerRepo, promotionRepo, notificationRepo, dispatcher, cfg, zap.NewNop())

	c, _ := customer.NewRegisteredCustomer("jane@example.com", "Jane", "Doe", "")
	customerRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil)
	promotionRepo.On("Save", mock.Anything, mock.MatchedBy(func(p *promotion.Promotion) bool {
		return p.EndsAt == nil
	})).Return(nil)
	dispatcher.On("SendEmail", mock.Anything, mock.MatchedBy(func(email notification.Email) bool {
		_, hasValidUntil := email.Data["validUntil"]
		_, hasCode := email.Data["discountCode"]
		return hasCode && !hasValidUntil
	})).Return(nil)
	notificationRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	err := service.IssueWelcomePackage(context.Background(), c.ID)

	require.NoError(t, err)
	promotionRepo.AssertExpectations(t)
}

// =============================================================================
// Handlers
// =============================================================================

func TestCustomerCreatedHandler_DuplicateDelivery(t *testing.T) {
	customerRepo := new(MockCustomerRepository)
	promotionRepo := new(MockPromotionRepository)
	notificationRepo := new(MockNotificationRepository)
	dispatcher := new(MockDispatcher)
	service := newTestWelcomeService(customerRepo, promotionRepo, notificationRepo, dispatcher)

	c, _ := customer.NewRegisteredCustomer("jane@example.com", "Jane", "Doe", "")
	customerRepo.On("FindByID", mock.Anything, c.ID).Return(c, nil).Once()
	promotionRepo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	dispatcher.On("SendEmail", mock.Anything, mock.Anything).Return(nil).Once()
	notificationRepo.On("Save", mock.Anything, mock.Anything).Return(nil).Once()

	store := cache.NewInMemoryIdempotencyStore()
	defer store.Close()

	handler := event.NewIdempotentHandler(
		NewCustomerCreatedHandler(service, zap.NewNop()),
		store,
		zap.NewNop(),
	)

	evt := customer.NewCustomerCreatedEvent(c)

	// Same event delivered twice only issues one welcome package
	require.NoError(t, handler.Handle(context.Background(), evt))
	require.NoError(t, handler.Handle(context.Background(), evt))

	customerRepo.AssertNumberOfCalls(t, "FindByID", 1)
	promotionRepo.AssertNumberOfCalls(t, "Save", 1)
	dispatcher.AssertNumberOfCalls(t, "SendEmail", 1)
}

func TestCustomerCreatedHandler_EventTypes(t *testing.T) {
	handler := NewCustomerCreatedHandler(nil, zap.NewNop())
	assert.Equal(t, []string{customer.EventTypeCustomerCreated}, handler.EventTypes())
}
