package newsletter

import (
	"context"
	"testing"

	"github.com/lumiera/backend/internal/domain/notification"
	"github.com/lumiera/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockNewsletterRepository struct {
	mock.Mock
}

func (m *MockNewsletterRepository) FindByEmail(ctx context.Context, email string) (*notification.NewsletterSubscription, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.NewsletterSubscription), args.Error(1)
}

func (m *MockNewsletterRepository) Save(ctx context.Context, sub *notification.NewsletterSubscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func TestNewsletterService_Subscribe_New(t *testing.T) {
	repo := new(MockNewsletterRepository)
	service := NewNewsletterService(repo, zap.NewNop())

	repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, shared.ErrNotFound)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(sub *notification.NewsletterSubscription) bool {
		return sub.Email == "new@example.com" && sub.Subscribed
	})).Return(nil)

	resp, err := service.Subscribe(context.Background(), SubscribeRequest{Email: "New@Example.com"})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", resp.Email)
	assert.True(t, resp.Subscribed)
	repo.AssertExpectations(t)
}

func TestNewsletterService_Subscribe_AlreadySubscribed(t *testing.T) {
	repo := new(MockNewsletterRepository)
	service := NewNewsletterService(repo, zap.NewNop())

	existing, err := notification.NewNewsletterSubscription("jane@example.com")
	require.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "jane@example.com").Return(existing, nil)

	resp, err := service.Subscribe(context.Background(), SubscribeRequest{Email: "jane@example.com"})

	require.NoError(t, err)
	assert.True(t, resp.Subscribed)
	// No write for an already-active subscription
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestNewsletterService_Subscribe_Reactivates(t *testing.T) {
	repo := new(MockNewsletterRepository)
	service := NewNewsletterService(repo, zap.NewNop())

	existing, err := notification.NewNewsletterSubscription("back@example.com")
	require.NoError(t, err)
	existing.Unsubscribe()

	repo.On("FindByEmail", mock.Anything, "back@example.com").Return(existing, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(sub *notification.NewsletterSubscription) bool {
		return sub.Subscribed && sub.UnsubscribedAt == nil
	})).Return(nil)

	resp, err := service.Subscribe(context.Background(), SubscribeRequest{Email: "back@example.com"})

	require.NoError(t, err)
	assert.True(t, resp.Subscribed)
	repo.AssertExpectations(t)
}

func TestNewsletterService_Subscribe_InvalidEmail(t *testing.T) {
	repo := new(MockNewsletterRepository)
	service := NewNewsletterService(repo, zap.NewNop())

	repo.On("FindByEmail", mock.Anything, "not-an-email").Return(nil, shared.ErrNotFound)

	_, err := service.Subscribe(context.Background(), SubscribeRequest{Email: "not-an-email"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_EMAIL", domainErr.Code)
}

func TestNewsletterService_Unsubscribe(t *testing.T) {
	repo := new(MockNewsletterRepository)
	service := NewNewsletterService(repo, zap.NewNop())

	existing, err := notification.NewNewsletterSubscription("gone@example.com")
	require.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "gone@example.com").Return(existing, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(sub *notification.NewsletterSubscription) bool {
		return !sub.Subscribed && sub.UnsubscribedAt != nil
	})).Return(nil)

	resp, err := service.Unsubscribe(context.Background(), SubscribeRequest{Email: "gone@example.com"})

	require.NoError(t, err)
	assert.False(t, resp.Subscribed)
	repo.AssertExpectations(t)
}

func TestNewsletterService_Unsubscribe_Unknown(t *testing.T) {
	repo := new(MockNewsletterRepository)
	service := NewNewsletterService(repo, zap.NewNop())

	repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, shared.ErrNotFound)

	resp, err := service.Unsubscribe(context.Background(), SubscribeRequest{Email: "nobody@example.com"})

	require.NoError(t, err)
	assert.False(t, resp.Subscribed)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
