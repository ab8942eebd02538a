package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmailPasswordIdentity(t *testing.T) {
	customerID := uuid.New()

	t.Run("creates identity successfully", func(t *testing.T) {
		identity, err := NewEmailPasswordIdentity("jane@example.com", "supersecret", customerID)

		require.NoError(t, err)
		assert.Equal(t, ProviderEmailPassword, identity.ProviderID)
		assert.Equal(t, "jane@example.com", identity.EntityID)
		assert.NotEmpty(t, identity.PasswordHash)
		assert.NotEqual(t, "supersecret", identity.PasswordHash)
		assert.True(t, identity.BelongsTo(customerID))
		assert.Len(t, identity.GetDomainEvents(), 1)
	})

	t.Run("lowercases the entity ID", func(t *testing.T) {
		identity, err := NewEmailPasswordIdentity("Jane@Example.COM", "supersecret", customerID)

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", identity.EntityID)
	})

	t.Run("fails with empty email", func(t *testing.T) {
		identity, err := NewEmailPasswordIdentity("", "supersecret", customerID)

		assert.Error(t, err)
		assert.Nil(t, identity)
	})

	t.Run("fails with short password", func(t *testing.T) {
		identity, err := NewEmailPasswordIdentity("jane@example.com", "short", customerID)

		assert.Error(t, err)
		assert.Nil(t, identity)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})
}

func TestAuthIdentityVerifyPassword(t *testing.T) {
	identity, err := NewEmailPasswordIdentity("jane@example.com", "supersecret", uuid.New())
	require.NoError(t, err)

	assert.True(t, identity.VerifyPassword("supersecret"))
	assert.False(t, identity.VerifyPassword("wrongpassword"))
	assert.False(t, identity.VerifyPassword(""))
}

func TestAuthIdentityChangePassword(t *testing.T) {
	identity, err := NewEmailPasswordIdentity("jane@example.com", "supersecret", uuid.New())
	require.NoError(t, err)

	t.Run("changes password successfully", func(t *testing.T) {
		err := identity.ChangePassword("newsecret123")

		require.NoError(t, err)
		assert.True(t, identity.VerifyPassword("newsecret123"))
		assert.False(t, identity.VerifyPassword("supersecret"))
	})

	t.Run("fails with short password", func(t *testing.T) {
		err := identity.ChangePassword("tiny")

		assert.Error(t, err)
		assert.True(t, identity.VerifyPassword("newsecret123"))
	})
}

func TestAuthIdentityRecordLogin(t *testing.T) {
	identity, err := NewEmailPasswordIdentity("jane@example.com", "supersecret", uuid.New())
	require.NoError(t, err)
	assert.Nil(t, identity.LastLoginAt)

	identity.RecordLogin()

	require.NotNil(t, identity.LastLoginAt)
}
