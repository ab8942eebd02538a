package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// ProviderEmailPassword is the provider identifier for email/password credentials
const ProviderEmailPassword = "emailpass"

// Password cost for bcrypt
const bcryptCost = 12

// AuthIdentity represents a credential record tying an authentication provider
// to a customer. For the email/password provider the entity ID is the
// lowercased email address.
type AuthIdentity struct {
	shared.BaseAggregateRoot
	ProviderID   string
	EntityID     string
	PasswordHash string
	CustomerID   *uuid.UUID
	LastLoginAt  *time.Time
}

// NewEmailPasswordIdentity creates an email/password credential for a customer
func NewEmailPasswordIdentity(email, password string, customerID uuid.UUID) (*AuthIdentity, error) {
	entityID, err := normalizeEntityID(email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	identity := &AuthIdentity{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProviderID:        ProviderEmailPassword,
		EntityID:          entityID,
		PasswordHash:      passwordHash,
		CustomerID:        &customerID,
	}

	identity.AddDomainEvent(NewAuthIdentityCreatedEvent(identity))

	return identity, nil
}

// VerifyPassword checks the given password against the stored hash
func (i *AuthIdentity) VerifyPassword(password string) bool {
	if i.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(i.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored credential
func (i *AuthIdentity) ChangePassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	i.PasswordHash = passwordHash
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// RecordLogin records a successful login timestamp
func (i *AuthIdentity) RecordLogin() {
	now := time.Now()
	i.LastLoginAt = &now
	i.UpdatedAt = now
	i.IncrementVersion()
}

// BelongsTo returns true if the identity is linked to the given customer
func (i *AuthIdentity) BelongsTo(customerID uuid.UUID) bool {
	return i.CustomerID != nil && *i.CustomerID == customerID
}

func normalizeEntityID(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	return email, nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 72 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
