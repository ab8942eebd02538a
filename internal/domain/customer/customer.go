package customer

import (
	"regexp"
	"strings"
	"time"

	"github.com/lumiera/backend/internal/domain/shared"
)

// Customer represents a storefront customer.
// It is the aggregate root for customer-related operations. A customer may
// exist as a guest (created during checkout, no credentials) or hold a full
// account once an email/password identity has been registered for it.
type Customer struct {
	shared.BaseAggregateRoot
	Email       string
	FirstName   string
	LastName    string
	Phone       string
	CompanyName string
	HasAccount  bool
	Metadata    string // Custom attributes as a JSON document
}

// NewGuestCustomer creates a customer without an account, as produced by a
// guest checkout flow.
func NewGuestCustomer(email, firstName, lastName, phone string) (*Customer, error) {
	return newCustomer(email, firstName, lastName, phone, false)
}

// NewRegisteredCustomer creates a customer that already holds an account.
func NewRegisteredCustomer(email, firstName, lastName, phone string) (*Customer, error) {
	return newCustomer(email, firstName, lastName, phone, true)
}

func newCustomer(email, firstName, lastName, phone string, hasAccount bool) (*Customer, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := validateName(firstName); err != nil {
		return nil, err
	}
	if err := validateName(lastName); err != nil {
		return nil, err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return nil, err
		}
	}

	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             normalized,
		FirstName:         firstName,
		LastName:          lastName,
		Phone:             phone,
		HasAccount:        hasAccount,
		Metadata:          "{}",
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// ClaimAccount marks a guest customer as holding a full account. It is called
// after credentials have been registered for the customer's email.
func (c *Customer) ClaimAccount() error {
	if c.HasAccount {
		return shared.NewDomainError("ALREADY_HAS_ACCOUNT", "Customer already has an account")
	}

	c.HasAccount = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerAccountClaimedEvent(c))

	return nil
}

// Update updates the customer's profile information
func (c *Customer) Update(firstName, lastName, phone, companyName string) error {
	if err := validateName(firstName); err != nil {
		return err
	}
	if err := validateName(lastName); err != nil {
		return err
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if companyName != "" && len(companyName) > 200 {
		return shared.NewDomainError("INVALID_COMPANY_NAME", "Company name cannot exceed 200 characters")
	}

	c.FirstName = firstName
	c.LastName = lastName
	c.Phone = phone
	c.CompanyName = companyName
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerUpdatedEvent(c))

	return nil
}

// SetMetadata sets custom attributes as JSON
func (c *Customer) SetMetadata(metadata string) error {
	if metadata == "" {
		metadata = "{}"
	}
	trimmed := strings.TrimSpace(metadata)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return shared.NewDomainError("INVALID_METADATA", "Metadata must be a valid JSON object")
	}

	c.Metadata = trimmed
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// MarkDeleted records the deletion event before the aggregate is removed
func (c *Customer) MarkDeleted() {
	c.AddDomainEvent(NewCustomerDeletedEvent(c))
}

// IsGuest returns true if the customer has no account
func (c *Customer) IsGuest() bool {
	return !c.HasAccount
}

// FullName returns the customer's display name
func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Validation functions

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail validates an email address and returns it lowercased.
// All lookups and persistence use the lowercased form so that case variants
// of the same address resolve to the same customer.
func NormalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return "", shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return "", shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return strings.ToLower(email), nil
}

func validateName(name string) error {
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 100 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone number cannot exceed 50 characters")
	}
	validPhone := regexp.MustCompile(`^[\d\s\-\(\)\+]+$`)
	if !validPhone.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone number format")
	}
	return nil
}
