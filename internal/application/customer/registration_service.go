package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lumiera/backend/internal/domain/customer"
	"github.com/lumiera/backend/internal/domain/identity"
	"github.com/lumiera/backend/internal/domain/shared"
)

// ErrIdentityExists is returned when credentials are already registered for an email
var ErrIdentityExists = shared.NewDomainError("IDENTITY_EXISTS", "Identity with email already exists")

// RegistrationService handles storefront account registration. It reconciles
// three starting states for an email address: no customer, a guest customer
// left behind by checkout, and a customer that already holds an account.
type RegistrationService struct {
	customerRepo   customer.CustomerRepository
	identityRepo   identity.AuthIdentityRepository
	eventPublisher shared.EventPublisher
}

// NewRegistrationService creates a new RegistrationService
func NewRegistrationService(
	customerRepo customer.CustomerRepository,
	identityRepo identity.AuthIdentityRepository,
	eventPublisher shared.EventPublisher,
) *RegistrationService {
	return &RegistrationService{
		customerRepo:   customerRepo,
		identityRepo:   identityRepo,
		eventPublisher: eventPublisher,
	}
}

// Register registers an account for the given email. If a guest customer
// already exists for the email it is upgraded in place; if credentials
// already exist the registration is rejected.
func (s *RegistrationService) Register(ctx context.Context, req RegisterCustomerRequest) (*CustomerResponse, error) {
	email, err := customer.NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	// Credentials for this email, under any provider, block registration
	identities, err := s.identityRepo.ListByEntityID(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(identities) > 0 {
		return nil, ErrIdentityExists
	}

	existing, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if existing != nil {
		if existing.HasAccount {
			return nil, ErrIdentityExists
		}
		return s.upgradeGuest(ctx, existing, req)
	}

	return s.registerNew(ctx, email, req)
}

// upgradeGuest attaches credentials to a guest customer created during
// checkout and marks it as an account holder.
func (s *RegistrationService) upgradeGuest(ctx context.Context, existing *customer.Customer, req RegisterCustomerRequest) (*CustomerResponse, error) {
	authIdentity, err := identity.NewEmailPasswordIdentity(existing.Email, req.Password, existing.ID)
	if err != nil {
		return nil, err
	}
	if err := s.identityRepo.Save(ctx, authIdentity); err != nil {
		return nil, err
	}

	if req.FirstName != "" || req.LastName != "" || req.Phone != "" {
		firstName := existing.FirstName
		lastName := existing.LastName
		phone := existing.Phone
		if req.FirstName != "" {
			firstName = req.FirstName
		}
		if req.LastName != "" {
			lastName = req.LastName
		}
		if req.Phone != "" {
			phone = req.Phone
		}
		if err := existing.Update(firstName, lastName, phone, existing.CompanyName); err != nil {
			return nil, err
		}
	}

	if err := existing.ClaimAccount(); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, existing); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, existing)

	response := ToCustomerResponse(existing)
	return &response, nil
}

func (s *RegistrationService) registerNew(ctx context.Context, email string, req RegisterCustomerRequest) (*CustomerResponse, error) {
	newCustomer, err := customer.NewRegisteredCustomer(email, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, newCustomer); err != nil {
		return nil, err
	}

	authIdentity, err := identity.NewEmailPasswordIdentity(email, req.Password, newCustomer.ID)
	if err != nil {
		return nil, err
	}
	if err := s.identityRepo.Save(ctx, authIdentity); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, newCustomer)

	response := ToCustomerResponse(newCustomer)
	return &response, nil
}

// CheckEmail reports whether credentials are already registered for an email
func (s *RegistrationService) CheckEmail(ctx context.Context, req CheckEmailRequest) (*CheckEmailResponse, error) {
	email, err := customer.NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	identities, err := s.identityRepo.ListByEntityID(ctx, email)
	if err != nil {
		return nil, err
	}

	return &CheckEmailResponse{
		Email:        email,
		IsRegistered: len(identities) > 0,
	}, nil
}

// GetByID retrieves a customer by ID
func (s *RegistrationService) GetByID(ctx context.Context, customerID uuid.UUID) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// Update updates the authenticated customer's profile
func (s *RegistrationService) Update(ctx context.Context, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	firstName := c.FirstName
	lastName := c.LastName
	phone := c.Phone
	companyName := c.CompanyName
	if req.FirstName != nil {
		firstName = *req.FirstName
	}
	if req.LastName != nil {
		lastName = *req.LastName
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.CompanyName != nil {
		companyName = *req.CompanyName
	}

	if err := c.Update(firstName, lastName, phone, companyName); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	s.publishDomainEvents(ctx, c)

	response := ToCustomerResponse(c)
	return &response, nil
}

// List retrieves customers for the admin surface
func (s *RegistrationService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.DefaultFilter()
	domainFilter.Page = filter.Page
	domainFilter.PageSize = filter.PageSize
	domainFilter.Search = filter.Search
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, ToCustomerResponse(&customers[i]))
	}
	return responses, total, nil
}

// Delete deletes a customer and emits CustomerDeleted so that credentials
// and other linked records can be cleaned up by subscribers
func (s *RegistrationService) Delete(ctx context.Context, customerID uuid.UUID) error {
	c, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return err
	}

	c.MarkDeleted()
	if err := s.customerRepo.Delete(ctx, customerID); err != nil {
		return err
	}

	s.publishDomainEvents(ctx, c)
	return nil
}

// publishDomainEvents publishes pending domain events from the aggregate
func (s *RegistrationService) publishDomainEvents(ctx context.Context, c *customer.Customer) {
	if s.eventPublisher == nil {
		return
	}
	events := c.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	// Publish events (errors are logged by the event bus, not propagated)
	_ = s.eventPublisher.Publish(ctx, events...)
	c.ClearDomainEvents()
}
