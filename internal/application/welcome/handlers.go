package welcome

import (
	"context"

	"github.com/lumiera/backend/internal/domain/customer"
	"github.com/lumiera/backend/internal/domain/identity"
	"github.com/lumiera/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CustomerCreatedHandler issues the welcome package when a customer is
// created. It intentionally returns nil on every path so a failed side
// effect never marks the event as undeliverable.
type CustomerCreatedHandler struct {
	service *WelcomeService
	logger  *zap.Logger
}

// NewCustomerCreatedHandler creates a new CustomerCreatedHandler
func NewCustomerCreatedHandler(service *WelcomeService, logger *zap.Logger) *CustomerCreatedHandler {
	return &CustomerCreatedHandler{
		service: service,
		logger:  logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *CustomerCreatedHandler) EventTypes() []string {
	return []string{customer.EventTypeCustomerCreated}
}

// Handle issues the welcome package for the created customer
func (h *CustomerCreatedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	created, ok := event.(*customer.CustomerCreatedEvent)
	if !ok {
		h.logger.Warn("unexpected event payload",
			zap.String("event_type", event.EventType()),
		)
		return nil
	}

	return h.service.IssueWelcomePackage(ctx, created.CustomerID)
}

// Ensure CustomerCreatedHandler implements EventHandler
var _ shared.EventHandler = (*CustomerCreatedHandler)(nil)

// CustomerDeletedHandler removes the credentials left behind when a customer
// is deleted. Cleanup is best-effort; failures are logged and swallowed.
type CustomerDeletedHandler struct {
	identityRepo identity.AuthIdentityRepository
	logger       *zap.Logger
}

// NewCustomerDeletedHandler creates a new CustomerDeletedHandler
func NewCustomerDeletedHandler(identityRepo identity.AuthIdentityRepository, logger *zap.Logger) *CustomerDeletedHandler {
	return &CustomerDeletedHandler{
		identityRepo: identityRepo,
		logger:       logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *CustomerDeletedHandler) EventTypes() []string {
	return []string{customer.EventTypeCustomerDeleted}
}

// Handle deletes all auth identities registered for the deleted customer's email
func (h *CustomerDeletedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	deleted, ok := event.(*customer.CustomerDeletedEvent)
	if !ok {
		h.logger.Warn("unexpected event payload",
			zap.String("event_type", event.EventType()),
		)
		return nil
	}

	identities, err := h.identityRepo.ListByEntityID(ctx, deleted.Email)
	if err != nil {
		h.logger.Error("failed to list auth identities for cleanup",
			zap.String("email", deleted.Email),
			zap.Error(err),
		)
		return nil
	}

	for i := range identities {
		if err := h.identityRepo.Delete(ctx, identities[i].ID); err != nil {
			h.logger.Error("failed to delete auth identity",
				zap.String("identity_id", identities[i].ID.String()),
				zap.Error(err),
			)
			continue
		}
		h.logger.Info("auth identity removed for deleted customer",
			zap.String("identity_id", identities[i].ID.String()),
			zap.String("email", deleted.Email),
		)
	}

	return nil
}

// Ensure CustomerDeletedHandler implements EventHandler
var _ shared.EventHandler = (*CustomerDeletedHandler)(nil)
