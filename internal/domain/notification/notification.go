package notification

import (
	"strings"
	"time"

	"github.com/lumiera/backend/internal/domain/shared"
)

// Channel represents the delivery channel for a notification
type Channel string

const (
	ChannelEmail Channel = "email"
)

// Status represents the delivery status of a notification
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Template identifiers for transactional messages
const (
	TemplateCustomerCreated = "customer_created"
)

// Notification represents a transactional message sent to a recipient.
// Each attempted delivery is recorded, including failures, so that the
// admin surface can audit what the store tried to send.
type Notification struct {
	shared.BaseAggregateRoot
	To       string
	Channel  Channel
	Template string
	Data     string // Template payload as a JSON document
	Status   Status
	Error    string
	SentAt   *time.Time
}

// NewEmailNotification creates a pending email notification
func NewEmailNotification(to, template, data string) (*Notification, error) {
	to = strings.TrimSpace(to)
	if to == "" {
		return nil, shared.NewDomainError("INVALID_RECIPIENT", "Notification recipient cannot be empty")
	}
	if template == "" {
		return nil, shared.NewDomainError("INVALID_TEMPLATE", "Notification template cannot be empty")
	}
	if data == "" {
		data = "{}"
	}

	return &Notification{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		To:                to,
		Channel:           ChannelEmail,
		Template:          template,
		Data:              data,
		Status:            StatusPending,
	}, nil
}

// MarkSent records a successful delivery
func (n *Notification) MarkSent() {
	now := time.Now()
	n.Status = StatusSent
	n.SentAt = &now
	n.Error = ""
	n.UpdatedAt = now
	n.IncrementVersion()
}

// MarkFailed records a failed delivery attempt
func (n *Notification) MarkFailed(reason string) {
	n.Status = StatusFailed
	n.Error = reason
	n.UpdatedAt = time.Now()
	n.IncrementVersion()
}
