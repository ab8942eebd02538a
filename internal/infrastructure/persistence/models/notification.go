package models

import (
	"time"

	"github.com/lumiera/backend/internal/domain/notification"
)

// NotificationModel is the persistence model for the Notification domain entity.
type NotificationModel struct {
	AggregateModel
	To       string               `gorm:"type:varchar(200);not null;index"`
	Channel  notification.Channel `gorm:"type:varchar(20);not null;default:'email'"`
	Template string               `gorm:"type:varchar(100);not null;index"`
	Data     string               `gorm:"type:jsonb"`
	Status   notification.Status  `gorm:"type:varchar(20);not null;default:'pending'"`
	Error    string               `gorm:"type:text"`
	SentAt   *time.Time
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain Notification entity.
func (m *NotificationModel) ToDomain() *notification.Notification {
	return &notification.Notification{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		To:                m.To,
		Channel:           m.Channel,
		Template:          m.Template,
		Data:              m.Data,
		Status:            m.Status,
		Error:             m.Error,
		SentAt:            m.SentAt,
	}
}

// FromDomain populates the persistence model from a domain Notification entity.
func (m *NotificationModel) FromDomain(n *notification.Notification) {
	m.FromDomainAggregateRoot(n.BaseAggregateRoot)
	m.To = n.To
	m.Channel = n.Channel
	m.Template = n.Template
	m.Data = n.Data
	m.Status = n.Status
	m.Error = n.Error
	m.SentAt = n.SentAt
}

// NotificationModelFromDomain creates a new persistence model from a domain Notification entity.
func NotificationModelFromDomain(n *notification.Notification) *NotificationModel {
	m := &NotificationModel{}
	m.FromDomain(n)
	return m
}

// NewsletterSubscriptionModel is the persistence model for the NewsletterSubscription domain entity.
type NewsletterSubscriptionModel struct {
	AggregateModel
	Email          string `gorm:"type:varchar(200);not null;uniqueIndex"`
	Subscribed     bool   `gorm:"not null;default:true"`
	UnsubscribedAt *time.Time
}

// TableName returns the table name for GORM
func (NewsletterSubscriptionModel) TableName() string {
	return "newsletter_subscriptions"
}

// ToDomain converts the persistence model to a domain NewsletterSubscription entity.
func (m *NewsletterSubscriptionModel) ToDomain() *notification.NewsletterSubscription {
	return &notification.NewsletterSubscription{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Email:             m.Email,
		Subscribed:        m.Subscribed,
		UnsubscribedAt:    m.UnsubscribedAt,
	}
}

// FromDomain populates the persistence model from a domain NewsletterSubscription entity.
func (m *NewsletterSubscriptionModel) FromDomain(s *notification.NewsletterSubscription) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Email = s.Email
	m.Subscribed = s.Subscribed
	m.UnsubscribedAt = s.UnsubscribedAt
}

// NewsletterSubscriptionModelFromDomain creates a new persistence model from a domain NewsletterSubscription entity.
func NewsletterSubscriptionModelFromDomain(s *notification.NewsletterSubscription) *NewsletterSubscriptionModel {
	m := &NewsletterSubscriptionModel{}
	m.FromDomain(s)
	return m
}
