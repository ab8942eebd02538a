// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities so that repositories can evolve the
// storage shape without touching the domain layer.
//
// Structure:
// - base.go: Base persistence models (BaseModel, AggregateModel)
// - customer.go: Customer context model
// - identity.go: Auth identity model
// - promotion.go: Promotion model
// - notification.go: Notification and newsletter subscription models
package models
