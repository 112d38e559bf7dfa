// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultNotificationThreshold is the budget fraction at which a spend alert
// is triggered when no threshold is provided.
const DefaultNotificationThreshold = 0.8

// Budget represents a spending limit for a category over an inclusive date
// window. Spent is derived from the transaction history and refreshed by
// evaluation; it is never authoritative.
type Budget struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	CategoryID            uuid.UUID
	Amount                decimal.Decimal
	Spent                 decimal.Decimal
	StartDate             time.Time
	EndDate               time.Time
	NotificationThreshold float64 // Fraction in [0,1]
	IsActive              bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time // Soft-delete support
}

// NewBudget creates a new Budget entity.
func NewBudget(
	userID, categoryID uuid.UUID,
	amount decimal.Decimal,
	startDate, endDate time.Time,
	notificationThreshold float64,
) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:                    uuid.New(),
		UserID:                userID,
		CategoryID:            categoryID,
		Amount:                amount,
		Spent:                 decimal.Zero,
		StartDate:             startDate,
		EndDate:               endDate,
		NotificationThreshold: notificationThreshold,
		IsActive:              true,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// IsActiveAt reports whether the budget window covers the given instant and
// the budget is flagged active. Both window bounds are inclusive.
func (b *Budget) IsActiveAt(t time.Time) bool {
	return b.IsActive && !t.Before(b.StartDate) && !t.After(b.EndDate)
}
