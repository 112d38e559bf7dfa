// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a transaction category in the Budgetwise system.
// A category's type constrains which transactions logically belong to it,
// but membership is not enforced at write time.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Type        TransactionType
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name string, categoryType TransactionType, description string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Type:        categoryType,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
