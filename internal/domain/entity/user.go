// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user in the Budgetwise system.
type User struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	IsActive     bool
	BudgetAlerts bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, fullName, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		IsActive:     true,
		BudgetAlerts: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
