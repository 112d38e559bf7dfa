// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByUser retrieves all accounts for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error)

	// SumBalances returns the sum of balances over all accounts for the user.
	// No currency filtering is applied (single-currency assumption).
	SumBalances(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)

	// Update updates an existing account in the database.
	Update(ctx context.Context, account *entity.Account) error

	// Delete soft-deletes an account from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
