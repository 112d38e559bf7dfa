// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a given user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// FindActive retrieves budgets for the user that are flagged active and
	// whose inclusive [start_date, end_date] window covers asOf.
	FindActive(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]*entity.Budget, error)

	// SumExpenses returns the sum of expense-type transaction amounts for the
	// user and category within the inclusive date window. Returns zero when no
	// transaction matches.
	SumExpenses(ctx context.Context, userID, categoryID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error)

	// UpdateSpent persists a refreshed spent value for the budget.
	UpdateSpent(ctx context.Context, budgetID uuid.UUID, spent decimal.Decimal) error

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete soft-deletes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
