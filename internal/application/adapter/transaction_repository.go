// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for querying transactions.
// Nil/empty fields are not applied.
type TransactionFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	AccountIDs  []uuid.UUID
	CategoryIDs []uuid.UUID
	Type        *entity.TransactionType
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions with their categories for a user,
	// matching the filter, ordered by date ascending. The date window is
	// inclusive on both ends.
	FindByFilter(ctx context.Context, userID uuid.UUID, filter TransactionFilter) ([]*entity.TransactionWithCategory, error)

	// FindRecent retrieves the most recent transactions by date descending.
	FindRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.TransactionWithCategory, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete soft-deletes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
