// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// CategoryBreakdownInput represents the input for the category breakdown report.
type CategoryBreakdownInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// CategoryBreakdownOutput represents the output of the category breakdown report.
type CategoryBreakdownOutput struct {
	Items []CategoryAmount
}

// CategoryBreakdownUseCase computes expense totals per category over a window.
type CategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCategoryBreakdownUseCase creates a new CategoryBreakdownUseCase instance.
func NewCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository) *CategoryBreakdownUseCase {
	return &CategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the breakdown. Only expense transactions contribute;
// transactions without a category land in the "Uncategorized" bucket.
func (uc *CategoryBreakdownUseCase) Execute(ctx context.Context, input CategoryBreakdownInput) (*CategoryBreakdownOutput, error) {
	if err := validateWindow(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	expenseType := entity.TransactionTypeExpense
	txns, err := uc.transactionRepo.FindByFilter(ctx, input.UserID, adapter.TransactionFilter{
		StartDate: &input.StartDate,
		EndDate:   &input.EndDate,
		Type:      &expenseType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for breakdown: %w", err)
	}

	items, err := categoryBreakdown(txns)
	if err != nil {
		return nil, err
	}

	return &CategoryBreakdownOutput{Items: items}, nil
}
