// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID uuid.UUID
	Filter adapter.TransactionFilter
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.TransactionWithCategory
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing. The filter's date window is
// inclusive on both ends; results are ordered by date ascending.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Filter.Type != nil && !entity.IsValidTransactionType(*input.Filter.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("invalid transaction type %q", *input.Filter.Type),
			domainerror.ErrInvalidTransactionType,
		)
	}

	txns, err := uc.transactionRepo.FindByFilter(ctx, input.UserID, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: txns}, nil
}
