// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionOutput represents the output of transaction deletion.
type DeleteTransactionOutput struct {
	Message string
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			err,
		)
	}

	if txn.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to delete transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if err := uc.transactionRepo.Delete(ctx, input.TransactionID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction: %w", err)
	}

	return &DeleteTransactionOutput{Message: "Transaction deleted successfully"}, nil
}
