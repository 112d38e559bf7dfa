// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GetTransactionInput represents the input for getting a transaction.
type GetTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// GetTransactionOutput represents the output of getting a transaction.
type GetTransactionOutput struct {
	Transaction *entity.Transaction
}

// GetTransactionUseCase handles retrieving a single transaction.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the transaction.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
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
			"not authorized to access transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	return &GetTransactionOutput{Transaction: txn}, nil
}
