// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update. Nil
// fields are left unchanged. ClearCategory removes the category reference.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	AccountID     *uuid.UUID
	CategoryID    *uuid.UUID
	ClearCategory bool
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	Description   *string
	Date          *time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
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
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if input.Type != nil {
		if !entity.IsValidTransactionType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				fmt.Sprintf("invalid transaction type %q", *input.Type),
				domainerror.ErrInvalidTransactionType,
			)
		}
		txn.Type = *input.Type
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"transaction amount must be non-negative",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		txn.Amount = *input.Amount
	}

	if input.AccountID != nil {
		account, err := uc.accountRepo.FindByID(ctx, *input.AccountID)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnAccountNotFound,
				"account not found",
				err,
			)
		}
		if account.UserID != input.UserID {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNotAuthorizedTransaction,
				"account does not belong to user",
				domainerror.ErrNotAuthorizedToModifyTransaction,
			)
		}
		txn.AccountID = *input.AccountID
	}

	switch {
	case input.ClearCategory:
		txn.CategoryID = nil
	case input.CategoryID != nil:
		category, err := uc.categoryRepo.FindByID(ctx, *input.CategoryID)
		if err != nil {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				err,
			)
		}
		if category.UserID != input.UserID {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeNotAuthorizedTransaction,
				"category does not belong to user",
				domainerror.ErrNotAuthorizedToModifyTransaction,
			)
		}
		txn.CategoryID = input.CategoryID
	}

	if input.Description != nil {
		txn.Description = *input.Description
	}
	if input.Date != nil {
		txn.Date = *input.Date
	}

	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
