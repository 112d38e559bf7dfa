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

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  *uuid.UUID // Optional
	Amount      decimal.Decimal
	Type        entity.TransactionType
	Description string
	Date        time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation. The referenced account must
// belong to the user; the category, when given, must too.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("invalid transaction type %q", input.Type),
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be non-negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
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

	if input.CategoryID != nil {
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
	}

	txn := entity.NewTransaction(
		input.UserID,
		input.AccountID,
		input.CategoryID,
		input.Amount,
		input.Type,
		input.Description,
		input.Date,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}
