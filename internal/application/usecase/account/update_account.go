// Package account contains account-related use cases.
package account

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

// UpdateAccountInput represents the input for account update. Nil fields are
// left unchanged.
type UpdateAccountInput struct {
	UserID      uuid.UUID
	AccountID   uuid.UUID
	Name        *string
	Type        *entity.AccountType
	Balance     *decimal.Decimal
	Currency    *string
	Description *string
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			err,
		)
	}

	if account.UserID != input.UserID {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeNotAuthorizedAccount,
			"not authorized to modify account",
			domainerror.ErrNotAuthorizedToModifyAccount,
		)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNameRequired,
				"account name is required",
				domainerror.ErrAccountNameRequired,
			)
		}
		account.Name = *input.Name
	}

	if input.Type != nil {
		if !entity.IsValidAccountType(*input.Type) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeInvalidAccountType,
				fmt.Sprintf("invalid account type %q", *input.Type),
				domainerror.ErrInvalidAccountType,
			)
		}
		account.Type = *input.Type
	}

	if input.Balance != nil {
		account.Balance = *input.Balance
	}

	if input.Currency != nil {
		if len(*input.Currency) != 3 {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeInvalidCurrencyCode,
				fmt.Sprintf("invalid currency code %q", *input.Currency),
				domainerror.ErrInvalidCurrencyCode,
			)
		}
		account.Currency = *input.Currency
	}

	if input.Description != nil {
		account.Description = *input.Description
	}

	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}
