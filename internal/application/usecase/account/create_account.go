// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID      uuid.UUID
	Name        string
	Type        entity.AccountType
	Balance     decimal.Decimal
	Currency    string // Optional, defaults to entity.DefaultCurrency
	Description string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameRequired,
			"account name is required",
			domainerror.ErrAccountNameRequired,
		)
	}

	if !entity.IsValidAccountType(input.Type) {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountType,
			fmt.Sprintf("invalid account type %q", input.Type),
			domainerror.ErrInvalidAccountType,
		)
	}

	currency := input.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}
	if len(currency) != 3 {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeInvalidCurrencyCode,
			fmt.Sprintf("invalid currency code %q", currency),
			domainerror.ErrInvalidCurrencyCode,
		)
	}

	account := entity.NewAccount(
		input.UserID,
		input.Name,
		input.Type,
		input.Balance,
		currency,
		input.Description,
	)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}
