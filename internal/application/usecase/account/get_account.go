// Package account contains account-related use cases.
package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GetAccountInput represents the input for getting an account.
type GetAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// GetAccountOutput represents the output of getting an account.
type GetAccountOutput struct {
	Account *entity.Account
}

// GetAccountUseCase handles retrieving a single account.
type GetAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(accountRepo adapter.AccountRepository) *GetAccountUseCase {
	return &GetAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute retrieves the account.
func (uc *GetAccountUseCase) Execute(ctx context.Context, input GetAccountInput) (*GetAccountOutput, error) {
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
			"not authorized to access account",
			domainerror.ErrNotAuthorizedToModifyAccount,
		)
	}

	return &GetAccountOutput{Account: account}, nil
}
