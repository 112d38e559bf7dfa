// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct {
	UserID uuid.UUID
}

// ListAccountsOutput represents the output of listing accounts.
type ListAccountsOutput struct {
	Accounts []*entity.Account
}

// ListAccountsUseCase handles account listing logic.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account listing.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return &ListAccountsOutput{Accounts: accounts}, nil
}
