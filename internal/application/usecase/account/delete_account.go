// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID    uuid.UUID
	AccountID uuid.UUID
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Message string
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
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
			"not authorized to delete account",
			domainerror.ErrNotAuthorizedToModifyAccount,
		)
	}

	if err := uc.accountRepo.Delete(ctx, input.AccountID); err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	return &DeleteAccountOutput{Message: "Account deleted successfully"}, nil
}
