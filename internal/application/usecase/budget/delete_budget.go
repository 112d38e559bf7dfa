// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// DeleteBudgetOutput represents the output of budget deletion.
type DeleteBudgetOutput struct {
	Message string
}

// DeleteBudgetUseCase handles budget deletion logic.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget deletion.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) (*DeleteBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			err,
		)
	}

	if budget.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedBudget,
			"not authorized to delete budget",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	if err := uc.budgetRepo.Delete(ctx, input.BudgetID); err != nil {
		return nil, fmt.Errorf("failed to delete budget: %w", err)
	}

	return &DeleteBudgetOutput{Message: "Budget deleted successfully"}, nil
}
