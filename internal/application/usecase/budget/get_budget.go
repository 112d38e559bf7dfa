// Package budget contains budget-related use cases.
package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GetBudgetInput represents the input for getting a budget.
type GetBudgetInput struct {
	UserID   uuid.UUID
	BudgetID uuid.UUID
}

// GetBudgetOutput represents the output of getting a budget.
type GetBudgetOutput struct {
	Budget   *entity.Budget
	Category *entity.Category
}

// GetBudgetUseCase handles retrieving a single budget.
type GetBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves the budget.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
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
			"not authorized to access budget",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	cat, err := uc.categoryRepo.FindByID(ctx, budget.CategoryID)
	if err != nil {
		cat = nil
	}

	return &GetBudgetOutput{Budget: budget, Category: cat}, nil
}
