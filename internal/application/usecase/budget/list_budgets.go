// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// BudgetWithCategory represents a budget with its associated category.
type BudgetWithCategory struct {
	Budget   *entity.Budget
	Category *entity.Category
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*BudgetWithCategory
}

// ListBudgetsUseCase handles budget listing logic.
type ListBudgetsUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	output := &ListBudgetsOutput{
		Budgets: make([]*BudgetWithCategory, 0, len(budgets)),
	}

	for _, b := range budgets {
		cat, err := uc.categoryRepo.FindByID(ctx, b.CategoryID)
		if err != nil {
			// A dangling category reference should not hide the budget itself.
			cat = nil
		}
		output.Budgets = append(output.Budgets, &BudgetWithCategory{
			Budget:   b,
			Category: cat,
		})
	}

	return output, nil
}
