// Package budget contains budget-related use cases.
package budget

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

// UpdateBudgetInput represents the input for budget update. Nil fields are
// left unchanged.
type UpdateBudgetInput struct {
	UserID                uuid.UUID
	BudgetID              uuid.UUID
	Amount                *decimal.Decimal
	StartDate             *time.Time
	EndDate               *time.Time
	NotificationThreshold *float64
	IsActive              *bool
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
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
			"not authorized to modify budget",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetAmount,
				"budget amount must be greater than zero",
				domainerror.ErrInvalidBudgetAmount,
			)
		}
		budget.Amount = *input.Amount
	}

	if input.StartDate != nil {
		budget.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		budget.EndDate = *input.EndDate
	}
	if budget.EndDate.Before(budget.StartDate) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetWindow,
			"end_date must not be before start_date",
			domainerror.ErrInvalidBudgetWindow,
		)
	}

	if input.NotificationThreshold != nil {
		if *input.NotificationThreshold < 0 || *input.NotificationThreshold > 1 {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidThreshold,
				"notification threshold must be between 0 and 1",
				domainerror.ErrInvalidNotificationThreshold,
			)
		}
		budget.NotificationThreshold = *input.NotificationThreshold
	}

	if input.IsActive != nil {
		budget.IsActive = *input.IsActive
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}
