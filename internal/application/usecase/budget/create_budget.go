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

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID                uuid.UUID
	CategoryID            uuid.UUID
	Amount                decimal.Decimal
	StartDate             time.Time
	EndDate               time.Time
	NotificationThreshold *float64 // Optional, defaults to 0.8
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetWindow,
			"end_date must not be before start_date",
			domainerror.ErrInvalidBudgetWindow,
		)
	}

	threshold := entity.DefaultNotificationThreshold
	if input.NotificationThreshold != nil {
		threshold = *input.NotificationThreshold
		if threshold < 0 || threshold > 1 {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidThreshold,
				"notification threshold must be between 0 and 1",
				domainerror.ErrInvalidNotificationThreshold,
			)
		}
	}

	// Validate the category exists and belongs to the user.
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetCategoryNotFound,
			"category not found",
			err,
		)
	}
	if category.UserID != input.UserID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNotAuthorizedBudget,
			"category does not belong to user",
			domainerror.ErrNotAuthorizedToModifyBudget,
		)
	}

	budget := entity.NewBudget(
		input.UserID,
		input.CategoryID,
		input.Amount,
		input.StartDate,
		input.EndDate,
		threshold,
	)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: budget}, nil
}
