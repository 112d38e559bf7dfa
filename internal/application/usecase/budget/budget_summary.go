// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// BudgetSummaryInput represents the input for the budget summary.
type BudgetSummaryInput struct {
	UserID uuid.UUID
	AsOf   time.Time // Zero value means "now"
}

// BudgetStatus represents the spending progress of a single active budget.
type BudgetStatus struct {
	BudgetID              uuid.UUID
	CategoryName          string
	AmountSpent           decimal.Decimal
	BudgetAmount          decimal.Decimal
	Remaining             decimal.Decimal
	PercentageUsed        float64
	NotificationThreshold float64
	StartDate             time.Time
	EndDate               time.Time
}

// BudgetSummaryOutput represents the output of the budget summary.
type BudgetSummaryOutput struct {
	Budgets []BudgetStatus
}

// BudgetSummaryUseCase reports the spending progress of every active budget.
// Unlike evaluation it is read-only: the stored spent column is untouched.
type BudgetSummaryUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewBudgetSummaryUseCase creates a new BudgetSummaryUseCase instance.
func NewBudgetSummaryUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *BudgetSummaryUseCase {
	return &BudgetSummaryUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute computes the summary.
func (uc *BudgetSummaryUseCase) Execute(ctx context.Context, input BudgetSummaryInput) (*BudgetSummaryOutput, error) {
	asOf := defaultAsOf(input.AsOf)

	budgets, err := uc.budgetRepo.FindActive(ctx, input.UserID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list active budgets: %w", err)
	}

	output := &BudgetSummaryOutput{
		Budgets: make([]BudgetStatus, 0, len(budgets)),
	}

	for _, b := range budgets {
		spent, err := currentSpent(ctx, uc.budgetRepo, b)
		if err != nil {
			return nil, fmt.Errorf("failed to compute spend for budget %s: %w", b.ID, err)
		}

		name, err := categoryName(ctx, uc.categoryRepo, b.CategoryID)
		if err != nil {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetCategoryNotFound,
				"category not found for budget",
				err,
			)
		}

		output.Budgets = append(output.Budgets, BudgetStatus{
			BudgetID:              b.ID,
			CategoryName:          name,
			AmountSpent:           spent,
			BudgetAmount:          b.Amount,
			Remaining:             b.Amount.Sub(spent),
			PercentageUsed:        percentageUsed(b, spent),
			NotificationThreshold: b.NotificationThreshold,
			StartDate:             b.StartDate,
			EndDate:               b.EndDate,
		})
	}

	return output, nil
}
