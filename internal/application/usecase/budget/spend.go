// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// currentSpent computes the spend for a budget: the sum of expense-type
// transaction amounts matching the budget's owner and category, with date in
// the inclusive [start_date, end_date] window. Both the evaluation and the
// summary paths go through this routine so the two never drift.
func currentSpent(ctx context.Context, repo adapter.BudgetRepository, b *entity.Budget) (decimal.Decimal, error) {
	return repo.SumExpenses(ctx, b.UserID, b.CategoryID, b.StartDate, b.EndDate)
}

// percentageUsed returns spent as a percentage of the budget amount.
// A non-positive amount is a data-quality condition: the percentage is
// defined as 0 (never a division error) and a warning surfaces it.
func percentageUsed(b *entity.Budget, spent decimal.Decimal) float64 {
	if !b.Amount.IsPositive() {
		slog.Warn("budget has non-positive amount, reporting 0% usage",
			"budget_id", b.ID,
			"amount", b.Amount,
		)
		return 0
	}
	pct, _ := spent.Div(b.Amount).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// thresholdReached reports whether the spend has reached the budget's
// notification threshold. Budgets with a non-positive amount alert only once
// something has actually been spent against them.
func thresholdReached(b *entity.Budget, spent decimal.Decimal) bool {
	if !b.Amount.IsPositive() {
		return spent.IsPositive()
	}
	limit := b.Amount.Mul(decimal.NewFromFloat(b.NotificationThreshold))
	return spent.GreaterThanOrEqual(limit)
}

// defaultAsOf returns t, or the current UTC time when t is the zero value.
func defaultAsOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}

// categoryName resolves the display name for a budget's category.
func categoryName(ctx context.Context, repo adapter.CategoryRepository, categoryID uuid.UUID) (string, error) {
	cat, err := repo.FindByID(ctx, categoryID)
	if err != nil {
		return "", err
	}
	return cat.Name, nil
}
