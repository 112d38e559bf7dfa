// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// DefaultTrendMonths is the trend window length used when none is requested.
const DefaultTrendMonths = 6

// MonthlyTrendsInput represents the input for the monthly trends report.
type MonthlyTrendsInput struct {
	UserID uuid.UUID
	Months int       // Defaults to DefaultTrendMonths when <= 0
	AsOf   time.Time // Defaults to now when zero
}

// MonthlyTrendsOutput represents the output of the monthly trends report.
type MonthlyTrendsOutput struct {
	Trends []MonthlyTrend
}

// MonthlyTrendsUseCase computes per-month income and expense totals over a
// trailing window.
type MonthlyTrendsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewMonthlyTrendsUseCase creates a new MonthlyTrendsUseCase instance.
func NewMonthlyTrendsUseCase(transactionRepo adapter.TransactionRepository) *MonthlyTrendsUseCase {
	return &MonthlyTrendsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the trend series. The window spans 30 days per requested
// month, ending at AsOf. Months without transactions are omitted.
func (uc *MonthlyTrendsUseCase) Execute(ctx context.Context, input MonthlyTrendsInput) (*MonthlyTrendsOutput, error) {
	months := input.Months
	if months <= 0 {
		months = DefaultTrendMonths
	}

	end := input.AsOf
	if end.IsZero() {
		end = time.Now().UTC()
	}
	start := end.AddDate(0, 0, -30*months)

	txns, err := uc.transactionRepo.FindByFilter(ctx, input.UserID, adapter.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for trends: %w", err)
	}

	trends, err := monthlyTrends(txns)
	if err != nil {
		return nil, err
	}

	return &MonthlyTrendsOutput{Trends: trends}, nil
}
