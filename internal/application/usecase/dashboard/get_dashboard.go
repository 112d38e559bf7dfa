// Package dashboard contains the dashboard composition use case.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/report"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// RecentTransactionLimit is how many transactions the dashboard surfaces.
const RecentTransactionLimit = 5

// TrendWindowDays is the trailing window for the dashboard trend series.
const TrendWindowDays = 180

// MonthlySpending represents expense totals for one calendar month.
type MonthlySpending struct {
	Month  string // "YYYY-MM"
	Amount decimal.Decimal
}

// GetDashboardInput represents the input for dashboard composition.
type GetDashboardInput struct {
	UserID uuid.UUID
	Now    time.Time // Defaults to time.Now().UTC() when zero
}

// GetDashboardOutput represents the composed dashboard.
type GetDashboardOutput struct {
	TotalBalance       decimal.Decimal
	RecentTransactions []*entity.TransactionWithCategory
	MonthlySpending    []MonthlySpending
	MonthlyTrends      []report.MonthlyTrend
	CategoryBreakdown  []report.CategoryAmount
	Summary            *report.Summary
}

// GetDashboardUseCase composes the dashboard from account balances, recent
// transactions and the report aggregates. Any store failure fails the whole
// composition.
type GetDashboardUseCase struct {
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
	trends          *report.MonthlyTrendsUseCase
	breakdown       *report.CategoryBreakdownUseCase
	summary         *report.FinancialSummaryUseCase
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
	trends *report.MonthlyTrendsUseCase,
	breakdown *report.CategoryBreakdownUseCase,
	summary *report.FinancialSummaryUseCase,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		trends:          trends,
		breakdown:       breakdown,
		summary:         summary,
	}
}

// Execute builds the dashboard. Trends cover the trailing 180 days; the
// breakdown and summary cover the current calendar month.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	totalBalance, err := uc.accountRepo.SumBalances(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum account balances: %w", err)
	}

	recent, err := uc.transactionRepo.FindRecent(ctx, input.UserID, RecentTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	trendsOut, err := uc.trends.Execute(ctx, report.MonthlyTrendsInput{
		UserID: input.UserID,
		Months: TrendWindowDays / 30,
		AsOf:   now,
	})
	if err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	breakdownOut, err := uc.breakdown.Execute(ctx, report.CategoryBreakdownInput{
		UserID:    input.UserID,
		StartDate: monthStart,
		EndDate:   monthEnd,
	})
	if err != nil {
		return nil, err
	}

	summaryOut, err := uc.summary.Execute(ctx, report.FinancialSummaryInput{
		UserID:    input.UserID,
		StartDate: monthStart,
		EndDate:   monthEnd,
	})
	if err != nil {
		return nil, err
	}

	return &GetDashboardOutput{
		TotalBalance:       totalBalance,
		RecentTransactions: recent,
		MonthlySpending:    monthlySpending(trendsOut.Trends),
		MonthlyTrends:      trendsOut.Trends,
		CategoryBreakdown:  breakdownOut.Items,
		Summary:            summaryOut.Summary,
	}, nil
}

// monthlySpending projects the expense side of the trend series, keeping only
// months with at least one expense transaction.
func monthlySpending(trends []report.MonthlyTrend) []MonthlySpending {
	spending := make([]MonthlySpending, 0, len(trends))
	for _, t := range trends {
		if t.Expenses.IsPositive() {
			spending = append(spending, MonthlySpending{
				Month:  t.Month,
				Amount: t.Expenses,
			})
		}
	}
	return spending
}
