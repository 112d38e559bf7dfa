// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
)

// MonthlySpendingResponse represents expense totals for one month.
type MonthlySpendingResponse struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}

// DashboardResponse represents the composed dashboard.
type DashboardResponse struct {
	TotalBalance       string                          `json:"total_balance"`
	RecentTransactions []TransactionResponse           `json:"recent_transactions"`
	MonthlySpending    []MonthlySpendingResponse       `json:"monthly_spending"`
	MonthlyTrends      []MonthlyTrendResponse          `json:"monthly_trends"`
	CategoryBreakdown  []CategoryBreakdownItemResponse `json:"category_breakdown"`
	Summary            FinancialSummaryResponse        `json:"summary"`
}

// ToDashboardResponse converts the dashboard output to its DTO form.
func ToDashboardResponse(out *dashboard.GetDashboardOutput) DashboardResponse {
	recent := make([]TransactionResponse, 0, len(out.RecentTransactions))
	for _, tc := range out.RecentTransactions {
		recent = append(recent, ToTransactionWithCategoryResponse(tc))
	}

	spending := make([]MonthlySpendingResponse, 0, len(out.MonthlySpending))
	for _, s := range out.MonthlySpending {
		spending = append(spending, MonthlySpendingResponse{
			Month:  s.Month,
			Amount: s.Amount.String(),
		})
	}

	return DashboardResponse{
		TotalBalance:       out.TotalBalance.String(),
		RecentTransactions: recent,
		MonthlySpending:    spending,
		MonthlyTrends:      ToMonthlyTrendResponses(out.MonthlyTrends),
		CategoryBreakdown:  ToCategoryBreakdownItemResponses(out.CategoryBreakdown),
		Summary:            ToFinancialSummaryResponse(out.Summary),
	}
}
