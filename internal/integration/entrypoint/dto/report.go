// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetwise/backend/internal/application/usecase/report"
)

// MonthlyTrendResponse represents income and expense totals for one month.
type MonthlyTrendResponse struct {
	Month    string `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

// MonthlyTrendsResponse represents the response for the monthly trends report.
type MonthlyTrendsResponse struct {
	Trends []MonthlyTrendResponse `json:"trends"`
}

// CategoryBreakdownItemResponse represents one category in the spending breakdown.
type CategoryBreakdownItemResponse struct {
	Category   string  `json:"category"`
	Amount     string  `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdownResponse represents the response for the category breakdown report.
type CategoryBreakdownResponse struct {
	Breakdown []CategoryBreakdownItemResponse `json:"breakdown"`
}

// FinancialSummaryResponse represents the response for the financial summary report.
type FinancialSummaryResponse struct {
	TotalIncome   string  `json:"total_income"`
	TotalExpenses string  `json:"total_expenses"`
	NetSavings    string  `json:"net_savings"`
	SavingsRate   float64 `json:"savings_rate"`
}

// DetailedReportResponse represents the response for the detailed report.
type DetailedReportResponse struct {
	Transactions []TransactionResponse           `json:"transactions"`
	Trends       []MonthlyTrendResponse          `json:"trends"`
	Breakdown    []CategoryBreakdownItemResponse `json:"breakdown"`
	Summary      FinancialSummaryResponse        `json:"summary"`
}

// ToMonthlyTrendResponses converts the trend series to its DTO form.
func ToMonthlyTrendResponses(trends []report.MonthlyTrend) []MonthlyTrendResponse {
	responses := make([]MonthlyTrendResponse, 0, len(trends))
	for _, t := range trends {
		responses = append(responses, MonthlyTrendResponse{
			Month:    t.Month,
			Income:   t.Income.String(),
			Expenses: t.Expenses.String(),
		})
	}
	return responses
}

// ToCategoryBreakdownItemResponses converts the breakdown items to their DTO form.
func ToCategoryBreakdownItemResponses(items []report.CategoryAmount) []CategoryBreakdownItemResponse {
	responses := make([]CategoryBreakdownItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, CategoryBreakdownItemResponse{
			Category:   item.Category,
			Amount:     item.Amount.String(),
			Percentage: item.Percentage,
		})
	}
	return responses
}

// ToFinancialSummaryResponse converts a summary to its DTO form.
func ToFinancialSummaryResponse(s *report.Summary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TotalIncome:   s.TotalIncome.String(),
		TotalExpenses: s.TotalExpenses.String(),
		NetSavings:    s.NetSavings.String(),
		SavingsRate:   s.SavingsRate,
	}
}
