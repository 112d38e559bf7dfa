// Package report contains reporting and aggregation use cases.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// monthLayout is the label format for monthly buckets.
const monthLayout = "2006-01"

// MonthlyTrend represents income and expense totals for one calendar month.
type MonthlyTrend struct {
	Month    string // "YYYY-MM"
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// CategoryAmount represents expense totals for one category.
type CategoryAmount struct {
	Category   string
	Amount     decimal.Decimal
	Percentage float64
}

// Summary represents aggregate income/expense figures over a window.
type Summary struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetSavings    decimal.Decimal
	SavingsRate   float64
}

// UncategorizedBucket is the breakdown label for transactions without a category.
const UncategorizedBucket = "Uncategorized"

// unknownTypeError builds the data-integrity error for a transaction whose
// type falls outside the closed {income, expense} set.
func unknownTypeError(t *entity.Transaction) error {
	return domainerror.NewReportError(
		domainerror.ErrCodeUnknownTransactionType,
		fmt.Sprintf("transaction %s has unknown type %q", t.ID, t.Type),
		domainerror.ErrUnknownTransactionType,
	)
}

// monthlyTrends groups transactions into per-month income/expense totals.
// Input must be ordered by date ascending; output preserves that order.
// Months without transactions never appear.
func monthlyTrends(txns []*entity.TransactionWithCategory) ([]MonthlyTrend, error) {
	trends := make([]MonthlyTrend, 0)
	index := make(map[string]int)

	for _, tc := range txns {
		t := tc.Transaction
		month := t.Date.Format(monthLayout)

		i, ok := index[month]
		if !ok {
			i = len(trends)
			index[month] = i
			trends = append(trends, MonthlyTrend{
				Month:    month,
				Income:   decimal.Zero,
				Expenses: decimal.Zero,
			})
		}

		switch t.Type {
		case entity.TransactionTypeIncome:
			trends[i].Income = trends[i].Income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			trends[i].Expenses = trends[i].Expenses.Add(t.Amount)
		default:
			return nil, unknownTypeError(t)
		}
	}

	return trends, nil
}

// categoryBreakdown groups expense transactions by category name, sorted by
// descending amount with ties broken by name ascending. Percentage is the
// share of the expense total, 0 when the total is zero.
func categoryBreakdown(txns []*entity.TransactionWithCategory) ([]CategoryAmount, error) {
	totals := make(map[string]decimal.Decimal)

	for _, tc := range txns {
		t := tc.Transaction

		switch t.Type {
		case entity.TransactionTypeIncome:
			continue
		case entity.TransactionTypeExpense:
		default:
			return nil, unknownTypeError(t)
		}

		name := UncategorizedBucket
		if tc.Category != nil {
			name = tc.Category.Name
		}
		totals[name] = totals[name].Add(t.Amount)
	}

	grandTotal := decimal.Zero
	for _, amount := range totals {
		grandTotal = grandTotal.Add(amount)
	}

	items := make([]CategoryAmount, 0, len(totals))
	for name, amount := range totals {
		percentage := 0.0
		if grandTotal.IsPositive() {
			percentage, _ = amount.Div(grandTotal).Mul(decimal.NewFromInt(100)).Float64()
		}
		items = append(items, CategoryAmount{
			Category:   name,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		cmp := items[i].Amount.Cmp(items[j].Amount)
		if cmp != 0 {
			return cmp > 0
		}
		return items[i].Category < items[j].Category
	})

	return items, nil
}

// summarize computes total income, total expenses, net savings and the
// savings rate over the given transactions. SavingsRate is 0 when there is
// no income.
func summarize(txns []*entity.TransactionWithCategory) (*Summary, error) {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, tc := range txns {
		t := tc.Transaction

		switch t.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			expenses = expenses.Add(t.Amount)
		default:
			return nil, unknownTypeError(t)
		}
	}

	net := income.Sub(expenses)
	rate := 0.0
	if income.IsPositive() {
		rate, _ = net.Div(income).Mul(decimal.NewFromInt(100)).Float64()
	}

	return &Summary{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetSavings:    net,
		SavingsRate:   rate,
	}, nil
}

// validateWindow checks that both window bounds are set and ordered.
func validateWindow(start, end time.Time) error {
	if start.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}
	if end.IsZero() {
		return domainerror.NewReportError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}
	if end.Before(start) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}
	return nil
}
