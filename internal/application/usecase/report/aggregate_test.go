// Package report contains reporting and aggregation use cases.
package report

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

func txn(txnType entity.TransactionType, amount string, date string, category *entity.Category) *entity.TransactionWithCategory {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}

	t := &entity.Transaction{
		ID:     uuid.New(),
		Amount: value,
		Type:   txnType,
		Date:   parsedDate,
	}
	if category != nil {
		t.CategoryID = &category.ID
	}

	return &entity.TransactionWithCategory{
		Transaction: t,
		Category:    category,
	}
}

func expenseCategory(name string) *entity.Category {
	return &entity.Category{
		ID:   uuid.New(),
		Name: name,
		Type: entity.TransactionTypeExpense,
	}
}

func TestMonthlyTrends(t *testing.T) {
	t.Run("groups transactions into per-month buckets", func(t *testing.T) {
		txns := []*entity.TransactionWithCategory{
			txn(entity.TransactionTypeIncome, "3000", "2025-05-01", nil),
			txn(entity.TransactionTypeExpense, "120.50", "2025-05-10", nil),
			txn(entity.TransactionTypeExpense, "80", "2025-06-02", nil),
			txn(entity.TransactionTypeIncome, "3100", "2025-06-15", nil),
		}

		trends, err := monthlyTrends(txns)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(trends) != 2 {
			t.Fatalf("expected 2 months, got %d", len(trends))
		}
		if trends[0].Month != "2025-05" {
			t.Errorf("expected first month 2025-05, got %s", trends[0].Month)
		}
		if !trends[0].Income.Equal(decimal.RequireFromString("3000")) {
			t.Errorf("expected May income 3000, got %s", trends[0].Income)
		}
		if !trends[0].Expenses.Equal(decimal.RequireFromString("120.50")) {
			t.Errorf("expected May expenses 120.50, got %s", trends[0].Expenses)
		}
		if trends[1].Month != "2025-06" {
			t.Errorf("expected second month 2025-06, got %s", trends[1].Month)
		}
	})

	t.Run("months without transactions are omitted", func(t *testing.T) {
		txns := []*entity.TransactionWithCategory{
			txn(entity.TransactionTypeExpense, "10", "2025-01-15", nil),
			txn(entity.TransactionTypeExpense, "20", "2025-04-15", nil),
		}

		trends, err := monthlyTrends(txns)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(trends) != 2 {
			t.Fatalf("expected 2 months, got %d", len(trends))
		}
		if trends[0].Month != "2025-01" || trends[1].Month != "2025-04" {
			t.Errorf("expected months [2025-01 2025-04], got [%s %s]", trends[0].Month, trends[1].Month)
		}
	})

	t.Run("empty input yields empty slice", func(t *testing.T) {
		trends, err := monthlyTrends(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(trends) != 0 {
			t.Errorf("expected no trends, got %d", len(trends))
		}
	})

	t.Run("unknown transaction type is rejected", func(t *testing.T) {
		bad := txn(entity.TransactionType("transfer"), "10", "2025-01-15", nil)

		_, err := monthlyTrends([]*entity.TransactionWithCategory{bad})
		if err == nil {
			t.Fatal("expected error for unknown transaction type")
		}

		var reportErr *domainerror.ReportError
		if !errors.As(err, &reportErr) {
			t.Fatalf("expected ReportError, got %T", err)
		}
		if reportErr.Code != domainerror.ErrCodeUnknownTransactionType {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeUnknownTransactionType, reportErr.Code)
		}
	})
}

func TestCategoryBreakdown(t *testing.T) {
	t.Run("sorts by amount descending with name tiebreak", func(t *testing.T) {
		groceries := expenseCategory("Groceries")
		rent := expenseCategory("Rent")
		transport := expenseCategory("Transport")

		txns := []*entity.TransactionWithCategory{
			txn(entity.TransactionTypeExpense, "50", "2025-06-01", transport),
			txn(entity.TransactionTypeExpense, "800", "2025-06-01", rent),
			txn(entity.TransactionTypeExpense, "50", "2025-06-02", groceries),
		}

		items, err := categoryBreakdown(txns)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}
		if items[0].Category != "Rent" {
			t.Errorf("expected Rent first, got %s", items[0].Category)
		}
		// Equal amounts fall back to name order.
		if items[1].Category != "Groceries" || items[2].Category != "Transport" {
			t.Errorf("expected tie order [Groceries Transport], got [%s %s]", items[1].Category, items[2].Category)
		}
	})

	t.Run("uncategorized expenses get their own bucket", func(t *testing.T) {
		txns := []*entity.TransactionWithCategory{
			txn(entity.TransactionTypeExpense, "25", "2025-06-01", nil),
			txn(entity.TransactionTypeExpense, "75", "2025-06-02", expenseCategory("Groceries")),
		}

		items, err := categoryBreakdown(txns)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[1].Category != UncategorizedBucket {
			t.Errorf("expected %s bucket, got %s", UncategorizedBucket, items[1].Category)
		}
		if items[0].Percentage != 75 {
			t.Errorf("expected 75%% for Groceries, got %v", items[0].Percentage)
		}
		if items[1].Percentage != 25 {
			t.Errorf("expected 25%% for uncategorized, got %v", items[1].Percentage)
		}
	})

	t.Run("income transactions are excluded", func(t *testing.T) {
		txns := []*entity.TransactionWithCategory{
			txn(entity.TransactionTypeIncome, "3000", "2025-06-01", nil),
			txn(entity.TransactionTypeExpense, "100", "2025-06-02", expenseCategory("Groceries")),
		}

		items, err := categoryBreakdown(txns)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(items) != 1 {
			t.Fatalf("expected 1 item, got %d", len(items))
		}
		if !items[0].Amount.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected amount 100, got %s", items[0].Amount)
		}
	})

	t.Run("no expenses yields empty breakdown", func(t *testing.T) {
		txns := []*entity.TransactionWithCategory{
			txn(entity.TransactionTypeIncome, "3000", "2025-06-01", nil),
		}

		items, err := categoryBreakdown(txns)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("expected no items, got %d", len(items))
		}
	})
}

func TestSummarize(t *testing.T) {
	t.Run("computes totals and savings rate", func(t *testing.T) {
		txns := []*entity.TransactionWithCategory{
			txn(entity.TransactionTypeIncome, "3000", "2025-06-01", nil),
			txn(entity.TransactionTypeExpense, "100", "2025-06-10", nil),
			txn(entity.TransactionTypeExpense, "50", "2025-06-20", nil),
		}

		summary, err := summarize(txns)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !summary.TotalIncome.Equal(decimal.RequireFromString("3000")) {
			t.Errorf("expected income 3000, got %s", summary.TotalIncome)
		}
		if !summary.TotalExpenses.Equal(decimal.RequireFromString("150")) {
			t.Errorf("expected expenses 150, got %s", summary.TotalExpenses)
		}
		if !summary.NetSavings.Equal(decimal.RequireFromString("2850")) {
			t.Errorf("expected net savings 2850, got %s", summary.NetSavings)
		}
		if summary.SavingsRate != 95 {
			t.Errorf("expected savings rate 95, got %v", summary.SavingsRate)
		}
	})

	t.Run("savings rate is zero without income", func(t *testing.T) {
		txns := []*entity.TransactionWithCategory{
			txn(entity.TransactionTypeExpense, "100", "2025-06-10", nil),
		}

		summary, err := summarize(txns)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.SavingsRate != 0 {
			t.Errorf("expected savings rate 0, got %v", summary.SavingsRate)
		}
		if !summary.NetSavings.Equal(decimal.RequireFromString("-100")) {
			t.Errorf("expected net savings -100, got %s", summary.NetSavings)
		}
	})

	t.Run("savings rate can be negative", func(t *testing.T) {
		txns := []*entity.TransactionWithCategory{
			txn(entity.TransactionTypeIncome, "100", "2025-06-01", nil),
			txn(entity.TransactionTypeExpense, "150", "2025-06-10", nil),
		}

		summary, err := summarize(txns)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if summary.SavingsRate != -50 {
			t.Errorf("expected savings rate -50, got %v", summary.SavingsRate)
		}
	})
}

func TestValidateWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		wantCode domainerror.ReportErrorCode
	}{
		{"valid window", start, end, ""},
		{"same day window", start, start, ""},
		{"missing start date", time.Time{}, end, domainerror.ErrCodeMissingStartDate},
		{"missing end date", start, time.Time{}, domainerror.ErrCodeMissingEndDate},
		{"inverted window", end, start, domainerror.ErrCodeInvalidDateRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateWindow(tc.start, tc.end)

			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var reportErr *domainerror.ReportError
			if !errors.As(err, &reportErr) {
				t.Fatalf("expected ReportError, got %v", err)
			}
			if reportErr.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, reportErr.Code)
			}
		})
	}
}
