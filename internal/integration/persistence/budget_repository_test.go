// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.UserModel{},
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
		&model.BudgetModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func seedExpense(t *testing.T, db *gorm.DB, userID, accountID uuid.UUID, categoryID *uuid.UUID, amount, day string) {
	t.Helper()

	txn := &model.TransactionModel{
		ID:         uuid.New(),
		UserID:     userID,
		AccountID:  accountID,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString(amount),
		Type:       string(entity.TransactionTypeExpense),
		Date:       date(day),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := db.Create(txn).Error; err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
}

func seedBudget(t *testing.T, db *gorm.DB, userID, categoryID uuid.UUID, amount string, start, end string, active bool) uuid.UUID {
	t.Helper()

	budget := &model.BudgetModel{
		ID:                    uuid.New(),
		UserID:                userID,
		CategoryID:            categoryID,
		Amount:                decimal.RequireFromString(amount),
		Spent:                 decimal.Zero,
		StartDate:             date(start),
		EndDate:               date(end),
		NotificationThreshold: 0.8,
		IsActive:              active,
		CreatedAt:             time.Now(),
		UpdatedAt:             time.Now(),
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to seed budget: %v", err)
	}
	return budget.ID
}

func TestBudgetRepository_SumExpenses(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBudgetRepository(db)

	userID := uuid.New()
	accountID := uuid.New()
	categoryID := uuid.New()
	otherCategoryID := uuid.New()

	seedExpense(t, db, userID, accountID, &categoryID, "100.50", "2025-06-10")
	seedExpense(t, db, userID, accountID, &categoryID, "49.50", "2025-06-20")
	// Outside the window
	seedExpense(t, db, userID, accountID, &categoryID, "999", "2025-07-01")
	// Different category
	seedExpense(t, db, userID, accountID, &otherCategoryID, "30", "2025-06-15")
	// Different user
	seedExpense(t, db, uuid.New(), accountID, &categoryID, "40", "2025-06-15")

	t.Run("sums expenses in the window for the category", func(t *testing.T) {
		total, err := repo.SumExpenses(ctx, userID, categoryID, date("2025-06-01"), date("2025-06-30"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.RequireFromString("150")) {
			t.Errorf("expected 150, got %s", total)
		}
	})

	t.Run("window bounds are inclusive", func(t *testing.T) {
		total, err := repo.SumExpenses(ctx, userID, categoryID, date("2025-06-10"), date("2025-06-20"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.Equal(decimal.RequireFromString("150")) {
			t.Errorf("expected 150, got %s", total)
		}
	})

	t.Run("no matching transactions yields zero", func(t *testing.T) {
		total, err := repo.SumExpenses(ctx, userID, uuid.New(), date("2025-06-01"), date("2025-06-30"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !total.IsZero() {
			t.Errorf("expected 0, got %s", total)
		}
	})
}

func TestBudgetRepository_FindActive(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBudgetRepository(db)

	userID := uuid.New()
	categoryID := uuid.New()

	coveringID := seedBudget(t, db, userID, categoryID, "500", "2025-06-01", "2025-06-30", true)
	// Window has ended
	seedBudget(t, db, userID, categoryID, "400", "2025-01-01", "2025-01-31", true)
	// Flagged inactive
	seedBudget(t, db, userID, categoryID, "300", "2025-06-01", "2025-06-30", false)
	// Another user
	seedBudget(t, db, uuid.New(), categoryID, "200", "2025-06-01", "2025-06-30", true)

	budgets, err := repo.FindActive(ctx, userID, date("2025-06-15"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(budgets) != 1 {
		t.Fatalf("expected 1 active budget, got %d", len(budgets))
	}
	if budgets[0].ID != coveringID {
		t.Errorf("expected budget %s, got %s", coveringID, budgets[0].ID)
	}
}

func TestBudgetRepository_UpdateSpent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBudgetRepository(db)

	userID := uuid.New()
	categoryID := uuid.New()
	budgetID := seedBudget(t, db, userID, categoryID, "500", "2025-06-01", "2025-06-30", true)

	t.Run("persists the spent amount", func(t *testing.T) {
		if err := repo.UpdateSpent(ctx, budgetID, decimal.RequireFromString("123.45")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByID(ctx, budgetID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found.Spent.Equal(decimal.RequireFromString("123.45")) {
			t.Errorf("expected spent 123.45, got %s", found.Spent)
		}
	})

	t.Run("unknown budget returns not found", func(t *testing.T) {
		err := repo.UpdateSpent(ctx, uuid.New(), decimal.RequireFromString("1"))
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("expected ErrBudgetNotFound, got %v", err)
		}
	})
}

func TestBudgetRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBudgetRepository(db)

	userID := uuid.New()
	categoryID := uuid.New()
	budgetID := seedBudget(t, db, userID, categoryID, "500", "2025-06-01", "2025-06-30", true)

	if err := repo.Delete(ctx, budgetID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Soft-deleted budgets are invisible to queries
	if _, err := repo.FindByID(ctx, budgetID); !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("expected ErrBudgetNotFound after delete, got %v", err)
	}

	if err := repo.Delete(ctx, budgetID); !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("expected ErrBudgetNotFound for repeated delete, got %v", err)
	}
}
