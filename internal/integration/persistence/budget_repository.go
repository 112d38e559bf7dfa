// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a budget by its ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByUser retrieves all budgets for a given user, newest first.
func (r *budgetRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// FindActive retrieves budgets for the user that are flagged active and whose
// inclusive [start_date, end_date] window covers asOf.
func (r *budgetRepository) FindActive(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND start_date <= ? AND end_date >= ?",
			userID, true, asOf, asOf).
		Order("created_at DESC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// SumExpenses returns the sum of expense-type transaction amounts for the
// user and category within the inclusive date window.
func (r *budgetRepository) SumExpenses(ctx context.Context, userID, categoryID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND category_id = ? AND type = ? AND date >= ? AND date <= ?",
			userID, categoryID, string(entity.TransactionTypeExpense), startDate, endDate).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// UpdateSpent persists a refreshed spent value for the budget.
func (r *budgetRepository) UpdateSpent(ctx context.Context, budgetID uuid.UUID, spent decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ?", budgetID).
		Update("spent", spent)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// Update updates an existing budget in the database.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Save(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// Delete soft-deletes a budget from the database.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}
