// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an account by its ID.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByUser retrieves all accounts for a given user, newest first.
func (r *accountRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// SumBalances returns the sum of balances over all accounts for the user.
func (r *accountRepository) SumBalances(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Select("COALESCE(SUM(balance), 0)").
		Where("user_id = ?", userID).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// Update updates an existing account in the database.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Save(accountModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}

// Delete soft-deletes an account from the database.
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.AccountModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}
