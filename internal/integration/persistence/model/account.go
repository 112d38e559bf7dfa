// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Type        string          `gorm:"type:varchar(20);not null"`
	Balance     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'USD'"`
	Description string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Account{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Type:        entity.AccountType(m.Type),
		Balance:     m.Balance,
		Currency:    m.Currency,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	var deletedAt gorm.DeletedAt
	if account.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *account.DeletedAt, Valid: true}
	}

	return &AccountModel{
		ID:          account.ID,
		UserID:      account.UserID,
		Name:        account.Name,
		Type:        string(account.Type),
		Balance:     account.Balance,
		Currency:    account.Currency,
		Description: account.Description,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
