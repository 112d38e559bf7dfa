// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount                decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Spent                 decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	StartDate             time.Time       `gorm:"not null;index"`
	EndDate               time.Time       `gorm:"not null;index"`
	NotificationThreshold float64         `gorm:"type:decimal(3,2);not null;default:0.8"`
	IsActive              bool            `gorm:"default:true"`
	CreatedAt             time.Time       `gorm:"not null"`
	UpdatedAt             time.Time       `gorm:"not null"`
	DeletedAt             gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Budget{
		ID:                    m.ID,
		UserID:                m.UserID,
		CategoryID:            m.CategoryID,
		Amount:                m.Amount,
		Spent:                 m.Spent,
		StartDate:             m.StartDate,
		EndDate:               m.EndDate,
		NotificationThreshold: m.NotificationThreshold,
		IsActive:              m.IsActive,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
		DeletedAt:             deletedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	var deletedAt gorm.DeletedAt
	if budget.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *budget.DeletedAt, Valid: true}
	}

	return &BudgetModel{
		ID:                    budget.ID,
		UserID:                budget.UserID,
		CategoryID:            budget.CategoryID,
		Amount:                budget.Amount,
		Spent:                 budget.Spent,
		StartDate:             budget.StartDate,
		EndDate:               budget.EndDate,
		NotificationThreshold: budget.NotificationThreshold,
		IsActive:              budget.IsActive,
		CreatedAt:             budget.CreatedAt,
		UpdatedAt:             budget.UpdatedAt,
		DeletedAt:             deletedAt,
	}
}
