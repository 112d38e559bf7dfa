// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of transaction kinds. Any other value
// encountered during aggregation is a data-integrity error, never a silent
// fallthrough.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValidTransactionType reports whether the given value is a member of the
// closed {income, expense} set.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a financial transaction in the Budgetwise system.
// Amount is always non-negative; Type, not sign, determines whether the
// transaction contributes positively or negatively to net calculations.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	AccountID   uuid.UUID
	CategoryID  *uuid.UUID // Optional, can be uncategorized
	Amount      decimal.Decimal
	Type        TransactionType
	Description string
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID, accountID uuid.UUID,
	categoryID *uuid.UUID,
	amount decimal.Decimal,
	transactionType TransactionType,
	description string,
	date time.Time,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      amount,
		Type:        transactionType,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithCategory represents a transaction with its associated category.
type TransactionWithCategory struct {
	Transaction *Transaction
	Category    *Category
}
