// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account holding funds.
type AccountType string

const (
	AccountTypeBank        AccountType = "bank"
	AccountTypeMobileMoney AccountType = "mobile_money"
	AccountTypeCash        AccountType = "cash"
	AccountTypeOther       AccountType = "other"
)

// DefaultCurrency is the currency assigned to accounts that do not specify one.
const DefaultCurrency = "USD"

// Account represents a source of funds in the Budgetwise system.
// Balance is a denormalized running total maintained by account updates;
// it is not reconciled against the transaction history.
type Account struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Type        AccountType
	Balance     decimal.Decimal
	Currency    string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewAccount creates a new Account entity.
func NewAccount(userID uuid.UUID, name string, accountType AccountType, balance decimal.Decimal, currency, description string) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Type:        accountType,
		Balance:     balance,
		Currency:    currency,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValidAccountType reports whether the given value is a known account type.
func IsValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeBank, AccountTypeMobileMoney, AccountTypeCash, AccountTypeOther:
		return true
	}
	return false
}
