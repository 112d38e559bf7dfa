// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Type        string  `json:"type" binding:"required,oneof=bank mobile_money cash other"`
	Balance     float64 `json:"balance"`
	Currency    string  `json:"currency,omitempty" binding:"omitempty,len=3"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=1000"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=bank mobile_money cash other"`
	Balance     *float64 `json:"balance,omitempty"`
	Currency    *string  `json:"currency,omitempty" binding:"omitempty,len=3"`
	Description *string  `json:"description,omitempty" binding:"omitempty,max=1000"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Balance     string    `json:"balance"`
	Currency    string    `json:"currency"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(account *entity.Account) AccountResponse {
	return AccountResponse{
		ID:          account.ID.String(),
		UserID:      account.UserID.String(),
		Name:        account.Name,
		Type:        string(account.Type),
		Balance:     account.Balance.String(),
		Currency:    account.Currency,
		Description: account.Description,
		CreatedAt:   account.CreatedAt,
		UpdatedAt:   account.UpdatedAt,
	}
}
