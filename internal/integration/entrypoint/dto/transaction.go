// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	AccountID   string  `json:"account_id" binding:"required,uuid"`
	CategoryID  *string `json:"category_id,omitempty" binding:"omitempty,uuid"`
	Amount      float64 `json:"amount" binding:"required,gte=0"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	AccountID     *string  `json:"account_id,omitempty" binding:"omitempty,uuid"`
	CategoryID    *string  `json:"category_id,omitempty" binding:"omitempty,uuid"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gte=0"`
	Type          *string  `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Date          *string  `json:"date,omitempty"`
}

// TransactionCategoryResponse represents category information in transaction responses.
type TransactionCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	AccountID   string                       `json:"account_id"`
	CategoryID  *string                      `json:"category_id,omitempty"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	Amount      string                       `json:"amount"`
	Type        string                       `json:"type"`
	Description string                       `json:"description"`
	Date        string                       `json:"date"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		AccountID:   txn.AccountID.String(),
		Amount:      txn.Amount.String(),
		Type:        string(txn.Type),
		Description: txn.Description,
		Date:        txn.Date.Format("2006-01-02"),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if txn.CategoryID != nil {
		id := txn.CategoryID.String()
		response.CategoryID = &id
	}

	return response
}

// ToTransactionWithCategoryResponse converts a TransactionWithCategory to a TransactionResponse DTO.
func ToTransactionWithCategoryResponse(tc *entity.TransactionWithCategory) TransactionResponse {
	response := ToTransactionResponse(tc.Transaction)

	if tc.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:   tc.Category.ID.String(),
			Name: tc.Category.Name,
			Type: string(tc.Category.Type),
		}
	}

	return response
}
