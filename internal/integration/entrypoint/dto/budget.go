// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetwise/backend/internal/application/usecase/budget"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID            string   `json:"category_id" binding:"required,uuid"`
	Amount                float64  `json:"amount" binding:"required,gt=0"`
	StartDate             string   `json:"start_date" binding:"required"`
	EndDate               string   `json:"end_date" binding:"required"`
	NotificationThreshold *float64 `json:"notification_threshold,omitempty" binding:"omitempty,gte=0,lte=1"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Amount                *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	StartDate             *string  `json:"start_date,omitempty"`
	EndDate               *string  `json:"end_date,omitempty"`
	NotificationThreshold *float64 `json:"notification_threshold,omitempty" binding:"omitempty,gte=0,lte=1"`
	IsActive              *bool    `json:"is_active,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID                    string  `json:"id"`
	UserID                string  `json:"user_id"`
	CategoryID            string  `json:"category_id"`
	CategoryName          string  `json:"category_name,omitempty"`
	Amount                string  `json:"amount"`
	Spent                 string  `json:"spent"`
	StartDate             string  `json:"start_date"`
	EndDate               string  `json:"end_date"`
	NotificationThreshold float64 `json:"notification_threshold"`
	IsActive              bool    `json:"is_active"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetStatusResponse represents the evaluated status of one budget.
type BudgetStatusResponse struct {
	BudgetID              string  `json:"budget_id"`
	CategoryName          string  `json:"category_name"`
	Amount                string  `json:"amount"`
	Spent                 string  `json:"spent"`
	Remaining             string  `json:"remaining"`
	PercentageUsed        float64 `json:"percentage_used"`
	NotificationThreshold float64 `json:"notification_threshold"`
	StartDate             string  `json:"start_date"`
	EndDate               string  `json:"end_date"`
}

// BudgetSummaryResponse represents the response for the budget summary endpoint.
type BudgetSummaryResponse struct {
	Budgets []BudgetStatusResponse `json:"budgets"`
}

// BudgetNotificationResponse represents a threshold-breach alert.
type BudgetNotificationResponse struct {
	BudgetID              string  `json:"budget_id"`
	CategoryName          string  `json:"category_name"`
	AmountSpent           string  `json:"amount_spent"`
	BudgetAmount          string  `json:"budget_amount"`
	PercentageUsed        float64 `json:"percentage_used"`
	NotificationThreshold float64 `json:"notification_threshold"`
}

// BudgetEvaluationResponse represents the response for budget evaluation.
type BudgetEvaluationResponse struct {
	Notifications []BudgetNotificationResponse `json:"notifications"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget, category *entity.Category) BudgetResponse {
	response := BudgetResponse{
		ID:                    b.ID.String(),
		UserID:                b.UserID.String(),
		CategoryID:            b.CategoryID.String(),
		Amount:                b.Amount.String(),
		Spent:                 b.Spent.String(),
		StartDate:             b.StartDate.Format("2006-01-02"),
		EndDate:               b.EndDate.Format("2006-01-02"),
		NotificationThreshold: b.NotificationThreshold,
		IsActive:              b.IsActive,
	}

	if category != nil {
		response.CategoryName = category.Name
	}

	return response
}

// ToBudgetStatusResponse converts a budget status to its DTO form.
func ToBudgetStatusResponse(s budget.BudgetStatus) BudgetStatusResponse {
	return BudgetStatusResponse{
		BudgetID:              s.BudgetID.String(),
		CategoryName:          s.CategoryName,
		Amount:                s.BudgetAmount.String(),
		Spent:                 s.AmountSpent.String(),
		Remaining:             s.Remaining.String(),
		PercentageUsed:        s.PercentageUsed,
		NotificationThreshold: s.NotificationThreshold,
		StartDate:             s.StartDate.Format("2006-01-02"),
		EndDate:               s.EndDate.Format("2006-01-02"),
	}
}

// ToBudgetNotificationResponse converts a budget notification to its DTO form.
func ToBudgetNotificationResponse(n budget.BudgetNotification) BudgetNotificationResponse {
	return BudgetNotificationResponse{
		BudgetID:              n.BudgetID.String(),
		CategoryName:          n.CategoryName,
		AmountSpent:           n.AmountSpent.String(),
		BudgetAmount:          n.BudgetAmount.String(),
		PercentageUsed:        n.PercentageUsed,
		NotificationThreshold: n.NotificationThreshold,
	}
}
