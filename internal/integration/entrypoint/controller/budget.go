// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/usecase/budget"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase     *budget.ListBudgetsUseCase
	createUseCase   *budget.CreateBudgetUseCase
	getUseCase      *budget.GetBudgetUseCase
	updateUseCase   *budget.UpdateBudgetUseCase
	deleteUseCase   *budget.DeleteBudgetUseCase
	summaryUseCase  *budget.BudgetSummaryUseCase
	evaluateUseCase *budget.EvaluateBudgetsUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	summaryUseCase *budget.BudgetSummaryUseCase,
	evaluateUseCase *budget.EvaluateBudgetsUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		getUseCase:      getUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		summaryUseCase:  summaryUseCase,
		evaluateUseCase: evaluateUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	// Build response
	budgets := make([]dto.BudgetResponse, 0, len(output.Budgets))
	for _, b := range output.Budgets {
		budgets = append(budgets, dto.ToBudgetResponse(b.Budget, b.Category))
	}
	ctx.JSON(http.StatusOK, dto.BudgetListResponse{Budgets: budgets})
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse request body
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	// Parse category ID and window dates
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
		})
		return
	}
	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format, expected YYYY-MM-DD",
		})
		return
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		UserID:                userID,
		CategoryID:            categoryID,
		Amount:                decimal.NewFromFloat(req.Amount),
		StartDate:             startDate,
		EndDate:               endDate,
		NotificationThreshold: req.NotificationThreshold,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget, nil))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse budget ID from URL
	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget, output.Category))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse budget ID from URL
	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	// Build input
	input := budget.UpdateBudgetInput{
		UserID:                userID,
		BudgetID:              budgetID,
		NotificationThreshold: req.NotificationThreshold,
		IsActive:              req.IsActive,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
			})
			return
		}
		input.EndDate = &endDate
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget, nil))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse budget ID from URL
	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	// Execute use case
	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// Summary handles GET /budgets/summary requests.
func (c *BudgetController) Summary(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Execute use case
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), budget.BudgetSummaryInput{
		UserID: userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	// Build response
	statuses := make([]dto.BudgetStatusResponse, 0, len(output.Budgets))
	for _, s := range output.Budgets {
		statuses = append(statuses, dto.ToBudgetStatusResponse(s))
	}
	ctx.JSON(http.StatusOK, dto.BudgetSummaryResponse{Budgets: statuses})
}

// Evaluate handles POST /budgets/evaluate requests.
// It recomputes spent amounts for all active budgets and returns
// the notifications for budgets that crossed their threshold.
func (c *BudgetController) Evaluate(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Execute use case
	output, err := c.evaluateUseCase.Execute(ctx.Request.Context(), budget.EvaluateBudgetsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	// Build response
	notifications := make([]dto.BudgetNotificationResponse, 0, len(output.Notifications))
	for _, n := range output.Notifications {
		notifications = append(notifications, dto.ToBudgetNotificationResponse(n))
	}
	ctx.JSON(http.StatusOK, dto.BudgetEvaluationResponse{Notifications: notifications})
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound,
		domainerror.ErrCodeBudgetCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedBudget:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidBudgetWindow,
		domainerror.ErrCodeInvalidThreshold,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
