// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/transaction"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// dateLayout is the expected format for date query parameters and fields.
const dateLayout = "2006-01-02"

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	getUseCase    *transaction.GetTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse filter query parameters
	filter, err := parseTransactionFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	// Execute use case
	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID: userID,
		Filter: filter,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Build response
	transactions := make([]dto.TransactionResponse, 0, len(output.Transactions))
	for _, tc := range output.Transactions {
		transactions = append(transactions, dto.ToTransactionWithCategoryResponse(tc))
	}
	ctx.JSON(http.StatusOK, dto.TransactionListResponse{Transactions: transactions})
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
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
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	// Parse identifiers and date
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	var categoryID *uuid.UUID
	if req.CategoryID != nil {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		categoryID = &id
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:      userID,
		AccountID:   accountID,
		CategoryID:  categoryID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Type:        entity.TransactionType(req.Type),
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse transaction ID from URL
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse transaction ID from URL
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	// Build input
	input := transaction.UpdateTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
		ClearCategory: req.ClearCategory,
		Description:   req.Description,
	}
	if req.AccountID != nil {
		id, err := uuid.Parse(*req.AccountID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid account ID format",
			})
			return
		}
		input.AccountID = &id
	}
	if req.CategoryID != nil {
		id, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.CategoryID = &id
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Type != nil {
		txnType := entity.TransactionType(*req.Type)
		input.Type = &txnType
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse transaction ID from URL
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	// Execute use case
	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// parseTransactionFilter builds a transaction filter from query parameters.
func parseTransactionFilter(ctx *gin.Context) (adapter.TransactionFilter, error) {
	var filter adapter.TransactionFilter

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := time.Parse(dateLayout, startDateStr)
		if err != nil {
			return filter, errors.New("invalid start_date format, expected YYYY-MM-DD")
		}
		filter.StartDate = &startDate
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := time.Parse(dateLayout, endDateStr)
		if err != nil {
			return filter, errors.New("invalid end_date format, expected YYYY-MM-DD")
		}
		filter.EndDate = &endDate
	}

	for _, idStr := range ctx.QueryArray("account_id") {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return filter, errors.New("invalid account_id format")
		}
		filter.AccountIDs = append(filter.AccountIDs, id)
	}
	for _, idStr := range ctx.QueryArray("category_id") {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return filter, errors.New("invalid category_id format")
		}
		filter.CategoryIDs = append(filter.CategoryIDs, id)
	}

	if typeStr := ctx.Query("type"); typeStr != "" {
		txnType := entity.TransactionType(typeStr)
		filter.Type = &txnType
	}

	return filter, nil
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := c.getStatusCodeForTransactionError(txnErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeTxnCategoryNotFound,
		domainerror.ErrCodeTxnAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
