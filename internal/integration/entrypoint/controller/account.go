// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/usecase/account"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// AccountController handles account endpoints.
type AccountController struct {
	listUseCase   *account.ListAccountsUseCase
	createUseCase *account.CreateAccountUseCase
	getUseCase    *account.GetAccountUseCase
	updateUseCase *account.UpdateAccountUseCase
	deleteUseCase *account.DeleteAccountUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	listUseCase *account.ListAccountsUseCase,
	createUseCase *account.CreateAccountUseCase,
	getUseCase *account.GetAccountUseCase,
	updateUseCase *account.UpdateAccountUseCase,
	deleteUseCase *account.DeleteAccountUseCase,
) *AccountController {
	return &AccountController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
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
	output, err := c.listUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	// Build response
	accounts := make([]dto.AccountResponse, 0, len(output.Accounts))
	for _, a := range output.Accounts {
		accounts = append(accounts, dto.ToAccountResponse(a))
	}
	ctx.JSON(http.StatusOK, dto.AccountListResponse{Accounts: accounts})
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
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
	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingAccountFields),
		})
		return
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), account.CreateAccountInput{
		UserID:      userID,
		Name:        req.Name,
		Type:        entity.AccountType(req.Type),
		Balance:     decimal.NewFromFloat(req.Balance),
		Currency:    req.Currency,
		Description: req.Description,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// Get handles GET /accounts/:id requests.
func (c *AccountController) Get(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse account ID from URL
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	// Execute use case
	output, err := c.getUseCase.Execute(ctx.Request.Context(), account.GetAccountInput{
		UserID:    userID,
		AccountID: accountID,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Update handles PATCH /accounts/:id requests.
func (c *AccountController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse account ID from URL
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	// Parse request body
	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	// Build input
	input := account.UpdateAccountInput{
		UserID:      userID,
		AccountID:   accountID,
		Name:        req.Name,
		Currency:    req.Currency,
		Description: req.Description,
	}
	if req.Type != nil {
		accountType := entity.AccountType(*req.Type)
		input.Type = &accountType
	}
	if req.Balance != nil {
		balance := decimal.NewFromFloat(*req.Balance)
		input.Balance = &balance
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToAccountResponse(output.Account))
}

// Delete handles DELETE /accounts/:id requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse account ID from URL
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	// Execute use case
	_, err = c.deleteUseCase.Execute(ctx.Request.Context(), account.DeleteAccountInput{
		UserID:    userID,
		AccountID: accountID,
	})
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	// Return no content on success
	ctx.Status(http.StatusNoContent)
}

// handleAccountError handles account errors and returns appropriate HTTP responses.
func (c *AccountController) handleAccountError(ctx *gin.Context, err error) {
	var accErr *domainerror.AccountError
	if errors.As(err, &accErr) {
		statusCode := c.getStatusCodeForAccountError(accErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAccountError maps account error codes to HTTP status codes.
func (c *AccountController) getStatusCodeForAccountError(code domainerror.AccountErrorCode) int {
	switch code {
	case domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedAccount:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidAccountType,
		domainerror.ErrCodeInvalidCurrencyCode,
		domainerror.ErrCodeAccountNameRequired,
		domainerror.ErrCodeMissingAccountFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
