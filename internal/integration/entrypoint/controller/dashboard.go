// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/dashboard"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the dashboard endpoint.
type DashboardController struct {
	getUseCase *dashboard.GetDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getUseCase *dashboard.GetDashboardUseCase) *DashboardController {
	return &DashboardController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /dashboard requests.
// The dashboard is composed as a unit: if any of its sections fails
// to load, the whole request fails.
func (c *DashboardController) Get(ctx *gin.Context) {
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
	output, err := c.getUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{
		UserID: userID,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
