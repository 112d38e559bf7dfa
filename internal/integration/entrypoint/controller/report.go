// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/budgetwise/backend/internal/application/usecase/report"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	trendsUseCase    *report.MonthlyTrendsUseCase
	breakdownUseCase *report.CategoryBreakdownUseCase
	summaryUseCase   *report.FinancialSummaryUseCase
	detailedUseCase  *report.DetailedReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	trendsUseCase *report.MonthlyTrendsUseCase,
	breakdownUseCase *report.CategoryBreakdownUseCase,
	summaryUseCase *report.FinancialSummaryUseCase,
	detailedUseCase *report.DetailedReportUseCase,
) *ReportController {
	return &ReportController{
		trendsUseCase:    trendsUseCase,
		breakdownUseCase: breakdownUseCase,
		summaryUseCase:   summaryUseCase,
		detailedUseCase:  detailedUseCase,
	}
}

// Trends handles GET /reports/trends requests.
func (c *ReportController) Trends(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse optional months parameter
	months := 0
	if monthsStr := ctx.Query("months"); monthsStr != "" {
		parsed, err := strconv.Atoi(monthsStr)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "months must be a positive integer",
			})
			return
		}
		months = parsed
	}

	// Execute use case
	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), report.MonthlyTrendsInput{
		UserID: userID,
		Months: months,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.MonthlyTrendsResponse{
		Trends: dto.ToMonthlyTrendResponses(output.Trends),
	})
}

// Breakdown handles GET /reports/breakdown requests.
func (c *ReportController) Breakdown(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse window query parameters
	startDate, endDate, err := parseReportWindow(ctx)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	// Execute use case
	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), report.CategoryBreakdownInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.CategoryBreakdownResponse{
		Breakdown: dto.ToCategoryBreakdownItemResponses(output.Items),
	})
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse window query parameters
	startDate, endDate, err := parseReportWindow(ctx)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	// Execute use case
	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), report.FinancialSummaryInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(output.Summary))
}

// Detailed handles GET /reports/detailed requests.
func (c *ReportController) Detailed(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	// Parse window query parameters
	startDate, endDate, err := parseReportWindow(ctx)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	// Parse optional filters
	filter, err := parseTransactionFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: err.Error(),
		})
		return
	}

	// Execute use case
	output, err := c.detailedUseCase.Execute(ctx.Request.Context(), report.DetailedReportInput{
		UserID:      userID,
		StartDate:   startDate,
		EndDate:     endDate,
		AccountIDs:  filter.AccountIDs,
		CategoryIDs: filter.CategoryIDs,
		Type:        filter.Type,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	// Build response
	transactions := make([]dto.TransactionResponse, 0, len(output.Transactions))
	for _, tc := range output.Transactions {
		transactions = append(transactions, dto.ToTransactionWithCategoryResponse(tc))
	}
	ctx.JSON(http.StatusOK, dto.DetailedReportResponse{
		Transactions: transactions,
		Trends:       dto.ToMonthlyTrendResponses(output.Trends),
		Breakdown:    dto.ToCategoryBreakdownItemResponses(output.Breakdown),
		Summary:      dto.ToFinancialSummaryResponse(output.Summary),
	})
}

// parseReportWindow parses start_date and end_date query parameters.
// Missing bounds are left as zero values so the use case can reject
// them with the proper error code.
func parseReportWindow(ctx *gin.Context) (time.Time, time.Time, error) {
	var startDate, endDate time.Time

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		parsed, err := time.Parse(dateLayout, startDateStr)
		if err != nil {
			return startDate, endDate, domainerror.NewReportError(
				domainerror.ErrCodeInvalidDateFmt,
				"invalid start_date format, expected YYYY-MM-DD",
				domainerror.ErrInvalidDateFormat,
			)
		}
		startDate = parsed
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		parsed, err := time.Parse(dateLayout, endDateStr)
		if err != nil {
			return startDate, endDate, domainerror.NewReportError(
				domainerror.ErrCodeInvalidDateFmt,
				"invalid end_date format, expected YYYY-MM-DD",
				domainerror.ErrInvalidDateFormat,
			)
		}
		endDate = parsed
	}

	return startDate, endDate, nil
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := c.getStatusCodeForReportError(reportErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
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

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStartDate,
		domainerror.ErrCodeMissingEndDate,
		domainerror.ErrCodeInvalidDateRange,
		domainerror.ErrCodeInvalidDateFmt:
		return http.StatusBadRequest
	case domainerror.ErrCodeUnknownTransactionType:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
