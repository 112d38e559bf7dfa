// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// DetailedReportInput represents the input for the detailed report.
type DetailedReportInput struct {
	UserID      uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	AccountIDs  []uuid.UUID
	CategoryIDs []uuid.UUID
	Type        *entity.TransactionType
}

// DetailedReportOutput represents the output of the detailed report.
type DetailedReportOutput struct {
	Transactions []*entity.TransactionWithCategory
	Trends       []MonthlyTrend
	Breakdown    []CategoryAmount
	Summary      *Summary
}

// DetailedReportUseCase produces a filtered transaction listing together with
// the trend, breakdown and summary aggregates for the same window.
type DetailedReportUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDetailedReportUseCase creates a new DetailedReportUseCase instance.
func NewDetailedReportUseCase(transactionRepo adapter.TransactionRepository) *DetailedReportUseCase {
	return &DetailedReportUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute builds the report. All aggregates are computed over the same
// filtered transaction set, so account/category/type filters apply to them too.
func (uc *DetailedReportUseCase) Execute(ctx context.Context, input DetailedReportInput) (*DetailedReportOutput, error) {
	if err := validateWindow(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	if input.Type != nil && !entity.IsValidTransactionType(*input.Type) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnknownTransactionType,
			fmt.Sprintf("unknown transaction type filter %q", *input.Type),
			domainerror.ErrUnknownTransactionType,
		)
	}

	txns, err := uc.transactionRepo.FindByFilter(ctx, input.UserID, adapter.TransactionFilter{
		StartDate:   &input.StartDate,
		EndDate:     &input.EndDate,
		AccountIDs:  input.AccountIDs,
		CategoryIDs: input.CategoryIDs,
		Type:        input.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for report: %w", err)
	}

	trends, err := monthlyTrends(txns)
	if err != nil {
		return nil, err
	}

	breakdown, err := categoryBreakdown(txns)
	if err != nil {
		return nil, err
	}

	summary, err := summarize(txns)
	if err != nil {
		return nil, err
	}

	return &DetailedReportOutput{
		Transactions: txns,
		Trends:       trends,
		Breakdown:    breakdown,
		Summary:      summary,
	}, nil
}
