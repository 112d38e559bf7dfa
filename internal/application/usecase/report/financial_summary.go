// Package report contains reporting and aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// FinancialSummaryInput represents the input for the financial summary report.
type FinancialSummaryInput struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// FinancialSummaryOutput represents the output of the financial summary report.
type FinancialSummaryOutput struct {
	Summary *Summary
}

// FinancialSummaryUseCase computes aggregate income/expense figures over a window.
type FinancialSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewFinancialSummaryUseCase creates a new FinancialSummaryUseCase instance.
func NewFinancialSummaryUseCase(transactionRepo adapter.TransactionRepository) *FinancialSummaryUseCase {
	return &FinancialSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the summary for the inclusive window.
func (uc *FinancialSummaryUseCase) Execute(ctx context.Context, input FinancialSummaryInput) (*FinancialSummaryOutput, error) {
	if err := validateWindow(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	txns, err := uc.transactionRepo.FindByFilter(ctx, input.UserID, adapter.TransactionFilter{
		StartDate: &input.StartDate,
		EndDate:   &input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for summary: %w", err)
	}

	summary, err := summarize(txns)
	if err != nil {
		return nil, err
	}

	return &FinancialSummaryOutput{Summary: summary}, nil
}
