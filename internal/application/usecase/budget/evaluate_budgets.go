// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// EvaluateBudgetsInput represents the input for budget evaluation.
type EvaluateBudgetsInput struct {
	UserID uuid.UUID
	AsOf   time.Time // Zero value means "now"
}

// BudgetNotification represents a threshold-breach alert for a single budget.
type BudgetNotification struct {
	BudgetID              uuid.UUID
	CategoryName          string
	AmountSpent           decimal.Decimal
	BudgetAmount          decimal.Decimal
	PercentageUsed        float64
	NotificationThreshold float64
}

// EvaluateBudgetsOutput represents the output of budget evaluation.
type EvaluateBudgetsOutput struct {
	Notifications []BudgetNotification
}

// EvaluateBudgetsUseCase recomputes the spend for every active budget,
// persists it, and emits notifications for budgets whose spend has reached
// the notification threshold. Breaches are additionally queued as alert
// emails when the user opted in and a queue is configured.
type EvaluateBudgetsUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	userRepo     adapter.UserRepository
	emailQueue   adapter.EmailQueueRepository // Optional, nil disables alert emails
}

// NewEvaluateBudgetsUseCase creates a new EvaluateBudgetsUseCase instance.
func NewEvaluateBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	userRepo adapter.UserRepository,
	emailQueue adapter.EmailQueueRepository,
) *EvaluateBudgetsUseCase {
	return &EvaluateBudgetsUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		emailQueue:   emailQueue,
	}
}

// Execute performs the budget evaluation.
func (uc *EvaluateBudgetsUseCase) Execute(ctx context.Context, input EvaluateBudgetsInput) (*EvaluateBudgetsOutput, error) {
	asOf := defaultAsOf(input.AsOf)

	budgets, err := uc.budgetRepo.FindActive(ctx, input.UserID, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list active budgets: %w", err)
	}

	output := &EvaluateBudgetsOutput{
		Notifications: make([]BudgetNotification, 0, len(budgets)),
	}

	for _, b := range budgets {
		spent, err := currentSpent(ctx, uc.budgetRepo, b)
		if err != nil {
			return nil, fmt.Errorf("failed to compute spend for budget %s: %w", b.ID, err)
		}

		// Refresh the derived spent column. A failed write after a successful
		// read is reported, not silently retried.
		if err := uc.budgetRepo.UpdateSpent(ctx, b.ID, spent); err != nil {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetSpentWriteFailed,
				"failed to persist budget spent amount",
				err,
			)
		}
		b.Spent = spent

		if !thresholdReached(b, spent) {
			continue
		}

		name, err := categoryName(ctx, uc.categoryRepo, b.CategoryID)
		if err != nil {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetCategoryNotFound,
				"category not found for budget",
				err,
			)
		}

		notification := BudgetNotification{
			BudgetID:              b.ID,
			CategoryName:          name,
			AmountSpent:           spent,
			BudgetAmount:          b.Amount,
			PercentageUsed:        percentageUsed(b, spent),
			NotificationThreshold: b.NotificationThreshold,
		}
		output.Notifications = append(output.Notifications, notification)

		uc.queueAlertEmail(ctx, input.UserID, notification)
	}

	return output, nil
}

// queueAlertEmail enqueues a budget alert email for the user. Delivery is
// best-effort and never fails the evaluation.
func (uc *EvaluateBudgetsUseCase) queueAlertEmail(ctx context.Context, userID uuid.UUID, n BudgetNotification) {
	if uc.emailQueue == nil {
		return
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil || !user.BudgetAlerts {
		return
	}

	job := entity.NewEmailJob(
		entity.TemplateBudgetAlert,
		user.Email,
		user.FullName,
		fmt.Sprintf("Budget alert: %s", n.CategoryName),
		map[string]interface{}{
			"category_name":   n.CategoryName,
			"amount_spent":    n.AmountSpent.String(),
			"budget_amount":   n.BudgetAmount.String(),
			"percentage_used": n.PercentageUsed,
		},
	)

	if err := uc.emailQueue.Create(ctx, job); err != nil {
		slog.Error("failed to queue budget alert email",
			"budget_id", n.BudgetID,
			"error", err,
		)
	}
}
