// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	budgets        []*entity.Budget
	expenseSums    map[uuid.UUID]decimal.Decimal
	updatedSpent   map[uuid.UUID]decimal.Decimal
	updateSpentErr error
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{
		expenseSums:  make(map[uuid.UUID]decimal.Decimal),
		updatedSpent: make(map[uuid.UUID]decimal.Decimal),
	}
}

func (r *fakeBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error {
	r.budgets = append(r.budgets, budget)
	return nil
}

func (r *fakeBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	for _, b := range r.budgets {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.New("budget not found")
}

func (r *fakeBudgetRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	return r.budgets, nil
}

func (r *fakeBudgetRepo) FindActive(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]*entity.Budget, error) {
	active := make([]*entity.Budget, 0)
	for _, b := range r.budgets {
		if b.IsActive && !asOf.Before(b.StartDate) && !asOf.After(b.EndDate) {
			active = append(active, b)
		}
	}
	return active, nil
}

func (r *fakeBudgetRepo) SumExpenses(ctx context.Context, userID, categoryID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error) {
	if sum, ok := r.expenseSums[categoryID]; ok {
		return sum, nil
	}
	return decimal.Zero, nil
}

func (r *fakeBudgetRepo) UpdateSpent(ctx context.Context, budgetID uuid.UUID, spent decimal.Decimal) error {
	if r.updateSpentErr != nil {
		return r.updateSpentErr
	}
	r.updatedSpent[budgetID] = spent
	return nil
}

func (r *fakeBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error {
	return nil
}

func (r *fakeBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, errors.New("category not found")
}

func (r *fakeCategoryRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) ExistsByUserAndName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	return false, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fakeUserRepo struct {
	user *entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if r.user == nil {
		return nil, errors.New("user not found")
	}
	return r.user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.FindByID(ctx, uuid.Nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.user != nil, nil
}

type fakeEmailQueue struct {
	jobs []*entity.EmailJob
}

func (q *fakeEmailQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeEmailQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	return q.jobs, nil
}

func (q *fakeEmailQueue) Update(ctx context.Context, job *entity.EmailJob) error { return nil }

func (q *fakeEmailQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	return nil, errors.New("not found")
}

type evaluateFixture struct {
	useCase      *EvaluateBudgetsUseCase
	budgetRepo   *fakeBudgetRepo
	categoryRepo *fakeCategoryRepo
	emailQueue   *fakeEmailQueue
	userID       uuid.UUID
	categoryID   uuid.UUID
}

func newEvaluateFixture(t *testing.T, alertsEnabled bool) *evaluateFixture {
	t.Helper()

	userID := uuid.New()
	budgetRepo := newFakeBudgetRepo()
	categoryRepo := newFakeCategoryRepo()
	emailQueue := &fakeEmailQueue{}

	category := &entity.Category{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "Groceries",
		Type:   entity.TransactionTypeExpense,
	}
	categoryRepo.categories[category.ID] = category

	userRepo := &fakeUserRepo{
		user: &entity.User{
			ID:           userID,
			Email:        "user@example.com",
			FullName:     "Test User",
			IsActive:     true,
			BudgetAlerts: alertsEnabled,
		},
	}

	return &evaluateFixture{
		useCase:      NewEvaluateBudgetsUseCase(budgetRepo, categoryRepo, userRepo, emailQueue),
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		emailQueue:   emailQueue,
		userID:       userID,
		categoryID:   category.ID,
	}
}

func (f *evaluateFixture) addBudget(amount string, threshold float64, spent string) *entity.Budget {
	b := &entity.Budget{
		ID:                    uuid.New(),
		UserID:                f.userID,
		CategoryID:            f.categoryID,
		Amount:                decimal.RequireFromString(amount),
		StartDate:             time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:               time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC),
		NotificationThreshold: threshold,
		IsActive:              true,
	}
	f.budgetRepo.budgets = append(f.budgetRepo.budgets, b)
	f.budgetRepo.expenseSums[f.categoryID] = decimal.RequireFromString(spent)
	return b
}

func TestEvaluateBudgetsUseCase(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("notifies and queues email when threshold is breached", func(t *testing.T) {
		f := newEvaluateFixture(t, true)
		b := f.addBudget("500", 0.8, "450")

		output, err := f.useCase.Execute(context.Background(), EvaluateBudgetsInput{
			UserID: f.userID,
			AsOf:   asOf,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Notifications) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(output.Notifications))
		}

		n := output.Notifications[0]
		if n.BudgetID != b.ID {
			t.Errorf("expected budget %s, got %s", b.ID, n.BudgetID)
		}
		if n.CategoryName != "Groceries" {
			t.Errorf("expected category Groceries, got %s", n.CategoryName)
		}
		if n.PercentageUsed != 90 {
			t.Errorf("expected 90%% used, got %v", n.PercentageUsed)
		}

		if len(f.emailQueue.jobs) != 1 {
			t.Fatalf("expected 1 queued email, got %d", len(f.emailQueue.jobs))
		}
		if f.emailQueue.jobs[0].TemplateType != entity.TemplateBudgetAlert {
			t.Errorf("expected budget alert template, got %s", f.emailQueue.jobs[0].TemplateType)
		}
	})

	t.Run("stays quiet below the threshold", func(t *testing.T) {
		f := newEvaluateFixture(t, true)
		f.addBudget("500", 0.8, "100")

		output, err := f.useCase.Execute(context.Background(), EvaluateBudgetsInput{
			UserID: f.userID,
			AsOf:   asOf,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Notifications) != 0 {
			t.Errorf("expected no notifications, got %d", len(output.Notifications))
		}
		if len(f.emailQueue.jobs) != 0 {
			t.Errorf("expected no queued emails, got %d", len(f.emailQueue.jobs))
		}
	})

	t.Run("refreshes the stored spent amount", func(t *testing.T) {
		f := newEvaluateFixture(t, true)
		b := f.addBudget("500", 0.8, "123.45")

		_, err := f.useCase.Execute(context.Background(), EvaluateBudgetsInput{
			UserID: f.userID,
			AsOf:   asOf,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		spent, ok := f.budgetRepo.updatedSpent[b.ID]
		if !ok {
			t.Fatal("expected spent to be persisted")
		}
		if !spent.Equal(decimal.RequireFromString("123.45")) {
			t.Errorf("expected spent 123.45, got %s", spent)
		}
	})

	t.Run("repeated evaluation without new spend is stable", func(t *testing.T) {
		f := newEvaluateFixture(t, true)
		b := f.addBudget("500", 0.8, "200")

		input := EvaluateBudgetsInput{UserID: f.userID, AsOf: asOf}

		if _, err := f.useCase.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		first := f.budgetRepo.updatedSpent[b.ID]

		if _, err := f.useCase.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second := f.budgetRepo.updatedSpent[b.ID]

		if !first.Equal(second) {
			t.Errorf("expected identical spent values, got %s then %s", first, second)
		}
	})

	t.Run("notifies without email when alerts are disabled", func(t *testing.T) {
		f := newEvaluateFixture(t, false)
		f.addBudget("500", 0.8, "450")

		output, err := f.useCase.Execute(context.Background(), EvaluateBudgetsInput{
			UserID: f.userID,
			AsOf:   asOf,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Notifications) != 1 {
			t.Fatalf("expected 1 notification, got %d", len(output.Notifications))
		}
		if len(f.emailQueue.jobs) != 0 {
			t.Errorf("expected no queued emails, got %d", len(f.emailQueue.jobs))
		}
	})

	t.Run("inactive budgets are skipped", func(t *testing.T) {
		f := newEvaluateFixture(t, true)
		b := f.addBudget("500", 0.8, "450")
		b.IsActive = false

		output, err := f.useCase.Execute(context.Background(), EvaluateBudgetsInput{
			UserID: f.userID,
			AsOf:   asOf,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Notifications) != 0 {
			t.Errorf("expected no notifications, got %d", len(output.Notifications))
		}
	})

	t.Run("failed spent write surfaces a budget error", func(t *testing.T) {
		f := newEvaluateFixture(t, true)
		f.addBudget("500", 0.8, "450")
		f.budgetRepo.updateSpentErr = errors.New("write failed")

		_, err := f.useCase.Execute(context.Background(), EvaluateBudgetsInput{
			UserID: f.userID,
			AsOf:   asOf,
		})
		if err == nil {
			t.Fatal("expected error")
		}

		var budgetErr *domainerror.BudgetError
		if !errors.As(err, &budgetErr) {
			t.Fatalf("expected BudgetError, got %T", err)
		}
		if budgetErr.Code != domainerror.ErrCodeBudgetSpentWriteFailed {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeBudgetSpentWriteFailed, budgetErr.Code)
		}
	})
}

func TestBudgetSummaryUseCase(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("reports progress without touching stored spent", func(t *testing.T) {
		f := newEvaluateFixture(t, true)
		b := f.addBudget("500", 0.8, "100")

		summaryUseCase := NewBudgetSummaryUseCase(f.budgetRepo, f.categoryRepo)

		output, err := summaryUseCase.Execute(context.Background(), BudgetSummaryInput{
			UserID: f.userID,
			AsOf:   asOf,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(output.Budgets) != 1 {
			t.Fatalf("expected 1 budget status, got %d", len(output.Budgets))
		}

		status := output.Budgets[0]
		if status.BudgetID != b.ID {
			t.Errorf("expected budget %s, got %s", b.ID, status.BudgetID)
		}
		if !status.AmountSpent.Equal(decimal.RequireFromString("100")) {
			t.Errorf("expected spent 100, got %s", status.AmountSpent)
		}
		if !status.Remaining.Equal(decimal.RequireFromString("400")) {
			t.Errorf("expected remaining 400, got %s", status.Remaining)
		}
		if status.PercentageUsed != 20 {
			t.Errorf("expected 20%% used, got %v", status.PercentageUsed)
		}

		if len(f.budgetRepo.updatedSpent) != 0 {
			t.Error("summary must not persist spent amounts")
		}
	})

	t.Run("no active budgets yields an empty summary", func(t *testing.T) {
		f := newEvaluateFixture(t, true)

		summaryUseCase := NewBudgetSummaryUseCase(f.budgetRepo, f.categoryRepo)

		output, err := summaryUseCase.Execute(context.Background(), BudgetSummaryInput{
			UserID: f.userID,
			AsOf:   asOf,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Budgets) != 0 {
			t.Errorf("expected empty summary, got %d entries", len(output.Budgets))
		}
	})
}
