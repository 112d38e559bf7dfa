// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/email/templates"
)

type fakeEmailQueue struct {
	jobs []*entity.EmailJob
}

func (q *fakeEmailQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeEmailQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	pending := make([]*entity.EmailJob, 0)
	now := time.Now().UTC()
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(now) {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (q *fakeEmailQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	return nil
}

func (q *fakeEmailQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	for _, job := range q.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return nil, errors.New("job not found")
}

type fakeSender struct {
	sent []adapter.SendEmailInput
	err  error
}

func (s *fakeSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ProviderID: "provider-123"}, nil
}

func budgetAlertJob() *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplateBudgetAlert,
		"user@example.com",
		"Test User",
		"Budget alert: Groceries",
		map[string]interface{}{
			"category_name":   "Groceries",
			"amount_spent":    "450",
			"budget_amount":   "500",
			"percentage_used": 90.0,
		},
	)
}

func newTestWorker(t *testing.T, queue *fakeEmailQueue, sender *fakeSender) *Worker {
	t.Helper()

	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}

	return NewWorker(queue, sender, renderer, WorkerConfig{
		PollInterval: time.Second,
		BatchSize:    10,
	})
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("sends pending budget alert and marks it sent", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := &fakeSender{}
		worker := newTestWorker(t, queue, sender)

		job := budgetAlertJob()
		queue.jobs = append(queue.jobs, job)

		worker.ProcessNow(ctx)

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 sent email, got %d", len(sender.sent))
		}
		if sender.sent[0].To != "user@example.com" {
			t.Errorf("expected recipient user@example.com, got %s", sender.sent[0].To)
		}
		if sender.sent[0].HTML == "" {
			t.Error("expected rendered HTML body")
		}

		if job.Status != entity.EmailStatusSent {
			t.Errorf("expected status sent, got %s", job.Status)
		}
		if job.ProviderID != "provider-123" {
			t.Errorf("expected provider ID to be recorded, got %q", job.ProviderID)
		}
	})

	t.Run("transient send failure schedules a retry", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := &fakeSender{err: errors.New("connection refused")}
		worker := newTestWorker(t, queue, sender)

		job := budgetAlertJob()
		queue.jobs = append(queue.jobs, job)

		worker.ProcessNow(ctx)

		if job.Status != entity.EmailStatusPending {
			t.Errorf("expected status pending for retry, got %s", job.Status)
		}
		if job.Attempts != 1 {
			t.Errorf("expected 1 attempt, got %d", job.Attempts)
		}
		if job.LastError == "" {
			t.Error("expected last error to be recorded")
		}
	})

	t.Run("permanent send failure fails the job", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := &fakeSender{
			err: domainerror.NewEmailError(
				domainerror.ErrCodePermanentEmailFailure,
				"invalid recipient",
				errors.New("bad address"),
			),
		}
		worker := newTestWorker(t, queue, sender)

		job := budgetAlertJob()
		queue.jobs = append(queue.jobs, job)

		worker.ProcessNow(ctx)

		if job.Status != entity.EmailStatusFailed {
			t.Errorf("expected status failed, got %s", job.Status)
		}
	})

	t.Run("exhausted retries fail the job", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := &fakeSender{err: errors.New("still down")}
		worker := newTestWorker(t, queue, sender)

		job := budgetAlertJob()
		queue.jobs = append(queue.jobs, job)

		for i := 0; i < job.MaxAttempts; i++ {
			// Pull the retry forward so the pending job is picked up again.
			job.ScheduledAt = time.Now().UTC().Add(-time.Second)
			worker.ProcessNow(ctx)
		}

		if job.Status != entity.EmailStatusFailed {
			t.Errorf("expected status failed after %d attempts, got %s", job.MaxAttempts, job.Status)
		}
		if job.Attempts != job.MaxAttempts {
			t.Errorf("expected %d attempts, got %d", job.MaxAttempts, job.Attempts)
		}
	})

	t.Run("unknown template type fails permanently", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := &fakeSender{}
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(
			entity.EmailTemplateType("mystery"),
			"user@example.com",
			"Test User",
			"Mystery",
			nil,
		)
		queue.jobs = append(queue.jobs, job)

		worker.ProcessNow(ctx)

		if len(sender.sent) != 0 {
			t.Errorf("expected no emails sent, got %d", len(sender.sent))
		}
		if job.Status != entity.EmailStatusFailed {
			t.Errorf("expected status failed, got %s", job.Status)
		}
	})

	t.Run("empty queue is a no-op", func(t *testing.T) {
		queue := &fakeEmailQueue{}
		sender := &fakeSender{}
		worker := newTestWorker(t, queue, sender)

		worker.ProcessNow(ctx)

		if len(sender.sent) != 0 {
			t.Errorf("expected no emails sent, got %d", len(sender.sent))
		}
	})
}

func TestWorker_StartStopsOnContextCancel(t *testing.T) {
	queue := &fakeEmailQueue{}
	sender := &fakeSender{}
	worker := newTestWorker(t, queue, sender)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}
