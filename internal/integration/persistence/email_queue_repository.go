// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/persistence/model"
)

// emailQueueRepository implements the adapter.EmailQueueRepository interface.
type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository instance.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{
		db: db,
	}
}

// Create adds a new email job to the queue.
func (r *emailQueueRepository) Create(ctx context.Context, job *entity.EmailJob) error {
	jobModel := model.EmailQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Create(jobModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled_at.
func (r *emailQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var jobModels []model.EmailQueueModel
	result := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", string(entity.EmailStatusPending), time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&jobModels)
	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.EmailJob, len(jobModels))
	for i := range jobModels {
		jobs[i] = jobModels[i].ToEntity()
	}
	return jobs, nil
}

// Update saves changes to an email job.
func (r *emailQueueRepository) Update(ctx context.Context, job *entity.EmailJob) error {
	jobModel := model.EmailQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Save(jobModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEmailJobNotFound
	}
	return nil
}

// GetByID retrieves a specific job by its ID.
func (r *emailQueueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	var jobModel model.EmailQueueModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&jobModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEmailJobNotFound
		}
		return nil, result.Error
	}
	return jobModel.ToEntity(), nil
}
