// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"boss-brief-api/internal/domain/entity"
	"boss-brief-api/internal/domain/repository"
)

// JobRepository Job 仓储的 PostgreSQL 实现
type JobRepository struct {
	client *Client
}

// NewJobRepository 创建 Job 仓储
func NewJobRepository(client *Client) *JobRepository {
	return &JobRepository{client: client}
}

var _ repository.JobRepository = (*JobRepository)(nil)

func (r *JobRepository) Create(ctx context.Context, job *entity.Job) error {
	ctx, span := tracer.Start(ctx, "postgres.JobRepository.Create")
	defer span.End()

	if err := r.client.db.WithContext(ctx).Create(job).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	ctx, span := tracer.Start(ctx, "postgres.JobRepository.GetByID")
	defer span.End()

	var job entity.Job
	if err := r.client.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

func (r *JobRepository) Update(ctx context.Context, job *entity.Job) error {
	ctx, span := tracer.Start(ctx, "postgres.JobRepository.Update")
	defer span.End()

	if err := r.client.db.WithContext(ctx).Save(job).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update job: %w", err)
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.JobRepository.Delete")
	defer span.End()

	if err := r.client.db.WithContext(ctx).Delete(&entity.Job{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

func (r *JobRepository) ListByOwner(ctx context.Context, ownerUserID string, filter *repository.JobFilter, pagination repository.Pagination) (*repository.PagedResult[*entity.Job], error) {
	ctx, span := tracer.Start(ctx, "postgres.JobRepository.ListByOwner")
	defer span.End()

	query := r.client.db.WithContext(ctx).Model(&entity.Job{}).Where("owner_user_id = ?", ownerUserID)
	if filter != nil && filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	var jobs []*entity.Job
	err := query.
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&jobs).Error
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return repository.NewPagedResult(jobs, total, pagination), nil
}
