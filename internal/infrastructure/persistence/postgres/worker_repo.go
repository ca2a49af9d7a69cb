// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"boss-brief-api/internal/domain/entity"
	"boss-brief-api/internal/domain/repository"
)

// WorkerRepository Worker 仓储的 PostgreSQL 实现
type WorkerRepository struct {
	client *Client
}

// NewWorkerRepository 创建 Worker 仓储
func NewWorkerRepository(client *Client) *WorkerRepository {
	return &WorkerRepository{client: client}
}

var _ repository.WorkerRepository = (*WorkerRepository)(nil)

func (r *WorkerRepository) Create(ctx context.Context, worker *entity.Worker) error {
	ctx, span := tracer.Start(ctx, "postgres.WorkerRepository.Create")
	defer span.End()

	if err := r.client.db.WithContext(ctx).Create(worker).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create worker: %w", err)
	}
	return nil
}

func (r *WorkerRepository) GetByID(ctx context.Context, id string) (*entity.Worker, error) {
	ctx, span := tracer.Start(ctx, "postgres.WorkerRepository.GetByID")
	defer span.End()

	var worker entity.Worker
	err := r.client.db.WithContext(ctx).
		Preload("Capabilities").
		First(&worker, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get worker: %w", err)
	}
	return &worker, nil
}

func (r *WorkerRepository) GetByOwnerUserID(ctx context.Context, ownerUserID string) (*entity.Worker, error) {
	ctx, span := tracer.Start(ctx, "postgres.WorkerRepository.GetByOwnerUserID")
	defer span.End()

	var worker entity.Worker
	err := r.client.db.WithContext(ctx).
		Preload("Capabilities").
		First(&worker, "owner_user_id = ?", ownerUserID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get worker by owner: %w", err)
	}
	return &worker, nil
}

func (r *WorkerRepository) Update(ctx context.Context, worker *entity.Worker) error {
	ctx, span := tracer.Start(ctx, "postgres.WorkerRepository.Update")
	defer span.End()

	db := r.client.db.WithContext(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		// capability 整体替换
		if err := tx.Delete(&entity.Capability{}, "worker_id = ?", worker.ID).Error; err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to clear capabilities: %w", err)
		}
		if err := tx.Save(worker).Error; err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to update worker: %w", err)
		}
		return nil
	})
}

func (r *WorkerRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.WorkerRepository.Delete")
	defer span.End()

	db := r.client.db.WithContext(ctx)
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.Capability{}, "worker_id = ?", id).Error; err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to delete capabilities: %w", err)
		}
		if err := tx.Delete(&entity.Worker{}, "id = ?", id).Error; err != nil {
			span.RecordError(err)
			return fmt.Errorf("failed to delete worker: %w", err)
		}
		return nil
	})
}

func (r *WorkerRepository) List(ctx context.Context, filter *repository.WorkerFilter, pagination repository.Pagination) (*repository.PagedResult[*entity.Worker], error) {
	ctx, span := tracer.Start(ctx, "postgres.WorkerRepository.List")
	defer span.End()

	query := r.client.db.WithContext(ctx).Model(&entity.Worker{})
	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.Platform != "" {
			// platform 过滤作用于 capability 的 text[] 列
			query = query.Where(
				"id IN (SELECT worker_id FROM worker_capabilities WHERE ? = ANY(platforms))",
				filter.Platform,
			)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count workers: %w", err)
	}

	var workers []*entity.Worker
	err := query.
		Preload("Capabilities").
		Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&workers).Error
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	return repository.NewPagedResult(workers, total, pagination), nil
}
