// Package repository データアクセス層のインターフェースを定義する
package repository

import (
	"context"

	"boss-brief-api/internal/domain/entity"
)

// JobFilter 案件の絞り込み条件
type JobFilter struct {
	Status entity.JobStatus
}

// JobRepository 案件リポジトリ
type JobRepository interface {
	// Create 案件を作成する
	Create(ctx context.Context, job *entity.Job) error

	// GetByID ID で案件を取得する。存在しなければ (nil, nil)
	GetByID(ctx context.Context, id string) (*entity.Job, error)

	// Update 案件を更新する
	Update(ctx context.Context, job *entity.Job) error

	// Delete 案件を削除する
	Delete(ctx context.Context, id string) error

	// ListByOwner 所有者の案件を作成日時の降順で返す
	ListByOwner(ctx context.Context, ownerUserID string, filter *JobFilter, pagination Pagination) (*PagedResult[*entity.Job], error)
}
