// Package repository データアクセス層のインターフェースを定義する
package repository

import (
	"context"

	"boss-brief-api/internal/domain/entity"
)

// WorkerFilter 編集者の絞り込み条件
type WorkerFilter struct {
	Status   entity.WorkerStatus
	Platform string
}

// WorkerRepository 編集者リポジトリ
type WorkerRepository interface {
	// Create 編集者を作成する（capability 含む）
	Create(ctx context.Context, worker *entity.Worker) error

	// GetByID ID で編集者を取得する。存在しなければ (nil, nil)
	GetByID(ctx context.Context, id string) (*entity.Worker, error)

	// GetByOwnerUserID 所有者のユーザー ID で編集者を取得する。存在しなければ (nil, nil)
	GetByOwnerUserID(ctx context.Context, ownerUserID string) (*entity.Worker, error)

	// Update 編集者を更新する
	Update(ctx context.Context, worker *entity.Worker) error

	// Delete 編集者を削除する
	Delete(ctx context.Context, id string) error

	// List 編集者を登録日時の降順で返す
	List(ctx context.Context, filter *WorkerFilter, pagination Pagination) (*PagedResult[*entity.Worker], error)
}
