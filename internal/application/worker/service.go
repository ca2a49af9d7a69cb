package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"boss-brief-api/internal/domain/entity"
	"boss-brief-api/internal/domain/repository"
	apperrors "boss-brief-api/pkg/errors"
	"boss-brief-api/pkg/metrics"
)

// ProfileCache 派生プロフィールの read-through キャッシュ
type ProfileCache interface {
	GetOrLoadSafe(ctx context.Context, key string, ttl time.Duration, loader func() (interface{}, error)) ([]byte, error)
	Delete(ctx context.Context, keys ...string) error
}

// Service 編集者のアプリケーションサービス
type Service struct {
	repo  repository.WorkerRepository
	cache ProfileCache
	ttl   time.Duration
}

// NewService 編集者サービスを生成する
func NewService(repo repository.WorkerRepository, cache ProfileCache, profileTTL time.Duration) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		ttl:   profileTTL,
	}
}

// Register 編集者を登録する。ID 未指定なら採番し、capability に紐付ける。
func (s *Service) Register(ctx context.Context, w *entity.Worker) error {
	if w.Status == "" {
		w.Status = entity.WorkerStatusOffline
	}
	if !entity.ValidWorkerStatus(w.Status) {
		return apperrors.New(apperrors.CodeInvalidParam, "invalid worker status")
	}
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	for i := range w.Capabilities {
		if w.Capabilities[i].ID == "" {
			w.Capabilities[i].ID = uuid.NewString()
		}
		w.Capabilities[i].WorkerID = w.ID
		if w.Capabilities[i].Type == "" {
			w.Capabilities[i].Type = "video_edit"
		}
	}

	if err := s.repo.Create(ctx, w); err != nil {
		return err
	}
	metrics.WorkersRegisteredTotal.Inc()
	return nil
}

// Get 編集者の取得
func (s *Service) Get(ctx context.Context, id string) (*entity.Worker, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, apperrors.ErrWorkerNotFound
	}
	return w, nil
}

// GetByOwner ログインユーザー自身の編集者レコードの取得
func (s *Service) GetByOwner(ctx context.Context, ownerUserID string) (*entity.Worker, error) {
	w, err := s.repo.GetByOwnerUserID(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, apperrors.ErrWorkerNotFound
	}
	return w, nil
}

// List 編集者一覧
func (s *Service) List(ctx context.Context, filter *repository.WorkerFilter, p repository.Pagination) (*repository.PagedResult[*entity.Worker], error) {
	if filter != nil && filter.Status != "" && !entity.ValidWorkerStatus(filter.Status) {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "invalid worker status")
	}
	return s.repo.List(ctx, filter, p)
}

// Update 編集者の更新。派生プロフィールはスキルの元データが変わるので
// キャッシュを破棄する。
func (s *Service) Update(ctx context.Context, w *entity.Worker) error {
	if !entity.ValidWorkerStatus(w.Status) {
		return apperrors.New(apperrors.CodeInvalidParam, "invalid worker status")
	}
	existing, err := s.repo.GetByID(ctx, w.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrWorkerNotFound
	}

	if err := s.repo.Update(ctx, w); err != nil {
		return err
	}
	s.invalidateProfile(ctx, w.ID)
	return nil
}

// Delete 編集者の削除
func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.ErrWorkerNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateProfile(ctx, id)
	return nil
}

// Readiness プロフィールの充足状況
func (s *Service) Readiness(ctx context.Context, id string) (*entity.Worker, ReadinessResult, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return nil, ReadinessResult{}, err
	}
	return w, CheckReadiness(w), nil
}

// Profile 派生プロフィールの取得（キャッシュ経由）
func (s *Service) Profile(ctx context.Context, id string) (*DerivedProfile, error) {
	loaded := false
	raw, err := s.cache.GetOrLoadSafe(ctx, profileCacheKey(id), s.ttl, func() (interface{}, error) {
		loaded = true
		w, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if w == nil {
			return nil, apperrors.ErrWorkerNotFound
		}
		return DeriveProfile(w), nil
	})
	if err != nil {
		return nil, err
	}

	if loaded {
		metrics.WorkerProfileCacheHits.WithLabelValues("miss").Inc()
	} else {
		metrics.WorkerProfileCacheHits.WithLabelValues("hit").Inc()
	}

	var p DerivedProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeStorageError, "decode cached profile")
	}
	return &p, nil
}

func (s *Service) invalidateProfile(ctx context.Context, id string) {
	// 破棄に失敗しても TTL で切れる
	_ = s.cache.Delete(ctx, profileCacheKey(id))
}

func profileCacheKey(id string) string {
	return "worker:profile:" + id
}
