// Package job 案件のアプリケーションサービス
package job

import (
	"context"

	"github.com/google/uuid"

	"boss-brief-api/internal/application/brief"
	"boss-brief-api/internal/domain/entity"
	"boss-brief-api/internal/domain/repository"
	apperrors "boss-brief-api/pkg/errors"
	"boss-brief-api/pkg/metrics"
)

// Service 案件サービス。所有者チェックは全操作で行う。
type Service struct {
	repo repository.JobRepository
}

// NewService 案件サービスを生成する
func NewService(repo repository.JobRepository) *Service {
	return &Service{repo: repo}
}

// CreateFromBrief 会話で組み上がった Brief から案件を起こす。
// 初期状態は受注判定から導出する（揃っていれば ready、なければ draft）。
func (s *Service) CreateFromBrief(ctx context.Context, ownerUserID string, b entity.Brief) (*entity.Job, error) {
	status := brief.InitialStatus(b)
	j, err := entity.NewJob(uuid.NewString(), ownerUserID, status, b)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "encode brief")
	}
	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}
	metrics.JobsCreatedTotal.WithLabelValues(string(status)).Inc()
	return j, nil
}

// Get 所有者の案件取得
func (s *Service) Get(ctx context.Context, ownerUserID, id string) (*entity.Job, error) {
	j, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if j == nil || j.OwnerUserID != ownerUserID {
		// 他人の案件は存在ごと隠す
		return nil, apperrors.ErrJobNotFound
	}
	return j, nil
}

// List 所有者の案件一覧
func (s *Service) List(ctx context.Context, ownerUserID string, filter *repository.JobFilter, p repository.Pagination) (*repository.PagedResult[*entity.Job], error) {
	if filter != nil && filter.Status != "" && !entity.ValidJobStatus(filter.Status) {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "invalid job status")
	}
	return s.repo.ListByOwner(ctx, ownerUserID, filter, p)
}

// UpdateStatus 状態の直接遷移
func (s *Service) UpdateStatus(ctx context.Context, ownerUserID, id string, status entity.JobStatus) (*entity.Job, error) {
	if !entity.ValidJobStatus(status) {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "invalid job status")
	}
	j, err := s.Get(ctx, ownerUserID, id)
	if err != nil {
		return nil, err
	}

	from := j.Status
	j.Status = status
	if err := s.repo.Update(ctx, j); err != nil {
		return nil, err
	}
	metrics.JobStatusTransitions.WithLabelValues(string(from), string(status)).Inc()
	return j, nil
}

// UpdateBrief 案件に埋め込まれた Brief の差し替え。
// 状態は Brief の受注判定から再導出する（着手後の状態は維持）。
// requestedStatus を併せて指定した場合も同じ再導出を通す。
func (s *Service) UpdateBrief(ctx context.Context, ownerUserID, id string, b entity.Brief, requestedStatus entity.JobStatus) (*entity.Job, error) {
	if requestedStatus != "" && !entity.ValidJobStatus(requestedStatus) {
		return nil, apperrors.New(apperrors.CodeInvalidParam, "invalid job status")
	}
	j, err := s.Get(ctx, ownerUserID, id)
	if err != nil {
		return nil, err
	}

	if err := j.SetBrief(b); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternalError, "encode brief")
	}
	from := j.Status
	base := j.Status
	if requestedStatus != "" {
		base = requestedStatus
	}
	j.Status = brief.ComputeStatus(b, base)

	if err := s.repo.Update(ctx, j); err != nil {
		return nil, err
	}
	if from != j.Status {
		metrics.JobStatusTransitions.WithLabelValues(string(from), string(j.Status)).Inc()
	}
	return j, nil
}

// Delete 案件の削除
func (s *Service) Delete(ctx context.Context, ownerUserID, id string) error {
	j, err := s.Get(ctx, ownerUserID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, j.ID)
}

// Readiness 案件 Brief の受注判定
func (s *Service) Readiness(ctx context.Context, ownerUserID, id string) (*entity.Job, brief.ReadinessResult, error) {
	j, err := s.Get(ctx, ownerUserID, id)
	if err != nil {
		return nil, brief.ReadinessResult{}, err
	}
	b, err := j.DecodeBrief()
	if err != nil {
		return nil, brief.ReadinessResult{}, apperrors.Wrap(err, apperrors.CodeInternalError, "decode brief")
	}
	return j, brief.CheckReadiness(b), nil
}
