package job

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boss-brief-api/internal/domain/entity"
	"boss-brief-api/internal/domain/repository"
	apperrors "boss-brief-api/pkg/errors"
)

type fakeJobRepo struct {
	jobs map[string]*entity.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*entity.Job{}}
}

func (f *fakeJobRepo) Create(_ context.Context, j *entity.Job) error {
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id string) (*entity.Job, error) {
	return f.jobs[id], nil
}

func (f *fakeJobRepo) Update(_ context.Context, j *entity.Job) error {
	f.jobs[j.ID] = j
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id string) error {
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) ListByOwner(_ context.Context, owner string, filter *repository.JobFilter, p repository.Pagination) (*repository.PagedResult[*entity.Job], error) {
	var items []*entity.Job
	for _, j := range f.jobs {
		if j.OwnerUserID != owner {
			continue
		}
		if filter != nil && filter.Status != "" && j.Status != filter.Status {
			continue
		}
		items = append(items, j)
	}
	return repository.NewPagedResult(items, int64(len(items)), p), nil
}

func readyBrief() entity.Brief {
	return entity.Brief{
		Purpose:   entity.PlatformTikTok,
		Duration:  "30秒",
		Target:    "学生",
		Tones:     []entity.Tone{entity.ToneEnergetic},
		Concept:   "テスト概要",
		AssetsURL: "https://example.com/assets.zip",
	}
}

func TestCreateFromBriefStatusDerivation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeJobRepo())

	j, err := svc.CreateFromBrief(ctx, "u1", readyBrief())
	require.NoError(t, err)
	assert.NotEmpty(t, j.ID)
	assert.Equal(t, entity.JobStatusReady, j.Status)

	// 素材 URL が無ければ draft
	b := readyBrief()
	b.AssetsURL = ""
	j, err = svc.CreateFromBrief(ctx, "u1", b)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusDraft, j.Status)

	decoded, err := j.DecodeBrief()
	require.NoError(t, err)
	assert.Equal(t, b, decoded)
}

func TestGetHidesOtherOwnersJobs(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeJobRepo())

	j, err := svc.CreateFromBrief(ctx, "u1", readyBrief())
	require.NoError(t, err)

	_, err = svc.Get(ctx, "u2", j.ID)
	require.ErrorIs(t, err, apperrors.ErrJobNotFound)

	got, err := svc.Get(ctx, "u1", j.ID)
	require.NoError(t, err)
	assert.Equal(t, j.ID, got.ID)
}

func TestUpdateStatusDirect(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeJobRepo())

	j, err := svc.CreateFromBrief(ctx, "u1", readyBrief())
	require.NoError(t, err)

	j, err = svc.UpdateStatus(ctx, "u1", j.ID, entity.JobStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusInProgress, j.Status)

	_, err = svc.UpdateStatus(ctx, "u1", j.ID, "archived")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidParam, appErr.Code)
}

func TestUpdateBriefRecomputesStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeJobRepo())

	b := readyBrief()
	b.AssetsURL = ""
	j, err := svc.CreateFromBrief(ctx, "u1", b)
	require.NoError(t, err)
	require.Equal(t, entity.JobStatusDraft, j.Status)

	// 素材 URL が入れば ready へ
	j, err = svc.UpdateBrief(ctx, "u1", j.ID, readyBrief(), "")
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusReady, j.Status)

	// 着手後は Brief を空にしても巻き戻らない
	_, err = svc.UpdateStatus(ctx, "u1", j.ID, entity.JobStatusInProgress)
	require.NoError(t, err)
	j, err = svc.UpdateBrief(ctx, "u1", j.ID, entity.EmptyBrief(), "")
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusInProgress, j.Status)
}

func TestListFiltersByOwnerAndStatus(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeJobRepo())

	_, err := svc.CreateFromBrief(ctx, "u1", readyBrief())
	require.NoError(t, err)
	b := readyBrief()
	b.AssetsURL = ""
	_, err = svc.CreateFromBrief(ctx, "u1", b)
	require.NoError(t, err)
	_, err = svc.CreateFromBrief(ctx, "u2", readyBrief())
	require.NoError(t, err)

	page, err := svc.List(ctx, "u1", nil, repository.NewPagination(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	page, err = svc.List(ctx, "u1", &repository.JobFilter{Status: entity.JobStatusReady}, repository.NewPagination(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	_, err = svc.List(ctx, "u1", &repository.JobFilter{Status: "bogus"}, repository.NewPagination(1, 20))
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeJobRepo())

	j, err := svc.CreateFromBrief(ctx, "u1", readyBrief())
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, "u2", j.ID), apperrors.ErrJobNotFound)
	require.NoError(t, svc.Delete(ctx, "u1", j.ID))
	_, err = svc.Get(ctx, "u1", j.ID)
	require.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestReadiness(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeJobRepo())

	b := readyBrief()
	b.AssetsURL = ""
	j, err := svc.CreateFromBrief(ctx, "u1", b)
	require.NoError(t, err)

	_, r, err := svc.Readiness(ctx, "u1", j.ID)
	require.NoError(t, err)
	assert.False(t, r.Ready)
	assert.Equal(t, []string{"素材URL"}, r.Missing)
}
