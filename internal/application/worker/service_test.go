package worker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boss-brief-api/internal/domain/entity"
	"boss-brief-api/internal/domain/repository"
	apperrors "boss-brief-api/pkg/errors"
)

// fakeWorkerRepo メモリ実装
type fakeWorkerRepo struct {
	workers map[string]*entity.Worker
	gets    int
}

func newFakeWorkerRepo() *fakeWorkerRepo {
	return &fakeWorkerRepo{workers: map[string]*entity.Worker{}}
}

func (f *fakeWorkerRepo) Create(_ context.Context, w *entity.Worker) error {
	f.workers[w.ID] = w
	return nil
}

func (f *fakeWorkerRepo) GetByID(_ context.Context, id string) (*entity.Worker, error) {
	f.gets++
	return f.workers[id], nil
}

func (f *fakeWorkerRepo) GetByOwnerUserID(_ context.Context, owner string) (*entity.Worker, error) {
	for _, w := range f.workers {
		if w.OwnerUserID == owner {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkerRepo) Update(_ context.Context, w *entity.Worker) error {
	f.workers[w.ID] = w
	return nil
}

func (f *fakeWorkerRepo) Delete(_ context.Context, id string) error {
	delete(f.workers, id)
	return nil
}

func (f *fakeWorkerRepo) List(_ context.Context, _ *repository.WorkerFilter, p repository.Pagination) (*repository.PagedResult[*entity.Worker], error) {
	items := make([]*entity.Worker, 0, len(f.workers))
	for _, w := range f.workers {
		items = append(items, w)
	}
	return repository.NewPagedResult(items, int64(len(items)), p), nil
}

// fakeProfileCache map 保存の ProfileCache 実装
type fakeProfileCache struct {
	data map[string][]byte
}

func newFakeProfileCache() *fakeProfileCache {
	return &fakeProfileCache{data: map[string][]byte{}}
}

func (f *fakeProfileCache) GetOrLoadSafe(_ context.Context, key string, _ time.Duration, loader func() (interface{}, error)) ([]byte, error) {
	if raw, ok := f.data[key]; ok {
		return raw, nil
	}
	v, err := loader()
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	f.data[key] = raw
	return raw, nil
}

func (f *fakeProfileCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func TestRegisterAssignsIDs(t *testing.T) {
	ctx := context.Background()
	repo := newFakeWorkerRepo()
	svc := NewService(repo, newFakeProfileCache(), time.Minute)

	w := &entity.Worker{
		Name:         "編集者A",
		Capabilities: []entity.Capability{{Platforms: []string{"TikTok"}}},
	}
	require.NoError(t, svc.Register(ctx, w))

	assert.NotEmpty(t, w.ID)
	assert.Equal(t, entity.WorkerStatusOffline, w.Status)
	require.Len(t, w.Capabilities, 1)
	assert.NotEmpty(t, w.Capabilities[0].ID)
	assert.Equal(t, w.ID, w.Capabilities[0].WorkerID)
	assert.Equal(t, "video_edit", w.Capabilities[0].Type)
}

func TestRegisterRejectsInvalidStatus(t *testing.T) {
	svc := NewService(newFakeWorkerRepo(), newFakeProfileCache(), time.Minute)

	err := svc.Register(context.Background(), &entity.Worker{Name: "n", Status: "sleeping"})
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidParam, appErr.Code)
}

func TestGetNotFound(t *testing.T) {
	svc := NewService(newFakeWorkerRepo(), newFakeProfileCache(), time.Minute)

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, apperrors.ErrWorkerNotFound)
}

func TestProfileCachesDerivation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeWorkerRepo()
	svc := NewService(repo, newFakeProfileCache(), time.Minute)

	w := testWorker("w1")
	repo.workers[w.ID] = w

	first, err := svc.Profile(ctx, w.ID)
	require.NoError(t, err)
	getsAfterFirst := repo.gets

	second, err := svc.Profile(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	// 2 回目はキャッシュから返り、リポジトリへは行かない
	assert.Equal(t, getsAfterFirst, repo.gets)
}

func TestProfileNotFound(t *testing.T) {
	svc := NewService(newFakeWorkerRepo(), newFakeProfileCache(), time.Minute)

	_, err := svc.Profile(context.Background(), "missing")
	require.ErrorIs(t, err, apperrors.ErrWorkerNotFound)
}

func TestUpdateInvalidatesProfileCache(t *testing.T) {
	ctx := context.Background()
	repo := newFakeWorkerRepo()
	cache := newFakeProfileCache()
	svc := NewService(repo, cache, time.Minute)

	w := testWorker("w1")
	w.Status = entity.WorkerStatusAvailable
	repo.workers[w.ID] = w

	_, err := svc.Profile(ctx, w.ID)
	require.NoError(t, err)
	require.Contains(t, cache.data, profileCacheKey(w.ID))

	require.NoError(t, svc.Update(ctx, w))
	assert.NotContains(t, cache.data, profileCacheKey(w.ID))
}
