package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "boss-brief-api/pkg/errors"
)

type fakeSessionCache struct {
	data map[string][]byte
}

func newFakeSessionCache() *fakeSessionCache {
	return &fakeSessionCache{data: map[string][]byte{}}
}

func (f *fakeSessionCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeSessionCache) Get(_ context.Context, key string) ([]byte, error) {
	raw, ok := f.data[key]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return raw, nil
}

func (f *fakeSessionCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

// makeIDToken 署名なしの ID トークンを組み立てる
func makeIDToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	enc := func(v any) string {
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		return base64.RawURLEncoding.EncodeToString(raw)
	}
	header := map[string]string{"alg": "none", "typ": "JWT"}
	return enc(header) + "." + enc(claims) + "."
}

func TestLoginAndSessionLookup(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeSessionCache(), "session:", time.Hour)

	idToken := makeIDToken(t, map[string]any{
		"sub":     "google-user-1",
		"email":   "user@example.com",
		"name":    "山田太郎",
		"picture": "https://example.com/p.png",
	})

	token, sess, err := svc.Login(ctx, idToken)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "google", sess.Provider)
	assert.Equal(t, "google-user-1", sess.User.Sub)
	assert.Equal(t, "山田太郎", sess.User.Name)

	got, err := svc.SessionByToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, sess.User, got.User)
}

func TestLoginRejectsTokenWithoutSub(t *testing.T) {
	svc := NewService(newFakeSessionCache(), "session:", time.Hour)

	_, _, err := svc.Login(context.Background(), makeIDToken(t, map[string]any{"email": "x@example.com"}))
	require.ErrorIs(t, err, apperrors.ErrTokenInvalid)

	_, _, err = svc.Login(context.Background(), "not-a-jwt")
	require.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestLogoutRemovesSession(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeSessionCache(), "session:", time.Hour)

	token, _, err := svc.Login(ctx, makeIDToken(t, map[string]any{"sub": "u1"}))
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, token))
	_, err = svc.SessionByToken(ctx, token)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)

	// 空トークンの logout は成功扱い
	require.NoError(t, svc.Logout(ctx, ""))
}

func TestSessionByTokenMissing(t *testing.T) {
	svc := NewService(newFakeSessionCache(), "session:", time.Hour)

	_, err := svc.SessionByToken(context.Background(), "")
	require.ErrorIs(t, err, apperrors.ErrTokenMissing)

	_, err = svc.SessionByToken(context.Background(), "unknown")
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
