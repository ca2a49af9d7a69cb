// Package auth ログインセッションの管理
package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"boss-brief-api/internal/domain/entity"
	apperrors "boss-brief-api/pkg/errors"
	"boss-brief-api/pkg/utils"
)

// SessionCache セッションの保存先。TTL 付きで書き込む。
type SessionCache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, keys ...string) error
}

// Service セッションサービス。
// ID トークンは署名未検証のまま payload だけ読む。検証バックエンドを
// 持たない前提で、身分情報はユーザーごとの保存領域の分離にのみ使う。
type Service struct {
	cache     SessionCache
	keyPrefix string
	ttl       time.Duration
}

// NewService セッションサービスを生成する
func NewService(cache SessionCache, keyPrefix string, sessionTTL time.Duration) *Service {
	return &Service{
		cache:     cache,
		keyPrefix: keyPrefix,
		ttl:       sessionTTL,
	}
}

// Login ID トークンからセッションを張り、不透明トークンを発行する
func (s *Service) Login(ctx context.Context, idToken string) (string, *entity.UserSession, error) {
	claims, err := utils.DecodeIdentityToken(idToken)
	if err != nil {
		return "", nil, apperrors.ErrTokenInvalid
	}

	sess := entity.NewUserSession(idToken, entity.UserIdentity{
		Sub:     claims.Sub,
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	})

	token := uuid.NewString()
	if err := s.cache.Set(ctx, s.keyPrefix+token, sess, s.ttl); err != nil {
		return "", nil, apperrors.Wrap(err, apperrors.CodeStorageError, "store session")
	}
	return token, sess, nil
}

// Logout セッションの破棄。存在しないトークンでも成功扱い。
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.cache.Delete(ctx, s.keyPrefix+token)
}

// SessionByToken トークンからセッションを引く。見つからなければ未認証。
func (s *Service) SessionByToken(ctx context.Context, token string) (*entity.UserSession, error) {
	if token == "" {
		return nil, apperrors.ErrTokenMissing
	}
	raw, err := s.cache.Get(ctx, s.keyPrefix+token)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	var sess entity.UserSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	return &sess, nil
}
