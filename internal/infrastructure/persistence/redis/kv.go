package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"boss-brief-api/internal/domain/repository"
	"boss-brief-api/pkg/logger"
)

// KV 会話ブロブ用の KVStore 実装。値は JSON バイト列で、TTL なし。
// Load は「読めない」を欠損と同一視する：キー不在・壊れた JSON・
// 接続エラーのいずれも (nil, false) で返し、呼び出し側は新規開始する。
type KV struct {
	client *Client
}

// NewKV KVStore 実装を生成する
func NewKV(client *Client) *KV {
	return &KV{client: client}
}

var _ repository.KVStore = (*KV)(nil)

// Load キーの値を読む
func (s *KV) Load(ctx context.Context, key string) ([]byte, bool) {
	ctx, span := tracer.Start(ctx, "kv.Load",
		trace.WithAttributes(attribute.String("kv.key", key)))
	defer span.End()

	raw, err := s.client.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			span.RecordError(err)
			logger.Warn(ctx, "KV 読み出しに失敗", "key", key, "error", err)
		}
		span.SetAttributes(attribute.Bool("kv.hit", false))
		return nil, false
	}
	if !json.Valid(raw) {
		span.SetAttributes(attribute.Bool("kv.hit", false))
		logger.Warn(ctx, "KV の値が壊れている", "key", key)
		return nil, false
	}

	span.SetAttributes(attribute.Bool("kv.hit", true))
	return raw, true
}

// Save JSON にして書き込む
func (s *KV) Save(ctx context.Context, key string, value any) error {
	ctx, span := tracer.Start(ctx, "kv.Save",
		trace.WithAttributes(attribute.String("kv.key", key)))
	defer span.End()

	raw, err := json.Marshal(value)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if err := s.client.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// Remove キーを削除する
func (s *KV) Remove(ctx context.Context, key string) error {
	ctx, span := tracer.Start(ctx, "kv.Remove",
		trace.WithAttributes(attribute.String("kv.key", key)))
	defer span.End()

	if err := s.client.rdb.Del(ctx, key).Err(); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
