package brief

import (
	"context"
	"math/rand"
	"time"
)

// Delayer 打字演出等待的抽象。テストでは即時返却の実装を差し込む。
type Delayer interface {
	// Wait 指定時間待つ。ctx キャンセルで早期終了する。
	Wait(ctx context.Context, d time.Duration) error
}

// TimerDelayer time.Timer ベースの本番実装
type TimerDelayer struct{}

func (TimerDelayer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NopDelayer 即時返却。テスト用。
type NopDelayer struct{}

func (NopDelayer) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// TypingConfig 打字演出のタイミング設定
type TypingConfig struct {
	// MinDelay / MaxDelay 各質問前のランダム待機の範囲
	MinDelay time.Duration
	MaxDelay time.Duration
	// CompletionDelay 完了メッセージ前の待機
	CompletionDelay time.Duration
}

// DefaultTypingConfig 既定のタイミング
func DefaultTypingConfig() TypingConfig {
	return TypingConfig{
		MinDelay:        450 * time.Millisecond,
		MaxDelay:        800 * time.Millisecond,
		CompletionDelay: 700 * time.Millisecond,
	}
}

// stepDelay [MinDelay, MaxDelay) の一様乱数
func (c TypingConfig) stepDelay() time.Duration {
	if c.MaxDelay <= c.MinDelay {
		return c.MinDelay
	}
	return c.MinDelay + time.Duration(rand.Int63n(int64(c.MaxDelay-c.MinDelay)))
}
