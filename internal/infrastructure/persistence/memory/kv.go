// Package memory メモリ版の KVStore 実装。テストとローカル実行用。
package memory

import (
	"context"
	"encoding/json"
	"sync"
)

// KV map とミューテックスによる KVStore 実装
type KV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKV 空のメモリストアを生成する
func NewKV() *KV {
	return &KV{data: make(map[string][]byte)}
}

// Load キーの値を読む。キー不在や不正な JSON は (nil, false) を返す。
func (s *KV) Load(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.data[key]
	if !ok || !json.Valid(raw) {
		return nil, false
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true
}

// Save JSON にして書き込む
func (s *KV) Save(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return nil
}

// Remove キーを削除する
func (s *KV) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// PutRaw 生のバイト列をそのまま書き込む（テスト用、壊れたデータを注入できる）
func (s *KV) PutRaw(key string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
}
