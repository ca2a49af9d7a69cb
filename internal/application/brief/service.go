package brief

import (
	"sync"

	"boss-brief-api/internal/domain/repository"
)

// Service ユーザーごとの会話ランタイムを管理する。
// 同一ユーザーへの並行リクエストは同じ Conversation に集約され、
// そのミューテックスで直列化される。
type Service struct {
	mu        sync.Mutex
	kv        repository.KVStore
	steps     []StepDef
	delay     Delayer
	typing    TypingConfig
	keyPrefix string
	convs     map[string]*Conversation
}

// NewService 会話サービスを生成する
func NewService(kv repository.KVStore, keyPrefix string, typing TypingConfig, delay Delayer) *Service {
	return &Service{
		kv:        kv,
		steps:     DefaultSteps(),
		delay:     delay,
		typing:    typing,
		keyPrefix: keyPrefix,
		convs:     make(map[string]*Conversation),
	}
}

// Conversation 指定ユーザーの会話ランタイムを返す（なければ作る）
func (s *Service) Conversation(userID string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.convs[userID]; ok {
		return c
	}
	c := NewConversation(s.keyPrefix+userID, s.kv, s.steps, s.delay, s.typing)
	s.convs[userID] = c
	return c
}
