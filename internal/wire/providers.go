// Package wire 提供依赖注入配置
package wire

import (
	"boss-brief-api/internal/application/auth"
	"boss-brief-api/internal/application/brief"
	"boss-brief-api/internal/application/worker"
	"boss-brief-api/internal/config"
	"boss-brief-api/internal/domain/repository"
	"boss-brief-api/internal/infrastructure/persistence/postgres"
	"boss-brief-api/internal/infrastructure/persistence/redis"
	"boss-brief-api/internal/interfaces/http/handler"
	"boss-brief-api/internal/interfaces/http/router"
)

// App 组装完成的应用
type App struct {
	Router   *router.Router
	PgClient *postgres.Client
}

// ProvidePostgresClient 提供 PostgreSQL 客户端（启动时自动同步表结构）
func ProvidePostgresClient(cfg *config.Config) (*postgres.Client, func(), error) {
	client, err := postgres.NewClient(&cfg.Database.Postgres)
	if err != nil {
		return nil, nil, err
	}
	if err := client.Migrate(); err != nil {
		client.Close()
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideRedisClient 提供 Redis 客户端
func ProvideRedisClient(cfg *config.Config) (*redis.Client, func(), error) {
	client, err := redis.NewClient(&cfg.Cache.Redis)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		client.Close()
	}
	return client, cleanup, nil
}

// ProvideBriefService 提供 Brief 会话服务
func ProvideBriefService(cfg *config.Config, kv repository.KVStore) *brief.Service {
	typing := brief.TypingConfig{
		MinDelay:        cfg.Brief.Typing.MinDelay,
		MaxDelay:        cfg.Brief.Typing.MaxDelay,
		CompletionDelay: cfg.Brief.Typing.CompletionDelay,
	}
	return brief.NewService(kv, cfg.Brief.KeyPrefix, typing, brief.TimerDelayer{})
}

// ProvideWorkerService 提供 Worker 服务
func ProvideWorkerService(cfg *config.Config, repo repository.WorkerRepository, cache worker.ProfileCache) *worker.Service {
	return worker.NewService(repo, cache, cfg.Brief.ProfileCacheTTL)
}

// ProvideAuthService 提供认证服务
func ProvideAuthService(cfg *config.Config, cache auth.SessionCache) *auth.Service {
	return auth.NewService(cache, cfg.Brief.SessionKeyPrefix, cfg.Security.Auth.SessionTTL)
}

// ProvideHealthHandler 提供健康检查处理器
func ProvideHealthHandler(cfg *config.Config, pg *postgres.Client, redisClient *redis.Client) *handler.HealthHandler {
	return handler.NewHealthHandler(pg, redisClient, cfg.App.Version)
}
