//go:build wireinject
// +build wireinject

// Package wire 提供依赖注入配置
package wire

import (
	"github.com/google/wire"

	"boss-brief-api/internal/application/auth"
	"boss-brief-api/internal/application/job"
	"boss-brief-api/internal/application/worker"
	"boss-brief-api/internal/config"
	"boss-brief-api/internal/domain/repository"
	"boss-brief-api/internal/infrastructure/persistence/postgres"
	"boss-brief-api/internal/infrastructure/persistence/redis"
	"boss-brief-api/internal/interfaces/http/handler"
	"boss-brief-api/internal/interfaces/http/router"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	wire.Build(
		PostgresSet,
		RedisSet,
		ServiceSet,
		HandlerSet,
		router.New,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}

// PostgresSet PostgreSQL 提供者集合
var PostgresSet = wire.NewSet(
	ProvidePostgresClient,
	postgres.NewJobRepository,
	postgres.NewWorkerRepository,
	wire.Bind(new(repository.JobRepository), new(*postgres.JobRepository)),
	wire.Bind(new(repository.WorkerRepository), new(*postgres.WorkerRepository)),
)

// RedisSet Redis 提供者集合
var RedisSet = wire.NewSet(
	ProvideRedisClient,
	redis.NewKV,
	redis.NewCache,
	redis.NewRateLimiter,
	wire.Bind(new(repository.KVStore), new(*redis.KV)),
	wire.Bind(new(worker.ProfileCache), new(*redis.Cache)),
	wire.Bind(new(auth.SessionCache), new(*redis.Cache)),
)

// ServiceSet 应用服务提供者集合
var ServiceSet = wire.NewSet(
	ProvideBriefService,
	ProvideWorkerService,
	ProvideAuthService,
	job.NewService,
)

// HandlerSet 处理器提供者集合
var HandlerSet = wire.NewSet(
	ProvideHealthHandler,
	handler.NewAuthHandler,
	handler.NewBriefHandler,
	handler.NewJobHandler,
	handler.NewWorkerHandler,
	wire.Struct(new(router.Handlers), "*"),
)
