// Package router 提供 HTTP 路由配置
package router

import (
	"boss-brief-api/internal/application/auth"
	"boss-brief-api/internal/config"
	"boss-brief-api/internal/infrastructure/persistence/redis"
	"boss-brief-api/internal/interfaces/http/handler"
	"boss-brief-api/internal/interfaces/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers 路由依赖的全部处理器
type Handlers struct {
	Health *handler.HealthHandler
	Auth   *handler.AuthHandler
	Brief  *handler.BriefHandler
	Job    *handler.JobHandler
	Worker *handler.WorkerHandler
}

// Router HTTP 路由器
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	handlers *Handlers
	sessions *auth.Service
	limiter  *redis.RateLimiter
}

// New 创建新的路由器
func New(cfg *config.Config, handlers *Handlers, sessions *auth.Service, limiter *redis.RateLimiter) *Router {
	// 设置 Gin 模式
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:   engine,
		cfg:      cfg,
		handlers: handlers,
		sessions: sessions,
		limiter:  limiter,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

// Engine 返回 Gin Engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// setupMiddleware 配置中间件
func (r *Router) setupMiddleware() {
	// 基础中间件
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())

	// CORS 中间件
	r.engine.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: r.cfg.Security.CORS.AllowedOrigins,
		AllowedMethods: r.cfg.Security.CORS.AllowedMethods,
		AllowedHeaders: r.cfg.Security.CORS.AllowedHeaders,
	}))

	// 追踪中间件
	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	// 指标中间件
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}

	// 认证中间件（系统端点与登录接口跳过认证）
	r.engine.Use(middleware.Auth(middleware.AuthConfig{
		Enabled:   r.cfg.Security.Auth.Enabled,
		SkipPaths: middleware.DefaultSkipPaths,
	}, r.sessions))
}

// setupRoutes 配置路由
func (r *Router) setupRoutes() {
	// 系统端点
	r.engine.GET("/health", r.handlers.Health.Health)
	r.engine.GET("/ready", r.handlers.Health.Ready)
	r.engine.GET("/live", r.handlers.Health.Live)

	// Prometheus 指标端点
	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// 登录接口按 IP 限流
	loginLimit := middleware.RateLimit(middleware.RateLimitConfig{
		Enabled: r.cfg.Security.RateLimit.Enabled,
		Limit:   r.cfg.Security.RateLimit.Limit,
		Window:  r.cfg.Security.RateLimit.Window,
		KeyFunc: func(c *gin.Context) string {
			return redis.BuildLoginRateLimitKey(c.ClientIP())
		},
	}, r.limiter)

	v1 := r.engine.Group("/v1")
	RegisterV1Routes(v1, r.handlers, loginLimit)
}
