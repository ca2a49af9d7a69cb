// Package middleware 提供 HTTP 中间件
package middleware

import (
	"net/http"
	"strings"

	"boss-brief-api/internal/application/auth"
	"boss-brief-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthConfig 认证配置
type AuthConfig struct {
	// Enabled 是否启用认证
	Enabled bool
	// SkipPaths 跳过认证的路径（前缀匹配）
	SkipPaths []string
}

// DefaultSkipPaths 默认跳过认证的路径
var DefaultSkipPaths = []string{
	"/health",
	"/ready",
	"/metrics",
	"/v1/auth/login",
}

// Auth 认证中间件。根据 Bearer 会话令牌查出会话，
// 将用户 ID（ID Token 的 sub）写入 Context。
// 认证关闭时可通过 X-User-ID 头切换用户（本地开发用，默认 "local"）。
func Auth(cfg AuthConfig, sessions *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 检查是否跳过路径
		for _, path := range cfg.SkipPaths {
			if strings.HasPrefix(c.Request.URL.Path, path) {
				c.Next()
				return
			}
		}

		if !cfg.Enabled {
			userID := c.GetHeader("X-User-ID")
			if userID == "" {
				userID = "local"
			}
			setUser(c, userID, "")
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		sess, err := sessions.SessionByToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, "invalid session token")
			return
		}

		setUser(c, sess.User.Sub, sess.User.Name)
		c.Set("session_token", token)
		c.Next()
	}
}

// bearerToken 从 Authorization 头提取 Bearer 令牌
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func setUser(c *gin.Context, userID, name string) {
	c.Set("user_id", userID)
	if name != "" {
		c.Set("user_name", name)
	}
	ctx := logger.WithContext(c.Request.Context(), logger.UserIDKey, userID)
	c.Request = c.Request.WithContext(ctx)
}

// abortUnauthorized 终止请求并返回 401
func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code":     401,
		"message":  msg,
		"trace_id": c.GetString("trace_id"),
	})
}
