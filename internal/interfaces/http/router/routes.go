package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterV1Routes v1 系のルートを登録する
func RegisterV1Routes(v1 *gin.RouterGroup, h *Handlers, loginLimit gin.HandlerFunc) {
	// 認証
	auth := v1.Group("/auth")
	{
		auth.POST("/login", loginLimit, h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/session", h.Auth.Session)
	}

	// ブリーフ作成会話（ユーザーごとに 1 つ）
	brief := v1.Group("/brief/conversation")
	{
		brief.GET("", h.Brief.Open)
		brief.POST("/reset", h.Brief.Reset)
		brief.POST("/answers/single", h.Brief.AnswerSingle)
		brief.POST("/answers/duration", h.Brief.AnswerDuration)
		brief.POST("/answers/target", h.Brief.AnswerTarget)
		brief.POST("/answers/text", h.Brief.AnswerText)
		brief.POST("/tones/toggle", h.Brief.ToggleTone)
		brief.POST("/tones/confirm", h.Brief.ConfirmTones)
		brief.PUT("/assets", h.Brief.SaveAssets)
	}

	// 案件管理
	jobs := v1.Group("/jobs")
	{
		jobs.GET("", h.Job.List)
		jobs.POST("", h.Job.Create)
		jobs.GET("/:jid", h.Job.Get)
		jobs.PATCH("/:jid", h.Job.Update)
		jobs.DELETE("/:jid", h.Job.Delete)
		jobs.GET("/:jid/readiness", h.Job.Readiness)
	}

	// 編集者ディレクトリ
	workers := v1.Group("/workers")
	{
		workers.GET("", h.Worker.List)
		workers.POST("", h.Worker.Register)
		workers.GET("/me", h.Worker.Me)
		workers.GET("/:wid", h.Worker.Get)
		workers.PUT("/:wid", h.Worker.Update)
		workers.DELETE("/:wid", h.Worker.Delete)
		workers.GET("/:wid/profile", h.Worker.Profile)
		workers.GET("/:wid/readiness", h.Worker.Readiness)
	}
}
