package handler

import (
	"boss-brief-api/internal/application/auth"
	"boss-brief-api/internal/interfaces/http/dto"
	"boss-brief-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler 認証ハンドラ
type AuthHandler struct {
	sessions *auth.Service
}

// NewAuthHandler 認証ハンドラを生成する
func NewAuthHandler(sessions *auth.Service) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login Google ID トークンでログインし、セッショントークンを発行する
// POST /v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	token, sess, err := h.sessions.Login(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, err, "failed to login")
		return
	}

	logger.Info(c.Request.Context(), "user logged in", "sub", sess.User.Sub)
	dto.Created(c, dto.ToLoginResponse(token, sess))
}

// Logout セッションを破棄する
// POST /v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("session_token")
	if err := h.sessions.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err, "failed to logout")
		return
	}
	dto.NoContent(c)
}

// Session 現在のセッションを返す
// GET /v1/auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	token := c.GetString("session_token")
	sess, err := h.sessions.SessionByToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err, "failed to load session")
		return
	}
	dto.Success(c, dto.ToSessionResponse(sess))
}
