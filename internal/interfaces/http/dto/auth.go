// Package dto HTTP 層のデータ転送オブジェクト
package dto

import (
	"time"

	"boss-brief-api/internal/domain/entity"
)

// LoginRequest Google ログインリクエスト
type LoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// UserResponse ログインユーザー
type UserResponse struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// LoginResponse ログイン結果。Token を Bearer として以後のリクエストに付ける
type LoginResponse struct {
	Token     string       `json:"token"`
	User      UserResponse `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}

// SessionResponse 現在のセッション
type SessionResponse struct {
	Provider  string       `json:"provider"`
	User      UserResponse `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}

// ToUserResponse 利用者情報を変換する
func ToUserResponse(u entity.UserIdentity) UserResponse {
	return UserResponse{
		Sub:     u.Sub,
		Email:   u.Email,
		Name:    u.Name,
		Picture: u.Picture,
	}
}

// ToLoginResponse ログイン結果を変換する
func ToLoginResponse(token string, sess *entity.UserSession) LoginResponse {
	return LoginResponse{
		Token:     token,
		User:      ToUserResponse(sess.User),
		CreatedAt: sess.CreatedAt,
	}
}

// ToSessionResponse セッションを変換する
func ToSessionResponse(sess *entity.UserSession) SessionResponse {
	return SessionResponse{
		Provider:  sess.Provider,
		User:      ToUserResponse(sess.User),
		CreatedAt: sess.CreatedAt,
	}
}
