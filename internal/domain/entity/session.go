// Package entity ドメイン実体を定義する
package entity

import "time"

// UserIdentity ID トークンから取り出した利用者情報
type UserIdentity struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// UserSession ログインセッション。署名未検証の ID トークンをそのまま保持する。
type UserSession struct {
	Provider  string       `json:"provider"`
	IDToken   string       `json:"id_token"`
	User      UserIdentity `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
}

// NewUserSession Google ログインセッションを生成する
func NewUserSession(idToken string, user UserIdentity) *UserSession {
	return &UserSession{
		Provider:  "google",
		IDToken:   idToken,
		User:      user,
		CreatedAt: time.Now(),
	}
}
