// Package utils 提供通用工具函数
package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// IdentityClaims Google ID Token 中使用的身份信息
type IdentityClaims struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// DecodeIdentityToken 解码 ID Token 的 payload 部分。
// 不校验签名：本服务没有可信的验证后端，身份仅用于划分存储空间。
func DecodeIdentityToken(tokenString string) (*IdentityClaims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}

	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}

	str := func(key string) string {
		v, _ := claims[key].(string)
		return v
	}

	identity := &IdentityClaims{
		Sub:     str("sub"),
		Email:   str("email"),
		Name:    str("name"),
		Picture: str("picture"),
	}
	if identity.Sub == "" {
		return nil, ErrInvalidToken
	}

	return identity, nil
}
