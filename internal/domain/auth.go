package domain

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// SessionClaims - демо-сессия. Реальной аутентификации нет:
// токен только переносит выбранную при онбординге отрасль.
type SessionClaims struct {
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Industry Industry `json:"industry"`
	jwt.RegisteredClaims
}

type SessionRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Industry string `json:"industry"`
}

type TokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"` // Всегда "Bearer"
	ExpiresIn   int64    `json:"expires_in"`
	Industry    Industry `json:"industry"`
}
