package auth

import (
	"context"
	"net/http"

	"github.com/xela07ax/predictaflow/internal/domain"
	"go.uber.org/zap"
)

// TokenValidator - то, что нужно middleware от подписанта
type TokenValidator interface {
	VerifyToken(tokenStr string) (*domain.SessionClaims, error)
}

type ctxKey string

const claimsKey ctxKey = "session_claims"

// NewMiddleware - необязательная сессия: без заголовка запрос идет анонимно,
// с битым токеном - 401.
func NewMiddleware(v TokenValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := v.VerifyToken(authHeader)
			if err != nil {
				logger.Warn("auth failure", zap.Error(err))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"invalid session token"}`))
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext достает claims, положенные middleware.
func ClaimsFromContext(ctx context.Context) (*domain.SessionClaims, bool) {
	c, ok := ctx.Value(claimsKey).(*domain.SessionClaims)
	return c, ok
}

// IndustryFromContext - отрасль сессии; без сессии - retail.
func IndustryFromContext(ctx context.Context) domain.Industry {
	if c, ok := ClaimsFromContext(ctx); ok && c.Industry.Valid() {
		return c.Industry
	}
	return domain.DefaultIndustry
}
