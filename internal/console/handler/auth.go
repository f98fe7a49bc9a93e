package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/xela07ax/predictaflow/internal/domain"
	"go.uber.org/zap"
)

type SessionService interface {
	Issue(ctx context.Context, req domain.SessionRequest) (*domain.TokenResponse, error)
}

type AuthHandler struct {
	service SessionService
	logger  *zap.Logger
}

func NewAuthHandler(s SessionService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: s, logger: logger.Named("auth-handler")}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request")
		return
	}

	resp, err := h.service.Issue(r.Context(), req)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Logout - сессия без состояния, клиенту достаточно забыть токен
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
