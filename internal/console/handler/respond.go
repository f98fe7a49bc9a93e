package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xela07ax/predictaflow/internal/console/service"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// statusFor - ошибки ввода 400, все остальное 500
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, service.ErrInvalidHorizon),
		errors.Is(err, service.ErrInvalidSession):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
