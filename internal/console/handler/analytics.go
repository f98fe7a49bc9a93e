package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/xela07ax/predictaflow/internal/domain"
	"go.uber.org/zap"
)

type AnalyticsService interface {
	Report(ctx context.Context, key string, horizon int) (domain.AnalyticsReport, error)
}

type AnalyticsHandler struct {
	service AnalyticsService
	logger  *zap.Logger
}

func NewAnalyticsHandler(s AnalyticsService, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{service: s, logger: logger.Named("analytics-handler")}
}

func (h *AnalyticsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	var horizon int
	if v := r.URL.Query().Get("horizon"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "horizon must be an integer")
			return
		}
		horizon = n
	}

	report, err := h.service.Report(r.Context(), chi.URLParam(r, "industry"), horizon)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("failed to build analytics report", zap.Error(err))
		}
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}
