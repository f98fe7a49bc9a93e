package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xela07ax/predictaflow/internal/domain"
	"github.com/xela07ax/predictaflow/internal/infra/auth"
	"go.uber.org/zap"
)

// DashboardService Описываем, что нам нужно от сервиса
type DashboardService interface {
	Dataset(ctx context.Context, key string) domain.IndustryDataset
	KPIs(ctx context.Context, key string) []domain.KPI
	Series(ctx context.Context, key, rangeParam string) ([]domain.TimeSeriesPoint, error)
	Profiles(ctx context.Context) []domain.IndustryProfile
	Integrations(ctx context.Context) []domain.Integration
}

type DashboardHandler struct {
	service DashboardService
	logger  *zap.Logger
}

func NewDashboardHandler(s DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: s, logger: logger.Named("dashboard-handler")}
}

// GetSessionDataset отдает набор отрасли из сессии (без сессии - retail)
func (h *DashboardHandler) GetSessionDataset(w http.ResponseWriter, r *http.Request) {
	industry := auth.IndustryFromContext(r.Context())
	writeJSON(w, http.StatusOK, h.service.Dataset(r.Context(), string(industry)))
}

func (h *DashboardHandler) GetDataset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Dataset(r.Context(), chi.URLParam(r, "industry")))
}

func (h *DashboardHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.KPIs(r.Context(), chi.URLParam(r, "industry")))
}

func (h *DashboardHandler) GetSeries(w http.ResponseWriter, r *http.Request) {
	points, err := h.service.Series(r.Context(), chi.URLParam(r, "industry"), r.URL.Query().Get("range"))
	if err != nil {
		h.logger.Debug("bad series request", zap.Error(err))
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (h *DashboardHandler) ListIndustries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Profiles(r.Context()))
}

func (h *DashboardHandler) ListIntegrations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Integrations(r.Context()))
}
