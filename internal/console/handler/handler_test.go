package handler

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xela07ax/predictaflow/internal/console/service"
	"github.com/xela07ax/predictaflow/internal/domain"
	"github.com/xela07ax/predictaflow/internal/infra/auth"
	"github.com/xela07ax/predictaflow/internal/mockdata"
)

func newTestRouter(t *testing.T) (http.Handler, *auth.SessionSigner) {
	t.Helper()
	logger := zap.NewNop()
	g := mockdata.NewGenerator(rand.NewPCG(3, 4), mockdata.WithClock(func() time.Time {
		return time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	}))
	catalog := mockdata.BuildCatalog(g)
	dashSvc := service.NewDashboardService(catalog, nil, logger)
	signer := auth.NewSessionSigner([]byte("test-secret"), "test", time.Hour)

	dash := NewDashboardHandler(dashSvc, logger)
	analytics := NewAnalyticsHandler(service.NewAnalyticsService(g, catalog, dashSvc), logger)
	authH := NewAuthHandler(service.NewSessionService(signer, logger), logger)

	r := chi.NewRouter()
	r.Post("/auth/session", authH.Login)
	r.Post("/auth/logout", authH.Logout)
	r.Group(func(r chi.Router) {
		r.Use(auth.NewMiddleware(signer, logger))
		r.Get("/v1/industries", dash.ListIndustries)
		r.Get("/v1/integrations", dash.ListIntegrations)
		r.Get("/api/v1/dashboard", dash.GetSessionDataset)
		r.Get("/api/v1/dashboard/{industry}", dash.GetDataset)
		r.Get("/api/v1/dashboard/{industry}/kpis", dash.GetKPIs)
		r.Get("/api/v1/dashboard/{industry}/series", dash.GetSeries)
		r.Get("/api/v1/analytics/{industry}", analytics.GetReport)
	})
	return r, signer
}

func do(h http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestDashboardHandler_Dataset(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodGet, "/api/v1/dashboard/hospitality", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var ds domain.IndustryDataset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ds))
	assert.Equal(t, domain.IndustryHospitality, ds.Industry)
	assert.Len(t, ds.Series, mockdata.SeriesLength)
	require.NotEmpty(t, ds.Alerts)
	assert.IsType(t, domain.BookingEvent{}, ds.Alerts[0])

	// Неизвестная отрасль не ошибка
	unknown := do(h, http.MethodGet, "/api/v1/dashboard/aerospace", "", "")
	retail := do(h, http.MethodGet, "/api/v1/dashboard/retail", "", "")
	require.Equal(t, http.StatusOK, unknown.Code)
	assert.JSONEq(t, retail.Body.String(), unknown.Body.String())
}

func TestDashboardHandler_KPIsAndSeries(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodGet, "/api/v1/dashboard/waste/kpis", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var kpis []domain.KPI
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &kpis))
	assert.Len(t, kpis, 4)

	rec = do(h, http.MethodGet, "/api/v1/dashboard/waste/series?range=7d", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var points []domain.TimeSeriesPoint
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &points))
	assert.Len(t, points, 7)

	rec = do(h, http.MethodGet, "/api/v1/dashboard/waste/series?range=week", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestDashboardHandler_Lists(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodGet, "/v1/industries", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var profiles []domain.IndustryProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profiles))
	assert.Len(t, profiles, 3)

	rec = do(h, http.MethodGet, "/v1/integrations", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var integrations []domain.Integration
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &integrations))
	assert.Len(t, integrations, 4)
}

func TestAnalyticsHandler_GetReport(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodGet, "/api/v1/analytics/retail?horizon=14", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var report domain.AnalyticsReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Len(t, report.Forecast, service.ForecastWindow+14)

	for _, q := range []string{"horizon=abc", "horizon=31", "horizon=-2"} {
		rec := do(h, http.MethodGet, "/api/v1/analytics/retail?"+q, "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

func TestAuthHandler_SessionFlow(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodPost, "/auth/session", `{"email":"chef@hotel.test","name":"Chef","industry":"hospitality"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tok domain.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tok))
	assert.Equal(t, domain.IndustryHospitality, tok.Industry)

	// Дашборд по сессии выбирает отрасль из токена
	rec = do(h, http.MethodGet, "/api/v1/dashboard", "", tok.AccessToken)
	require.Equal(t, http.StatusOK, rec.Code)
	var ds domain.IndustryDataset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ds))
	assert.Equal(t, domain.IndustryHospitality, ds.Industry)

	// Без сессии - retail
	rec = do(h, http.MethodGet, "/api/v1/dashboard", "", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ds))
	assert.Equal(t, domain.IndustryRetail, ds.Industry)

	rec = do(h, http.MethodGet, "/api/v1/dashboard", "", "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(h, http.MethodPost, "/auth/logout", "", tok.AccessToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthHandler_BadRequests(t *testing.T) {
	h, _ := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"missing email", `{"name":"x"}`},
		{"bad email", `{"email":"nobody"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(h, http.MethodPost, "/auth/session", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
