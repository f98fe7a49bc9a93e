package service

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xela07ax/predictaflow/internal/domain"
	"github.com/xela07ax/predictaflow/internal/infra"
	"github.com/xela07ax/predictaflow/internal/infra/auth"
	"github.com/xela07ax/predictaflow/internal/mockdata"
)

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) (*DashboardService, *AnalyticsService, *infra.Metrics) {
	t.Helper()
	g := mockdata.NewGenerator(rand.NewPCG(1, 2), mockdata.WithClock(func() time.Time { return testNow }))
	catalog := mockdata.BuildCatalog(g)
	metrics := infra.NewMetrics(prometheus.NewRegistry())

	dash := NewDashboardService(catalog, metrics, zap.NewNop())
	return dash, NewAnalyticsService(g, catalog, dash), metrics
}

func TestDashboardService_Dataset(t *testing.T) {
	dash, _, metrics := newFixture(t)
	ctx := context.Background()

	for _, ind := range domain.AllIndustries() {
		ds := dash.Dataset(ctx, string(ind))
		assert.Equal(t, ind, ds.Industry)
		assert.Len(t, ds.KPIs, 4)
		assert.Len(t, ds.Series, mockdata.SeriesLength)
	}
	assert.Zero(t, testutil.ToFloat64(metrics.IndustryFallbacks))

	fallback := dash.Dataset(ctx, "unknown-value")
	assert.Equal(t, dash.Dataset(ctx, "retail"), fallback)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.IndustryFallbacks))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.DatasetRequests.WithLabelValues("retail", "dataset")))
}

func TestDashboardService_Series(t *testing.T) {
	dash, _, _ := newFixture(t)
	ctx := context.Background()
	full := dash.Dataset(ctx, "waste").Series

	tests := []struct {
		rng  string
		want int
	}{
		{"", 30},
		{"7d", 7},
		{"7", 7},
		{"30d", 30},
		{"90d", 30},
	}
	for _, tt := range tests {
		got, err := dash.Series(ctx, "waste", tt.rng)
		require.NoError(t, err, tt.rng)
		require.Len(t, got, tt.want, tt.rng)
		assert.Equal(t, full[len(full)-1], got[len(got)-1], "window ends at yesterday")
	}

	for _, bad := range []string{"abc", "0d", "-3d"} {
		_, err := dash.Series(ctx, "waste", bad)
		assert.ErrorIs(t, err, ErrInvalidRange, bad)
	}
}

func TestDashboardService_StaticLists(t *testing.T) {
	dash, _, _ := newFixture(t)
	ctx := context.Background()

	assert.Len(t, dash.Profiles(ctx), 3)
	assert.Len(t, dash.Integrations(ctx), 4)
	assert.Equal(t, dash.Dataset(ctx, "hospitality").KPIs, dash.KPIs(ctx, "hospitality"))
}

func TestAnalyticsService_Report(t *testing.T) {
	_, analytics, _ := newFixture(t)
	ctx := context.Background()

	r, err := analytics.Report(ctx, "retail", 0)
	require.NoError(t, err)
	assert.Equal(t, domain.IndustryRetail, r.Industry)
	require.Len(t, r.Forecast, ForecastWindow+DefaultHorizon)
	assert.NotNil(t, r.Forecast[ForecastWindow-1].Actual)
	assert.Nil(t, r.Forecast[ForecastWindow].Actual)
	assert.Len(t, r.Accuracy, 4)
	assert.Len(t, r.Models, 4)
	assert.Len(t, r.FeatureImportance, 5)

	long, err := analytics.Report(ctx, "retail", MaxHorizon)
	require.NoError(t, err)
	assert.Len(t, long.Forecast, ForecastWindow+MaxHorizon)
	// Срезы одного заранее посчитанного прогноза
	assert.Equal(t, r.Forecast, long.Forecast[:len(r.Forecast)])

	fallback, err := analytics.Report(ctx, "mystery", 3)
	require.NoError(t, err)
	assert.Equal(t, domain.IndustryRetail, fallback.Industry)

	for _, bad := range []int{-1, MaxHorizon + 1} {
		_, err := analytics.Report(ctx, "retail", bad)
		assert.ErrorIs(t, err, ErrInvalidHorizon)
	}
}

func TestSessionService_Issue(t *testing.T) {
	signer := auth.NewSessionSigner([]byte("secret"), "test", time.Hour)
	svc := NewSessionService(signer, zap.NewNop())
	ctx := context.Background()

	resp, err := svc.Issue(ctx, domain.SessionRequest{Email: "Ops <ops@example.com>", Industry: "waste"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, domain.IndustryWaste, resp.Industry)
	assert.InDelta(t, time.Hour.Seconds(), float64(resp.ExpiresIn), 5)

	claims, err := signer.VerifyToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", claims.Email)

	resp, err = svc.Issue(ctx, domain.SessionRequest{Email: "a@b.c", Industry: "casino"})
	require.NoError(t, err)
	assert.Equal(t, domain.IndustryRetail, resp.Industry)

	_, err = svc.Issue(ctx, domain.SessionRequest{Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestAnalyticsService_ReportReturnsCopy(t *testing.T) {
	_, analytics, _ := newFixture(t)
	ctx := context.Background()

	first, err := analytics.Report(ctx, "waste", 5)
	require.NoError(t, err)
	want := first.Forecast[0].Predicted
	first.Forecast[0].Predicted = -1

	second, err := analytics.Report(ctx, "waste", 5)
	require.NoError(t, err)
	assert.Equal(t, want, second.Forecast[0].Predicted)
}
