package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/xela07ax/predictaflow/internal/domain"
	"github.com/xela07ax/predictaflow/internal/mockdata"
)

const (
	ForecastWindow = 7 // сколько дней истории показываем перед прогнозом
	DefaultHorizon = 7
	MaxHorizon     = 30
)

var ErrInvalidHorizon = fmt.Errorf("horizon must be in 1..%d", MaxHorizon)

// AnalyticsService собирает страницу аналитики. Прогнозы считаются один раз
// при создании сервиса на максимальный горизонт, запросы только режут срез.
type AnalyticsService struct {
	dash      *DashboardService
	forecasts map[domain.Industry][]domain.ForecastPoint
}

func NewAnalyticsService(gen *mockdata.Generator, catalog *mockdata.Catalog, dash *DashboardService) *AnalyticsService {
	forecasts := make(map[domain.Industry][]domain.ForecastPoint, len(catalog.Datasets))
	for _, ind := range catalog.Industries() {
		forecasts[ind] = gen.Forecast(catalog.Datasets[ind].Series, ForecastWindow, MaxHorizon)
	}
	return &AnalyticsService{dash: dash, forecasts: forecasts}
}

// Report: horizon == 0 - значение по умолчанию.
func (s *AnalyticsService) Report(ctx context.Context, key string, horizon int) (domain.AnalyticsReport, error) {
	if horizon == 0 {
		horizon = DefaultHorizon
	}
	if horizon < 0 || horizon > MaxHorizon {
		return domain.AnalyticsReport{}, ErrInvalidHorizon
	}

	ds := s.dash.resolve(key, "analytics")
	full := s.forecasts[ds.Industry]
	if len(full) == 0 {
		return domain.AnalyticsReport{}, errors.New("forecast not prepared for " + string(ds.Industry))
	}

	// История + первые horizon будущих точек
	history := len(full) - MaxHorizon
	return domain.AnalyticsReport{
		Industry:          ds.Industry,
		Forecast:          slices.Clone(full[:history+horizon]),
		Accuracy:          mockdata.PredictionAccuracy(),
		Anomalies:         mockdata.Anomalies(),
		Models:            mockdata.ModelMetrics(),
		FeatureImportance: mockdata.FeatureImportance(),
	}, nil
}
