package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xela07ax/predictaflow/internal/domain"
	"github.com/xela07ax/predictaflow/internal/infra"
	"github.com/xela07ax/predictaflow/internal/mockdata"
	"go.uber.org/zap"
)

var ErrInvalidRange = errors.New("invalid range, expected e.g. 7d, 30d or 90d")

// DashboardService отдает заранее собранный каталог. Каталог неизменяем,
// поэтому сервис безопасно читать из любого количества горутин.
type DashboardService struct {
	catalog *mockdata.Catalog
	metrics *infra.Metrics
	logger  *zap.Logger
}

func NewDashboardService(catalog *mockdata.Catalog, metrics *infra.Metrics, logger *zap.Logger) *DashboardService {
	if metrics == nil {
		metrics = infra.NewMetrics(nil)
	}
	return &DashboardService{
		catalog: catalog,
		metrics: metrics,
		logger:  logger.Named("dashboard-service"),
	}
}

// resolve - единая точка выбора набора. Неизвестный ключ не ошибка:
// отдаем retail, но логируем и считаем подмену.
func (s *DashboardService) resolve(key, resource string) domain.IndustryDataset {
	ds, ok := s.catalog.Lookup(key)
	if !ok {
		s.logger.Warn("unknown industry, serving default",
			zap.String("requested", key),
			zap.String("served", string(ds.Industry)),
			zap.String("resource", resource))
		s.metrics.IndustryFallbacks.Inc()
	}
	s.metrics.DatasetRequests.WithLabelValues(string(ds.Industry), resource).Inc()
	return ds
}

func (s *DashboardService) Dataset(ctx context.Context, key string) domain.IndustryDataset {
	return s.resolve(key, "dataset")
}

func (s *DashboardService) KPIs(ctx context.Context, key string) []domain.KPI {
	return s.resolve(key, "kpis").KPIs
}

// Series возвращает последние N точек основного ряда. Пустой range - весь ряд.
func (s *DashboardService) Series(ctx context.Context, key, rangeParam string) ([]domain.TimeSeriesPoint, error) {
	window, err := ParseWindow(rangeParam)
	if err != nil {
		return nil, err
	}
	series := s.resolve(key, "series").Series
	if window == 0 || window >= len(series) {
		return series, nil
	}
	return series[len(series)-window:], nil
}

func (s *DashboardService) Profiles(ctx context.Context) []domain.IndustryProfile {
	return mockdata.Profiles()
}

func (s *DashboardService) Integrations(ctx context.Context) []domain.Integration {
	return mockdata.Integrations()
}

// ParseWindow разбирает "7d", "30d", "90d" или просто число дней.
func ParseWindow(v string) (int, error) {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSuffix(v, "d"))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRange, v)
	}
	return n, nil
}
