package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// Latency HTTP-ручек консоли
	RequestDuration *prometheus.HistogramVec

	// Обращения к наборам данных по отраслям и ресурсам (dataset, kpis, series, analytics)
	DatasetRequests *prometheus.CounterVec

	// Неизвестный ключ отрасли, отдали retail
	IndustryFallbacks prometheus.Counter

	// Отказы лимитера
	RateLimited prometheus.Counter

	// Откуда взят каталог: 1 - общий снапшот из Redis, 0 - локальная генерация
	SnapshotShared prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	// Null Object Pattern - Если рег не передан, используем локальный, который никуда не подключен
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Metrics{
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "predictaflow_http_request_duration_seconds",
			Help:    "Histogram of console request latencies.",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"route", "method", "status"}),

		DatasetRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "predictaflow_dataset_requests_total",
			Help: "Total number of dataset reads by industry and resource.",
		}, []string{"industry", "resource"}),

		IndustryFallbacks: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "predictaflow_industry_fallback_total",
			Help: "Requests with an unknown industry key served the retail bundle.",
		}),

		RateLimited: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "predictaflow_rate_limited_total",
			Help: "Requests rejected by the rate limiter.",
		}),

		SnapshotShared: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "predictaflow_snapshot_shared",
			Help: "1 if the catalog was adopted from or published to the shared snapshot.",
		}),
	}
}
