package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xela07ax/predictaflow/internal/console/handler"
	"github.com/xela07ax/predictaflow/internal/infra"
	"github.com/xela07ax/predictaflow/internal/infra/auth"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type ConsoleServer struct {
	router   *chi.Mux
	logger   *zap.Logger
	cfg      *infra.Config
	metrics  *infra.Metrics
	gatherer prometheus.Gatherer
	limiter  *rate.Limiter

	// Проверка демо-сессий (HS256)
	authValidator auth.TokenValidator

	// Обработчики
	authHandler      *handler.AuthHandler      // /auth/session
	dashHandler      *handler.DashboardHandler // /api/v1/dashboard, /v1/industries
	analyticsHandler *handler.AnalyticsHandler // /api/v1/analytics
}

// NewConsoleServer инициализирует API консоли со всеми зависимостями
func NewConsoleServer(
	cfg *infra.Config,
	logger *zap.Logger,
	metrics *infra.Metrics,
	gatherer prometheus.Gatherer,
	validator auth.TokenValidator,
	authH *handler.AuthHandler,
	dashH *handler.DashboardHandler,
	analyticsH *handler.AnalyticsHandler,
) *ConsoleServer {
	s := &ConsoleServer{
		router:           chi.NewRouter(),
		logger:           logger.Named("console-api"),
		cfg:              cfg,
		metrics:          metrics,
		gatherer:         gatherer,
		limiter:          newLimiter(cfg.RateLimit),
		authValidator:    validator,
		authHandler:      authH,
		dashHandler:      dashH,
		analyticsHandler: analyticsH,
	}

	s.routes()
	return s
}

func (s *ConsoleServer) routes() {
	r := s.router

	// --- 1. Глобальные инфраструктурные Middleware (для всех) ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TracingMiddleware)
	r.Use(requestLogger(s.logger, s.metrics))
	r.Use(middleware.Recoverer)

	// --- 2. Служебные роуты (без лимита) ---
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if s.cfg.Metrics.Enabled && s.gatherer != nil {
		r.Handle(s.cfg.Metrics.Path, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	// --- 3. API под лимитером ---
	r.Group(func(r chi.Router) {
		r.Use(rateLimit(s.limiter, s.metrics))

		r.Post("/auth/session", s.authHandler.Login)
		r.Post("/auth/logout", s.authHandler.Logout)

		// Сессия необязательна: без токена работаем как retail
		r.Group(func(r chi.Router) {
			r.Use(auth.NewMiddleware(s.authValidator, s.logger))

			r.Get("/v1/industries", s.dashHandler.ListIndustries)
			r.Get("/v1/integrations", s.dashHandler.ListIntegrations)

			r.Route("/api/v1/dashboard", func(r chi.Router) {
				r.Get("/", s.dashHandler.GetSessionDataset)
				r.Route("/{industry}", func(r chi.Router) {
					r.Get("/", s.dashHandler.GetDataset)
					r.Get("/kpis", s.dashHandler.GetKPIs)
					r.Get("/series", s.dashHandler.GetSeries)
				})
			})
			r.Get("/api/v1/analytics/{industry}", s.analyticsHandler.GetReport)
		})
	})
}

// newLimiter: RPS <= 0 - лимит выключен; burst не меньше 1
func newLimiter(cfg infra.RateLimitConfig) *rate.Limiter {
	if cfg.RPS <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(cfg.RPS), max(cfg.Burst, 1))
}

// ServeHTTP позволяет использовать ConsoleServer как стандартный http.Handler
func (s *ConsoleServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
