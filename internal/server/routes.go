package server

import (
	"github.com/Lutefd/currency-widget/internal/handler"
	api_middleware "github.com/Lutefd/currency-widget/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes(deps Dependencies) {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	router.Get("/healthz", handler.NewReadinessHandler(deps.Store).Readiness)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	widgetHandler := handler.NewWidgetHandler(deps.Catalog, deps.Converter, deps.Store, deps.Formatter, deps.Metrics)
	apiHandler := handler.NewAPIHandler(deps.Catalog, deps.Converter, deps.Store, deps.Metrics)

	router.Group(func(r chi.Router) {
		r.Use(api_middleware.MetricsMiddleware(deps.Metrics))
		r.Use(api_middleware.RateLimitMiddleware(s.config.AllowedRPS))
		r.Use(api_middleware.VisitorMiddleware)

		r.Get("/", widgetHandler.Index)
		r.Post("/convert", widgetHandler.Convert)
		r.Post("/swap", widgetHandler.Swap)

		r.Route("/api", func(r chi.Router) {
			r.Get("/currencies", apiHandler.ListCurrencies)
			r.Get("/convert", apiHandler.Convert)
			r.Get("/preferences", apiHandler.GetPreferences)
			r.Post("/preferences/swap", apiHandler.SwapPreferences)
		})
	})
	s.router = router
}
