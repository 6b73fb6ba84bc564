// Package paisatracker предоставляет маршруты для основного приложения.
package paisatracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mehtaarjun/paisa-tracker/internal/http/handlers/dashboard"
	goalcreate "github.com/mehtaarjun/paisa-tracker/internal/http/handlers/goal/create"
	goallist "github.com/mehtaarjun/paisa-tracker/internal/http/handlers/goal/list"
	goalremove "github.com/mehtaarjun/paisa-tracker/internal/http/handlers/goal/remove"
	goalupdate "github.com/mehtaarjun/paisa-tracker/internal/http/handlers/goal/update"
	"github.com/mehtaarjun/paisa-tracker/internal/http/handlers/health"
	"github.com/mehtaarjun/paisa-tracker/internal/http/handlers/insights/categories"
	"github.com/mehtaarjun/paisa-tracker/internal/http/handlers/insights/generate"
	subcreate "github.com/mehtaarjun/paisa-tracker/internal/http/handlers/subscription/create"
	sublist "github.com/mehtaarjun/paisa-tracker/internal/http/handlers/subscription/list"
	subtoggle "github.com/mehtaarjun/paisa-tracker/internal/http/handlers/subscription/toggle"
	txcreate "github.com/mehtaarjun/paisa-tracker/internal/http/handlers/transaction/create"
	txlist "github.com/mehtaarjun/paisa-tracker/internal/http/handlers/transaction/list"
	"github.com/mehtaarjun/paisa-tracker/internal/http/middlewarectx"
	insightsservice "github.com/mehtaarjun/paisa-tracker/internal/services/insights"
	trackerservice "github.com/mehtaarjun/paisa-tracker/internal/services/tracker"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, trackerService *trackerservice.Service, insightsService *insightsservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger))

		r.Post("/transactions", txcreate.New(logger, trackerService).ServeHTTP)
		r.Get("/transactions", txlist.New(logger, trackerService).ServeHTTP)

		r.Post("/subscriptions", subcreate.New(logger, trackerService).ServeHTTP)
		r.Get("/subscriptions", sublist.New(logger, trackerService).ServeHTTP)
		r.Post("/subscriptions/{id}/toggle", subtoggle.New(logger, trackerService).ServeHTTP)

		r.Post("/goals", goalcreate.New(logger, trackerService).ServeHTTP)
		r.Get("/goals", goallist.New(logger, trackerService).ServeHTTP)
		r.Put("/goals/{id}", goalupdate.New(logger, trackerService).ServeHTTP)
		r.Delete("/goals/{id}", goalremove.New(logger, trackerService).ServeHTTP)

		r.Get("/dashboard", dashboard.New(logger, trackerService).ServeHTTP)
		r.Get("/insights/categories", categories.New(logger, trackerService).ServeHTTP)
		r.Post("/insights/generate", generate.New(logger, trackerService, insightsService).ServeHTTP)

		r.Get("/health", health.New(logger).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
}
