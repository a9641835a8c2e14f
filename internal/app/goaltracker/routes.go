// Package goaltracker предоставляет маршруты для основного приложения.
package goaltracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	summaryhandler "github.com/achievify/goal-tracker/internal/http/handlers/analytics/summary"
	"github.com/achievify/goal-tracker/internal/http/handlers/auth/login"
	"github.com/achievify/goal-tracker/internal/http/handlers/auth/register"
	"github.com/achievify/goal-tracker/internal/http/handlers/goal/create"
	"github.com/achievify/goal-tracker/internal/http/handlers/goal/list"
	"github.com/achievify/goal-tracker/internal/http/handlers/goal/remove"
	"github.com/achievify/goal-tracker/internal/http/handlers/goal/removeall"
	"github.com/achievify/goal-tracker/internal/http/handlers/goal/update"
	"github.com/achievify/goal-tracker/internal/http/handlers/health"
	"github.com/achievify/goal-tracker/internal/http/handlers/index"
	"github.com/achievify/goal-tracker/internal/http/middlewarectx"
	analyticsservice "github.com/achievify/goal-tracker/internal/services/analytics"
	authservice "github.com/achievify/goal-tracker/internal/services/auth"
	goalservice "github.com/achievify/goal-tracker/internal/services/goal"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService,
	goalService *goalservice.GoalService,
	analyticsService *analyticsservice.AnalyticsService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Get("/", index.New(logger).ServeHTTP)
	r.Get("/health", health.New(logger).ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/goals", list.New(logger, goalService).ServeHTTP)
			r.Post("/goals", create.New(logger, goalService).ServeHTTP)
			r.Put("/goals/{id}", update.New(logger, goalService).ServeHTTP)
			r.Delete("/goals/{id}", remove.New(logger, goalService).ServeHTTP)
			r.Delete("/goals", removeall.New(logger, goalService).ServeHTTP)
			r.Get("/analytics", summaryhandler.New(logger, analyticsService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
