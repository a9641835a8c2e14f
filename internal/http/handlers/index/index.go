// Package index реализует HTTP-обработчик корневой страницы API.
package index

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type Handler struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	render.JSON(w, r, map[string]any{
		"name":    "goal-tracker",
		"version": "1.0",
		"endpoints": []string{
			"POST /api/register",
			"POST /api/login",
			"GET /api/goals",
			"POST /api/goals",
			"PUT /api/goals/{id}",
			"DELETE /api/goals/{id}",
			"DELETE /api/goals",
			"GET /api/analytics",
			"GET /health",
		},
	})
}
