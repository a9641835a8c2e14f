// Package summary реализует HTTP-обработчик сводной аналитики по целям пользователя.
//
// Handler извлекает пользователя из контекста, вызывает бизнес-логику
// построения отчёта и возвращает результат в JSON-формате.
package summary

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/achievify/goal-tracker/internal/http/middlewarectx"
	"github.com/achievify/goal-tracker/internal/http/response"
	"github.com/achievify/goal-tracker/internal/lib/apperr"
	"github.com/achievify/goal-tracker/internal/lib/sl"
	"github.com/achievify/goal-tracker/internal/models"
)

// Service описывает интерфейс бизнес-логики построения аналитики.
type Service interface {
	Summarize(ctx context.Context, userUID string) (*models.AnalyticsReport, error)
}

// Handler управляет HTTP-запросами на получение аналитики.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Аналитика по целям
// @Description Возвращает количество целей по статусам и приоритетам и долю выполненных.
// @Tags Analytics
// @Produce  json
// @Success 200 {object} models.AnalyticsReport "Сводный отчёт"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 503 {object} response.ErrorResponse "Хранилище недоступно"
// @Security BearerAuth
// @Router /analytics [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.analytics.summary"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user identification missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	report, err := h.service.Summarize(r.Context(), userUID)
	if err != nil {
		log.Error("failed to build analytics report", sl.Err(err))
		w.WriteHeader(apperr.HTTPStatus(err))
		render.JSON(w, r, response.Error("could not build analytics report"))
		return
	}

	log.Info("built analytics report", slog.Int("total", report.Total))
	render.JSON(w, r, response.StatusOKWithData(report))
}
