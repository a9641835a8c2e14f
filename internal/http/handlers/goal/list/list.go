// Package list реализует HTTP-обработчик для получения списка целей пользователя.
package list

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

// Service описывает интерфейс бизнес-логики получения списка целей.
type Service interface {
	List(ctx context.Context, userUID string) ([]*models.Goal, error)
}

// Handler управляет HTTP-запросами на получение списка целей.
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
// @Summary Список целей
// @Description Возвращает все цели текущего пользователя в порядке создания.
// @Tags Goals
// @Produce  json
// @Success 200 {array} models.Goal "Цели пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 503 {object} response.ErrorResponse "Хранилище недоступно"
// @Security BearerAuth
// @Router /goals [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.list"
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

	goals, err := h.service.List(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list goals", sl.Err(err))
		w.WriteHeader(apperr.HTTPStatus(err))
		render.JSON(w, r, response.Error("could not list goals"))
		return
	}
	if goals == nil {
		goals = []*models.Goal{}
	}

	log.Info("listed goals", slog.Int("count", len(goals)))
	render.JSON(w, r, response.StatusOKWithData(goals))
}
