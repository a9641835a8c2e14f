// Package remove реализует HTTP-обработчик удаления цели.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/achievify/goal-tracker/internal/http/middlewarectx"
	"github.com/achievify/goal-tracker/internal/http/response"
	"github.com/achievify/goal-tracker/internal/lib/apperr"
	"github.com/achievify/goal-tracker/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики удаления цели.
type Service interface {
	Delete(ctx context.Context, userUID, id string) error
}

// Handler управляет HTTP-запросами на удаление цели.
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
// @Summary Удалить цель
// @Description Безвозвратно удаляет цель текущего пользователя.
// @Tags Goals
// @Param id path string true "ID цели"
// @Success 204 "Цель удалена"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Цель принадлежит другому пользователю"
// @Failure 404 {object} response.ErrorResponse "Цель не найдена"
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.remove"
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

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("goal id missing in url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("goal id missing in url"))
		return
	}

	if err := h.service.Delete(r.Context(), userUID, id); err != nil {
		log.Error("failed to delete goal", sl.Err(err))
		msg := "could not delete goal"
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			msg = "goal not found"
		case errors.Is(err, apperr.ErrForbidden):
			msg = "access denied"
		case errors.Is(err, apperr.ErrStoreUnavailable):
			msg = "storage unavailable"
		}
		w.WriteHeader(apperr.HTTPStatus(err))
		render.JSON(w, r, response.Error(msg))
		return
	}

	log.Info("deleted goal", slog.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
