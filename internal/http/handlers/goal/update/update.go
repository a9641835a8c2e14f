// Package update реализует HTTP-обработчик частичного обновления цели.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/achievify/goal-tracker/internal/http/middlewarectx"
	"github.com/achievify/goal-tracker/internal/http/response"
	"github.com/achievify/goal-tracker/internal/lib/apperr"
	"github.com/achievify/goal-tracker/internal/lib/sl"
	"github.com/achievify/goal-tracker/internal/models"
)

// Service описывает интерфейс бизнес-логики обновления цели.
type Service interface {
	Update(ctx context.Context, userUID, id string, req models.UpdateGoal) (*models.Goal, error)
}

// Handler управляет HTTP-запросами на обновление цели.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновить цель
// @Description Применяет частичное обновление: меняются только присутствующие в запросе поля.
// @Tags Goals
// @Accept  json
// @Produce  json
// @Param id path string true "ID цели"
// @Param request body models.UpdateGoal true "Изменяемые поля"
// @Success 200 {object} models.Goal "Обновлённая цель"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или валидация"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Цель принадлежит другому пользователю"
// @Failure 404 {object} response.ErrorResponse "Цель не найдена"
// @Security BearerAuth
// @Router /goals/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.UpdateGoal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

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

	goal, err := h.service.Update(r.Context(), userUID, id, req)
	if err != nil {
		log.Error("failed to update goal", sl.Err(err))
		w.WriteHeader(apperr.HTTPStatus(err))
		render.JSON(w, r, response.Error(updateErrMsg(err)))
		return
	}

	log.Info("updated goal", slog.String("id", goal.ID))
	render.JSON(w, r, response.StatusOKWithData(goal))
}

func updateErrMsg(err error) string {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return "goal not found"
	case errors.Is(err, apperr.ErrForbidden):
		return "access denied"
	case errors.Is(err, apperr.ErrStoreUnavailable):
		return "storage unavailable"
	default:
		return "could not update goal"
	}
}
