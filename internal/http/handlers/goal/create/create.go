// Package create реализует HTTP-обработчик для создания новых целей пользователя.
//
// Handler принимает JSON-запрос с данными цели, валидирует их, извлекает
// пользователя из контекста, вызывает бизнес-логику создания цели через сервис
// и возвращает созданную запись в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/achievify/goal-tracker/internal/http/middlewarectx"
	"github.com/achievify/goal-tracker/internal/http/response"
	"github.com/achievify/goal-tracker/internal/lib/apperr"
	"github.com/achievify/goal-tracker/internal/lib/sl"
	"github.com/achievify/goal-tracker/internal/models"
)

// Handler управляет HTTP-запросами на создание новых целей.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для создания цели,
// а также валидатор для проверки структуры входных данных.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания целей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания цели.
type Service interface {
	Create(ctx context.Context, userUID, username string, req models.DummyGoal) (*models.Goal, error)
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
// @Summary Создать новую цель
// @Description Создает новую цель для текущего пользователя со статусом pending.
// @Tags Goals
// @Accept  json
// @Produce  json
// @Param request body models.DummyGoal true "Данные новой цели"
// @Success 201 {object} models.Goal "Созданная цель"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или валидация"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 503 {object} response.ErrorResponse "Хранилище недоступно"
// @Security BearerAuth
// @Router /goals [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyGoal
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	username, ok := r.Context().Value(middlewarectx.User).(string)
	userUID, okUID := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || !okUID || username == "" || userUID == "" {
		log.Error("user identification missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	goal, err := h.service.Create(r.Context(), userUID, username, req)
	if err != nil {
		log.Error("failed to create goal", sl.Err(err))
		w.WriteHeader(apperr.HTTPStatus(err))
		render.JSON(w, r, response.Error("could not create goal"))
		return
	}

	log.Info("created new goal", slog.String("id", goal.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(goal))
}
