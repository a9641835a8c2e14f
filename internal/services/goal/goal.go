// Package services содержит бизнес-логику для управления целями и кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/achievify/goal-tracker/internal/cache"
	"github.com/achievify/goal-tracker/internal/lib/apperr"
	"github.com/achievify/goal-tracker/internal/models"
)

// dueDateLayout формат даты срока выполнения в JSON-запросах.
const dueDateLayout = "2006-01-02"

// GoalRepository определяет методы для работы с целями в хранилище.
type GoalRepository interface {
	// CreateGoal добавляет новую цель и возвращает её ID.
	CreateGoal(ctx context.Context, goal models.Goal) (string, error)
	// GetGoal возвращает цель по ID.
	GetGoal(ctx context.Context, id string) (*models.Goal, error)
	// UpdateGoal обновляет данные цели и возвращает количество изменённых записей.
	UpdateGoal(ctx context.Context, goal models.Goal) (int, error)
	// DeleteGoal удаляет цель по ID и возвращает количество удалённых записей.
	DeleteGoal(ctx context.Context, id string) (int, error)
	// DeleteAllGoals удаляет все цели пользователя.
	DeleteAllGoals(ctx context.Context, userUID string) (int, error)
	// ListGoals возвращает список целей пользователя.
	ListGoals(ctx context.Context, userUID string) ([]*models.Goal, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// GoalService реализует бизнес-логику работы с целями, включая проверку
// владельца и кеширование списков.
type GoalService struct {
	repo  GoalRepository
	cache Cache
	log   *slog.Logger
}

// NewGoalService создает новый экземпляр GoalService.
func NewGoalService(repo GoalRepository, cache Cache, log *slog.Logger) *GoalService {
	return &GoalService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// invalidateUserCaches сбрасывает ключи списка и аналитики после мутации целей.
func (s *GoalService) invalidateUserCaches(userUID string) {
	for _, key := range []string{cache.GoalsKey(userUID), cache.AnalyticsKey(userUID)} {
		if err := s.cache.Invalidate(key); err != nil {
			s.log.Warn("failed to invalidate cache", slog.String("key", key), slog.Any("err", err))
		}
	}
}

// Create создает новую цель для пользователя со статусом pending и возвращает её.
func (s *GoalService) Create(ctx context.Context, userUID, username string, req models.DummyGoal) (*models.Goal, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", apperr.ErrValidation)
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse(dueDateLayout, req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid due date %q", apperr.ErrValidation, req.DueDate)
		}
		dueDate = &parsed
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	category := req.Category
	if category == "" {
		category = "general"
	}

	now := time.Now().UTC()
	goal := models.Goal{
		ID:          uuid.NewString(),
		UserUID:     userUID,
		Username:    username,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusPending,
		Priority:    priority,
		Category:    category,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.repo.CreateGoal(ctx, goal); err != nil {
		return nil, err
	}
	s.log.Info("created new goal", slog.String("id", goal.ID))
	s.invalidateUserCaches(userUID)

	return &goal, nil
}

// List возвращает все цели пользователя, используя кеш или репозиторий.
func (s *GoalService) List(ctx context.Context, userUID string) ([]*models.Goal, error) {
	var result []*models.Goal
	cacheKey := cache.GoalsKey(userUID)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read goals cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListGoals(ctx, userUID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache goals", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Update применяет частичное обновление цели и возвращает обновлённую запись.
//
// Возвращает apperr.ErrNotFound, если цели нет, и apperr.ErrForbidden,
// если цель принадлежит другому пользователю.
func (s *GoalService) Update(ctx context.Context, userUID, id string, req models.UpdateGoal) (*models.Goal, error) {
	goal, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}
	if goal.UserUID != userUID {
		return nil, apperr.ErrForbidden
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}
	if req.Priority != nil {
		goal.Priority = *req.Priority
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			goal.DueDate = nil
		} else {
			parsed, err := time.Parse(dueDateLayout, *req.DueDate)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid due date %q", apperr.ErrValidation, *req.DueDate)
			}
			goal.DueDate = &parsed
		}
	}
	goal.UpdatedAt = time.Now().UTC()

	count, err := s.repo.UpdateGoal(ctx, *goal)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperr.ErrNotFound
	}
	s.log.Info("updated goal", slog.String("id", goal.ID))
	s.invalidateUserCaches(userUID)

	return goal, nil
}

// Delete удаляет цель пользователя без возможности восстановления.
//
// Повторное удаление того же ID возвращает apperr.ErrNotFound.
func (s *GoalService) Delete(ctx context.Context, userUID, id string) error {
	goal, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return err
	}
	if goal.UserUID != userUID {
		return apperr.ErrForbidden
	}

	count, err := s.repo.DeleteGoal(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return apperr.ErrNotFound
	}
	s.log.Info("deleted goal", slog.String("id", id))
	s.invalidateUserCaches(userUID)
	return nil
}

// DeleteAll удаляет все цели пользователя и возвращает количество удалённых.
func (s *GoalService) DeleteAll(ctx context.Context, userUID string) (int, error) {
	count, err := s.repo.DeleteAllGoals(ctx, userUID)
	if err != nil {
		return 0, err
	}
	s.log.Info("deleted all goals", slog.String("user_uid", userUID), slog.Int("count", count))
	s.invalidateUserCaches(userUID)
	return count, nil
}
