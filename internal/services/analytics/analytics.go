// Package services содержит бизнес-логику построения аналитики по целям пользователя.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/achievify/goal-tracker/internal/cache"
	"github.com/achievify/goal-tracker/internal/models"
)

// AnalyticsRepository определяет методы чтения агрегатов из хранилища.
type AnalyticsRepository interface {
	// CountGoalsByStatus подсчитывает цели пользователя по статусам.
	CountGoalsByStatus(ctx context.Context, userUID string) (map[string]int, error)
	// CountGoalsByPriority подсчитывает цели пользователя по приоритетам.
	CountGoalsByPriority(ctx context.Context, userUID string) (map[string]int, error)
}

// Cache описывает методы для кэширования отчётов.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
}

// AnalyticsService строит сводный отчёт по целям пользователя.
// Чистое чтение: никаких мутаций хранилища.
type AnalyticsService struct {
	repo  AnalyticsRepository
	cache Cache
	log   *slog.Logger
}

// NewAnalyticsService создает новый экземпляр AnalyticsService.
func NewAnalyticsService(repo AnalyticsRepository, cache Cache, log *slog.Logger) *AnalyticsService {
	return &AnalyticsService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Summarize возвращает AnalyticsReport для пользователя.
// При отсутствии целей completion_ratio равен нулю.
func (s *AnalyticsService) Summarize(ctx context.Context, userUID string) (*models.AnalyticsReport, error) {
	cacheKey := cache.AnalyticsKey(userUID)
	var cached *models.AnalyticsReport
	found, err := s.cache.Get(cacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read analytics cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return cached, nil
	}

	byStatus, err := s.repo.CountGoalsByStatus(ctx, userUID)
	if err != nil {
		return nil, err
	}
	byPriority, err := s.repo.CountGoalsByPriority(ctx, userUID)
	if err != nil {
		return nil, err
	}

	report := &models.AnalyticsReport{
		Pending:    byStatus[models.StatusPending],
		InProgress: byStatus[models.StatusInProgress],
		Completed:  byStatus[models.StatusCompleted],
		ByPriority: byPriority,
	}
	report.Total = report.Pending + report.InProgress + report.Completed
	if report.Total > 0 {
		report.CompletionRatio = float64(report.Completed) / float64(report.Total)
	}

	if err := s.cache.Set(cacheKey, report, time.Minute); err != nil {
		s.log.Warn("failed to cache analytics", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return report, nil
}
