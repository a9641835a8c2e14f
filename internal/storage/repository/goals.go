package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/achievify/goal-tracker/internal/models"
)

// CreateGoal вставляет новую цель и возвращает её ID.
func (s *Storage) CreateGoal(ctx context.Context, goal models.Goal) (string, error) {
	const op = "storage.CreateGoal"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO goals (id, user_uid, username, title, description, status,
			      priority, category, due_date, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		goal.ID, goal.UserUID, goal.Username, goal.Title, goal.Description, goal.Status,
		goal.Priority, goal.Category, goal.DueDate, goal.CreatedAt, goal.UpdatedAt).Scan(&newID)
	if err != nil {
		return "", wrapErr(op, err)
	}
	return newID, nil
}

// GetGoal возвращает данные цели по её ID.
func (s *Storage) GetGoal(ctx context.Context, id string) (*models.Goal, error) {
	const op = "storage.GetGoal"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, username, title, description, status,
			      priority, category, due_date, created_at, updated_at
			  FROM goals WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Goal
	var dueDate sql.NullTime
	if err := row.Scan(&result.ID, &result.UserUID, &result.Username, &result.Title,
		&result.Description, &result.Status, &result.Priority, &result.Category,
		&dueDate, &result.CreatedAt, &result.UpdatedAt); err != nil {
		return nil, wrapErr(op, err)
	}
	if dueDate.Valid {
		result.DueDate = &dueDate.Time
	}
	return &result, nil
}

// UpdateGoal перезаписывает изменяемые поля цели и возвращает количество изменённых строк.
func (s *Storage) UpdateGoal(ctx context.Context, goal models.Goal) (int, error) {
	const op = "storage.UpdateGoal"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE goals
			  SET title = $1, description = $2, status = $3, priority = $4,
			      category = $5, due_date = $6, updated_at = $7
			  WHERE id = $8`
	result, err := s.DB.ExecContext(ctx, query,
		goal.Title, goal.Description, goal.Status, goal.Priority,
		goal.Category, goal.DueDate, goal.UpdatedAt, goal.ID)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, wrapErr(op, err)
	}
	return int(rowsAffected), nil
}

// DeleteGoal удаляет цель по ID и возвращает количество удалённых строк.
func (s *Storage) DeleteGoal(ctx context.Context, id string) (int, error) {
	const op = "storage.DeleteGoal"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM goals WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, wrapErr(op, err)
	}
	return int(rowsAffected), nil
}

// DeleteAllGoals удаляет все цели пользователя и возвращает количество удалённых строк.
func (s *Storage) DeleteAllGoals(ctx context.Context, userUID string) (int, error) {
	const op = "storage.DeleteAllGoals"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM goals WHERE user_uid = $1`
	result, err := s.DB.ExecContext(ctx, query, userUID)
	if err != nil {
		return 0, wrapErr(op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, wrapErr(op, err)
	}
	return int(rowsAffected), nil
}

// ListGoals возвращает список всех целей пользователя в порядке создания.
func (s *Storage) ListGoals(ctx context.Context, userUID string) ([]*models.Goal, error) {
	const op = "storage.ListGoals"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, user_uid, username, title, description, status,
			      priority, category, due_date, created_at, updated_at
			  FROM goals
			  WHERE user_uid = $1
			  ORDER BY created_at, id`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	var result []*models.Goal
	for rows.Next() {
		var item models.Goal
		var dueDate sql.NullTime
		if err := rows.Scan(&item.ID, &item.UserUID, &item.Username, &item.Title,
			&item.Description, &item.Status, &item.Priority, &item.Category,
			&dueDate, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, wrapErr(op, err)
		}
		if dueDate.Valid {
			item.DueDate = &dueDate.Time
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	err = rows.Close()
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// CountGoalsByStatus подсчитывает количество целей пользователя по каждому статусу.
func (s *Storage) CountGoalsByStatus(ctx context.Context, userUID string) (map[string]int, error) {
	const op = "storage.CountGoalsByStatus"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT status, COUNT(*)
			  FROM goals
			  WHERE user_uid = $1
			  GROUP BY status`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	result := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, wrapErr(op, err)
		}
		result[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	err = rows.Close()
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}

// CountGoalsByPriority подсчитывает количество целей пользователя по каждому приоритету.
func (s *Storage) CountGoalsByPriority(ctx context.Context, userUID string) (map[string]int, error) {
	const op = "storage.CountGoalsByPriority"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT priority, COUNT(*)
			  FROM goals
			  WHERE user_uid = $1
			  GROUP BY priority`
	rows, err := s.DB.QueryContext(ctx, query, userUID)
	if err != nil {
		return nil, wrapErr(op, err)
	}

	result := make(map[string]int)
	for rows.Next() {
		var priority string
		var count int
		if err := rows.Scan(&priority, &count); err != nil {
			return nil, wrapErr(op, err)
		}
		result[priority] = count
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(op, err)
	}
	err = rows.Close()
	if err != nil {
		return nil, wrapErr(op, err)
	}
	return result, nil
}
