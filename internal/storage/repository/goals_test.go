package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/achievify/goal-tracker/internal/lib/apperr"
)

// droppedConnErr имитирует обрыв соединения в середине чтения результата.
type droppedConnErr struct{}

func (droppedConnErr) Error() string   { return "connection reset by peer" }
func (droppedConnErr) Timeout() bool   { return false }
func (droppedConnErr) Temporary() bool { return false }

// droppedConnDriver отдаёт первую строку результата, после чего рвёт соединение.
type droppedConnDriver struct{}

func (droppedConnDriver) Open(string) (driver.Conn, error) { return &droppedConn{}, nil }

type droppedConn struct{}

func (*droppedConn) Prepare(query string) (driver.Stmt, error) {
	return &droppedStmt{query: query}, nil
}
func (*droppedConn) Close() error              { return nil }
func (*droppedConn) Begin() (driver.Tx, error) { return nil, driver.ErrSkip }

type droppedStmt struct{ query string }

func (*droppedStmt) Close() error                                { return nil }
func (*droppedStmt) NumInput() int                               { return -1 }
func (*droppedStmt) Exec([]driver.Value) (driver.Result, error)  { return nil, driver.ErrSkip }
func (s *droppedStmt) Query([]driver.Value) (driver.Rows, error) {
	if strings.Contains(s.query, "COUNT(") {
		return &droppedCountRows{}, nil
	}
	return &droppedGoalRows{}, nil
}

type droppedGoalRows struct{ served int }

func (*droppedGoalRows) Columns() []string {
	return []string{"id", "user_uid", "username", "title", "description", "status",
		"priority", "category", "due_date", "created_at", "updated_at"}
}
func (*droppedGoalRows) Close() error { return nil }
func (r *droppedGoalRows) Next(dest []driver.Value) error {
	if r.served > 0 {
		return droppedConnErr{}
	}
	r.served++
	now := time.Now()
	copy(dest, []driver.Value{"goal-1", "uid-1", "testuser", "learn go", "",
		"pending", "medium", "general", nil, now, now})
	return nil
}

type droppedCountRows struct{ served int }

func (*droppedCountRows) Columns() []string { return []string{"status", "count"} }
func (*droppedCountRows) Close() error      { return nil }
func (r *droppedCountRows) Next(dest []driver.Value) error {
	if r.served > 0 {
		return droppedConnErr{}
	}
	r.served++
	copy(dest, []driver.Value{"pending", int64(1)})
	return nil
}

var registerDroppedConnDriver sync.Once

func newDroppedConnStorage(t *testing.T) *Storage {
	registerDroppedConnDriver.Do(func() {
		sql.Register("dropped-conn", droppedConnDriver{})
	})
	db, err := sql.Open("dropped-conn", "")
	require.NoError(t, err)
	return &Storage{DB: db}
}

func TestStorage_ListGoals_ConnDroppedMidScan(t *testing.T) {
	storage := newDroppedConnStorage(t)

	goals, err := storage.ListGoals(context.Background(), "uid-1")

	require.ErrorIs(t, err, apperr.ErrStoreUnavailable)
	require.Nil(t, goals)
}

func TestStorage_CountGoalsByStatus_ConnDroppedMidScan(t *testing.T) {
	storage := newDroppedConnStorage(t)

	counts, err := storage.CountGoalsByStatus(context.Background(), "uid-1")

	require.ErrorIs(t, err, apperr.ErrStoreUnavailable)
	require.Nil(t, counts)
}

func TestStorage_CountGoalsByPriority_ConnDroppedMidScan(t *testing.T) {
	storage := newDroppedConnStorage(t)

	counts, err := storage.CountGoalsByPriority(context.Background(), "uid-1")

	require.ErrorIs(t, err, apperr.ErrStoreUnavailable)
	require.Nil(t, counts)
}
