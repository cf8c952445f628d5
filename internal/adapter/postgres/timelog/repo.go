// Package timelog implements the TimeLog repository using PostgreSQL.
// All queries are raw SQL. The single-active-interval invariant is backed
// by a partial unique index on (task_id, user_id) WHERE ended_at IS NULL;
// inserting a second open interval for the same pair surfaces as
// domain.ErrAlreadyExists via the shared error mapping.
package timelog

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tasktime-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

// Repo provides time log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new time log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const timeLogColumns = `id, task_id, user_id, started_at, ended_at, created_at, updated_at`

const createSQL = `
INSERT INTO time_logs (id, task_id, user_id, started_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + timeLogColumns

const getByIDSQL = `
SELECT ` + timeLogColumns + `
FROM time_logs
WHERE id = $1`

// getActiveSQL tolerates the bug state of multiple open intervals for one
// pair: the most recently started one is authoritative.
const getActiveSQL = `
SELECT ` + timeLogColumns + `
FROM time_logs
WHERE user_id = $1 AND task_id = $2 AND ended_at IS NULL
ORDER BY started_at DESC
LIMIT 1`

const getActiveForTaskSQL = `
SELECT ` + timeLogColumns + `
FROM time_logs
WHERE task_id = $1 AND ended_at IS NULL
ORDER BY started_at DESC`

const getByTaskSQL = `
SELECT ` + timeLogColumns + `
FROM time_logs
WHERE task_id = $1
ORDER BY started_at DESC`

const getByUserSQL = `
SELECT ` + timeLogColumns + `
FROM time_logs
WHERE user_id = $1
ORDER BY started_at DESC`

const setEndSQL = `
UPDATE time_logs
SET ended_at = $2, updated_at = $3
WHERE id = $1
RETURNING ` + timeLogColumns

const endAllActiveForTaskSQL = `
UPDATE time_logs
SET ended_at = $2, updated_at = $2
WHERE task_id = $1 AND ended_at IS NULL`

const deleteSQL = `DELETE FROM time_logs WHERE id = $1`

const closedIntervalsForTaskSQL = `
SELECT started_at, ended_at
FROM time_logs
WHERE task_id = $1 AND ended_at IS NOT NULL`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a time log by primary key.
// Returns domain.ErrNotFound if the log does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getByIDSQL, id)

	log, err := scanTimeLog(row)
	if err != nil {
		return nil, postgres.MapError(err, "time_log", id)
	}

	return log, nil
}

// GetActive returns the open interval for a (user, task) pair.
// Returns domain.ErrNotFound if no open interval exists.
func (r *Repo) GetActive(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, getActiveSQL, userID, taskID)

	log, err := scanTimeLog(row)
	if err != nil {
		return nil, postgres.MapError(err, "time_log", uuid.Nil)
	}

	return log, nil
}

// GetActiveForTask returns all open intervals for a task, any user,
// newest start first. Returns an empty slice when none are open.
func (r *Repo) GetActiveForTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TimeLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getActiveForTaskSQL, taskID)
	if err != nil {
		return nil, fmt.Errorf("get active time logs for task %s: %w", taskID, err)
	}
	defer rows.Close()

	return scanTimeLogs(rows)
}

// GetByTask returns the full interval history for a task, newest start first.
func (r *Repo) GetByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TimeLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByTaskSQL, taskID)
	if err != nil {
		return nil, fmt.Errorf("get time logs by task %s: %w", taskID, err)
	}
	defer rows.Close()

	return scanTimeLogs(rows)
}

// GetByUser returns the full interval history for a user, newest start first.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.TimeLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, getByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("get time logs by user %s: %w", userID, err)
	}
	defer rows.Close()

	return scanTimeLogs(rows)
}

// TotalMinutesForTask sums the duration of all closed intervals of a task.
// Each interval is rounded to one decimal place before summing; this
// rounding order is part of the reporting contract and must not change.
func (r *Repo) TotalMinutesForTask(ctx context.Context, taskID uuid.UUID) (float64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, closedIntervalsForTaskSQL, taskID)
	if err != nil {
		return 0, fmt.Errorf("get closed intervals for task %s: %w", taskID, err)
	}
	defer rows.Close()

	var total float64
	for rows.Next() {
		var startedAt, endedAt time.Time
		if err := rows.Scan(&startedAt, &endedAt); err != nil {
			return 0, fmt.Errorf("scan interval for task %s: %w", taskID, err)
		}
		total += round1(endedAt.Sub(startedAt).Minutes())
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate intervals for task %s: %w", taskID, err)
	}

	return round1(total), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new open interval and returns the persisted record.
// The partial unique index rejects a second open interval for the same
// (task, user) pair with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, taskID, userID uuid.UUID, startedAt time.Time) (*domain.TimeLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createSQL,
		id,
		taskID,
		userID,
		startedAt.UTC().Truncate(time.Microsecond),
		now,
	)

	created, err := scanTimeLog(row)
	if err != nil {
		return nil, postgres.MapError(err, "time_log", id)
	}

	return created, nil
}

// SetEnd closes an interval by setting ended_at.
// Returns domain.ErrNotFound if the id does not exist and
// domain.ErrValidation if ended_at would not be after started_at
// (check constraint).
func (r *Repo) SetEnd(ctx context.Context, id uuid.UUID, endedAt time.Time) (*domain.TimeLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, setEndSQL, id, endedAt.UTC().Truncate(time.Microsecond), now)

	updated, err := scanTimeLog(row)
	if err != nil {
		return nil, postgres.MapError(err, "time_log", id)
	}

	return updated, nil
}

// EndAllActiveForTask closes every open interval for a task, any user,
// in one statement. Returns the number of intervals closed.
func (r *Repo) EndAllActiveForTask(ctx context.Context, taskID uuid.UUID, endedAt time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, endAllActiveForTaskSQL, taskID, endedAt.UTC().Truncate(time.Microsecond))
	if err != nil {
		return 0, postgres.MapError(err, "time_log", taskID)
	}

	return int(ct.RowsAffected()), nil
}

// Delete hard-deletes an interval. Administrative operation only.
// Returns whether a row was removed.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "time_log", id)
	}

	return ct.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanTimeLog(row pgx.Row) (*domain.TimeLog, error) {
	var l domain.TimeLog
	if err := row.Scan(&l.ID, &l.TaskID, &l.UserID, &l.StartedAt, &l.EndedAt, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func scanTimeLogs(rows pgx.Rows) ([]*domain.TimeLog, error) {
	logs := []*domain.TimeLog{}
	for rows.Next() {
		var l domain.TimeLog
		if err := rows.Scan(&l.ID, &l.TaskID, &l.UserID, &l.StartedAt, &l.EndedAt, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return logs, nil
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
