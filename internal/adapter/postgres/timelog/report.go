package timelog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tasktime-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Daily aggregation SQL
//
// The report buckets closed intervals by UTC calendar day of started_at.
// Grouping happens in two levels: (day, user, task) with per-task minutes
// and session counts, then (day, user) with the per-task rows folded into
// a jsonb array. Per-task minutes are rounded to one decimal; the row
// total sums the unrounded task minutes and rounds at output.
//
// Tasks and users are LEFT JOINed: a task deleted after time was logged
// keeps its minutes in the report with a blank title.
// ---------------------------------------------------------------------------

const dailyRowsSQL = `
WITH per_task AS (
    SELECT
        (tl.started_at AT TIME ZONE 'UTC')::date     AS day,
        tl.user_id,
        tl.task_id,
        sum(extract(epoch FROM (tl.ended_at - tl.started_at)) / 60.0) AS minutes,
        count(*)                                      AS sessions
    FROM time_logs tl
    WHERE tl.ended_at IS NOT NULL
      AND tl.started_at >= $1
      AND tl.started_at <= $2
      AND ($3::uuid IS NULL OR tl.user_id = $3::uuid)
    GROUP BY 1, tl.user_id, tl.task_id
)
SELECT
    pt.day,
    pt.user_id,
    coalesce(trim(coalesce(u.first_name, '') || ' ' || coalesce(u.last_name, '')), '') AS user_name,
    round(sum(pt.minutes)::numeric, 1)::float8 AS total_minutes,
    count(*)::int                              AS task_count,
    jsonb_agg(jsonb_build_object(
        'task_id',    pt.task_id,
        'task_title', coalesce(t.title, ''),
        'minutes',    round(pt.minutes::numeric, 1),
        'sessions',   pt.sessions
    ) ORDER BY coalesce(t.title, ''), pt.task_id) AS entries
FROM per_task pt
LEFT JOIN users u ON u.id = pt.user_id
LEFT JOIN tasks t ON t.id = pt.task_id
GROUP BY pt.day, pt.user_id, u.first_name, u.last_name
ORDER BY pt.day DESC, user_name ASC, pt.user_id
LIMIT $4 OFFSET $5`

const dailyCountSQL = `
SELECT count(*)::int
FROM (
    SELECT 1
    FROM time_logs tl
    WHERE tl.ended_at IS NOT NULL
      AND tl.started_at >= $1
      AND tl.started_at <= $2
      AND ($3::uuid IS NULL OR tl.user_id = $3::uuid)
    GROUP BY (tl.started_at AT TIME ZONE 'UTC')::date, tl.user_id
) grouped`

const rangeMetricsSQL = `
SELECT
    coalesce(round(sum(extract(epoch FROM (ended_at - started_at)) / 60.0)::numeric, 1), 0)::float8 AS total_minutes,
    count(DISTINCT user_id)::int AS total_users,
    count(DISTINCT task_id)::int AS total_tasks,
    count(*)::int                AS total_sessions
FROM time_logs
WHERE ended_at IS NOT NULL
  AND started_at >= $1
  AND started_at <= $2
  AND ($3::uuid IS NULL OR user_id = $3::uuid)`

// DailyAggregate produces one page of per-user-per-day report rows plus
// range-wide metrics. rangeStart/rangeEnd are expected to already be
// normalized to whole-day UTC boundaries by the service layer; page and
// limit are expected to be validated.
func (r *Repo) DailyAggregate(ctx context.Context, rangeStart, rangeEnd time.Time, page, limit int, userID *uuid.UUID) (*domain.DailyReportPage, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var totalItems int
	if err := querier.QueryRow(ctx, dailyCountSQL, rangeStart, rangeEnd, userID).Scan(&totalItems); err != nil {
		return nil, fmt.Errorf("count daily report rows: %w", err)
	}

	offset := (page - 1) * limit

	rows, err := querier.Query(ctx, dailyRowsSQL, rangeStart, rangeEnd, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query daily report rows: %w", err)
	}
	defer rows.Close()

	reports := []domain.DailyUserReport{}
	for rows.Next() {
		report, err := scanDailyRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan daily report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily report rows: %w", err)
	}

	metrics, err := r.rangeMetrics(ctx, rangeStart, rangeEnd, userID)
	if err != nil {
		return nil, err
	}

	return &domain.DailyReportPage{
		Rows:       reports,
		Metrics:    metrics,
		Pagination: domain.NewPagination(page, limit, totalItems),
	}, nil
}

func (r *Repo) rangeMetrics(ctx context.Context, rangeStart, rangeEnd time.Time, userID *uuid.UUID) (domain.RangeMetrics, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var m domain.RangeMetrics
	err := querier.QueryRow(ctx, rangeMetricsSQL, rangeStart, rangeEnd, userID).
		Scan(&m.TotalMinutes, &m.TotalUsers, &m.TotalTasks, &m.TotalSessions)
	if err != nil {
		return domain.RangeMetrics{}, fmt.Errorf("query range metrics: %w", err)
	}

	if m.TotalUsers > 0 {
		m.AverageMinutesPerUser = round1(m.TotalMinutes / float64(m.TotalUsers))
	}
	if m.TotalTasks > 0 {
		m.AverageMinutesPerTask = round1(m.TotalMinutes / float64(m.TotalTasks))
	}

	return m, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

// taskTimeEntryJSON mirrors the jsonb_build_object keys in dailyRowsSQL.
type taskTimeEntryJSON struct {
	TaskID    *uuid.UUID `json:"task_id"`
	TaskTitle string     `json:"task_title"`
	Minutes   float64    `json:"minutes"`
	Sessions  int        `json:"sessions"`
}

type dailyRowScanner interface {
	Scan(dest ...any) error
}

func scanDailyRow(row dailyRowScanner) (domain.DailyUserReport, error) {
	var (
		report      domain.DailyUserReport
		entriesJSON []byte
	)

	if err := row.Scan(&report.Date, &report.UserID, &report.UserName, &report.TotalMinutes, &report.TaskCount, &entriesJSON); err != nil {
		return domain.DailyUserReport{}, err
	}

	var entries []taskTimeEntryJSON
	if err := json.Unmarshal(entriesJSON, &entries); err != nil {
		return domain.DailyUserReport{}, fmt.Errorf("unmarshal task entries: %w", err)
	}

	report.Entries = make([]domain.TaskTimeEntry, 0, len(entries))
	for _, e := range entries {
		report.Entries = append(report.Entries, domain.TaskTimeEntry{
			TaskID:    e.TaskID,
			TaskTitle: e.TaskTitle,
			Minutes:   e.Minutes,
			Sessions:  e.Sessions,
		})
	}

	return report, nil
}
