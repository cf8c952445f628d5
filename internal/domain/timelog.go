package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimeLog is a single interval of work on a task by a user.
// A nil EndedAt means the interval is still open ("active").
// At most one open interval may exist per (task, user) pair; the
// database enforces this with a partial unique index.
//
// TaskID is nil only for intervals whose task was deleted after time
// was logged: the minutes still count toward reports, the task
// reference does not survive.
type TimeLog struct {
	ID        uuid.UUID
	TaskID    *uuid.UUID
	UserID    uuid.UUID
	StartedAt time.Time
	EndedAt   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the interval is still open.
func (l TimeLog) IsActive() bool { return l.EndedAt == nil }

// Minutes returns the interval duration in fractional minutes,
// or 0 for an open interval.
func (l TimeLog) Minutes() float64 {
	if l.EndedAt == nil {
		return 0
	}
	return l.EndedAt.Sub(l.StartedAt).Minutes()
}

// TaskTimeEntry is the per-task breakdown inside one daily report row.
// Minutes is rounded to one decimal place. TaskTitle is empty when the
// task was deleted after the time was logged.
type TaskTimeEntry struct {
	TaskID    *uuid.UUID
	TaskTitle string
	Minutes   float64
	Sessions  int
}

// DailyUserReport is one row of the daily report: everything one user
// logged on one calendar day (UTC), across all tasks.
type DailyUserReport struct {
	Date         time.Time
	UserID       uuid.UUID
	UserName     string
	TotalMinutes float64
	TaskCount    int
	Entries      []TaskTimeEntry
}

// RangeMetrics summarizes the entire queried date range, independent of
// pagination. Averages are 0 when the corresponding denominator is 0.
type RangeMetrics struct {
	TotalMinutes          float64
	TotalUsers            int
	TotalTasks            int
	TotalSessions         int
	AverageMinutesPerUser float64
	AverageMinutesPerTask float64
}

// Pagination describes the page window of a report.
type Pagination struct {
	CurrentPage     int
	TotalPages      int
	TotalItems      int
	ItemsPerPage    int
	HasNextPage     bool
	HasPreviousPage bool
}

// DailyReportPage is one page of daily report rows plus the range-wide
// metrics and pagination metadata.
type DailyReportPage struct {
	Rows       []DailyUserReport
	Metrics    RangeMetrics
	Pagination Pagination
}

// NewPagination computes pagination metadata from totals.
func NewPagination(page, limit, totalItems int) Pagination {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + limit - 1) / limit
	}
	return Pagination{
		CurrentPage:     page,
		TotalPages:      totalPages,
		TotalItems:      totalItems,
		ItemsPerPage:    limit,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
