// Package timelog implements the time tracking business logic: interval
// lifecycle, the single-active-interval invariant, and the daily report.
package timelog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type timeLogRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeLog, error)
	GetActive(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error)
	GetActiveForTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TimeLog, error)
	GetByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TimeLog, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.TimeLog, error)
	Create(ctx context.Context, taskID, userID uuid.UUID, startedAt time.Time) (*domain.TimeLog, error)
	SetEnd(ctx context.Context, id uuid.UUID, endedAt time.Time) (*domain.TimeLog, error)
	EndAllActiveForTask(ctx context.Context, taskID uuid.UUID, endedAt time.Time) (int, error)
	TotalMinutesForTask(ctx context.Context, taskID uuid.UUID) (float64, error)
	DailyAggregate(ctx context.Context, rangeStart, rangeEnd time.Time, page, limit int, userID *uuid.UUID) (*domain.DailyReportPage, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the time log business logic.
type Service struct {
	logs  timeLogRepo
	clock clockwork.Clock
	log   *slog.Logger
}

// NewService creates a new TimeLog service.
func NewService(log *slog.Logger, logs timeLogRepo, clock clockwork.Clock) *Service {
	return &Service{
		logs:  logs,
		clock: clock,
		log:   log.With("service", "timelog"),
	}
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}
