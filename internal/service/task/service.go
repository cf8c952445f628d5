// Package task implements the task management business logic: CRUD,
// assignment, and the status transition handling that drives time logs.
package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type taskRepo interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context, f domain.TaskFilter) ([]*domain.Task, error)
	Count(ctx context.Context, f domain.TaskFilter) (int, error)
	Update(ctx context.Context, t *domain.Task) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type timeLogService interface {
	StartTimeLog(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error)
	EndAllActiveForTask(ctx context.Context, taskID uuid.UUID) (int, error)
	TotalTimeSpent(ctx context.Context, taskID uuid.UUID) (float64, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the task business logic.
type Service struct {
	tasks    taskRepo
	timeLogs timeLogService
	users    userRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Task service.
func NewService(log *slog.Logger, tasks taskRepo, timeLogs timeLogService, users userRepo, tx txManager) *Service {
	return &Service{
		tasks:    tasks,
		timeLogs: timeLogs,
		users:    users,
		tx:       tx,
		log:      log.With("service", "task"),
	}
}
