package timelog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

// StartTimeLog opens a new interval for (user, task).
// Fails with domain.ErrConflict if the user already has an open interval
// on the task.
func (s *Service) StartTimeLog(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error) {
	_, err := s.logs.GetActive(ctx, userID, taskID)
	if err == nil {
		return nil, fmt.Errorf("time log already running for task %s: %w", taskID, domain.ErrConflict)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("check active time log: %w", err)
	}

	created, err := s.logs.Create(ctx, taskID, userID, s.now())
	if err != nil {
		// Race: another request opened an interval between check and create.
		// The partial unique index turns that into ErrAlreadyExists.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("time log already running for task %s: %w", taskID, domain.ErrConflict)
		}
		return nil, fmt.Errorf("create time log: %w", err)
	}

	s.log.InfoContext(ctx, "time log started",
		slog.String("user_id", userID.String()),
		slog.String("task_id", taskID.String()),
		slog.String("time_log_id", created.ID.String()),
	)

	return created, nil
}

// EndTimeLog closes the interval by id, setting end = now.
// Fails with domain.ErrNotFound if the id is unknown.
func (s *Service) EndTimeLog(ctx context.Context, id uuid.UUID) (*domain.TimeLog, error) {
	log, err := s.logs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get time log: %w", err)
	}

	updated, err := s.logs.SetEnd(ctx, log.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("end time log: %w", err)
	}

	s.log.InfoContext(ctx, "time log ended",
		slog.String("time_log_id", updated.ID.String()),
	)

	return updated, nil
}

// EndActiveTimeLog closes the open interval for (user, task), if any.
// Ending when nothing is running is a no-op, not an error: the method
// returns (nil, nil).
func (s *Service) EndActiveTimeLog(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error) {
	active, err := s.logs.GetActive(ctx, userID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active time log: %w", err)
	}

	return s.EndTimeLog(ctx, active.ID)
}

// EndAllActiveForTask closes every open interval on the task, across all
// users, and returns the count closed.
func (s *Service) EndAllActiveForTask(ctx context.Context, taskID uuid.UUID) (int, error) {
	closed, err := s.logs.EndAllActiveForTask(ctx, taskID, s.now())
	if err != nil {
		return 0, fmt.Errorf("end all active time logs: %w", err)
	}

	if closed > 0 {
		s.log.InfoContext(ctx, "closed open time logs for task",
			slog.String("task_id", taskID.String()),
			slog.Int("count", closed),
		)
	}

	return closed, nil
}

// TotalTimeSpent returns the total minutes logged against the task over
// all closed intervals.
func (s *Service) TotalTimeSpent(ctx context.Context, taskID uuid.UUID) (float64, error) {
	total, err := s.logs.TotalMinutesForTask(ctx, taskID)
	if err != nil {
		return 0, fmt.Errorf("total minutes for task: %w", err)
	}
	return total, nil
}

// GetByTask returns the task's full interval history, newest first.
func (s *Service) GetByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TimeLog, error) {
	logs, err := s.logs.GetByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("get time logs by task: %w", err)
	}
	return logs, nil
}

// GetByUser returns the user's full interval history, newest first.
func (s *Service) GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.TimeLog, error) {
	logs, err := s.logs.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get time logs by user: %w", err)
	}
	return logs, nil
}

// Delete hard-deletes an interval. Returns domain.ErrNotFound if absent.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	removed, err := s.logs.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete time log: %w", err)
	}
	if !removed {
		return fmt.Errorf("time log %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
