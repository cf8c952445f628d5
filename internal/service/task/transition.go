package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

// applyTransition translates a status change into time log actions.
//
//	any        -> IN_PROGRESS   close all open intervals, open one for the acting user
//	IN_PROGRESS -> TODO | DONE  close all open intervals
//	TODO       <-> DONE         nothing
//
// Only one person is ever actively timed on a task: re-entering
// IN_PROGRESS, even by a different user, must not leave a stale open
// interval from a prior worker, and leaving IN_PROGRESS always stops the
// clock. The close step must be visible before the open step so the new
// interval is not itself swept up by the close.
//
// Callers guard against self-transitions (old == new) and run this
// inside the same transaction as the status write.
func (s *Service) applyTransition(ctx context.Context, taskID uuid.UUID, oldStatus, newStatus domain.TaskStatus, actingUser uuid.UUID) error {
	switch {
	case newStatus == domain.TaskStatusInProgress:
		closed, err := s.timeLogs.EndAllActiveForTask(ctx, taskID)
		if err != nil {
			return fmt.Errorf("close open intervals: %w", err)
		}
		if _, err := s.timeLogs.StartTimeLog(ctx, actingUser, taskID); err != nil {
			return fmt.Errorf("start interval for acting user: %w", err)
		}
		s.log.InfoContext(ctx, "status transition opened time log",
			slog.String("task_id", taskID.String()),
			slog.String("acting_user", actingUser.String()),
			slog.Int("closed", closed),
		)

	case oldStatus == domain.TaskStatusInProgress:
		closed, err := s.timeLogs.EndAllActiveForTask(ctx, taskID)
		if err != nil {
			return fmt.Errorf("close open intervals: %w", err)
		}
		s.log.InfoContext(ctx, "status transition closed time logs",
			slog.String("task_id", taskID.String()),
			slog.Int("closed", closed),
		)

	default:
		// TODO <-> DONE: no interval is running, nothing to do.
	}

	return nil
}
