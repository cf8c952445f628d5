package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
	"github.com/heartmarshall/tasktime-backend/pkg/ctxutil"
)

// TaskPage is one page of tasks decorated with logged minutes.
type TaskPage struct {
	Tasks      []domain.TaskWithTimeSpent
	Pagination domain.Pagination
}

// Create creates a task owned by the authenticated user. New tasks
// always start in TODO.
func (s *Service) Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.AssignedTo != nil {
		if _, err := s.users.GetByID(ctx, *input.AssignedTo); err != nil {
			return nil, fmt.Errorf("check assignee: %w", err)
		}
	}

	created, err := s.tasks.Create(ctx, &domain.Task{
		Title:            input.Title,
		Description:      input.Description,
		CreatedBy:        userID,
		AssignedTo:       input.AssignedTo,
		EstimatedMinutes: input.EstimatedMinutes,
		Status:           domain.TaskStatusTodo,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("task_id", created.ID.String()),
		slog.String("created_by", userID.String()),
	)

	return created, nil
}

// GetByID returns the task with its total logged minutes.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskWithTimeSpent, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	total, err := s.timeLogs.TotalTimeSpent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("total time spent: %w", err)
	}

	return &domain.TaskWithTimeSpent{Task: *task, TotalTimeSpent: total}, nil
}

// List returns a page of tasks matching the filter, each decorated with
// its total logged minutes.
func (s *Service) List(ctx context.Context, input ListTasksInput) (*TaskPage, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := input.filter()

	total, err := s.tasks.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	decorated := make([]domain.TaskWithTimeSpent, 0, len(tasks))
	for _, t := range tasks {
		spent, err := s.timeLogs.TotalTimeSpent(ctx, t.ID)
		if err != nil {
			return nil, fmt.Errorf("total time spent for task %s: %w", t.ID, err)
		}
		decorated = append(decorated, domain.TaskWithTimeSpent{Task: *t, TotalTimeSpent: spent})
	}

	return &TaskPage{
		Tasks:      decorated,
		Pagination: domain.NewPagination(input.Page, input.Limit, total),
	}, nil
}

// Update applies the provided fields. A status change additionally runs
// the time log transition inside one transaction with the task write, so
// a failed transition leaves the status untouched.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*domain.TaskWithTimeSpent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	next := *existing
	if input.Title != nil {
		next.Title = *input.Title
	}
	if input.Description != nil {
		next.Description = *input.Description
	}
	if input.EstimatedMinutes != nil {
		next.EstimatedMinutes = *input.EstimatedMinutes
	}
	if input.Status != nil {
		next.Status = *input.Status
	}

	statusChanged := next.Status != existing.Status

	var updated *domain.Task
	if statusChanged {
		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			if err := s.applyTransition(ctx, id, existing.Status, next.Status, userID); err != nil {
				return err
			}
			updated, err = s.tasks.Update(ctx, &next)
			return err
		})
	} else {
		updated, err = s.tasks.Update(ctx, &next)
	}
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	total, err := s.timeLogs.TotalTimeSpent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("total time spent: %w", err)
	}

	s.log.InfoContext(ctx, "task updated",
		slog.String("task_id", id.String()),
		slog.String("user_id", userID.String()),
		slog.Bool("status_changed", statusChanged),
	)

	return &domain.TaskWithTimeSpent{Task: *updated, TotalTimeSpent: total}, nil
}

// Delete removes a task. Only the creator may delete it. Logged minutes
// survive the deletion and still count toward reports.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	existing, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}

	if existing.CreatedBy != userID {
		return fmt.Errorf("only the creator can delete a task: %w", domain.ErrForbidden)
	}

	removed, err := s.tasks.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if !removed {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	s.log.InfoContext(ctx, "task deleted",
		slog.String("task_id", id.String()),
		slog.String("user_id", userID.String()),
	)

	return nil
}

// Assign sets the task's assignee after checking the user exists.
func (s *Service) Assign(ctx context.Context, taskID, assigneeID uuid.UUID) (*domain.Task, error) {
	if _, err := s.users.GetByID(ctx, assigneeID); err != nil {
		return nil, fmt.Errorf("check assignee: %w", err)
	}

	existing, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	next := *existing
	next.AssignedTo = &assigneeID

	updated, err := s.tasks.Update(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("assign task: %w", err)
	}

	return updated, nil
}

// Unassign clears the task's assignee.
func (s *Service) Unassign(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	existing, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	next := *existing
	next.AssignedTo = nil

	updated, err := s.tasks.Update(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("unassign task: %w", err)
	}

	return updated, nil
}
