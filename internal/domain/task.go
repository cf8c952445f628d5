package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work users track time against.
// EstimatedMinutes is the planned duration (1 minute to 1 week);
// actual time spent is derived from time logs, never stored here.
type Task struct {
	ID               uuid.UUID
	Title            string
	Description      string
	CreatedBy        uuid.UUID
	AssignedTo       *uuid.UUID
	EstimatedMinutes int
	Status           TaskStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TaskWithTimeSpent decorates a task with the total minutes logged
// against it across all closed intervals.
type TaskWithTimeSpent struct {
	Task
	TotalTimeSpent float64
}

// TaskFilter narrows a task listing. Zero-value fields are ignored.
type TaskFilter struct {
	Status     *TaskStatus
	CreatedBy  *uuid.UUID
	AssignedTo *uuid.UUID
	// Search matches title substring, case-insensitive.
	Search string
	Limit  uint64
	Offset uint64
}
