package task

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	// One week is the longest allowed estimate.
	maxEstimatedMinutes = 10080
)

// CreateTaskInput holds the parameters for creating a task.
type CreateTaskInput struct {
	Title            string
	Description      string
	EstimatedMinutes int
	AssignedTo       *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *CreateTaskInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if len(i.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.EstimatedMinutes < 1 {
		errs = append(errs, domain.FieldError{Field: "estimated_minutes", Message: "must be at least 1 minute"})
	}
	if i.EstimatedMinutes > maxEstimatedMinutes {
		errs = append(errs, domain.FieldError{Field: "estimated_minutes", Message: "cannot exceed 1 week"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateTaskInput holds the parameters for updating a task.
// Nil fields are left unchanged.
type UpdateTaskInput struct {
	Title            *string
	Description      *string
	EstimatedMinutes *int
	Status           *domain.TaskStatus
}

// Validate checks all provided fields and collects all errors.
func (i *UpdateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.Title != nil {
		if strings.TrimSpace(*i.Title) == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "cannot be empty"})
		}
		if len(*i.Title) > maxTitleLen {
			errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
		}
	}
	if i.Description != nil {
		if strings.TrimSpace(*i.Description) == "" {
			errs = append(errs, domain.FieldError{Field: "description", Message: "cannot be empty"})
		}
		if len(*i.Description) > maxDescriptionLen {
			errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
		}
	}
	if i.EstimatedMinutes != nil && (*i.EstimatedMinutes < 1 || *i.EstimatedMinutes > maxEstimatedMinutes) {
		errs = append(errs, domain.FieldError{Field: "estimated_minutes", Message: "must be between 1 minute and 1 week"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be TODO, IN_PROGRESS, or DONE"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListTasksInput holds the parameters for the paginated task listing.
type ListTasksInput struct {
	Status     *domain.TaskStatus
	CreatedBy  *uuid.UUID
	AssignedTo *uuid.UUID
	Search     string
	Page       int
	Limit      int
}

// Validate checks all fields and collects all errors.
func (i *ListTasksInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 1 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be >= 1"})
	}
	if i.Limit < 1 || i.Limit > 100 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 1 and 100"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be TODO, IN_PROGRESS, or DONE"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *ListTasksInput) filter() domain.TaskFilter {
	return domain.TaskFilter{
		Status:     i.Status,
		CreatedBy:  i.CreatedBy,
		AssignedTo: i.AssignedTo,
		Search:     i.Search,
		Limit:      uint64(i.Limit),
		Offset:     uint64((i.Page - 1) * i.Limit),
	}
}
