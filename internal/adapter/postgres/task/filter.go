package task

import (
	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

// applyFilter adds the filter's conditions to a select builder.
func applyFilter(q squirrel.SelectBuilder, f domain.TaskFilter) squirrel.SelectBuilder {
	if f.Status != nil {
		q = q.Where(squirrel.Eq{"status": f.Status.String()})
	}
	if f.CreatedBy != nil {
		q = q.Where(squirrel.Eq{"created_by": *f.CreatedBy})
	}
	if f.AssignedTo != nil {
		q = q.Where(squirrel.Eq{"assigned_to": *f.AssignedTo})
	}
	if f.Search != "" {
		q = q.Where(squirrel.ILike{"title": "%" + f.Search + "%"})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	return q
}
