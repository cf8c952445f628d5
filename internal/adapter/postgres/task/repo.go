// Package task implements the tasks repository on PostgreSQL using the
// squirrel query builder and scany row scanning.
package task

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tasktime-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

const table = "tasks"

var columns = []string{
	"id", "title", "description", "created_by", "assigned_to",
	"estimated_minutes", "status", "created_at", "updated_at",
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// taskRow is the scany scanning target for the tasks table.
type taskRow struct {
	ID               uuid.UUID  `db:"id"`
	Title            string     `db:"title"`
	Description      string     `db:"description"`
	CreatedBy        uuid.UUID  `db:"created_by"`
	AssignedTo       *uuid.UUID `db:"assigned_to"`
	EstimatedMinutes int        `db:"estimated_minutes"`
	Status           string     `db:"status"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

func (r taskRow) toDomain() *domain.Task {
	return &domain.Task{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		CreatedBy:        r.CreatedBy,
		AssignedTo:       r.AssignedTo,
		EstimatedMinutes: r.EstimatedMinutes,
		Status:           domain.TaskStatus(r.Status),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

type Repo struct {
	q postgres.Querier
}

func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts a new task and returns it with DB-assigned fields filled.
func (r *Repo) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	query := builder.Insert(table).
		Columns(columns...).
		Values(id, t.Title, t.Description, t.CreatedBy, t.AssignedTo, t.EstimatedMinutes, t.Status.String(), now, now).
		Suffix("RETURNING " + joinColumns())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert task: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}

	return row.toDomain(), nil
}

// GetByID returns the task or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	query := builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select task: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}

	return row.toDomain(), nil
}

// GetByIDs returns the tasks matching ids, in no particular order.
// Missing ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Task, error) {
	if len(ids) == 0 {
		return []*domain.Task{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.q)

	query := builder.Select(columns...).From(table).Where(squirrel.Eq{"id": ids})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select tasks by ids: %w", err)
	}

	var rows []taskRow
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", uuid.Nil)
	}

	return toDomainSlice(rows), nil
}

// List returns tasks matching the filter, newest first.
func (r *Repo) List(ctx context.Context, f domain.TaskFilter) ([]*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	query := applyFilter(builder.Select(columns...).From(table), f).
		OrderBy("created_at DESC", "id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list tasks: %w", err)
	}

	var rows []taskRow
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", uuid.Nil)
	}

	return toDomainSlice(rows), nil
}

// Count returns the number of tasks matching the filter, ignoring its
// Limit and Offset.
func (r *Repo) Count(ctx context.Context, f domain.TaskFilter) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	f.Limit = 0
	f.Offset = 0
	query := applyFilter(builder.Select("count(*)").From(table), f)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count tasks: %w", err)
	}

	var count int
	if err := querier.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "task", uuid.Nil)
	}

	return count, nil
}

// Update writes the mutable task fields and returns the updated row.
func (r *Repo) Update(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	query := builder.Update(table).
		Set("title", t.Title).
		Set("description", t.Description).
		Set("assigned_to", t.AssignedTo).
		Set("estimated_minutes", t.EstimatedMinutes).
		Set("status", t.Status.String()).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(squirrel.Eq{"id": t.ID}).
		Suffix("RETURNING " + joinColumns())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update task: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", t.ID)
	}

	return row.toDomain(), nil
}

// UpdateStatus changes only the task status and returns the updated row.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) (*domain.Task, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	query := builder.Update(table).
		Set("status", status.String()).
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update task status: %w", err)
	}

	var row taskRow
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "task", id)
	}

	return row.toDomain(), nil
}

// Delete removes the task. Time logs keep their minutes: the FK is
// ON DELETE SET NULL. Returns false if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.q)

	query := builder.Delete(table).Where(squirrel.Eq{"id": id})

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete task: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "task", id)
	}

	return tag.RowsAffected() > 0, nil
}

func toDomainSlice(rows []taskRow) []*domain.Task {
	out := make([]*domain.Task, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

func joinColumns() string {
	s := columns[0]
	for _, c := range columns[1:] {
		s += ", " + c
	}
	return s
}
