package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email and returns the filled entity.
func SeedUser(t *testing.T, pool *pgxpool.Pool, firstName, lastName string) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:           uuid.New(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        firstName + "-" + uniqueSuffix() + "@example.com",
		PasswordHash: "$2a$10$seeded.hash.placeholder.for.tests.only",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO users (id, first_name, last_name, email, password_hash, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`,
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.IsAdmin, now,
	)
	if err != nil {
		t.Fatalf("testhelper: failed to seed user: %v", err)
	}

	return u
}

// SeedTask inserts a task owned by creator and returns the filled entity.
func SeedTask(t *testing.T, pool *pgxpool.Pool, creator uuid.UUID, title string) domain.Task {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	task := domain.Task{
		ID:               uuid.New(),
		Title:            title,
		Description:      "seeded task",
		CreatedBy:        creator,
		EstimatedMinutes: 60,
		Status:           domain.TaskStatusTodo,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO tasks (id, title, description, created_by, assigned_to, estimated_minutes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		task.ID, task.Title, task.Description, task.CreatedBy, task.AssignedTo, task.EstimatedMinutes, task.Status, now,
	)
	if err != nil {
		t.Fatalf("testhelper: failed to seed task: %v", err)
	}

	return task
}

// SeedClosedLog inserts a finished interval [startedAt, endedAt].
func SeedClosedLog(t *testing.T, pool *pgxpool.Pool, taskID, userID uuid.UUID, startedAt, endedAt time.Time) domain.TimeLog {
	t.Helper()
	return seedLog(t, pool, taskID, userID, startedAt, &endedAt)
}

// SeedOpenLog inserts an active interval with no end time.
func SeedOpenLog(t *testing.T, pool *pgxpool.Pool, taskID, userID uuid.UUID, startedAt time.Time) domain.TimeLog {
	t.Helper()
	return seedLog(t, pool, taskID, userID, startedAt, nil)
}

func seedLog(t *testing.T, pool *pgxpool.Pool, taskID, userID uuid.UUID, startedAt time.Time, endedAt *time.Time) domain.TimeLog {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	tid := taskID
	log := domain.TimeLog{
		ID:        uuid.New(),
		TaskID:    &tid,
		UserID:    userID,
		StartedAt: startedAt.UTC().Truncate(time.Microsecond),
		EndedAt:   endedAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if endedAt != nil {
		e := endedAt.UTC().Truncate(time.Microsecond)
		log.EndedAt = &e
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO time_logs (id, task_id, user_id, started_at, ended_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		log.ID, log.TaskID, log.UserID, log.StartedAt, log.EndedAt, now,
	)
	if err != nil {
		t.Fatalf("testhelper: failed to seed time log: %v", err)
	}

	return log
}
