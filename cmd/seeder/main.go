// Command seeder populates the database with demo users, tasks, and
// closed time intervals for local development and report testing. It is
// intended to be run once against an empty database, not in production.
//
// Flags:
//
//	--users     number of users to create (default 5)
//	--tasks     number of tasks per user (default 4)
//	--days      how many past days to spread time logs over (default 7)
//	--password  plaintext password for every seeded user
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/tasktime-backend/internal/adapter/postgres"
	taskrepo "github.com/heartmarshall/tasktime-backend/internal/adapter/postgres/task"
	timelogrepo "github.com/heartmarshall/tasktime-backend/internal/adapter/postgres/timelog"
	userrepo "github.com/heartmarshall/tasktime-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/tasktime-backend/internal/app"
	"github.com/heartmarshall/tasktime-backend/internal/config"
	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

var firstNames = []string{"Alice", "Bob", "Carol", "Dmitri", "Elena", "Farid", "Grace", "Hana"}
var lastNames = []string{"Report", "Ivanov", "Chen", "Okafor", "Silva", "Novak", "Moreau", "Tanaka"}
var taskTitles = []string{"indexer", "parser", "migration", "dashboard", "billing export", "audit trail", "cache warmup", "search tuning"}

func main() {
	usersFlag := flag.Int("users", 5, "number of users to create")
	tasksFlag := flag.Int("tasks", 4, "number of tasks per user")
	daysFlag := flag.Int("days", 7, "spread time logs over this many past days")
	passwordFlag := flag.String("password", "password123", "plaintext password for seeded users")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tasks := taskrepo.New(pool)
	timeLogs := timelogrepo.New(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(*passwordFlag), cfg.Auth.BcryptCost)
	if err != nil {
		logger.Error("hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var createdUsers, createdTasks, createdLogs int

	for i := 0; i < *usersFlag; i++ {
		first := firstNames[i%len(firstNames)]
		last := lastNames[i%len(lastNames)]
		u, err := users.Create(ctx, &domain.User{
			FirstName:    first,
			LastName:     last,
			Email:        fmt.Sprintf("%s.%s.%d@tasktime.local", first, last, i),
			PasswordHash: string(hash),
		})
		if err != nil {
			logger.Error("create user", slog.String("error", err.Error()))
			os.Exit(1)
		}
		createdUsers++

		for j := 0; j < *tasksFlag; j++ {
			t, err := tasks.Create(ctx, &domain.Task{
				Title:            fmt.Sprintf("%s %s #%d", first, taskTitles[j%len(taskTitles)], j+1),
				Description:      "seeded demo task",
				CreatedBy:        u.ID,
				EstimatedMinutes: 30 + rand.Intn(8)*30,
				Status:           domain.TaskStatusTodo,
			})
			if err != nil {
				logger.Error("create task", slog.String("error", err.Error()))
				os.Exit(1)
			}
			createdTasks++

			n, err := seedIntervals(ctx, timeLogs, t.ID, u.ID, *daysFlag)
			if err != nil {
				logger.Error("seed time logs", slog.String("error", err.Error()))
				os.Exit(1)
			}
			createdLogs += n
		}
	}

	logger.Info("seed completed",
		slog.Int("users", createdUsers),
		slog.Int("tasks", createdTasks),
		slog.Int("time_logs", createdLogs),
	)
}

// seedIntervals writes 1-3 closed intervals per task on random past days.
func seedIntervals(ctx context.Context, repo *timelogrepo.Repo, taskID, userID uuid.UUID, days int) (int, error) {
	count := 1 + rand.Intn(3)
	for i := 0; i < count; i++ {
		day := rand.Intn(days) + 1
		start := time.Now().UTC().AddDate(0, 0, -day).Truncate(time.Hour)
		start = start.Add(time.Duration(9+rand.Intn(8)) * time.Hour)

		created, err := repo.Create(ctx, taskID, userID, start)
		if err != nil {
			return i, err
		}
		end := start.Add(time.Duration(10+rand.Intn(110)) * time.Minute)
		if _, err := repo.SetEnd(ctx, created.ID, end); err != nil {
			return i, err
		}
	}
	return count, nil
}
