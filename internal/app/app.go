package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/tasktime-backend/internal/adapter/postgres"
	taskrepo "github.com/heartmarshall/tasktime-backend/internal/adapter/postgres/task"
	timelogrepo "github.com/heartmarshall/tasktime-backend/internal/adapter/postgres/timelog"
	userrepo "github.com/heartmarshall/tasktime-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/tasktime-backend/internal/auth"
	"github.com/heartmarshall/tasktime-backend/internal/config"
	authsvc "github.com/heartmarshall/tasktime-backend/internal/service/auth"
	tasksvc "github.com/heartmarshall/tasktime-backend/internal/service/task"
	timelogsvc "github.com/heartmarshall/tasktime-backend/internal/service/timelog"
	"github.com/heartmarshall/tasktime-backend/internal/transport/middleware"
	"github.com/heartmarshall/tasktime-backend/internal/transport/rest"
)

const authRequestsPerMinute = 20

// Run is the application entry point. It loads configuration, connects
// to the database, wires services and the HTTP server, and blocks until
// ctx is canceled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	userRepo := userrepo.New(pool)
	taskRepo := taskrepo.New(pool)
	timeLogRepo := timelogrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	timeLogService := timelogsvc.NewService(logger, timeLogRepo, clockwork.NewRealClock())
	taskService := tasksvc.NewService(logger, taskRepo, timeLogService, userRepo, txManager)
	authService := authsvc.NewService(logger, userRepo, jwtManager, cfg.Auth)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:           rest.NewHealthHandler(pool, BuildVersion()),
		Auth:             rest.NewAuthHandler(authService, logger),
		Task:             rest.NewTaskHandler(taskService, logger),
		TimeLog:          rest.NewTimeLogHandler(timeLogService, cfg.Report, logger),
		AuthLimiter:      limiter,
		AuthMaxPerMinute: authRequestsPerMinute,
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}
