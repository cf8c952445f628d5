package rest

import (
	"net/http"

	"github.com/heartmarshall/tasktime-backend/internal/transport/middleware"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Task    *TaskHandler
	TimeLog *TimeLogHandler

	// AuthLimiter rate-limits the credential endpoints; nil disables
	// rate limiting (tests).
	AuthLimiter *middleware.RateLimiter
	// AuthMaxPerMinute is the per-IP allowance for register/login.
	AuthMaxPerMinute int
}

// NewRouter mounts all REST routes on a ServeMux.
func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	register := http.HandlerFunc(h.Auth.Register)
	login := http.HandlerFunc(h.Auth.Login)
	if h.AuthLimiter != nil {
		limit := h.AuthLimiter.Limit(h.AuthMaxPerMinute)
		mux.Handle("POST /api/v1/auth/register", limit(register))
		mux.Handle("POST /api/v1/auth/login", limit(login))
	} else {
		mux.Handle("POST /api/v1/auth/register", register)
		mux.Handle("POST /api/v1/auth/login", login)
	}

	mux.HandleFunc("POST /api/v1/tasks", h.Task.Create)
	mux.HandleFunc("GET /api/v1/tasks", h.Task.List)
	mux.HandleFunc("GET /api/v1/tasks/{id}", h.Task.Get)
	mux.HandleFunc("PATCH /api/v1/tasks/{id}", h.Task.Update)
	mux.HandleFunc("DELETE /api/v1/tasks/{id}", h.Task.Delete)
	mux.HandleFunc("POST /api/v1/tasks/{id}/assign", h.Task.Assign)
	mux.HandleFunc("POST /api/v1/tasks/{id}/unassign", h.Task.Unassign)
	mux.HandleFunc("GET /api/v1/tasks/{id}/timelogs", h.TimeLog.ListByTask)

	mux.HandleFunc("POST /api/v1/timelogs/start", h.TimeLog.Start)
	mux.HandleFunc("POST /api/v1/timelogs/stop", h.TimeLog.StopActive)
	mux.HandleFunc("POST /api/v1/timelogs/{id}/stop", h.TimeLog.Stop)
	mux.HandleFunc("GET /api/v1/timelogs/my", h.TimeLog.ListMine)
	mux.HandleFunc("DELETE /api/v1/timelogs/{id}", h.TimeLog.Delete)
	mux.HandleFunc("GET /api/v1/timelogs/daily", h.TimeLog.DailyReport)

	return mux
}
