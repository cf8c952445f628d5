package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tasktime-backend/internal/config"
	"github.com/heartmarshall/tasktime-backend/internal/domain"
	"github.com/heartmarshall/tasktime-backend/internal/service/timelog"
	"github.com/heartmarshall/tasktime-backend/internal/transport/middleware"
	"github.com/heartmarshall/tasktime-backend/pkg/ctxutil"
)

// timeLogService defines the minimal interface needed by TimeLogHandler.
type timeLogService interface {
	StartTimeLog(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error)
	EndTimeLog(ctx context.Context, id uuid.UUID) (*domain.TimeLog, error)
	EndActiveTimeLog(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error)
	GetByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TimeLog, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.TimeLog, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DailyReport(ctx context.Context, input timelog.DailyReportInput) (*domain.DailyReportPage, error)
}

// TimeLogHandler serves time tracking REST endpoints.
type TimeLogHandler struct {
	svc    timeLogService
	report config.ReportConfig
	log    *slog.Logger
}

// NewTimeLogHandler creates a TimeLogHandler.
func NewTimeLogHandler(svc timeLogService, report config.ReportConfig, logger *slog.Logger) *TimeLogHandler {
	return &TimeLogHandler{svc: svc, report: report, log: logger.With("handler", "timelog")}
}

type startTimeLogRequest struct {
	TaskID string `json:"taskId"`
}

type stopTimeLogRequest struct {
	TaskID string `json:"taskId"`
}

type timeLogResponse struct {
	ID        string     `json:"id"`
	TaskID    *string    `json:"taskId"`
	UserID    string     `json:"userId"`
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt"`
	Minutes   float64    `json:"minutes"`
	IsActive  bool       `json:"isActive"`
}

// Start handles POST /timelogs/start. Opens an interval for the
// authenticated user on the given task.
func (h *TimeLogHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req startTimeLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid taskId")
		return
	}

	created, err := h.svc.StartTimeLog(r.Context(), userID, taskID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTimeLogResponse(created))
}

// StopActive handles POST /timelogs/stop. Closes the authenticated
// user's active interval on the given task; a no-op when none is open.
func (h *TimeLogHandler) StopActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req stopTimeLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid taskId")
		return
	}

	closed, err := h.svc.EndActiveTimeLog(r.Context(), userID, taskID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if closed == nil {
		writeJSON(w, http.StatusOK, map[string]any{"timeLog": nil})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"timeLog": toTimeLogResponse(closed)})
}

// Stop handles POST /timelogs/{id}/stop. Closes a specific interval.
func (h *TimeLogHandler) Stop(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid timelog id")
		return
	}

	closed, err := h.svc.EndTimeLog(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeLogResponse(closed))
}

// ListByTask handles GET /tasks/{id}/timelogs.
func (h *TimeLogHandler) ListByTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	logs, err := h.svc.GetByTask(r.Context(), taskID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeLogListResponse(logs))
}

// ListMine handles GET /timelogs/my.
func (h *TimeLogHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	logs, err := h.svc.GetByUser(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimeLogListResponse(logs))
}

// Delete handles DELETE /timelogs/{id}. Admin only.
func (h *TimeLogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeError(w, http.StatusForbidden, "admin access required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid timelog id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTimeLogResponse(l *domain.TimeLog) timeLogResponse {
	resp := timeLogResponse{
		ID:        l.ID.String(),
		UserID:    l.UserID.String(),
		StartedAt: l.StartedAt,
		EndedAt:   l.EndedAt,
		Minutes:   l.Minutes(),
		IsActive:  l.IsActive(),
	}
	if l.TaskID != nil {
		s := l.TaskID.String()
		resp.TaskID = &s
	}
	return resp
}

func toTimeLogListResponse(logs []*domain.TimeLog) map[string]any {
	items := make([]timeLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, toTimeLogResponse(l))
	}
	return map[string]any{"timeLogs": items}
}
