package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/tasktime-backend/internal/domain"
	"github.com/heartmarshall/tasktime-backend/internal/service/task"
)

// taskService defines the minimal interface needed by TaskHandler.
type taskService interface {
	Create(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskWithTimeSpent, error)
	List(ctx context.Context, input task.ListTasksInput) (*task.TaskPage, error)
	Update(ctx context.Context, id uuid.UUID, input task.UpdateTaskInput) (*domain.TaskWithTimeSpent, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Assign(ctx context.Context, taskID, assigneeID uuid.UUID) (*domain.Task, error)
	Unassign(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
}

// TaskHandler serves task REST endpoints.
type TaskHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, log: logger.With("handler", "task")}
}

type createTaskRequest struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	EstimatedMinutes int     `json:"estimatedMinutes"`
	AssignedTo       *string `json:"assignedTo,omitempty"`
}

type updateTaskRequest struct {
	Title            *string `json:"title,omitempty"`
	Description      *string `json:"description,omitempty"`
	EstimatedMinutes *int    `json:"estimatedMinutes,omitempty"`
	Status           *string `json:"status,omitempty"`
}

type assignRequest struct {
	UserID string `json:"userId"`
}

type taskResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	CreatedBy        string    `json:"createdBy"`
	AssignedTo       *string   `json:"assignedTo,omitempty"`
	EstimatedMinutes int       `json:"estimatedMinutes"`
	Status           string    `json:"status"`
	TotalTimeSpent   *float64  `json:"totalTimeSpent,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type paginationResponse struct {
	CurrentPage     int  `json:"currentPage"`
	TotalPages      int  `json:"totalPages"`
	TotalItems      int  `json:"totalItems"`
	ItemsPerPage    int  `json:"itemsPerPage"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type taskListResponse struct {
	Tasks      []taskResponse     `json:"tasks"`
	Pagination paginationResponse `json:"pagination"`
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := task.CreateTaskInput{
		Title:            req.Title,
		Description:      req.Description,
		EstimatedMinutes: req.EstimatedMinutes,
	}
	if req.AssignedTo != nil {
		id, err := uuid.Parse(*req.AssignedTo)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid assignedTo")
			return
		}
		input.AssignedTo = &id
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTaskResponse(*created, nil))
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	found, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(found.Task, &found.TotalTimeSpent))
}

// List handles GET /tasks with status, search, and pagination query params.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListInput(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := taskListResponse{
		Tasks:      make([]taskResponse, 0, len(page.Tasks)),
		Pagination: toPaginationResponse(page.Pagination),
	}
	for _, t := range page.Tasks {
		total := t.TotalTimeSpent
		resp.Tasks = append(resp.Tasks, toTaskResponse(t.Task, &total))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Update handles PATCH /tasks/{id}. Absent fields are left unchanged.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	input := task.UpdateTaskInput{
		Title:            req.Title,
		Description:      req.Description,
		EstimatedMinutes: req.EstimatedMinutes,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		input.Status = &status
	}

	updated, err := h.svc.Update(r.Context(), id, input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(updated.Task, &updated.TotalTimeSpent))
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Assign handles POST /tasks/{id}/assign.
func (h *TaskHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	assigneeID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid userId")
		return
	}

	updated, err := h.svc.Assign(r.Context(), id, assigneeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*updated, nil))
}

// Unassign handles POST /tasks/{id}/unassign.
func (h *TaskHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	updated, err := h.svc.Unassign(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTaskResponse(*updated, nil))
}

func parseListInput(r *http.Request) (task.ListTasksInput, error) {
	input := task.ListTasksInput{
		Search: r.URL.Query().Get("search"),
	}

	if v := r.URL.Query().Get("status"); v != "" {
		status := domain.TaskStatus(v)
		input.Status = &status
	}

	var err error
	if input.CreatedBy, err = queryUUID(r, "createdBy"); err != nil {
		return input, err
	}
	if input.AssignedTo, err = queryUUID(r, "assignedTo"); err != nil {
		return input, err
	}
	if input.Page, err = queryInt(r, "page", 1); err != nil {
		return input, err
	}
	if input.Limit, err = queryInt(r, "limit", 20); err != nil {
		return input, err
	}

	return input, nil
}

func toTaskResponse(t domain.Task, totalTimeSpent *float64) taskResponse {
	resp := taskResponse{
		ID:               t.ID.String(),
		Title:            t.Title,
		Description:      t.Description,
		CreatedBy:        t.CreatedBy.String(),
		EstimatedMinutes: t.EstimatedMinutes,
		Status:           t.Status.String(),
		TotalTimeSpent:   totalTimeSpent,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
	if t.AssignedTo != nil {
		s := t.AssignedTo.String()
		resp.AssignedTo = &s
	}
	return resp
}

func toPaginationResponse(p domain.Pagination) paginationResponse {
	return paginationResponse{
		CurrentPage:     p.CurrentPage,
		TotalPages:      p.TotalPages,
		TotalItems:      p.TotalItems,
		ItemsPerPage:    p.ItemsPerPage,
		HasNextPage:     p.HasNextPage,
		HasPreviousPage: p.HasPreviousPage,
	}
}
