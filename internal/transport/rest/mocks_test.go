package rest

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/heartmarshall/tasktime-backend/internal/config"
	"github.com/heartmarshall/tasktime-backend/internal/domain"
	"github.com/heartmarshall/tasktime-backend/internal/service/auth"
	"github.com/heartmarshall/tasktime-backend/internal/service/task"
	"github.com/heartmarshall/tasktime-backend/internal/service/timelog"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testReportConfig() config.ReportConfig {
	return config.ReportConfig{
		DefaultPageSize: 20,
		MaxPageSize:     100,
		MaxRangeDays:    366,
	}
}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if m.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but Register was just called")
	}
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if m.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but Login was just called")
	}
	return m.LoginFunc(ctx, input)
}

type taskServiceMock struct {
	CreateFunc   func(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error)
	GetByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.TaskWithTimeSpent, error)
	ListFunc     func(ctx context.Context, input task.ListTasksInput) (*task.TaskPage, error)
	UpdateFunc   func(ctx context.Context, id uuid.UUID, input task.UpdateTaskInput) (*domain.TaskWithTimeSpent, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
	AssignFunc   func(ctx context.Context, taskID, assigneeID uuid.UUID) (*domain.Task, error)
	UnassignFunc func(ctx context.Context, taskID uuid.UUID) (*domain.Task, error)
}

func (m *taskServiceMock) Create(ctx context.Context, input task.CreateTaskInput) (*domain.Task, error) {
	if m.CreateFunc == nil {
		panic("taskServiceMock.CreateFunc: method is nil but Create was just called")
	}
	return m.CreateFunc(ctx, input)
}

func (m *taskServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.TaskWithTimeSpent, error) {
	if m.GetByIDFunc == nil {
		panic("taskServiceMock.GetByIDFunc: method is nil but GetByID was just called")
	}
	return m.GetByIDFunc(ctx, id)
}

func (m *taskServiceMock) List(ctx context.Context, input task.ListTasksInput) (*task.TaskPage, error) {
	if m.ListFunc == nil {
		panic("taskServiceMock.ListFunc: method is nil but List was just called")
	}
	return m.ListFunc(ctx, input)
}

func (m *taskServiceMock) Update(ctx context.Context, id uuid.UUID, input task.UpdateTaskInput) (*domain.TaskWithTimeSpent, error) {
	if m.UpdateFunc == nil {
		panic("taskServiceMock.UpdateFunc: method is nil but Update was just called")
	}
	return m.UpdateFunc(ctx, id, input)
}

func (m *taskServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("taskServiceMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *taskServiceMock) Assign(ctx context.Context, taskID, assigneeID uuid.UUID) (*domain.Task, error) {
	if m.AssignFunc == nil {
		panic("taskServiceMock.AssignFunc: method is nil but Assign was just called")
	}
	return m.AssignFunc(ctx, taskID, assigneeID)
}

func (m *taskServiceMock) Unassign(ctx context.Context, taskID uuid.UUID) (*domain.Task, error) {
	if m.UnassignFunc == nil {
		panic("taskServiceMock.UnassignFunc: method is nil but Unassign was just called")
	}
	return m.UnassignFunc(ctx, taskID)
}

type timeLogServiceMock struct {
	StartTimeLogFunc     func(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error)
	EndTimeLogFunc       func(ctx context.Context, id uuid.UUID) (*domain.TimeLog, error)
	EndActiveTimeLogFunc func(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error)
	GetByTaskFunc        func(ctx context.Context, taskID uuid.UUID) ([]*domain.TimeLog, error)
	GetByUserFunc        func(ctx context.Context, userID uuid.UUID) ([]*domain.TimeLog, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	DailyReportFunc      func(ctx context.Context, input timelog.DailyReportInput) (*domain.DailyReportPage, error)
}

func (m *timeLogServiceMock) StartTimeLog(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error) {
	if m.StartTimeLogFunc == nil {
		panic("timeLogServiceMock.StartTimeLogFunc: method is nil but StartTimeLog was just called")
	}
	return m.StartTimeLogFunc(ctx, userID, taskID)
}

func (m *timeLogServiceMock) EndTimeLog(ctx context.Context, id uuid.UUID) (*domain.TimeLog, error) {
	if m.EndTimeLogFunc == nil {
		panic("timeLogServiceMock.EndTimeLogFunc: method is nil but EndTimeLog was just called")
	}
	return m.EndTimeLogFunc(ctx, id)
}

func (m *timeLogServiceMock) EndActiveTimeLog(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error) {
	if m.EndActiveTimeLogFunc == nil {
		panic("timeLogServiceMock.EndActiveTimeLogFunc: method is nil but EndActiveTimeLog was just called")
	}
	return m.EndActiveTimeLogFunc(ctx, userID, taskID)
}

func (m *timeLogServiceMock) GetByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TimeLog, error) {
	if m.GetByTaskFunc == nil {
		panic("timeLogServiceMock.GetByTaskFunc: method is nil but GetByTask was just called")
	}
	return m.GetByTaskFunc(ctx, taskID)
}

func (m *timeLogServiceMock) GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.TimeLog, error) {
	if m.GetByUserFunc == nil {
		panic("timeLogServiceMock.GetByUserFunc: method is nil but GetByUser was just called")
	}
	return m.GetByUserFunc(ctx, userID)
}

func (m *timeLogServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("timeLogServiceMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, id)
}

func (m *timeLogServiceMock) DailyReport(ctx context.Context, input timelog.DailyReportInput) (*domain.DailyReportPage, error) {
	if m.DailyReportFunc == nil {
		panic("timeLogServiceMock.DailyReportFunc: method is nil but DailyReport was just called")
	}
	return m.DailyReportFunc(ctx, input)
}
