package task

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

var (
	_ taskRepo       = &taskRepoMock{}
	_ timeLogService = &timeLogServiceMock{}
	_ userRepo       = &userRepoMock{}
	_ txManager      = &txManagerMock{}
)

type taskRepoMock struct {
	CreateFunc       func(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListFunc         func(ctx context.Context, f domain.TaskFilter) ([]*domain.Task, error)
	CountFunc        func(ctx context.Context, f domain.TaskFilter) (int, error)
	UpdateFunc       func(ctx context.Context, t *domain.Task) (*domain.Task, error)
	UpdateStatusFunc func(ctx context.Context, id uuid.UUID, status domain.TaskStatus) (*domain.Task, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		Create []struct{ Task *domain.Task }
		Update []struct{ Task *domain.Task }
		Delete []struct{ ID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *taskRepoMock) Create(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Task *domain.Task }{Task: t})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *taskRepoMock) CreateCalls() []struct{ Task *domain.Task } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *taskRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if mock.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

func (mock *taskRepoMock) List(ctx context.Context, f domain.TaskFilter) ([]*domain.Task, error) {
	if mock.ListFunc == nil {
		panic("taskRepoMock.ListFunc: method is nil but taskRepo.List was just called")
	}
	return mock.ListFunc(ctx, f)
}

func (mock *taskRepoMock) Count(ctx context.Context, f domain.TaskFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("taskRepoMock.CountFunc: method is nil but taskRepo.Count was just called")
	}
	return mock.CountFunc(ctx, f)
}

func (mock *taskRepoMock) Update(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	if mock.UpdateFunc == nil {
		panic("taskRepoMock.UpdateFunc: method is nil but taskRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Task *domain.Task }{Task: t})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, t)
}

func (mock *taskRepoMock) UpdateCalls() []struct{ Task *domain.Task } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *taskRepoMock) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TaskStatus) (*domain.Task, error) {
	if mock.UpdateStatusFunc == nil {
		panic("taskRepoMock.UpdateStatusFunc: method is nil but taskRepo.UpdateStatus was just called")
	}
	return mock.UpdateStatusFunc(ctx, id, status)
}

func (mock *taskRepoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("taskRepoMock.DeleteFunc: method is nil but taskRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *taskRepoMock) DeleteCalls() []struct{ ID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

type timeLogServiceMock struct {
	StartTimeLogFunc        func(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error)
	EndAllActiveForTaskFunc func(ctx context.Context, taskID uuid.UUID) (int, error)
	TotalTimeSpentFunc      func(ctx context.Context, taskID uuid.UUID) (float64, error)

	calls struct {
		StartTimeLog []struct {
			UserID uuid.UUID
			TaskID uuid.UUID
		}
		EndAllActiveForTask []struct{ TaskID uuid.UUID }
	}
	lock sync.RWMutex
}

func (mock *timeLogServiceMock) StartTimeLog(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error) {
	if mock.StartTimeLogFunc == nil {
		panic("timeLogServiceMock.StartTimeLogFunc: method is nil but timeLogService.StartTimeLog was just called")
	}
	mock.lock.Lock()
	mock.calls.StartTimeLog = append(mock.calls.StartTimeLog, struct {
		UserID uuid.UUID
		TaskID uuid.UUID
	}{UserID: userID, TaskID: taskID})
	mock.lock.Unlock()
	return mock.StartTimeLogFunc(ctx, userID, taskID)
}

func (mock *timeLogServiceMock) StartTimeLogCalls() []struct {
	UserID uuid.UUID
	TaskID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.StartTimeLog
}

func (mock *timeLogServiceMock) EndAllActiveForTask(ctx context.Context, taskID uuid.UUID) (int, error) {
	if mock.EndAllActiveForTaskFunc == nil {
		panic("timeLogServiceMock.EndAllActiveForTaskFunc: method is nil but timeLogService.EndAllActiveForTask was just called")
	}
	mock.lock.Lock()
	mock.calls.EndAllActiveForTask = append(mock.calls.EndAllActiveForTask, struct{ TaskID uuid.UUID }{TaskID: taskID})
	mock.lock.Unlock()
	return mock.EndAllActiveForTaskFunc(ctx, taskID)
}

func (mock *timeLogServiceMock) EndAllActiveForTaskCalls() []struct{ TaskID uuid.UUID } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.EndAllActiveForTask
}

func (mock *timeLogServiceMock) TotalTimeSpent(ctx context.Context, taskID uuid.UUID) (float64, error) {
	if mock.TotalTimeSpentFunc == nil {
		panic("timeLogServiceMock.TotalTimeSpentFunc: method is nil but timeLogService.TotalTimeSpent was just called")
	}
	return mock.TotalTimeSpentFunc(ctx, taskID)
}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, id)
}

// txManagerMock runs the callback directly; tests that care about
// rollback behavior assert on the returned error instead.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx int
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lock.Lock()
	mock.calls.RunInTx++
	mock.lock.Unlock()
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

func (mock *txManagerMock) RunInTxCalls() int {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}
