package timelog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktime-backend/internal/domain"
)

var _ timeLogRepo = &timeLogRepoMock{}

type timeLogRepoMock struct {
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.TimeLog, error)
	GetActiveFunc           func(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error)
	GetActiveForTaskFunc    func(ctx context.Context, taskID uuid.UUID) ([]*domain.TimeLog, error)
	GetByTaskFunc           func(ctx context.Context, taskID uuid.UUID) ([]*domain.TimeLog, error)
	GetByUserFunc           func(ctx context.Context, userID uuid.UUID) ([]*domain.TimeLog, error)
	CreateFunc              func(ctx context.Context, taskID, userID uuid.UUID, startedAt time.Time) (*domain.TimeLog, error)
	SetEndFunc              func(ctx context.Context, id uuid.UUID, endedAt time.Time) (*domain.TimeLog, error)
	EndAllActiveForTaskFunc func(ctx context.Context, taskID uuid.UUID, endedAt time.Time) (int, error)
	TotalMinutesForTaskFunc func(ctx context.Context, taskID uuid.UUID) (float64, error)
	DailyAggregateFunc      func(ctx context.Context, rangeStart, rangeEnd time.Time, page, limit int, userID *uuid.UUID) (*domain.DailyReportPage, error)
	DeleteFunc              func(ctx context.Context, id uuid.UUID) (bool, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		GetActive []struct {
			UserID uuid.UUID
			TaskID uuid.UUID
		}
		GetActiveForTask []struct {
			TaskID uuid.UUID
		}
		GetByTask []struct {
			TaskID uuid.UUID
		}
		GetByUser []struct {
			UserID uuid.UUID
		}
		Create []struct {
			TaskID    uuid.UUID
			UserID    uuid.UUID
			StartedAt time.Time
		}
		SetEnd []struct {
			ID      uuid.UUID
			EndedAt time.Time
		}
		EndAllActiveForTask []struct {
			TaskID  uuid.UUID
			EndedAt time.Time
		}
		TotalMinutesForTask []struct {
			TaskID uuid.UUID
		}
		DailyAggregate []struct {
			RangeStart time.Time
			RangeEnd   time.Time
			Page       int
			Limit      int
			UserID     *uuid.UUID
		}
		Delete []struct {
			ID uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *timeLogRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeLog, error) {
	if mock.GetByIDFunc == nil {
		panic("timeLogRepoMock.GetByIDFunc: method is nil but timeLogRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *timeLogRepoMock) GetActive(ctx context.Context, userID, taskID uuid.UUID) (*domain.TimeLog, error) {
	if mock.GetActiveFunc == nil {
		panic("timeLogRepoMock.GetActiveFunc: method is nil but timeLogRepo.GetActive was just called")
	}
	mock.lock.Lock()
	mock.calls.GetActive = append(mock.calls.GetActive, struct {
		UserID uuid.UUID
		TaskID uuid.UUID
	}{UserID: userID, TaskID: taskID})
	mock.lock.Unlock()
	return mock.GetActiveFunc(ctx, userID, taskID)
}

func (mock *timeLogRepoMock) GetActiveCalls() []struct {
	UserID uuid.UUID
	TaskID uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetActive
}

func (mock *timeLogRepoMock) GetActiveForTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TimeLog, error) {
	if mock.GetActiveForTaskFunc == nil {
		panic("timeLogRepoMock.GetActiveForTaskFunc: method is nil but timeLogRepo.GetActiveForTask was just called")
	}
	mock.lock.Lock()
	mock.calls.GetActiveForTask = append(mock.calls.GetActiveForTask, struct{ TaskID uuid.UUID }{TaskID: taskID})
	mock.lock.Unlock()
	return mock.GetActiveForTaskFunc(ctx, taskID)
}

func (mock *timeLogRepoMock) GetByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.TimeLog, error) {
	if mock.GetByTaskFunc == nil {
		panic("timeLogRepoMock.GetByTaskFunc: method is nil but timeLogRepo.GetByTask was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByTask = append(mock.calls.GetByTask, struct{ TaskID uuid.UUID }{TaskID: taskID})
	mock.lock.Unlock()
	return mock.GetByTaskFunc(ctx, taskID)
}

func (mock *timeLogRepoMock) GetByUser(ctx context.Context, userID uuid.UUID) ([]*domain.TimeLog, error) {
	if mock.GetByUserFunc == nil {
		panic("timeLogRepoMock.GetByUserFunc: method is nil but timeLogRepo.GetByUser was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByUser = append(mock.calls.GetByUser, struct{ UserID uuid.UUID }{UserID: userID})
	mock.lock.Unlock()
	return mock.GetByUserFunc(ctx, userID)
}

func (mock *timeLogRepoMock) Create(ctx context.Context, taskID, userID uuid.UUID, startedAt time.Time) (*domain.TimeLog, error) {
	if mock.CreateFunc == nil {
		panic("timeLogRepoMock.CreateFunc: method is nil but timeLogRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct {
		TaskID    uuid.UUID
		UserID    uuid.UUID
		StartedAt time.Time
	}{TaskID: taskID, UserID: userID, StartedAt: startedAt})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, taskID, userID, startedAt)
}

func (mock *timeLogRepoMock) CreateCalls() []struct {
	TaskID    uuid.UUID
	UserID    uuid.UUID
	StartedAt time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *timeLogRepoMock) SetEnd(ctx context.Context, id uuid.UUID, endedAt time.Time) (*domain.TimeLog, error) {
	if mock.SetEndFunc == nil {
		panic("timeLogRepoMock.SetEndFunc: method is nil but timeLogRepo.SetEnd was just called")
	}
	mock.lock.Lock()
	mock.calls.SetEnd = append(mock.calls.SetEnd, struct {
		ID      uuid.UUID
		EndedAt time.Time
	}{ID: id, EndedAt: endedAt})
	mock.lock.Unlock()
	return mock.SetEndFunc(ctx, id, endedAt)
}

func (mock *timeLogRepoMock) SetEndCalls() []struct {
	ID      uuid.UUID
	EndedAt time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SetEnd
}

func (mock *timeLogRepoMock) EndAllActiveForTask(ctx context.Context, taskID uuid.UUID, endedAt time.Time) (int, error) {
	if mock.EndAllActiveForTaskFunc == nil {
		panic("timeLogRepoMock.EndAllActiveForTaskFunc: method is nil but timeLogRepo.EndAllActiveForTask was just called")
	}
	mock.lock.Lock()
	mock.calls.EndAllActiveForTask = append(mock.calls.EndAllActiveForTask, struct {
		TaskID  uuid.UUID
		EndedAt time.Time
	}{TaskID: taskID, EndedAt: endedAt})
	mock.lock.Unlock()
	return mock.EndAllActiveForTaskFunc(ctx, taskID, endedAt)
}

func (mock *timeLogRepoMock) EndAllActiveForTaskCalls() []struct {
	TaskID  uuid.UUID
	EndedAt time.Time
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.EndAllActiveForTask
}

func (mock *timeLogRepoMock) TotalMinutesForTask(ctx context.Context, taskID uuid.UUID) (float64, error) {
	if mock.TotalMinutesForTaskFunc == nil {
		panic("timeLogRepoMock.TotalMinutesForTaskFunc: method is nil but timeLogRepo.TotalMinutesForTask was just called")
	}
	mock.lock.Lock()
	mock.calls.TotalMinutesForTask = append(mock.calls.TotalMinutesForTask, struct{ TaskID uuid.UUID }{TaskID: taskID})
	mock.lock.Unlock()
	return mock.TotalMinutesForTaskFunc(ctx, taskID)
}

func (mock *timeLogRepoMock) DailyAggregate(ctx context.Context, rangeStart, rangeEnd time.Time, page, limit int, userID *uuid.UUID) (*domain.DailyReportPage, error) {
	if mock.DailyAggregateFunc == nil {
		panic("timeLogRepoMock.DailyAggregateFunc: method is nil but timeLogRepo.DailyAggregate was just called")
	}
	mock.lock.Lock()
	mock.calls.DailyAggregate = append(mock.calls.DailyAggregate, struct {
		RangeStart time.Time
		RangeEnd   time.Time
		Page       int
		Limit      int
		UserID     *uuid.UUID
	}{RangeStart: rangeStart, RangeEnd: rangeEnd, Page: page, Limit: limit, UserID: userID})
	mock.lock.Unlock()
	return mock.DailyAggregateFunc(ctx, rangeStart, rangeEnd, page, limit, userID)
}

func (mock *timeLogRepoMock) DailyAggregateCalls() []struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Page       int
	Limit      int
	UserID     *uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.DailyAggregate
}

func (mock *timeLogRepoMock) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("timeLogRepoMock.DeleteFunc: method is nil but timeLogRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct{ ID uuid.UUID }{ID: id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, id)
}
