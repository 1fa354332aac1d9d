package tasks

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	taskRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/task"
)

type fakeTaskRepo struct {
	tasks       map[string]*domain.Task
	cancelCalls int
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id string) (*domain.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, taskRepo.ErrTaskNotFound
	}
	return t, nil
}

func (f *fakeTaskRepo) ListByDriver(_ context.Context, driverID string, status *domain.TaskStatus) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range f.tasks {
		if t.DriverID != driverID {
			continue
		}
		if status != nil && t.Status != *status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTaskRepo) UpdateStatus(_ context.Context, id string, status domain.TaskStatus) error {
	t, ok := f.tasks[id]
	if !ok {
		return taskRepo.ErrTaskNotFound
	}
	t.Status = status
	return nil
}

func (f *fakeTaskRepo) Cancel(_ context.Context, id string, reason string) error {
	t, ok := f.tasks[id]
	if !ok {
		return taskRepo.ErrTaskNotFound
	}
	f.cancelCalls++
	now := time.Now()
	t.Status = domain.TaskStatusCancelled
	t.CancellationReason = &reason
	t.CancelledAt = &now
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(tasks ...*domain.Task) (*Service, *fakeTaskRepo) {
	repo := &fakeTaskRepo{tasks: map[string]*domain.Task{}}
	for _, t := range tasks {
		repo.tasks[t.ID] = t
	}
	return NewService(repo, nopLogger{}), repo
}

func pendingTask(id string) *domain.Task {
	return &domain.Task{
		ID:       id,
		DriverID: "drv-1",
		Status:   domain.TaskStatusPending,
		Priority: domain.PriorityMedium,
	}
}

func TestGetByID(t *testing.T) {
	svc, _ := newService(pendingTask("task-1"))

	got, err := svc.GetByID(context.Background(), "task-1")
	require.NoError(t, err)
	assert.Equal(t, "task-1", got.ID)
	assert.Equal(t, string(domain.TaskStatusPending), got.Status)

	_, err = svc.GetByID(context.Background(), "task-missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestListByDriver_StatusFilter(t *testing.T) {
	done := pendingTask("task-2")
	done.Status = domain.TaskStatusCompleted
	svc, _ := newService(pendingTask("task-1"), done)

	all, err := svc.ListByDriver(context.Background(), "drv-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	status := string(domain.TaskStatusCompleted)
	completed, err := svc.ListByDriver(context.Background(), "drv-1", &status)
	require.NoError(t, err)
	require.Equal(t, 1, completed.Total)
	assert.Equal(t, "task-2", completed.Tasks[0].ID)

	bad := "archived"
	_, err = svc.ListByDriver(context.Background(), "drv-1", &bad)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus(t *testing.T) {
	svc, repo := newService(pendingTask("task-1"))

	require.NoError(t, svc.UpdateStatus(context.Background(), "task-1", "in_progress"))
	assert.Equal(t, domain.TaskStatusInProgress, repo.tasks["task-1"].Status)

	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), "task-1", "archived"), ErrInvalidStatus)
	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), "task-missing", "completed"), ErrTaskNotFound)
}

func TestCancel(t *testing.T) {
	svc, repo := newService(pendingTask("task-1"))

	require.NoError(t, svc.Cancel(context.Background(), "task-1", "vehicle breakdown"))
	assert.Equal(t, 1, repo.cancelCalls)
	assert.Equal(t, domain.TaskStatusCancelled, repo.tasks["task-1"].Status)
	require.NotNil(t, repo.tasks["task-1"].CancellationReason)
	assert.Equal(t, "vehicle breakdown", *repo.tasks["task-1"].CancellationReason)
}

func TestCancel_OnlyActiveTasks(t *testing.T) {
	completed := pendingTask("task-1")
	completed.Status = domain.TaskStatusCompleted
	cancelled := pendingTask("task-2")
	cancelled.Status = domain.TaskStatusCancelled
	svc, repo := newService(completed, cancelled)

	assert.ErrorIs(t, svc.Cancel(context.Background(), "task-1", ""), ErrCannotCancel)
	assert.ErrorIs(t, svc.Cancel(context.Background(), "task-2", ""), ErrCannotCancel)
	assert.Zero(t, repo.cancelCalls)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc, repo := newService(pendingTask("task-1"))

	reason := strings.Repeat("x", domain.MaxCancellationReasonLength+1)
	assert.ErrorIs(t, svc.Cancel(context.Background(), "task-1", reason), ErrInvalidInput)
	assert.Zero(t, repo.cancelCalls)
}
