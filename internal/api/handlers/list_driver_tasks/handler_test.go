package list_driver_tasks

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	"github.com/m04kA/SMC-FleetService/internal/service/tasks"
)

type fakeTaskRepo struct {
	tasks []*domain.Task
}

func (f *fakeTaskRepo) GetByID(_ context.Context, _ string) (*domain.Task, error) {
	return nil, nil
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

func (f *fakeTaskRepo) UpdateStatus(_ context.Context, _ string, _ domain.TaskStatus) error {
	return nil
}

func (f *fakeTaskRepo) Cancel(_ context.Context, _, _ string) error {
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(repo *fakeTaskRepo) *mux.Router {
	svc := tasks.NewService(repo, nopLogger{})
	handler := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/drivers/{driverId}/tasks", handler.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_ListsDriverTasks(t *testing.T) {
	repo := &fakeTaskRepo{tasks: []*domain.Task{
		{ID: "task-1", DriverID: "drv-1", Status: domain.TaskStatusPending, Priority: domain.PriorityMedium},
		{ID: "task-2", DriverID: "drv-2", Status: domain.TaskStatusPending, Priority: domain.PriorityMedium},
	}}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/drivers/drv-1/tasks", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TaskListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "task-1", resp.Tasks[0].ID)
}

func TestHandle_StatusFilter(t *testing.T) {
	repo := &fakeTaskRepo{tasks: []*domain.Task{
		{ID: "task-1", DriverID: "drv-1", Status: domain.TaskStatusPending, Priority: domain.PriorityMedium},
		{ID: "task-2", DriverID: "drv-1", Status: domain.TaskStatusCompleted, Priority: domain.PriorityMedium},
	}}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/drivers/drv-1/tasks?status=completed", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp TaskListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "task-2", resp.Tasks[0].ID)
}

func TestHandle_UnknownStatusFilterIsBadRequest(t *testing.T) {
	router := newTestRouter(&fakeTaskRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/drivers/drv-1/tasks?status=bogus", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgInvalidStatus)
}
