package create_task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	resourceRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/resource"
	scheduleRepo "github.com/m04kA/SMC-FleetService/internal/infra/storage/schedule"
)

var testDate = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

type fakeResourceRepo struct {
	drivers  map[string]*domain.Driver
	vehicles map[string]*domain.Vehicle
}

func (f *fakeResourceRepo) GetDriver(_ context.Context, id string) (*domain.Driver, error) {
	d, ok := f.drivers[id]
	if !ok {
		return nil, resourceRepo.ErrDriverNotFound
	}
	return d, nil
}

func (f *fakeResourceRepo) GetVehicle(_ context.Context, id string) (*domain.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, resourceRepo.ErrVehicleNotFound
	}
	return v, nil
}

type fakeScheduleRepo struct {
	schedules map[string]domain.DaySchedule
}

func (f *fakeScheduleRepo) key(resourceID, date string) string {
	return resourceID + "|" + date
}

func (f *fakeScheduleRepo) Get(_ context.Context, resourceID, date string) (*domain.DaySchedule, error) {
	s, ok := f.schedules[f.key(resourceID, date)]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return &s, nil
}

func (f *fakeScheduleRepo) Put(_ context.Context, schedule *domain.DaySchedule) error {
	if f.schedules == nil {
		f.schedules = map[string]domain.DaySchedule{}
	}
	f.schedules[f.key(schedule.ResourceID, schedule.Date.Format(domain.DateFormat))] = *schedule
	return nil
}

type fakeTaskRepo struct {
	created []*domain.Task
}

func (f *fakeTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	stored := *task
	f.created = append(f.created, &stored)
	return &stored, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc        *UseCase
	resources *fakeResourceRepo
	schedules *fakeScheduleRepo
	tasks     *fakeTaskRepo
}

func newFixture() *fixture {
	resources := &fakeResourceRepo{
		drivers: map[string]*domain.Driver{
			"drv-1": {ID: "drv-1", Name: "Ivanov", IsActive: true},
		},
		vehicles: map[string]*domain.Vehicle{
			"veh-1": {ID: "veh-1", VehicleType: "van", Seats: 9, LifecycleStatus: domain.VehicleActive, IsActive: true},
		},
	}
	schedules := &fakeScheduleRepo{}
	tasks := &fakeTaskRepo{}
	uc := NewUseCase(resources, schedules, tasks, fakeTxManager{}, domain.NewDefaultPolicy(), nopLogger{})
	return &fixture{uc: uc, resources: resources, schedules: schedules, tasks: tasks}
}

func validRequest() *Request {
	return &Request{
		DriverID:      "drv-1",
		VehicleID:     "veh-1",
		Date:          testDate,
		StartIndex:    14,
		DurationSlots: 4,
		LocationStart: "Depot North",
		LocationEnd:   "Terminal 2",
	}
}

func TestExecute_CommitsTaskAndMutatesBothSchedules(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	task := resp.Task
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, "van", task.VehicleType)
	assert.Equal(t, 9, task.VehicleSeats)
	require.Len(t, f.tasks.created, 1)

	// The driver schedule was materialized and marked busy on the window
	date := testDate.Format(domain.DateFormat)
	driverDay, err := f.schedules.Get(context.Background(), "drv-1", date)
	require.NoError(t, err)
	for i := 14; i <= 17; i++ {
		assert.Equal(t, domain.SlotBusy, driverDay.Slots[i].Status, "driver slot %d", i)
	}
	assert.Equal(t, domain.SlotFree, driverDay.Slots[13].Status)

	// The vehicle schedule was marked unavailable on the window
	vehicleDay, err := f.schedules.Get(context.Background(), "veh-1", date)
	require.NoError(t, err)
	for i := 14; i <= 17; i++ {
		assert.False(t, vehicleDay.Slots[i].IsAvailable, "vehicle slot %d", i)
	}
	assert.True(t, vehicleDay.Slots[18].IsAvailable)
}

func TestExecute_SecondOverlappingCommitRejected(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// The same window is no longer free for either resource
	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrResourceUnavailable)
	assert.Len(t, f.tasks.created, 1)

	// An overlapping window fails as well
	overlapping := validRequest()
	overlapping.StartIndex = 16
	overlapping.DurationSlots = 2
	_, err = f.uc.Execute(context.Background(), overlapping)
	assert.ErrorIs(t, err, ErrResourceUnavailable)

	// A disjoint window still commits
	disjoint := validRequest()
	disjoint.StartIndex = 20
	disjoint.DurationSlots = 2
	_, err = f.uc.Execute(context.Background(), disjoint)
	assert.NoError(t, err)
	assert.Len(t, f.tasks.created, 2)
}

func TestExecute_ValidationOrder(t *testing.T) {
	f := newFixture()

	// Resources win over endpoints and window
	req := validRequest()
	req.DriverID = ""
	req.LocationStart = ""
	req.DurationSlots = 0
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingResource)

	req.DriverID = "drv-1"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingEndpoint)

	req.LocationStart = "Depot North"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	assert.Empty(t, f.tasks.created)
}

func TestExecute_UnknownResources(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.DriverID = "drv-missing"
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDriverNotFound)

	req = validRequest()
	req.VehicleID = "veh-missing"
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_WindowPastMidnightRejected(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.StartIndex = 46
	req.DurationSlots = 3
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestExecute_VehicleInMaintenanceRejected(t *testing.T) {
	f := newFixture()
	f.resources.vehicles["veh-1"].LifecycleStatus = domain.VehicleMaintenance

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestExecute_ExplicitPriority(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.Priority = domain.PriorityHigh
	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, resp.Task.Priority)

	req = validRequest()
	req.StartIndex = 30
	req.Priority = domain.TaskPriority("urgent")
	_, err = f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
