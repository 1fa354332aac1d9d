package match_resources

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
)

var testDate = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

type fakeResourceRepo struct {
	drivers  []*domain.Driver
	vehicles []*domain.Vehicle
}

func (f *fakeResourceRepo) ListDrivers(_ context.Context) ([]*domain.Driver, error) {
	return f.drivers, nil
}

func (f *fakeResourceRepo) ListVehicles(_ context.Context) ([]*domain.Vehicle, error) {
	return f.vehicles, nil
}

type fakeScheduleRepo struct {
	byKind map[domain.ResourceKind]map[string]domain.DaySchedule
}

func (f *fakeScheduleRepo) GetForDate(_ context.Context, kind domain.ResourceKind, _ string) (map[string]domain.DaySchedule, error) {
	schedules, ok := f.byKind[kind]
	if !ok {
		return map[string]domain.DaySchedule{}, nil
	}
	return schedules, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_ReturnsAvailableResourcesInInputOrder(t *testing.T) {
	drivers := []*domain.Driver{
		{ID: "drv-1", IsActive: true},
		{ID: "drv-2", IsActive: true},
		{ID: "drv-3", IsActive: true},
	}
	vehicles := []*domain.Vehicle{
		{ID: "veh-1", LifecycleStatus: domain.VehicleActive, IsActive: true},
		{ID: "veh-2", LifecycleStatus: domain.VehicleActive, IsActive: true},
	}

	// drv-2 is busy across the requested window
	busy, err := domain.EmptySchedule("drv-2", testDate, domain.KindDriver, domain.NewDefaultPolicy()).
		WithDriverStatus(14, 17, domain.SlotBusy)
	require.NoError(t, err)

	// veh-2 has one blocked slot inside the window
	blocked, err := domain.EmptySchedule("veh-2", testDate, domain.KindVehicle, domain.NewDefaultPolicy()).
		WithAvailability(15, 15, false)
	require.NoError(t, err)

	uc := NewUseCase(
		&fakeResourceRepo{drivers: drivers, vehicles: vehicles},
		&fakeScheduleRepo{byKind: map[domain.ResourceKind]map[string]domain.DaySchedule{
			domain.KindDriver:  {"drv-2": busy},
			domain.KindVehicle: {"veh-2": blocked},
		}},
		domain.NewDefaultPolicy(),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:          testDate,
		StartIndex:    14,
		DurationSlots: 4,
	})
	require.NoError(t, err)

	require.Len(t, resp.Drivers, 2)
	assert.Equal(t, "drv-1", resp.Drivers[0].ID)
	assert.Equal(t, "drv-3", resp.Drivers[1].ID)

	require.Len(t, resp.Vehicles, 1)
	assert.Equal(t, "veh-1", resp.Vehicles[0].ID)
}

func TestExecute_InactiveResourcesExcluded(t *testing.T) {
	uc := NewUseCase(
		&fakeResourceRepo{
			drivers:  []*domain.Driver{{ID: "drv-1", IsActive: false}},
			vehicles: []*domain.Vehicle{{ID: "veh-1", LifecycleStatus: domain.VehicleActive, IsActive: false}},
		},
		&fakeScheduleRepo{},
		domain.NewDefaultPolicy(),
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:          testDate,
		StartIndex:    14,
		DurationSlots: 2,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Drivers)
	assert.Empty(t, resp.Vehicles)
}

func TestExecute_AbsentSchedulesFallBackToPolicy(t *testing.T) {
	uc := NewUseCase(
		&fakeResourceRepo{
			drivers:  []*domain.Driver{{ID: "drv-1", IsActive: true}},
			vehicles: []*domain.Vehicle{{ID: "veh-1", LifecycleStatus: domain.VehicleActive, IsActive: true}},
		},
		&fakeScheduleRepo{},
		domain.NewDefaultPolicy(),
		nopLogger{},
	)

	// Window outside business hours: the default driver is off duty, the
	// default vehicle is still fully available
	resp, err := uc.Execute(context.Background(), &Request{
		Date:          testDate,
		StartIndex:    2,
		DurationSlots: 2,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Drivers)
	require.Len(t, resp.Vehicles, 1)
	assert.Equal(t, "veh-1", resp.Vehicles[0].ID)
}

func TestExecute_InvalidWindow(t *testing.T) {
	uc := NewUseCase(&fakeResourceRepo{}, &fakeScheduleRepo{}, domain.NewDefaultPolicy(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate, StartIndex: 46, DurationSlots: 3})
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = uc.Execute(context.Background(), &Request{Date: testDate, StartIndex: 10, DurationSlots: 0})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestExecute_MissingDate(t *testing.T) {
	uc := NewUseCase(&fakeResourceRepo{}, &fakeScheduleRepo{}, domain.NewDefaultPolicy(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{StartIndex: 10, DurationSlots: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
