package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commitFixture() (TaskProposal, *Driver, *Vehicle, DaySchedule, DaySchedule) {
	proposal := TaskProposal{
		DriverID:      "drv-1",
		VehicleID:     "veh-1",
		Date:          testDate,
		StartIndex:    14,
		DurationSlots: 4,
		LocationStart: "Depot North",
		LocationEnd:   "Terminal 2",
	}
	driver := &Driver{ID: "drv-1", IsActive: true}
	vehicle := &Vehicle{
		ID:              "veh-1",
		VehicleType:     "van",
		Seats:           9,
		LifecycleStatus: VehicleActive,
		IsActive:        true,
	}
	driverSchedule := EmptySchedule("drv-1", testDate, KindDriver, NewDefaultPolicy())
	vehicleSchedule := EmptySchedule("veh-1", testDate, KindVehicle, NewDefaultPolicy())
	return proposal, driver, vehicle, driverSchedule, vehicleSchedule
}

func TestBuildCommit_Success(t *testing.T) {
	proposal, driver, vehicle, ds, vs := commitFixture()
	now := time.Date(2025, 3, 13, 18, 0, 0, 0, time.UTC)

	plan, err := BuildCommit(proposal, driver, vehicle, ds, vs, now)
	require.NoError(t, err)

	task := plan.Task
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "drv-1", task.DriverID)
	assert.Equal(t, "veh-1", task.VehicleID)
	assert.Equal(t, TaskStatusPending, task.Status)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, 14, task.StartIndex)
	assert.Equal(t, 4, task.DurationSlots)
	assert.Equal(t, now, task.CreatedAt)

	// Derived wall-clock bounds: slot 14 starts 07:00, slot 17 ends 09:00
	assert.Equal(t, time.Date(2025, 3, 14, 7, 0, 0, 0, time.UTC), task.StartTime)
	assert.Equal(t, time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC), task.EndTime)

	// Vehicle snapshots captured at commit time
	assert.Equal(t, "van", task.VehicleType)
	assert.Equal(t, 9, task.VehicleSeats)

	// Companion mutations cover the same inclusive range for both resources
	driverMut := plan.Mutations[0]
	assert.Equal(t, "drv-1", driverMut.ResourceID)
	assert.Equal(t, KindDriver, driverMut.Kind)
	assert.Equal(t, 14, driverMut.StartIndex)
	assert.Equal(t, 17, driverMut.EndIndex)
	assert.Equal(t, SlotBusy, driverMut.DriverStatus)

	vehicleMut := plan.Mutations[1]
	assert.Equal(t, "veh-1", vehicleMut.ResourceID)
	assert.Equal(t, KindVehicle, vehicleMut.Kind)
	assert.Equal(t, 14, vehicleMut.StartIndex)
	assert.Equal(t, 17, vehicleMut.EndIndex)
	assert.False(t, vehicleMut.Available)
}

func TestBuildCommit_ExplicitPriorityKept(t *testing.T) {
	proposal, driver, vehicle, ds, vs := commitFixture()
	proposal.Priority = PriorityHigh

	plan, err := BuildCommit(proposal, driver, vehicle, ds, vs, time.Now())
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, plan.Task.Priority)
}

func TestBuildCommit_ValidationOrder(t *testing.T) {
	// Every precondition violated at once; the missing resource id wins
	proposal, driver, vehicle, ds, vs := commitFixture()
	proposal.DriverID = ""
	proposal.LocationStart = "   "
	proposal.DurationSlots = 0

	busyDS, err := ds.WithDriverStatus(14, 17, SlotBusy)
	require.NoError(t, err)

	_, err = BuildCommit(proposal, driver, vehicle, busyDS, vs, time.Now())
	assert.ErrorIs(t, err, ErrMissingResource)

	// With the resource restored, the missing endpoint is reported next
	proposal.DriverID = "drv-1"
	_, err = BuildCommit(proposal, driver, vehicle, busyDS, vs, time.Now())
	assert.ErrorIs(t, err, ErrMissingEndpoint)

	// Then the malformed window
	proposal.LocationStart = "Depot North"
	_, err = BuildCommit(proposal, driver, vehicle, busyDS, vs, time.Now())
	assert.ErrorIs(t, err, ErrInvalidWindow)

	// And only last the availability conflict
	proposal.DurationSlots = 4
	_, err = BuildCommit(proposal, driver, vehicle, busyDS, vs, time.Now())
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestBuildCommit_MissingVehicleID(t *testing.T) {
	proposal, driver, vehicle, ds, vs := commitFixture()
	proposal.VehicleID = "  "

	_, err := BuildCommit(proposal, driver, vehicle, ds, vs, time.Now())
	assert.ErrorIs(t, err, ErrMissingResource)
}

func TestBuildCommit_DriverBusy(t *testing.T) {
	proposal, driver, vehicle, ds, vs := commitFixture()
	busyDS, err := ds.WithDriverStatus(16, 16, SlotBusy)
	require.NoError(t, err)

	_, err = BuildCommit(proposal, driver, vehicle, busyDS, vs, time.Now())
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestBuildCommit_VehicleBlocked(t *testing.T) {
	proposal, driver, vehicle, ds, vs := commitFixture()
	blockedVS, err := vs.WithAvailability(15, 15, false)
	require.NoError(t, err)

	_, err = BuildCommit(proposal, driver, vehicle, ds, blockedVS, time.Now())
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestBuildCommit_VehicleInMaintenance(t *testing.T) {
	proposal, driver, vehicle, ds, vs := commitFixture()
	vehicle.LifecycleStatus = VehicleMaintenance

	_, err := BuildCommit(proposal, driver, vehicle, ds, vs, time.Now())
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestBuildCommit_InactiveDriver(t *testing.T) {
	proposal, driver, vehicle, ds, vs := commitFixture()
	driver.IsActive = false

	_, err := BuildCommit(proposal, driver, vehicle, ds, vs, time.Now())
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestBuildCommit_TrimsEndpoints(t *testing.T) {
	proposal, driver, vehicle, ds, vs := commitFixture()
	proposal.LocationStart = "  Depot North  "
	proposal.LocationEnd = " Terminal 2 "

	plan, err := BuildCommit(proposal, driver, vehicle, ds, vs, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Depot North", plan.Task.LocationStart)
	assert.Equal(t, "Terminal 2", plan.Task.LocationEnd)
}
