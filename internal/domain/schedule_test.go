package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func TestEmptySchedule_DriverBusinessHours(t *testing.T) {
	schedule := EmptySchedule("drv-1", testDate, KindDriver, NewDefaultPolicy())
	require.Len(t, schedule.Slots, SlotsPerDay)

	// 06:00 maps to index 12, 23:00 to index 46 (exclusive end)
	assert.Equal(t, SlotOffDuty, schedule.Slots[5].Status)
	assert.Equal(t, SlotOffDuty, schedule.Slots[11].Status)
	assert.Equal(t, SlotFree, schedule.Slots[12].Status)
	assert.Equal(t, SlotFree, schedule.Slots[16].Status)
	assert.Equal(t, SlotFree, schedule.Slots[45].Status)
	assert.Equal(t, SlotOffDuty, schedule.Slots[46].Status)
	assert.Equal(t, SlotOffDuty, schedule.Slots[47].Status)
}

func TestEmptySchedule_CustomPolicy(t *testing.T) {
	policy := DefaultPolicy{BusinessStartIndex: 16, BusinessEndIndex: 40}
	schedule := EmptySchedule("drv-1", testDate, KindDriver, policy)

	assert.Equal(t, SlotOffDuty, schedule.Slots[15].Status)
	assert.Equal(t, SlotFree, schedule.Slots[16].Status)
	assert.Equal(t, SlotFree, schedule.Slots[39].Status)
	assert.Equal(t, SlotOffDuty, schedule.Slots[40].Status)
}

func TestEmptySchedule_VehicleFullyAvailable(t *testing.T) {
	schedule := EmptySchedule("veh-1", testDate, KindVehicle, NewDefaultPolicy())
	require.Len(t, schedule.Slots, SlotsPerDay)

	for i, slot := range schedule.Slots {
		assert.True(t, slot.IsAvailable, "slot %d", i)
		assert.Equal(t, i, slot.Index)
	}
}

func TestDaySchedule_Validate(t *testing.T) {
	schedule := EmptySchedule("drv-1", testDate, KindDriver, NewDefaultPolicy())
	assert.NoError(t, schedule.Validate())

	short := schedule
	short.Slots = schedule.Slots[:47]
	assert.ErrorIs(t, short.Validate(), ErrScheduleCorrupted)

	misordered := EmptySchedule("drv-1", testDate, KindDriver, NewDefaultPolicy())
	misordered.Slots[3].Index = 7
	assert.ErrorIs(t, misordered.Validate(), ErrScheduleCorrupted)
}

func TestWithDriverStatus_AppliesInclusiveRange(t *testing.T) {
	schedule := EmptySchedule("drv-1", testDate, KindDriver, NewDefaultPolicy())

	updated, err := schedule.WithDriverStatus(14, 17, SlotBusy)
	require.NoError(t, err)

	assert.Equal(t, SlotFree, updated.Slots[13].Status)
	for i := 14; i <= 17; i++ {
		assert.Equal(t, SlotBusy, updated.Slots[i].Status, "slot %d", i)
	}
	assert.Equal(t, SlotFree, updated.Slots[18].Status)

	// Original is untouched
	for i := 14; i <= 17; i++ {
		assert.Equal(t, SlotFree, schedule.Slots[i].Status, "original slot %d", i)
	}
}

func TestWithDriverStatus_SingleSlot(t *testing.T) {
	schedule := EmptySchedule("drv-1", testDate, KindDriver, NewDefaultPolicy())

	updated, err := schedule.WithDriverStatus(20, 20, SlotBreak)
	require.NoError(t, err)
	assert.Equal(t, SlotBreak, updated.Slots[20].Status)
	assert.Equal(t, SlotFree, updated.Slots[19].Status)
	assert.Equal(t, SlotFree, updated.Slots[21].Status)
}

func TestWithDriverStatus_InvalidRange(t *testing.T) {
	schedule := EmptySchedule("drv-1", testDate, KindDriver, NewDefaultPolicy())

	_, err := schedule.WithDriverStatus(17, 14, SlotBusy)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = schedule.WithDriverStatus(-1, 5, SlotBusy)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = schedule.WithDriverStatus(40, 48, SlotBusy)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = schedule.WithDriverStatus(10, 12, DriverSlotStatus("vacation"))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestWithDriverStatus_KindMismatch(t *testing.T) {
	schedule := EmptySchedule("veh-1", testDate, KindVehicle, NewDefaultPolicy())

	_, err := schedule.WithDriverStatus(10, 12, SlotBusy)
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestWithAvailability_AppliesInclusiveRange(t *testing.T) {
	schedule := EmptySchedule("veh-1", testDate, KindVehicle, NewDefaultPolicy())

	updated, err := schedule.WithAvailability(30, 33, false)
	require.NoError(t, err)

	assert.True(t, updated.Slots[29].IsAvailable)
	for i := 30; i <= 33; i++ {
		assert.False(t, updated.Slots[i].IsAvailable, "slot %d", i)
	}
	assert.True(t, updated.Slots[34].IsAvailable)
}

func TestWithAvailability_KindMismatch(t *testing.T) {
	schedule := EmptySchedule("drv-1", testDate, KindDriver, NewDefaultPolicy())

	_, err := schedule.WithAvailability(10, 12, false)
	assert.ErrorIs(t, err, ErrKindMismatch)
}
