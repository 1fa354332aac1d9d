package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexToTime_RoundTripAllIndices(t *testing.T) {
	for index := 0; index < SlotsPerDay; index++ {
		hour, minute, err := IndexToTime(index)
		require.NoError(t, err, "index %d", index)

		back, err := TimeToIndex(hour, minute)
		require.NoError(t, err, "index %d", index)
		assert.Equal(t, index, back, "round trip for index %d", index)
	}
}

func TestIndexToTime_KnownBoundaries(t *testing.T) {
	tests := []struct {
		index  int
		hour   int
		minute int
	}{
		{0, 0, 0},
		{1, 0, 30},
		{12, 6, 0},
		{27, 13, 30},
		{46, 23, 0},
		{47, 23, 30},
	}

	for _, tt := range tests {
		hour, minute, err := IndexToTime(tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.hour, hour, "hour for index %d", tt.index)
		assert.Equal(t, tt.minute, minute, "minute for index %d", tt.index)
	}
}

func TestIndexToTime_OutOfRange(t *testing.T) {
	for _, index := range []int{-1, 48, 100} {
		_, _, err := IndexToTime(index)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", index)
	}
}

func TestTimeToIndex_RejectsNonBoundaryMinutes(t *testing.T) {
	// Minutes off the half-hour grid are rejected, never rounded
	for _, minute := range []int{1, 15, 29, 31, 45, 59} {
		_, err := TimeToIndex(10, minute)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "minute %d", minute)
	}
}

func TestTimeToIndex_RejectsBadHours(t *testing.T) {
	_, err := TimeToIndex(-1, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = TimeToIndex(24, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSlotStartEnd(t *testing.T) {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	start, err := SlotStart(date, 27)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 13, 30, 0, 0, time.UTC), start)

	end, err := SlotEnd(date, 27)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 14, 14, 0, 0, 0, time.UTC), end)
}

func TestSlotEnd_LastSlotEndsAtMidnight(t *testing.T) {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	end, err := SlotEnd(date, MaxSlotIndex)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), end)
}

func TestDriverSlotStatus_IsValid(t *testing.T) {
	for _, status := range []DriverSlotStatus{SlotFree, SlotBusy, SlotBreak, SlotOffDuty} {
		assert.True(t, status.IsValid(), "status %s", status)
	}
	assert.False(t, DriverSlotStatus("vacation").IsValid())
	assert.False(t, DriverSlotStatus("").IsValid())
}
