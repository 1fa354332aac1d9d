package domain

import (
	"fmt"
	"time"
)

// ResourceKind distinguishes the two schedulable entity kinds
type ResourceKind string

const (
	KindDriver  ResourceKind = "driver"
	KindVehicle ResourceKind = "vehicle"
)

// DriverSlotStatus represents the state of one driver slot
type DriverSlotStatus string

const (
	SlotFree    DriverSlotStatus = "free"
	SlotBusy    DriverSlotStatus = "busy"
	SlotBreak   DriverSlotStatus = "break"
	SlotOffDuty DriverSlotStatus = "off_duty"
)

// IsValid returns true if the status is one of the known driver slot states
func (s DriverSlotStatus) IsValid() bool {
	switch s {
	case SlotFree, SlotBusy, SlotBreak, SlotOffDuty:
		return true
	}
	return false
}

// Slot is the atomic scheduling unit: one half-hour interval of a resource's
// day. Status is meaningful for driver schedules, IsAvailable for vehicle
// schedules; the owning DaySchedule's Kind decides which one applies.
type Slot struct {
	Index       int
	Status      DriverSlotStatus
	IsAvailable bool
}

// IndexToTime converts a slot index to its wall-clock start.
// Fails with ErrIndexOutOfRange outside [0,47].
func IndexToTime(index int) (hour, minute int, err error) {
	if index < MinSlotIndex || index > MaxSlotIndex {
		return 0, 0, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, index)
	}
	return index / 2, (index % 2) * SlotMinutes, nil
}

// TimeToIndex converts a wall-clock slot boundary to its index.
// The minute must be exactly 0 or 30; finer granularity is not representable
// on the grid and is rejected, never rounded.
func TimeToIndex(hour, minute int) (int, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: hour %d", ErrIndexOutOfRange, hour)
	}
	if minute != 0 && minute != SlotMinutes {
		return 0, fmt.Errorf("%w: minute %d is not a slot boundary", ErrIndexOutOfRange, minute)
	}
	return hour*2 + minute/SlotMinutes, nil
}

// SlotStart returns the timestamp at which slot index begins on the given date
func SlotStart(date time.Time, index int) (time.Time, error) {
	hour, minute, err := IndexToTime(index)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

// SlotEnd returns the timestamp at which slot index ends on the given date.
// The end of slot 47 is midnight of the following day.
func SlotEnd(date time.Time, index int) (time.Time, error) {
	start, err := SlotStart(date, index)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(SlotMinutes * time.Minute), nil
}
