package domain

import (
	"fmt"
	"time"
)

// Window is a contiguous half-open range of slot indices requested for a
// task: [StartIndex, StartIndex+DurationSlots).
type Window struct {
	StartIndex    int
	DurationSlots int
}

// NewWindow validates and builds a window. A window must cover at least one
// slot and must not run past slot 47: a task cannot span midnight in one
// lookup. Out-of-range windows are rejected, never clamped.
func NewWindow(startIndex, durationSlots int) (Window, error) {
	if startIndex < MinSlotIndex || startIndex > MaxSlotIndex {
		return Window{}, fmt.Errorf("%w: start index %d", ErrInvalidWindow, startIndex)
	}
	if durationSlots < 1 {
		return Window{}, fmt.Errorf("%w: duration %d slots", ErrInvalidWindow, durationSlots)
	}
	if startIndex+durationSlots > SlotsPerDay {
		return Window{}, fmt.Errorf("%w: window [%d,%d) runs past the end of the day",
			ErrInvalidWindow, startIndex, startIndex+durationSlots)
	}
	return Window{StartIndex: startIndex, DurationSlots: durationSlots}, nil
}

// EndIndex returns the exclusive end index of the window
func (w Window) EndIndex() int {
	return w.StartIndex + w.DurationSlots
}

// LastIndex returns the inclusive last index of the window, the form the
// batch mutator consumes.
func (w Window) LastIndex() int {
	return w.EndIndex() - 1
}

// DriverFreeFor reports whether every slot of the window is FREE in the
// driver's schedule.
func DriverFreeFor(schedule DaySchedule, w Window) bool {
	if len(schedule.Slots) != SlotsPerDay {
		return false
	}
	for i := w.StartIndex; i < w.EndIndex(); i++ {
		if schedule.Slots[i].Status != SlotFree {
			return false
		}
	}
	return true
}

// VehicleUsableFor reports whether the vehicle can take the window: the
// lifecycle must be active and every slot of the window marked available.
func VehicleUsableFor(vehicle *Vehicle, schedule DaySchedule, w Window) bool {
	if !vehicle.InService() {
		return false
	}
	if len(schedule.Slots) != SlotsPerDay {
		return false
	}
	for i := w.StartIndex; i < w.EndIndex(); i++ {
		if !schedule.Slots[i].IsAvailable {
			return false
		}
	}
	return true
}

// ScheduleLookup resolves the stored DaySchedule for a resource on the
// target date; the second return reports absence.
type ScheduleLookup func(resourceID string) (DaySchedule, bool)

// FilterAvailableDrivers returns the drivers fully free across the window,
// preserving the input order. Inactive drivers are excluded before any slot
// check; a driver with no stored schedule is judged against the policy
// default.
func FilterAvailableDrivers(drivers []*Driver, date time.Time, lookup ScheduleLookup, w Window, policy DefaultPolicy) []*Driver {
	out := make([]*Driver, 0, len(drivers))
	for _, d := range drivers {
		if !d.Schedulable() {
			continue
		}
		schedule, ok := lookup(d.ID)
		if !ok {
			schedule = EmptySchedule(d.ID, date, KindDriver, policy)
		}
		if DriverFreeFor(schedule, w) {
			out = append(out, d)
		}
	}
	return out
}

// FilterAvailableVehicles returns the vehicles fully available across the
// window, preserving the input order.
func FilterAvailableVehicles(vehicles []*Vehicle, date time.Time, lookup ScheduleLookup, w Window, policy DefaultPolicy) []*Vehicle {
	out := make([]*Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if !v.Schedulable() {
			continue
		}
		schedule, ok := lookup(v.ID)
		if !ok {
			schedule = EmptySchedule(v.ID, date, KindVehicle, policy)
		}
		if VehicleUsableFor(v, schedule, w) {
			out = append(out, v)
		}
	}
	return out
}
