package domain

import (
	"fmt"
	"time"
)

// DaySchedule is the ordered 48-slot state of one resource for one calendar
// date. Exactly one DaySchedule may exist per (resource, date) pair.
type DaySchedule struct {
	ResourceID string
	Kind       ResourceKind
	Date       time.Time
	Slots      []Slot
}

// DefaultPolicy describes how a schedule looks before anyone touched it.
// Drivers are FREE inside the business-hours window [BusinessStartIndex,
// BusinessEndIndex) and OFF_DUTY outside it; vehicles are fully available.
// The policy is owned by configuration, not hardcoded in the engine.
type DefaultPolicy struct {
	BusinessStartIndex int
	BusinessEndIndex   int
}

// NewDefaultPolicy returns the standard 06:00-23:00 business-hours policy
func NewDefaultPolicy() DefaultPolicy {
	return DefaultPolicy{
		BusinessStartIndex: DefaultBusinessStartIndex,
		BusinessEndIndex:   DefaultBusinessEndIndex,
	}
}

// EmptySchedule produces the default 48-slot schedule for a resource that has
// no stored schedule on the date. A resource with no DaySchedule is treated
// exactly as this value everywhere in the engine.
func EmptySchedule(resourceID string, date time.Time, kind ResourceKind, policy DefaultPolicy) DaySchedule {
	slots := make([]Slot, SlotsPerDay)
	for i := range slots {
		switch kind {
		case KindDriver:
			status := SlotOffDuty
			if i >= policy.BusinessStartIndex && i < policy.BusinessEndIndex {
				status = SlotFree
			}
			slots[i] = Slot{Index: i, Status: status}
		default:
			slots[i] = Slot{Index: i, IsAvailable: true}
		}
	}
	return DaySchedule{
		ResourceID: resourceID,
		Kind:       kind,
		Date:       date,
		Slots:      slots,
	}
}

// Validate checks the 48-slot invariant: exactly 48 contiguous slots ordered
// by index with no gaps.
func (s *DaySchedule) Validate() error {
	if len(s.Slots) != SlotsPerDay {
		return fmt.Errorf("%w: got %d slots", ErrScheduleCorrupted, len(s.Slots))
	}
	for i, slot := range s.Slots {
		if slot.Index != i {
			return fmt.Errorf("%w: slot at position %d has index %d", ErrScheduleCorrupted, i, slot.Index)
		}
	}
	return nil
}

// WithDriverStatus returns a copy of the schedule with slots [start,end]
// (inclusive) set to status. Slots outside the range are untouched. The range
// is applied fully or not at all.
func (s DaySchedule) WithDriverStatus(start, end int, status DriverSlotStatus) (DaySchedule, error) {
	if s.Kind != KindDriver {
		return DaySchedule{}, ErrKindMismatch
	}
	if !status.IsValid() {
		return DaySchedule{}, fmt.Errorf("%w: unknown driver slot status %q", ErrInvalidRange, status)
	}
	if err := validateInclusiveRange(start, end); err != nil {
		return DaySchedule{}, err
	}
	if err := s.Validate(); err != nil {
		return DaySchedule{}, err
	}

	out := s.clone()
	for i := start; i <= end; i++ {
		out.Slots[i].Status = status
	}
	return out, nil
}

// WithAvailability returns a copy of the schedule with slots [start,end]
// (inclusive) set to the given availability. Vehicle schedules only.
func (s DaySchedule) WithAvailability(start, end int, available bool) (DaySchedule, error) {
	if s.Kind != KindVehicle {
		return DaySchedule{}, ErrKindMismatch
	}
	if err := validateInclusiveRange(start, end); err != nil {
		return DaySchedule{}, err
	}
	if err := s.Validate(); err != nil {
		return DaySchedule{}, err
	}

	out := s.clone()
	for i := start; i <= end; i++ {
		out.Slots[i].IsAvailable = available
	}
	return out, nil
}

func (s DaySchedule) clone() DaySchedule {
	slots := make([]Slot, len(s.Slots))
	copy(slots, s.Slots)
	s.Slots = slots
	return s
}

func validateInclusiveRange(start, end int) error {
	if start < MinSlotIndex || start > MaxSlotIndex || end < MinSlotIndex || end > MaxSlotIndex {
		return fmt.Errorf("%w: [%d,%d]", ErrIndexOutOfRange, start, end)
	}
	if start > end {
		return fmt.Errorf("%w: start %d after end %d", ErrInvalidRange, start, end)
	}
	return nil
}
