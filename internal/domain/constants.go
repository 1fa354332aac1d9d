package domain

// Slot grid constants. The day is a fixed partition of 48 half-hour slots;
// index 0 covers 00:00-00:30 and index 47 covers 23:30-00:00.
const (
	SlotMinutes = 30
	SlotsPerDay = 48

	MinSlotIndex = 0
	MaxSlotIndex = SlotsPerDay - 1
)

// Default business-hours policy for driver schedules.
// 06:00 is slot 12, 23:00 is slot 46 (exclusive end).
const (
	DefaultBusinessStartIndex = 12
	DefaultBusinessEndIndex   = 46
)

// Business validation constants
const (
	MaxLocationLength           = 255
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveTaskStatuses список статусов задач, которые занимают слоты расписания
var ActiveTaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
}
