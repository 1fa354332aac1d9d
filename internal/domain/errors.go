package domain

import "errors"

var (
	// ErrIndexOutOfRange is returned when a slot index falls outside [0,47]
	// or a wall-clock value does not sit on a slot boundary.
	ErrIndexOutOfRange = errors.New("domain: slot index out of range")

	// ErrInvalidWindow is returned for a zero or negative duration, or for a
	// window that would run past the last slot of the day.
	ErrInvalidWindow = errors.New("domain: invalid slot window")

	// ErrInvalidRange is returned when an inclusive slot range is malformed.
	ErrInvalidRange = errors.New("domain: invalid slot range")

	// ErrNoScheduleFound is returned when a mutation targets a resource/date
	// pair with no materialized schedule.
	ErrNoScheduleFound = errors.New("domain: no schedule found")

	// ErrScheduleCorrupted is returned when a stored schedule does not hold
	// exactly 48 slots.
	ErrScheduleCorrupted = errors.New("domain: schedule must contain exactly 48 slots")

	// ErrMissingResource is returned when a task commit lacks a driver or
	// vehicle id.
	ErrMissingResource = errors.New("domain: driver and vehicle are required")

	// ErrMissingEndpoint is returned when a task commit lacks a start or end
	// location.
	ErrMissingEndpoint = errors.New("domain: start and end locations are required")

	// ErrResourceUnavailable is returned when the commit-time availability
	// re-check fails for the requested driver or vehicle.
	ErrResourceUnavailable = errors.New("domain: resource is not available for the requested window")

	// ErrKindMismatch is returned when an operation for one resource kind is
	// applied to a schedule of the other kind.
	ErrKindMismatch = errors.New("domain: schedule kind mismatch")
)
