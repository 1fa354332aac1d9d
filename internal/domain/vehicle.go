package domain

import "time"

// VehicleLifecycleStatus represents the vehicle's own lifecycle, independent
// of any per-slot availability
type VehicleLifecycleStatus string

const (
	VehicleActive       VehicleLifecycleStatus = "active"
	VehicleMaintenance  VehicleLifecycleStatus = "maintenance"
	VehicleOutOfService VehicleLifecycleStatus = "out_of_service"
)

// IsValid returns true if the status is one of the known lifecycle states
func (s VehicleLifecycleStatus) IsValid() bool {
	switch s {
	case VehicleActive, VehicleMaintenance, VehicleOutOfService:
		return true
	}
	return false
}

// Vehicle represents a schedulable vehicle
type Vehicle struct {
	ID              string
	PlateNumber     string
	VehicleType     string
	Seats           int
	LifecycleStatus VehicleLifecycleStatus
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Schedulable returns true if the vehicle participates in scheduling and
// matching at all. Inactive vehicles are excluded regardless of slot state.
func (v *Vehicle) Schedulable() bool {
	return v.IsActive
}

// InService returns true if the vehicle's lifecycle allows assignments.
// A slot is usable only when the lifecycle is active AND the slot itself is
// marked available.
func (v *Vehicle) InService() bool {
	return v.LifecycleStatus == VehicleActive
}
