package domain

import "time"

// Driver represents a schedulable driver
type Driver struct {
	ID            string
	Name          string
	LicenseNumber string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Schedulable returns true if the driver participates in scheduling and
// matching at all. Inactive drivers are excluded regardless of slot state.
func (d *Driver) Schedulable() bool {
	return d.IsActive
}
