package model

import "time"

// MachineStatus is the operational state of a machine.
type MachineStatus string

const (
	StatusRunning     MachineStatus = "Running"
	StatusIdle        MachineStatus = "Idle"
	StatusMaintenance MachineStatus = "Maintenance"
)

// ValidStatus reports whether s is one of the recognized machine statuses.
func ValidStatus(s MachineStatus) bool {
	switch s {
	case StatusRunning, StatusIdle, StatusMaintenance:
		return true
	}
	return false
}

// Machine represents a registered production machine.
type Machine struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	Name            string        `gorm:"size:256;not null" json:"name"`
	Status          MachineStatus `gorm:"size:32;not null" json:"status"`
	LastMaintenance time.Time     `gorm:"not null" json:"lastMaintenance"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
