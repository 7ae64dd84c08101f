package model

import "time"

// ProductionRun is one sample emitted by a monitoring session. A session writes a
// new row on every tick rather than updating a single row, so one session appears
// as many rows sharing the same StartTime with increasing RunTime and Quantity.
// Rows are never updated or deleted.
type ProductionRun struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	MachineID uint       `gorm:"index;not null" json:"machineId"`
	StartTime time.Time  `gorm:"not null" json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	// RunTime is the accumulated session run time in hours.
	RunTime  float64 `gorm:"not null" json:"runTimeHours"`
	Quantity int     `gorm:"column:production_quantity;not null" json:"productionQuantity"`
}
