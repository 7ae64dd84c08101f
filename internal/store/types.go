package store

import "errors"

// Sentinel errors surfaced to the API layer.
var (
	ErrMachineNotFound = errors.New("machine not found")
)

// MachineSummary is one row of the daily report: lifetime totals for a machine,
// summed over every production-run sample it has ever recorded.
type MachineSummary struct {
	MachineID     uint    `json:"machineId"`
	MachineName   string  `json:"machine"`
	TotalRunTime  float64 `json:"totalRunTimeHours"`
	TotalQuantity int64   `json:"totalProductionQuantity"`
}
