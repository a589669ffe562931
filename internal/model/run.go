package model

import "time"

// RunStatus indicates how an analysis run ended.
type RunStatus string

// Run status constants.
const (
	RunCompleted RunStatus = "COMPLETED"
	RunFailed    RunStatus = "FAILED"
)

// RunSummary captures the outcome of a single analysis run for the
// run-history store.
type RunSummary struct {
	StartedAt          time.Time
	FinishedAt         time.Time
	CategoryCounts     map[int]int
	ID                 string
	InputPath          string
	OutputPath         string
	EmailReportPath    string
	Error              string
	Status             RunStatus
	Orders             int
	ShippableLines     int
	BackorderLines     int
	NoAdjustmentOrders int
	Drafts             int
}
