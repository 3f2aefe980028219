package models

import "time"

// PowerConsumption is one snapshot of property power draw, broken down
// by subsystem. Append-only time series.
type PowerConsumption struct {
	ID               string             `json:"id"`
	Timestamp        time.Time          `json:"timestamp"`
	TotalUsage       float64            `json:"totalUsage"` // kW
	SystemBreakdown  map[string]float64 `json:"systemBreakdown"`
	Recommendations  []string           `json:"recommendations,omitempty"`
	PotentialSavings float64            `json:"potentialSavings,omitempty"` // percent
}
