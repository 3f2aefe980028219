package models

import "time"

// Snapshot is the composed read pushed to realtime subscribers: every
// metrics row, the latest network sample, all open alerts, the latest
// power snapshot, stamped at composition time.
type Snapshot struct {
	SystemMetrics      []SystemMetrics     `json:"systemMetrics"`
	NetworkPerformance *NetworkPerformance `json:"networkPerformance"`
	Alerts             []Alert             `json:"alerts"`
	PowerConsumption   *PowerConsumption   `json:"powerConsumption"`
	Timestamp          time.Time           `json:"timestamp"`
}

// Overview is the REST dashboard read. Same sources as Snapshot but
// alerts are collapsed to a count.
type Overview struct {
	SystemMetrics      []SystemMetrics     `json:"systemMetrics"`
	NetworkPerformance *NetworkPerformance `json:"networkPerformance"`
	AlertsCount        int                 `json:"alertsCount"`
	PowerConsumption   *PowerConsumption   `json:"powerConsumption"`
	LastUpdated        time.Time           `json:"lastUpdated"`
}
