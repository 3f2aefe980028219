package models

import "time"

// SystemType identifies a monitored hotel subsystem.
type SystemType string

const (
	SystemServer    SystemType = "server"
	SystemNetwork   SystemType = "network"
	SystemWiFi      SystemType = "wifi"
	SystemSecurity  SystemType = "security"
	SystemIPTV      SystemType = "iptv"
	SystemTelephony SystemType = "telephony"
	SystemSignage   SystemType = "signage"
)

// HealthStatus is the coarse state shown on the dashboard tiles.
type HealthStatus string

const (
	StatusHealthy  HealthStatus = "healthy"
	StatusWarning  HealthStatus = "warning"
	StatusCritical HealthStatus = "critical"
)

// SystemMetrics is one row per monitored subsystem. LastUpdated is
// refreshed on every mutation.
type SystemMetrics struct {
	ID          string         `json:"id"`
	SystemType  SystemType     `json:"systemType"`
	SystemName  string         `json:"systemName"`
	Uptime      float64        `json:"uptime"` // percent, 0-100
	Status      HealthStatus   `json:"status"`
	LastUpdated time.Time      `json:"lastUpdated"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// SystemMetricsUpdate carries the fields a caller may change. Nil
// fields are left untouched.
type SystemMetricsUpdate struct {
	SystemName *string        `json:"systemName,omitempty"`
	Uptime     *float64       `json:"uptime,omitempty"`
	Status     *HealthStatus  `json:"status,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}
