package models

import "time"

// AlertSeverity ranks how urgent an alert is.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// AlertStatus tracks the alert lifecycle: open -> investigating -> resolved.
type AlertStatus string

const (
	AlertOpen          AlertStatus = "open"
	AlertInvestigating AlertStatus = "investigating"
	AlertResolved      AlertStatus = "resolved"
)

// Alert is a raised condition on one subsystem. ResolvedAt is stamped
// exactly once, on the first transition into resolved.
type Alert struct {
	ID         string        `json:"id"`
	SystemType SystemType    `json:"systemType"`
	SystemName string        `json:"systemName"`
	AlertType  string        `json:"alertType"`
	Severity   AlertSeverity `json:"severity"`
	Message    string        `json:"message"`
	Status     AlertStatus   `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	ResolvedAt *time.Time    `json:"resolvedAt"`
}

// AlertUpdate carries a partial edit. Nil fields are left untouched.
type AlertUpdate struct {
	Status   *AlertStatus   `json:"status,omitempty"`
	Severity *AlertSeverity `json:"severity,omitempty"`
	Message  *string        `json:"message,omitempty"`
}

// Valid reports whether the update only uses known enum values.
func (u AlertUpdate) Valid() bool {
	if u.Status != nil {
		switch *u.Status {
		case AlertOpen, AlertInvestigating, AlertResolved:
		default:
			return false
		}
	}
	if u.Severity != nil {
		switch *u.Severity {
		case SeverityInfo, SeverityWarning, SeverityCritical:
		default:
			return false
		}
	}
	return true
}
