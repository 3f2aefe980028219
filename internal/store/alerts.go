package store

import (
	"sort"
	"time"

	"hotelops/internal/models"
)

// CreateAlert stores a new alert and returns it with a generated id.
// Status defaults to open and CreatedAt to the current time when unset.
func (s *Store) CreateAlert(a models.Alert) models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = newID()
	if a.Status == "" {
		a.Status = models.AlertOpen
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	a.ResolvedAt = nil
	s.alerts = append(s.alerts, a)
	return a
}

// AlertByID returns a copy of the alert, or nil when absent.
func (s *Store) AlertByID(id string) *models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.alerts {
		if s.alerts[i].ID == id {
			out := s.alerts[i]
			return &out
		}
	}
	return nil
}

// UpdateAlert merges the non-nil fields into the alert. ResolvedAt is
// stamped only on the transition into resolved; re-resolving an already
// resolved alert leaves the original stamp untouched. Returns nil when
// the id is absent.
func (s *Store) UpdateAlert(id string, upd models.AlertUpdate) *models.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].ID != id {
			continue
		}
		a := &s.alerts[i]
		if upd.Status != nil {
			if *upd.Status == models.AlertResolved && a.ResolvedAt == nil {
				now := time.Now()
				a.ResolvedAt = &now
			}
			a.Status = *upd.Status
		}
		if upd.Severity != nil {
			a.Severity = *upd.Severity
		}
		if upd.Message != nil {
			a.Message = *upd.Message
		}
		out := *a
		return &out
	}
	return nil
}

// OpenAlerts returns every alert whose status is not resolved, sorted
// descending by creation time.
func (s *Store) OpenAlerts() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Alert{}
	for _, a := range s.alerts {
		if a.Status != models.AlertResolved {
			out = append(out, a)
		}
	}
	sortAlertsNewestFirst(out)
	return out
}

// RecentAlerts returns up to limit alerts of any status, newest first.
func (s *Store) RecentAlerts(limit int) []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Alert, len(s.alerts))
	copy(out, s.alerts)
	sortAlertsNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortAlertsNewestFirst(alerts []models.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].CreatedAt.After(alerts[j].CreatedAt)
	})
}
