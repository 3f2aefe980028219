package store

import (
	"time"

	"hotelops/internal/models"
)

// CreateSystemMetrics stores one subsystem row and returns it with a
// generated id and a fresh LastUpdated stamp.
func (s *Store) CreateSystemMetrics(m models.SystemMetrics) models.SystemMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = newID()
	m.LastUpdated = time.Now()
	s.systemMetrics = append(s.systemMetrics, m)
	return m
}

// SystemMetricsAll returns a copy of every subsystem row in insertion
// order.
func (s *Store) SystemMetricsAll() []models.SystemMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.SystemMetrics, len(s.systemMetrics))
	copy(out, s.systemMetrics)
	return out
}

// SystemMetricsByID returns a copy of the row, or nil when absent.
func (s *Store) SystemMetricsByID(id string) *models.SystemMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.systemMetrics {
		if s.systemMetrics[i].ID == id {
			m := s.systemMetrics[i]
			return &m
		}
	}
	return nil
}

// SystemMetricsBySystemType returns a copy of the first row of the
// given type, or nil when none exists.
func (s *Store) SystemMetricsBySystemType(t models.SystemType) *models.SystemMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.systemMetrics {
		if s.systemMetrics[i].SystemType == t {
			m := s.systemMetrics[i]
			return &m
		}
	}
	return nil
}

// UpdateSystemMetrics merges the non-nil fields into the row and
// refreshes LastUpdated. Returns nil when the id is absent.
func (s *Store) UpdateSystemMetrics(id string, upd models.SystemMetricsUpdate) *models.SystemMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.systemMetrics {
		if s.systemMetrics[i].ID != id {
			continue
		}
		m := &s.systemMetrics[i]
		if upd.SystemName != nil {
			m.SystemName = *upd.SystemName
		}
		if upd.Uptime != nil {
			m.Uptime = *upd.Uptime
		}
		if upd.Status != nil {
			m.Status = *upd.Status
		}
		if upd.Metadata != nil {
			m.Metadata = upd.Metadata
		}
		m.LastUpdated = time.Now()
		out := *m
		return &out
	}
	return nil
}
