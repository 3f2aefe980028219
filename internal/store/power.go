package store

import (
	"sort"
	"time"

	"hotelops/internal/models"
)

// AppendPowerSample stores one power snapshot and returns it with a
// generated id. A zero Timestamp is stamped with the current time.
func (s *Store) AppendPowerSample(sample models.PowerConsumption) models.PowerConsumption {
	s.mu.Lock()
	defer s.mu.Unlock()

	sample.ID = newID()
	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now()
	}
	s.powerSamples = append(s.powerSamples, sample)
	return sample
}

// LatestPowerSample returns the snapshot with the greatest timestamp,
// or nil when the collection is empty. Insertion order breaks ties,
// same as LatestNetworkSample.
func (s *Store) LatestPowerSample() *models.PowerConsumption {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *models.PowerConsumption
	for i := range s.powerSamples {
		if latest == nil || s.powerSamples[i].Timestamp.After(latest.Timestamp) {
			latest = &s.powerSamples[i]
		}
	}
	if latest == nil {
		return nil
	}
	out := *latest
	return &out
}

// PowerHistory returns every snapshot with timestamp >= now-window,
// sorted ascending by timestamp.
func (s *Store) PowerHistory(window time.Duration) []models.PowerConsumption {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := time.Now().Add(-window)
	out := []models.PowerConsumption{}
	for _, sample := range s.powerSamples {
		if !sample.Timestamp.Before(cutoff) {
			out = append(out, sample)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
