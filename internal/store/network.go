package store

import (
	"sort"
	"time"

	"hotelops/internal/models"
)

// AppendNetworkSample stores one sample and returns it with a generated
// id. A zero Timestamp is stamped with the current time; a caller
// supplied timestamp (backfilled seed data) is kept as-is. Samples are
// never mutated afterwards.
func (s *Store) AppendNetworkSample(sample models.NetworkPerformance) models.NetworkPerformance {
	s.mu.Lock()
	defer s.mu.Unlock()

	sample.ID = newID()
	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now()
	}
	s.networkSamples = append(s.networkSamples, sample)
	return sample
}

// NetworkSampleByID returns a copy of the sample, or nil when absent.
func (s *Store) NetworkSampleByID(id string) *models.NetworkPerformance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.networkSamples {
		if s.networkSamples[i].ID == id {
			out := s.networkSamples[i]
			return &out
		}
	}
	return nil
}

// LatestNetworkSample returns the sample with the greatest timestamp,
// or nil when the collection is empty. The scan uses a strictly-after
// comparison, so on equal timestamps the earlier-inserted sample wins.
func (s *Store) LatestNetworkSample() *models.NetworkPerformance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var latest *models.NetworkPerformance
	for i := range s.networkSamples {
		if latest == nil || s.networkSamples[i].Timestamp.After(latest.Timestamp) {
			latest = &s.networkSamples[i]
		}
	}
	if latest == nil {
		return nil
	}
	out := *latest
	return &out
}

// NetworkHistory returns every sample with timestamp >= now-window,
// sorted ascending by timestamp.
func (s *Store) NetworkHistory(window time.Duration) []models.NetworkPerformance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := time.Now().Add(-window)
	out := []models.NetworkPerformance{}
	for _, sample := range s.networkSamples {
		if !sample.Timestamp.Before(cutoff) {
			out = append(out, sample)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
