package models

import "time"

// NetworkPerformance is one sample of the property-wide network.
// Samples are append-only and never mutated after creation.
type NetworkPerformance struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	CurrentLoad  float64   `json:"currentLoad"`  // percent
	Throughput   float64   `json:"throughput"`   // GB/s
	Latency      float64   `json:"latency"`      // ms
	ActiveGuests int       `json:"activeGuests"`
}
