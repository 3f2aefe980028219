// Package store holds every entity collection in memory. State is
// rebuilt from the seed on each process start; nothing is persisted.
// All access goes through the exported operations, which take the
// store lock; callers never reach the underlying slices.
package store

import (
	"sync"

	"github.com/google/uuid"

	"hotelops/internal/models"
)

// Store owns all entity collections. Construct with New and pass by
// reference to every component that needs it; there is no package
// singleton.
type Store struct {
	mu             sync.RWMutex
	users          []models.User
	systemMetrics  []models.SystemMetrics
	networkSamples []models.NetworkPerformance
	alerts         []models.Alert
	powerSamples   []models.PowerConsumption
	chatMessages   []models.ChatMessage
}

// New returns an empty store. Call Seed to load the starting dataset.
func New() *Store {
	return &Store{}
}

func newID() string {
	return uuid.NewString()
}
