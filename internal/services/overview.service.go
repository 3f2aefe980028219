package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"hotelops/internal/models"
	"hotelops/internal/store"
)

// OverviewService composes the dashboard reads. The four sub-reads run
// concurrently with a fail-fast join: if any one of them errors the
// whole composition is abandoned rather than returning a partial
// result.
type OverviewService struct {
	store *store.Store
}

func NewOverviewService(st *store.Store) *OverviewService {
	return &OverviewService{store: st}
}

// Snapshot gathers the full realtime payload: every metrics row, the
// latest network sample, all open alerts and the latest power
// snapshot, stamped at composition time.
func (o *OverviewService) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	var (
		metrics []models.SystemMetrics
		network *models.NetworkPerformance
		alerts  []models.Alert
		power   *models.PowerConsumption
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		metrics = o.store.SystemMetricsAll()
		return nil
	})
	g.Go(func() error {
		network = o.store.LatestNetworkSample()
		return nil
	})
	g.Go(func() error {
		alerts = o.store.OpenAlerts()
		return nil
	})
	g.Go(func() error {
		power = o.store.LatestPowerSample()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.Snapshot{
		SystemMetrics:      metrics,
		NetworkPerformance: network,
		Alerts:             alerts,
		PowerConsumption:   power,
		Timestamp:          time.Now(),
	}, nil
}

// Overview is the REST shape of the same composition, with open alerts
// collapsed to a count.
func (o *OverviewService) Overview(ctx context.Context) (*models.Overview, error) {
	snap, err := o.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &models.Overview{
		SystemMetrics:      snap.SystemMetrics,
		NetworkPerformance: snap.NetworkPerformance,
		AlertsCount:        len(snap.Alerts),
		PowerConsumption:   snap.PowerConsumption,
		LastUpdated:        snap.Timestamp,
	}, nil
}
