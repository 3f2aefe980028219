package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"hotelops/internal/metrics"
	"hotelops/internal/models"
	"hotelops/internal/store"
)

// alertCatalog is the fixed set of template alerts the simulator can
// raise. System names get a random suffix per occurrence.
var alertCatalog = []models.Alert{
	{
		SystemType: models.SystemWiFi,
		SystemName: "Guest WiFi AP",
		AlertType:  "connectivity",
		Severity:   models.SeverityWarning,
		Message:    "Access point stopped responding to controller heartbeats",
	},
	{
		SystemType: models.SystemIPTV,
		SystemName: "IPTV Stream",
		AlertType:  "quality",
		Severity:   models.SeverityWarning,
		Message:    "Stream bitrate dropped below configured minimum",
	},
	{
		SystemType: models.SystemSecurity,
		SystemName: "CCTV Camera",
		AlertType:  "availability",
		Severity:   models.SeverityCritical,
		Message:    "Camera feed lost",
	},
	{
		SystemType: models.SystemTelephony,
		SystemName: "SIP Trunk",
		AlertType:  "errors",
		Severity:   models.SeverityWarning,
		Message:    "Elevated call setup failures on trunk",
	},
	{
		SystemType: models.SystemNetwork,
		SystemName: "Core Switch",
		AlertType:  "performance",
		Severity:   models.SeverityInfo,
		Message:    "Uplink latency above baseline",
	},
}

// Simulator appends synthetic telemetry to the store on a fixed
// cadence. It never pushes to subscribers; they pick new data up on
// their own push cycle, so the mutation and broadcast cadences stay
// decoupled.
type Simulator struct {
	store       *store.Store
	log         *slog.Logger
	interval    time.Duration
	alertChance float64
	done        chan struct{}
}

// NewSimulator creates the background mutation loop. A zero interval
// defaults to 30 seconds, a negative alert chance to 0.1.
func NewSimulator(st *store.Store, log *slog.Logger, interval time.Duration, alertChance float64) *Simulator {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if alertChance < 0 {
		alertChance = 0.1
	}
	return &Simulator{
		store:       st,
		log:         log,
		interval:    interval,
		alertChance: alertChance,
		done:        make(chan struct{}),
	}
}

// Start launches the mutation loop in its own goroutine. Failures
// inside a tick are logged and swallowed; the ticker continues.
func (s *Simulator) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				s.Tick()
			}
		}
	}()
	s.log.Info("simulator started", "interval", s.interval, "alert_chance", s.alertChance)
}

// Stop ends the mutation loop. Safe to call once.
func (s *Simulator) Stop() {
	select {
	case <-s.done:
	default:
		close(s.done)
	}
}

// Tick performs one mutation pass: append a synthetic network sample,
// maybe raise one catalog alert, refresh the host row. Exported so
// tests can drive the simulator without waiting out the interval.
func (s *Simulator) Tick() {
	metrics.SimulatorTicks.Inc()

	s.store.AppendNetworkSample(models.NetworkPerformance{
		CurrentLoad:  gofakeit.Float64Range(20, 95),
		Throughput:   gofakeit.Float64Range(0.5, 2.5),
		Latency:      gofakeit.Float64Range(5, 80),
		ActiveGuests: gofakeit.Number(40, 400),
	})

	if gofakeit.Float64Range(0, 1) < s.alertChance {
		tmpl := alertCatalog[gofakeit.Number(0, len(alertCatalog)-1)]
		tmpl.SystemName = fmt.Sprintf("%s #%s", tmpl.SystemName, gofakeit.DigitN(3))
		alert := s.store.CreateAlert(tmpl)
		s.log.Info("synthetic alert raised",
			"system", alert.SystemName,
			"severity", alert.Severity,
		)
	}

	if err := s.refreshHostRow(); err != nil {
		s.log.Error("host metrics refresh failed", "error", err)
	}
}

// refreshHostRow updates the dashboard-server metrics row from real
// host readings, so at least one tile reflects the machine actually
// running the service.
func (s *Simulator) refreshHostRow() error {
	row := s.store.SystemMetricsBySystemType(models.SystemServer)
	if row == nil {
		return nil
	}

	percents, err := cpu.Percent(0, false)
	if err != nil {
		return fmt.Errorf("reading cpu: %w", err)
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("reading memory: %w", err)
	}
	uptimeSec, err := host.Uptime()
	if err != nil {
		return fmt.Errorf("reading uptime: %w", err)
	}

	cpuPct := 0.0
	if len(percents) > 0 {
		cpuPct = percents[0]
	}

	status := models.StatusHealthy
	switch {
	case cpuPct > 90 || vm.UsedPercent > 95:
		status = models.StatusCritical
	case cpuPct > 75 || vm.UsedPercent > 85:
		status = models.StatusWarning
	}

	s.store.UpdateSystemMetrics(row.ID, models.SystemMetricsUpdate{
		Status: &status,
		Metadata: map[string]any{
			"cpu_percent":     cpuPct,
			"memory_percent":  vm.UsedPercent,
			"host_uptime_sec": uptimeSec,
		},
	})
	return nil
}
