package store

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/crypto/bcrypt"

	"hotelops/internal/models"
)

// Credentials of the account created at seed time. The password is
// stored as a bcrypt hash; only the seed knows the cleartext.
const (
	SeedAdminUsername = "admin"
	SeedAdminPassword = "admin123"
)

// Seed populates a fresh store with the fixed starting dataset: one
// admin account, five subsystem metric rows, 24 hourly network samples,
// three alerts and one power snapshot.
func Seed(s *Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}

	s.CreateUser(models.User{
		Username:     SeedAdminUsername,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Name:         "Hotel Administrator",
		HotelID:      "grand-plaza-01",
	})

	seedSystemMetrics(s)
	seedNetworkSamples(s)
	seedAlerts(s)
	seedPowerSnapshot(s)
	return nil
}

func seedSystemMetrics(s *Store) {
	rows := []models.SystemMetrics{
		{
			SystemType: models.SystemServer,
			SystemName: "Dashboard Server",
			Uptime:     gofakeit.Float64Range(99.0, 99.99),
			Status:     models.StatusHealthy,
		},
		{
			SystemType: models.SystemWiFi,
			SystemName: "Guest WiFi",
			Uptime:     gofakeit.Float64Range(97.0, 99.9),
			Status:     models.StatusWarning,
		},
		{
			SystemType: models.SystemIPTV,
			SystemName: "IPTV Headend",
			Uptime:     gofakeit.Float64Range(98.0, 99.9),
			Status:     models.StatusHealthy,
		},
		{
			SystemType: models.SystemSecurity,
			SystemName: "CCTV Network",
			Uptime:     gofakeit.Float64Range(98.0, 99.9),
			Status:     models.StatusHealthy,
		},
		{
			SystemType: models.SystemTelephony,
			SystemName: "PBX Cluster",
			Uptime:     gofakeit.Float64Range(98.0, 99.9),
			Status:     models.StatusHealthy,
		},
	}
	for _, row := range rows {
		s.CreateSystemMetrics(row)
	}
}

// seedNetworkSamples backfills one sample per hour for the last 24
// hours so the history endpoints have data immediately after start.
func seedNetworkSamples(s *Store) {
	now := time.Now()
	for i := 23; i >= 0; i-- {
		s.AppendNetworkSample(models.NetworkPerformance{
			Timestamp:    now.Add(-time.Duration(i) * time.Hour),
			CurrentLoad:  gofakeit.Float64Range(25, 85),
			Throughput:   gofakeit.Float64Range(0.6, 2.2),
			Latency:      gofakeit.Float64Range(8, 45),
			ActiveGuests: gofakeit.Number(60, 350),
		})
	}
}

func seedAlerts(s *Store) {
	now := time.Now()
	alerts := []models.Alert{
		{
			SystemType: models.SystemWiFi,
			SystemName: "Guest WiFi - Floor 4",
			AlertType:  "connectivity",
			Severity:   models.SeverityWarning,
			Message:    "Access point reporting intermittent packet loss",
			Status:     models.AlertOpen,
			CreatedAt:  now.Add(-2 * time.Hour),
		},
		{
			SystemType: models.SystemIPTV,
			SystemName: "IPTV Headend",
			AlertType:  "quality",
			Severity:   models.SeverityInfo,
			Message:    "Transcoder load above normal for channel group B",
			Status:     models.AlertInvestigating,
			CreatedAt:  now.Add(-1 * time.Hour),
		},
		{
			SystemType: models.SystemSecurity,
			SystemName: "CCTV Camera 12",
			AlertType:  "availability",
			Severity:   models.SeverityCritical,
			Message:    "Camera unreachable from NVR for more than 5 minutes",
			Status:     models.AlertOpen,
			CreatedAt:  now.Add(-30 * time.Minute),
		},
	}
	for _, a := range alerts {
		s.CreateAlert(a)
	}
}

func seedPowerSnapshot(s *Store) {
	breakdown := map[string]float64{
		"wifi":      gofakeit.Float64Range(8, 14),
		"iptv":      gofakeit.Float64Range(10, 18),
		"cctv":      gofakeit.Float64Range(6, 10),
		"telephony": gofakeit.Float64Range(3, 6),
		"signage":   gofakeit.Float64Range(4, 8),
		"server":    gofakeit.Float64Range(12, 20),
	}
	total := 0.0
	for _, kw := range breakdown {
		total += kw
	}
	s.AppendPowerSample(models.PowerConsumption{
		TotalUsage:      total,
		SystemBreakdown: breakdown,
		Recommendations: []string{
			"Schedule signage displays to power down between 01:00 and 06:00",
			"Consolidate IPTV transcoders outside peak viewing hours",
		},
		PotentialSavings: 12.5,
	})
}
