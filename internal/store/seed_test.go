package store_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"hotelops/internal/models"
	"hotelops/internal/store"
)

var _ = Describe("Seed", func() {
	var st *store.Store

	BeforeEach(func() {
		st = store.New()
		Expect(store.Seed(st)).To(Succeed())
	})

	It("creates the admin account with a verifiable bcrypt hash", func() {
		admin := st.UserByUsername(store.SeedAdminUsername)
		Expect(admin).NotTo(BeNil())
		Expect(admin.Role).To(Equal(models.RoleAdmin))
		Expect(bcrypt.CompareHashAndPassword(
			[]byte(admin.PasswordHash),
			[]byte(store.SeedAdminPassword),
		)).To(Succeed())
	})

	It("creates one metrics row per subsystem", func() {
		rows := st.SystemMetricsAll()
		Expect(rows).To(HaveLen(5))

		types := make([]models.SystemType, 0, len(rows))
		for _, row := range rows {
			types = append(types, row.SystemType)
		}
		Expect(types).To(ConsistOf(
			models.SystemServer,
			models.SystemWiFi,
			models.SystemIPTV,
			models.SystemSecurity,
			models.SystemTelephony,
		))
	})

	It("backfills 24 hourly network samples", func() {
		history := st.NetworkHistory(25 * time.Hour)
		Expect(history).To(HaveLen(24))
		for i := 1; i < len(history); i++ {
			Expect(history[i].Timestamp).To(BeTemporally(">", history[i-1].Timestamp))
		}
		Expect(st.LatestNetworkSample()).NotTo(BeNil())
	})

	It("creates three alerts, none resolved", func() {
		alerts := st.RecentAlerts(10)
		Expect(alerts).To(HaveLen(3))
		for _, a := range alerts {
			Expect(a.Status).NotTo(Equal(models.AlertResolved))
			Expect(a.ResolvedAt).To(BeNil())
		}
		Expect(st.OpenAlerts()).To(HaveLen(3))
	})

	It("creates one power snapshot whose total matches the breakdown", func() {
		power := st.LatestPowerSample()
		Expect(power).NotTo(BeNil())
		Expect(power.SystemBreakdown).To(HaveLen(6))

		sum := 0.0
		for _, kw := range power.SystemBreakdown {
			sum += kw
		}
		Expect(power.TotalUsage).To(BeNumerically("~", sum, 0.001))
		Expect(power.Recommendations).NotTo(BeEmpty())
	})
})
