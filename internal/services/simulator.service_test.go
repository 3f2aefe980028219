package services_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"hotelops/internal/models"
	"hotelops/internal/services"
	"hotelops/internal/store"
)

var _ = Describe("Simulator", func() {
	var st *store.Store

	BeforeEach(func() {
		st = store.New()
		Expect(store.Seed(st)).To(Succeed())
	})

	It("appends one network sample per tick", func() {
		sim := services.NewSimulator(st, discardLogger(), time.Minute, 0)
		before := len(st.NetworkHistory(48 * time.Hour))

		sim.Tick()
		sim.Tick()

		Expect(st.NetworkHistory(48 * time.Hour)).To(HaveLen(before + 2))
	})

	It("never raises alerts when the chance is zero", func() {
		sim := services.NewSimulator(st, discardLogger(), time.Minute, 0)
		before := len(st.RecentAlerts(100))

		for i := 0; i < 20; i++ {
			sim.Tick()
		}

		Expect(st.RecentAlerts(100)).To(HaveLen(before))
	})

	It("raises an open, suffixed catalog alert when the chance is certain", func() {
		sim := services.NewSimulator(st, discardLogger(), time.Minute, 1.1)
		before := len(st.RecentAlerts(100))

		sim.Tick()

		alerts := st.RecentAlerts(100)
		Expect(alerts).To(HaveLen(before + 1))

		raised := alerts[0]
		Expect(raised.SystemName).To(MatchRegexp(`#\d{3}$`))
		Expect(raised.Status).To(Equal(models.AlertOpen))
		Expect(raised.ResolvedAt).To(BeNil())
	})

	It("refreshes the dashboard-server row with host readings", func() {
		row := st.SystemMetricsBySystemType(models.SystemServer)
		Expect(row).NotTo(BeNil())

		sim := services.NewSimulator(st, discardLogger(), time.Minute, 0)
		sim.Tick()

		refreshed := st.SystemMetricsBySystemType(models.SystemServer)
		Expect(refreshed.Metadata).To(HaveKey("cpu_percent"))
		Expect(refreshed.Metadata).To(HaveKey("memory_percent"))
		Expect(refreshed.Metadata).To(HaveKey("host_uptime_sec"))
		Expect(refreshed.LastUpdated).To(BeTemporally(">=", row.LastUpdated))
	})

	It("is safe to stop twice", func() {
		sim := services.NewSimulator(st, discardLogger(), time.Minute, 0)
		sim.Start()
		sim.Stop()
		Expect(func() { sim.Stop() }).NotTo(Panic())
	})
})
