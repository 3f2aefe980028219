package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotelops/internal/services"
	"hotelops/internal/store"
)

// DashboardController serves the composed overview and the time-series
// reads behind it.
type DashboardController struct {
	overview *services.OverviewService
	store    *store.Store
}

func NewDashboardController(overview *services.OverviewService, st *store.Store) *DashboardController {
	return &DashboardController{overview: overview, store: st}
}

// GetOverview handles GET /api/dashboard/overview.
func (dc *DashboardController) GetOverview(c *gin.Context) {
	overview, err := dc.overview.Overview(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compose overview"})
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetNetworkPerformance handles GET /api/network/performance?hours=N.
// A missing or malformed hours value falls back to 24.
func (dc *DashboardController) GetNetworkPerformance(c *gin.Context) {
	hours := queryInt(c, "hours", 24)
	c.JSON(http.StatusOK, dc.store.NetworkHistory(time.Duration(hours)*time.Hour))
}

// GetPowerConsumption handles GET /api/power/consumption?days=N.
// A missing or malformed days value falls back to 7.
func (dc *DashboardController) GetPowerConsumption(c *gin.Context) {
	days := queryInt(c, "days", 7)
	c.JSON(http.StatusOK, dc.store.PowerHistory(time.Duration(days)*24*time.Hour))
}
