package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/internal/models"
	"hotelops/internal/store"
)

// AlertsController lists and edits alerts.
type AlertsController struct {
	store *store.Store
}

func NewAlertsController(st *store.Store) *AlertsController {
	return &AlertsController{store: st}
}

// List handles GET /api/alerts?limit=N. A missing or malformed limit
// falls back to 10.
func (ac *AlertsController) List(c *gin.Context) {
	limit := queryInt(c, "limit", 10)
	c.JSON(http.StatusOK, ac.store.RecentAlerts(limit))
}

// Patch handles PATCH /api/alerts/:id with a partial update body.
func (ac *AlertsController) Patch(c *gin.Context) {
	var upd models.AlertUpdate
	if err := c.ShouldBindJSON(&upd); err != nil || !upd.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert update"})
		return
	}

	alert := ac.store.UpdateAlert(c.Param("id"), upd)
	if alert == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.JSON(http.StatusOK, alert)
}
