package routes

import (
	"github.com/gin-gonic/gin"

	"hotelops/internal/controllers"
)

func RegisterDashboardRoutes(r *gin.Engine, dc *controllers.DashboardController, alc *controllers.AlertsController) {
	api := r.Group("/api")
	{
		api.GET("/dashboard/overview", dc.GetOverview)
		api.GET("/network/performance", dc.GetNetworkPerformance)
		api.GET("/power/consumption", dc.GetPowerConsumption)
		api.GET("/alerts", alc.List)
		api.PATCH("/alerts/:id", alc.Patch)
	}
}
