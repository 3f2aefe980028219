package routes

import (
	"github.com/gin-gonic/gin"

	"hotelops/internal/controllers"
	"hotelops/internal/metrics"
)

func RegisterRealtimeRoutes(r *gin.Engine, wc *controllers.WebSocketController) {
	r.GET("/ws", wc.Handle)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
