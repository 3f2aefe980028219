package routes

import (
	"github.com/gin-gonic/gin"

	"hotelops/internal/controllers"
)

func RegisterAssistantRoutes(r *gin.Engine, cc *controllers.ChatController) {
	api := r.Group("/api")
	{
		api.POST("/chat", cc.PostChat)
		api.GET("/chat/:userId", cc.GetHistory)
		api.POST("/voice/process", cc.ProcessVoice)
	}
}
