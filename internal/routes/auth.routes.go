package routes

import (
	"github.com/gin-gonic/gin"

	"hotelops/internal/controllers"
)

func RegisterAuthRoutes(r *gin.Engine, ac *controllers.AuthController) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", ac.Login)
		auth.POST("/verify", ac.Verify)
	}
}
