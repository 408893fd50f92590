package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SHAIK-RUMEENA/PostBloging/handlers/auth"
)

func AuthRoutes(r *gin.Engine) {
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", auth.Register)
		authRoutes.POST("/login", auth.Login)
	}
}
