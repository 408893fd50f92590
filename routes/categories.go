package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SHAIK-RUMEENA/PostBloging/handlers/categories"
)

func CategoriesRoutes(r *gin.Engine) {
	r.GET("/categories", categories.GetAllCategories)
}
