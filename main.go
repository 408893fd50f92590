package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/SHAIK-RUMEENA/PostBloging/db"
	_ "github.com/SHAIK-RUMEENA/PostBloging/docs"
	"github.com/SHAIK-RUMEENA/PostBloging/routes"
	"github.com/SHAIK-RUMEENA/PostBloging/utils"
)

// @title PostBloging API
// @version 1.0
// @description REST API for the PostBloging application
// @host localhost:3001
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Images will be stored on local disk and served from /uploads.")
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
