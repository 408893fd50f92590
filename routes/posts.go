package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/SHAIK-RUMEENA/PostBloging/handlers/posts"
	"github.com/SHAIK-RUMEENA/PostBloging/handlers/posts/likes"
	"github.com/SHAIK-RUMEENA/PostBloging/middleware"
)

func PostsRoutes(r *gin.Engine) {
	// Public routes
	r.GET("/posts", posts.GetAllPosts)
	r.GET("/posts/:id", posts.GetPostByID)

	// Protected routes
	postsRoutes := r.Group("/posts")
	postsRoutes.Use(middleware.JWTAuth())
	{
		postsRoutes.POST("", posts.CreatePost)
		postsRoutes.PUT("/:id", posts.UpdatePost)
		postsRoutes.DELETE("/:id", posts.DeletePost)

		postsRoutes.POST("/:id/like", likes.LikePost)
	}
}
