package posts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SHAIK-RUMEENA/PostBloging/db"
	"github.com/SHAIK-RUMEENA/PostBloging/models"
	"github.com/SHAIK-RUMEENA/PostBloging/utils"
)

// @Summary Create a new post
// @Description Create a new post with the provided information
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Post title"
// @Param author formData string true "Author name"
// @Param content formData string true "Post content"
// @Param category formData string false "Category"
// @Param image formData file false "Post image"
// @Security BearerAuth
// @Success 201 {object} models.Post
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts [post]
func CreatePost(c *gin.Context) {
	_, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	title := c.Request.FormValue("title")
	author := c.Request.FormValue("author")
	content := c.Request.FormValue("content")
	category := c.Request.FormValue("category")

	if title == "" || author == "" || content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, author and content are required"})
		return
	}

	if category == "" {
		category = models.DefaultCategory
	}

	post := models.Post{
		Title:    title,
		Author:   author,
		Content:  content,
		Category: category,
	}

	file, err := c.FormFile("image")
	if err == nil && file != nil {
		imageURL, err := utils.UploadImage(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading image: " + err.Error()})
			return
		}
		post.ImageURL = imageURL
	}

	if err := db.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating post: " + err.Error()})
		return
	}

	utils.LogInfo("Post " + post.ID + " created by " + c.GetString("user_name"))
	c.JSON(http.StatusCreated, post)
}

// @Summary Get all posts
// @Description Retrieve all posts, most recent first
// @Tags posts
// @Produce json
// @Success 200 {array} models.Post
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts [get]
func GetAllPosts(c *gin.Context) {
	var posts []models.Post

	if err := db.DB.Order("created_at DESC").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving posts: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// @Summary Get a post by ID
// @Description Retrieve a post by its ID
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} map[string]string "error: Post not found"
// @Router /posts/{id} [get]
func GetPostByID(c *gin.Context) {
	var post models.Post
	postID := c.Param("id")

	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// @Summary Update a post
// @Description Update a post with the provided information. Fields left empty
// keep their stored value, the image in particular is only replaced when a new
// file is sent.
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Post ID"
// @Param title formData string false "Post title"
// @Param author formData string false "Author name"
// @Param content formData string false "Post content"
// @Param category formData string false "Category"
// @Param image formData file false "Post image"
// @Security BearerAuth
// @Success 200 {object} models.Post
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id} [put]
func UpdatePost(c *gin.Context) {
	_, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var post models.Post
	postID := c.Param("id")

	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	title := c.Request.FormValue("title")
	author := c.Request.FormValue("author")
	content := c.Request.FormValue("content")
	category := c.Request.FormValue("category")

	if title != "" {
		post.Title = title
	}

	if author != "" {
		post.Author = author
	}

	if content != "" {
		post.Content = content
	}

	if category != "" {
		post.Category = category
	}

	file, err := c.FormFile("image")
	if err == nil && file != nil {
		if post.ImageURL != "" {
			_ = utils.DeleteImage(post.ImageURL)
		}

		imageURL, err := utils.UploadImage(file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading image: " + err.Error()})
			return
		}
		post.ImageURL = imageURL
	}

	if err := db.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating post: " + err.Error()})
		return
	}

	utils.LogInfo("Post " + post.ID + " updated by " + c.GetString("user_name"))
	c.JSON(http.StatusOK, post)
}

// @Summary Delete a post
// @Description Delete a post by its ID
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Post deleted successfully"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Post not found"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /posts/{id} [delete]
func DeletePost(c *gin.Context) {
	_, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in token"})
		return
	}

	var post models.Post
	postID := c.Param("id")

	if err := db.DB.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if post.ImageURL != "" {
		_ = utils.DeleteImage(post.ImageURL)
	}

	if err := db.DB.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting post: " + err.Error()})
		return
	}

	utils.LogInfo("Post " + post.ID + " deleted by " + c.GetString("user_name"))
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
